package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unifiedcommerce/shop-service/internal/application/shopping"
	"github.com/unifiedcommerce/shop-service/internal/domain"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/dto"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/middleware"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/response"
)

type ShoppingListHandler struct {
	svc *shopping.Service
}

func NewShoppingListHandler(svc *shopping.Service) *ShoppingListHandler {
	return &ShoppingListHandler{svc: svc}
}

func (h *ShoppingListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.CreateShoppingListRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	l, err := h.svc.CreateList(r.Context(), userID, req.Name)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, l)
}

func (h *ShoppingListHandler) Lists(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	lists, err := h.svc.Lists(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if lists == nil {
		lists = []domain.ShoppingList{}
	}
	response.OK(w, lists)
}

func (h *ShoppingListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	if err := h.svc.DeleteList(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.MessageData{Message: "Shopping list deleted"})
}

func (h *ShoppingListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.AddShoppingListItemRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	it, err := h.svc.AddItem(r.Context(), chi.URLParam(r, "id"), userID, shopping.AddItemInput{
		Name:      req.Name,
		Quantity:  req.Quantity,
		ProductID: req.ProductID,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, it)
}

func (h *ShoppingListHandler) Items(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	items, err := h.svc.Items(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.ShoppingListItem{}
	}
	response.OK(w, items)
}

func (h *ShoppingListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	err := h.svc.DeleteItem(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "itemID"), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.MessageData{Message: "Item removed"})
}
