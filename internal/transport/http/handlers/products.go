package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unifiedcommerce/shop-service/internal/application/catalog"
	"github.com/unifiedcommerce/shop-service/internal/domain"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/dto"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/middleware"
	"github.com/unifiedcommerce/shop-service/internal/transport/http/response"
)

type ProductHandler struct {
	svc *catalog.Service
}

func NewProductHandler(svc *catalog.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	response.OK(w, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	var req dto.CreateProductRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Create(r.Context(), email, catalog.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.Created(w, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	var req dto.UpdateProductRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), email, role, catalog.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.EmailFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"), email, role); err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.MessageData{Message: "Product deleted"})
}
