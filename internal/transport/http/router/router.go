package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unifiedcommerce/shop-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type ProductHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShoppingListHandler interface {
	CreateList(w http.ResponseWriter, r *http.Request)
	Lists(w http.ResponseWriter, r *http.Request)
	DeleteList(w http.ResponseWriter, r *http.Request)
	AddItem(w http.ResponseWriter, r *http.Request)
	Items(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health       HealthHandler
	Auth         AuthHandler
	Products     ProductHandler
	ShoppingList ShoppingListHandler

	AuthMW func(http.Handler) http.Handler
	// LoginRL guards POST /api/auth/login; nil disables rate limiting
	// (no Redis configured).
	LoginRL func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Products == nil {
		return nil, fmt.Errorf("nil Product handler")
	}
	if deps.ShoppingList == nil {
		return nil, fmt.Errorf("nil ShoppingList handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.Auth.Register)
			if deps.LoginRL != nil {
				r.With(deps.LoginRL).Post("/login", deps.Auth.Login)
			} else {
				r.Post("/login", deps.Auth.Login)
			}
			r.With(deps.AuthMW).Get("/me", deps.Auth.Me)
			r.With(deps.AuthMW).Put("/update", deps.Auth.UpdateAccount)
			r.With(deps.AuthMW).Delete("/delete", deps.Auth.DeleteAccount)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", deps.Products.List)
			r.Get("/{id}", deps.Products.Get)
			r.With(deps.AuthMW).Post("/", deps.Products.Create)
			r.With(deps.AuthMW).Put("/{id}", deps.Products.Update)
			r.With(deps.AuthMW).Delete("/{id}", deps.Products.Delete)
		})

		r.Route("/shopping-lists", func(r chi.Router) {
			r.Use(deps.AuthMW)

			r.Post("/", deps.ShoppingList.CreateList)
			r.Get("/", deps.ShoppingList.Lists)
			r.Delete("/{id}", deps.ShoppingList.DeleteList)

			r.Post("/{id}/items", deps.ShoppingList.AddItem)
			r.Get("/{id}/items", deps.ShoppingList.Items)
			r.Delete("/{id}/items/{itemID}", deps.ShoppingList.DeleteItem)
		})
	})

	return r, nil
}
