package catalog

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

/*
ProductRepo
-----------
Persistence port for the product catalog. List returns products in creation
order; Get returns ErrProductNotFound when absent.
*/
type ProductRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}
