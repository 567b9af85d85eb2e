package shopping

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

/*
ListRepo
--------
Persistence port for shopping lists and their items. Lookups are always
scoped by the owning user ID; a list owned by someone else behaves exactly
like a missing one (ErrShoppingListNotFound).
*/
type ListRepo interface {
	CreateList(ctx context.Context, l domain.ShoppingList) (domain.ShoppingList, error)
	ListsByUser(ctx context.Context, userID string) ([]domain.ShoppingList, error)
	GetList(ctx context.Context, id, userID string) (domain.ShoppingList, error)
	DeleteList(ctx context.Context, id, userID string) error

	AddItem(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error)
	ItemsByList(ctx context.Context, listID string) ([]domain.ShoppingListItem, error)
	DeleteItem(ctx context.Context, itemID, listID string) error
}
