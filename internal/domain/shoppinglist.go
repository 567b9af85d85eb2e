package domain

import "time"

// ShoppingList is always scoped to its owning user; handlers never expose a
// list owned by someone else (absent and not-owned look identical: 404).
type ShoppingList struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type ShoppingListItem struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}
