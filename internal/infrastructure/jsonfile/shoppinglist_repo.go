package jsonfile

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

// ShoppingListRepo implements shopping.ListRepo over the shared Store.
type ShoppingListRepo struct {
	s *Store
}

func NewShoppingListRepo(s *Store) *ShoppingListRepo {
	return &ShoppingListRepo{s: s}
}

func (r *ShoppingListRepo) CreateList(ctx context.Context, l domain.ShoppingList) (domain.ShoppingList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.doc.Lists = append(r.s.doc.Lists, l)
	if err := r.s.flush(); err != nil {
		r.s.doc.Lists = r.s.doc.Lists[:len(r.s.doc.Lists)-1]
		return domain.ShoppingList{}, domain.ErrStoreUnavailable(err)
	}
	return l, nil
}

func (r *ShoppingListRepo) ListsByUser(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.ShoppingList{}
	for _, l := range r.s.doc.Lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *ShoppingListRepo) GetList(ctx context.Context, id, userID string) (domain.ShoppingList, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, l := range r.s.doc.Lists {
		if l.ID == id && l.UserID == userID {
			return l, nil
		}
	}
	return domain.ShoppingList{}, domain.ErrShoppingListNotFound()
}

func (r *ShoppingListRepo) DeleteList(ctx context.Context, id, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, l := range r.s.doc.Lists {
		if l.ID == id && l.UserID == userID {
			prevLists := r.s.doc.Lists
			prevItems := r.s.doc.ListItems

			lists := append([]domain.ShoppingList{}, r.s.doc.Lists[:i]...)
			lists = append(lists, r.s.doc.Lists[i+1:]...)

			items := []domain.ShoppingListItem{}
			for _, it := range r.s.doc.ListItems {
				if it.ListID != id {
					items = append(items, it)
				}
			}

			r.s.doc.Lists = lists
			r.s.doc.ListItems = items
			if err := r.s.flush(); err != nil {
				r.s.doc.Lists = prevLists
				r.s.doc.ListItems = prevItems
				return domain.ErrStoreUnavailable(err)
			}
			return nil
		}
	}
	return domain.ErrShoppingListNotFound()
}

func (r *ShoppingListRepo) AddItem(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.doc.ListItems = append(r.s.doc.ListItems, it)
	if err := r.s.flush(); err != nil {
		r.s.doc.ListItems = r.s.doc.ListItems[:len(r.s.doc.ListItems)-1]
		return domain.ShoppingListItem{}, domain.ErrStoreUnavailable(err)
	}
	return it, nil
}

func (r *ShoppingListRepo) ItemsByList(ctx context.Context, listID string) ([]domain.ShoppingListItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []domain.ShoppingListItem{}
	for _, it := range r.s.doc.ListItems {
		if it.ListID == listID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *ShoppingListRepo) DeleteItem(ctx context.Context, itemID, listID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, it := range r.s.doc.ListItems {
		if it.ID == itemID && it.ListID == listID {
			prev := r.s.doc.ListItems
			items := append([]domain.ShoppingListItem{}, r.s.doc.ListItems[:i]...)
			items = append(items, r.s.doc.ListItems[i+1:]...)
			r.s.doc.ListItems = items
			if err := r.s.flush(); err != nil {
				r.s.doc.ListItems = prev
				return domain.ErrStoreUnavailable(err)
			}
			return nil
		}
	}
	return domain.ErrShoppingListItemNotFound()
}
