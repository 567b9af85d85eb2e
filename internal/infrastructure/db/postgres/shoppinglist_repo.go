package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type ShoppingListRepo struct {
	db *sql.DB
}

func NewShoppingListRepo(db *sql.DB) *ShoppingListRepo {
	return &ShoppingListRepo{db: db}
}

func (r *ShoppingListRepo) CreateList(ctx context.Context, l domain.ShoppingList) (domain.ShoppingList, error) {
	const q = `
INSERT INTO shopping_lists (id, name, user_id, created_at)
VALUES ($1,$2,$3,$4)
RETURNING id, name, user_id, created_at;
`
	var out domain.ShoppingList
	err := r.db.QueryRowContext(ctx, q, l.ID, l.Name, l.UserID, l.CreatedAt).
		Scan(&out.ID, &out.Name, &out.UserID, &out.CreatedAt)
	if err != nil {
		return domain.ShoppingList{}, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *ShoppingListRepo) ListsByUser(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	const q = `
SELECT id, name, user_id, created_at
FROM shopping_lists
WHERE user_id = $1
ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	out := []domain.ShoppingList{}
	for rows.Next() {
		var l domain.ShoppingList
		if err := rows.Scan(&l.ID, &l.Name, &l.UserID, &l.CreatedAt); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

// GetList filters by both id and owner, so someone else's list is
// indistinguishable from a missing one.
func (r *ShoppingListRepo) GetList(ctx context.Context, id, userID string) (domain.ShoppingList, error) {
	const q = `
SELECT id, name, user_id, created_at
FROM shopping_lists
WHERE id = $1 AND user_id = $2
LIMIT 1;
`
	var l domain.ShoppingList
	err := r.db.QueryRowContext(ctx, q, id, userID).
		Scan(&l.ID, &l.Name, &l.UserID, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ShoppingList{}, domain.ErrShoppingListNotFound()
		}
		return domain.ShoppingList{}, domain.ErrStoreUnavailable(err)
	}
	return l, nil
}

func (r *ShoppingListRepo) DeleteList(ctx context.Context, id, userID string) error {
	// Items go first; no ON DELETE CASCADE on the items table keeps the
	// schema portable across the demo backends.
	const delItems = `DELETE FROM shopping_list_items WHERE list_id = $1;`
	const delList = `DELETE FROM shopping_lists WHERE id = $1 AND user_id = $2;`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, delItems, id); err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	res, err := tx.ExecContext(ctx, delList, id, userID)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrShoppingListNotFound()
	}
	if err := tx.Commit(); err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *ShoppingListRepo) AddItem(ctx context.Context, it domain.ShoppingListItem) (domain.ShoppingListItem, error) {
	const q = `
INSERT INTO shopping_list_items (id, list_id, product_id, name, quantity, created_at)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, list_id, product_id, name, quantity, created_at;
`
	var out domain.ShoppingListItem
	err := r.db.QueryRowContext(ctx, q, it.ID, it.ListID, it.ProductID, it.Name, it.Quantity, it.CreatedAt).
		Scan(&out.ID, &out.ListID, &out.ProductID, &out.Name, &out.Quantity, &out.CreatedAt)
	if err != nil {
		return domain.ShoppingListItem{}, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *ShoppingListRepo) ItemsByList(ctx context.Context, listID string) ([]domain.ShoppingListItem, error) {
	const q = `
SELECT id, list_id, product_id, name, quantity, created_at
FROM shopping_list_items
WHERE list_id = $1
ORDER BY created_at, id;
`
	rows, err := r.db.QueryContext(ctx, q, listID)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	out := []domain.ShoppingListItem{}
	for rows.Next() {
		var it domain.ShoppingListItem
		if err := rows.Scan(&it.ID, &it.ListID, &it.ProductID, &it.Name, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *ShoppingListRepo) DeleteItem(ctx context.Context, itemID, listID string) error {
	const q = `DELETE FROM shopping_list_items WHERE id = $1 AND list_id = $2;`
	res, err := r.db.ExecContext(ctx, q, itemID, listID)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrShoppingListItemNotFound()
	}
	return nil
}
