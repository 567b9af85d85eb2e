package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productCols = `id, name, description, price, image, owner, created_at`

func scanProduct(scan func(dest ...any) error) (domain.Product, error) {
	var p domain.Product
	var image sql.NullString
	err := scan(&p.ID, &p.Name, &p.Description, &p.Price, &image, &p.Owner, &p.CreatedAt)
	if err != nil {
		return domain.Product{}, err
	}
	p.Image = image.String
	return p, nil
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productCols + ` FROM products ORDER BY created_at, id;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	defer rows.Close()

	out := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, domain.ErrStoreUnavailable(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrStoreUnavailable(err)
	}
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, domain.ErrMissingField("id")
	}

	const q = `SELECT ` + productCols + ` FROM products WHERE id = $1 LIMIT 1;`
	p, err := scanProduct(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound()
		}
		return domain.Product{}, domain.ErrStoreUnavailable(err)
	}
	return p, nil
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	const q = `
INSERT INTO products (id, name, description, price, image, owner, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING ` + productCols + `;`

	created, err := scanProduct(r.db.QueryRowContext(ctx, q,
		p.ID, p.Name, p.Description, p.Price, nullString(p.Image), p.Owner, p.CreatedAt,
	).Scan)
	if err != nil {
		return domain.Product{}, domain.ErrStoreUnavailable(err)
	}
	return created, nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, description = $3, price = $4, image = $5
WHERE id = $1
RETURNING ` + productCols + `;`

	updated, err := scanProduct(r.db.QueryRowContext(ctx, q,
		p.ID, p.Name, p.Description, p.Price, nullString(p.Image),
	).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound()
		}
		return domain.Product{}, domain.ErrStoreUnavailable(err)
	}
	return updated, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM products WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrProductNotFound()
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
