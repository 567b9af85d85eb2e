package jsonfile

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

// ProductRepo implements catalog.ProductRepo over the shared Store.
type ProductRepo struct {
	s *Store
}

func NewProductRepo(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Product, len(r.s.doc.Products))
	copy(out, r.s.doc.Products)
	return out, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.doc.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound()
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.doc.Products = append(r.s.doc.Products, p)
	if err := r.s.flush(); err != nil {
		r.s.doc.Products = r.s.doc.Products[:len(r.s.doc.Products)-1]
		return domain.Product{}, domain.ErrStoreUnavailable(err)
	}
	return p, nil
}

func (r *ProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.doc.Products {
		if existing.ID == p.ID {
			prev := r.s.doc.Products[i]
			r.s.doc.Products[i] = p
			if err := r.s.flush(); err != nil {
				r.s.doc.Products[i] = prev
				return domain.Product{}, domain.ErrStoreUnavailable(err)
			}
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound()
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, existing := range r.s.doc.Products {
		if existing.ID == id {
			products := append([]domain.Product{}, r.s.doc.Products[:i]...)
			products = append(products, r.s.doc.Products[i+1:]...)
			prev := r.s.doc.Products
			r.s.doc.Products = products
			if err := r.s.flush(); err != nil {
				r.s.doc.Products = prev
				return domain.ErrStoreUnavailable(err)
			}
			return nil
		}
	}
	return domain.ErrProductNotFound()
}
