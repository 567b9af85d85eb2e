package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type Service struct {
	products ProductRepo
	now      func() time.Time
}

func NewService(products ProductRepo) *Service {
	return &Service{
		products: products,
		now:      time.Now,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
}

type UpdateProductInput struct {
	Name        string
	Description string
	Price       *float64
	Image       string
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.products.Get(ctx, id)
}

// Create records the authenticated caller's email as the product owner.
func (s *Service) Create(ctx context.Context, ownerEmail string, in CreateProductInput) (domain.Product, error) {
	if in.Name == "" || in.Description == "" || in.Price <= 0 {
		return domain.Product{}, domain.ErrMissingFields()
	}

	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Owner:       ownerEmail,
		CreatedAt:   s.now().UTC(),
	}
	return s.products.Create(ctx, p)
}

// Update enforces the ownership rule before touching the record: requester
// must be the owner or an admin.
func (s *Service) Update(ctx context.Context, id, requesterEmail, requesterRole string, in UpdateProductInput) (domain.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	if !domain.CanMutateProduct(p, requesterEmail, requesterRole) {
		return domain.Product{}, domain.ErrForbidden()
	}

	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != "" {
		p.Image = in.Image
	}

	return s.products.Update(ctx, p)
}

// Delete enforces the same owner-or-admin rule as Update.
func (s *Service) Delete(ctx context.Context, id, requesterEmail, requesterRole string) error {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanMutateProduct(p, requesterEmail, requesterRole) {
		return domain.ErrForbidden()
	}
	return s.products.Delete(ctx, p.ID)
}
