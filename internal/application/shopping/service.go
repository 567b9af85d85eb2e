package shopping

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type Service struct {
	lists ListRepo
	now   func() time.Time
}

func NewService(lists ListRepo) *Service {
	return &Service{
		lists: lists,
		now:   time.Now,
	}
}

type AddItemInput struct {
	Name      string
	Quantity  int
	ProductID string
}

func (s *Service) CreateList(ctx context.Context, userID, name string) (domain.ShoppingList, error) {
	if name == "" {
		return domain.ShoppingList{}, domain.ErrMissingField("name")
	}

	l := domain.ShoppingList{
		ID:        uuid.NewString(),
		Name:      name,
		UserID:    userID,
		CreatedAt: s.now().UTC(),
	}
	return s.lists.CreateList(ctx, l)
}

func (s *Service) Lists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	return s.lists.ListsByUser(ctx, userID)
}

func (s *Service) DeleteList(ctx context.Context, id, userID string) error {
	if _, err := s.lists.GetList(ctx, id, userID); err != nil {
		return err
	}
	return s.lists.DeleteList(ctx, id, userID)
}

// AddItem requires the target list to belong to the caller.
func (s *Service) AddItem(ctx context.Context, listID, userID string, in AddItemInput) (domain.ShoppingListItem, error) {
	if in.Name == "" || in.Quantity <= 0 || in.ProductID == "" {
		return domain.ShoppingListItem{}, domain.ErrMissingFields()
	}

	l, err := s.lists.GetList(ctx, listID, userID)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}

	it := domain.ShoppingListItem{
		ID:        uuid.NewString(),
		ListID:    l.ID,
		ProductID: in.ProductID,
		Name:      in.Name,
		Quantity:  in.Quantity,
		CreatedAt: s.now().UTC(),
	}
	return s.lists.AddItem(ctx, it)
}

func (s *Service) Items(ctx context.Context, listID, userID string) ([]domain.ShoppingListItem, error) {
	l, err := s.lists.GetList(ctx, listID, userID)
	if err != nil {
		return nil, err
	}
	return s.lists.ItemsByList(ctx, l.ID)
}

func (s *Service) DeleteItem(ctx context.Context, listID, itemID, userID string) error {
	l, err := s.lists.GetList(ctx, listID, userID)
	if err != nil {
		return err
	}
	return s.lists.DeleteItem(ctx, itemID, l.ID)
}
