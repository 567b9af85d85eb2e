package catalog

import (
	"context"
	"sync"
	"testing"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type fakeProductRepo struct {
	mu   sync.Mutex
	byID map[string]domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]domain.Product{}}
}

func (f *fakeProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound()
	}
	return p, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[p.ID]; !ok {
		return domain.Product{}, domain.ErrProductNotFound()
	}
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return domain.ErrProductNotFound()
	}
	delete(f.byID, id)
	return nil
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}

func newSvcForTest() (*Service, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return NewService(repo), repo
}

func TestCreate_SetsOwnerAndID(t *testing.T) {
	t.Parallel()

	svc, _ := newSvcForTest()

	p, err := svc.Create(context.Background(), "owner@x.com", CreateProductInput{
		Name:        "Milk",
		Description: "Full cream",
		Price:       3.5,
	})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if p.Owner != "owner@x.com" {
		t.Fatalf("expected owner recorded, got %q", p.Owner)
	}
	if p.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt set")
	}
}

func TestCreate_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _ := newSvcForTest()

	_, err := svc.Create(context.Background(), "owner@x.com", CreateProductInput{Name: "Milk"})
	requireErrCode(t, err, "missing_fields")

	_, err = svc.Create(context.Background(), "owner@x.com", CreateProductInput{
		Name:        "Milk",
		Description: "Full cream",
		Price:       -1,
	})
	requireErrCode(t, err, "missing_fields")
}

func TestUpdate_OwnerCanMutate(t *testing.T) {
	t.Parallel()

	svc, repo := newSvcForTest()
	repo.byID["p1"] = domain.Product{ID: "p1", Name: "Milk", Description: "d", Price: 3, Owner: "owner@x.com"}

	price := 4.0
	p, err := svc.Update(context.Background(), "p1", "owner@x.com", "user", UpdateProductInput{Price: &price})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if p.Price != 4.0 {
		t.Fatalf("expected updated price, got %v", p.Price)
	}
	if p.Name != "Milk" {
		t.Fatalf("name should be unchanged")
	}
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	t.Parallel()

	svc, repo := newSvcForTest()
	repo.byID["p1"] = domain.Product{ID: "p1", Name: "Milk", Description: "d", Price: 3, Owner: "owner@x.com"}

	_, err := svc.Update(context.Background(), "p1", "other@x.com", "user", UpdateProductInput{Name: "X"})
	requireErrCode(t, err, "forbidden")
}

func TestUpdate_AdminOverridesOwnership(t *testing.T) {
	t.Parallel()

	svc, repo := newSvcForTest()
	repo.byID["p1"] = domain.Product{ID: "p1", Name: "Milk", Description: "d", Price: 3, Owner: "owner@x.com"}

	p, err := svc.Update(context.Background(), "p1", "admin@x.com", "admin", UpdateProductInput{Name: "Bread"})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if p.Name != "Bread" {
		t.Fatalf("expected updated name, got %q", p.Name)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newSvcForTest()

	_, err := svc.Update(context.Background(), "ghost", "x@x.com", "user", UpdateProductInput{Name: "X"})
	requireErrCode(t, err, "product_not_found")
}

func TestDelete_OwnershipRules(t *testing.T) {
	t.Parallel()

	svc, repo := newSvcForTest()
	repo.byID["p1"] = domain.Product{ID: "p1", Owner: "owner@x.com"}
	repo.byID["p2"] = domain.Product{ID: "p2", Owner: "owner@x.com"}

	err := svc.Delete(context.Background(), "p1", "other@x.com", "user")
	requireErrCode(t, err, "forbidden")

	if err := svc.Delete(context.Background(), "p1", "owner@x.com", "user"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "p2", "admin@x.com", "admin"); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty repo, got %d products", len(repo.byID))
	}
}

func TestOwnershipIsCaseSensitive(t *testing.T) {
	t.Parallel()

	svc, repo := newSvcForTest()
	repo.byID["p1"] = domain.Product{ID: "p1", Owner: "Owner@X.com"}

	err := svc.Delete(context.Background(), "p1", "owner@x.com", "user")
	requireErrCode(t, err, "forbidden")
}
