package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

/*
Shared audit capture
*/

type auditEntry struct {
	action string
	fields map[string]string
}

/*
Fakes for ports
*/

type fakeUserRepo struct {
	mu sync.Mutex

	byID    map[string]domain.User
	byEmail map[string]domain.User

	// injected errors (if set, method returns error)
	getByIDErr    error
	getByEmailErr error
	createErr     error
	updateErr     error
	deleteErr     error

	deletedIDs []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[string]domain.User{},
		byEmail: map[string]domain.User{},
	}
}

func (f *fakeUserRepo) seed(u domain.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByEmailErr != nil {
		return domain.User{}, f.getByEmailErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getByIDErr != nil {
		return domain.User{}, f.getByIDErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	if _, exists := f.byEmail[u.Email]; exists {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return domain.User{}, f.updateErr
	}
	if _, ok := f.byID[u.ID]; !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrUserNotFound()
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

type fakeHasher struct {
	hashFn       func(pw string) (string, error)
	compareFn    func(hash, pw string) error
	compareCalls int
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashFn != nil {
		return h.hashFn(password)
	}
	return "hash:" + password, nil
}

func (h *fakeHasher) Compare(hash string, password string) error {
	h.compareCalls++
	if h.compareFn != nil {
		return h.compareFn(hash, password)
	}
	if hash != "hash:"+password {
		return domain.ErrInvalidCredentials()
	}
	return nil
}

type fakeSigner struct {
	signErr error
}

func (s *fakeSigner) SignToken(userID, email, role string, ttl time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return "token:" + userID, nil
}

func (s *fakeSigner) VerifyToken(token string) (TokenClaims, error) {
	return TokenClaims{}, domain.ErrTokenInvalid()
}

type fakePublisher struct {
	mu         sync.Mutex
	registered []UserRegisteredEvent
	deleted    []UserDeletedEvent
	publishErr error
}

func (p *fakePublisher) PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	p.registered = append(p.registered, evt)
	return nil
}

func (p *fakePublisher) PublishUserDeleted(ctx context.Context, evt UserDeletedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.publishErr != nil {
		return p.publishErr
	}
	p.deleted = append(p.deleted, evt)
	return nil
}

/*
Service construction
*/

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner, *fakePublisher, *[]auditEntry) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	pub := &fakePublisher{}

	var audits []auditEntry
	svc := NewService(users, hasher, signer, pub, Config{TokenTTL: time.Hour}).
		WithAudit(func(action string, fields map[string]string) {
			audits = append(audits, auditEntry{action: action, fields: fields})
		})

	return svc, users, hasher, signer, pub, &audits
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		Name:       "Ada",
		Email:      "ada@example.com",
		Phone:      "0400000000",
		NationalID: "A1234567",
		Password:   "Password123",
	}
}
