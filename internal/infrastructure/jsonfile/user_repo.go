package jsonfile

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

// UserRepo implements auth.UserRepo over the shared Store.
type UserRepo struct {
	s *Store
}

func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{s: s}
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.doc.Users {
		if rec.Email == email {
			return rec.toDomain(), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.doc.Users {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

// Create does the duplicate-email check and the insert under one lock, so
// two concurrent registrations of the same email cannot both win.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.doc.Users {
		if rec.Email == u.Email {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
	}

	r.s.doc.Users = append(r.s.doc.Users, toRecord(u))
	if err := r.s.flush(); err != nil {
		r.s.doc.Users = r.s.doc.Users[:len(r.s.doc.Users)-1]
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return u, nil
}

func (r *UserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, rec := range r.s.doc.Users {
		if rec.ID == u.ID {
			prev := r.s.doc.Users[i]
			r.s.doc.Users[i] = toRecord(u)
			if err := r.s.flush(); err != nil {
				r.s.doc.Users[i] = prev
				return domain.User{}, domain.ErrStoreUnavailable(err)
			}
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound()
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, rec := range r.s.doc.Users {
		if rec.ID == id {
			prev := r.s.doc.Users
			users := append([]userRecord{}, r.s.doc.Users[:i]...)
			users = append(users, r.s.doc.Users[i+1:]...)
			r.s.doc.Users = users
			if err := r.s.flush(); err != nil {
				r.s.doc.Users = prev
				return domain.ErrStoreUnavailable(err)
			}
			return nil
		}
	}
	return domain.ErrUserNotFound()
}
