package auth

import (
	"context"
	"time"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth service needs, not HOW it's stored.

GetByEmail performs a case-sensitive exact match. Create must enforce email
uniqueness atomically (unique constraint, or check-and-insert under the
store's own lock) and return ErrEmailAlreadyExists on a duplicate.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, u domain.User) (domain.User, error)
	Delete(ctx context.Context, id string) error
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match and an error on mismatch,
including for malformed hashes; it never panics.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies bearer tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Email  string
	Role   string
	Exp    time.Time
}

type TokenSigner interface {
	SignToken(userID, email, role string, ttl time.Duration) (string, error)
	VerifyToken(token string) (TokenClaims, error)
}

/*
EventPublisher
--------------
Publishes user lifecycle events to the message broker. Best-effort: the
service logs publish failures but never fails the request over them.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
	PublishUserDeleted(ctx context.Context, evt UserDeletedEvent) error
}

type UserRegisteredEvent struct {
	UserID string
	Email  string
	Role   string
}

type UserDeletedEvent struct {
	UserID string
	Email  string
}
