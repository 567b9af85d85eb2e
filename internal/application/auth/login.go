package auth

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

// dummyVerifier is a well-formed bcrypt hash compared against when the email
// is unknown, so that branch costs the same as a wrong password. The outcome
// is discarded.
const dummyVerifier = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and issues a bearer token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration);
// unknown email and wrong password return the same error in comparable time.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials, burning one compare so
		// response timing matches the known-email failure path.
		_ = s.hasher.Compare(dummyVerifier, password)
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.issueToken(u)
	if err != nil {
		return LoginResult{}, err
	}

	s.audit("user_logged_in", map[string]string{"user_id": u.ID})

	return LoginResult{User: u, Token: tok}, nil
}
