package auth

import (
	"time"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner
	pub    EventPublisher

	tokenTTL time.Duration

	// allowSelfServeAdmin preserves the legacy behavior of honoring a
	// client-supplied "admin" role at registration. Off by default; every
	// caller becomes a regular user unless the deployment opts in.
	allowSelfServeAdmin bool

	audit func(action string, fields map[string]string)
}

type Config struct {
	TokenTTL            time.Duration
	AllowSelfServeAdmin bool
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, pub EventPublisher, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Service{
		users:               users,
		hasher:              hasher,
		signer:              signer,
		pub:                 pub,
		tokenTTL:            ttl,
		allowSelfServeAdmin: cfg.AllowSelfServeAdmin,
		audit:               func(string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn func(action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

type RegisterInput struct {
	Name       string
	Email      string
	Phone      string
	NationalID string
	Password   string
	Role       string
}

type RegisterResult struct {
	User domain.User
}

type LoginResult struct {
	User  domain.User
	Token string
}

type UpdateAccountInput struct {
	Name     string
	Phone    string
	Password string
}

func (s *Service) issueToken(u domain.User) (string, error) {
	tok, err := s.signer.SignToken(u.ID, u.Email, u.Role, s.tokenTTL)
	if err != nil {
		return "", domain.ErrTokenSignFailed(err)
	}
	return tok, nil
}
