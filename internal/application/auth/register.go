package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/unifiedcommerce/shop-service/internal/domain"
	"github.com/unifiedcommerce/shop-service/internal/logger"
)

// Register validates the input, enforces email uniqueness and persists a new
// user. The duplicate check is left to the repo's Create so that
// check-and-insert stays atomic regardless of backend.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.NationalID == "" || in.Password == "" {
		return RegisterResult{}, domain.ErrMissingFields()
	}
	if !domain.IsValidEmail(in.Email) {
		return RegisterResult{}, domain.ErrInvalidEmail()
	}
	if !domain.IsStrongPassword(in.Password) {
		return RegisterResult{}, domain.ErrWeakPassword()
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, domain.ErrHashFailed(err)
	}

	role := string(domain.RoleUser)
	if s.allowSelfServeAdmin {
		role = domain.NormalizeRole(in.Role)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		NationalID:   in.NationalID,
		PasswordHash: hash,
		Role:         role,
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return RegisterResult{}, err
	}

	s.audit("user_registered", map[string]string{
		"user_id": created.ID,
		"role":    created.Role,
	})

	if s.pub != nil {
		if perr := s.pub.PublishUserRegistered(ctx, UserRegisteredEvent{
			UserID: created.ID,
			Email:  created.Email,
			Role:   created.Role,
		}); perr != nil {
			logger.Logger.Warn().Err(perr).Str("user_id", created.ID).Msg("publish user_registered failed")
		}
	}

	return RegisterResult{User: created}, nil
}
