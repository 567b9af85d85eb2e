package auth

import (
	"context"

	"github.com/unifiedcommerce/shop-service/internal/domain"
	"github.com/unifiedcommerce/shop-service/internal/logger"
)

// GetUserByID returns the full internal record; callers project it before
// serializing.
func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// UpdateAccount applies the subset of mutable profile fields the caller
// provided. A new password goes back through the policy check and hasher.
func (s *Service) UpdateAccount(ctx context.Context, userID string, in UpdateAccountInput) (domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.Password != "" {
		if !domain.IsStrongPassword(in.Password) {
			return domain.User{}, domain.ErrWeakPassword()
		}
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return domain.User{}, domain.ErrHashFailed(err)
		}
		u.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return domain.User{}, err
	}

	s.audit("account_updated", map[string]string{"user_id": userID})
	return updated, nil
}

// DeleteAccount removes the caller's own record.
func (s *Service) DeleteAccount(ctx context.Context, userID string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, u.ID); err != nil {
		return err
	}

	s.audit("account_deleted", map[string]string{"user_id": userID})

	if s.pub != nil {
		if perr := s.pub.PublishUserDeleted(ctx, UserDeletedEvent{
			UserID: u.ID,
			Email:  u.Email,
		}); perr != nil {
			logger.Logger.Warn().Err(perr).Str("user_id", u.ID).Msg("publish user_deleted failed")
		}
	}
	return nil
}
