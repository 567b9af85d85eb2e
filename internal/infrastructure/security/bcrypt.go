package security

import (
	"github.com/unifiedcommerce/shop-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher wraps x/crypto/bcrypt. The default work factor is 10, matching
// the stored verifiers this service inherits.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil on match. A malformed hash yields a mismatch error,
// never a panic, so callers can treat any non-nil result as "wrong password".
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
