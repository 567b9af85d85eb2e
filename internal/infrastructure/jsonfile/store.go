// Package jsonfile is the legacy flat-file backend: one JSON document on
// disk, read once at open, rewritten after every mutation. All access is
// serialized behind a single mutex, so check-and-insert is atomic within the
// process. It exists for demo parity; the postgres backend is the one that
// holds up under real concurrency.
package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

// userRecord is the on-disk shape of a user. The verifier is stored under
// "password" for compatibility with the legacy db.json layout; it never
// reaches an HTTP response (handlers only serialize domain.PublicUser).
type userRecord struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalID"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

func toRecord(u domain.User) userRecord {
	return userRecord{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		NationalID: u.NationalID,
		Password:   u.PasswordHash,
		Role:       u.Role,
	}
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		NationalID:   r.NationalID,
		PasswordHash: r.Password,
		Role:         r.Role,
	}
}

type document struct {
	Users     []userRecord              `json:"users"`
	Products  []domain.Product          `json:"products"`
	Lists     []domain.ShoppingList     `json:"shoppingLists"`
	ListItems []domain.ShoppingListItem `json:"shoppingListItems"`
}

type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// Open loads the database file, creating an empty document when the file is
// absent.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &s.doc); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// flush must be called with mu held. The document is written to a temp file
// and renamed over the target so readers never observe a torn write.
func (s *Store) flush() error {
	b, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".shopdb-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
