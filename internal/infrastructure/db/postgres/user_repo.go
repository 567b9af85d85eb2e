package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/unifiedcommerce/shop-service/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Emails are stored and compared exactly as submitted. The UNIQUE constraint
// on the column therefore also treats "A@x.com" and "a@x.com" as distinct.

type userRow struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	NationalID   string
	PasswordHash string
	Role         string
	CreatedAt    sql.NullTime
}

func (r *UserRepo) scanUserRow(row *sql.Row) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Name,
		&ur.Email,
		&ur.Phone,
		&ur.NationalID,
		&ur.PasswordHash,
		&ur.Role,
		&ur.CreatedAt,
	)
	return ur, err
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:           ur.ID,
		Name:         ur.Name,
		Email:        ur.Email,
		Phone:        ur.Phone,
		NationalID:   ur.NationalID,
		PasswordHash: ur.PasswordHash,
		Role:         ur.Role,
	}
}

// ---------- auth.UserRepo ----------

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT id, name, email, phone, national_id, password_hash, role, created_at
FROM users
WHERE email = $1
LIMIT 1;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT id, name, email, phone, national_id, password_hash, role, created_at
FROM users
WHERE id = $1
LIMIT 1;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

// Create relies on the UNIQUE(email) constraint for the duplicate check, so
// concurrent registrations of the same email cannot both succeed.
func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}
	if u.Email == "" {
		return domain.User{}, domain.ErrMissingField("email")
	}
	if u.PasswordHash == "" {
		return domain.User{}, domain.ErrMissingField("password_hash")
	}
	if u.Role == "" {
		u.Role = string(domain.RoleUser)
	}

	const q = `
INSERT INTO users (id, name, email, phone, national_id, password_hash, role)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING id, name, email, phone, national_id, password_hash, role, created_at;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q,
		u.ID, u.Name, u.Email, u.Phone, u.NationalID, u.PasswordHash, u.Role,
	))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return domain.User{}, domain.ErrEmailAlreadyExists()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Update(ctx context.Context, u domain.User) (domain.User, error) {
	if u.ID == "" {
		return domain.User{}, domain.ErrMissingField("id")
	}

	const q = `
UPDATE users
SET name = $2,
    phone = $3,
    password_hash = $4
WHERE id = $1
RETURNING id, name, email, phone, national_id, password_hash, role, created_at;
`
	ur, err := r.scanUserRow(r.db.QueryRowContext(ctx, q, u.ID, u.Name, u.Phone, u.PasswordHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrStoreUnavailable(err)
	}
	return toDomainUser(ur), nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrMissingField("id")
	}

	const q = `DELETE FROM users WHERE id = $1;`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return domain.ErrStoreUnavailable(err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return domain.ErrUserNotFound()
	}
	return nil
}
