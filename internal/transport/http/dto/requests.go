package dto

import (
	"github.com/unifiedcommerce/shop-service/internal/domain"
)

// -------- Auth --------

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	NationalID string `json:"nationalID"`
	Password   string `json:"password"`
	Role       string `json:"role,omitempty"`
}

// Validate applies the registration checks in their documented order:
// presence, then email format, then password strength. Duplicate-email is
// the store's job.
func (r *RegisterRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.NationalID == "" || r.Password == "" {
		return domain.ErrMissingFields()
	}
	if !isEmail(r.Email) {
		return domain.ErrInvalidEmail()
	}
	if !isStrongPassword(r.Password) {
		return domain.ErrWeakPassword()
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	// Absent fields fall through to the credential check so the response is
	// identical to a wrong password.
	return nil
}

type UpdateAccountRequest struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

func (r *UpdateAccountRequest) Validate() error {
	if r.Password != "" && !isStrongPassword(r.Password) {
		return domain.ErrWeakPassword()
	}
	return nil
}

// -------- Products --------

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Image       string  `json:"image,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	return checkRequired(r)
}

type UpdateProductRequest struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.Price != nil && *r.Price <= 0 {
		return domain.ErrInvalidField("price", "must be positive")
	}
	return nil
}

// -------- Shopping lists --------

type CreateShoppingListRequest struct {
	Name string `json:"name"`
}

func (r *CreateShoppingListRequest) Validate() error {
	if r.Name == "" {
		return domain.ErrMissingField("name")
	}
	return nil
}

type AddShoppingListItemRequest struct {
	Name      string `json:"name" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	ProductID string `json:"productId" validate:"required"`
}

func (r *AddShoppingListItemRequest) Validate() error {
	return checkRequired(r)
}
