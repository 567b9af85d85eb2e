package domain

import "time"

// Product belongs to the user whose email is recorded as Owner.
// Owner-or-admin is the mutation rule; reads are public.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CanMutateProduct is the ownership check for product update/delete:
// requester email equals the recorded owner, or the requester is an admin.
func CanMutateProduct(p Product, requesterEmail, requesterRole string) bool {
	return p.Owner == requesterEmail || requesterRole == string(RoleAdmin)
}
