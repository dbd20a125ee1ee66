package http

import (
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/customer"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/request"
)

// ListCustomersRequest defines query parameters for listing customers.
type ListCustomersRequest struct {
	request.ListParams
	Keyword string `form:"q"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=name created_at"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"whatsapp"`
	Email     string    `json:"email,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

type CreateRequest struct {
	Name  string `json:"name"`
	Phone string `json:"whatsapp"`
	Email string `json:"email"`
	Notes string `json:"notes" binding:"max=1000"`
}

type UpdateRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"whatsapp"`
	Email *string `json:"email"`
	Notes *string `json:"notes" binding:"omitempty,max=1000"`
}
