package http

import (
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/request"
)

// ListCourtsRequest defines query parameters for listing courts.
type ListCourtsRequest struct {
	request.ListParams
	Keyword string `form:"q"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=name price created_at"`
}

type CourtResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:        c.ID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedAt: c.CreatedAt,
	}
}

// Price is validated by the service so that every problem is reported together.
type CreateRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UpdateRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}
