package http

import (
	"errors"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/request"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/release"
)

// ListReleasesRequest defines query parameters for listing and summarizing releases.
type ListReleasesRequest struct {
	request.ListParams
	Type   string `form:"type" binding:"omitempty,oneof=income expense"`
	Status string `form:"status" binding:"omitempty,oneof=paid pending"`
	From   string `form:"from"`
	To     string `form:"to"`
}

// Filter converts the query into a release.Filter.
func (r *ListReleasesRequest) Filter() (release.Filter, error) {
	f := release.Filter{
		Type:     release.Type(r.Type),
		Status:   release.Status(r.Status),
		Page:     r.Page,
		PageSize: r.PageSize,
	}
	if r.From != "" {
		from, err := time.Parse(release.DateLayout, r.From)
		if err != nil {
			return f, errors.New("from must be YYYY-MM-DD")
		}
		f.From = &from
	}
	if r.To != "" {
		to, err := time.Parse(release.DateLayout, r.To)
		if err != nil {
			return f, errors.New("to must be YYYY-MM-DD")
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, errors.New("to must not be before from")
	}
	return f, nil
}

type ReleaseResponse struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	Date          string    `json:"date"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewResponse(r *release.Release) ReleaseResponse {
	return ReleaseResponse{
		ID:            r.ID,
		Type:          string(r.Type),
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		Date:          r.Date.Format(release.DateLayout),
		PaymentMethod: string(r.PaymentMethod),
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

type SummaryResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
	Count   int     `json:"count"`
}

type CreateRequest struct {
	Type          release.Type          `json:"type"`
	Category      string                `json:"category"`
	Description   string                `json:"description"`
	Amount        float64               `json:"amount"`
	Date          string                `json:"date"`
	PaymentMethod release.PaymentMethod `json:"payment_method"`
	Status        release.Status        `json:"status"`
}

type UpdateRequest struct {
	Type          *release.Type          `json:"type"`
	Category      *string                `json:"category"`
	Description   *string                `json:"description"`
	Amount        *float64               `json:"amount"`
	Date          *string                `json:"date"`
	PaymentMethod *release.PaymentMethod `json:"payment_method"`
	Status        *release.Status        `json:"status"`
}
