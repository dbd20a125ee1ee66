package http

import (
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/business"
)

// LogoPath is where the current logo is served.
const LogoPath = "/v1/business/logo"

type ProfileResponse struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	OpeningHours string    `json:"opening_hours"`
	LogoURL      *string   `json:"logo_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewResponse(p *business.Profile) ProfileResponse {
	resp := ProfileResponse{
		Name:         p.Name,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		OpeningHours: p.OpeningHours,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.HasLogo() {
		url := LogoPath
		resp.LogoURL = &url
	}
	return resp
}

type UpdateRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	OpeningHours string `json:"opening_hours"`
}

func (r UpdateRequest) toService() business.UpdateRequest {
	return business.UpdateRequest{
		Name:         r.Name,
		Address:      r.Address,
		Phone:        r.Phone,
		Email:        r.Email,
		OpeningHours: r.OpeningHours,
	}
}
