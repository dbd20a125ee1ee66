package business

import (
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type profileFields struct {
	Name         string `json:"name" validate:"required,max=120"`
	Address      string `json:"address" validate:"max=255"`
	Phone        string `json:"phone" validate:"omitempty,phone"`
	Email        string `json:"email" validate:"omitempty,contact_email"`
	OpeningHours string `json:"opening_hours" validate:"required,max=500"`
}

// Validate checks the editable profile fields.
func Validate(req UpdateRequest) validation.Result {
	return validation.Struct(profileFields{
		Name:         strings.TrimSpace(req.Name),
		Address:      strings.TrimSpace(req.Address),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		OpeningHours: strings.TrimSpace(req.OpeningHours),
	})
}
