package customer

import (
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type customerFields struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,phone"`
	Email string `json:"email" validate:"omitempty,contact_email"`
}

// Validate checks a customer record. Phone may be formatted; only its digits count.
func Validate(name, phone, email string) validation.Result {
	return validation.Struct(customerFields{
		Name:  strings.TrimSpace(name),
		Phone: strings.TrimSpace(phone),
		Email: strings.TrimSpace(email),
	})
}
