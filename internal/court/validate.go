package court

import (
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

type courtFields struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gt=0"`
}

// Validate checks the editable fields of a court.
func Validate(name string, price float64) validation.Result {
	return validation.Struct(courtFields{Name: strings.TrimSpace(name), Price: price})
}
