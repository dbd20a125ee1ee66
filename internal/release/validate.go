package release

import (
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
)

// The datetime layout must match DateLayout.
type releaseFields struct {
	Type          Type          `json:"type" validate:"required,oneof=income expense"`
	Category      string        `json:"category" validate:"required"`
	Amount        float64       `json:"amount" validate:"gt=0"`
	Date          string        `json:"date" validate:"required,datetime=2006-01-02"`
	PaymentMethod PaymentMethod `json:"payment_method" validate:"oneof=cash pix credit_card debit_card transfer"`
	Status        Status        `json:"status" validate:"oneof=paid pending"`
}

// Validate checks every field of a release and returns all issues found.
// Date is the raw YYYY-MM-DD string.
func Validate(t Type, category string, amount float64, date string, method PaymentMethod, status Status) validation.Result {
	return validation.Struct(releaseFields{
		Type:          t,
		Category:      strings.TrimSpace(category),
		Amount:        amount,
		Date:          date,
		PaymentMethod: method,
		Status:        status,
	})
}
