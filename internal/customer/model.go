package customer

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "customer not found")
	ErrPhoneAlreadyUsed = apperror.New(http.StatusConflict, "a customer with this phone already exists")
)

// Customer is a person who books courts. Phone holds digits only.
type Customer struct {
	ID        string
	Name      string
	Phone     string
	Email     string
	Notes     string
	CreatedAt time.Time
}

// Filter defines parameters for listing customers.
// Keyword matches name, phone or email.
type Filter struct {
	Keyword   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
