package court

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "court not found")
	ErrInUse    = apperror.New(http.StatusConflict, "court has bookings and cannot be deleted")
)

// Court is a bookable unit (e.g., Quadra 1).
type Court struct {
	ID        string
	Name      string
	Price     float64 // hourly price
	CreatedAt time.Time
}

// Filter defines parameters for listing courts.
type Filter struct {
	Keyword   string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
