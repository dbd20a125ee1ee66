package notification

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "notification not found")

type Kind string

const (
	KindBookingCreated   Kind = "booking_created"
	KindBookingCancelled Kind = "booking_cancelled"
	KindInfo             Kind = "info"
)

// Notification is an in-app message shown to the club staff.
type Notification struct {
	ID        string
	Kind      Kind
	Message   string
	Read      bool
	CreatedAt time.Time
}

type Filter struct {
	UnreadOnly bool
	Page       int
	PageSize   int
}
