package booking

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotAlreadyBooked = apperror.New(http.StatusConflict, "time slot already booked")
	ErrSlotOutsideHours  = apperror.New(http.StatusUnprocessableEntity, "time slot is outside operating hours")
	ErrCourtNotFound     = apperror.New(http.StatusNotFound, "court not found")
)

// Booking reserves one slot of a court. Bookings are never edited: a change
// is a cancellation followed by a new booking.
type Booking struct {
	ID           string
	CourtID      string
	CourtName    string
	Day          string // weekday label, see schedule.Days
	Time         string // HH:MM
	CustomerName string
	Phone        string // digits only
	Email        string
	Price        float64
	CreatedAt    time.Time
}

func (b *Booking) Key() schedule.Key {
	return schedule.Key{CourtID: b.CourtID, Day: b.Day, Time: b.Time}
}

// Keys returns the slot keys held by bookings.
func Keys(bookings []*Booking) []schedule.Key {
	keys := make([]schedule.Key, len(bookings))
	for i, b := range bookings {
		keys[i] = b.Key()
	}
	return keys
}

// Filter defines parameters for listing bookings.
type Filter struct {
	CourtID   string
	Day       string
	Phone     string
	Page      int
	PageSize  int
	SortOrder string
}
