package booking

import (
	"strings"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/court"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
)

// ValidateBooking checks a candidate booking against the field rules, the
// existing bookings and, when catalog is not nil, the known courts. Every
// violation is collected.
//
// The slot conflict is reported here for early feedback only; it is checked
// again when the booking is stored.
func ValidateBooking(req CreateRequest, existing []*Booking, catalog []*court.Court) validation.Result {
	var c validation.Collector

	courtID := strings.TrimSpace(req.CourtID)
	if courtID == "" {
		c.Add(validation.CodeRequired, "court_id", "court is required")
	}
	if req.Day == "" {
		c.Add(validation.CodeRequired, "day", "day is required")
	}
	if req.Time == "" {
		c.Add(validation.CodeRequired, "time", "time is required")
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		c.Add(validation.CodeRequired, "user_name", "customer name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		c.Add(validation.CodeRequired, "whatsapp", "whatsapp is required")
	}

	if !validation.IsValidPhone(req.Phone) {
		c.Add(validation.CodeInvalidContact, "whatsapp", "whatsapp number must have 10 or 11 digits")
	}
	if email := strings.TrimSpace(req.Email); email != "" && !validation.IsValidEmail(email) {
		c.Add(validation.CodeInvalidEmail, "email", "email is not valid")
	}
	if req.Day != "" && !schedule.IsValidDay(req.Day) {
		c.Add(validation.CodeInvalidDay, "day", "day must be a weekday name")
	}
	if req.Time != "" && !schedule.IsValidTime(req.Time) {
		c.Add(validation.CodeInvalidTimeFormat, "time", "time must be HH:MM")
	}
	if req.Price <= 0 {
		c.Add(validation.CodeInvalidPrice, "price", "price must be a positive number")
	}

	key := schedule.Key{CourtID: courtID, Day: req.Day, Time: req.Time}
	for _, b := range existing {
		if b.Key() == key {
			c.Add(validation.CodeSlotAlreadyBooked, "time", "time slot already booked")
			break
		}
	}

	if catalog != nil && courtID != "" && !inCatalog(catalog, courtID) {
		c.Add(validation.CodeUnknownResource, "court_id", "court does not exist")
	}

	return c.Result()
}

func inCatalog(catalog []*court.Court, id string) bool {
	for _, ct := range catalog {
		if ct.ID == id {
			return true
		}
	}
	return false
}
