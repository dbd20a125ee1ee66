package settings

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "booking settings have not been configured")

// Settings is the single booking_settings record.
type Settings struct {
	Hours     schedule.Config
	UpdatedAt time.Time
}
