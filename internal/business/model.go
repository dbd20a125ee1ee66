package business

import (
	"net/http"
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/apperror"
)

const (
	MaxLogoBytes = 5 << 20
	LogoMaxSide  = 512
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "business profile has not been configured")
	ErrNoLogo          = apperror.New(http.StatusNotFound, "business logo has not been uploaded")
	ErrLogoTooLarge    = apperror.New(http.StatusRequestEntityTooLarge, "logo must be at most 5MB")
	ErrUnsupportedLogo = apperror.New(http.StatusUnsupportedMediaType, "logo must be a JPEG or PNG image")
)

// LogoTypes lists the accepted upload content types.
var LogoTypes = []string{"image/jpeg", "image/png"}

// Profile is the single business_settings record: how the club presents
// itself to customers.
type Profile struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	OpeningHours string
	// LogoPath is relative to the configured storage; empty when no logo
	// has been uploaded.
	LogoPath  string
	UpdatedAt time.Time
}

func (p *Profile) HasLogo() bool {
	return p.LogoPath != ""
}

type UpdateRequest struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	OpeningHours string
}
