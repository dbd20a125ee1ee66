package http

import (
	"time"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/settings"
)

type SettingsResponse struct {
	OperatingHours schedule.Config `json:"operating_hours"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewResponse(s *settings.Settings) SettingsResponse {
	return SettingsResponse{
		OperatingHours: s.Hours,
		UpdatedAt:      s.UpdatedAt,
	}
}

type UpdateRequest struct {
	OperatingHours schedule.Config `json:"operating_hours"`
}
