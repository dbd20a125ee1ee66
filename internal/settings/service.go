package settings

import (
	"context"

	"go.uber.org/zap"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/pkg/validation"
	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
)

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	// Update validates and stores the operating hours, replacing the previous ones.
	Update(ctx context.Context, hours schedule.Config) (*Settings, error)
}

type service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, hours schedule.Config) (*Settings, error) {
	if res := schedule.ValidateOperatingHours(&hours); !res.Valid {
		return nil, validation.NewError(res)
	}

	st := &Settings{Hours: hours}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}

	s.log.Info("operating hours updated",
		zap.String("weekdays", hours.Weekdays.Start+"-"+hours.Weekdays.End),
		zap.String("weekends", hours.Weekends.Start+"-"+hours.Weekends.End),
		zap.Int("slot_duration_minutes", hours.SlotDurationMinutes),
	)
	return st, nil
}
