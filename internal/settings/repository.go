package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// The table holds at most one row, keyed by singleton = true.
func (r *pgxRepository) Get(ctx context.Context) (*Settings, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"weekdays", "weekends", "slot_duration_minutes",
		"break_between_slots_minutes", "closed_days", "updated_at",
	).
		From("public.booking_settings").
		Where(squirrel.Eq{"singleton": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get settings query failed: %w", err)
	}

	var s Settings
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&s.Hours.Weekdays,
		&s.Hours.Weekends,
		&s.Hours.SlotDurationMinutes,
		&s.Hours.BreakBetweenSlotsMinutes,
		&s.Hours.ClosedDays,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get settings failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) Save(ctx context.Context, s *Settings) error {
	closed := s.Hours.ClosedDays
	if closed == nil {
		closed = []string{}
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.booking_settings").
		Columns("singleton", "weekdays", "weekends", "slot_duration_minutes", "break_between_slots_minutes", "closed_days").
		Values(true, s.Hours.Weekdays, s.Hours.Weekends, s.Hours.SlotDurationMinutes, s.Hours.BreakBetweenSlotsMinutes, closed).
		Suffix(`ON CONFLICT (singleton) DO UPDATE SET
			weekdays = EXCLUDED.weekdays,
			weekends = EXCLUDED.weekends,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			break_between_slots_minutes = EXCLUDED.break_between_slots_minutes,
			closed_days = EXCLUDED.closed_days,
			updated_at = now()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save settings query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		return fmt.Errorf("save settings failed: %w", err)
	}
	return nil
}
