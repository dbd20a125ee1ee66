package business

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	// Save upserts the editable fields and leaves the logo untouched.
	Save(ctx context.Context, p *Profile) error
	// SetLogo returns ErrNotFound when no profile exists yet.
	SetLogo(ctx context.Context, path string) (*Profile, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var profileColumns = []string{"name", "address", "phone", "email", "opening_hours", "logo_path", "updated_at"}

func scanProfile(row pgx.Row) (*Profile, error) {
	var p Profile
	if err := row.Scan(&p.Name, &p.Address, &p.Phone, &p.Email, &p.OpeningHours, &p.LogoPath, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pgxRepository) Get(ctx context.Context) (*Profile, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(profileColumns...).
		From("public.business_settings").
		Where(squirrel.Eq{"singleton": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get business query failed: %w", err)
	}

	p, err := scanProfile(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get business failed: %w", err)
	}
	return p, nil
}

func (r *pgxRepository) Save(ctx context.Context, p *Profile) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.business_settings").
		Columns("singleton", "name", "address", "phone", "email", "opening_hours").
		Values(true, p.Name, p.Address, p.Phone, p.Email, p.OpeningHours).
		Suffix(`ON CONFLICT (singleton) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			opening_hours = EXCLUDED.opening_hours,
			updated_at = now()
		RETURNING logo_path, updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save business query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&p.LogoPath, &p.UpdatedAt); err != nil {
		return fmt.Errorf("save business failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) SetLogo(ctx context.Context, path string) (*Profile, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.business_settings").
		Set("logo_path", path).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"singleton": true}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set logo query failed: %w", err)
	}

	p, err := scanProfile(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("set logo failed: %w", err)
	}
	return p, nil
}

