package release

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Release) error
	GetByID(ctx context.Context, id string) (*Release, error)
	List(ctx context.Context, filter Filter) ([]*Release, int, error)
	Summary(ctx context.Context, filter Filter) (*Summary, error)
	Update(ctx context.Context, r *Release) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var releaseColumns = []string{
	"id", "type", "category", "description", "amount", "date", "payment_method", "status", "created_at",
}

func scanDest(r *Release) []any {
	return []any{&r.ID, &r.Type, &r.Category, &r.Description, &r.Amount, &r.Date, &r.PaymentMethod, &r.Status, &r.CreatedAt}
}

func applyFilter(q squirrel.SelectBuilder, f Filter) squirrel.SelectBuilder {
	if f.Type != "" {
		q = q.Where(squirrel.Eq{"type": f.Type})
	}
	if f.Status != "" {
		q = q.Where(squirrel.Eq{"status": f.Status})
	}
	if f.From != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		q = q.Where(squirrel.LtOrEq{"date": *f.To})
	}
	return q
}

func (r *pgxRepository) Create(ctx context.Context, rel *Release) error {
	query, args, err := psql.Insert("public.releases").
		Columns("type", "category", "description", "amount", "date", "payment_method", "status").
		Values(rel.Type, rel.Category, rel.Description, rel.Amount, rel.Date, rel.PaymentMethod, rel.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create release query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&rel.ID, &rel.CreatedAt); err != nil {
		return fmt.Errorf("create release failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Release, error) {
	query, args, err := psql.Select(releaseColumns...).
		From("public.releases").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get release query failed: %w", err)
	}

	var rel Release
	if err := r.pool.QueryRow(ctx, query, args...).Scan(scanDest(&rel)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get release failed: %w", err)
	}
	return &rel, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Release, int, error) {
	query := applyFilter(
		psql.Select(append(releaseColumns, "count(*) OVER() as total_count")...).From("public.releases"),
		filter,
	)

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy("date "+orderDir, "created_at "+orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list releases query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list releases failed: %w", err)
	}
	defer rows.Close()

	var result []*Release
	var total int
	for rows.Next() {
		var rel Release
		if err := rows.Scan(append(scanDest(&rel), &total)...); err != nil {
			return nil, 0, fmt.Errorf("scan release failed: %w", err)
		}
		result = append(result, &rel)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate releases failed: %w", err)
	}

	return result, total, nil
}

func (r *pgxRepository) Summary(ctx context.Context, filter Filter) (*Summary, error) {
	query := applyFilter(
		psql.Select(
			"COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)",
			"COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0)",
			"count(*)",
		).From("public.releases"),
		filter,
	)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build release summary query failed: %w", err)
	}

	var s Summary
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&s.Income, &s.Expense, &s.Count); err != nil {
		return nil, fmt.Errorf("release summary failed: %w", err)
	}
	s.Balance = s.Income - s.Expense
	return &s, nil
}

func (r *pgxRepository) Update(ctx context.Context, rel *Release) error {
	query, args, err := psql.Update("public.releases").
		SetMap(map[string]any{
			"type":           rel.Type,
			"category":       rel.Category,
			"description":    rel.Description,
			"amount":         rel.Amount,
			"date":           rel.Date,
			"payment_method": rel.PaymentMethod,
			"status":         rel.Status,
		}).
		Where(squirrel.Eq{"id": rel.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update release query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update release failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psql.Delete("public.releases").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete release query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete release failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
