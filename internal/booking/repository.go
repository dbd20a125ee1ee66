package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Diegosch1990/sistema-reserva-quadras/internal/schedule"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// ListForDay returns every booking of the court on day.
	ListForDay(ctx context.Context, courtID, day string) ([]*Booking, error)
	// ExistsAt reports whether the slot is already taken.
	ExistsAt(ctx context.Context, key schedule.Key) (bool, error)
	Delete(ctx context.Context, id string) error
	// ActivitySince returns the creation time and price of every booking
	// made at or after since.
	ActivitySince(ctx context.Context, since time.Time) ([]Activity, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var bookingColumns = []string{
	"b.id", "b.court_id", "c.name", "b.day", "b.time",
	"b.customer_name", "b.phone", "b.email", "b.price", "b.created_at",
}

func bookingDest(b *Booking) []any {
	return []any{
		&b.ID, &b.CourtID, &b.CourtName, &b.Day, &b.Time,
		&b.CustomerName, &b.Phone, &b.Email, &b.Price, &b.CreatedAt,
	}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("court_id", "day", "time", "customer_name", "phone", "email", "price").
		Values(b.CourtID, b.Day, b.Time, b.CustomerName, b.Phone, b.Email, b.Price).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return ErrSlotAlreadyBooked
			case pgerrcode.ForeignKeyViolation:
				return ErrCourtNotFound
			}
		}
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(bookingDest(&b)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(bookingColumns, "count(*) OVER() as total_count")...).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id")

	if filter.CourtID != "" {
		query = query.Where(squirrel.Eq{"b.court_id": filter.CourtID})
	}
	if filter.Day != "" {
		query = query.Where(squirrel.Eq{"b.day": filter.Day})
	}
	if filter.Phone != "" {
		query = query.Where(squirrel.Eq{"b.phone": filter.Phone})
	}

	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy("b.created_at " + orderDir)

	// Pagination
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
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		var b Booking
		if err := rows.Scan(append(bookingDest(&b), &total)...); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListForDay(ctx context.Context, courtID, day string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings b").
		Join("public.courts c ON b.court_id = c.id").
		Where(squirrel.Eq{"b.court_id": courtID, "b.day": day}).
		OrderBy("b.time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list day bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list day bookings failed: %w", err)
	}

	bookings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Booking, error) {
		var b Booking
		err := row.Scan(bookingDest(&b)...)
		return &b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan day bookings failed: %w", err)
	}
	return bookings, nil
}

func (r *pgxRepository) ActivitySince(ctx context.Context, since time.Time) ([]Activity, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("created_at", "price").
		From("public.bookings").
		Where(squirrel.GtOrEq{"created_at": since}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking activity query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("booking activity failed: %w", err)
	}

	activity, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Activity])
	if err != nil {
		return nil, fmt.Errorf("scan booking activity failed: %w", err)
	}
	return activity, nil
}

func (r *pgxRepository) ExistsAt(ctx context.Context, key schedule.Key) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"court_id": key.CourtID, "day": key.Day, "time": key.Time}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build booking exists query failed: %w", err)
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check booking exists failed: %w", err)
	}
	return exists, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
