package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peershare/item-sharing-backend/internal/item"
)

// Repository defines methods for accessing booking data.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// ListByBooker and ListByOwner return bookings newest-start-first;
	// the state classifier relies on that ordering.
	ListByBooker(ctx context.Context, bookerID string) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Booking, error)
	// UpdateStatusIfWaiting flips the status only while the booking is
	// still WAITING. The conditional update is what keeps two
	// concurrent decisions from both succeeding.
	UpdateStatusIfWaiting(ctx context.Context, id string, status Status) (bool, error)
	ExistsPastBooking(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error)
	LastForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingRef, error)
	NextForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingRef, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	const query = `
		INSERT INTO bookings (start_time, end_time, status, item_id, booker_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query, b.Start, b.End, b.Status, b.ItemID, b.BookerID).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	const query = `
		SELECT b.id, b.start_time, b.end_time, b.status,
		       b.item_id, i.name, b.booker_id, u.name,
		       b.created_at, b.updated_at
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		JOIN users u ON u.id = b.booker_id
		WHERE b.id = $1
	`

	var b Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.BookerID, &b.BookerName,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	return &b, nil
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID string) ([]*Booking, error) {
	return r.list(ctx, squirrel.Eq{"b.booker_id": bookerID})
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Booking, error) {
	return r.list(ctx, squirrel.Eq{"i.owner_id": ownerID})
}

func (r *pgxRepository) list(ctx context.Context, cond squirrel.Sqlizer) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.start_time", "b.end_time", "b.status",
		"b.item_id", "i.name", "b.booker_id", "u.name",
		"b.created_at", "b.updated_at",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id").
		Join("users u ON u.id = b.booker_id").
		Where(cond).
		OrderBy("b.start_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.Start, &b.End, &b.Status,
			&b.ItemID, &b.ItemName, &b.BookerID, &b.BookerName,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings failed: %w", err)
	}

	return bookings, nil
}

func (r *pgxRepository) UpdateStatusIfWaiting(ctx context.Context, id string, status Status) (bool, error) {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'WAITING'
	`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return false, fmt.Errorf("update booking status failed: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *pgxRepository) ExistsPastBooking(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE booker_id = $1 AND item_id = $2 AND end_time < $3
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookerID, itemID, now).Scan(&exists); err != nil {
		return false, fmt.Errorf("check past booking failed: %w", err)
	}

	return exists, nil
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingRef, error) {
	const query = `
		SELECT id, booker_id, start_time, end_time
		FROM bookings
		WHERE item_id = $1 AND end_time < $2 AND status <> 'REJECTED'
		ORDER BY end_time DESC
		LIMIT 1
	`

	return r.queryRef(ctx, query, itemID, now)
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingRef, error) {
	const query = `
		SELECT id, booker_id, start_time, end_time
		FROM bookings
		WHERE item_id = $1 AND start_time > $2 AND status = 'APPROVED'
		ORDER BY start_time
		LIMIT 1
	`

	return r.queryRef(ctx, query, itemID, now)
}

func (r *pgxRepository) queryRef(ctx context.Context, query, itemID string, now time.Time) (*item.BookingRef, error) {
	var ref item.BookingRef
	if err := r.pool.QueryRow(ctx, query, itemID, now).Scan(&ref.ID, &ref.BookerID, &ref.Start, &ref.End); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query booking ref failed: %w", err)
	}

	return &ref, nil
}
