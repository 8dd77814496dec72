package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByBooker(ctx context.Context, bookerID string, f Filter, now time.Time) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID string, f Filter, now time.Time) ([]*Booking, error)

	// UpdateStatus flips the status from `from` to `to` as a single
	// compare-and-swap so two concurrent decisions cannot both succeed.
	// Returns ErrAlreadyDecided when the booking is no longer in `from`.
	UpdateStatus(ctx context.Context, id string, from, to Status) error

	// LastForItem and NextForItem return the most recent started and the
	// soonest upcoming non-rejected booking for an item, or nil when none.
	// Used by the item module for the owner's item view.
	LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)
	NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error)

	// EligibleForComment returns the booker's past or current approved
	// bookings on the item, confirming the user actually held it before a
	// review-style comment is accepted.
	EligibleForComment(ctx context.Context, bookerID, itemID string, now time.Time) ([]*Booking, error)
}

const bookingColumns = "b.id, b.item_id, b.booker_id, b.start_time, b.end_time, b.status, b.created_at, " +
	"u.id, u.name, u.email, i.id, i.name, i.description, i.available, i.owner_id"

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns("item_id", "booker_id", "start_time", "end_time", "status").
		Values(b.ItemID, b.BookerID, b.Start, b.End, b.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
}

func (r *pgxRepository) selectBookings() squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	return psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.users u ON b.booker_id = u.id").
		Join("public.items i ON b.item_id = i.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	if err := row.Scan(
		&b.ID, &b.ItemID, &b.BookerID, &b.Start, &b.End, &b.Status, &b.CreatedAt,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

// applyFilter translates a temporal filter into SQL conditions. The windows
// mirror Filter.Matches exactly; both paths must classify identically.
func applyFilter(q squirrel.SelectBuilder, f Filter, now time.Time) squirrel.SelectBuilder {
	switch f {
	case FilterCurrent:
		q = q.Where(squirrel.LtOrEq{"b.start_time": now}).
			Where(squirrel.Gt{"b.end_time": now})
	case FilterPast:
		q = q.Where(squirrel.LtOrEq{"b.end_time": now})
	case FilterFuture:
		q = q.Where(squirrel.Gt{"b.start_time": now})
	case FilterWaiting:
		q = q.Where(squirrel.Eq{"b.status": StatusWaiting})
	case FilterRejected:
		q = q.Where(squirrel.Eq{"b.status": StatusRejected})
	}
	return q
}

func (r *pgxRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*Booking, error) {
	query, args, err := q.OrderBy("b.start_time DESC", "b.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID string, f Filter, now time.Time) ([]*Booking, error) {
	q := applyFilter(r.selectBookings().Where(squirrel.Eq{"b.booker_id": bookerID}), f, now)
	return r.list(ctx, q)
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID string, f Filter, now time.Time) ([]*Booking, error) {
	q := applyFilter(r.selectBookings().Where(squirrel.Eq{"i.owner_id": ownerID}), f, now)
	return r.list(ctx, q)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, from, to Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		// The row left `from` between our read and this write.
		return ErrAlreadyDecided
	}
	return nil
}

func (r *pgxRepository) LastForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.LtOrEq{"b.start_time": now}).
		Where(squirrel.NotEq{"b.status": StatusRejected}).
		OrderBy("b.start_time DESC", "b.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build last booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) NextForItem(ctx context.Context, itemID string, now time.Time) (*Booking, error) {
	query, args, err := r.selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID}).
		Where(squirrel.Gt{"b.start_time": now}).
		Where(squirrel.NotEq{"b.status": StatusRejected}).
		OrderBy("b.start_time ASC", "b.id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build next booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get next booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) EligibleForComment(ctx context.Context, bookerID, itemID string, now time.Time) ([]*Booking, error) {
	q := r.selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID, "b.item_id": itemID, "b.status": StatusApproved}).
		Where(squirrel.LtOrEq{"b.start_time": now})
	return r.list(ctx, q)
}
