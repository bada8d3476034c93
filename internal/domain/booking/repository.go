package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Repository defines booking data access. WithScopeLock serializes
// check-then-insert sequences per (hotelID, roomID) scope; the
// repository passed to its callback runs inside that transaction.
type Repository interface {
	Insert(ctx context.Context, b *Booking) error
	FindByID(ctx context.Context, id int64) (*Booking, error)
	FindAll(ctx context.Context) ([]Booking, error)
	FindByScope(ctx context.Context, hotelID string, roomID int) ([]Booking, error)
	FindByGuestEmail(ctx context.Context, email string) ([]Booking, error)
	WithScopeLock(ctx context.Context, hotelID string, roomID int, fn func(ctx context.Context, tx Repository) error) error
}

// repository implements Repository over PostgreSQL. q is either the
// pool or an open transaction.
type repository struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

// NewRepository creates a booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db, q: db}
}

// Insert persists a new booking and fills in the store-assigned id and
// timestamps. Overlap-constraint violations map to ErrStorageConflict.
func (r *repository) Insert(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			hotel_id, hotel_name, room_id, room_name,
			guest_name, guest_email, guest_phone,
			checkin_date, checkout_date, adults, children,
			total_price, currency, booking_status, special_requests
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`
	err := r.q.QueryRowxContext(ctx, query,
		b.HotelID,
		b.HotelName,
		b.RoomID,
		b.RoomName,
		b.GuestName,
		b.GuestEmail,
		b.GuestPhone,
		b.CheckinDate,
		b.CheckoutDate,
		b.Adults,
		b.Children,
		b.TotalPrice,
		b.Currency,
		b.Status,
		b.SpecialRequests,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			// 23P01 exclusion_violation, 23505 unique_violation
			if pqErr.Code == "23P01" || pqErr.Code == "23505" {
				return fmt.Errorf("insert booking: %w", ErrStorageConflict)
			}
		}
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

// FindByID returns a booking by ID, or ErrNotFound.
func (r *repository) FindByID(ctx context.Context, id int64) (*Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var b Booking
	if err := sqlx.GetContext(ctx, r.q, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find booking %d: %w", id, err)
	}
	return &b, nil
}

// FindAll returns every booking, newest first.
func (r *repository) FindAll(ctx context.Context) ([]Booking, error) {
	query := `SELECT * FROM bookings ORDER BY created_at DESC`
	var bookings []Booking
	if err := sqlx.SelectContext(ctx, r.q, &bookings, query); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// FindByScope returns all bookings for a (hotelID, roomID) unit, any
// status; conflict detection filters to confirmed itself.
func (r *repository) FindByScope(ctx context.Context, hotelID string, roomID int) ([]Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE hotel_id = $1 AND room_id = $2
		ORDER BY checkin_date
	`
	var bookings []Booking
	if err := sqlx.SelectContext(ctx, r.q, &bookings, query, hotelID, roomID); err != nil {
		return nil, fmt.Errorf("list bookings for %s/%d: %w", hotelID, roomID, err)
	}
	return bookings, nil
}

// FindByGuestEmail returns the bookings made under a guest email,
// newest stay first.
func (r *repository) FindByGuestEmail(ctx context.Context, email string) ([]Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE guest_email = $1
		ORDER BY checkin_date DESC
	`
	var bookings []Booking
	if err := sqlx.SelectContext(ctx, r.q, &bookings, query, email); err != nil {
		return nil, fmt.Errorf("list bookings for guest: %w", err)
	}
	return bookings, nil
}

// WithScopeLock runs fn inside a transaction holding an advisory lock
// keyed on the (hotelID, roomID) scope. Concurrent create requests for
// the same room queue on the lock, so the conflict check each of them
// performs sees the other's committed insert. The lock is released on
// commit or rollback.
func (r *repository) WithScopeLock(ctx context.Context, hotelID string, roomID int, fn func(ctx context.Context, tx Repository) error) error {
	txx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}

	scopeKey := fmt.Sprintf("%s:%d", hotelID, roomID)
	if _, err := txx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, scopeKey); err != nil {
		_ = txx.Rollback()
		return fmt.Errorf("acquire scope lock for %s: %w", scopeKey, err)
	}

	if err := fn(ctx, &repository{db: r.db, q: txx}); err != nil {
		_ = txx.Rollback()
		return err
	}

	if err := txx.Commit(); err != nil {
		return fmt.Errorf("commit booking transaction: %w", err)
	}
	return nil
}
