package booking

import (
	"context"
	"errors"
	"fmt"
)

// Draft carries the caller-supplied fields of a booking to create.
// Status is not part of the draft: every new booking is written as
// confirmed regardless of caller input.
type Draft struct {
	HotelID         string
	HotelName       string
	RoomID          int
	RoomName        string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckinDate     Date
	CheckoutDate    Date
	Adults          int
	Children        int
	TotalPrice      float64
	Currency        string
	SpecialRequests string
}

// validate guards the availability engine's preconditions. Presence of
// required fields is enforced at the transport layer; these checks
// cover what survives decoding.
func (d *Draft) validate() error {
	if !d.CheckinDate.Before(d.CheckoutDate) {
		return &ValidationError{Field: "checkinDate", Message: "checkinDate must be before checkoutDate"}
	}
	if d.Adults < 1 {
		return &ValidationError{Field: "adults", Message: "adults must be at least 1"}
	}
	if d.Children < 0 {
		return &ValidationError{Field: "children", Message: "children must not be negative"}
	}
	if d.TotalPrice < 0 {
		return &ValidationError{Field: "totalPrice", Message: "totalPrice must not be negative"}
	}
	return nil
}

func (d *Draft) toBooking() *Booking {
	return &Booking{
		HotelID:         d.HotelID,
		HotelName:       d.HotelName,
		RoomID:          d.RoomID,
		RoomName:        d.RoomName,
		GuestName:       d.GuestName,
		GuestEmail:      d.GuestEmail,
		GuestPhone:      nullString(d.GuestPhone),
		CheckinDate:     d.CheckinDate,
		CheckoutDate:    d.CheckoutDate,
		Adults:          d.Adults,
		Children:        d.Children,
		TotalPrice:      d.TotalPrice,
		Currency:        d.Currency,
		Status:          StatusConfirmed,
		SpecialRequests: nullString(d.SpecialRequests),
	}
}

// AvailabilityResult is what a read-only availability check yields.
type AvailabilityResult struct {
	Available     bool
	Conflicts     []Booking
	NextAvailable Date
}

// Service orchestrates booking creation and availability checks on top
// of the availability engine and the booking store.
type Service struct {
	repo Repository
}

// NewService creates a booking service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CheckAvailability reports whether [checkin, checkout) is free for
// the given room, with full conflict detail and a suggested restart
// date when it is not. Read-only.
func (s *Service) CheckAvailability(ctx context.Context, hotelID string, roomID int, checkin, checkout Date) (*AvailabilityResult, error) {
	if !checkin.Before(checkout) {
		return nil, &ValidationError{Field: "checkinDate", Message: "checkinDate must be before checkoutDate"}
	}

	existing, err := s.repo.FindByScope(ctx, hotelID, roomID)
	if err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}

	conflicts := FindConflicts(existing, checkin, checkout)
	if len(conflicts) == 0 {
		return &AvailabilityResult{Available: true}, nil
	}

	return &AvailabilityResult{
		Available:     false,
		Conflicts:     conflicts,
		NextAvailable: NextAvailableDate(existing, checkin),
	}, nil
}

// Create validates the draft, re-checks the room under a per-scope
// lock and inserts the booking. Exactly one of two concurrent creates
// for overlapping intervals can succeed: the loser either sees the
// winner's row during its locked check (ConflictError) or, if the row
// arrived through a path not holding the lock, is bounced by the
// database overlap constraint and retried once so it too ends in a
// ConflictError with full detail.
func (s *Service) Create(ctx context.Context, draft *Draft) (*Booking, error) {
	if err := draft.validate(); err != nil {
		return nil, err
	}

	created, err := s.tryCreate(ctx, draft)
	if errors.Is(err, ErrStorageConflict) {
		created, err = s.tryCreate(ctx, draft)
	}
	return created, err
}

func (s *Service) tryCreate(ctx context.Context, draft *Draft) (*Booking, error) {
	var created *Booking
	err := s.repo.WithScopeLock(ctx, draft.HotelID, draft.RoomID, func(ctx context.Context, tx Repository) error {
		existing, err := tx.FindByScope(ctx, draft.HotelID, draft.RoomID)
		if err != nil {
			return fmt.Errorf("load bookings: %w", err)
		}

		if conflicts := FindConflicts(existing, draft.CheckinDate, draft.CheckoutDate); len(conflicts) > 0 {
			return &ConflictError{
				Conflicts:     conflicts,
				NextAvailable: NextAvailableDate(existing, draft.CheckinDate),
			}
		}

		b := draft.toBooking()
		if err := tx.Insert(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns a booking by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all bookings.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.FindAll(ctx)
}

// ListByGuest returns the bookings made under a guest email.
func (s *Service) ListByGuest(ctx context.Context, email string) ([]Booking, error) {
	return s.repo.FindByGuestEmail(ctx, email)
}
