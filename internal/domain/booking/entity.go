package booking

import (
	"database/sql"
	"time"
)

// Status represents booking lifecycle state. Bookings are only ever
// written as confirmed here; cancellation flows live outside this
// service, and only confirmed bookings participate in conflict
// detection.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is a reservation of one room (the (hotelID, roomID) scope)
// for a half-open stay interval [CheckinDate, CheckoutDate).
type Booking struct {
	ID              int64          `db:"id"`
	HotelID         string         `db:"hotel_id"`
	HotelName       string         `db:"hotel_name"`
	RoomID          int            `db:"room_id"`
	RoomName        string         `db:"room_name"`
	GuestName       string         `db:"guest_name"`
	GuestEmail      string         `db:"guest_email"`
	GuestPhone      sql.NullString `db:"guest_phone"`
	CheckinDate     Date           `db:"checkin_date"`
	CheckoutDate    Date           `db:"checkout_date"`
	Adults          int            `db:"adults"`
	Children        int            `db:"children"`
	TotalPrice      float64        `db:"total_price"`
	Currency        string         `db:"currency"`
	Status          Status         `db:"booking_status"`
	SpecialRequests sql.NullString `db:"special_requests"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

// ToResponse converts entity to its wire representation.
func (b *Booking) ToResponse() *BookingResponse {
	resp := &BookingResponse{
		ID:           b.ID,
		HotelID:      b.HotelID,
		HotelName:    b.HotelName,
		RoomID:       b.RoomID,
		RoomName:     b.RoomName,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		CheckinDate:  b.CheckinDate,
		CheckoutDate: b.CheckoutDate,
		Adults:       b.Adults,
		Children:     b.Children,
		TotalPrice:   b.TotalPrice,
		Currency:     b.Currency,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
	if b.GuestPhone.Valid {
		resp.GuestPhone = &b.GuestPhone.String
	}
	if b.SpecialRequests.Valid {
		resp.SpecialRequests = &b.SpecialRequests.String
	}
	return resp
}
