package booking

import (
	"database/sql"
	"encoding/json"
	"strconv"

	"github.com/hotelfinder/hotelfinder-api/internal/pkg/validator"
)

// RoomIDParam decodes the wire roomId, which clients send either as a
// JSON number or a numeric string.
type RoomIDParam string

func (r *RoomIDParam) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RoomIDParam(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RoomIDParam(n.String())
	return nil
}

// Int parses the room ID into an integer.
func (r RoomIDParam) Int() (int, error) {
	return strconv.Atoi(string(r))
}

// CreateRequest for POST /bookings. Field order follows the required
// list the API documents; validation reports the first offending field.
type CreateRequest struct {
	HotelID         string      `json:"hotelId" validate:"required"`
	HotelName       string      `json:"hotelName" validate:"required"`
	RoomID          RoomIDParam `json:"roomId" validate:"required"`
	RoomName        string      `json:"roomName" validate:"required"`
	GuestName       string      `json:"guestName" validate:"required"`
	GuestEmail      string      `json:"guestEmail" validate:"required,email"`
	GuestPhone      string      `json:"guestPhone"`
	CheckinDate     string      `json:"checkinDate" validate:"required"`
	CheckoutDate    string      `json:"checkoutDate" validate:"required"`
	Adults          int         `json:"adults" validate:"required,gte=1"`
	Children        int         `json:"children" validate:"gte=0"`
	TotalPrice      float64     `json:"totalPrice" validate:"required,gte=0"`
	Currency        string      `json:"currency" validate:"required"`
	SpecialRequests string      `json:"specialRequests"`
}

// ToDraft validates the request and converts it into a service draft.
// roomId arrives as either a number or a numeric string on the wire.
func (r *CreateRequest) ToDraft() (*Draft, error) {
	if err := validator.Struct(r); err != nil {
		field, tag, ok := validator.First(err)
		if !ok {
			return nil, err
		}
		switch tag {
		case "required":
			return nil, &ValidationError{Field: field}
		case "email":
			return nil, &ValidationError{Field: field, Message: "guestEmail must be a valid email address"}
		default:
			return nil, &ValidationError{Field: field, Message: field + " has an invalid value"}
		}
	}

	roomID, err := r.RoomID.Int()
	if err != nil {
		return nil, &ValidationError{Field: "roomId", Message: "roomId must be an integer"}
	}
	checkin, err := ParseDate(r.CheckinDate)
	if err != nil {
		return nil, &ValidationError{Field: "checkinDate", Message: "checkinDate must be a YYYY-MM-DD date"}
	}
	checkout, err := ParseDate(r.CheckoutDate)
	if err != nil {
		return nil, &ValidationError{Field: "checkoutDate", Message: "checkoutDate must be a YYYY-MM-DD date"}
	}

	return &Draft{
		HotelID:         r.HotelID,
		HotelName:       r.HotelName,
		RoomID:          roomID,
		RoomName:        r.RoomName,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		CheckinDate:     checkin,
		CheckoutDate:    checkout,
		Adults:          r.Adults,
		Children:        r.Children,
		TotalPrice:      r.TotalPrice,
		Currency:        r.Currency,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// CheckAvailabilityRequest for POST /bookings/check-availability.
type CheckAvailabilityRequest struct {
	HotelID      string      `json:"hotelId" validate:"required"`
	RoomID       RoomIDParam `json:"roomId" validate:"required"`
	CheckinDate  string      `json:"checkinDate" validate:"required"`
	CheckoutDate string      `json:"checkoutDate" validate:"required"`
}

// BookingResponse is the wire representation of a booking.
type BookingResponse struct {
	ID              int64   `json:"id"`
	HotelID         string  `json:"hotelId"`
	HotelName       string  `json:"hotelName"`
	RoomID          int     `json:"roomId"`
	RoomName        string  `json:"roomName"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      *string `json:"guestPhone"`
	CheckinDate     Date    `json:"checkinDate"`
	CheckoutDate    Date    `json:"checkoutDate"`
	Adults          int     `json:"adults"`
	Children        int     `json:"children"`
	TotalPrice      float64 `json:"totalPrice"`
	Currency        string  `json:"currency"`
	Status          string  `json:"bookingStatus"`
	SpecialRequests *string `json:"specialRequests"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

func toResponses(bookings []Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, bookings[i].ToResponse())
	}
	return out
}

type createResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
	Message string           `json:"message"`
}

type listResponse struct {
	Success  bool               `json:"success"`
	Count    int                `json:"count"`
	Bookings []*BookingResponse `json:"bookings"`
}

type getResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

type availabilityResponse struct {
	Success             bool               `json:"success"`
	Available           bool               `json:"available"`
	Message             string             `json:"message,omitempty"`
	ConflictingBookings []*BookingResponse `json:"conflictingBookings,omitempty"`
	NextAvailableDate   *Date              `json:"nextAvailableDate,omitempty"`
}

type errorResponse struct {
	Error               string             `json:"error"`
	ConflictingBookings []*BookingResponse `json:"conflictingBookings,omitempty"`
	NextAvailableDate   *Date              `json:"nextAvailableDate,omitempty"`
}

// nullString maps an optional request field to its column value.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
