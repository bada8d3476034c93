package validator

import "testing"

type sample struct {
	HotelID    string `json:"hotelId" validate:"required"`
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	Adults     int    `json:"adults" validate:"required,gte=1"`
}

func TestStructValid(t *testing.T) {
	s := sample{HotelID: "lp1", GuestEmail: "alice@example.com", Adults: 2}
	if err := Struct(&s); err != nil {
		t.Errorf("Struct: %v", err)
	}
}

func TestFirstReportsJSONName(t *testing.T) {
	s := sample{GuestEmail: "alice@example.com", Adults: 2}

	field, tag, ok := First(Struct(&s))
	if !ok {
		t.Fatal("First: no validation error found")
	}
	if field != "hotelId" {
		t.Errorf("field = %q, want json tag name hotelId", field)
	}
	if tag != "required" {
		t.Errorf("tag = %q, want required", tag)
	}
}

func TestFirstDeclarationOrder(t *testing.T) {
	// Both hotelId and adults are missing; the first declared wins
	s := sample{GuestEmail: "alice@example.com"}

	field, _, ok := First(Struct(&s))
	if !ok {
		t.Fatal("First: no validation error found")
	}
	if field != "hotelId" {
		t.Errorf("field = %q, want hotelId", field)
	}
}

func TestFirstEmailTag(t *testing.T) {
	s := sample{HotelID: "lp1", GuestEmail: "not-an-email", Adults: 2}

	field, tag, ok := First(Struct(&s))
	if !ok {
		t.Fatal("First: no validation error found")
	}
	if field != "guestEmail" || tag != "email" {
		t.Errorf("got (%q, %q), want (guestEmail, email)", field, tag)
	}
}

func TestFirstNonValidationError(t *testing.T) {
	if _, _, ok := First(nil); ok {
		t.Error("First(nil) reported a validation error")
	}
}
