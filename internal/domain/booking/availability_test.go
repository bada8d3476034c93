package booking

import (
	"testing"
)

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func stay(t *testing.T, checkin, checkout string) Booking {
	t.Helper()
	return Booking{
		HotelID:      "lp1",
		RoomID:       101,
		CheckinDate:  mustDate(t, checkin),
		CheckoutDate: mustDate(t, checkout),
		Status:       StatusConfirmed,
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"identical intervals", "2026-03-01", "2026-03-05", "2026-03-01", "2026-03-05", true},
		{"partial overlap", "2026-03-01", "2026-03-05", "2026-03-03", "2026-03-08", true},
		{"containment", "2026-03-01", "2026-03-10", "2026-03-03", "2026-03-05", true},
		{"single shared night", "2026-03-01", "2026-03-05", "2026-03-04", "2026-03-06", true},
		{"back to back, A then B", "2026-03-01", "2026-03-05", "2026-03-05", "2026-03-08", false},
		{"back to back, B then A", "2026-03-05", "2026-03-08", "2026-03-01", "2026-03-05", false},
		{"disjoint", "2026-03-01", "2026-03-03", "2026-03-10", "2026-03-12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a1, a2 := mustDate(t, tt.startA), mustDate(t, tt.endA)
			b1, b2 := mustDate(t, tt.startB), mustDate(t, tt.endB)

			if got := Overlaps(a1, a2, b1, b2); got != tt.want {
				t.Errorf("Overlaps(%s) = %v, want %v", tt.name, got, tt.want)
			}
			// Symmetric in its two intervals
			if got := Overlaps(b1, b2, a1, a2); got != tt.want {
				t.Errorf("Overlaps(%s) reversed = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestFindConflicts(t *testing.T) {
	cancelled := stay(t, "2026-03-02", "2026-03-06")
	cancelled.Status = StatusCancelled

	bookings := []Booking{
		stay(t, "2026-03-01", "2026-03-05"),
		stay(t, "2026-03-05", "2026-03-08"),
		cancelled,
		stay(t, "2026-03-10", "2026-03-12"),
	}

	conflicts := FindConflicts(bookings, mustDate(t, "2026-03-04"), mustDate(t, "2026-03-06"))
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2", len(conflicts))
	}
	if !conflicts[0].CheckinDate.Equal(mustDate(t, "2026-03-01")) {
		t.Errorf("first conflict checkin = %s, want 2026-03-01", conflicts[0].CheckinDate)
	}
	if !conflicts[1].CheckinDate.Equal(mustDate(t, "2026-03-05")) {
		t.Errorf("second conflict checkin = %s, want 2026-03-05", conflicts[1].CheckinDate)
	}
}

func TestFindConflictsIgnoresCancelled(t *testing.T) {
	cancelled := stay(t, "2026-03-01", "2026-03-05")
	cancelled.Status = StatusCancelled

	conflicts := FindConflicts([]Booking{cancelled}, mustDate(t, "2026-03-02"), mustDate(t, "2026-03-04"))
	if len(conflicts) != 0 {
		t.Fatalf("cancelled booking counted as conflict: %v", conflicts)
	}
}

func TestFindConflictsBackToBack(t *testing.T) {
	bookings := []Booking{stay(t, "2026-03-01", "2026-03-05")}

	conflicts := FindConflicts(bookings, mustDate(t, "2026-03-05"), mustDate(t, "2026-03-08"))
	if len(conflicts) != 0 {
		t.Fatalf("checkout-day checkin counted as conflict: %v", conflicts)
	}
}

func TestNextAvailableDate(t *testing.T) {
	tests := []struct {
		name      string
		bookings  []Booking
		requested string
		want      string
	}{
		{
			name:      "no bookings",
			bookings:  nil,
			requested: "2026-03-01",
			want:      "2026-03-01",
		},
		{
			name:      "sole blocking booking, checkout day is free",
			bookings:  []Booking{stay(t, "2026-03-01", "2026-03-05")},
			requested: "2026-03-01",
			want:      "2026-03-05",
		},
		{
			name: "gap between bookings",
			bookings: []Booking{
				stay(t, "2026-03-01", "2026-03-03"),
				stay(t, "2026-03-07", "2026-03-10"),
			},
			requested: "2026-03-01",
			want:      "2026-03-03",
		},
		{
			name: "contiguous span is swept as one block",
			bookings: []Booking{
				stay(t, "2026-03-01", "2026-03-03"),
				stay(t, "2026-03-03", "2026-03-06"),
				stay(t, "2026-03-06", "2026-03-09"),
			},
			requested: "2026-03-01",
			want:      "2026-03-09",
		},
		{
			name: "unsorted input",
			bookings: []Booking{
				stay(t, "2026-03-06", "2026-03-09"),
				stay(t, "2026-03-01", "2026-03-03"),
				stay(t, "2026-03-03", "2026-03-06"),
			},
			requested: "2026-03-01",
			want:      "2026-03-09",
		},
		{
			name: "bookings ended before the request are ignored",
			bookings: []Booking{
				stay(t, "2026-02-01", "2026-02-05"),
				stay(t, "2026-03-01", "2026-03-04"),
			},
			requested: "2026-03-01",
			want:      "2026-03-04",
		},
		{
			name: "overlapping bookings do not move the cursor backwards",
			bookings: []Booking{
				stay(t, "2026-03-01", "2026-03-08"),
				stay(t, "2026-03-02", "2026-03-04"),
			},
			requested: "2026-03-01",
			want:      "2026-03-08",
		},
		{
			name: "requested date already free before first booking",
			bookings: []Booking{
				stay(t, "2026-03-05", "2026-03-08"),
			},
			requested: "2026-03-01",
			want:      "2026-03-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextAvailableDate(tt.bookings, mustDate(t, tt.requested))
			if got.String() != tt.want {
				t.Errorf("NextAvailableDate() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextAvailableDateSkipsCancelled(t *testing.T) {
	cancelled := stay(t, "2026-03-01", "2026-03-05")
	cancelled.Status = StatusCancelled

	got := NextAvailableDate([]Booking{cancelled}, mustDate(t, "2026-03-01"))
	if got.String() != "2026-03-01" {
		t.Errorf("NextAvailableDate() = %s, want 2026-03-01", got)
	}
}
