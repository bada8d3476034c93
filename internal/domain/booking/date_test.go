package booking

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-05")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-03-05" {
		t.Errorf("String() = %s, want 2026-03-05", d)
	}

	for _, bad := range []string{"", "05-03-2026", "2026/03/05", "2026-13-01", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2026, time.March, 5)

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `"2026-03-05"` {
		t.Errorf("Marshal = %s, want %q", raw, `"2026-03-05"`)
	}

	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	if err := json.Unmarshal([]byte(`20260305`), &back); err == nil {
		t.Error("Unmarshal of unquoted value succeeded, want error")
	}
}

func TestDateScan(t *testing.T) {
	want := NewDate(2026, time.March, 5)

	var d Date
	if err := d.Scan(time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if !d.Equal(want) {
		t.Errorf("Scan(time.Time) = %s, want %s (time-of-day must be dropped)", d, want)
	}

	var fromBytes Date
	if err := fromBytes.Scan([]byte("2026-03-05")); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if !fromBytes.Equal(want) {
		t.Errorf("Scan([]byte) = %s, want %s", fromBytes, want)
	}

	var fromString Date
	if err := fromString.Scan("2026-03-05"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}
	if !fromString.Equal(want) {
		t.Errorf("Scan(string) = %s, want %s", fromString, want)
	}

	var bad Date
	if err := bad.Scan(42); err == nil {
		t.Error("Scan(int) succeeded, want error")
	}
}
