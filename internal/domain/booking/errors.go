package booking

import "errors"

var (
	// ErrNotFound means a lookup by ID matched nothing.
	ErrNotFound = errors.New("booking not found")

	// ErrStorageConflict is returned by the repository when the
	// database overlap constraint rejects an insert: a concurrent
	// writer claimed an overlapping interval for the same room first.
	// The create path retries the full check-then-insert once on it.
	ErrStorageConflict = errors.New("booking rejected by overlap constraint")
)

// ValidationError reports the first missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "Missing required field: " + e.Field
}

// ConflictError rejects a create because the requested interval
// overlaps existing confirmed bookings in the same scope. It carries
// the full conflict list and a suggested restart date so the caller
// can resubmit without guessing.
type ConflictError struct {
	Conflicts     []Booking
	NextAvailable Date
}

func (e *ConflictError) Error() string {
	return "room is already booked for the selected dates"
}
