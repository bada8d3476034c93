package booking

import "sort"

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) share at least one night. A checkout on the same day
// as another stay's checkin does not overlap. Inputs are assumed
// validated (start < end); the check is symmetric in its two intervals.
func Overlaps(startA, endA, startB, endB Date) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// FindConflicts returns every confirmed booking whose stay overlaps
// [checkin, checkout). The slice is assumed to be scoped to a single
// (hotelID, roomID) unit already; all conflicts are returned, not just
// the first, so callers can report full detail.
func FindConflicts(bookings []Booking, checkin, checkout Date) []Booking {
	var conflicts []Booking
	for _, b := range bookings {
		if b.Status != StatusConfirmed {
			continue
		}
		if Overlaps(checkin, checkout, b.CheckinDate, b.CheckoutDate) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// NextAvailableDate proposes the earliest day on or after
// requestedCheckin from which a stay could begin without hitting a
// booked night. It sweeps the room's confirmed bookings in checkin
// order, jumping the cursor over each occupied span; a booking's
// checkout day itself is free.
//
// The result is a single candidate start date: the gap it opens is not
// checked against the length of the stay originally requested, so a
// later booking may still cut a short gap off.
func NextAvailableDate(bookings []Booking, requestedCheckin Date) Date {
	relevant := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status != StatusConfirmed {
			continue
		}
		if b.CheckoutDate.Before(requestedCheckin) {
			// Ended before the requested start, cannot block it
			continue
		}
		relevant = append(relevant, b)
	}

	if len(relevant) == 0 {
		return requestedCheckin
	}

	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].CheckinDate.Before(relevant[j].CheckinDate)
	})

	cursor := requestedCheckin
	for _, b := range relevant {
		if cursor.Before(b.CheckinDate) {
			// Gap before this booking starts
			return cursor
		}
		if cursor.Before(b.CheckoutDate) {
			cursor = b.CheckoutDate
		}
	}

	// No gap inside the booked span; first free day is after the last
	// booking ends
	return cursor
}
