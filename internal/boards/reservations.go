package boards

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"stayflow/pkg/domain"
)

// Date-window filter values for the reservation board.
const (
	WindowToday    = "today"
	WindowUpcoming = "upcoming"
	WindowCurrent  = "current"
)

var reservationStatuses = []domain.ReservationStatus{
	domain.ReservationConfirmed,
	domain.ReservationCheckedIn,
	domain.ReservationCheckedOut,
	domain.ReservationCancelled,
}

// SearchReservations keeps reservations matching the query case-insensitively
// against guest name, guest email, or room id text. Empty query keeps all.
func SearchReservations(items []domain.Reservation, query string) []domain.Reservation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return append([]domain.Reservation(nil), items...)
	}
	out := []domain.Reservation{}
	for _, r := range items {
		if strings.Contains(strings.ToLower(r.GuestName), query) ||
			strings.Contains(strings.ToLower(r.GuestEmail), query) ||
			strings.Contains(strconv.Itoa(r.RoomID), query) {
			out = append(out, r)
		}
	}
	return out
}

// FilterReservationsByStatus keeps reservations whose status equals the
// filter value; "all" or empty keeps everything.
func FilterReservationsByStatus(items []domain.Reservation, status string) []domain.Reservation {
	if status == "" || status == FilterAll {
		return append([]domain.Reservation(nil), items...)
	}
	out := []domain.Reservation{}
	for _, r := range items {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// FilterReservationsByWindow keeps reservations within the named date window
// relative to now: "today" matches a check-in or check-out on the current
// calendar date, "upcoming" a check-in strictly after now, and "current" a
// stay spanning now with the guest checked in. Anything else keeps all.
func FilterReservationsByWindow(items []domain.Reservation, window string, now time.Time) []domain.Reservation {
	today := domain.DateOf(now)
	keep := func(r domain.Reservation) bool { return true }
	switch window {
	case WindowToday:
		keep = func(r domain.Reservation) bool {
			return r.CheckIn.SameDay(today.Time) || r.CheckOut.SameDay(today.Time)
		}
	case WindowUpcoming:
		keep = func(r domain.Reservation) bool {
			return r.CheckIn.Time.After(now)
		}
	case WindowCurrent:
		keep = func(r domain.Reservation) bool {
			return r.Status == domain.ReservationCheckedIn &&
				!r.CheckIn.Time.After(now) && !r.CheckOut.Time.Before(now)
		}
	}
	out := []domain.Reservation{}
	for _, r := range items {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// SortReservations orders by check-in descending, most recent stay first.
func SortReservations(items []domain.Reservation) []domain.Reservation {
	out := append([]domain.Reservation(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].CheckIn.Time.Before(out[i].CheckIn.Time)
	})
	return out
}

// ReservationStats counts reservations per status, zero-filled over the
// known statuses, plus "all" for the total.
func ReservationStats(items []domain.Reservation) map[string]int {
	stats := map[string]int{FilterAll: len(items)}
	for _, s := range reservationStatuses {
		stats[string(s)] = 0
	}
	for _, r := range items {
		stats[string(r.Status)]++
	}
	return stats
}
