package boards_test

import (
	"testing"
	"time"

	"stayflow/internal/boards"
	"stayflow/pkg/domain"
)

func reservationWith(id int, name, email string, roomID int, checkIn, checkOut domain.Date, status domain.ReservationStatus) domain.Reservation {
	r := domain.Reservation{
		GuestName:  name,
		GuestEmail: email,
		RoomID:     roomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     status,
	}
	r.ID = id
	return r
}

func TestSearchReservationsCaseInsensitive(t *testing.T) {
	in := domain.NewDate(2026, time.March, 1)
	out := domain.NewDate(2026, time.March, 4)
	items := []domain.Reservation{
		reservationWith(1, "Maria Garcia", "maria.garcia@example.com", 3, in, out, domain.ReservationConfirmed),
		reservationWith(2, "John Smith", "john.smith@example.com", 5, in, out, domain.ReservationConfirmed),
	}
	got := boards.SearchReservations(items, "garcia")
	if len(got) != 1 || got[0].GuestName != "Maria Garcia" {
		t.Fatalf("search garcia = %v", got)
	}
	if got := boards.SearchReservations(items, "SMITH@EXAMPLE"); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("email search = %v", got)
	}
	if got := boards.SearchReservations(items, ""); len(got) != 2 {
		t.Fatalf("empty query must keep all, got %d", len(got))
	}
}

func TestSearchReservationsMatchesRoomID(t *testing.T) {
	in := domain.NewDate(2026, time.March, 1)
	out := domain.NewDate(2026, time.March, 2)
	items := []domain.Reservation{
		reservationWith(1, "A", "a@example.com", 302, in, out, domain.ReservationConfirmed),
		reservationWith(2, "B", "b@example.com", 7, in, out, domain.ReservationConfirmed),
	}
	if got := boards.SearchReservations(items, "302"); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("room id search = %v", got)
	}
}

func TestFilterReservationsByWindow(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	items := []domain.Reservation{
		reservationWith(1, "arriving", "a@example.com", 1,
			domain.NewDate(2026, time.March, 10), domain.NewDate(2026, time.March, 12), domain.ReservationConfirmed),
		reservationWith(2, "future", "b@example.com", 2,
			domain.NewDate(2026, time.March, 15), domain.NewDate(2026, time.March, 18), domain.ReservationConfirmed),
		reservationWith(3, "in-house", "c@example.com", 3,
			domain.NewDate(2026, time.March, 8), domain.NewDate(2026, time.March, 11), domain.ReservationCheckedIn),
		reservationWith(4, "lapsed", "d@example.com", 4,
			domain.NewDate(2026, time.March, 8), domain.NewDate(2026, time.March, 11), domain.ReservationConfirmed),
	}

	today := boards.FilterReservationsByWindow(items, boards.WindowToday, now)
	if len(today) != 1 || today[0].ID != 1 {
		t.Fatalf("today window = %v", today)
	}

	upcoming := boards.FilterReservationsByWindow(items, boards.WindowUpcoming, now)
	if len(upcoming) != 1 || upcoming[0].ID != 2 {
		t.Fatalf("upcoming window = %v", upcoming)
	}

	current := boards.FilterReservationsByWindow(items, boards.WindowCurrent, now)
	if len(current) != 1 || current[0].ID != 3 {
		t.Fatalf("current window must require checked-in, got %v", current)
	}

	if got := boards.FilterReservationsByWindow(items, "whenever", now); len(got) != 4 {
		t.Fatalf("unknown window must keep all, got %d", len(got))
	}
}

func TestSortReservationsMostRecentFirst(t *testing.T) {
	items := []domain.Reservation{
		reservationWith(1, "early", "a@example.com", 1,
			domain.NewDate(2026, time.February, 1), domain.NewDate(2026, time.February, 3), domain.ReservationConfirmed),
		reservationWith(2, "late", "b@example.com", 2,
			domain.NewDate(2026, time.March, 1), domain.NewDate(2026, time.March, 3), domain.ReservationConfirmed),
	}
	got := boards.SortReservations(items)
	if got[0].ID != 2 || got[1].ID != 1 {
		t.Fatalf("sort order = %v", got)
	}
	if items[0].ID != 1 {
		t.Fatalf("input slice must not be reordered in place")
	}
}

func TestReservationStatsZeroFilled(t *testing.T) {
	in := domain.NewDate(2026, time.March, 1)
	out := domain.NewDate(2026, time.March, 2)
	items := []domain.Reservation{
		reservationWith(1, "a", "a@example.com", 1, in, out, domain.ReservationConfirmed),
		reservationWith(2, "b", "b@example.com", 2, in, out, domain.ReservationCheckedIn),
	}
	stats := boards.ReservationStats(items)
	if stats["all"] != 2 || stats["confirmed"] != 1 || stats["checked-in"] != 1 {
		t.Fatalf("stats = %v", stats)
	}
	if v, ok := stats["cancelled"]; !ok || v != 0 {
		t.Fatalf("cancelled must be present and zero, got %v", stats)
	}
}
