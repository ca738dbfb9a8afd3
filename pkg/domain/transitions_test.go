package domain_test

import (
	"testing"

	"stayflow/pkg/domain"
)

func TestRoomStatusCycleReturnsToStart(t *testing.T) {
	starts := []domain.RoomStatus{
		domain.RoomStatusAvailable,
		domain.RoomStatusOccupied,
		domain.RoomStatusMaintenance,
		domain.RoomStatusCheckout,
		domain.RoomStatusReserved,
	}
	for _, start := range starts {
		status := start
		for i := 0; i < 5; i++ {
			status = status.Next()
		}
		if status != start {
			t.Fatalf("cycling %s five times ended at %s", start, status)
		}
	}
}

func TestRoomStatusNextOrder(t *testing.T) {
	want := map[domain.RoomStatus]domain.RoomStatus{
		domain.RoomStatusAvailable:   domain.RoomStatusOccupied,
		domain.RoomStatusOccupied:    domain.RoomStatusMaintenance,
		domain.RoomStatusMaintenance: domain.RoomStatusCheckout,
		domain.RoomStatusCheckout:    domain.RoomStatusReserved,
		domain.RoomStatusReserved:    domain.RoomStatusAvailable,
	}
	for from, to := range want {
		if got := from.Next(); got != to {
			t.Fatalf("next of %s = %s, want %s", from, got, to)
		}
	}
	unknown := domain.RoomStatus("unheard-of")
	if got := unknown.Next(); got != unknown {
		t.Fatalf("next of unknown status = %s, want itself", got)
	}
}

func TestReservationTransitions(t *testing.T) {
	cases := []struct {
		from    domain.ReservationStatus
		to      domain.ReservationStatus
		allowed bool
	}{
		{domain.ReservationConfirmed, domain.ReservationCheckedIn, true},
		{domain.ReservationConfirmed, domain.ReservationCancelled, true},
		{domain.ReservationConfirmed, domain.ReservationCheckedOut, false},
		{domain.ReservationCheckedIn, domain.ReservationCheckedOut, true},
		{domain.ReservationCheckedIn, domain.ReservationConfirmed, false},
		{domain.ReservationCheckedIn, domain.ReservationCancelled, false},
		{domain.ReservationCheckedOut, domain.ReservationCheckedIn, false},
		{domain.ReservationCancelled, domain.ReservationConfirmed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s allowed=%v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
	if !domain.ReservationCheckedOut.Terminal() || !domain.ReservationCancelled.Terminal() {
		t.Fatalf("checked-out and cancelled must be terminal")
	}
	if domain.ReservationConfirmed.Terminal() {
		t.Fatalf("confirmed must not be terminal")
	}
}

func TestTaskTransitionsForwardOnly(t *testing.T) {
	if !domain.TaskPending.CanTransition(domain.TaskInProgress) {
		t.Fatalf("pending must allow in-progress")
	}
	if !domain.TaskInProgress.CanTransition(domain.TaskCompleted) {
		t.Fatalf("in-progress must allow completed")
	}
	if domain.TaskPending.CanTransition(domain.TaskCompleted) {
		t.Fatalf("pending must not skip to completed")
	}
	if domain.TaskCompleted.CanTransition(domain.TaskPending) || domain.TaskCompleted.CanTransition(domain.TaskInProgress) {
		t.Fatalf("completed must be terminal")
	}
}

func TestTaskPriorityRank(t *testing.T) {
	if domain.PriorityHigh.Rank() <= domain.PriorityMedium.Rank() {
		t.Fatalf("high must outrank medium")
	}
	if domain.PriorityMedium.Rank() <= domain.PriorityLow.Rank() {
		t.Fatalf("medium must outrank low")
	}
}
