package domain

import (
	"context"
	"time"
)

// Transaction exposes the domain operations that a persistence implementation
// must support within an atomic scope.
type Transaction interface {
	Snapshot() TransactionView
	CreateRoom(Room) (Room, error)
	UpdateRoom(id int, mutator func(*Room) error) (Room, error)
	DeleteRoom(id int) error
	CreateReservation(Reservation) (Reservation, error)
	UpdateReservation(id int, mutator func(*Reservation) error) (Reservation, error)
	DeleteReservation(id int) error
	CreateHousekeepingTask(HousekeepingTask) (HousekeepingTask, error)
	UpdateHousekeepingTask(id int, mutator func(*HousekeepingTask) error) (HousekeepingTask, error)
	DeleteHousekeepingTask(id int) error
	FindRoom(id int) (Room, bool)
	FindReservation(id int) (Reservation, bool)
	FindHousekeepingTask(id int) (HousekeepingTask, bool)
	Now() time.Time
}

// TransactionView provides read-only access to snapshot data for rules
// and derived queries.
type TransactionView = RuleView

// PersistentStore is a minimal abstraction over durable backends. The
// core services depend only on this contract, never on a concrete
// implementation; the backend is selected at startup.
type PersistentStore interface {
	RunInTransaction(ctx context.Context, fn func(Transaction) error) (Result, error)
	View(ctx context.Context, fn func(TransactionView) error) error
	GetRoom(id int) (Room, bool)
	ListRooms() []Room
	GetReservation(id int) (Reservation, bool)
	ListReservations() []Reservation
	GetHousekeepingTask(id int) (HousekeepingTask, bool)
	ListHousekeepingTasks() []HousekeepingTask
}
