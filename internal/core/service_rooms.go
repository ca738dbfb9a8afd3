package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stayflow/pkg/domain"
)

// Rooms returns every room ordered by id.
func (s *Service) Rooms(ctx context.Context) []Room {
	var rooms []Room
	s.view(ctx, "rooms.list", func(v domain.TransactionView) {
		rooms = v.ListRooms()
	})
	if rooms == nil {
		rooms = []Room{}
	}
	return rooms
}

// Room returns the room by id.
func (s *Service) Room(ctx context.Context, id int) (Room, bool) {
	var (
		room  Room
		found bool
	)
	s.view(ctx, "rooms.get", func(v domain.TransactionView) {
		room, found = v.FindRoom(id)
	})
	return room, found
}

// AvailableRooms returns rooms currently offered for booking.
func (s *Service) AvailableRooms(ctx context.Context) []Room {
	rooms := []Room{}
	s.view(ctx, "rooms.available", func(v domain.TransactionView) {
		for _, r := range v.ListRooms() {
			if r.Status == domain.RoomStatusAvailable {
				rooms = append(rooms, r)
			}
		}
	})
	return rooms
}

// RoomsByFloor returns rooms on the given floor.
func (s *Service) RoomsByFloor(ctx context.Context, floor int) []Room {
	rooms := []Room{}
	s.view(ctx, "rooms.by_floor", func(v domain.TransactionView) {
		for _, r := range v.ListRooms() {
			if r.Floor == floor {
				rooms = append(rooms, r)
			}
		}
	})
	return rooms
}

// CreateRoom validates and persists a new room. The form defaults status to
// available and cleaning status to clean.
func (s *Service) CreateRoom(ctx context.Context, form RoomForm) (Room, error) {
	start := time.Now()
	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		err := domain.ValidationError{Fields: fieldErrs}
		s.observe(ctx, "rooms.create", start, err)
		return Room{}, err
	}
	var created Room
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		created, err = tx.CreateRoom(form.room())
		return err
	})
	s.observe(ctx, "rooms.create", start, err)
	if err != nil {
		s.log.Error("create room failed", zap.Error(err))
		return Room{}, err
	}
	return created, nil
}

// UpdateRoom merges the patch into the stored room.
func (s *Service) UpdateRoom(ctx context.Context, id int, patch RoomPatch) (Room, error) {
	start := time.Now()
	var updated Room
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateRoom(id, func(r *Room) error {
			patch.Apply(r)
			return nil
		})
		return err
	})
	s.observe(ctx, "rooms.update", start, err)
	if err != nil {
		s.logMutationError("update room", id, err)
		return Room{}, err
	}
	return updated, nil
}

// DeleteRoom removes the room. Unused by the board UI but kept for parity
// with the record contract.
func (s *Service) DeleteRoom(ctx context.Context, id int) error {
	start := time.Now()
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		return tx.DeleteRoom(id)
	})
	s.observe(ctx, "rooms.delete", start, err)
	if err != nil {
		s.logMutationError("delete room", id, err)
	}
	return err
}

// AdvanceRoomStatus moves the room to the next status in the fixed cyclic
// order; the manual board action.
func (s *Service) AdvanceRoomStatus(ctx context.Context, id int) (Room, error) {
	start := time.Now()
	var updated Room
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateRoom(id, func(r *Room) error {
			r.Status = r.Status.Next()
			return nil
		})
		return err
	})
	s.observe(ctx, "rooms.advance_status", start, err)
	if err != nil {
		s.logMutationError("advance room status", id, err)
		return Room{}, err
	}
	return updated, nil
}
