package core

import (
	"context"
	"fmt"

	"stayflow/pkg/domain"
)

// RoomReferenceRule enforces referential integrity of room_id foreign keys:
// reservations and tasks must point at an existing room, and a newly created
// reservation must reference a room that is available at creation time.
func RoomReferenceRule() domain.Rule {
	return roomReferenceRule{}
}

type roomReferenceRule struct{}

func (roomReferenceRule) Name() string { return "room_reference" }

func (roomReferenceRule) Evaluate(_ context.Context, view domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Action == domain.ActionDelete {
			continue
		}
		switch change.Entity {
		case domain.EntityReservation:
			reservation, ok := change.After.(domain.Reservation)
			if !ok {
				continue
			}
			room, found := view.FindRoom(reservation.RoomID)
			if !found {
				res.Violations = append(res.Violations, violationFor(change.Entity, reservation.ID,
					fmt.Sprintf("reservation %d references missing room %d", reservation.ID, reservation.RoomID)))
				continue
			}
			if change.Action != domain.ActionCreate {
				continue
			}
			// Availability is only checked when the booking is made; later
			// room-status churn must not invalidate an existing reservation.
			if room.Status != domain.RoomStatusAvailable {
				res.Violations = append(res.Violations, violationFor(change.Entity, reservation.ID,
					fmt.Sprintf("reservation %d references room %d with status %s, want available", reservation.ID, room.ID, room.Status)))
			}
		case domain.EntityHousekeepingTask:
			task, ok := change.After.(domain.HousekeepingTask)
			if !ok {
				continue
			}
			if _, found := view.FindRoom(task.RoomID); !found {
				res.Violations = append(res.Violations, violationFor(change.Entity, task.ID,
					fmt.Sprintf("housekeeping task %d references missing room %d", task.ID, task.RoomID)))
			}
		}
	}
	return res, nil
}

func violationFor(entity domain.EntityType, id int, msg string) domain.Violation {
	return domain.Violation{
		Rule:     "room_reference",
		Severity: domain.SeverityBlock,
		Message:  msg,
		Entity:   entity,
		EntityID: id,
	}
}
