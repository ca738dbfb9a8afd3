package core

import (
	"context"
	"fmt"

	"stayflow/pkg/domain"
)

// FieldBoundsRule enforces the per-field value constraints on committed
// records: a reservation's check-out must fall after its check-in and its
// total amount must not be negative; a room's floor starts at one and its
// rate must not be negative. Create forms check the same bounds up front,
// so this rule guards the patch path.
func FieldBoundsRule() domain.Rule {
	return fieldBoundsRule{}
}

type fieldBoundsRule struct{}

func (fieldBoundsRule) Name() string { return "field_bounds" }

func (fieldBoundsRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Action == domain.ActionDelete {
			continue
		}
		switch change.Entity {
		case domain.EntityReservation:
			r, ok := change.After.(domain.Reservation)
			if !ok {
				continue
			}
			if !r.CheckOut.After(r.CheckIn.Time) {
				res.Violations = append(res.Violations, reservationBoundsViolation(r.ID,
					fmt.Sprintf("reservation %d check_out %s is not after check_in %s", r.ID, r.CheckOut, r.CheckIn)))
			}
			if r.TotalAmount < 0 {
				res.Violations = append(res.Violations, reservationBoundsViolation(r.ID,
					fmt.Sprintf("reservation %d has a negative total_amount %.2f", r.ID, r.TotalAmount)))
			}
		case domain.EntityRoom:
			room, ok := change.After.(domain.Room)
			if !ok {
				continue
			}
			if room.Floor < 1 {
				res.Violations = append(res.Violations, roomBoundsViolation(room.ID,
					fmt.Sprintf("room %d has floor %d below 1", room.ID, room.Floor)))
			}
			if room.Rate < 0 {
				res.Violations = append(res.Violations, roomBoundsViolation(room.ID,
					fmt.Sprintf("room %d has a negative rate %.2f", room.ID, room.Rate)))
			}
		}
	}
	return res, nil
}

func reservationBoundsViolation(id int, msg string) domain.Violation {
	return domain.Violation{
		Rule:     "field_bounds",
		Severity: domain.SeverityBlock,
		Message:  msg,
		Entity:   domain.EntityReservation,
		EntityID: id,
	}
}

func roomBoundsViolation(id int, msg string) domain.Violation {
	return domain.Violation{
		Rule:     "field_bounds",
		Severity: domain.SeverityBlock,
		Message:  msg,
		Entity:   domain.EntityRoom,
		EntityID: id,
	}
}
