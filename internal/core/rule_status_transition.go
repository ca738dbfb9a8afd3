package core

import (
	"context"
	"fmt"

	"stayflow/pkg/domain"
)

// StatusTransitionRule blocks illegal status moves on stateful entities.
// Reservations and housekeeping tasks follow their transition tables and
// never leave a terminal state; rooms may hold any known status since the
// board cycles them freely.
func StatusTransitionRule() domain.Rule {
	return statusTransitionRule{}
}

type statusTransitionRule struct{}

type statusMachine struct {
	label     string
	valid     func(state string) bool
	permitted func(before, after string) bool
	extractor func(payload any) (id int, state string, ok bool)
}

var statusMachines = map[domain.EntityType]statusMachine{
	domain.EntityRoom: {
		label: "room",
		valid: func(state string) bool { return domain.RoomStatus(state).Valid() },
		// The board may cycle or set any known status.
		permitted: func(string, string) bool { return true },
		extractor: func(payload any) (int, string, bool) {
			room, ok := payload.(domain.Room)
			if !ok {
				return 0, "", false
			}
			return room.ID, string(room.Status), true
		},
	},
	domain.EntityReservation: {
		label: "reservation",
		valid: func(state string) bool { return domain.ReservationStatus(state).Valid() },
		permitted: func(before, after string) bool {
			return domain.ReservationStatus(before).CanTransition(domain.ReservationStatus(after))
		},
		extractor: func(payload any) (int, string, bool) {
			res, ok := payload.(domain.Reservation)
			if !ok {
				return 0, "", false
			}
			return res.ID, string(res.Status), true
		},
	},
	domain.EntityHousekeepingTask: {
		label: "housekeeping task",
		valid: func(state string) bool { return domain.TaskStatus(state).Valid() },
		permitted: func(before, after string) bool {
			return domain.TaskStatus(before).CanTransition(domain.TaskStatus(after))
		},
		extractor: func(payload any) (int, string, bool) {
			task, ok := payload.(domain.HousekeepingTask)
			if !ok {
				return 0, "", false
			}
			return task.ID, string(task.Status), true
		},
	},
}

func (statusTransitionRule) Name() string { return "status_transition" }

func (statusTransitionRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		machine, ok := statusMachines[change.Entity]
		if !ok || change.Action == domain.ActionDelete {
			continue
		}

		afterID, afterState, ok := machine.extractor(change.After)
		if !ok {
			continue
		}
		if !machine.valid(afterState) {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "status_transition",
				Severity: domain.SeverityBlock,
				Message:  fmt.Sprintf("%s %d is set to invalid status %s", machine.label, afterID, afterState),
				Entity:   change.Entity,
				EntityID: afterID,
			})
			continue
		}

		if change.Action != domain.ActionUpdate {
			continue
		}
		_, beforeState, ok := machine.extractor(change.Before)
		if !ok || beforeState == afterState {
			continue
		}
		if !machine.permitted(beforeState, afterState) {
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     "status_transition",
				Severity: domain.SeverityBlock,
				Message:  fmt.Sprintf("%s %d cannot move from %s to %s", machine.label, afterID, beforeState, afterState),
				Entity:   change.Entity,
				EntityID: afterID,
			})
		}
	}
	return res, nil
}
