package core

import "stayflow/pkg/domain"

type (
	EntityType         = domain.EntityType
	Room               = domain.Room
	Reservation        = domain.Reservation
	HousekeepingTask   = domain.HousekeepingTask
	RoomPatch          = domain.RoomPatch
	ReservationPatch   = domain.ReservationPatch
	TaskPatch          = domain.TaskPatch
	Change             = domain.Change
	Action             = domain.Action
	Violation          = domain.Violation
	Result             = domain.Result
	RulesEngine        = domain.RulesEngine
	RuleViolationError = domain.RuleViolationError
)

const (
	EntityRoom             = domain.EntityRoom
	EntityReservation      = domain.EntityReservation
	EntityHousekeepingTask = domain.EntityHousekeepingTask
)

const (
	SeverityBlock = domain.SeverityBlock
	SeverityWarn  = domain.SeverityWarn
	SeverityLog   = domain.SeverityLog
)

const (
	ActionCreate = domain.ActionCreate
	ActionUpdate = domain.ActionUpdate
	ActionDelete = domain.ActionDelete
)
