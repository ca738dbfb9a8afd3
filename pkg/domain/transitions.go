package domain

// roomStatusCycle is the fixed cycling order used by the manual
// advance action on the room board. The table, not slice index
// arithmetic, is the source of truth for the order.
var roomStatusCycle = map[RoomStatus]RoomStatus{
	RoomStatusAvailable:   RoomStatusOccupied,
	RoomStatusOccupied:    RoomStatusMaintenance,
	RoomStatusMaintenance: RoomStatusCheckout,
	RoomStatusCheckout:    RoomStatusReserved,
	RoomStatusReserved:    RoomStatusAvailable,
}

// Valid reports whether the status is a known room status.
func (s RoomStatus) Valid() bool {
	_, ok := roomStatusCycle[s]
	return ok
}

// Next returns the following status in the fixed cyclic order. Unknown
// statuses return themselves so a bad record cannot advance.
func (s RoomStatus) Next() RoomStatus {
	next, ok := roomStatusCycle[s]
	if !ok {
		return s
	}
	return next
}

// Valid reports whether the cleaning status is known.
func (s CleaningStatus) Valid() bool {
	switch s {
	case CleaningClean, CleaningDirty, CleaningInProgress, CleaningInspected, CleaningOutOfOrder:
		return true
	}
	return false
}

// Valid reports whether the room type is a known category.
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTwin, RoomTypeQueen, RoomTypeKing,
		RoomTypeSuite, RoomTypeDeluxe, RoomTypeExecutive, RoomTypePresidential:
		return true
	}
	return false
}

// reservationTransitions enumerates the permitted reservation moves:
// a linear confirmed -> checked-in -> checked-out progression with
// cancellation as a terminal side branch from confirmed.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationConfirmed:  {ReservationCheckedIn, ReservationCancelled},
	ReservationCheckedIn:  {ReservationCheckedOut},
	ReservationCheckedOut: nil,
	ReservationCancelled:  nil,
}

// Valid reports whether the status is a known reservation status.
func (s ReservationStatus) Valid() bool {
	_, ok := reservationTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are permitted.
func (s ReservationStatus) Terminal() bool {
	next, ok := reservationTransitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether moving to the target status is permitted.
func (s ReservationStatus) CanTransition(to ReservationStatus) bool {
	for _, next := range reservationTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// taskTransitions enumerates the strictly forward housekeeping moves.
var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:    {TaskInProgress},
	TaskInProgress: {TaskCompleted},
	TaskCompleted:  nil,
}

// Valid reports whether the status is a known task status.
func (s TaskStatus) Valid() bool {
	_, ok := taskTransitions[s]
	return ok
}

// Terminal reports whether no further transitions are permitted.
func (s TaskStatus) Terminal() bool {
	next, ok := taskTransitions[s]
	return ok && len(next) == 0
}

// CanTransition reports whether moving to the target status is permitted.
func (s TaskStatus) CanTransition(to TaskStatus) bool {
	for _, next := range taskTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Valid reports whether the priority is known.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Rank orders priorities for the task board, high first.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether the task type is a known category.
func (t TaskType) Valid() bool {
	switch t {
	case TaskCleaning, TaskDeepCleaning, TaskMaintenance, TaskInspection,
		TaskTurnover, TaskLaundry, TaskRestocking, TaskRepair:
		return true
	}
	return false
}
