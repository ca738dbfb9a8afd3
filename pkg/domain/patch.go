package domain

import "time"

// Patch types carry partial updates. A nil field means "absent, leave
// unchanged"; JSON null and omission are equivalent. Clearing a
// free-text field is expressed with an explicit empty string.

// RoomPatch is a partial update against a room.
type RoomPatch struct {
	Number         *string         `json:"number"`
	Type           *RoomType       `json:"type"`
	Status         *RoomStatus     `json:"status"`
	CleaningStatus *CleaningStatus `json:"cleaning_status"`
	Floor          *int            `json:"floor"`
	Amenities      *AmenityList    `json:"amenities"`
	Rate           *float64        `json:"rate"`
}

// Apply merges present fields into the room.
func (p RoomPatch) Apply(r *Room) {
	if p.Number != nil {
		r.Number = *p.Number
	}
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.CleaningStatus != nil {
		r.CleaningStatus = *p.CleaningStatus
	}
	if p.Floor != nil {
		r.Floor = *p.Floor
	}
	if p.Amenities != nil {
		r.Amenities = append(AmenityList(nil), (*p.Amenities)...)
	}
	if p.Rate != nil {
		r.Rate = *p.Rate
	}
}

// ReservationPatch is a partial update against a reservation.
type ReservationPatch struct {
	GuestName   *string            `json:"guest_name"`
	GuestEmail  *string            `json:"guest_email"`
	GuestPhone  *string            `json:"guest_phone"`
	RoomID      *int               `json:"room_id"`
	CheckIn     *Date              `json:"check_in"`
	CheckOut    *Date              `json:"check_out"`
	Status      *ReservationStatus `json:"status"`
	TotalAmount *float64           `json:"total_amount"`
	Notes       *string            `json:"notes"`
}

// Apply merges present fields into the reservation.
func (p ReservationPatch) Apply(r *Reservation) {
	if p.GuestName != nil {
		r.GuestName = *p.GuestName
	}
	if p.GuestEmail != nil {
		r.GuestEmail = *p.GuestEmail
	}
	if p.GuestPhone != nil {
		r.GuestPhone = *p.GuestPhone
	}
	if p.RoomID != nil {
		r.RoomID = *p.RoomID
	}
	if p.CheckIn != nil {
		r.CheckIn = *p.CheckIn
	}
	if p.CheckOut != nil {
		r.CheckOut = *p.CheckOut
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.TotalAmount != nil {
		r.TotalAmount = *p.TotalAmount
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}

// TaskPatch is a partial update against a housekeeping task.
type TaskPatch struct {
	RoomID        *int          `json:"room_id"`
	Type          *TaskType     `json:"type"`
	Priority      *TaskPriority `json:"priority"`
	AssignedTo    *string       `json:"assigned_to"`
	Status        *TaskStatus   `json:"status"`
	ScheduledTime *time.Time    `json:"scheduled_time"`
	CompletedTime *time.Time    `json:"completed_time"`
}

// Apply merges present fields into the task.
func (p TaskPatch) Apply(t *HousekeepingTask) {
	if p.RoomID != nil {
		t.RoomID = *p.RoomID
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		t.AssignedTo = *p.AssignedTo
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.ScheduledTime != nil {
		t.ScheduledTime = *p.ScheduledTime
	}
	if p.CompletedTime != nil {
		completed := *p.CompletedTime
		t.CompletedTime = &completed
	}
}
