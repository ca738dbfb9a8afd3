// Package domain defines the core persistent entities, value types, and
// rule evaluation primitives used by stayflow.
package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// EntityType identifies the type of record stored in a collection.
type EntityType string

// Supported entity type identifiers used in Change records and persistence buckets.
const (
	// EntityRoom identifies a room record.
	EntityRoom EntityType = "room"
	// EntityReservation identifies a reservation record.
	EntityReservation EntityType = "reservation"
	// EntityHousekeepingTask identifies a housekeeping task record.
	EntityHousekeepingTask EntityType = "housekeeping"
)

// RoomStatus represents the front-desk occupancy state of a room.
type RoomStatus string

// Canonical room statuses in their fixed cycling order.
const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusOccupied    RoomStatus = "occupied"
	RoomStatusMaintenance RoomStatus = "maintenance"
	RoomStatusCheckout    RoomStatus = "checkout"
	RoomStatusReserved    RoomStatus = "reserved"
)

// CleaningStatus tracks housekeeping readiness of a room.
type CleaningStatus string

// Canonical cleaning statuses shown on the room board.
const (
	CleaningClean      CleaningStatus = "clean"
	CleaningDirty      CleaningStatus = "dirty"
	CleaningInProgress CleaningStatus = "in-progress"
	CleaningInspected  CleaningStatus = "inspected"
	CleaningOutOfOrder CleaningStatus = "out-of-order"
)

// RoomType enumerates the sellable room categories of the property.
type RoomType string

// Room categories offered by the property.
const (
	RoomTypeSingle       RoomType = "Single"
	RoomTypeDouble       RoomType = "Double"
	RoomTypeTwin         RoomType = "Twin"
	RoomTypeQueen        RoomType = "Queen"
	RoomTypeKing         RoomType = "King"
	RoomTypeSuite        RoomType = "Suite"
	RoomTypeDeluxe       RoomType = "Deluxe"
	RoomTypeExecutive    RoomType = "Executive"
	RoomTypePresidential RoomType = "Presidential"
)

// ReservationStatus represents the front-desk lifecycle of a booking.
type ReservationStatus string

// Canonical reservation statuses.
const (
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked-in"
	ReservationCheckedOut ReservationStatus = "checked-out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// TaskStatus represents housekeeping task progress.
type TaskStatus string

// Canonical housekeeping task statuses.
const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority orders housekeeping tasks on the board.
type TaskPriority string

// Canonical task priorities, high sorts first.
const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskType enumerates the kinds of housekeeping work tracked by the board.
type TaskType string

// Housekeeping task categories.
const (
	TaskCleaning     TaskType = "Cleaning"
	TaskDeepCleaning TaskType = "Deep Cleaning"
	TaskMaintenance  TaskType = "Maintenance"
	TaskInspection   TaskType = "Inspection"
	TaskTurnover     TaskType = "Turnover"
	TaskLaundry      TaskType = "Laundry"
	TaskRestocking   TaskType = "Restocking"
	TaskRepair       TaskType = "Repair"
)

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior and logging.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn logs a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Base contains common fields for all domain records. Identity and
// audit timestamps are assigned by the store, never by callers.
type Base struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityList is a set of amenity labels. Its persisted form is the
// comma-joined text the record backend expects; decoding accepts both
// the joined string and a plain JSON array.
type AmenityList []string

// MarshalJSON serializes the list as comma-joined text.
func (a AmenityList) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(a, ","))
}

// UnmarshalJSON accepts either comma-joined text or a string array.
func (a *AmenityList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		if joined == "" {
			*a = nil
			return nil
		}
		parts := strings.Split(joined, ",")
		out := make(AmenityList, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		*a = out
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	*a = AmenityList(arr)
	return nil
}

// Room represents a sellable unit of the property.
type Room struct {
	Base
	Number         string         `json:"number"`
	Type           RoomType       `json:"type"`
	Status         RoomStatus     `json:"status"`
	CleaningStatus CleaningStatus `json:"cleaning_status"`
	Floor          int            `json:"floor"`
	Amenities      AmenityList    `json:"amenities"`
	Rate           float64        `json:"rate"`
}

// Reservation represents a guest booking against a single room.
type Reservation struct {
	Base
	GuestName   string            `json:"guest_name"`
	GuestEmail  string            `json:"guest_email"`
	GuestPhone  string            `json:"guest_phone"`
	RoomID      int               `json:"room_id"`
	CheckIn     Date              `json:"check_in"`
	CheckOut    Date              `json:"check_out"`
	Status      ReservationStatus `json:"status"`
	TotalAmount float64           `json:"total_amount"`
	Notes       string            `json:"notes"`
}

// Nights returns the whole nights between check-in and check-out.
func (r Reservation) Nights() int {
	return r.CheckIn.DaysUntil(r.CheckOut)
}

// HousekeepingTask represents a unit of housekeeping work against a room.
type HousekeepingTask struct {
	Base
	RoomID        int          `json:"room_id"`
	Type          TaskType     `json:"type"`
	Priority      TaskPriority `json:"priority"`
	AssignedTo    string       `json:"assigned_to"`
	Status        TaskStatus   `json:"status"`
	ScheduledTime time.Time    `json:"scheduled_time"`
	CompletedTime *time.Time   `json:"completed_time"`
}

// Change describes a mutation applied to an entity during a transaction.
type Change struct {
	Entity EntityType
	Action Action
	Before any
	After  any
}

// Action indicates the type of modification performed.
type Action string

// Change actions enumerate supported CRUD operations captured for rule evaluation.
const (
	// ActionCreate indicates an entity was created.
	ActionCreate Action = "create"
	// ActionUpdate indicates an entity was updated.
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID int
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	return "transaction blocked by rules"
}
