package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"stayflow/pkg/domain"
)

// Forms carry raw creation input the way the record boundary delivers it:
// snake_case keys, every scalar a string. Validation produces the
// field -> message mapping that blocks submission; coercion trims strings,
// parses numerics, and applies entity defaults before persistence.

var formValidator = validator.New(validator.WithRequiredStructEnabled())

// RoomForm is the raw input for creating a room.
type RoomForm struct {
	Number         string   `json:"number" validate:"required"`
	Type           string   `json:"type" validate:"required"`
	Status         string   `json:"status"`
	CleaningStatus string   `json:"cleaning_status"`
	Floor          string   `json:"floor" validate:"required"`
	Amenities      []string `json:"amenities"`
	Rate           string   `json:"rate" validate:"required"`
}

var roomMessages = map[string]string{
	"Number": "Room number is required",
	"Type":   "Room type is required",
	"Floor":  "Floor is required",
	"Rate":   "Rate is required",
}

var roomFields = map[string]string{
	"Number": "number",
	"Type":   "type",
	"Floor":  "floor",
	"Rate":   "rate",
}

// Validate returns the field -> message mapping; empty means the form may
// be submitted.
func (f RoomForm) Validate() map[string]string {
	f = f.trimmed()
	errs := collectErrors(f, roomFields, roomMessages)

	if f.Floor != "" {
		if floor, err := strconv.Atoi(f.Floor); err != nil || floor < 1 {
			errs["floor"] = "Floor must be a positive number"
		}
	}
	if f.Rate != "" {
		if rate, err := strconv.ParseFloat(f.Rate, 64); err != nil || rate < 0 {
			errs["rate"] = "Rate must be a valid positive number"
		}
	}
	if f.Type != "" && !domain.RoomType(f.Type).Valid() {
		errs["type"] = "Room type is invalid"
	}
	return errs
}

func (f RoomForm) trimmed() RoomForm {
	f.Number = strings.TrimSpace(f.Number)
	f.Type = strings.TrimSpace(f.Type)
	f.Status = strings.TrimSpace(f.Status)
	f.CleaningStatus = strings.TrimSpace(f.CleaningStatus)
	f.Floor = strings.TrimSpace(f.Floor)
	f.Rate = strings.TrimSpace(f.Rate)
	return f
}

// room coerces the validated form into an entity, applying defaults.
func (f RoomForm) room() Room {
	f = f.trimmed()
	floor, _ := strconv.Atoi(f.Floor)
	rate, _ := strconv.ParseFloat(f.Rate, 64)
	status := domain.RoomStatus(f.Status)
	if f.Status == "" {
		status = domain.RoomStatusAvailable
	}
	cleaning := domain.CleaningStatus(f.CleaningStatus)
	if f.CleaningStatus == "" {
		cleaning = domain.CleaningClean
	}
	amenities := make(domain.AmenityList, 0, len(f.Amenities))
	for _, a := range f.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	return Room{
		Number:         f.Number,
		Type:           domain.RoomType(f.Type),
		Status:         status,
		CleaningStatus: cleaning,
		Floor:          floor,
		Amenities:      amenities,
		Rate:           rate,
	}
}

// ReservationForm is the raw input for creating a reservation.
type ReservationForm struct {
	GuestName   string `json:"guest_name" validate:"required"`
	GuestEmail  string `json:"guest_email" validate:"required"`
	GuestPhone  string `json:"guest_phone" validate:"required"`
	RoomID      string `json:"room_id" validate:"required"`
	CheckIn     string `json:"check_in" validate:"required"`
	CheckOut    string `json:"check_out" validate:"required"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	Notes       string `json:"notes"`
}

var reservationMessages = map[string]string{
	"GuestName":  "Guest name is required",
	"GuestEmail": "Email is required",
	"GuestPhone": "Phone number is required",
	"RoomID":     "Room selection is required",
	"CheckIn":    "Check-in date is required",
	"CheckOut":   "Check-out date is required",
}

var reservationFields = map[string]string{
	"GuestName":  "guest_name",
	"GuestEmail": "guest_email",
	"GuestPhone": "guest_phone",
	"RoomID":     "room_id",
	"CheckIn":    "check_in",
	"CheckOut":   "check_out",
}

// Validate returns the field -> message mapping, using now for the
// past-date checks.
func (f ReservationForm) Validate(now time.Time) map[string]string {
	f = f.trimmed()
	errs := collectErrors(f, reservationFields, reservationMessages)
	if errs["guest_email"] == "" && f.GuestEmail != "" {
		if err := formValidator.Var(f.GuestEmail, "email"); err != nil {
			errs["guest_email"] = "Email is invalid"
		}
	}

	var checkIn, checkOut domain.Date
	if f.CheckIn != "" {
		parsed, err := domain.ParseDate(f.CheckIn)
		if err != nil {
			errs["check_in"] = "Check-in date is required"
		} else {
			checkIn = parsed
		}
	}
	if f.CheckOut != "" {
		parsed, err := domain.ParseDate(f.CheckOut)
		if err != nil {
			errs["check_out"] = "Check-out date is required"
		} else {
			checkOut = parsed
		}
	}
	if !checkIn.IsZero() && !checkOut.IsZero() {
		today := domain.DateOf(now)
		if checkIn.Before(today.Time) {
			errs["check_in"] = "Check-in date cannot be in the past"
		}
		if !checkOut.After(checkIn.Time) {
			errs["check_out"] = "Check-out date must be after check-in date"
		}
	}

	if f.TotalAmount == "" {
		errs["total_amount"] = "Total amount is required"
	} else if amount, err := strconv.ParseFloat(f.TotalAmount, 64); err != nil || amount < 0 {
		errs["total_amount"] = "Total amount must be a valid positive number"
	}
	return errs
}

func (f ReservationForm) trimmed() ReservationForm {
	f.GuestName = strings.TrimSpace(f.GuestName)
	f.GuestEmail = strings.TrimSpace(f.GuestEmail)
	f.GuestPhone = strings.TrimSpace(f.GuestPhone)
	f.RoomID = strings.TrimSpace(f.RoomID)
	f.CheckIn = strings.TrimSpace(f.CheckIn)
	f.CheckOut = strings.TrimSpace(f.CheckOut)
	f.Status = strings.TrimSpace(f.Status)
	f.TotalAmount = strings.TrimSpace(f.TotalAmount)
	return f
}

// WithTotal returns a copy of the form with the total amount filled in;
// used by the auto-calculation path when the caller left it blank.
func (f ReservationForm) WithTotal(amount float64) ReservationForm {
	f.TotalAmount = strconv.FormatFloat(amount, 'f', 2, 64)
	return f
}

// reservation coerces the validated form into an entity, applying defaults.
func (f ReservationForm) reservation() Reservation {
	f = f.trimmed()
	roomID, _ := strconv.Atoi(f.RoomID)
	checkIn, _ := domain.ParseDate(f.CheckIn)
	checkOut, _ := domain.ParseDate(f.CheckOut)
	amount, _ := strconv.ParseFloat(f.TotalAmount, 64)
	status := domain.ReservationStatus(f.Status)
	if f.Status == "" {
		status = domain.ReservationConfirmed
	}
	return Reservation{
		GuestName:   f.GuestName,
		GuestEmail:  f.GuestEmail,
		GuestPhone:  f.GuestPhone,
		RoomID:      roomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      status,
		TotalAmount: amount,
		Notes:       strings.TrimSpace(f.Notes),
	}
}

// TaskForm is the raw input for creating a housekeeping task.
type TaskForm struct {
	RoomID        string `json:"room_id" validate:"required"`
	Type          string `json:"type" validate:"required"`
	Priority      string `json:"priority"`
	AssignedTo    string `json:"assigned_to" validate:"required"`
	Status        string `json:"status"`
	ScheduledTime string `json:"scheduled_time" validate:"required"`
}

var taskMessages = map[string]string{
	"RoomID":        "Room selection is required",
	"Type":          "Task type is required",
	"AssignedTo":    "Staff assignment is required",
	"ScheduledTime": "Scheduled time is required",
}

var taskFields = map[string]string{
	"RoomID":        "room_id",
	"Type":          "type",
	"AssignedTo":    "assigned_to",
	"ScheduledTime": "scheduled_time",
}

// Validate returns the field -> message mapping, using now for the
// past-time check.
func (f TaskForm) Validate(now time.Time) map[string]string {
	f = f.trimmed()
	errs := collectErrors(f, taskFields, taskMessages)

	if f.Type != "" && !domain.TaskType(f.Type).Valid() {
		errs["type"] = "Task type is invalid"
	}
	if f.ScheduledTime != "" {
		scheduled, err := parseTaskTime(f.ScheduledTime)
		if err != nil {
			errs["scheduled_time"] = "Scheduled time is required"
		} else if scheduled.Before(now) {
			errs["scheduled_time"] = "Scheduled time cannot be in the past"
		}
	}
	return errs
}

func (f TaskForm) trimmed() TaskForm {
	f.RoomID = strings.TrimSpace(f.RoomID)
	f.Type = strings.TrimSpace(f.Type)
	f.Priority = strings.TrimSpace(f.Priority)
	f.AssignedTo = strings.TrimSpace(f.AssignedTo)
	f.Status = strings.TrimSpace(f.Status)
	f.ScheduledTime = strings.TrimSpace(f.ScheduledTime)
	return f
}

// task coerces the validated form into an entity.
func (f TaskForm) task() HousekeepingTask {
	f = f.trimmed()
	roomID, _ := strconv.Atoi(f.RoomID)
	scheduled, _ := parseTaskTime(f.ScheduledTime)
	priority := domain.TaskPriority(f.Priority)
	if f.Priority == "" {
		priority = domain.PriorityMedium
	}
	status := domain.TaskStatus(f.Status)
	if f.Status == "" {
		status = domain.TaskPending
	}
	return HousekeepingTask{
		RoomID:        roomID,
		Type:          domain.TaskType(f.Type),
		Priority:      priority,
		AssignedTo:    f.AssignedTo,
		Status:        status,
		ScheduledTime: scheduled,
	}
}

// parseTaskTime accepts RFC 3339 or the datetime-local form value.
func parseTaskTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// collectErrors runs tag validation and translates failures into the
// field -> message map using the per-form tables.
func collectErrors(form any, fields, messages map[string]string) map[string]string {
	errs := make(map[string]string)
	err := formValidator.Struct(form)
	if err == nil {
		return errs
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs
	}
	for _, fieldErr := range validationErrors {
		name := fieldErr.StructField()
		key, ok := fields[name]
		if !ok {
			continue
		}
		if _, taken := errs[key]; taken {
			continue
		}
		if msg, ok := messages[name]; ok {
			errs[key] = msg
		}
	}
	return errs
}
