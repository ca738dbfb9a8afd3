package core_test

import (
	"testing"
	"time"

	"stayflow/internal/core"
)

var formNow = time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

func TestRoomFormValidate(t *testing.T) {
	form := core.RoomForm{
		Number: "204",
		Type:   "Double",
		Floor:  "2",
		Rate:   "120.50",
	}
	if errs := form.Validate(); len(errs) != 0 {
		t.Fatalf("valid form returned errors: %v", errs)
	}

	empty := core.RoomForm{}
	errs := empty.Validate()
	want := map[string]string{
		"number": "Room number is required",
		"type":   "Room type is required",
		"floor":  "Floor is required",
		"rate":   "Rate is required",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s = %q, want %q (all: %v)", field, errs[field], msg, errs)
		}
	}

	bad := core.RoomForm{Number: "204", Type: "Double", Floor: "0", Rate: "-5"}
	errs = bad.Validate()
	if errs["floor"] != "Floor must be a positive number" {
		t.Fatalf("floor error = %q", errs["floor"])
	}
	if errs["rate"] != "Rate must be a valid positive number" {
		t.Fatalf("rate error = %q", errs["rate"])
	}
}

func TestReservationFormValidateDates(t *testing.T) {
	form := core.ReservationForm{
		GuestName:   "Maria Garcia",
		GuestEmail:  "maria@example.com",
		GuestPhone:  "+1-555-0142",
		RoomID:      "3",
		CheckIn:     "2025-01-10",
		CheckOut:    "2025-01-10",
		TotalAmount: "100",
	}
	errs := form.Validate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if errs["check_out"] != "Check-out date must be after check-in date" {
		t.Fatalf("equal dates must fail, got %v", errs)
	}

	form.CheckOut = "2025-01-12"
	if errs := form.Validate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)); len(errs) != 0 {
		t.Fatalf("valid dates returned errors: %v", errs)
	}

	form.CheckIn = "2024-12-20"
	errs = form.Validate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	if errs["check_in"] != "Check-in date cannot be in the past" {
		t.Fatalf("past check-in must fail, got %v", errs)
	}
}

func TestReservationFormValidateGuestFields(t *testing.T) {
	form := core.ReservationForm{
		CheckIn:     "2026-02-01",
		CheckOut:    "2026-02-03",
		TotalAmount: "100",
	}
	errs := form.Validate(formNow)
	if errs["guest_name"] != "Guest name is required" ||
		errs["guest_email"] != "Email is required" ||
		errs["guest_phone"] != "Phone number is required" ||
		errs["room_id"] != "Room selection is required" {
		t.Fatalf("missing-field messages wrong: %v", errs)
	}

	form.GuestName = "Maria Garcia"
	form.GuestEmail = "not-an-address"
	form.GuestPhone = "+1-555-0142"
	form.RoomID = "3"
	errs = form.Validate(formNow)
	if errs["guest_email"] != "Email is invalid" {
		t.Fatalf("malformed email message = %q", errs["guest_email"])
	}
}

func TestReservationFormValidateTotalAmount(t *testing.T) {
	form := core.ReservationForm{
		GuestName:  "Maria Garcia",
		GuestEmail: "maria@example.com",
		GuestPhone: "+1-555-0142",
		RoomID:     "3",
		CheckIn:    "2026-02-01",
		CheckOut:   "2026-02-03",
	}
	errs := form.Validate(formNow)
	if errs["total_amount"] != "Total amount is required" {
		t.Fatalf("blank total = %q", errs["total_amount"])
	}
	if errs := form.WithTotal(220).Validate(formNow); len(errs) != 0 {
		t.Fatalf("WithTotal form returned errors: %v", errs)
	}
	form.TotalAmount = "-3"
	errs = form.Validate(formNow)
	if errs["total_amount"] != "Total amount must be a valid positive number" {
		t.Fatalf("negative total = %q", errs["total_amount"])
	}
}

func TestTaskFormValidate(t *testing.T) {
	form := core.TaskForm{
		RoomID:     "1",
		Type:       "Deep Cleaning",
		AssignedTo: "Rosa Delgado",
	}
	if errs := form.Validate(formNow); errs["scheduled_time"] != "Scheduled time is required" {
		t.Fatalf("blank schedule must fail, got %v", errs)
	}

	empty := core.TaskForm{}
	errs := empty.Validate(formNow)
	if errs["room_id"] != "Room selection is required" ||
		errs["type"] != "Task type is required" ||
		errs["assigned_to"] != "Staff assignment is required" ||
		errs["scheduled_time"] != "Scheduled time is required" {
		t.Fatalf("missing-field messages wrong: %v", errs)
	}

	form.ScheduledTime = formNow.Add(-2 * time.Hour).Format(time.RFC3339)
	errs = form.Validate(formNow)
	if errs["scheduled_time"] != "Scheduled time cannot be in the past" {
		t.Fatalf("past schedule = %q", errs["scheduled_time"])
	}

	form.ScheduledTime = formNow.Add(2 * time.Hour).Format("2006-01-02T15:04")
	if errs := form.Validate(formNow); len(errs) != 0 {
		t.Fatalf("datetime-local form value must parse, got %v", errs)
	}
}
