package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"stayflow/pkg/domain"
)

func TestParseDateFormats(t *testing.T) {
	plain, err := domain.ParseDate("2026-03-01")
	if err != nil {
		t.Fatalf("parse plain date: %v", err)
	}
	stamped, err := domain.ParseDate("2026-03-01T18:45:00Z")
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	if !plain.Equal(stamped.Time) {
		t.Fatalf("timestamp must truncate to the same date, got %s vs %s", plain, stamped)
	}
	if _, err := domain.ParseDate("March 1st"); err == nil {
		t.Fatalf("expected parse failure for free-form text")
	}
}

func TestDaysUntil(t *testing.T) {
	checkIn := domain.NewDate(2026, time.March, 1)
	checkOut := domain.NewDate(2026, time.March, 4)
	if nights := checkIn.DaysUntil(checkOut); nights != 3 {
		t.Fatalf("expected 3 nights, got %d", nights)
	}
	if back := checkOut.DaysUntil(checkIn); back != -3 {
		t.Fatalf("expected -3 going backwards, got %d", back)
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	day := domain.NewDate(2026, time.March, 1)
	if !day.SameDay(time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC)) {
		t.Fatalf("late evening must still match the date")
	}
	if day.SameDay(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("next day must not match")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	day := domain.NewDate(2026, time.March, 1)
	data, err := json.Marshal(day)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-03-01"` {
		t.Fatalf("unexpected serialized form %s", data)
	}
	var decoded domain.Date
	if err := json.Unmarshal([]byte(`"2026-03-01T08:00:00Z"`), &decoded); err != nil {
		t.Fatalf("unmarshal timestamp form: %v", err)
	}
	if !decoded.Equal(day.Time) {
		t.Fatalf("decoded %s, want %s", decoded, day)
	}
}

func TestAmenityListPersistedForm(t *testing.T) {
	list := domain.AmenityList{"WiFi", "TV", "Mini Bar"}
	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"WiFi,TV,Mini Bar"` {
		t.Fatalf("unexpected joined form %s", data)
	}
	var fromJoined domain.AmenityList
	if err := json.Unmarshal(data, &fromJoined); err != nil {
		t.Fatalf("unmarshal joined: %v", err)
	}
	var fromArray domain.AmenityList
	if err := json.Unmarshal([]byte(`["WiFi","TV","Mini Bar"]`), &fromArray); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if len(fromJoined) != 3 || len(fromArray) != 3 || fromJoined[2] != "Mini Bar" {
		t.Fatalf("decode mismatch: %v vs %v", fromJoined, fromArray)
	}
}

func TestReservationNights(t *testing.T) {
	r := domain.Reservation{
		CheckIn:  domain.NewDate(2026, time.March, 1),
		CheckOut: domain.NewDate(2026, time.March, 4),
	}
	if r.Nights() != 3 {
		t.Fatalf("expected 3 nights, got %d", r.Nights())
	}
}
