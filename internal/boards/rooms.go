// Package boards computes the filtered views and aggregate statistics the
// front-desk boards render: pure, deterministic functions over a list
// snapshot, never touching the store.
package boards

import (
	"sort"
	"strconv"

	"stayflow/pkg/domain"
)

// FilterAll is the sentinel filter value that keeps every item.
const FilterAll = "all"

var roomStatuses = []domain.RoomStatus{
	domain.RoomStatusAvailable,
	domain.RoomStatusOccupied,
	domain.RoomStatusMaintenance,
	domain.RoomStatusCheckout,
	domain.RoomStatusReserved,
}

// FilterRoomsByStatus keeps rooms whose status equals the filter value.
// The sentinel "all" (or an empty filter) keeps everything.
func FilterRoomsByStatus(rooms []domain.Room, status string) []domain.Room {
	if status == "" || status == FilterAll {
		return append([]domain.Room(nil), rooms...)
	}
	out := []domain.Room{}
	for _, r := range rooms {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out
}

// FilterRoomsByFloor keeps rooms on the given floor. The filter is the
// decimal floor number as text; "all" or anything unparsable keeps everything.
func FilterRoomsByFloor(rooms []domain.Room, floor string) []domain.Room {
	if floor == "" || floor == FilterAll {
		return append([]domain.Room(nil), rooms...)
	}
	want, err := strconv.Atoi(floor)
	if err != nil {
		return append([]domain.Room(nil), rooms...)
	}
	out := []domain.Room{}
	for _, r := range rooms {
		if r.Floor == want {
			out = append(out, r)
		}
	}
	return out
}

// RoomStats counts rooms per status in a single pass. Every known status
// appears in the result, zero-valued when absent, plus "all" for the total.
func RoomStats(rooms []domain.Room) map[string]int {
	stats := map[string]int{FilterAll: len(rooms)}
	for _, s := range roomStatuses {
		stats[string(s)] = 0
	}
	for _, r := range rooms {
		stats[string(r.Status)]++
	}
	return stats
}

// Floors returns the distinct floors present, ascending.
func Floors(rooms []domain.Room) []int {
	seen := map[int]bool{}
	out := []int{}
	for _, r := range rooms {
		if !seen[r.Floor] {
			seen[r.Floor] = true
			out = append(out, r.Floor)
		}
	}
	sort.Ints(out)
	return out
}
