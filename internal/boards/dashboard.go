package boards

import (
	"math"
	"time"

	"stayflow/pkg/domain"
)

// DashboardSummary aggregates the property-wide figures shown on the
// dashboard landing view.
type DashboardSummary struct {
	TotalRooms      int                       `json:"total_rooms"`
	OccupancyRate   int                       `json:"occupancy_rate"`
	RoomStats       map[string]int            `json:"room_stats"`
	TodayArrivals   int                       `json:"today_arrivals"`
	TodayDepartures int                       `json:"today_departures"`
	Revenue         float64                   `json:"revenue"`
	PendingTasks    int                       `json:"pending_tasks"`
	HighPriority    []domain.HousekeepingTask `json:"high_priority_alerts"`
}

// OccupancyRate returns occupied rooms over total as a rounded percentage,
// zero when there are no rooms.
func OccupancyRate(rooms []domain.Room) int {
	if len(rooms) == 0 {
		return 0
	}
	occupied := 0
	for _, r := range rooms {
		if r.Status == domain.RoomStatusOccupied {
			occupied++
		}
	}
	return int(math.Round(float64(occupied) / float64(len(rooms)) * 100))
}

// Revenue sums total amounts over reservations that produced income:
// guests currently checked in or already checked out.
func Revenue(items []domain.Reservation) float64 {
	var total float64
	for _, r := range items {
		if r.Status == domain.ReservationCheckedIn || r.Status == domain.ReservationCheckedOut {
			total += r.TotalAmount
		}
	}
	return total
}

// HighPriorityAlerts returns unfinished high-priority tasks in board order.
func HighPriorityAlerts(items []domain.HousekeepingTask) []domain.HousekeepingTask {
	alerts := []domain.HousekeepingTask{}
	for _, t := range items {
		if t.Priority == domain.PriorityHigh && t.Status != domain.TaskCompleted {
			alerts = append(alerts, t)
		}
	}
	return SortTasks(alerts)
}

// Summarize computes the dashboard aggregates from full collection snapshots.
func Summarize(rooms []domain.Room, reservations []domain.Reservation, tasks []domain.HousekeepingTask, now time.Time) DashboardSummary {
	today := domain.DateOf(now)
	arrivals, departures := 0, 0
	for _, r := range reservations {
		if r.CheckIn.SameDay(today.Time) {
			arrivals++
		}
		if r.CheckOut.SameDay(today.Time) {
			departures++
		}
	}
	pending := 0
	for _, t := range tasks {
		if t.Status == domain.TaskPending {
			pending++
		}
	}
	return DashboardSummary{
		TotalRooms:      len(rooms),
		OccupancyRate:   OccupancyRate(rooms),
		RoomStats:       RoomStats(rooms),
		TodayArrivals:   arrivals,
		TodayDepartures: departures,
		Revenue:         Revenue(reservations),
		PendingTasks:    pending,
		HighPriority:    HighPriorityAlerts(tasks),
	}
}
