package boards_test

import (
	"testing"
	"time"

	"stayflow/internal/boards"
	"stayflow/pkg/domain"
)

func taskWith(id int, priority domain.TaskPriority, status domain.TaskStatus, scheduled time.Time) domain.HousekeepingTask {
	task := domain.HousekeepingTask{
		RoomID:        1,
		Type:          domain.TaskCleaning,
		Priority:      priority,
		AssignedTo:    "staff",
		Status:        status,
		ScheduledTime: scheduled,
	}
	task.ID = id
	return task
}

func TestSortTasksPriorityThenSchedule(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	items := []domain.HousekeepingTask{
		taskWith(1, domain.PriorityLow, domain.TaskPending, base),
		taskWith(2, domain.PriorityHigh, domain.TaskPending, base.Add(2*time.Hour)),
		taskWith(3, domain.PriorityHigh, domain.TaskPending, base),
		taskWith(4, domain.PriorityMedium, domain.TaskPending, base),
	}
	got := boards.SortTasks(items)
	wantOrder := []int{3, 2, 4, 1}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = task %d, want %d (full order %v)", i, got[i].ID, id, got)
		}
	}
}

func TestFilterTasksConjunction(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	items := []domain.HousekeepingTask{
		taskWith(1, domain.PriorityHigh, domain.TaskPending, base),
		taskWith(2, domain.PriorityHigh, domain.TaskCompleted, base),
		taskWith(3, domain.PriorityLow, domain.TaskPending, base),
	}
	filtered := boards.FilterTasksByStatus(items, "pending")
	filtered = boards.FilterTasksByPriority(filtered, "high")
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Fatalf("conjunction = %v", filtered)
	}
	if got := boards.FilterTasksByType(items, boards.FilterAll); len(got) != 3 {
		t.Fatalf("sentinel type filter dropped tasks")
	}
}

func TestTaskStats(t *testing.T) {
	base := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	items := []domain.HousekeepingTask{
		taskWith(1, domain.PriorityHigh, domain.TaskPending, base),
		taskWith(2, domain.PriorityMedium, domain.TaskInProgress, base),
		taskWith(3, domain.PriorityMedium, domain.TaskPending, base),
	}
	stats := boards.TaskStats(items)
	if stats["all"] != 3 || stats["pending"] != 2 || stats["in-progress"] != 1 || stats["completed"] != 0 {
		t.Fatalf("status stats = %v", stats)
	}
	byPriority := boards.TaskPriorityStats(items)
	if byPriority["high"] != 1 || byPriority["medium"] != 2 || byPriority["low"] != 0 {
		t.Fatalf("priority stats = %v", byPriority)
	}
}
