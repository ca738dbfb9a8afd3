package boards

import (
	"sort"

	"stayflow/pkg/domain"
)

var taskStatuses = []domain.TaskStatus{
	domain.TaskPending,
	domain.TaskInProgress,
	domain.TaskCompleted,
}

var taskPriorities = []domain.TaskPriority{
	domain.PriorityHigh,
	domain.PriorityMedium,
	domain.PriorityLow,
}

// FilterTasksByStatus keeps tasks whose status equals the filter value;
// "all" or empty keeps everything.
func FilterTasksByStatus(items []domain.HousekeepingTask, status string) []domain.HousekeepingTask {
	if status == "" || status == FilterAll {
		return append([]domain.HousekeepingTask(nil), items...)
	}
	out := []domain.HousekeepingTask{}
	for _, t := range items {
		if string(t.Status) == status {
			out = append(out, t)
		}
	}
	return out
}

// FilterTasksByPriority keeps tasks of the given priority; "all" keeps everything.
func FilterTasksByPriority(items []domain.HousekeepingTask, priority string) []domain.HousekeepingTask {
	if priority == "" || priority == FilterAll {
		return append([]domain.HousekeepingTask(nil), items...)
	}
	out := []domain.HousekeepingTask{}
	for _, t := range items {
		if string(t.Priority) == priority {
			out = append(out, t)
		}
	}
	return out
}

// FilterTasksByType keeps tasks of the given type; "all" keeps everything.
func FilterTasksByType(items []domain.HousekeepingTask, taskType string) []domain.HousekeepingTask {
	if taskType == "" || taskType == FilterAll {
		return append([]domain.HousekeepingTask(nil), items...)
	}
	out := []domain.HousekeepingTask{}
	for _, t := range items {
		if string(t.Type) == taskType {
			out = append(out, t)
		}
	}
	return out
}

// SortTasks orders by priority, high first, breaking ties on the earlier
// scheduled time.
func SortTasks(items []domain.HousekeepingTask) []domain.HousekeepingTask {
	out := append([]domain.HousekeepingTask(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() > out[j].Priority.Rank()
		}
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out
}

// TaskStats counts tasks per status, zero-filled, plus "all" for the total.
func TaskStats(items []domain.HousekeepingTask) map[string]int {
	stats := map[string]int{FilterAll: len(items)}
	for _, s := range taskStatuses {
		stats[string(s)] = 0
	}
	for _, t := range items {
		stats[string(t.Status)]++
	}
	return stats
}

// TaskPriorityStats counts tasks per priority, zero-filled, plus "all".
func TaskPriorityStats(items []domain.HousekeepingTask) map[string]int {
	stats := map[string]int{FilterAll: len(items)}
	for _, p := range taskPriorities {
		stats[string(p)] = 0
	}
	for _, t := range items {
		stats[string(t.Priority)]++
	}
	return stats
}
