package core

import (
	"context"
	"fmt"

	"stayflow/pkg/domain"
)

// CompletionStampRule enforces that completed_time is set exactly when a
// housekeeping task is completed: completed tasks must carry a stamp and
// tasks in any other status must not.
func CompletionStampRule() domain.Rule {
	return completionStampRule{}
}

type completionStampRule struct{}

func (completionStampRule) Name() string { return "completion_stamp" }

func (completionStampRule) Evaluate(_ context.Context, _ domain.RuleView, changes []domain.Change) (domain.Result, error) {
	res := domain.Result{}
	for _, change := range changes {
		if change.Entity != domain.EntityHousekeepingTask || change.Action == domain.ActionDelete {
			continue
		}
		task, ok := change.After.(domain.HousekeepingTask)
		if !ok {
			continue
		}
		completed := task.Status == domain.TaskCompleted
		stamped := task.CompletedTime != nil
		if completed == stamped {
			continue
		}
		msg := fmt.Sprintf("housekeeping task %d is completed without a completed_time", task.ID)
		if !completed {
			msg = fmt.Sprintf("housekeeping task %d has a completed_time but status %s", task.ID, task.Status)
		}
		res.Violations = append(res.Violations, domain.Violation{
			Rule:     "completion_stamp",
			Severity: domain.SeverityBlock,
			Message:  msg,
			Entity:   domain.EntityHousekeepingTask,
			EntityID: task.ID,
		})
	}
	return res, nil
}
