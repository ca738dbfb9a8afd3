package core

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stayflow/pkg/domain"
)

// Tasks returns every housekeeping task ordered by id.
func (s *Service) Tasks(ctx context.Context) []HousekeepingTask {
	var tasks []HousekeepingTask
	s.view(ctx, "housekeeping.list", func(v domain.TransactionView) {
		tasks = v.ListHousekeepingTasks()
	})
	if tasks == nil {
		tasks = []HousekeepingTask{}
	}
	return tasks
}

// Task returns the task by id.
func (s *Service) Task(ctx context.Context, id int) (HousekeepingTask, bool) {
	var (
		task  HousekeepingTask
		found bool
	)
	s.view(ctx, "housekeeping.get", func(v domain.TransactionView) {
		task, found = v.FindHousekeepingTask(id)
	})
	return task, found
}

// TodayTasks returns tasks scheduled on the current calendar date.
func (s *Service) TodayTasks(ctx context.Context) []HousekeepingTask {
	today := domain.DateOf(s.now())
	out := []HousekeepingTask{}
	s.view(ctx, "housekeeping.today", func(v domain.TransactionView) {
		for _, t := range v.ListHousekeepingTasks() {
			if today.SameDay(t.ScheduledTime) {
				out = append(out, t)
			}
		}
	})
	return out
}

// PendingTasks returns tasks still waiting to be started.
func (s *Service) PendingTasks(ctx context.Context) []HousekeepingTask {
	out := []HousekeepingTask{}
	s.view(ctx, "housekeeping.pending", func(v domain.TransactionView) {
		for _, t := range v.ListHousekeepingTasks() {
			if t.Status == domain.TaskPending {
				out = append(out, t)
			}
		}
	})
	return out
}

// CreateTask validates and persists a new housekeeping task.
func (s *Service) CreateTask(ctx context.Context, form TaskForm) (HousekeepingTask, error) {
	start := time.Now()
	now := s.now()
	if fieldErrs := form.Validate(now); len(fieldErrs) > 0 {
		err := domain.ValidationError{Fields: fieldErrs}
		s.observe(ctx, "housekeeping.create", start, err)
		return HousekeepingTask{}, err
	}
	var created HousekeepingTask
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		created, err = tx.CreateHousekeepingTask(form.task())
		return err
	})
	s.observe(ctx, "housekeeping.create", start, err)
	if err != nil {
		s.log.Error("create task failed", zap.Error(err))
		return HousekeepingTask{}, err
	}
	return created, nil
}

// UpdateTask merges the patch into the stored task.
func (s *Service) UpdateTask(ctx context.Context, id int, patch TaskPatch) (HousekeepingTask, error) {
	start := time.Now()
	var updated HousekeepingTask
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateHousekeepingTask(id, func(t *HousekeepingTask) error {
			patch.Apply(t)
			return nil
		})
		return err
	})
	s.observe(ctx, "housekeeping.update", start, err)
	if err != nil {
		s.logMutationError("update task", id, err)
		return HousekeepingTask{}, err
	}
	return updated, nil
}

// DeleteTask removes the task.
func (s *Service) DeleteTask(ctx context.Context, id int) error {
	start := time.Now()
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		return tx.DeleteHousekeepingTask(id)
	})
	s.observe(ctx, "housekeeping.delete", start, err)
	if err != nil {
		s.logMutationError("delete task", id, err)
	}
	return err
}

// StartTask moves a pending task to in-progress.
func (s *Service) StartTask(ctx context.Context, id int) (HousekeepingTask, error) {
	start := time.Now()
	var updated HousekeepingTask
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		var err error
		updated, err = tx.UpdateHousekeepingTask(id, func(t *HousekeepingTask) error {
			if !t.Status.CanTransition(domain.TaskInProgress) {
				return domain.TransitionError{Entity: EntityHousekeepingTask, ID: id, From: string(t.Status), To: string(domain.TaskInProgress)}
			}
			t.Status = domain.TaskInProgress
			return nil
		})
		return err
	})
	s.observe(ctx, "housekeeping.start", start, err)
	if err != nil {
		s.logMutationError("start task", id, err)
		return HousekeepingTask{}, err
	}
	return updated, nil
}

// CompleteTask moves an in-progress task to completed and stamps
// completed_time with the transaction instant.
func (s *Service) CompleteTask(ctx context.Context, id int) (HousekeepingTask, error) {
	start := time.Now()
	var updated HousekeepingTask
	_, err := s.store.RunInTransaction(ctx, func(tx Transaction) error {
		completedAt := tx.Now()
		var err error
		updated, err = tx.UpdateHousekeepingTask(id, func(t *HousekeepingTask) error {
			if !t.Status.CanTransition(domain.TaskCompleted) {
				return domain.TransitionError{Entity: EntityHousekeepingTask, ID: id, From: string(t.Status), To: string(domain.TaskCompleted)}
			}
			t.Status = domain.TaskCompleted
			t.CompletedTime = &completedAt
			return nil
		})
		return err
	})
	s.observe(ctx, "housekeeping.complete", start, err)
	if err != nil {
		s.logMutationError("complete task", id, err)
		return HousekeepingTask{}, err
	}
	return updated, nil
}
