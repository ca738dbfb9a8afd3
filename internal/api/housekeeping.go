package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"stayflow/internal/boards"
	"stayflow/internal/core"
)

type housekeepingHandler struct {
	svc *core.Service
}

func newHousekeepingHandler(svc *core.Service) *housekeepingHandler {
	return &housekeepingHandler{svc: svc}
}

// list returns the housekeeping board: status, priority, and type filters
// compose by conjunction; results sort high priority first, earliest
// scheduled time breaking ties.
func (h *housekeepingHandler) list(c echo.Context) error {
	all := h.svc.Tasks(c.Request().Context())
	filtered := boards.FilterTasksByStatus(all, c.QueryParam("status"))
	filtered = boards.FilterTasksByPriority(filtered, c.QueryParam("priority"))
	filtered = boards.FilterTasksByType(filtered, c.QueryParam("type"))
	return c.JSON(http.StatusOK, echo.Map{
		"items":          boards.SortTasks(filtered),
		"stats":          boards.TaskStats(all),
		"priority_stats": boards.TaskPriorityStats(all),
	})
}

func (h *housekeepingHandler) get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	task, found := h.svc.Task(c.Request().Context(), id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "task not found"})
	}
	return c.JSON(http.StatusOK, task)
}

func (h *housekeepingHandler) today(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.TodayTasks(c.Request().Context()))
}

func (h *housekeepingHandler) pending(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.PendingTasks(c.Request().Context()))
}

func (h *housekeepingHandler) create(c echo.Context) error {
	var form core.TaskForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c)
	}
	task, err := h.svc.CreateTask(c.Request().Context(), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, task)
}

func (h *housekeepingHandler) update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch core.TaskPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c)
	}
	task, err := h.svc.UpdateTask(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}

func (h *housekeepingHandler) remove(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.svc.DeleteTask(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *housekeepingHandler) start(c echo.Context) error {
	return h.transition(c, h.svc.StartTask)
}

func (h *housekeepingHandler) complete(c echo.Context) error {
	return h.transition(c, h.svc.CompleteTask)
}

func (h *housekeepingHandler) transition(c echo.Context, op func(ctx context.Context, id int) (core.HousekeepingTask, error)) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	task, err := op(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, task)
}
