package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"stayflow/internal/boards"
	"stayflow/internal/core"
)

type roomHandler struct {
	svc *core.Service
}

func newRoomHandler(svc *core.Service) *roomHandler {
	return &roomHandler{svc: svc}
}

// list returns the room board: rooms filtered by the status and floor query
// parameters, plus status counts and the distinct floors for the filter bar.
func (h *roomHandler) list(c echo.Context) error {
	rooms := h.svc.Rooms(c.Request().Context())
	filtered := boards.FilterRoomsByStatus(rooms, c.QueryParam("status"))
	filtered = boards.FilterRoomsByFloor(filtered, c.QueryParam("floor"))
	return c.JSON(http.StatusOK, echo.Map{
		"items":  filtered,
		"stats":  boards.RoomStats(rooms),
		"floors": boards.Floors(rooms),
	})
}

func (h *roomHandler) get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	room, found := h.svc.Room(c.Request().Context(), id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	}
	return c.JSON(http.StatusOK, room)
}

func (h *roomHandler) available(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.AvailableRooms(c.Request().Context()))
}

func (h *roomHandler) byFloor(c echo.Context) error {
	floor, err := strconv.Atoi(c.Param("floor"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid floor"})
	}
	return c.JSON(http.StatusOK, h.svc.RoomsByFloor(c.Request().Context(), floor))
}

func (h *roomHandler) create(c echo.Context) error {
	var form core.RoomForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c)
	}
	room, err := h.svc.CreateRoom(c.Request().Context(), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *roomHandler) update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch core.RoomPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c)
	}
	room, err := h.svc.UpdateRoom(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *roomHandler) remove(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *roomHandler) advanceStatus(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	room, err := h.svc.AdvanceRoomStatus(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}
