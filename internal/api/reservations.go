package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stayflow/internal/boards"
	"stayflow/internal/core"
)

type reservationHandler struct {
	svc *core.Service
}

func newReservationHandler(svc *core.Service) *reservationHandler {
	return &reservationHandler{svc: svc}
}

// list returns the reservation board: free-text search, status and date
// window filters compose by conjunction; results sort by check-in, most
// recent first.
func (h *reservationHandler) list(c echo.Context) error {
	all := h.svc.Reservations(c.Request().Context())
	filtered := boards.SearchReservations(all, c.QueryParam("search"))
	filtered = boards.FilterReservationsByStatus(filtered, c.QueryParam("status"))
	filtered = boards.FilterReservationsByWindow(filtered, c.QueryParam("window"), time.Now())
	return c.JSON(http.StatusOK, echo.Map{
		"items": boards.SortReservations(filtered),
		"stats": boards.ReservationStats(all),
	})
}

func (h *reservationHandler) get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	reservation, found := h.svc.Reservation(c.Request().Context(), id)
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "reservation not found"})
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *reservationHandler) todayArrivals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.TodayArrivals(c.Request().Context()))
}

func (h *reservationHandler) todayDepartures(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.TodayDepartures(c.Request().Context()))
}

func (h *reservationHandler) create(c echo.Context) error {
	var form core.ReservationForm
	if err := c.Bind(&form); err != nil {
		return badRequest(c)
	}
	reservation, err := h.svc.CreateReservation(c.Request().Context(), form)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, reservation)
}

func (h *reservationHandler) update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	var patch core.ReservationPatch
	if err := c.Bind(&patch); err != nil {
		return badRequest(c)
	}
	reservation, err := h.svc.UpdateReservation(c.Request().Context(), id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reservation)
}

func (h *reservationHandler) remove(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	if err := h.svc.DeleteReservation(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *reservationHandler) checkIn(c echo.Context) error {
	return h.transition(c, h.svc.CheckIn)
}

func (h *reservationHandler) checkOut(c echo.Context) error {
	return h.transition(c, h.svc.CheckOut)
}

func (h *reservationHandler) cancel(c echo.Context) error {
	return h.transition(c, h.svc.CancelReservation)
}

func (h *reservationHandler) transition(c echo.Context, op func(ctx context.Context, id int) (core.Reservation, error)) error {
	id, ok := pathID(c)
	if !ok {
		return badID(c)
	}
	reservation, err := op(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, reservation)
}
