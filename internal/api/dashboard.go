package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"stayflow/internal/boards"
)

// dashboard returns the property-wide summary the landing view renders.
func (s *Server) dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	summary := boards.Summarize(
		s.svc.Rooms(ctx),
		s.svc.Reservations(ctx),
		s.svc.Tasks(ctx),
		time.Now(),
	)
	return c.JSON(http.StatusOK, summary)
}
