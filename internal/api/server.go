// Package api exposes the stayflow front-desk service over HTTP as a JSON
// API plus health and metrics endpoints.
package api

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"stayflow/internal/config"
	"stayflow/internal/core"
)

// CustomValidator adapts a validator instance to Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate runs struct validation over the bound request payload.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// Server hosts the HTTP surface over a core service.
type Server struct {
	app *echo.Echo
	svc *core.Service
	cfg config.Config
	log *zap.Logger
}

// NewServer wires routes, middleware, and handlers around the service.
func NewServer(svc *core.Service, cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	s := &Server{app: e, svc: svc, cfg: cfg, log: log}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	e := s.app
	e.GET("/healthz", s.health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	rooms := newRoomHandler(s.svc)
	api.GET("/rooms", rooms.list)
	api.POST("/rooms", rooms.create)
	api.GET("/rooms/available", rooms.available)
	api.GET("/rooms/floor/:floor", rooms.byFloor)
	api.GET("/rooms/:id", rooms.get)
	api.PUT("/rooms/:id", rooms.update)
	api.DELETE("/rooms/:id", rooms.remove)
	api.POST("/rooms/:id/advance-status", rooms.advanceStatus)

	reservations := newReservationHandler(s.svc)
	api.GET("/reservations", reservations.list)
	api.POST("/reservations", reservations.create)
	api.GET("/reservations/arrivals/today", reservations.todayArrivals)
	api.GET("/reservations/departures/today", reservations.todayDepartures)
	api.GET("/reservations/export", reservations.export)
	api.GET("/reservations/:id", reservations.get)
	api.PUT("/reservations/:id", reservations.update)
	api.DELETE("/reservations/:id", reservations.remove)
	api.POST("/reservations/:id/check-in", reservations.checkIn)
	api.POST("/reservations/:id/check-out", reservations.checkOut)
	api.POST("/reservations/:id/cancel", reservations.cancel)

	tasks := newHousekeepingHandler(s.svc)
	api.GET("/housekeeping", tasks.list)
	api.POST("/housekeeping", tasks.create)
	api.GET("/housekeeping/today", tasks.today)
	api.GET("/housekeeping/pending", tasks.pending)
	api.GET("/housekeeping/:id", tasks.get)
	api.PUT("/housekeeping/:id", tasks.update)
	api.DELETE("/housekeeping/:id", tasks.remove)
	api.POST("/housekeeping/:id/start", tasks.start)
	api.POST("/housekeeping/:id/complete", tasks.complete)

	api.GET("/dashboard", s.dashboard)
	api.GET("/settings", s.settings)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(200, echo.Map{"status": "ok"})
}

func (s *Server) settings(c echo.Context) error {
	return c.JSON(200, s.cfg.Property)
}

// Start runs the listener until it fails or the server shuts down.
func (s *Server) Start() error {
	return s.app.Start(s.cfg.HTTPAddr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.app
}
