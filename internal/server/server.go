// Package server exposes the checker over HTTP.  It is a pure presentation
// boundary: every handler renders a SearchState or dataset stats produced by
// the application service and holds no resolution logic of its own.
package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/jennyflying-25/cisco-checker-app/internal/app"
	"github.com/jennyflying-25/cisco-checker-app/internal/types"
)

type Handler struct {
	service *app.Service
}

func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// New builds the echo instance with all routes registered.
func New(service *app.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	NewHandler(service).RegisterRoutes(e)
	return e
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.GET("/compat", h.GetCompatibility)
	api.GET("/health", h.GetHealth)
	api.POST("/reload", h.PostReload)
}

// GetCompatibility resolves ?model= and renders the search outcome.  The
// outcome kind travels in the body; a failed search maps to 503 so that
// callers can distinguish it from a legitimately empty result.
func (h *Handler) GetCompatibility(c echo.Context) error {
	state := h.service.Search(c.Request().Context(), c.QueryParam("model"))
	status := http.StatusOK
	if state.Kind == types.SearchKindFailed {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, state)
}

func (h *Handler) GetHealth(c echo.Context) error {
	stats := h.service.Stats()
	status := http.StatusOK
	if !stats.Loaded {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, stats)
}

// PostReload swaps in a freshly loaded snapshot.  In-flight searches keep
// the snapshot they started with.
func (h *Handler) PostReload(c echo.Context) error {
	ctx := c.Request().Context()
	if err := h.service.Load(ctx); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("dataset reload failed")
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "dataset reload failed",
		})
	}
	return c.JSON(http.StatusOK, h.service.Stats())
}

// Start runs the server until the context is cancelled.
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(addr)
	}()
	select {
	case <-ctx.Done():
		return e.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
