// Package server hosts the HTTP front end.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/nhacviec/nhacviec/internal/profile"
	"github.com/nhacviec/nhacviec/plugin/nlp"
	apiv1 "github.com/nhacviec/nhacviec/server/router/api/v1"
	"github.com/nhacviec/nhacviec/store"
)

// Server binds the parser and store behind an Echo HTTP server.
type Server struct {
	profile *profile.Profile
	echo    *echo.Echo
}

// New assembles the server and registers all routes.
func New(p *profile.Profile, st *store.Store, parser *nlp.Parser) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	apiv1.NewAPIV1Service(p, st, parser).Register(e)

	return &Server{profile: p, echo: e}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
	slog.Info("server listening", "addr", addr, "mode", s.profile.Mode)

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server failed")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown server")
	}
	slog.Info("server stopped")
	return nil
}
