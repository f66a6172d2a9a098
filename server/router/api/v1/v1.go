// Package v1 exposes the REST API: sentence parsing, event CRUD by array
// index, file import/export and due-reminder polling.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/nhacviec/nhacviec/internal/profile"
	"github.com/nhacviec/nhacviec/plugin/nlp"
	"github.com/nhacviec/nhacviec/server/middleware"
	"github.com/nhacviec/nhacviec/store"
)

// APIV1Service wires the parser and the store into the v1 routes.
type APIV1Service struct {
	Profile *profile.Profile
	Store   *store.Store
	Parser  *nlp.Parser

	limiter *middleware.RateLimiter
}

// NewAPIV1Service creates the v1 API service.
func NewAPIV1Service(profile *profile.Profile, store *store.Store, parser *nlp.Parser) *APIV1Service {
	return &APIV1Service{
		Profile: profile,
		Store:   store,
		Parser:  parser,
		limiter: middleware.NewRateLimiter(),
	}
}

// Register mounts the v1 routes on the given Echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	g := e.Group("/api/v1")

	g.POST("/parse", s.ParseText, s.limiter.Middleware())

	g.GET("/events", s.ListEvents)
	g.POST("/events", s.CreateEvent)
	g.PUT("/events", s.UpdateEvent)
	g.DELETE("/events", s.DeleteEvent)
	g.GET("/events/export", s.ExportEvents)
	g.POST("/events/import", s.ImportEvents)

	g.GET("/reminders/due", s.DueReminders)
}
