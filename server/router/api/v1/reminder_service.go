package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DueReminders returns events whose reminder instant falls within the next
// polling window. Clients poll this once a minute.
func (s *APIV1Service) DueReminders(c echo.Context) error {
	due, err := s.Store.DueReminders(c.Request().Context(), time.Now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to check reminders").SetInternal(err)
	}
	return c.JSON(http.StatusOK, due)
}
