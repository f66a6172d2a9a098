package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// ParseTextRequest is the body for POST /api/v1/parse.
type ParseTextRequest struct {
	Text string `json:"text"`
}

// ParseText parses a Vietnamese sentence into a structured event without
// storing it.
func (s *APIV1Service) ParseText(c echo.Context) error {
	req := new(ParseTextRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if req.Text == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "text is required")
	}

	parsed := s.Parser.Parse(c.Request().Context(), req.Text, time.Now())
	return c.JSON(http.StatusOK, parsed)
}
