package v1

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/nhacviec/nhacviec/store"
)

// ListEvents returns every stored event.
func (s *APIV1Service) ListEvents(c echo.Context) error {
	events, err := s.Store.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list events").SetInternal(err)
	}
	return c.JSON(http.StatusOK, events)
}

// CreateEvent stores a new event.
func (s *APIV1Service) CreateEvent(c echo.Context) error {
	event := new(store.Event)
	if err := c.Bind(event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	created, err := s.Store.Create(c.Request().Context(), *event)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to create event").SetInternal(err)
	}
	return c.JSON(http.StatusOK, created)
}

// UpdateEvent replaces the event at ?index=N.
func (s *APIV1Service) UpdateEvent(c echo.Context) error {
	index, err := eventIndex(c)
	if err != nil {
		return err
	}

	event := new(store.Event)
	if err := c.Bind(event); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body").SetInternal(err)
	}

	if err := s.Store.Update(c.Request().Context(), index, *event); err != nil {
		if errors.Is(err, store.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusBadRequest, "event index out of range")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to update event").SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// DeleteEvent removes the event at ?index=N.
func (s *APIV1Service) DeleteEvent(c echo.Context) error {
	index, err := eventIndex(c)
	if err != nil {
		return err
	}

	if err := s.Store.Delete(c.Request().Context(), index); err != nil {
		if errors.Is(err, store.ErrIndexOutOfRange) {
			return echo.NewHTTPError(http.StatusBadRequest, "event index out of range")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete event").SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// ExportEvents sends the backing file as a download.
func (s *APIV1Service) ExportEvents(c echo.Context) error {
	events, err := s.Store.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to export events").SetInternal(err)
	}

	data, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to encode events").SetInternal(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="events.json"`)
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// ImportEvents replaces the whole list with an uploaded JSON file.
func (s *APIV1Service) ImportEvents(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required").SetInternal(err)
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to open upload").SetInternal(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "failed to read upload").SetInternal(err)
	}

	var events []store.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "upload is not a valid event list").SetInternal(err)
	}

	if err := s.Store.ReplaceAll(c.Request().Context(), events); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to import events").SetInternal(err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": len(events)})
}

func eventIndex(c echo.Context) (int, error) {
	raw := c.QueryParam("index")
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "index is required")
	}
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "index must be an integer").SetInternal(err)
	}
	return index, nil
}
