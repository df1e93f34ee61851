// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// CalendarDependencies defines the interface for reference-data reads.
type CalendarDependencies interface {
	Holidays(ctx context.Context) []model.HolidayEntry
	Events(ctx context.Context) []model.Event
}

// CalendarHandler serves the holiday and event reference lists.
type CalendarHandler struct {
	deps CalendarDependencies
}

// NewCalendarHandler creates a new calendar handler.
func NewCalendarHandler(deps CalendarDependencies) *CalendarHandler {
	return &CalendarHandler{deps: deps}
}

type holidayEntry struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type eventEntry struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// HandleGetHolidays handles GET /api/holidays requests.
func (h *CalendarHandler) HandleGetHolidays(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	entries := h.deps.Holidays(r.Context())
	out := make([]holidayEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, holidayEntry{Date: e.Date.Format(model.DateLayout), Name: e.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleGetEvents handles GET /api/events requests.
func (h *CalendarHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	events := h.deps.Events(r.Context())
	out := make([]eventEntry, 0, len(events))
	for _, e := range events {
		out = append(out, eventEntry{Date: e.Date.Format(model.DateLayout), Description: e.Description})
	}
	writeJSON(w, http.StatusOK, out)
}
