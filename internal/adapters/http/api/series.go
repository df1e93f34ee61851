// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/lwyay/riderboard/internal/domain/insight"
)

// SeriesDependencies defines the interface for chart-data operations.
type SeriesDependencies interface {
	Series(ctx context.Context, f insight.Filter, names []string) ([]insight.Series, error)
	Markers(ctx context.Context, f insight.Filter, withHolidays, withEvents bool) ([]insight.Marker, error)
}

// SeriesHandler handles chart-data requests.
type SeriesHandler struct {
	deps SeriesDependencies
}

// NewSeriesHandler creates a new series handler.
func NewSeriesHandler(deps SeriesDependencies) *SeriesHandler {
	return &SeriesHandler{deps: deps}
}

type seriesResponse struct {
	Series  []insight.Series `json:"series"`
	Markers []insight.Marker `json:"markers,omitempty"`
}

// modeAliases maps the short query values to canonical series names.
var modeAliases = map[string]string{
	"bus":   insight.SeriesBus,
	"rail":  insight.SeriesRail,
	"total": insight.SeriesTotal,
}

// HandleGetSeries handles
// GET /api/series?year=&month=&modes=bus,rail,total&holidays=1&events=1.
// Without a modes parameter all three series are returned.
func (h *SeriesHandler) HandleGetSeries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	names := []string{insight.SeriesBus, insight.SeriesRail, insight.SeriesTotal}
	if raw := strings.TrimSpace(r.URL.Query().Get("modes")); raw != "" {
		names = names[:0]
		for _, m := range strings.Split(raw, ",") {
			name, ok := modeAliases[strings.ToLower(strings.TrimSpace(m))]
			if !ok {
				writeError(w, http.StatusBadRequest, "invalid_filter", ErrBadRequest)
				return
			}
			names = append(names, name)
		}
	}

	series, err := h.deps.Series(r.Context(), f, names)
	if err != nil {
		if errors.Is(err, insight.ErrInvalidFilter) {
			writeError(w, http.StatusBadRequest, "invalid_filter", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}

	resp := seriesResponse{Series: series}
	withHolidays := r.URL.Query().Get("holidays") == "1"
	withEvents := r.URL.Query().Get("events") == "1"
	if withHolidays || withEvents {
		markers, err := h.deps.Markers(r.Context(), f, withHolidays, withEvents)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err)
			return
		}
		resp.Markers = markers
	}
	writeJSON(w, http.StatusOK, resp)
}
