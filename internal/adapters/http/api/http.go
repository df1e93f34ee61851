// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/lwyay/riderboard/internal/domain/insight"
	"github.com/lwyay/riderboard/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle
// keeps the handler layer loosely coupled to the app service.
type Dependencies interface {
	Summarize(ctx context.Context, f insight.Filter) (insight.Summary, error)
	Series(ctx context.Context, f insight.Filter, names []string) ([]insight.Series, error)
	Markers(ctx context.Context, f insight.Filter, withHolidays, withEvents bool) ([]insight.Marker, error)
	Holidays(ctx context.Context) []model.HolidayEntry
	Events(ctx context.Context) []model.Event
	Years(ctx context.Context) []int
	Months(ctx context.Context, year int) []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	summaryHandler  *SummaryHandler
	seriesHandler   *SeriesHandler
	calendarHandler *CalendarHandler
	filtersHandler  *FiltersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		summaryHandler:  NewSummaryHandler(deps),
		seriesHandler:   NewSeriesHandler(deps),
		calendarHandler: NewCalendarHandler(deps),
		filtersHandler:  NewFiltersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
	mux.HandleFunc("/api/series", MetricsMiddleware(s.seriesHandler.HandleGetSeries, "series"))
	mux.HandleFunc("/api/holidays", MetricsMiddleware(s.calendarHandler.HandleGetHolidays, "holidays"))
	mux.HandleFunc("/api/events", MetricsMiddleware(s.calendarHandler.HandleGetEvents, "events"))
	mux.HandleFunc("/api/filters", MetricsMiddleware(s.filtersHandler.HandleGetFilters, "filters"))
}

// parseFilter builds an insight.Filter from ?year= and ?month= query
// parameters. A non-numeric year is a client error; the month/year
// combination itself is validated by the insight package.
func parseFilter(r *http.Request) (insight.Filter, error) {
	f := insight.Filter{Month: strings.TrimSpace(r.URL.Query().Get("month"))}
	if y := strings.TrimSpace(r.URL.Query().Get("year")); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return insight.Filter{}, ErrBadRequest
		}
		f.Year = &year
	}
	return f, nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
