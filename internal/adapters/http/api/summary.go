// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/lwyay/riderboard/internal/domain/insight"
	"github.com/lwyay/riderboard/internal/domain/types"
)

// SummaryDependencies defines the interface for summary operations.
type SummaryDependencies interface {
	Summarize(ctx context.Context, f insight.Filter) (insight.Summary, error)
}

// SummaryHandler handles summary-table requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// summaryResponse carries both the typed summary and its flattened
// table rows, so the page renders without re-deriving shapes.
type summaryResponse struct {
	Summary insight.Summary  `json:"summary"`
	Rows    []types.TableRow `json:"rows"`
}

// HandleGetSummary handles GET /api/summary?year=&month= requests.
// A month without a year is rejected with 400; an empty restriction
// yields an empty summary with 200.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	f, err := parseFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	summary, err := h.deps.Summarize(r.Context(), f)
	if err != nil {
		if errors.Is(err, insight.ErrInvalidFilter) {
			writeError(w, http.StatusBadRequest, "invalid_filter", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: summary, Rows: summary.Rows()})
}
