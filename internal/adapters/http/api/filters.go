// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lwyay/riderboard/internal/domain/model"
)

// FiltersDependencies defines the interface for dropdown population.
type FiltersDependencies interface {
	Years(ctx context.Context) []int
	Months(ctx context.Context, year int) []string
}

// FiltersHandler serves the distinct filter values of the dataset.
type FiltersHandler struct {
	deps FiltersDependencies
}

// NewFiltersHandler creates a new filters handler.
func NewFiltersHandler(deps FiltersDependencies) *FiltersHandler {
	return &FiltersHandler{deps: deps}
}

type filtersResponse struct {
	Years  []int    `json:"years"`
	Months []string `json:"months"`
}

// HandleGetFilters handles GET /api/filters[?year=] requests. Without a
// year the months list covers the whole calendar so the month dropdown
// is usable before a year is picked.
func (h *FiltersHandler) HandleGetFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	resp := filtersResponse{Years: h.deps.Years(r.Context()), Months: model.MonthNames()}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		resp.Months = h.deps.Months(r.Context(), year)
	}
	writeJSON(w, http.StatusOK, resp)
}
