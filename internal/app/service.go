// Package service runs the load pipeline and implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lwyay/riderboard/internal/adapters/repository"
	"github.com/lwyay/riderboard/internal/domain/calendar"
	"github.com/lwyay/riderboard/internal/domain/dataset"
	"github.com/lwyay/riderboard/internal/domain/insight"
	"github.com/lwyay/riderboard/internal/domain/model"
	"github.com/lwyay/riderboard/pkg/logger"
	"github.com/lwyay/riderboard/pkg/metrics"
)

// Service owns the loaded dataset snapshot and answers aggregation
// queries over it. The snapshot is built once in Start and read-only
// afterwards, so queries need no locking.
type Service struct {
	mu sync.Mutex // guards Start/Stop only

	source       string
	fetchTimeout time.Duration
	sampleCap    int
	provider     calendar.Provider
	logger       logger.Logger

	store  repository.Store
	report *dataset.Report

	started bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the location of the ridership export.
func WithSource(source string) Option {
	return func(s *Service) {
		if source != "" {
			s.source = source
		}
	}
}

// WithFetchTimeout bounds the initial source fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithErrorSample caps how many row errors the load report keeps.
func WithErrorSample(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleCap = n
		}
	}
}

// WithProvider sets the holiday provider.
func WithProvider(p calendar.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.provider = p
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		source:       "daily-ridership.tsv",
		fetchTimeout: 30 * time.Second,
		sampleCap:    10,
		provider:     calendar.USProvider{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the load pipeline: fetch, normalize, enrich, freeze.
// Source and schema failures are fatal; per-row failures are logged
// once as an aggregate and never abort the load.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	began := time.Now()
	s.logger.Info(ctx, "loading ridership dataset", logger.String("source", s.source))

	loadCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()
	raw, err := dataset.Load(loadCtx, s.source)
	if err != nil {
		return err
	}

	records, report := dataset.Normalize(raw, s.sampleCap)
	s.report = report
	s.logLoadReport(ctx, report)

	records = calendar.Enrich(records, s.provider)

	snap := repository.NewSnapshot(records)
	if snap.Count(ctx) == 0 {
		return fmt.Errorf("%w: %s", repository.ErrEmptySnapshot, s.source)
	}
	if minYear, maxYear, ok := calendar.YearSpan(records); ok {
		snap.SetHolidays(s.provider.Holidays(minYear, maxYear))
	}
	s.store = snap

	holidayCount := 0
	for _, r := range records {
		if r.IsHoliday {
			holidayCount++
		}
	}
	metrics.UpdateHolidaysMatched(holidayCount)
	metrics.UpdateDatasetDays(snap.Count(ctx))
	metrics.UpdateDatasetYears(len(snap.Years(ctx)))
	metrics.UpdateLoadDuration(float64(time.Since(began).Milliseconds()))

	s.started = true
	s.logger.Info(ctx, "ridership dataset ready",
		logger.String("snapshot", snap.ID(ctx)),
		logger.Int("days", snap.Count(ctx)),
		logger.Int("years", len(snap.Years(ctx))),
		logger.Int("holidays", holidayCount),
		logger.Any("took", time.Since(began)),
	)
	return nil
}

// logLoadReport surfaces aggregated row errors once, count plus sample,
// so a handful of bad rows never spams the log or aborts the load.
func (s *Service) logLoadReport(ctx context.Context, report *dataset.Report) {
	metrics.AddRowsLoaded(report.Records)
	for kind, count := range report.Counts {
		metrics.AddRowErrors(string(kind), count)
	}

	if report.Clean() {
		s.logger.Info(ctx, "normalized all rows",
			logger.Int("rows", report.RowsRead),
			logger.Int("records", report.Records),
		)
		return
	}
	s.logger.Warn(ctx, "some rows failed to normalize",
		logger.Int("rows", report.RowsRead),
		logger.Int("records", report.Records),
		logger.Int("errors", report.TotalErrors()),
		logger.Any("byKind", report.Counts),
		logger.Any("sample", report.Sample),
	)
}

// Stop releases the snapshot. Present for symmetry with Start; the
// dataset has no external resources to close.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "ridership service stopped")
}

// Summarize computes the summary view for the given filter.
func (s *Service) Summarize(ctx context.Context, f insight.Filter) (insight.Summary, error) {
	began := time.Now()
	summary, err := insight.Summarize(s.store.Records(ctx), f)
	metrics.RecordQueryLatency(float64(time.Since(began).Milliseconds()))
	if err != nil {
		metrics.RecordFilterReject()
		return insight.Summary{}, err
	}
	metrics.RecordSummaryQuery(string(summary.Mode))
	return summary, nil
}

// Series selects chart lines for the given filter and series names.
func (s *Service) Series(ctx context.Context, f insight.Filter, names []string) ([]insight.Series, error) {
	began := time.Now()
	series, err := insight.SelectSeries(s.store.Records(ctx), f, names)
	metrics.RecordQueryLatency(float64(time.Since(began).Milliseconds()))
	if err != nil {
		metrics.RecordFilterReject()
		return nil, err
	}
	metrics.RecordSeriesQuery()
	return series, nil
}

// Markers computes holiday/event chart annotations for the filter.
func (s *Service) Markers(ctx context.Context, f insight.Filter, withHolidays, withEvents bool) ([]insight.Marker, error) {
	markers, err := insight.Markers(s.store.Records(ctx), f, withHolidays, withEvents, calendar.Events())
	if err != nil {
		metrics.RecordFilterReject()
		return nil, err
	}
	return markers, nil
}

// Holidays returns the holiday entries joined onto the dataset.
func (s *Service) Holidays(ctx context.Context) []model.HolidayEntry {
	return s.store.Holidays(ctx)
}

// Events returns the static notable-event list.
func (s *Service) Events(_ context.Context) []model.Event {
	return calendar.Events()
}

// Years returns the distinct years available for filtering.
func (s *Service) Years(ctx context.Context) []int {
	return s.store.Years(ctx)
}

// Months returns the month names present in a year.
func (s *Service) Months(ctx context.Context, year int) []string {
	return s.store.Months(ctx, year)
}

// GetStats returns service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	ctx := context.Background()
	stats := map[string]interface{}{
		"source": s.source,
	}
	if s.store != nil {
		stats["snapshotID"] = s.store.ID(ctx)
		stats["days"] = s.store.Count(ctx)
		stats["years"] = s.store.Years(ctx)
		stats["holidays"] = len(s.store.Holidays(ctx))
	}
	if s.report != nil {
		stats["rowsRead"] = s.report.RowsRead
		stats["rowErrors"] = s.report.TotalErrors()
		stats["rowErrorsByKind"] = s.report.Counts
	}
	return stats
}
