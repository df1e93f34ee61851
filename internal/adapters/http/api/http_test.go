package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/lwyay/riderboard/internal/adapters/http/api"
	"github.com/lwyay/riderboard/internal/domain/insight"
	"github.com/lwyay/riderboard/internal/domain/model"
)

// stubService implements api.Dependencies and api.StatsProvider over
// a fixed record set, keeping handler tests independent of the loader.
type stubService struct {
	records []model.Record
}

func newStubService() *stubService {
	mk := func(y int, m time.Month, d, bus, rail int) model.Record {
		r := model.Record{
			Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Bus:   bus,
			Rail:  rail,
			Total: bus + rail,
		}
		r.Derive()
		return r
	}
	records := []model.Record{
		mk(2023, time.July, 3, 700_000, 500_000),
		mk(2023, time.July, 4, 300_000, 200_000),
		mk(2023, time.July, 5, 650_000, 480_000),
	}
	records[1].IsHoliday = true
	records[1].HolidayName = "Independence Day"
	return &stubService{records: records}
}

func (s *stubService) Summarize(_ context.Context, f insight.Filter) (insight.Summary, error) {
	return insight.Summarize(s.records, f)
}

func (s *stubService) Series(_ context.Context, f insight.Filter, names []string) ([]insight.Series, error) {
	return insight.SelectSeries(s.records, f, names)
}

func (s *stubService) Markers(_ context.Context, f insight.Filter, withHolidays, withEvents bool) ([]insight.Marker, error) {
	return insight.Markers(s.records, f, withHolidays, withEvents, nil)
}

func (s *stubService) Holidays(_ context.Context) []model.HolidayEntry {
	return []model.HolidayEntry{
		{Date: time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC), Name: "Independence Day"},
	}
}

func (s *stubService) Events(_ context.Context) []model.Event {
	return []model.Event{
		{Date: time.Date(2023, time.July, 5, 0, 0, 0, 0, time.UTC), Description: "Street Festival"},
	}
}

func (s *stubService) Years(_ context.Context) []int { return []int{2023} }

func (s *stubService) Months(_ context.Context, year int) []string {
	if year == 2023 {
		return []string{"July"}
	}
	return nil
}

func (s *stubService) GetStats() map[string]interface{} {
	return map[string]interface{}{"days": len(s.records)}
}

func newTestServer() *httptest.Server {
	stub := newStubService()
	mux := http.NewServeMux()
	api.NewServer(stub, stub).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func TestSummaryEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting the unfiltered summary", func() {
			var body struct {
				Summary insight.Summary `json:"summary"`
				Rows    []struct {
					Insight   string `json:"insight"`
					Date      string `json:"date"`
					Day       string `json:"day"`
					Ridership int    `json:"ridership"`
				} `json:"rows"`
			}
			status := getJSON(t, srv.URL+"/api/summary", &body)

			Convey("Then it should return yearly totals with table rows", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Summary.Mode, ShouldEqual, insight.ModeYearly)
				So(body.Rows, ShouldHaveLength, 1)
				So(body.Rows[0].Insight, ShouldEqual, "2023")
				So(body.Rows[0].Date, ShouldEqual, "N/A")
				So(body.Rows[0].Ridership, ShouldEqual, 2_830_000)
			})
		})

		Convey("When requesting a year summary", func() {
			var body struct {
				Summary insight.Summary `json:"summary"`
			}
			status := getJSON(t, srv.URL+"/api/summary?year=2023", &body)

			Convey("Then it should return the daily extremes", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Summary.Mode, ShouldEqual, insight.ModeDaily)
				So(body.Summary.Busiest.Date, ShouldEqual, "2023-07-03")
				So(body.Summary.Quietest.Date, ShouldEqual, "2023-07-04")
			})
		})

		Convey("When filtering a month without a year", func() {
			var body struct {
				Code string `json:"code"`
			}
			status := getJSON(t, srv.URL+"/api/summary?month=July", &body)

			Convey("Then it should answer 400 invalid_filter", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
				So(body.Code, ShouldEqual, "invalid_filter")
			})
		})

		Convey("When sending a non-numeric year", func() {
			var body struct {
				Code string `json:"code"`
			}
			status := getJSON(t, srv.URL+"/api/summary?year=twentytwentythree", &body)

			Convey("Then it should answer 400 bad_request", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
				So(body.Code, ShouldEqual, "bad_request")
			})
		})

		Convey("When using a non-GET method", func() {
			resp, err := http.Post(srv.URL+"/api/summary", "application/json", nil)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the route should not be found", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestSeriesEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting series without a modes parameter", func() {
			var body struct {
				Series  []insight.Series `json:"series"`
				Markers []insight.Marker `json:"markers"`
			}
			status := getJSON(t, srv.URL+"/api/series?year=2023", &body)

			Convey("Then all three lines should be returned without markers", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Series, ShouldHaveLength, 3)
				So(body.Series[0].Name, ShouldEqual, insight.SeriesBus)
				So(body.Series[2].Name, ShouldEqual, insight.SeriesTotal)
				So(body.Markers, ShouldBeEmpty)
			})
		})

		Convey("When restricting modes and asking for holiday markers", func() {
			var body struct {
				Series  []insight.Series `json:"series"`
				Markers []insight.Marker `json:"markers"`
			}
			status := getJSON(t, srv.URL+"/api/series?year=2023&modes=rail&holidays=1", &body)

			Convey("Then only the rail line and its markers should return", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Series, ShouldHaveLength, 1)
				So(body.Series[0].Name, ShouldEqual, insight.SeriesRail)
				So(body.Markers, ShouldHaveLength, 1)
				So(body.Markers[0].Date, ShouldEqual, "2023-07-04")
				So(body.Markers[0].Kind, ShouldEqual, "holiday")
			})
		})

		Convey("When requesting an unknown mode", func() {
			var body struct {
				Code string `json:"code"`
			}
			status := getJSON(t, srv.URL+"/api/series?modes=ferry", &body)

			Convey("Then it should answer 400 invalid_filter", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
				So(body.Code, ShouldEqual, "invalid_filter")
			})
		})
	})
}

func TestCalendarEndpoints(t *testing.T) {
	Convey("Given the API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting holidays", func() {
			var body []struct {
				Date string `json:"date"`
				Name string `json:"name"`
			}
			status := getJSON(t, srv.URL+"/api/holidays", &body)

			Convey("Then entries should carry formatted dates", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body, ShouldHaveLength, 1)
				So(body[0].Date, ShouldEqual, "2023-07-04")
				So(body[0].Name, ShouldEqual, "Independence Day")
			})
		})

		Convey("When requesting events", func() {
			var body []struct {
				Date        string `json:"date"`
				Description string `json:"description"`
			}
			status := getJSON(t, srv.URL+"/api/events", &body)

			Convey("Then the static list should be returned", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body, ShouldHaveLength, 1)
				So(body[0].Description, ShouldEqual, "Street Festival")
			})
		})
	})
}

func TestFiltersEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting filters without a year", func() {
			var body struct {
				Years  []int    `json:"years"`
				Months []string `json:"months"`
			}
			status := getJSON(t, srv.URL+"/api/filters", &body)

			Convey("Then the full month catalog should be offered", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Years, ShouldResemble, []int{2023})
				So(body.Months, ShouldHaveLength, 12)
			})
		})

		Convey("When requesting filters for a year", func() {
			var body struct {
				Months []string `json:"months"`
			}
			status := getJSON(t, srv.URL+"/api/filters?year=2023", &body)

			Convey("Then months should narrow to that year's coverage", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body.Months, ShouldResemble, []string{"July"})
			})
		})

		Convey("When the year is not numeric", func() {
			var body struct {
				Code string `json:"code"`
			}
			status := getJSON(t, srv.URL+"/api/filters?year=abc", &body)

			Convey("Then it should answer 400 bad_request", func() {
				So(status, ShouldEqual, http.StatusBadRequest)
				So(body.Code, ShouldEqual, "bad_request")
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting stats", func() {
			var body map[string]interface{}
			status := getJSON(t, srv.URL+"/stats", &body)

			Convey("Then the provider's stats should pass through", func() {
				So(status, ShouldEqual, http.StatusOK)
				So(body["days"], ShouldEqual, float64(3))
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When requesting the health endpoint", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then it should answer 200 with metrics exposition", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "text/plain")
			})
		})
	})
}
