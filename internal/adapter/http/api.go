package http

import (
	"net/http"

	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/geojson"
	"github.com/couchcryptid/air-quality-dashboard/internal/dashboard"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

// snapshotView projects a snapshot onto one endpoint's body and status.
type snapshotView func(snap dashboard.Snapshot) (int, any)

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	opts := s.dashboard.Options()
	writeJSON(w, http.StatusOK, dashboard.Options{
		Years:    nonNil(opts.Years),
		Stations: nonNil(opts.Stations),
	})
}

// withSnapshot parses the selection, recomputes (or fetches) the snapshot,
// and renders it through view.
func (s *Server) withSnapshot(view snapshotView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := s.dashboard.Options()
		sel, err := parseSelection(r.URL.Query(), domain.Selection{Years: opts.Years, Stations: opts.Stations})
		if err != nil {
			s.logger.Debug("rejecting selection", "error", err, "query", r.URL.RawQuery)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		snap := s.dashboard.Compute(r.Context(), sel)
		status, body := view(snap)
		writeJSON(w, status, body)
	}
}

type trendBody struct {
	Selection domain.Selection  `json:"selection"`
	Rows      []domain.TrendRow `json:"rows"`
}

func trendResponse(snap dashboard.Snapshot) (int, any) {
	return http.StatusOK, trendBody{Selection: snap.Selection, Rows: nonNil(snap.Trend)}
}

type pollutionRainBody struct {
	Selection  domain.Selection          `json:"selection"`
	Rows       []domain.PollutionRainRow `json:"rows"`
	Regression *domain.RegressionLine    `json:"regression"`
}

func pollutionRainResponse(snap dashboard.Snapshot) (int, any) {
	return http.StatusOK, pollutionRainBody{
		Selection:  snap.Selection,
		Rows:       nonNil(snap.PollutionRain),
		Regression: snap.Regression,
	}
}

type airQualityBody struct {
	Selection domain.Selection       `json:"selection"`
	Rows      []domain.ClassifiedRow `json:"rows"`
	Headline  *dashboard.Headline    `json:"headline"`
}

func airQualityResponse(snap dashboard.Snapshot) (int, any) {
	return http.StatusOK, airQualityBody{
		Selection: snap.Selection,
		Rows:      nonNil(snap.AirQuality),
		Headline:  snap.Headline,
	}
}

type stationRankBody struct {
	Selection domain.Selection        `json:"selection"`
	Rows      []domain.StationRankRow `json:"rows"`
	Error     string                  `json:"error,omitempty"`
	Detail    string                  `json:"detail,omitempty"`
}

// stationRankResponse reports 422 when too few stations are selected to
// bin; the unscored rows are still returned.
func stationRankResponse(snap dashboard.Snapshot) (int, any) {
	body := stationRankBody{Selection: snap.Selection, Rows: nonNil(snap.StationRank)}
	if snap.RankInsufficient {
		body.Error = "insufficient data"
		body.Detail = domain.ErrInsufficientStations.Error()
		return http.StatusUnprocessableEntity, body
	}
	return http.StatusOK, body
}

type stationSummaryBody struct {
	Selection domain.Selection           `json:"selection"`
	Rows      []domain.StationSummaryRow `json:"rows"`
	Center    *domain.Coordinate         `json:"center"`
}

func stationSummaryResponse(snap dashboard.Snapshot) (int, any) {
	return http.StatusOK, stationSummaryBody{
		Selection: snap.Selection,
		Rows:      nonNil(snap.StationSummary),
		Center:    snap.Center,
	}
}

func heatMapResponse(snap dashboard.Snapshot) (int, any) {
	return http.StatusOK, geojson.NewHeatMap(snap.StationSummary)
}

func snapshotResponse(snap dashboard.Snapshot) (int, any) {
	return http.StatusOK, snap
}

// nonNil keeps empty tables encoding as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
