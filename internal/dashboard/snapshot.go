package dashboard

import (
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/google/uuid"
)

// Snapshot is every derived table for one selection, computed together.
// Snapshots are shared between callers once cached and must not be mutated.
type Snapshot struct {
	ID        string           `json:"id"`
	Selection domain.Selection `json:"selection"`

	Trend         []domain.TrendRow         `json:"trend"`
	PollutionRain []domain.PollutionRainRow `json:"pollution_rain"`
	Regression    *domain.RegressionLine    `json:"regression"`

	AirQuality []domain.ClassifiedRow `json:"air_quality"`
	Headline   *Headline              `json:"headline"`

	StationRank      []domain.StationRankRow `json:"station_rank"`
	RankInsufficient bool                    `json:"rank_insufficient"`

	StationSummary []domain.StationSummaryRow `json:"station_summary"`
	Center         *domain.Coordinate         `json:"center"`

	Observations int       `json:"observations"`
	ComputedAt   time.Time `json:"computed_at"`
}

// Headline is the AQI tile: the leading category and the rows that share it.
type Headline struct {
	Category domain.Category        `json:"category"`
	Rows     []domain.ClassifiedRow `json:"rows"`
}

// Options lists the selectable years and stations.
type Options struct {
	Years    []int    `json:"years"`
	Stations []string `json:"stations"`
}

// Build runs every aggregation over the view. Apart from the ID and
// ComputedAt stamp the result depends only on its inputs.
func Build(sel domain.Selection, view domain.View) Snapshot {
	snap := Snapshot{
		ID:            uuid.NewString(),
		Selection:     sel.Normalize(),
		Trend:         domain.Trend(view),
		PollutionRain: domain.PollutionRain(view),
		AirQuality:    domain.Classify(view),
		Observations:  len(view),
		ComputedAt:    domain.Now(),
	}

	if line, ok := domain.RainRegression(snap.PollutionRain); ok {
		snap.Regression = &line
	}

	if category, rows, ok := domain.Headline(snap.AirQuality); ok {
		snap.Headline = &Headline{Category: category, Rows: rows}
	}

	rank, err := domain.StationRank(view)
	snap.StationRank = rank
	snap.RankInsufficient = err != nil

	snap.StationSummary = domain.StationSummary(view)
	if c, ok := domain.Center(snap.StationSummary); ok {
		snap.Center = &c
	}

	return snap
}
