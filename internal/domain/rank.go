package domain

import (
	"errors"
	"math"
	"sort"
	"time"
)

const (
	// HighPollutionPM25 is the PM2.5 level above which a reading counts as a
	// high-pollution event for station ranking.
	HighPollutionPM25 = 100.0

	// MinRankedStations is the smallest station count that can be cut into quartiles.
	MinRankedStations = 4

	quartiles = 4
)

// ErrInsufficientStations is returned by StationRank when the view holds
// fewer than MinRankedStations stations.
var ErrInsufficientStations = errors.New("insufficient data: station ranking needs at least 4 stations")

// StationRankRow is the recency/frequency/magnitude profile of one station's
// high-pollution events. Pointer fields are nil when undefined.
type StationRankRow struct {
	Station   string  `json:"station"`
	Recency   *int    `json:"recency_days"` // nil when the station has no high-pollution events
	Frequency int     `json:"frequency"`
	Magnitude Measure `json:"magnitude"`

	RScore   *int `json:"r_score"`
	FScore   *int `json:"f_score"`
	MScore   *int `json:"m_score"`
	RFMScore *int `json:"rfm_score"`
}

// StationRank scores each station by how recently, how often and how badly
// PM2.5 exceeded HighPollutionPM25.
//
// Recency is the whole-day gap between the station's latest observation and
// its latest high-pollution event. Frequency counts those events. Magnitude is
// the mean PM2.5 over all of the station's observations. Each axis is scored
// 1-4 by rank quartile; an axis with fewer than MinRankedStations defined
// values leaves its scores nil, as does any station with an undefined value.
//
// With fewer than MinRankedStations stations the unscored rows are returned
// together with ErrInsufficientStations.
func StationRank(v View) ([]StationRankRow, error) {
	stations, groups := groupByStation(v)

	rows := make([]StationRankRow, len(stations))
	for i, st := range stations {
		rows[i] = profileStation(st, groups[st])
	}

	if len(rows) < MinRankedStations {
		return rows, ErrInsufficientStations
	}

	recency := make([]float64, len(rows))
	frequency := make([]float64, len(rows))
	magnitude := make([]float64, len(rows))
	for i := range rows {
		recency[i] = math.NaN()
		if rows[i].Recency != nil {
			recency[i] = float64(*rows[i].Recency)
		}
		frequency[i] = float64(rows[i].Frequency)
		magnitude[i] = rows[i].Magnitude.Float64()
	}

	rScores := quartileScores(recency, true)
	fScores := quartileScores(frequency, false)
	mScores := quartileScores(magnitude, false)

	for i := range rows {
		rows[i].RScore = rScores[i]
		rows[i].FScore = fScores[i]
		rows[i].MScore = mScores[i]
		if rScores[i] != nil && fScores[i] != nil && mScores[i] != nil {
			total := *rScores[i] + *fScores[i] + *mScores[i]
			rows[i].RFMScore = &total
		}
	}
	return rows, nil
}

func profileStation(station string, obs []Observation) StationRankRow {
	var latest, latestEvent time.Time
	var events int
	for i := range obs {
		if obs[i].Date.After(latest) {
			latest = obs[i].Date
		}
		// NaN compares false and is never an event.
		if obs[i].PM25 > HighPollutionPM25 {
			events++
			if obs[i].Date.After(latestEvent) {
				latestEvent = obs[i].Date
			}
		}
	}

	row := StationRankRow{
		Station:   station,
		Frequency: events,
		Magnitude: meanOf(obs, pm25),
	}
	if events > 0 {
		days := int(latest.Sub(latestEvent) / (24 * time.Hour))
		row.Recency = &days
	}
	return row
}

// quartileScores ranks the defined values (ties keep input order) and cuts
// the ranks into four equal-population bins. Bin k scores k+1, or 4-k when
// reverse is set. NaN inputs, and every input when fewer than
// MinRankedStations values are defined, get a nil score.
func quartileScores(values []float64, reverse bool) []*int {
	scores := make([]*int, len(values))

	idx := make([]int, 0, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			idx = append(idx, i)
		}
	}
	if len(idx) < MinRankedStations {
		return scores
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	n := len(idx)
	for pos, i := range idx {
		bin := quartileBin(pos+1, n)
		score := bin + 1
		if reverse {
			score = quartiles - bin
		}
		scores[i] = &score
	}
	return scores
}

// quartileBin returns the 0-based bin of a 1-based rank among n ranks. Edges
// are the linear-interpolated quantiles 1 + q(n-1); bins are closed on the
// right, so a rank sitting exactly on an edge stays in the lower bin.
func quartileBin(rank, n int) int {
	r := float64(rank)
	for k := 0; k < quartiles-1; k++ {
		edge := 1 + float64(k+1)*float64(n-1)/quartiles
		if r <= edge {
			return k
		}
	}
	return quartiles - 1
}
