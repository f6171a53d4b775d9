package domain

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// StationSummaryRow is one known station's mean PM2.5 at its map position.
type StationSummaryRow struct {
	Station      string  `json:"station"`
	PM25         Measure `json:"pm25"`
	DistinctPM25 int     `json:"distinct_pm25"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// StationSummary averages PM2.5 per station and attaches the station's
// coordinates. Stations missing from the coordinate table are dropped; they
// still appear in every other derived table. Rows are ordered by station.
func StationSummary(v View) []StationSummaryRow {
	stations, groups := groupByStation(v)

	rows := make([]StationSummaryRow, 0, len(stations))
	for _, st := range stations {
		c, ok := StationCoordinate(st)
		if !ok {
			continue
		}
		g := groups[st]
		rows = append(rows, StationSummaryRow{
			Station:      st,
			PM25:         meanOf(g, pm25),
			DistinctPM25: distinctCount(g, pm25),
			Latitude:     c.Lat,
			Longitude:    c.Lon,
		})
	}
	return rows
}

// Center returns the mean position of the summary rows, used to centre the
// heat map. ok is false when there are no rows.
func Center(rows []StationSummaryRow) (Coordinate, bool) {
	if len(rows) == 0 {
		return Coordinate{}, false
	}
	lats := make([]float64, len(rows))
	lons := make([]float64, len(rows))
	for i := range rows {
		lats[i] = rows[i].Latitude
		lons[i] = rows[i].Longitude
	}
	return Coordinate{Lat: stats.Mean(lats), Lon: stats.Mean(lons)}, true
}

func distinctCount(obs []Observation, field func(*Observation) float64) int {
	seen := make(map[float64]struct{})
	for i := range obs {
		if v := field(&obs[i]); !math.IsNaN(v) {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
