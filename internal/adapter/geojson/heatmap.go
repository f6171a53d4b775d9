// Package geojson renders the station summary as a GeoJSON heat-map layer.
package geojson

import (
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// HeatMap is the payload served to the map view: the centre to focus on and
// one point feature per station weighted by mean PM2.5.
type HeatMap struct {
	Center     *domain.Coordinate         `json:"center"`
	Collection *geojson.FeatureCollection `json:"collection"`
}

// NewHeatMap builds the heat-map layer. Features keep the row order; the
// centre is nil when there are no rows.
func NewHeatMap(rows []domain.StationSummaryRow) HeatMap {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(rows))}
	for i := range rows {
		fc.Features = append(fc.Features, stationFeature(rows[i]))
	}

	hm := HeatMap{Collection: fc}
	if c, ok := domain.Center(rows); ok {
		hm.Center = &c
	}
	return hm
}

// stationFeature places a station at its coordinate. GeoJSON orders
// positions longitude first.
func stationFeature(row domain.StationSummaryRow) *geojson.Feature {
	return &geojson.Feature{
		ID:       row.Station,
		Geometry: geom.NewPointFlat(geom.XY, []float64{row.Longitude, row.Latitude}),
		Properties: map[string]any{
			"station":       row.Station,
			"intensity":     row.PM25.Ptr(),
			"distinct_pm25": row.DistinctPM25,
		},
	}
}
