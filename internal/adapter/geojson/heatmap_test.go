package geojson

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

func summaryRows() []domain.StationSummaryRow {
	return []domain.StationSummaryRow{
		{Station: "Dongsi", PM25: 90, DistinctPM25: 12, Latitude: 39.929, Longitude: 116.417},
		{Station: "Huairou", PM25: domain.Measure(math.NaN()), DistinctPM25: 0, Latitude: 40.409, Longitude: 116.630},
	}
}

func TestNewHeatMap(t *testing.T) {
	hm := NewHeatMap(summaryRows())

	require.NotNil(t, hm.Center)
	assert.InDelta(t, (39.929+40.409)/2, hm.Center.Lat, 1e-9)
	assert.InDelta(t, (116.417+116.630)/2, hm.Center.Lon, 1e-9)

	require.Len(t, hm.Collection.Features, 2)
	f := hm.Collection.Features[0]
	assert.Equal(t, "Dongsi", f.ID)
	point, ok := f.Geometry.(*geom.Point)
	require.True(t, ok)
	assert.Equal(t, []float64{116.417, 39.929}, point.FlatCoords())
	assert.Equal(t, "Dongsi", f.Properties["station"])
	assert.Equal(t, 12, f.Properties["distinct_pm25"])
}

func TestNewHeatMap_Empty(t *testing.T) {
	hm := NewHeatMap(nil)

	assert.Nil(t, hm.Center)
	require.NotNil(t, hm.Collection)
	assert.Empty(t, hm.Collection.Features)
}

func TestHeatMapJSON(t *testing.T) {
	data, err := json.Marshal(NewHeatMap(summaryRows()))
	require.NoError(t, err)

	var decoded struct {
		Center     domain.Coordinate `json:"center"`
		Collection struct {
			Type     string `json:"type"`
			Features []struct {
				Type     string `json:"type"`
				Geometry struct {
					Type        string    `json:"type"`
					Coordinates []float64 `json:"coordinates"`
				} `json:"geometry"`
				Properties struct {
					Station      string   `json:"station"`
					Intensity    *float64 `json:"intensity"`
					DistinctPM25 int      `json:"distinct_pm25"`
				} `json:"properties"`
			} `json:"features"`
		} `json:"collection"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "FeatureCollection", decoded.Collection.Type)
	require.Len(t, decoded.Collection.Features, 2)

	dongsi := decoded.Collection.Features[0]
	assert.Equal(t, "Feature", dongsi.Type)
	assert.Equal(t, "Point", dongsi.Geometry.Type)
	assert.Equal(t, []float64{116.417, 39.929}, dongsi.Geometry.Coordinates)
	require.NotNil(t, dongsi.Properties.Intensity)
	assert.InDelta(t, 90, *dongsi.Properties.Intensity, 0)

	assert.Nil(t, decoded.Collection.Features[1].Properties.Intensity, "missing intensity encodes as null")
}
