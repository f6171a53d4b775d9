package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrend(t *testing.T) {
	d2015 := time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC)
	d2016 := time.Date(2016, time.June, 1, 0, 0, 0, 0, time.UTC)

	t.Run("mean ignores missing values", func(t *testing.T) {
		v := View{
			reading("Dongsi", d2015, 40),
			reading("Dongsi", d2015, 60),
			reading("Dongsi", d2015, nan),
		}
		rows := Trend(v)

		require.Len(t, rows, 1)
		assert.Equal(t, "Dongsi", rows[0].Station)
		assert.Equal(t, 2015, rows[0].Year)
		assert.InDelta(t, 50.0, rows[0].PM25.Float64(), 1e-9)
	})

	t.Run("worst first with missing groups last", func(t *testing.T) {
		v := View{
			reading("Dongsi", d2015, 40),
			reading("Dongsi", d2016, nan),
			reading("Tiantan", d2015, 80),
			reading("Aotizhongxin", d2016, 70),
		}
		rows := Trend(v)

		require.Len(t, rows, 4)
		assert.Equal(t, "Tiantan", rows[0].Station)
		assert.Equal(t, "Aotizhongxin", rows[1].Station)
		assert.Equal(t, "Dongsi", rows[2].Station)
		assert.Equal(t, 2015, rows[2].Year)
		assert.Equal(t, "Dongsi", rows[3].Station)
		assert.Equal(t, 2016, rows[3].Year)
		assert.False(t, rows[3].PM25.Valid())
	})

	t.Run("all-missing group propagates", func(t *testing.T) {
		rows := Trend(View{reading("Dongsi", d2016, nan)})

		require.Len(t, rows, 1)
		assert.False(t, rows[0].PM25.Valid())
	})

	t.Run("one row per group", func(t *testing.T) {
		v := View{
			reading("Dongsi", d2015, 10),
			reading("Dongsi", d2015, 20),
			reading("Dongsi", d2016, 30),
			reading("Gucheng", d2016, 40),
			reading("Gucheng", d2016, 50),
		}
		rows := Trend(v)

		seen := map[stationYear]float64{}
		for _, r := range rows {
			k := stationYear{station: r.Station, year: r.Year}
			_, dup := seen[k]
			assert.False(t, dup, "duplicate group %v", k)
			seen[k] = r.PM25.Float64()
		}
		assert.Equal(t, map[stationYear]float64{
			{station: "Dongsi", year: 2015}:  15,
			{station: "Dongsi", year: 2016}:  30,
			{station: "Gucheng", year: 2016}: 45,
		}, seen)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Trend(nil))
	})
}

func TestPollutionRain(t *testing.T) {
	d2014 := time.Date(2014, time.July, 1, 0, 0, 0, 0, time.UTC)
	d2015 := time.Date(2015, time.July, 1, 0, 0, 0, 0, time.UTC)

	wet := func(station string, date time.Time, pm, rain float64) Observation {
		o := reading(station, date, pm)
		o.Rain = rain
		return o
	}

	v := View{
		wet("Wanliu", d2015, 90, 0.4),
		wet("Changping", d2015, 60, 0.2),
		wet("Changping", d2015, 80, nan),
		wet("Changping", d2014, 100, 0.0),
	}
	rows := PollutionRain(v)

	require.Len(t, rows, 3)
	assert.Equal(t, "Changping", rows[0].Station)
	assert.Equal(t, 2014, rows[0].Year)
	assert.Equal(t, "Changping", rows[1].Station)
	assert.Equal(t, 2015, rows[1].Year)
	assert.InDelta(t, 70.0, rows[1].PM25.Float64(), 1e-9)
	assert.InDelta(t, 0.2, rows[1].Rain.Float64(), 1e-9)
	assert.Equal(t, "Wanliu", rows[2].Station)

	assert.Empty(t, PollutionRain(View{}))
}

func TestCompareDesc(t *testing.T) {
	missing := Missing()
	assert.Equal(t, -1, compareDesc(5, 3))
	assert.Equal(t, 1, compareDesc(3, 5))
	assert.Equal(t, 0, compareDesc(3, 3))
	assert.Equal(t, -1, compareDesc(3, missing))
	assert.Equal(t, 1, compareDesc(missing, 3))
	assert.Equal(t, 0, compareDesc(missing, missing))
	assert.True(t, math.IsNaN(missing.Float64()))
}
