package domain

import (
	"cmp"
	"math"
	"slices"

	"github.com/aclements/go-moremath/stats"
)

type stationYear struct {
	station string
	year    int
}

// groupByStationYear partitions the view and returns the keys in
// (station, year) ascending order.
func groupByStationYear(v View) ([]stationYear, map[stationYear][]Observation) {
	groups := make(map[stationYear][]Observation)
	for i := range v {
		k := stationYear{station: v[i].Station, year: v[i].Year}
		groups[k] = append(groups[k], v[i])
	}

	keys := make([]stationYear, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b stationYear) int {
		if c := cmp.Compare(a.station, b.station); c != 0 {
			return c
		}
		return cmp.Compare(a.year, b.year)
	})
	return keys, groups
}

// groupByStation partitions the view and returns station names in ascending order.
func groupByStation(v View) ([]string, map[string][]Observation) {
	groups := make(map[string][]Observation)
	for i := range v {
		groups[v[i].Station] = append(groups[v[i].Station], v[i])
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, groups
}

// meanOf averages the non-missing values selected by field. It returns a
// missing Measure when every value is missing.
func meanOf(obs []Observation, field func(*Observation) float64) Measure {
	vals := make([]float64, 0, len(obs))
	for i := range obs {
		if v := field(&obs[i]); !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return Missing()
	}
	return Measure(stats.Mean(vals))
}

func pm25(o *Observation) float64 { return o.PM25 }
func pm10(o *Observation) float64 { return o.PM10 }
func so2(o *Observation) float64  { return o.SO2 }
func no2(o *Observation) float64  { return o.NO2 }
func co(o *Observation) float64   { return o.CO }
func o3(o *Observation) float64   { return o.O3 }
func rain(o *Observation) float64 { return o.Rain }
