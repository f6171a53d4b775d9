package domain

import (
	"cmp"
	"slices"
)

// TrendRow is the mean PM2.5 of one station in one year.
type TrendRow struct {
	Station string  `json:"station"`
	Year    int     `json:"year"`
	PM25    Measure `json:"pm25"`
}

// PollutionRainRow pairs mean PM2.5 with mean rainfall for one station-year.
type PollutionRainRow struct {
	Station string  `json:"station"`
	Year    int     `json:"year"`
	PM25    Measure `json:"pm25"`
	Rain    Measure `json:"rain"`
}

// Trend computes mean PM2.5 per (station, year), ordered worst first.
// Groups with no PM2.5 readings sort last and keep their missing mean.
func Trend(v View) []TrendRow {
	keys, groups := groupByStationYear(v)

	rows := make([]TrendRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, TrendRow{
			Station: k.station,
			Year:    k.year,
			PM25:    meanOf(groups[k], pm25),
		})
	}

	slices.SortStableFunc(rows, func(a, b TrendRow) int {
		return compareDesc(a.PM25, b.PM25)
	})
	return rows
}

// PollutionRain computes mean PM2.5 and mean rainfall per (station, year),
// ordered by station name.
func PollutionRain(v View) []PollutionRainRow {
	keys, groups := groupByStationYear(v)

	rows := make([]PollutionRainRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		rows = append(rows, PollutionRainRow{
			Station: k.station,
			Year:    k.year,
			PM25:    meanOf(g, pm25),
			Rain:    meanOf(g, rain),
		})
	}

	slices.SortStableFunc(rows, func(a, b PollutionRainRow) int {
		return cmp.Compare(a.Station, b.Station)
	})
	return rows
}

// compareDesc orders measures high to low with missing values last.
func compareDesc(a, b Measure) int {
	switch {
	case !a.Valid() && !b.Valid():
		return 0
	case !a.Valid():
		return 1
	case !b.Valid():
		return -1
	}
	return cmp.Compare(b, a)
}
