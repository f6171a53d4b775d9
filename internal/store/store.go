// Package store loads the cleaned observation table and holds it read-only
// for the lifetime of the process.
package store

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

// ErrMissingColumn is wrapped by Load when a required column is absent.
var ErrMissingColumn = errors.New("missing required column")

// Column names as they appear in the PRSA CSV export.
const (
	colStation = "station"
	colDate    = "date"
	colYear    = "year"
	colMonth   = "month"
	colDay     = "day"
	colHour    = "hour"
	colPM25    = "PM2.5"
	colPM10    = "PM10"
	colSO2     = "SO2"
	colNO2     = "NO2"
	colCO      = "CO"
	colO3      = "O3"
	colRain    = "RAIN"
)

var requiredColumns = []string{colStation, colYear, colPM25, colPM10, colSO2, colNO2, colCO, colO3, colRain}

// dateLayouts are tried in order for the optional date column.
var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

// RecordStore is the immutable observation table.
type RecordStore struct {
	obs      []domain.Observation
	years    []int
	stations []string
}

// New builds a store from already-parsed observations. The slice is copied.
func New(obs []domain.Observation) *RecordStore {
	s := &RecordStore{obs: slices.Clone(obs)}

	years := make([]int, len(s.obs))
	for i := range s.obs {
		years[i] = s.obs[i].Year
	}
	s.years = distinctYears(years)
	s.stations = distinctStations(s.obs)
	return s
}

// LoadFile opens and loads a CSV file.
func LoadFile(path string) (*RecordStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Load parses a CSV table into a RecordStore. Pollutant and rainfall cells
// marked NA, NaN or left empty become missing values.
func Load(r io.Reader) (*RecordStore, error) {
	df := dataframe.ReadCSV(r,
		dataframe.WithTypes(map[string]series.Type{
			colStation: series.String,
			colDate:    series.String,
			colYear:    series.Int,
			colMonth:   series.Int,
			colDay:     series.Int,
			colHour:    series.Int,
			colPM25:    series.Float,
			colPM10:    series.Float,
			colSO2:     series.Float,
			colNO2:     series.Float,
			colCO:      series.Float,
			colO3:      series.Float,
			colRain:    series.Float,
		}),
		dataframe.NaNValues([]string{"NA", "NaN", "nan", ""}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	names := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		names[n] = true
	}
	for _, c := range requiredColumns {
		if !names[c] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, c)
		}
	}

	stations := df.Col(colStation).Records()
	years, err := intColumn(df, colYear)
	if err != nil {
		return nil, err
	}
	dates, err := dateColumn(df, names, years)
	if err != nil {
		return nil, err
	}

	pm25 := df.Col(colPM25).Float()
	pm10 := df.Col(colPM10).Float()
	so2 := df.Col(colSO2).Float()
	no2 := df.Col(colNO2).Float()
	co := df.Col(colCO).Float()
	o3 := df.Col(colO3).Float()
	rain := df.Col(colRain).Float()

	obs := make([]domain.Observation, df.Nrow())
	for i := range obs {
		obs[i] = domain.Observation{
			Station: strings.TrimSpace(stations[i]),
			Date:    dates[i],
			Year:    years[i],
			PM25:    nonNegative(pm25[i]),
			PM10:    nonNegative(pm10[i]),
			SO2:     nonNegative(so2[i]),
			NO2:     nonNegative(no2[i]),
			CO:      nonNegative(co[i]),
			O3:      nonNegative(o3[i]),
			Rain:    nonNegative(rain[i]),
		}
	}

	return &RecordStore{
		obs:      obs,
		years:    distinctYears(years),
		stations: distinctStations(obs),
	}, nil
}

func intColumn(df dataframe.DataFrame, name string) ([]int, error) {
	vals, err := df.Col(name).Int()
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", name, err)
	}
	return vals, nil
}

// dateColumn reads the date column when present, otherwise assembles dates
// from year/month/day/hour. Absent month and day default to 1, hour to 0.
func dateColumn(df dataframe.DataFrame, names map[string]bool, years []int) ([]time.Time, error) {
	dates := make([]time.Time, df.Nrow())

	if names[colDate] {
		for i, raw := range df.Col(colDate).Records() {
			t, err := parseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i+2, err)
			}
			dates[i] = t
		}
		return dates, nil
	}

	parts := map[string][]int{}
	for _, c := range []string{colMonth, colDay, colHour} {
		if !names[c] {
			continue
		}
		vals, err := intColumn(df, c)
		if err != nil {
			return nil, err
		}
		parts[c] = vals
	}

	part := func(col string, i, def int) int {
		if vals, ok := parts[col]; ok {
			return vals[i]
		}
		return def
	}
	for i := range dates {
		dates[i] = time.Date(years[i], time.Month(part(colMonth, i, 1)), part(colDay, i, 1), part(colHour, i, 0), 0, 0, 0, time.UTC)
	}
	return dates, nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

// nonNegative treats negative concentrations as missing; the cleaned export
// never contains them, so one is a sensor fault rather than a reading.
func nonNegative(v float64) float64 {
	if v < 0 {
		return math.NaN()
	}
	return v
}

func distinctYears(years []int) []int {
	out := slices.Clone(years)
	slices.Sort(out)
	return slices.Compact(out)
}

func distinctStations(obs []domain.Observation) []string {
	out := make([]string, 0)
	for i := range obs {
		out = append(out, obs[i].Station)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Len returns the number of observations.
func (s *RecordStore) Len() int {
	return len(s.obs)
}

// Observations returns a copy of every observation.
func (s *RecordStore) Observations() []domain.Observation {
	return slices.Clone(s.obs)
}

// Years returns the distinct years in ascending order.
func (s *RecordStore) Years() []int {
	return slices.Clone(s.years)
}

// Stations returns the distinct station names in ascending order.
func (s *RecordStore) Stations() []string {
	return slices.Clone(s.stations)
}

// FullSelection selects every year and station, the dashboard's default.
func (s *RecordStore) FullSelection() domain.Selection {
	return domain.Selection{Years: s.Years(), Stations: s.Stations()}
}

// Filter applies a selection without copying the underlying table.
func (s *RecordStore) Filter(sel domain.Selection) domain.View {
	return domain.Filter(s.obs, sel)
}
