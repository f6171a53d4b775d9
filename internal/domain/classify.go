package domain

// Category is an ordinal air-quality label.
type Category string

const (
	CategoryGood         Category = "Good"
	CategorySatisfactory Category = "Satisfactory"
	CategoryModerate     Category = "Moderate"
	CategoryPoor         Category = "Poor"
	CategoryVeryPoor     Category = "Very Poor"
	CategorySevere       Category = "Severe"
)

// PollutantMeans holds the per-group mean of each pollutant.
type PollutantMeans struct {
	PM25 Measure `json:"pm25"`
	PM10 Measure `json:"pm10"`
	SO2  Measure `json:"so2"`
	NO2  Measure `json:"no2"`
	CO   Measure `json:"co"`
	O3   Measure `json:"o3"`
}

// ClassifiedRow is one station-year with its pollutant means and category.
type ClassifiedRow struct {
	Station string `json:"station"`
	Year    int    `json:"year"`
	PollutantMeans
	Category Category `json:"category"`
}

// limits are inclusive upper bounds per pollutant.
type limits struct {
	pm25, pm10, so2, no2, co, o3 float64
}

type tier struct {
	category Category
	limits   limits
	all      bool // every pollutant must be within limits; otherwise any one suffices
}

// tiers is evaluated in order; the first match wins and Severe is the fallback.
var tiers = []tier{
	{category: CategoryGood, limits: limits{pm25: 50, pm10: 30, so2: 40, no2: 40, co: 1000, o3: 50}, all: true},
	{category: CategorySatisfactory, limits: limits{pm25: 100, pm10: 60, so2: 80, no2: 80, co: 2000, o3: 100}},
	{category: CategoryModerate, limits: limits{pm25: 250, pm10: 90, so2: 380, no2: 180, co: 10000, o3: 168}},
	{category: CategoryPoor, limits: limits{pm25: 350, pm10: 120, so2: 800, no2: 280, co: 17000, o3: 208}},
	{category: CategoryVeryPoor, limits: limits{pm25: 430, pm10: 250, so2: 1600, no2: 400, co: 34000, o3: 748}},
}

func (t tier) matches(m PollutantMeans) bool {
	// NaN compares false, so a missing mean never satisfies a limit.
	within := [6]bool{
		m.PM25.Float64() <= t.limits.pm25,
		m.PM10.Float64() <= t.limits.pm10,
		m.SO2.Float64() <= t.limits.so2,
		m.NO2.Float64() <= t.limits.no2,
		m.CO.Float64() <= t.limits.co,
		m.O3.Float64() <= t.limits.o3,
	}
	for _, ok := range within {
		if t.all && !ok {
			return false
		}
		if !t.all && ok {
			return true
		}
	}
	return t.all
}

// Categorize assigns the first category whose predicate holds for m.
func Categorize(m PollutantMeans) Category {
	for _, t := range tiers {
		if t.matches(m) {
			return t.category
		}
	}
	return CategorySevere
}

// Classify computes the six pollutant means per (station, year) and labels
// each group. Rows are returned in (station, year) order.
func Classify(v View) []ClassifiedRow {
	keys, groups := groupByStationYear(v)

	rows := make([]ClassifiedRow, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		means := PollutantMeans{
			PM25: meanOf(g, pm25),
			PM10: meanOf(g, pm10),
			SO2:  meanOf(g, so2),
			NO2:  meanOf(g, no2),
			CO:   meanOf(g, co),
			O3:   meanOf(g, o3),
		}
		rows = append(rows, ClassifiedRow{
			Station:        k.station,
			Year:           k.year,
			PollutantMeans: means,
			Category:       Categorize(means),
		})
	}
	return rows
}

// Headline picks the category of the first classified row and returns every
// row sharing it, for the dashboard's AQI tile. ok is false for empty input.
func Headline(rows []ClassifiedRow) (category Category, matching []ClassifiedRow, ok bool) {
	if len(rows) == 0 {
		return "", nil, false
	}
	category = rows[0].Category
	for i := range rows {
		if rows[i].Category == category {
			matching = append(matching, rows[i])
		}
	}
	return category, matching, true
}
