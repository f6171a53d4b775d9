package domain

import (
	"math"
	"time"

	"github.com/google/go-cmp/cmp"
)

// measureEq treats two missing measures as equal.
var measureEq = cmp.Comparer(func(a, b Measure) bool {
	return (!a.Valid() && !b.Valid()) || a == b
})

var nan = math.NaN()

// reading builds an observation with only PM2.5 set; every other field is missing.
func reading(station string, date time.Time, pm float64) Observation {
	return Observation{
		Station: station,
		Date:    date,
		Year:    date.Year(),
		PM25:    pm,
		PM10:    nan,
		SO2:     nan,
		NO2:     nan,
		CO:      nan,
		O3:      nan,
		Rain:    nan,
	}
}

func day(n int) time.Time {
	return time.Date(2016, time.March, n, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }
