package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Observation is one row of the Record Store: a station reading at a point in time.
// Pollutant and rainfall fields hold NaN when the source value was missing.
type Observation struct {
	Station string
	Date    time.Time
	Year    int

	PM25 float64 // µg/m³
	PM10 float64 // µg/m³
	SO2  float64 // µg/m³
	NO2  float64 // µg/m³
	CO   float64 // µg/m³
	O3   float64 // µg/m³
	Rain float64 // mm
}

// View is a filtered, read-only subset of the Record Store.
type View []Observation

// Measure is an aggregate that may be missing. Missing is NaN internally and
// null on the wire.
type Measure float64

// Missing returns the missing Measure.
func Missing() Measure {
	return Measure(math.NaN())
}

// Valid reports whether the measure holds a value.
func (m Measure) Valid() bool {
	return !math.IsNaN(float64(m))
}

// Float64 returns the raw value, NaN when missing.
func (m Measure) Float64() float64 {
	return float64(m)
}

// Ptr returns nil for a missing measure, otherwise a pointer to its value.
func (m Measure) Ptr() *float64 {
	if !m.Valid() {
		return nil
	}
	v := float64(m)
	return &v
}

func (m Measure) MarshalJSON() ([]byte, error) {
	if !m.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(m))
}

func (m *Measure) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Missing()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Measure(v)
	return nil
}
