package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectionFixture() []Observation {
	d2014 := time.Date(2014, time.May, 1, 0, 0, 0, 0, time.UTC)
	d2015 := time.Date(2015, time.May, 1, 0, 0, 0, 0, time.UTC)
	return []Observation{
		reading("Dongsi", d2014, 120),
		reading("Dongsi", d2015, 80),
		reading("Huairou", d2014, 60),
		reading("Huairou", d2015, 110),
		reading("Tiantan", d2015, 95),
	}
}

func TestFilter(t *testing.T) {
	obs := selectionFixture()

	t.Run("years and stations are both applied", func(t *testing.T) {
		v := Filter(obs, Selection{Years: []int{2015}, Stations: []string{"Dongsi", "Tiantan"}})
		require.Len(t, v, 2)
		assert.Equal(t, "Dongsi", v[0].Station)
		assert.Equal(t, "Tiantan", v[1].Station)
	})

	t.Run("empty selection yields empty view", func(t *testing.T) {
		assert.Empty(t, Filter(obs, Selection{}))
		assert.Empty(t, Filter(obs, Selection{Years: []int{2014}}))
		assert.Empty(t, Filter(obs, Selection{Stations: []string{"Dongsi"}}))
	})

	t.Run("unknown values select nothing", func(t *testing.T) {
		assert.Empty(t, Filter(obs, Selection{Years: []int{1999}, Stations: []string{"Dongsi"}}))
	})

	t.Run("input is not modified", func(t *testing.T) {
		before := len(obs)
		v := Filter(obs, Selection{Years: []int{2014}, Stations: []string{"Dongsi"}})
		v[0].Station = "changed"
		assert.Len(t, obs, before)
		assert.Equal(t, "Dongsi", obs[0].Station)
	})
}

func TestFilter_FullSelectionIsNoOp(t *testing.T) {
	obs := selectionFixture()
	full := Selection{Years: []int{2014, 2015}, Stations: []string{"Dongsi", "Huairou", "Tiantan"}}

	v := Filter(obs, full)
	require.Len(t, v, len(obs))

	if diff := cmp.Diff(Trend(View(obs)), Trend(v), measureEq); diff != "" {
		t.Errorf("Trend differs (-unfiltered +filtered):\n%s", diff)
	}
	if diff := cmp.Diff(Classify(View(obs)), Classify(v), measureEq); diff != "" {
		t.Errorf("Classify differs (-unfiltered +filtered):\n%s", diff)
	}
	if diff := cmp.Diff(StationSummary(View(obs)), StationSummary(v), measureEq); diff != "" {
		t.Errorf("StationSummary differs (-unfiltered +filtered):\n%s", diff)
	}

	wantRank, wantErr := StationRank(View(obs))
	gotRank, gotErr := StationRank(v)
	assert.Equal(t, wantErr, gotErr)
	assert.Equal(t, wantRank, gotRank)
}

func TestSelectionKey(t *testing.T) {
	a := Selection{Years: []int{2016, 2015, 2016}, Stations: []string{"Tiantan", "Dongsi"}}
	b := Selection{Years: []int{2015, 2016}, Stations: []string{"Dongsi", "Tiantan", "Tiantan"}}

	assert.Equal(t, "years=2015,2016|stations=Dongsi,Tiantan", a.Key())
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "years=|stations=", Selection{}.Key())

	// Normalize must not reorder the caller's slices.
	assert.Equal(t, []int{2016, 2015, 2016}, a.Years)
}
