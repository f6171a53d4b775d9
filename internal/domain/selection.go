package domain

import (
	"slices"
	"strconv"
	"strings"
)

// Selection is the analyst's year and station filter. An empty slice selects
// nothing, which yields empty derived tables rather than an error.
type Selection struct {
	Years    []int    `json:"years"`
	Stations []string `json:"stations"`
}

// Normalize returns a copy with sorted, de-duplicated years and stations.
func (s Selection) Normalize() Selection {
	years := slices.Clone(s.Years)
	slices.Sort(years)
	stations := slices.Clone(s.Stations)
	slices.Sort(stations)
	return Selection{
		Years:    slices.Compact(years),
		Stations: slices.Compact(stations),
	}
}

// Key renders the selection canonically, e.g. "years=2015,2016|stations=Dongsi".
// Selections that filter identically share a key.
func (s Selection) Key() string {
	n := s.Normalize()
	years := make([]string, len(n.Years))
	for i, y := range n.Years {
		years[i] = strconv.Itoa(y)
	}
	return "years=" + strings.Join(years, ",") + "|stations=" + strings.Join(n.Stations, ",")
}

// Filter returns the observations whose year and station are both selected.
// The input slice is not modified.
func Filter(obs []Observation, sel Selection) View {
	if len(sel.Years) == 0 || len(sel.Stations) == 0 {
		return View{}
	}

	years := make(map[int]struct{}, len(sel.Years))
	for _, y := range sel.Years {
		years[y] = struct{}{}
	}
	stations := make(map[string]struct{}, len(sel.Stations))
	for _, s := range sel.Stations {
		stations[s] = struct{}{}
	}

	out := make(View, 0, len(obs))
	for i := range obs {
		if _, ok := years[obs[i].Year]; !ok {
			continue
		}
		if _, ok := stations[obs[i].Station]; !ok {
			continue
		}
		out = append(out, obs[i])
	}
	return out
}
