package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

var errValidationFailed = errors.New("validation failed")

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func (r *report) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the selected data for gaps the dashboard would render as missing",
		Long: "Runs integrity checks over the selection: every station has map coordinates, " +
			"every station covers every selected year with PM2.5 readings, and the derived tables agree.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := r.view()
			phases := []*phase{
				validateCoordinates(view),
				validateCoverage(view, r.sel.Years),
				validateDerivedTables(view),
			}
			return printPhases(cmd.OutOrStdout(), phases, len(view))
		},
	}
}

func printPhases(w io.Writer, phases []*phase, observations int) error {
	fmt.Fprintln(w, "=== Air Quality Data Validation ===")
	fmt.Fprintln(w)

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-36s %s\n", p.name, status)
	}
	fmt.Fprintf(w, "\nObservations: %d\n", observations)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if !allPassed {
		return errValidationFailed
	}
	fmt.Fprintln(w, "\nAll validations passed.")
	return nil
}

// validateCoordinates flags stations the heat map will drop.
func validateCoordinates(view domain.View) *phase {
	p := &phase{name: "Station coordinates"}
	for _, st := range stationsOf(view) {
		if !domain.KnownStation(st) {
			p.errorf("station %q has no coordinates and is left off the map", st)
		}
	}
	return p
}

// validateCoverage flags station-years the trend chart will show as missing.
func validateCoverage(view domain.View, years []int) *phase {
	p := &phase{name: "PM2.5 coverage"}

	readings := make(map[string]map[int]int)
	for i := range view {
		o := &view[i]
		if readings[o.Station] == nil {
			readings[o.Station] = make(map[int]int)
		}
		if domain.Measure(o.PM25).Valid() {
			readings[o.Station][o.Year]++
		}
	}

	for _, st := range stationsOf(view) {
		for _, y := range years {
			if readings[st][y] == 0 {
				p.errorf("station %q has no PM2.5 readings in %d", st, y)
			}
		}
	}
	return p
}

// validateDerivedTables cross-checks the tables computed from one view.
func validateDerivedTables(view domain.View) *phase {
	p := &phase{name: "Derived table consistency"}

	trend := domain.Trend(view)
	classified := domain.Classify(view)
	if len(trend) != len(classified) {
		p.errorf("trend has %d station-years but classification has %d", len(trend), len(classified))
	}

	for i := 1; i < len(trend); i++ {
		if trend[i-1].PM25.Valid() && trend[i].PM25.Valid() && trend[i-1].PM25 < trend[i].PM25 {
			p.errorf("trend out of order at row %d (%s %d)", i, trend[i].Station, trend[i].Year)
		}
	}

	rank, err := domain.StationRank(view)
	if err != nil && !errors.Is(err, domain.ErrInsufficientStations) {
		p.errorf("station rank: %v", err)
	}
	for _, row := range rank {
		if row.RFMScore != nil && (*row.RFMScore < 3 || *row.RFMScore > 12) {
			p.errorf("station %q has RFM score %d outside 3..12", row.Station, *row.RFMScore)
		}
	}

	for _, row := range domain.StationSummary(view) {
		if row.DistinctPM25 == 0 && row.PM25.Valid() {
			p.errorf("station %q has a PM2.5 mean but no distinct readings", row.Station)
		}
	}
	return p
}

func stationsOf(view domain.View) []string {
	var out []string
	for i := range view {
		out = append(out, view[i].Station)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
