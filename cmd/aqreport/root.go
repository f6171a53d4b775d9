package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/couchcryptid/air-quality-dashboard/internal/observability"
	"github.com/couchcryptid/air-quality-dashboard/internal/store"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/spf13/cobra"
)

// report carries the state shared by every subcommand once the root's
// PersistentPreRunE has loaded the record store.
type report struct {
	dataFile string
	years    []int
	stations []string
	asJSON   bool
	logLevel string

	logger  *slog.Logger
	records *store.RecordStore
	sel     domain.Selection
}

func newRootCmd() *cobra.Command {
	r := &report{}

	root := &cobra.Command{
		Use:   "aqreport",
		Short: "Air-quality dashboard tables from a PRSA CSV",
		Long: "Loads a Beijing multi-site air-quality CSV, applies a year/station selection, " +
			"and prints the dashboard's derived tables.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return r.load(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&r.dataFile, "data", sharedcfg.EnvOrDefault("DATA_FILE", "data/all_data.csv"), "record store CSV")
	flags.IntSliceVar(&r.years, "year", nil, "years to select (default all)")
	flags.StringSliceVar(&r.stations, "station", nil, "stations to select (default all)")
	flags.BoolVar(&r.asJSON, "json", false, "print JSON instead of a table")
	flags.StringVar(&r.logLevel, "log-level", "warn", "debug, info, warn, or error")

	root.AddCommand(
		r.trendCmd(),
		r.rainCmd(),
		r.classifyCmd(),
		r.rankCmd(),
		r.summaryCmd(),
		r.heatmapCmd(),
		r.dashboardCmd(),
		r.validateCmd(),
	)
	return root
}

// load reads the record store and resolves the selection. A flag left unset
// selects everything, matching the dashboard's default sidebar.
func (r *report) load(cmd *cobra.Command) error {
	r.logger = observability.NewLoggerTo(cmd.ErrOrStderr(), r.logLevel, "text")

	records, err := store.LoadFile(r.dataFile)
	if err != nil {
		return fmt.Errorf("load record store: %w", err)
	}
	r.records = records
	r.logger.Info("record store loaded", "path", r.dataFile, "observations", records.Len())

	r.sel = records.FullSelection()
	if cmd.Flags().Changed("year") {
		r.sel.Years = r.years
	}
	if cmd.Flags().Changed("station") {
		r.sel.Stations = r.stations
	}
	return nil
}

func (r *report) view() domain.View {
	return r.records.Filter(r.sel)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
