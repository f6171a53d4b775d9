package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/couchcryptid/air-quality-dashboard/internal/adapter/geojson"
	"github.com/couchcryptid/air-quality-dashboard/internal/dashboard"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	"github.com/spf13/cobra"
)

func (r *report) trendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Mean PM2.5 per station and year, highest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := domain.Trend(r.view())
			if r.asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return table(cmd.OutOrStdout(), []string{"STATION", "YEAR", "PM2.5"}, len(rows), func(i int) []string {
				return []string{rows[i].Station, strconv.Itoa(rows[i].Year), measure(rows[i].PM25)}
			})
		},
	}
}

func (r *report) rainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rain",
		Short: "Mean PM2.5 and rainfall per station and year, with the regression line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := domain.PollutionRain(r.view())
			line, ok := domain.RainRegression(rows)
			if r.asJSON {
				var reg *domain.RegressionLine
				if ok {
					reg = &line
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{"rows": rows, "regression": reg})
			}
			err := table(cmd.OutOrStdout(), []string{"STATION", "YEAR", "PM2.5", "RAIN"}, len(rows), func(i int) []string {
				return []string{rows[i].Station, strconv.Itoa(rows[i].Year), measure(rows[i].PM25), measure(rows[i].Rain)}
			})
			if err != nil || !ok {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\nPM2.5 = %.3f %+.3f * RAIN (%d station-years)\n", line.Intercept, line.Slope, line.Points)
			return err
		},
	}
}

func (r *report) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify",
		Short: "Pollutant means and AQI category per station and year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := domain.Classify(r.view())
			category, matching, ok := domain.Headline(rows)
			if r.asJSON {
				var headline *dashboard.Headline
				if ok {
					headline = &dashboard.Headline{Category: category, Rows: matching}
				}
				return writeJSON(cmd.OutOrStdout(), map[string]any{"rows": rows, "headline": headline})
			}
			if ok {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Air quality: %s (%d of %d rows)\n\n", category, len(matching), len(rows)); err != nil {
					return err
				}
			}
			header := []string{"STATION", "YEAR", "PM2.5", "PM10", "SO2", "NO2", "CO", "O3", "CATEGORY"}
			return table(cmd.OutOrStdout(), header, len(rows), func(i int) []string {
				row := rows[i]
				return []string{
					row.Station, strconv.Itoa(row.Year),
					measure(row.PM25), measure(row.PM10), measure(row.SO2),
					measure(row.NO2), measure(row.CO), measure(row.O3),
					string(row.Category),
				}
			})
		},
	}
}

func (r *report) rankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank",
		Short: "RFM profile of high-pollution events per station",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, err := domain.StationRank(r.view())
			insufficient := errors.Is(err, domain.ErrInsufficientStations)
			if err != nil && !insufficient {
				return err
			}
			if r.asJSON {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"rows": rows, "insufficient": insufficient})
			}
			if insufficient {
				r.logger.Warn("station ranking left unscored", "error", err, "stations", len(rows))
			}
			header := []string{"STATION", "RECENCY", "FREQUENCY", "MAGNITUDE", "R", "F", "M", "RFM"}
			return table(cmd.OutOrStdout(), header, len(rows), func(i int) []string {
				row := rows[i]
				return []string{
					row.Station, optional(row.Recency), strconv.Itoa(row.Frequency), measure(row.Magnitude),
					optional(row.RScore), optional(row.FScore), optional(row.MScore), optional(row.RFMScore),
				}
			})
		},
	}
}

func (r *report) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Mean PM2.5 per station with map coordinates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := domain.StationSummary(r.view())
			if r.asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			header := []string{"STATION", "PM2.5", "DISTINCT", "LAT", "LON"}
			return table(cmd.OutOrStdout(), header, len(rows), func(i int) []string {
				row := rows[i]
				return []string{
					row.Station, measure(row.PM25), strconv.Itoa(row.DistinctPM25),
					strconv.FormatFloat(row.Latitude, 'f', 3, 64),
					strconv.FormatFloat(row.Longitude, 'f', 3, 64),
				}
			})
		},
	}
}

func (r *report) heatmapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heatmap",
		Short: "Station summary as a GeoJSON heat-map layer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), geojson.NewHeatMap(domain.StationSummary(r.view())))
		},
	}
}

func (r *report) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Every derived table as one JSON snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), dashboard.Build(r.sel, r.view()))
		},
	}
}

// table renders n rows under header, tab-aligned.
func table(w io.Writer, header []string, n int, row func(i int) []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeRow(tw, header)
	for i := range n {
		writeRow(tw, row(i))
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c)
	}
	fmt.Fprintln(w)
}

func measure(m domain.Measure) string {
	if !m.Valid() {
		return "NA"
	}
	return strconv.FormatFloat(m.Float64(), 'f', 2, 64)
}

func optional(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
