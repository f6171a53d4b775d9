// Package domain models the Beijing multi-site air-quality dataset and the
// aggregations the dashboard renders from it.
//
// # Data Source
//
// Observations come from the cleaned PRSA hourly dataset covering twelve
// national monitoring sites in and around Beijing. Each row is one station at
// one point in time, carrying six pollutant concentrations and rainfall. The
// table is loaded once per process (see package store) and never mutated.
//
// # Missing Values
//
// The source marks unreported concentrations as "NA". These are carried as
// NaN through every aggregation: they are excluded from means, never coerced
// to zero, and a group whose values are all missing yields a missing
// [Measure] that serialises as JSON null.
//
// # Derived Tables
//
// All aggregations are pure functions of a filtered [View]:
//
//	Trend           mean PM2.5 per (station, year), worst first
//	PollutionRain   mean PM2.5 and mean rainfall per (station, year), by station
//	Classify        six pollutant means per (station, year) plus an AQI category
//	StationRank     recency/frequency/magnitude scoring of PM2.5 > 100 events
//	StationSummary  mean PM2.5 per known station with its coordinates
//
// Groups are always visited in (station, year) ascending order, so any output
// whose order is not otherwise defined is deterministic.
//
// # AQI Categories
//
// The category table is evaluated top-down and the first matching tier wins:
//
//	Good          every pollutant within its Good limit
//	Satisfactory  any pollutant within its Satisfactory limit
//	Moderate      any pollutant within its Moderate limit
//	Poor          any pollutant within its Poor limit
//	Very Poor     any pollutant within its Very Poor limit
//	Severe        otherwise
//
// Only the Good tier requires all six limits. The remaining tiers match on a
// single pollutant, so a group with one very low concentration lands in
// Satisfactory regardless of the others. This mirrors the product's rule table
// and must not be tightened without sign-off.
//
// # Station Ranking
//
// Recency, Frequency and Magnitude are each ranked (ties keep station-name
// order) and cut into four equal-population bins by rank position. Bin edges
// sit at 1 + q(n-1) for q in {0.25, 0.5, 0.75}; a rank equal to an edge falls
// in the lower bin. Recency scores run 4..1 so recent events score highest,
// Frequency and Magnitude run 1..4. See [StationRank].
package domain
