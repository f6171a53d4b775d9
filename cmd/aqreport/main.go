// Command aqreport runs the dashboard pipeline once over a PRSA CSV file and
// prints the derived tables.
//
// Usage:
//
//	go run ./cmd/aqreport --data data/all_data.csv --year 2016 --station Dongsi,Tiantan trend
//	go run ./cmd/aqreport --json dashboard > snapshot.json
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
