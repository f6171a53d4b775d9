package http

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
)

var errInvalidYear = errors.New("invalid year")

// parseSelection reads the repeatable or comma-separated year and station
// query parameters. An absent parameter selects everything in full; a
// parameter that is present but empty selects nothing.
func parseSelection(q url.Values, full domain.Selection) (domain.Selection, error) {
	sel := full

	if raw, ok := q["year"]; ok {
		years := []int{}
		for _, v := range splitValues(raw) {
			y, err := strconv.Atoi(v)
			if err != nil {
				return domain.Selection{}, fmt.Errorf("%w: %q", errInvalidYear, v)
			}
			years = append(years, y)
		}
		sel.Years = years
	}

	if raw, ok := q["station"]; ok {
		sel.Stations = splitValues(raw)
	}

	return sel, nil
}

func splitValues(raw []string) []string {
	out := []string{}
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}
