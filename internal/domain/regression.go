package domain

import (
	"math"

	"github.com/aclements/go-moremath/fit"
)

// RegressionLine is the least-squares fit PM2.5 = Intercept + Slope*rain.
type RegressionLine struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	Points    int     `json:"points"`
}

// At evaluates the line at the given rainfall.
func (l RegressionLine) At(rain float64) float64 {
	return l.Intercept + l.Slope*rain
}

// RainRegression fits PM2.5 against rainfall over rows where both means are
// defined. ok is false when fewer than two distinct rainfall values remain.
func RainRegression(rows []PollutionRainRow) (RegressionLine, bool) {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	distinct := make(map[float64]struct{})
	for i := range rows {
		if !rows[i].PM25.Valid() || !rows[i].Rain.Valid() {
			continue
		}
		xs = append(xs, rows[i].Rain.Float64())
		ys = append(ys, rows[i].PM25.Float64())
		distinct[rows[i].Rain.Float64()] = struct{}{}
	}
	if len(distinct) < 2 {
		return RegressionLine{}, false
	}

	r := fit.PolynomialRegression(xs, ys, nil, 1)
	if len(r.Coefficients) < 2 || math.IsNaN(r.Coefficients[0]) || math.IsNaN(r.Coefficients[1]) {
		return RegressionLine{}, false
	}
	return RegressionLine{
		Intercept: r.Coefficients[0],
		Slope:     r.Coefficients[1],
		Points:    len(xs),
	}, true
}
