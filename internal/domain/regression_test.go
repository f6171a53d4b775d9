package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRainRegression(t *testing.T) {
	t.Run("exact line", func(t *testing.T) {
		rows := []PollutionRainRow{
			{Station: "a", PM25: 100, Rain: 0},
			{Station: "b", PM25: 90, Rain: 1},
			{Station: "c", PM25: 80, Rain: 2},
			{Station: "d", PM25: Missing(), Rain: 3},
			{Station: "e", PM25: 10, Rain: Missing()},
		}

		line, ok := RainRegression(rows)
		require.True(t, ok)
		assert.InDelta(t, 100.0, line.Intercept, 1e-6)
		assert.InDelta(t, -10.0, line.Slope, 1e-6)
		assert.Equal(t, 3, line.Points)
		assert.InDelta(t, 75.0, line.At(2.5), 1e-6)
	})

	t.Run("needs two distinct rainfall values", func(t *testing.T) {
		rows := []PollutionRainRow{
			{Station: "a", PM25: 100, Rain: 0.5},
			{Station: "b", PM25: 90, Rain: 0.5},
		}
		_, ok := RainRegression(rows)
		assert.False(t, ok)

		_, ok = RainRegression(nil)
		assert.False(t, ok)
	})
}
