package kafka

import (
	"encoding/json"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/couchcryptid/air-quality-dashboard/internal/config"
	"github.com/couchcryptid/air-quality-dashboard/internal/dashboard"
	"github.com/couchcryptid/air-quality-dashboard/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeSnapshot(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	snap := dashboard.Snapshot{
		ID:        "3f2b7c9e-8d41-4a55-9a0e-1c6d2f4b8e10",
		Selection: domain.Selection{Years: []int{2016, 2015}, Stations: []string{"Tiantan", "Dongsi"}},
		Trend: []domain.TrendRow{
			{Station: "Dongsi", Year: 2015, PM25: 88.5},
			{Station: "Tiantan", Year: 2016, PM25: domain.Measure(math.NaN())},
		},
		Observations: 2,
		ComputedAt:   now,
	}

	msg, err := serializeSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, []byte("years=2015,2016|stations=Dongsi,Tiantan"), msg.Key)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "snapshot_id", msg.Headers[0].Key)
	assert.Equal(t, []byte(snap.ID), msg.Headers[0].Value)
	assert.Equal(t, "selection", msg.Headers[1].Key)
	assert.Equal(t, msg.Key, msg.Headers[1].Value)
	assert.Equal(t, "computed_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.JSONEq(t, `[
		{"station":"Dongsi","year":2015,"pm25":88.5},
		{"station":"Tiantan","year":2016,"pm25":null}
	]`, string(decoded["trend"]))
	assert.JSONEq(t, `2`, string(decoded["observations"]))
}

func TestNewWriter(t *testing.T) {
	cfg := &config.Config{
		KafkaBrokers:       []string{"broker-1:9092", "broker-2:9092"},
		KafkaSnapshotTopic: "air-quality-snapshots",
	}

	w := NewWriter(cfg, slog.Default())
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, "air-quality-snapshots", w.writer.Topic)
	assert.IsType(t, &kafkago.Hash{}, w.writer.Balancer, "snapshots for one selection share a partition")
	assert.Equal(t, 1, w.writer.BatchSize)
	assert.LessOrEqual(t, w.writer.BatchTimeout, 10*time.Millisecond, "a publish must not wait out the default one-second batch")
	assert.Equal(t, 2*time.Second, w.writer.WriteTimeout)
}
