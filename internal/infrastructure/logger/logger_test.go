package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "itinerary-search"}, &buf)

	log.Info().Str("key", "value").Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "itinerary-search", entry["service"])
	assert.Contains(t, entry, "time")
}

func TestNewWithOutput_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "test"}, &buf)

	log.Info().Msg("suppressed")
	log.Warn().Msg("emitted")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "emitted")
}

func TestNewWithOutput_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "bogus", Format: "json", ServiceName: "test"}, &buf)

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test"}, &buf)

	log.WithRequestID("req-42").Info().Msg("tagged")

	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error().Msg("nothing happens")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "itinerary-search", cfg.ServiceName)
}
