package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/config"
	"pokedex/internal/logging"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logging.Setup(config.LogConfig{Level: "debug", Format: "json"}, &buf))

	logrus.WithField("pokemon", 25).Debug("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loaded", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.EqualValues(t, 25, entry["pokemon"])
}

func TestSetupLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logging.Setup(config.LogConfig{Level: "warn", Format: "text"}, &buf))

	logrus.Info("hidden")
	assert.Empty(t, buf.String())

	logrus.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestSetupRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, logging.Setup(config.LogConfig{Level: "loud", Format: "text"}, &buf))
	assert.Error(t, logging.Setup(config.LogConfig{Level: "info", Format: "xml"}, &buf))
}
