package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONLevels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "json")
	log.Info().Msg("hidden")
	log.Warn().Str("action", "login").Msg("shown")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "warn", line["level"])
	require.Equal(t, "login", line["action"])
	require.Equal(t, "shown", line["message"])
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "loud", "console")
	log.Debug().Msg("hidden")
	require.Zero(t, buf.Len())
	log.Info().Msg("visible")
	require.Contains(t, buf.String(), "visible")
}
