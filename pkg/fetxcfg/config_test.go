package fetxcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, c.TimeLimit)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FETX_TIME_LIMIT", "250")
	t.Setenv("FETX_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250, c.TimeLimit)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestNewLoggerBadLevel(t *testing.T) {
	// An unrecognized level must not panic; it falls back to info.
	log := NewLogger("not-a-level")
	log.Debug().Msg("discarded")
}
