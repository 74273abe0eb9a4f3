package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.DBPath, "teamstats.db")
	assert.Equal(t, ",", cfg.Import.Delimiter)
	assert.Equal(t, 2000, cfg.Import.MinYear)
	assert.Equal(t, 10, cfg.Import.ErrorSamples)
	assert.Equal(t, 10, cfg.Report.MinCareerAtBats)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TEAMSTATS_DB_PATH", "/tmp/other.db")
	t.Setenv("TEAMSTATS_IMPORT_MIN_YEAR", "1990")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, 1990, cfg.Import.MinYear)
}
