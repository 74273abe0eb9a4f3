// Package config loads teamstats settings from an optional YAML file and
// TEAMSTATS_* environment variables, with sensible defaults for a
// single-user installation.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every tunable the CLI exposes.
type Config struct {
	DBPath string `mapstructure:"db_path"`

	Import ImportConfig `mapstructure:"import"`
	Report ReportConfig `mapstructure:"report"`
}

// ImportConfig controls the bulk CSV import pipeline.
type ImportConfig struct {
	// Delimiter splits each row; quoted fields containing the delimiter are
	// not supported.
	Delimiter string `mapstructure:"delimiter"`
	// MinYear is the lowest plausible season year; rows below it are rejected.
	MinYear int `mapstructure:"min_year"`
	// ErrorSamples bounds how many parse/insert errors the summary carries.
	ErrorSamples int `mapstructure:"error_samples"`
}

// ReportConfig controls presentation-layer filtering.
type ReportConfig struct {
	// MinCareerAtBats filters the career leaderboard; it is not part of the
	// statistics engine contract.
	MinCareerAtBats int `mapstructure:"min_career_at_bats"`
}

// Load reads configuration from ~/.teamstats/config.yaml (if present) and
// the environment. Missing files are not an error; a malformed file is.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("db_path", filepath.Join(userHome(), ".teamstats", "teamstats.db"))
	v.SetDefault("import.delimiter", ",")
	v.SetDefault("import.min_year", 2000)
	v.SetDefault("import.error_samples", 10)
	v.SetDefault("report.min_career_at_bats", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(userHome(), ".teamstats"))
	v.AddConfigPath(".")

	v.SetEnvPrefix("TEAMSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
