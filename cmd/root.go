package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/config"
)

var (
	cfg    config.Config
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "teamstats",
	Short: "Team batting statistics tracker",
	Long: "Track batting statistics across the live season and the historical archive:\n" +
		"bulk-import delimited exports, enter single-game stats, and derive AVG/OBP/SLG/OPS\n" +
		"at game, season, and career level.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(addGameCmd)
	rootCmd.AddCommand(addSeasonCmd)
	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(careerCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(seasonsCmd)
}
