package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/report"
	"github.com/uhj/teamstats/internal/stats"
)

var seasonCmd = &cobra.Command{
	Use:   "season <year>",
	Short: "Show per-player aggregates for one archival season",
	Args:  cobra.ExactArgs(1),
	RunE:  runSeason,
}

func runSeason(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	season, err := db.GetArchiveSeasonByYear(year)
	if err != nil {
		return err
	}
	if season == nil {
		return fmt.Errorf("season %d not found in archive", year)
	}

	rows, err := db.SeasonFacts(year)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "\n%d season — %d player-game lines\n\n", year, len(rows))
	report.PrintPlayerTable(os.Stdout, stats.AggregatePlayers(rows))
	return nil
}
