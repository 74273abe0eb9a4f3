package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/report"
	"github.com/uhj/teamstats/internal/stats"
)

var careerMinAB int

var careerCmd = &cobra.Command{
	Use:   "career",
	Short: "Show the all-time leaderboard and team ledger",
	Long: "Career aggregates across every archival season, filtered by a minimum\n" +
		"at-bat count. The filter is presentation only; the sums underneath are\n" +
		"always complete.",
	RunE: runCareer,
}

func init() {
	careerCmd.Flags().IntVar(&careerMinAB, "min-ab", 0, "minimum career at-bats (default from config)")
}

func runCareer(cmd *cobra.Command, args []string) error {
	minAB := careerMinAB
	if minAB <= 0 {
		minAB = cfg.Report.MinCareerAtBats
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.CareerFacts()
	if err != nil {
		return err
	}
	games, err := db.ListArchiveGames()
	if err != nil {
		return err
	}

	aggs := stats.AggregatePlayers(rows)
	filtered := make([]model.PlayerAggregate, 0, len(aggs))
	for _, a := range aggs {
		if a.AtBats >= minAB {
			filtered = append(filtered, a)
		}
	}

	totals, seasons := stats.TeamLedger(games, rows)
	report.PrintTeamLedger(os.Stdout, totals, seasons)
	report.PrintCareerTable(os.Stdout, filtered)
	return nil
}
