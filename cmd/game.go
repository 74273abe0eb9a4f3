package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/report"
)

var gameCmd = &cobra.Command{
	Use:   "game <year> <number>",
	Short: "Show the box score for one archival game",
	Args:  cobra.ExactArgs(2),
	RunE:  runGame,
}

func runGame(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q", args[0])
	}
	number, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid game number %q", args[1])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	game, err := db.GetArchiveGame(year, number)
	if err != nil {
		return err
	}
	if game == nil {
		return fmt.Errorf("game %d of season %d not found in archive", number, year)
	}

	rows, err := db.GameFacts(game.ID)
	if err != nil {
		return err
	}

	report.PrintGameBox(os.Stdout, *game, rows)
	return nil
}
