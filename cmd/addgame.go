package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/router"
)

var (
	addGameSeasonID int64
	addGameDate     string
	addGameOpponent string
	addGameHomeAway string
	addGameLocation string
	addGameNotes    string
)

var addGameCmd = &cobra.Command{
	Use:   "add-game",
	Short: "Create a game under a live or archival season",
	Long: "Resolves the season id against the live store first, then the archive, and\n" +
		"creates the game in whichever store owns the season.",
	RunE: runAddGame,
}

func init() {
	addGameCmd.Flags().Int64Var(&addGameSeasonID, "season", 0, "season id (live or archival)")
	addGameCmd.Flags().StringVar(&addGameDate, "date", "", "game date")
	addGameCmd.Flags().StringVar(&addGameOpponent, "opponent", "", "opposing team")
	addGameCmd.Flags().StringVar(&addGameHomeAway, "home-away", "home", "home or away (live only)")
	addGameCmd.Flags().StringVar(&addGameLocation, "location", "", "field/location (live only)")
	addGameCmd.Flags().StringVar(&addGameNotes, "notes", "", "free-form notes (live only)")
	addGameCmd.MarkFlagRequired("season")
	addGameCmd.MarkFlagRequired("opponent")
}

func runAddGame(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	handle, err := router.New(db).CreateGame(addGameSeasonID, router.GameParams{
		GameDate: addGameDate,
		Opponent: addGameOpponent,
		HomeAway: addGameHomeAway,
		Location: addGameLocation,
		Notes:    addGameNotes,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Created game %d vs %s in %s store.\n",
		handle.ID, handle.Opponent, handle.Store)
	return nil
}
