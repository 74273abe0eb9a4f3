package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/router"
)

var (
	submitFile       string
	submitOurScore   int
	submitTheirScore int
)

var submitCmd = &cobra.Command{
	Use:   "submit <game-id>",
	Short: "Submit per-player stats for one game",
	Long: "Reads a JSON array of per-player counting-stat objects and saves it to\n" +
		"whichever store the game id resolves to. Live games get a full replace;\n" +
		"archival games get name-keyed upserts. Fail-fast: one bad entry aborts\n" +
		"the whole submission.",
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVarP(&submitFile, "file", "f", "", "JSON file of stat entries")
	submitCmd.Flags().IntVar(&submitOurScore, "our-score", -1, "final runs for (optional)")
	submitCmd.Flags().IntVar(&submitTheirScore, "their-score", -1, "final runs against (optional)")
	submitCmd.MarkFlagRequired("file")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	gameID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid game id %q", args[0])
	}

	data, err := os.ReadFile(submitFile)
	if err != nil {
		return fmt.Errorf("read stats file: %w", err)
	}
	var entries []model.StatEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse stats file: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("stats file contains no entries")
	}

	var score *model.GameScore
	if submitOurScore >= 0 && submitTheirScore >= 0 {
		score = &model.GameScore{Ours: submitOurScore, Theirs: submitTheirScore}
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := router.New(db).SaveGameStats(gameID, entries, score)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s (%d players)\n", res.Message, res.PlayersSaved)
	return nil
}
