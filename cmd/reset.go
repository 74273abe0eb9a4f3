package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetConfirm bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop and recreate the archival schema (destructive)",
	Long: "Drops the four archival tables and recreates them empty, as a pre-step\n" +
		"before a fresh bulk import. Live tables are untouched.",
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirm, "confirm", false, "actually perform the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetConfirm {
		return fmt.Errorf("reset deletes every archival row; re-run with --confirm")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ResetArchive(); err != nil {
		return fmt.Errorf("reset archive: %w", err)
	}
	fmt.Fprintln(os.Stdout, "Archive reset — ready for a fresh import.")
	return nil
}
