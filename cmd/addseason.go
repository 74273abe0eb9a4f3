package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	addSeasonName string
	addSeasonYear int
)

var addSeasonCmd = &cobra.Command{
	Use:   "add-season",
	Short: "Create a live season for current-year manual entry",
	RunE:  runAddSeason,
}

func init() {
	addSeasonCmd.Flags().StringVar(&addSeasonName, "name", "", "season display name")
	addSeasonCmd.Flags().IntVar(&addSeasonYear, "year", 0, "calendar year")
	addSeasonCmd.MarkFlagRequired("year")
}

func runAddSeason(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	name := addSeasonName
	if name == "" {
		name = fmt.Sprintf("%d Season", addSeasonYear)
	}

	id, err := db.CreateLiveSeason(name, addSeasonYear, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Created live season %d: %s\n", id, name)
	return nil
}
