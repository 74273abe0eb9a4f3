package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/model"
	"github.com/uhj/teamstats/internal/report"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List every season across both stores",
	RunE:  runSeasons,
}

func runSeasons(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	live, err := db.ListLiveSeasons()
	if err != nil {
		return err
	}
	archive, err := db.ListArchiveSeasons()
	if err != nil {
		return err
	}

	refs := make([]model.SeasonRef, 0, len(live)+len(archive))
	for _, s := range live {
		refs = append(refs, model.SeasonRef{
			Store: model.StoreLive,
			ID:    s.ID,
			Name:  s.Name,
			Year:  s.Year,
		})
	}
	for _, s := range archive {
		refs = append(refs, model.SeasonRef{
			Store: model.StoreArchive,
			ID:    s.ID,
			Name:  "(archived)",
			Year:  s.Year,
		})
	}

	report.PrintSeasonsList(os.Stdout, refs)
	return nil
}
