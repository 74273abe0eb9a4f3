package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uhj/teamstats/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Bulk-import a historical delimited export into the archive",
	Long: "Parse a 29-column delimited export, deduplicate seasons/players/games, and\n" +
		"upsert everything into the archival store. Re-importing the same file is a\n" +
		"no-op; bad rows are skipped and reported, never fatal.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(os.Stdout, "Importing %s...\n", args[0])

	sum, err := importer.Run(db, f, importer.Options{
		Delimiter:    cfg.Import.Delimiter,
		MinYear:      cfg.Import.MinYear,
		ErrorSamples: cfg.Import.ErrorSamples,
	})
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	out := os.Stdout
	fmt.Fprintf(out, "\nBatch %s\n", sum.BatchID)
	fmt.Fprintf(out, "Lines processed:   %d\n", sum.LinesProcessed)
	fmt.Fprintf(out, "Parsed:            %d\n", sum.SuccessfulParses)
	fmt.Fprintf(out, "Rejected:          %d\n", sum.FailedParses)
	fmt.Fprintf(out, "Seasons found:     %d\n", sum.SeasonsFound)
	fmt.Fprintf(out, "Players found:     %d\n", sum.PlayersFound)
	fmt.Fprintf(out, "Games found:       %d\n", sum.GamesFound)
	fmt.Fprintf(out, "Facts upserted:    %d\n", sum.FactsUpserted)
	fmt.Fprintf(out, "Insert errors:     %d\n", sum.InsertErrors)

	if len(sum.ParseErrorSamples) > 0 {
		fmt.Fprintf(out, "\nParse errors (first %d):\n", len(sum.ParseErrorSamples))
		for _, e := range sum.ParseErrorSamples {
			fmt.Fprintf(out, "  line %d: %s\n    %s\n", e.Line, e.Reason, e.Raw)
		}
	}
	if len(sum.InsertErrorSamples) > 0 {
		fmt.Fprintf(out, "\nInsert errors (first %d):\n", len(sum.InsertErrorSamples))
		for _, e := range sum.InsertErrorSamples {
			fmt.Fprintf(out, "  %s\n", e)
		}
	}
	return nil
}
