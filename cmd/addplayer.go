package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	addPlayerFirst string
	addPlayerLast  string
)

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Add a player to the live roster",
	RunE:  runAddPlayer,
}

func init() {
	addPlayerCmd.Flags().StringVar(&addPlayerFirst, "first", "", "first name")
	addPlayerCmd.Flags().StringVar(&addPlayerLast, "last", "", "last name")
	addPlayerCmd.MarkFlagRequired("first")
	addPlayerCmd.MarkFlagRequired("last")
}

func runAddPlayer(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.CreateLivePlayer(addPlayerFirst, addPlayerLast)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Created live player %d: %s %s\n", id, addPlayerFirst, addPlayerLast)
	return nil
}
