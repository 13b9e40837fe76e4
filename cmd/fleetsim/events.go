package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/talgya/realmfleet/internal/news"
	"github.com/talgya/realmfleet/internal/persistence"
)

func newEventsCommand(root *rootOptions) *cobra.Command {
	limit := 20
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print the most recent narrative records of a save",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := persistence.Open(root.dbPath)
			if err != nil {
				return err
			}
			defer db.Close()

			turn, err := db.LastTurn()
			if err != nil {
				return fmt.Errorf("read last turn: %w", err)
			}
			records, err := db.RecentEvents(limit)
			if err != nil {
				return fmt.Errorf("read events: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "save of %s, %d records\n", news.TurnLabel(turn), len(records))
			for _, r := range records {
				fmt.Fprintf(out, "[%4d] %-7s %-24s %s\n", r.Turn, r.Kind, r.Title, r.Text)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", limit, "records to print")
	return cmd
}
