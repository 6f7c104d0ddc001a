package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [event-id]",
		Short: "Remove a scheduled event",
		Long: `Remove an event by its ID.

Example:
  rocinante remove 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid event ID: %w", err)
			}

			ctx := context.Background()
			if err := a.repo.DeleteEvent(ctx, id); err != nil {
				return fmt.Errorf("removing event: %w", err)
			}

			fmt.Printf("Removed event #%d\n", id)
			return nil
		},
	}
}
