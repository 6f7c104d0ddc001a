package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/dateutil"
)

func (a *App) listCmd() *cobra.Command {
	var (
		startDate string
		endDate   string
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List all events scheduled within a date range.

If no dates are specified, lists today's events.
If only --start is specified, lists events for that single day.
If both --start and --end are specified, lists events in that range (inclusive).`,
		Example: `  rocinante list
  rocinante list --start=2026-09-01
  rocinante list --start=2026-09-01 --end=2026-09-05`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			dateRange, err := dateutil.NewDateRange(startDate, endDate)
			if err != nil {
				return err
			}

			events, err := a.repo.ListEventsByDateRange(context.Background(), dateRange.Start, dateRange.End)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events found in the specified date range.")
				return nil
			}

			opts := PrintOpts{Verbose: verbose, ShowDuration: true}
			maxWidth := opts.CalcMaxDescWidth(40)

			var currentDate string
			var stats Stats
			for _, e := range events {
				date := e.Day.Format("2006-01-02")
				if date != currentDate {
					if currentDate != "" {
						fmt.Println()
					}
					fmt.Printf("%s\n", formatHeader(e.Day.Format("Mon Jan 2")))
					currentDate = date
				}
				PrintEventRow(e, opts, maxWidth)
				stats.Accumulate(e)
			}

			fmt.Println()
			PrintStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD, defaults to start date)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show full event titles")

	return cmd
}
