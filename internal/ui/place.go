package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/placer"
)

func (a *App) placeCmd() *cobra.Command {
	var (
		typ      string
		date     string
		start    string
		end      string
		duration int
		dryRun   bool
		verbose  bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "place [title]",
		Short: "Place an event on the calendar",
		Long: `Place a new event, relocating lower-priority events when needed.

Fixed events claim their exact window. Flexible events stay on the
requested day but take the earliest slot that fits. Fluid events land
on the first day of the week with room. Give either an explicit
--start/--end window or just a --duration.`,
		Example: `  rocinante place "Dentist" --type=fixed --date=tomorrow --start=10:00 --end=11:00
  rocinante place "Write report" --type=flexible --date=monday --duration=90
  rocinante place "Read papers" --type=fluid --duration=120 --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			req, err := a.buildRequest(args[0], typ, date, start, end, duration)
			if err != nil {
				return err
			}

			ctx := context.Background()
			monday, sunday := dateutil.WeekRange(req.Day)
			existing, err := a.repo.ListEventsByDateRange(ctx, monday, sunday)
			if err != nil {
				return fmt.Errorf("loading week: %w", err)
			}

			p := placer.New(a.settings())
			res, err := p.Place(req, existing)
			if err != nil {
				if verbose && res != nil {
					PrintTrace(res.Trace)
				}
				return fmt.Errorf("placing event: %w", err)
			}

			if dryRun {
				PrintResult(res, verbose)
				fmt.Println("\n(Dry run - nothing saved)")
				return nil
			}

			if err := a.repo.ApplyPlacement(ctx, res.Placed, res.Moved); err != nil {
				return fmt.Errorf("saving placement: %w", err)
			}

			PrintResult(res, verbose)
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "flexible", "Event type: fixed, flexible or fluid")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, 'today', 'tomorrow' or a weekday name)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes (alternative to --end)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the placement without saving")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the engine's decision trace")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")

	return cmd
}

// buildRequest assembles the event to place from the command flags. A bare
// --duration gets a placeholder window at the start of active hours; the
// engine treats the length as the request and finds the actual slot.
func (a *App) buildRequest(title, typ, date, start, end string, duration int) (*event.Event, error) {
	day, err := dateutil.ParseRelativeDate(date, time.Now())
	if err != nil {
		return nil, err
	}

	if end == "" && duration > 0 {
		if start == "" {
			start = a.config.Schedule.ActiveStart
		}
		end = event.MinutesToTime(event.TimeToMinutes(start) + duration)
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("give --start/--end or --duration")
	}

	e, err := event.New(title, typ, day.Format("2006-01-02"), start, end)
	if err != nil {
		return nil, err
	}
	e.DurationMin = duration
	e.OwnerID = a.config.Owner.ID
	return e, nil
}

// settings builds the engine settings from the loaded config.
func (a *App) settings() placer.Settings {
	return placer.Settings{
		ActiveStart: a.config.Schedule.ActiveStart,
		ActiveEnd:   a.config.Schedule.ActiveEnd,
		RestDay:     a.config.Schedule.RestDay,
	}
}
