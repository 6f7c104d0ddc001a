package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocinante/internal/dateutil"
	"github.com/javiermolinar/rocinante/internal/event"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		date    string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week's schedule as a grid",
		Long: `Display Monday through Saturday of an ISO week in a column grid,
one column per day, with the rest day omitted.`,
		Example: `  rocinante week
  rocinante week --date=2026-09-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			day, err := dateutil.ParseRelativeDate(date, time.Now())
			if err != nil {
				return err
			}

			monday, sunday := dateutil.WeekRange(day)
			events, err := a.repo.ListEventsByDateRange(context.Background(), monday, sunday)
			if err != nil {
				return fmt.Errorf("loading week: %w", err)
			}

			header := fmt.Sprintf("WEEK: %s - %s",
				monday.Format("Mon Jan 2"), sunday.Format("Mon Jan 2, 2006"))
			fmt.Printf("\n  %s\n\n", formatHeader(header))

			fmt.Println(renderWeekGrid(dateutil.WeekDays(day), events, a.config.Schedule.RestDay))

			var stats Stats
			for _, e := range events {
				stats.Accumulate(e)
			}
			fmt.Println()
			PrintStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any day of the week to show (defaults to today)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

var (
	dayHeaderStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)

	dayColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// renderWeekGrid lays the week out as one bordered column per day. The rest
// day is skipped entirely since nothing can ever be scheduled on it.
func renderWeekGrid(days [7]time.Time, events []*event.Event, restDay string) string {
	byDay := make(map[string][]*event.Event)
	for _, e := range events {
		key := e.Day.Format("2006-01-02")
		byDay[key] = append(byDay[key], e)
	}

	restWeekday, _ := dateutil.ParseWeekday(restDay)

	colWidth := (termWidth() - 4) / 6
	if colWidth < 14 {
		colWidth = 14
	}
	if colWidth > 24 {
		colWidth = 24
	}

	var columns []string
	for _, day := range days {
		if day.Weekday() == restWeekday {
			continue
		}
		columns = append(columns, renderDayColumn(day, byDay[day.Format("2006-01-02")], colWidth))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func renderDayColumn(day time.Time, events []*event.Event, width int) string {
	lines := []string{dayHeaderStyle.Width(width).Render(day.Format("Mon 2"))}

	if len(events) == 0 {
		lines = append(lines, formatMuted("-"))
	}
	for _, e := range events {
		title := e.Title
		if maxTitle := width - 7; len(title) > maxTitle {
			title = title[:maxTitle-1] + "…"
		}
		lines = append(lines,
			fmt.Sprintf("%s %s", e.Start, typeTag(e.Type)),
			"  "+title)
	}

	return dayColumnStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
