package ui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/rocinante/internal/event"
	"github.com/javiermolinar/rocinante/internal/placer"
)

// Stats holds aggregated statistics for a set of events.
type Stats struct {
	FixedMinutes    int
	FlexibleMinutes int
	FluidMinutes    int
	TotalEvents     int
}

// TotalMinutes returns the sum across all event types.
func (s Stats) TotalMinutes() int {
	return s.FixedMinutes + s.FlexibleMinutes + s.FluidMinutes
}

// FixedPercent returns the share of scheduled time held by fixed events.
func (s Stats) FixedPercent() int {
	if s.TotalMinutes() == 0 {
		return 0
	}
	return (s.FixedMinutes * 100) / s.TotalMinutes()
}

// Accumulate folds an event into the stats.
func (s *Stats) Accumulate(e *event.Event) {
	s.TotalEvents++
	switch e.Type {
	case event.TypeFixed:
		s.FixedMinutes += e.Duration()
	case event.TypeFlexible:
		s.FlexibleMinutes += e.Duration()
	case event.TypeFluid:
		s.FluidMinutes += e.Duration()
	}
}

// typeTag returns the colored short tag for an event type.
func typeTag(t event.Type) string {
	switch t {
	case event.TypeFixed:
		return formatFixed("[X]")
	case event.TypeFlexible:
		return formatFlexible("[F]")
	case event.TypeFluid:
		return formatFluid("[~]")
	default:
		return "[?]"
	}
}

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Verbose      bool // Show full titles
	ShowDuration bool // Show duration column
	MaxDescWidth int  // Maximum title width (0 = auto)
}

// CalcMaxDescWidth calculates the maximum title width based on options.
func (o PrintOpts) CalcMaxDescWidth(defaultWidth int) int {
	if o.MaxDescWidth > 0 {
		return o.MaxDescWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	tw := termWidth()
	// Base: "  #NNN  HH:MM-HH:MM  [X]  " = ~26 chars
	overhead := 26
	if o.ShowDuration {
		overhead += 6
	}
	available := tw - overhead
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintEventRow prints a single event row with consistent formatting.
func PrintEventRow(e *event.Event, opts PrintOpts, maxDescWidth int) {
	title := e.Title
	if len(title) > maxDescWidth {
		title = title[:maxDescWidth-3] + "..."
	}

	if opts.ShowDuration {
		duration := formatMuted(FormatDuration(e.Duration()))
		fmt.Printf("  #%-4d %s-%s  %s  %-*s  %s\n",
			e.ID, e.Start, e.End, typeTag(e.Type), maxDescWidth, title, duration)
	} else {
		fmt.Printf("  #%-4d %s-%s  %s  %s\n",
			e.ID, e.Start, e.End, typeTag(e.Type), title)
	}
}

// PrintStats prints the stats summary line.
func PrintStats(stats Stats) {
	fixedStr := formatFixed(fmt.Sprintf("Fixed: %s", FormatDuration(stats.FixedMinutes)))
	flexStr := formatFlexible(fmt.Sprintf("Flexible: %s", FormatDuration(stats.FlexibleMinutes)))
	fluidStr := formatFluid(fmt.Sprintf("Fluid: %s", FormatDuration(stats.FluidMinutes)))
	totalStr := formatStats(fmt.Sprintf("Total: %s (%d events)",
		FormatDuration(stats.TotalMinutes()), stats.TotalEvents))
	fmt.Printf("  %s  |  %s  |  %s  |  %s\n",
		fixedStr, flexStr, fluidStr, totalStr)
}

// PrintResult prints a placement result: the placed event, every relocation
// it caused, and optionally the full decision trace.
func PrintResult(res *placer.Result, verbose bool) {
	e := res.Placed
	fmt.Printf("Placed #%d %q %s %s %s-%s\n",
		e.ID, e.Title, typeTag(e.Type),
		e.Day.Format("Mon Jan 2"), e.Start, e.End)

	if len(res.Moved) > 0 {
		fmt.Printf("\n%s\n", formatHeader(fmt.Sprintf("Relocated %d event(s):", len(res.Moved))))
		for _, m := range res.Moved {
			fmt.Printf("  %s\n", formatMoved(fmt.Sprintf("#%d %q -> %s %s-%s",
				m.ID, m.Title, m.Day.Format("Mon Jan 2"), m.Start, m.End)))
		}
	}

	if verbose {
		PrintTrace(res.Trace)
	}
}

// PrintTrace prints the engine's decision log, indented by cascade depth.
func PrintTrace(tr *placer.Trace) {
	decisions := tr.Decisions()
	if len(decisions) == 0 {
		return
	}
	fmt.Printf("\n%s\n", formatHeader("Decisions:"))
	for _, d := range decisions {
		indent := strings.Repeat("  ", d.Depth+1)
		fmt.Printf("%s%s\n", indent, formatMuted(d.String()))
	}
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
