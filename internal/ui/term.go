package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Fixed events: bold red, they are immovable
	colorFixed = color.New(color.FgRed, color.Bold)

	// Flexible events: cyan, day-bound but movable
	colorFlexible = color.New(color.FgCyan)

	// Fluid events: dim/grey, they go wherever room exists
	colorFluid = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Moved events: yellow to make relocations pop
	colorMoved = color.New(color.FgYellow)

	// Stats: green for positive metrics
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatFixed formats text for fixed events.
func formatFixed(s string) string {
	return colorFixed.Sprint(s)
}

// formatFlexible formats text for flexible events.
func formatFlexible(s string) string {
	return colorFlexible.Sprint(s)
}

// formatFluid formats text for fluid events.
func formatFluid(s string) string {
	return colorFluid.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMoved formats text for relocated events.
func formatMoved(s string) string {
	return colorMoved.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
