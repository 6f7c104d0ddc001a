package placer

import (
	"testing"

	"github.com/javiermolinar/rocinante/internal/event"
)

func TestDayGaps_EmptyDay(t *testing.T) {
	p := New(testSettings())

	gaps := p.dayGaps(monday, nil)
	if len(gaps) != 1 {
		t.Fatalf("expected a single gap, got %d", len(gaps))
	}
	if gaps[0].Start != "09:00" || gaps[0].End != "17:00" {
		t.Errorf("got %s-%s, want the whole active window", gaps[0].Start, gaps[0].End)
	}
	if gaps[0].Minutes() != 480 {
		t.Errorf("Minutes() = %d, want 480", gaps[0].Minutes())
	}
}

func TestDayGaps_BetweenEvents(t *testing.T) {
	p := New(testSettings())

	sorted := []*event.Event{
		evt(1, "A", event.TypeFixed, monday, "09:30", "10:30"),
		evt(2, "B", event.TypeFixed, monday, "12:00", "13:00"),
	}

	gaps := p.dayGaps(monday, sorted)

	want := []struct{ start, end string }{
		{"09:00", "09:30"},
		{"10:30", "12:00"},
		{"13:00", "17:00"},
	}
	if len(gaps) != len(want) {
		t.Fatalf("expected %d gaps, got %d", len(want), len(gaps))
	}
	for i, w := range want {
		if gaps[i].Start != w.start || gaps[i].End != w.end {
			t.Errorf("gap %d = %s-%s, want %s-%s",
				i, gaps[i].Start, gaps[i].End, w.start, w.end)
		}
	}
}

func TestDayGaps_BackToBackEmitsZeroLength(t *testing.T) {
	p := New(testSettings())

	sorted := []*event.Event{
		evt(1, "A", event.TypeFixed, monday, "09:00", "12:00"),
		evt(2, "B", event.TypeFixed, monday, "12:00", "17:00"),
	}

	gaps := p.dayGaps(monday, sorted)

	// Zero-length gaps mark the boundaries; they matter for adjacency.
	for _, g := range gaps {
		if g.Minutes() != 0 {
			t.Errorf("expected only zero-length gaps, got %s-%s", g.Start, g.End)
		}
	}
	if len(gaps) != 3 {
		t.Errorf("expected 3 boundary gaps, got %d", len(gaps))
	}
}

func TestGap_AdjacentTo(t *testing.T) {
	g := Gap{Day: monday, Start: "12:30", End: "13:00"}

	tests := []struct {
		name string
		e    *event.Event
		want bool
	}{
		{"event ends at gap start", evt(1, "A", event.TypeFluid, monday, "12:00", "12:30"), true},
		{"event starts at gap end", evt(2, "B", event.TypeFluid, monday, "13:00", "13:30"), true},
		{"detached event", evt(3, "C", event.TypeFluid, monday, "14:00", "15:00"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.adjacentTo(tc.e); got != tc.want {
				t.Errorf("adjacentTo = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWindow_Overlaps(t *testing.T) {
	a := Window{Day: monday, Start: "10:00", End: "11:00"}

	tests := []struct {
		name string
		b    Window
		want bool
	}{
		{"same window", Window{Day: monday, Start: "10:00", End: "11:00"}, true},
		{"partial overlap", Window{Day: monday, Start: "10:30", End: "11:30"}, true},
		{"touching after", Window{Day: monday, Start: "11:00", End: "12:00"}, false},
		{"touching before", Window{Day: monday, Start: "09:00", End: "10:00"}, false},
		{"same time other day", Window{Day: tuesday, Start: "10:00", End: "11:00"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Overlaps(tc.b); got != tc.want {
				t.Errorf("Overlaps = %v, want %v", got, tc.want)
			}
		})
	}
}
