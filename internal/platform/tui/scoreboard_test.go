package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/advent-arcade/internal/config"
)

// twoDoorCalendar puts the fake game behind doors 3 and 1, in that order.
func twoDoorCalendar() config.CalendarConfig {
	cfg := config.DefaultCalendarConfig()
	cfg.Sections[2].Target = fakeID
	cfg.Sections[0].Target = fakeID
	return cfg
}

func TestScoreboardDaysFollowCalendar(t *testing.T) {
	days := scoreDays(twoDoorCalendar())

	if len(days) != 2 {
		t.Fatalf("days = %+v, want doors 1 and 3 only", days)
	}
	for i, want := range []int{1, 3} {
		d := days[i]
		if d.door != want || d.title != "Fake Day" || d.unit != "ornaments" {
			t.Errorf("day %d = %+v, want door %d titled Fake Day counting ornaments", i, d, want)
		}
	}
}

func TestScoreboardLoadsScoresStatsAndExports(t *testing.T) {
	store := openStore(t)
	for _, s := range []int{3, 7} {
		if _, err := store.SaveScore(fakeID, s); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	for _, p := range []string{"/tmp/a/first.png", "/tmp/a/second.png"} {
		if _, err := store.SaveExport(fakeID, p); err != nil {
			t.Fatalf("SaveExport: %v", err)
		}
	}

	m := NewScoreboardModel(store, fakeCalendar(), 100, 30)

	if len(m.scores) != 2 || m.scores[0].Score != 7 {
		t.Fatalf("scores = %+v, want 7 then 3", m.scores)
	}
	tests := []struct {
		name string
		got  string
		want []string
	}{
		{"stats", m.statsLine(), []string{"Played 2", "Best 7 ornaments", "Average 5.0"}},
		{"exports", m.exportsLine(), []string{"Exports 2", "Latest second.png"}},
		{"view", m.View(), []string{"DAY 1 - Fake Day", "Ornaments", "Exports 2"}},
	}
	for _, tt := range tests {
		for _, want := range tt.want {
			if !strings.Contains(tt.got, want) {
				t.Errorf("%s %q missing %q", tt.name, tt.got, want)
			}
		}
	}
}

func TestScoreboardSwitchesDays(t *testing.T) {
	m := NewScoreboardModel(nil, twoDoorCalendar(), 100, 30)

	steps := []struct {
		key  string
		want int
	}{
		{"right", 3},
		{"tab", 1},
		{"left", 3},
	}
	for _, s := range steps {
		next, _ := m.Update(keyMsg(s.key))
		m = next.(ScoreboardModel)
		if d, _ := m.current(); d.door != s.want {
			t.Errorf("after %s door = %d, want %d", s.key, d.door, s.want)
		}
	}
	if !strings.Contains(m.View(), "DAY 3 - Fake Day") {
		t.Error("View should name the selected day")
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, fakeCalendar(), 100, 30)

	if m.statsLine() != "" || m.exportsLine() != "" {
		t.Errorf("stats %q exports %q, want none", m.statsLine(), m.exportsLine())
	}
	if !strings.Contains(m.View(), "No ornaments counted yet.") {
		t.Error("View should show the empty message in the day's unit")
	}

	none := NewScoreboardModel(nil, config.DefaultCalendarConfig(), 100, 30)
	if !strings.Contains(none.View(), "No calendar door leads to a game yet.") {
		t.Error("View should explain a calendar without games")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, fakeCalendar(), 100, 30)

	next, cmd := m.Update(keyMsg("b"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("standalone back should quit the program")
	}

	m.embedded = true
	next, cmd = m.Update(keyMsg("b"))
	if !next.(ScoreboardModel).IsGoingBack() || cmd != nil {
		t.Error("embedded back should hand control back")
	}
}
