package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-arcade/internal/config"
)

func updateCalendar(t *testing.T, m CalendarModel, msg tea.Msg) (CalendarModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	cm, ok := next.(CalendarModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return cm, cmd
}

func TestCalendarOpenDoor(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	m, cmd := updateCalendar(t, m, keyMsg("enter"))

	if m.Selected() != fakeID {
		t.Errorf("Selected() = %q, want %q", m.Selected(), fakeID)
	}
	if cmd == nil {
		t.Error("opening a door should end the standalone calendar")
	}
}

func TestCalendarDoorWithoutGame(t *testing.T) {
	// The day games are not registered in this package's tests.
	m := NewCalendarModel(config.DefaultCalendarConfig(), testConfig())

	m, _ = updateCalendar(t, m, keyMsg("enter"))

	if m.Selected() != "" {
		t.Errorf("Selected() = %q, want none", m.Selected())
	}
	if !strings.Contains(m.status.text, "Day 1") {
		t.Errorf("status = %q", m.status.text)
	}
}

func TestCalendarClosedDoor(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	m, _ = updateCalendar(t, m, keyMsg("down"))
	m, _ = updateCalendar(t, m, keyMsg("right"))
	if m.cal.Cursor() != 4 {
		t.Fatalf("cursor = %d, want 4", m.cal.Cursor())
	}
	m, _ = updateCalendar(t, m, keyMsg(" "))

	if m.Selected() != "" {
		t.Errorf("closed door opened %q", m.Selected())
	}
	if !strings.Contains(m.status.text, "Door 4") {
		t.Errorf("status = %q", m.status.text)
	}
	if s, _ := m.cal.Section(4); s.Enabled {
		t.Error("a closed door must stay closed")
	}
}

func TestCalendarMouseOpensDoor(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	box := m.layout.Boxes[1]
	m, _ = updateCalendar(t, m, leftClick(box.X+1, box.Y+1))

	if m.Selected() != fakeID {
		t.Errorf("Selected() = %q, want %q", m.Selected(), fakeID)
	}
}

func TestCalendarMouseMissesBoxes(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	m, _ = updateCalendar(t, m, leftClick(0, 0))

	if m.Selected() != "" || m.status.text != "" {
		t.Errorf("click outside the tree changed state: %q %q", m.Selected(), m.status.text)
	}
}

func TestCalendarScoreboardAndQuit(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	sb, _ := updateCalendar(t, m, keyMsg("tab"))
	if !sb.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	q, cmd := updateCalendar(t, m, keyMsg("q"))
	if !q.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if q.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestCalendarSkyTicks(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	m, cmd := updateCalendar(t, m, TickMsg{Loop: m.loop})
	if m.sky.Tick() != 1 || cmd == nil {
		t.Errorf("sky tick = %d, want 1 and another tick scheduled", m.sky.Tick())
	}

	m, cmd = updateCalendar(t, m, TickMsg{Loop: m.loop + 1000})
	if m.sky.Tick() != 1 || cmd != nil {
		t.Error("foreign tick should be dropped")
	}
}

func TestCalendarView(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	view := m.View()
	for _, want := range []string{"Advent of Prompt", "25", "open door"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestCalendarResize(t *testing.T) {
	m := NewCalendarModel(fakeCalendar(), testConfig())

	m, _ = updateCalendar(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("canvas = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.Config().ScreenW != 120 || m.Config().ScreenH != 40 {
		t.Errorf("config = %dx%d", m.Config().ScreenW, m.Config().ScreenH)
	}
}
