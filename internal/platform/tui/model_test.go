package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/advent-arcade/internal/core"
	"github.com/vovakirdan/advent-arcade/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	return update(t, m, TickMsg{Loop: m.loop})
}

func TestGameModelResetsOnCreate(t *testing.T) {
	g := &fakeGame{}
	NewGameModel(g, testConfig(), Options{})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if g.width != 80 || g.height != 30 {
		t.Errorf("game size = %dx%d, want 80x30", g.width, g.height)
	}
}

func TestGameModelHeldKeys(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{})

	m = update(t, m, keyMsg("d"))
	m = tick(t, m)
	m = tick(t, m)

	if len(g.frames) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.frames))
	}
	first, second := g.frames[0], g.frames[1]
	if !first.Has(core.ActionRight) || !first.WasPressed(core.ActionRight) {
		t.Error("first frame should hold and press Right")
	}
	// The fake game's hold window is a single tick at 10 ticks per second.
	if second.Has(core.ActionRight) || !second.WasReleased(core.ActionRight) {
		t.Error("second frame should release Right")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{})

	update(t, m, TickMsg{Loop: m.loop + 1000})
	if len(g.frames) != 0 {
		t.Errorf("foreign tick stepped the game %d times", len(g.frames))
	}
}

func TestGameModelMouseClick(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{})

	m = update(t, m, leftClick(4, 5))
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	tick(t, m)

	click := g.frames[0].Click
	if click == nil || click.X != 4 || click.Y != 5 {
		t.Errorf("Click = %v, want (4,5)", click)
	}
}

func TestGameModelResizeKeepsState(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 {
		t.Errorf("resets = %d, resize must not restart", g.resets)
	}
	if g.width != 100 || g.height != 40 {
		t.Errorf("game size = %dx%d, want 100x40", g.width, g.height)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelBack(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{Store: store})
	g.score = 4

	next, cmd := m.Update(keyMsg("b"))
	m = next.(GameModel)

	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("back should return to the calendar")
	}
	if cmd != nil {
		t.Error("embedded back should not quit the program")
	}
	if g.closes != 1 {
		t.Errorf("closes = %d, want 1", g.closes)
	}

	scores, err := store.TopScores(fakeID, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 4 {
		t.Errorf("scores = %+v, want one entry of 4", scores)
	}

	// Ticks after leaving are dropped.
	tick(t, m)
	if len(g.frames) != 0 {
		t.Error("game stepped after leaving")
	}
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{})
	m.standalone = true

	next, cmd := m.Update(keyMsg("esc"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("standalone back should quit")
	}
}

func TestGameModelQuit(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{})

	next, cmd := m.Update(keyMsg("q"))
	m = next.(GameModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if g.closes != 1 {
		t.Errorf("closes = %d, want 1", g.closes)
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestGameModelRestart(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{Store: store})
	g.score = 2

	m = update(t, m, keyMsg("r"))

	if g.resets != 2 || g.closes != 1 {
		t.Errorf("resets/closes = %d/%d, want 2/1", g.resets, g.closes)
	}
	if m.scoreSaved {
		t.Error("a new round should be able to save its score")
	}
	if high, _ := store.HighScore(fakeID); high != 2 {
		t.Errorf("HighScore = %d, want 2", high)
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{Store: store})
	g.score, g.over = 5, true

	m = tick(t, m)
	m = tick(t, m)
	update(t, m, keyMsg("q"))

	scores, err := store.TopScores(fakeID, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 {
		t.Errorf("saved %d scores, want 1", len(scores))
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{Store: store})

	update(t, m, keyMsg("b"))

	if high, _ := store.HighScore(fakeID); high != 0 {
		t.Errorf("HighScore = %d, want nothing saved", high)
	}
}

func TestGameModelExport(t *testing.T) {
	store := openStore(t)
	dir := t.TempDir()
	g := &fakeGame{ready: true, content: "house"}
	m := NewGameModel(g, testConfig(), Options{Store: store, ExportDir: dir})

	m = update(t, m, keyMsg("e"))

	path := filepath.Join(dir, "fake.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "house" {
		t.Errorf("export = %q, want %q", data, "house")
	}
	if !strings.Contains(m.status.text, path) {
		t.Errorf("status = %q, want the saved path", m.status.text)
	}

	exports, err := store.RecentExports(fakeID, 5)
	if err != nil {
		t.Fatalf("RecentExports: %v", err)
	}
	if len(exports) != 1 || exports[0].Path != path {
		t.Errorf("exports = %+v", exports)
	}

	// The key still reaches the game as input.
	tick(t, m)
	if !g.frames[0].WasPressed(core.ActionExport) {
		t.Error("export key should reach the game")
	}
}

func TestGameModelExportNotReady(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{ExportDir: dir})

	m = update(t, m, keyMsg("e"))

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("wrote %d files before export was available", len(entries))
	}
	if m.status.text != "" {
		t.Errorf("status = %q, want none", m.status.text)
	}
}

func TestGameModelExportFailure(t *testing.T) {
	g := &fakeGame{ready: true, failErr: errFakeExport}
	m := NewGameModel(g, testConfig(), Options{ExportDir: t.TempDir()})

	m = update(t, m, keyMsg("e"))

	if !strings.Contains(m.status.text, "disk full") {
		t.Errorf("status = %q, want the failure", m.status.text)
	}
}

func TestGameModelStatusExpires(t *testing.T) {
	g := &fakeGame{status: "Hello"}
	m := NewGameModel(g, testConfig(), Options{})

	m = tick(t, m)
	if m.status.text != "Hello" {
		t.Fatalf("status = %q, want Hello", m.status.text)
	}
	view := m.View()
	if !strings.Contains(view, "* Hello") || !strings.Contains(view, "Fake Day  0 ornaments") {
		t.Errorf("View should show the status line with the score label, got %q", view)
	}

	for range m.config.TicksFor(statusDuration) {
		m = tick(t, m)
	}
	if m.status.text != "" {
		t.Errorf("status = %q after expiry", m.status.text)
	}
}

func TestGameModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewGameModel(g, testConfig(), Options{ScreenshotDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("screenshots = %v (%v), want 1", entries, err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if !strings.HasPrefix(string(data), "FAKE") {
		t.Errorf("screenshot starts with %q", string(data)[:min(10, len(data))])
	}
	if !strings.HasPrefix(entries[0].Name(), fakeID+"_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
}
