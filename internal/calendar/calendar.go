// Package calendar models the advent calendar landing page: 25 day sections
// laid out as a tree, a cursor over them and the animated night sky behind.
package calendar

import (
	"github.com/vovakirdan/advent-arcade/internal/config"
	"github.com/vovakirdan/advent-arcade/internal/core"
)

// Section is one numbered day on the calendar.
type Section struct {
	ID      int
	Enabled bool
	Target  string // Game ID opened by this section
}

// rowSizes is the tree shape: 1, 3, 5, 7 and 9 sections per row.
var rowSizes = []int{1, 3, 5, 7, 9}

// Calendar holds the sections and the cursor position.
// Sections are immutable after construction.
type Calendar struct {
	Title    string
	Subtitle string
	Footer   string

	sections []Section
	rows     [][]int
	row, col int
}

// New builds a calendar from configuration. The section list always has
// config.SectionCount entries in ID order.
func New(cfg config.CalendarConfig) *Calendar {
	sections := make([]Section, config.SectionCount)
	for i := range sections {
		sections[i] = Section{ID: i + 1}
	}
	for _, s := range cfg.Sections {
		if s.ID < 1 || s.ID > config.SectionCount {
			continue
		}
		sections[s.ID-1] = Section{ID: s.ID, Enabled: s.Enabled, Target: s.Target}
	}

	c := &Calendar{
		Title:    cfg.Title,
		Subtitle: cfg.Subtitle,
		Footer:   cfg.Footer,
		sections: sections,
		rows:     buildRows(),
	}
	return c
}

// Default returns a calendar with the built-in sections.
func Default() *Calendar {
	return New(config.DefaultCalendarConfig())
}

func buildRows() [][]int {
	rows := make([][]int, 0, len(rowSizes))
	id := 1
	for _, n := range rowSizes {
		row := make([]int, n)
		for i := range row {
			row[i] = id
			id++
		}
		rows = append(rows, row)
	}
	return rows
}

// Sections returns a copy of all sections in ID order.
func (c *Calendar) Sections() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Section returns the section with the given ID.
func (c *Calendar) Section(id int) (Section, bool) {
	if id < 1 || id > len(c.sections) {
		return Section{}, false
	}
	return c.sections[id-1], true
}

// Toggle is the click handler of a section. Enabled sections return their
// target; disabled and unknown sections return ok=false. It never changes
// any section's state.
func (c *Calendar) Toggle(id int) (target string, ok bool) {
	s, found := c.Section(id)
	if !found || !s.Enabled {
		return "", false
	}
	return s.Target, true
}

// Rows returns the tree layout as rows of section IDs, top to bottom.
func (c *Calendar) Rows() [][]int {
	out := make([][]int, len(c.rows))
	for i, r := range c.rows {
		out[i] = append([]int(nil), r...)
	}
	return out
}

// Cursor returns the ID of the section under the cursor.
func (c *Calendar) Cursor() int {
	return c.rows[c.row][c.col]
}

// SetCursor moves the cursor to a section by ID.
func (c *Calendar) SetCursor(id int) bool {
	for r, row := range c.rows {
		for col, sid := range row {
			if sid == id {
				c.row, c.col = r, col
				return true
			}
		}
	}
	return false
}

// Move shifts the cursor. Left/Right stay within the row; Up/Down change
// rows and keep the nearest column relative to the row centres.
func (c *Calendar) Move(a core.Action) {
	switch a {
	case core.ActionLeft:
		if c.col > 0 {
			c.col--
		}
	case core.ActionRight:
		if c.col < len(c.rows[c.row])-1 {
			c.col++
		}
	case core.ActionUp:
		if c.row > 0 {
			c.changeRow(c.row - 1)
		}
	case core.ActionDown:
		if c.row < len(c.rows)-1 {
			c.changeRow(c.row + 1)
		}
	}
}

func (c *Calendar) changeRow(next int) {
	// Rows are centred, so columns align by offset from the row middle.
	offset := c.col - (len(c.rows[c.row])-1)/2
	c.row = next
	c.col = core.Clamp(offset+(len(c.rows[next])-1)/2, 0, len(c.rows[next])-1)
}

// Activate toggles the section under the cursor.
func (c *Calendar) Activate() (string, bool) {
	return c.Toggle(c.Cursor())
}
