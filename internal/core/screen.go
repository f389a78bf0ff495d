package core

import "strings"

// Cell is one character position: a rune and its colour.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a fixed-size character grid that games draw into. The platform
// layer turns it into terminal output, so games never touch the terminal.
//
// Cells are stored row-major in a single slice. Writes outside the grid are
// dropped and reads outside it return a blank cell.
type Screen struct {
	w, h  int
	cells []Cell
}

// NewScreen returns a blank w×h screen.
func NewScreen(w, h int) *Screen {
	s := &Screen{}
	s.reset(w, h)
	return s
}

func (s *Screen) reset(w, h int) {
	s.w, s.h = max(w, 0), max(h, 0)
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Resize changes the grid size. The overlapping top-left region keeps its
// content.
func (s *Screen) Resize(w, h int) {
	if w == s.w && h == s.h {
		return
	}
	old, oldW, oldH := s.cells, s.w, s.h
	s.reset(w, h)

	keepW, keepH := min(oldW, s.w), min(oldH, s.h)
	for y := 0; y < keepH; y++ {
		copy(s.cells[y*s.w:y*s.w+keepW], old[y*oldW:y*oldW+keepW])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set writes r at (x, y) in the default colour.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored writes r at (x, y) in colour c.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.w+x]
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored is DrawText in colour c.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes text centred on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextCenteredColored(y, text, ColorDefault)
}

// DrawTextCenteredColored is DrawTextCentered in colour c.
func (s *Screen) DrawTextCenteredColored(y int, text string, c Color) {
	n := len([]rune(text))
	s.DrawTextColored((s.w-n)/2, y, text, c)
}

// DrawRect fills the w×h block at (x, y).
func (s *Screen) DrawRect(x, y, w, h int, fill rune, c Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetColored(col, row, fill, c)
		}
	}
}

// DrawBox outlines the w×h block at (x, y) with box-drawing runes.
func (s *Screen) DrawBox(x, y, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	x2, y2 := x+w-1, y+h-1
	for col := x + 1; col < x2; col++ {
		s.Set(col, y, '─')
		s.Set(col, y2, '─')
	}
	for row := y + 1; row < y2; row++ {
		s.Set(x, row, '│')
		s.Set(x2, row, '│')
	}
	s.Set(x, y, '┌')
	s.Set(x2, y, '┐')
	s.Set(x, y2, '└')
	s.Set(x2, y2, '┘')
}

// Row returns row y as plain text. Rows outside the grid are all spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var sb strings.Builder
	sb.Grow(s.w)
	for _, c := range s.cells[y*s.w : (y+1)*s.w] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the whole grid as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
