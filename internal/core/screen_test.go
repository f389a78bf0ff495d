package core

import (
	"strings"
	"testing"
)

// rows builds the expected String() of a screen from its lines.
func rows(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestScreenStartsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got, want := s.String(), rows("      ", "      ", "      "); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, 2)
	if s.Width() != 0 || s.Height() != 2 {
		t.Errorf("size = %dx%d, want 0x2", s.Width(), s.Height())
	}
	s.Set(0, 0, 'x')
	if s.Get(0, 0) != ' ' {
		t.Error("zero-width screen accepted a write")
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{
			name: "set and clip",
			draw: func(s *Screen) {
				s.Set(0, 0, 'a')
				s.Set(-1, 0, 'b')
				s.Set(5, 0, 'c')
				s.Set(0, 3, 'd')
			},
			want: rows("a    ", "     ", "     "),
		},
		{
			name: "text clipped at right edge",
			draw: func(s *Screen) { s.DrawText(3, 1, "jump") },
			want: rows("     ", "   ju", "     "),
		},
		{
			name: "text starting off screen",
			draw: func(s *Screen) { s.DrawText(-2, 0, "abcd") },
			want: rows("cd   ", "     ", "     "),
		},
		{
			name: "centered",
			draw: func(s *Screen) { s.DrawTextCentered(2, "hi") },
			want: rows("     ", "     ", " hi  "),
		},
		{
			name: "rect",
			draw: func(s *Screen) { s.DrawRect(1, 1, 3, 5, '#', ColorGreen) },
			want: rows("     ", " ### ", " ### "),
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(0, 0, 4, 3) },
			want: rows("┌──┐ ", "│  │ ", "└──┘ "),
		},
		{
			name: "degenerate box",
			draw: func(s *Screen) { s.DrawBox(0, 0, 1, 3) },
			want: rows("     ", "     ", "     "),
		},
		{
			name: "clear",
			draw: func(s *Screen) {
				s.DrawRect(0, 0, 5, 3, '=', ColorRed)
				s.Clear()
			},
			want: rows("     ", "     ", "     "),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(5, 3)
			tt.draw(s)
			if got := s.String(); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestScreenCellColours(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(1, 0, "♥♥", ColorRed)
	s.DrawRect(0, 1, 2, 1, '=', ColorGreen)

	cases := []struct {
		x, y int
		want Cell
	}{
		{2, 0, Cell{Rune: '♥', Color: ColorRed}},
		{3, 0, Cell{Rune: ' '}},
		{1, 1, Cell{Rune: '=', Color: ColorGreen}},
		{9, 9, Cell{Rune: ' '}},
	}
	for _, c := range cases {
		if got := s.GetCell(c.x, c.y); got != c.want {
			t.Errorf("GetCell(%d, %d) = %+v, want %+v", c.x, c.y, got, c.want)
		}
	}

	s.Clear()
	if got := s.GetCell(1, 0); got != (Cell{Rune: ' '}) {
		t.Errorf("Clear left %+v", got)
	}
}

func TestScreenResizeKeepsOverlap(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "abcdef")
	s.DrawText(0, 2, "ghijkl")

	s.Resize(4, 2)
	if got, want := s.String(), rows("abcd", "    "); got != want {
		t.Errorf("after shrink = %q, want %q", got, want)
	}

	s.Resize(5, 3)
	if got, want := s.String(), rows("abcd ", "     ", "     "); got != want {
		t.Errorf("after grow = %q, want %q", got, want)
	}

	s.Resize(5, 3)
	if s.Row(0) != "abcd " {
		t.Error("same-size resize should be a no-op")
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 1)
	for _, y := range []int{-1, 1, 50} {
		if got := s.Row(y); got != "    " {
			t.Errorf("Row(%d) = %q, want four spaces", y, got)
		}
	}
}

func TestPaletteAt(t *testing.T) {
	p := Palette{ColorRed, ColorGreen, ColorBlue}
	tests := []struct {
		i    int
		want Color
	}{
		{0, ColorRed},
		{2, ColorBlue},
		{3, ColorRed},
		{7, ColorGreen},
		{-1, ColorBlue},
	}
	for _, tt := range tests {
		if got := p.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
	if got := (Palette{}).At(3); got != ColorDefault {
		t.Errorf("empty palette At = %v", got)
	}
}
