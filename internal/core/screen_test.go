package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorGreen)
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}
	if got := s.GetCell(3, 2).Color; got != ColorGreen {
		t.Errorf("GetCell(3,2).Color = %d, want ColorGreen", got)
	}

	// Out-of-bounds writes must be ignored, reads must be blank.
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.SetCell(1, 1, '#', ColorRed)
	s.Clear()

	if got := s.Get(1, 1); got != ' ' {
		t.Errorf("after Clear, Get(1,1) = %q, want space", got)
	}
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("after Clear, color = %d, want ColorDefault", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hello")

	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Text running off the edge is clipped, not wrapped.
	s.DrawText(8, 0, "abc")
	if got := s.Row(0); got != "        ab" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawHBar(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawHBar(0, 0, 10, 50, 100, ColorGreen, ColorGray)

	row := s.Row(0)
	if !strings.HasPrefix(row, "█████░") {
		t.Errorf("half bar row = %q", row)
	}

	s.Clear()
	s.DrawHBar(0, 0, 10, 200, 100, ColorGreen, ColorGray)
	if got := s.Row(0); got != strings.Repeat("█", 10) {
		t.Errorf("overfull bar should clamp, got %q", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'X')

	s.Resize(8, 6)
	if got := s.Get(2, 2); got != 'X' {
		t.Errorf("after grow, Get(2,2) = %q, want 'X'", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'X' {
		t.Errorf("after shrink, Get(2,2) = %q, want 'X'", got)
	}
	if w, h := s.Width(), s.Height(); w != 3 || h != 3 {
		t.Errorf("size = %dx%d, want 3x3", w, h)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
