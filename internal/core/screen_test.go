package core

import (
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(3, 4, '▲', ColorBrightRed)

	cell := s.GetCell(3, 4)
	if cell.Rune != '▲' {
		t.Errorf("GetCell(3, 4).Rune = %q, expected '▲'", cell.Rune)
	}
	if cell.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 4).Color = %v, expected ColorBrightRed", cell.Color)
	}

	// Plain Set resets the color
	s.Set(3, 4, 'x')
	if s.GetCell(3, 4).Color != ColorDefault {
		t.Error("Set should reset the cell color to default")
	}

	// Out of bounds GetCell returns a blank default cell
	oob := s.GetCell(-1, -1)
	if oob.Rune != ' ' || oob.Color != ColorDefault {
		t.Errorf("Out of bounds GetCell = %+v, expected blank default cell", oob)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetColored(x, y, 'X', ColorRed)
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("After Clear, expected blank cell at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "abcde")

	if got := s.Row(1); got != "abcde" {
		t.Errorf("Row(1) = %q, expected %q", got, "abcde")
	}
	if got := s.Row(0); got != "     " {
		t.Errorf("Row(0) = %q, expected all spaces", got)
	}
	if got := s.Row(-1); got != "     " {
		t.Errorf("Row(-1) = %q, expected all spaces", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'X')

	s.Resize(20, 5)

	if s.Width() != 20 || s.Height() != 5 {
		t.Errorf("Resize dimensions = (%d, %d), expected (20, 5)", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'X' {
		t.Error("Resize should preserve content within the new bounds")
	}

	// Shrinking drops content outside the new bounds without panicking
	s.Resize(2, 2)
	if s.Get(2, 2) != ' ' {
		t.Error("Content outside shrunk bounds should read as space")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}
