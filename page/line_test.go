package page

import (
	"testing"

	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
)

func TestWriteWideCharAtBoundaryDropped(t *testing.T) {
	// A wide char written at the last column of a 4-wide line has no room
	// for its second cell, so the write must be dropped entirely.
	l := NewLine(4, attr.Default, 1)
	h := char.Set(char.Null, 'あ')
	l.Write(3, h, 2, attr.Default, 2, false)
	if !l.Cell(3).IsBlank() {
		t.Fatalf("wide write at width-1 must be dropped, got %+v", l.Cell(3))
	}
	if l.Fill() != 0 {
		t.Fatalf("fill must be unchanged, got %d", l.Fill())
	}
}

func TestWriteWideCharSetsContinuation(t *testing.T) {
	l := NewLine(5, attr.Default, 1)
	h := char.Set(char.Null, 'あ')
	l.Write(1, h, 2, attr.Default, 2, false)
	if l.Cell(1).Ch != h || l.Cell(1).Width != 2 {
		t.Fatalf("base cell wrong: %+v", l.Cell(1))
	}
	if l.Cell(2).Width != 0 || !l.Cell(2).IsBlank() {
		t.Fatalf("continuation cell wrong: %+v", l.Cell(2))
	}
	if l.Fill() != 3 {
		t.Fatalf("fill = %d, want 3", l.Fill())
	}
}

func TestOverwriteClearsWidePartner(t *testing.T) {
	l := NewLine(5, attr.Default, 1)
	h := char.Set(char.Null, 'あ')
	l.Write(1, h, 2, attr.Default, 2, false)
	// Now overwrite column 1 (the base) with a narrow char; column 2's
	// stale continuation must be blanked, not left dangling.
	l.Write(1, char.Set(char.Null, 'x'), 1, attr.Default, 3, false)
	if l.Cell(2).Width != 1 || !l.Cell(2).IsBlank() {
		t.Fatalf("partner not cleared: %+v", l.Cell(2))
	}
}

func TestAppendCombiningChar(t *testing.T) {
	l := NewLine(4, attr.Default, 1)
	l.Write(0, char.Set(char.Null, 'e'), 1, attr.Default, 1, false)
	l.AppendCombChar(0, 0x0301, 2)
	var scratch [3]rune
	seq := char.Resolve(l.Cell(0).Ch, scratch[:])
	if len(seq) != 2 || seq[0] != 'e' || seq[1] != 0x0301 {
		t.Fatalf("got %v", seq)
	}
	if char.Width(l.Cell(0).Ch) != 1 {
		t.Fatalf("width = %d, want 1", char.Width(l.Cell(0).Ch))
	}
}

func TestInsertMode(t *testing.T) {
	l := NewLine(5, attr.Default, 1)
	for i, r := range []rune{'a', 'b', 'c'} {
		l.Write(i, char.Set(char.Null, r), 1, attr.Default, 1, false)
	}
	l.Write(0, char.Set(char.Null, 'X'), 1, attr.Default, 2, true)
	got := []rune{}
	for i := 0; i < 5; i++ {
		seq := char.Resolve(l.Cell(i).Ch, make([]rune, 1))
		if len(seq) > 0 {
			got = append(got, seq[0])
		} else {
			got = append(got, ' ')
		}
	}
	want := []rune{'X', 'a', 'b', 'c', ' '}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}

func TestDeleteShiftsLeft(t *testing.T) {
	l := NewLine(5, attr.Default, 1)
	for i, r := range []rune{'a', 'b', 'c', 'd'} {
		l.Write(i, char.Set(char.Null, r), 1, attr.Default, 1, false)
	}
	l.Delete(1, 2, attr.Default, 2)
	want := []rune{'a', 'd', 0, 0, 0}
	for i := 0; i < 5; i++ {
		c := l.Cell(i)
		if c.IsBlank() {
			if want[i] != 0 {
				t.Fatalf("col %d blank, want %q", i, want[i])
			}
			continue
		}
		seq := char.Resolve(c.Ch, make([]rune, 1))
		if seq[0] != want[i] {
			t.Fatalf("col %d = %q, want %q", i, seq[0], want[i])
		}
	}
}

func TestErasePreservesProtected(t *testing.T) {
	l := NewLine(3, attr.Default, 1)
	protected := attr.Attributes{Protect: true}
	l.Write(0, char.Set(char.Null, 'a'), 1, attr.Default, 1, false)
	l.Write(1, char.Set(char.Null, 'b'), 1, protected, 1, false)
	l.Erase(0, 2, attr.Default, 2, true)
	if !l.Cell(0).IsBlank() {
		t.Fatal("unprotected cell should be erased")
	}
	seq := char.Resolve(l.Cell(1).Ch, make([]rune, 1))
	if len(seq) == 0 || seq[0] != 'b' {
		t.Fatal("protected cell must survive erase with keepProtected")
	}
}

func TestResetClearsFill(t *testing.T) {
	l := NewLine(3, attr.Default, 1)
	l.Write(0, char.Set(char.Null, 'a'), 1, attr.Default, 1, false)
	l.Reset(attr.Default, 2)
	if l.Fill() != 0 {
		t.Fatalf("fill = %d, want 0", l.Fill())
	}
	if !l.Cell(0).IsBlank() {
		t.Fatal("cell should be blank after reset")
	}
}

func TestSetWidthShrinkTruncatesFill(t *testing.T) {
	l := NewLine(5, attr.Default, 1)
	for i, r := range []rune{'a', 'b', 'c', 'd', 'e'} {
		l.Write(i, char.Set(char.Null, r), 1, attr.Default, 1, false)
	}
	l.SetWidth(2)
	if l.Fill() != 2 {
		t.Fatalf("fill = %d, want 2", l.Fill())
	}
	if l.Width() != 2 {
		t.Fatalf("width = %d, want 2", l.Width())
	}
}

func TestReserveNegativeWidthIsError(t *testing.T) {
	l := NewLine(3, attr.Default, 1)
	if err := l.Reserve(-1, attr.Default, 1, 0); err == nil {
		t.Fatal("expected error for negative width")
	}
	if l.Width() != 3 {
		t.Fatal("failed Reserve must leave width unchanged")
	}
}
