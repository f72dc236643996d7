package page

import (
	"testing"

	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
)

func newTestLine(width int, r rune) *Line {
	l := NewLine(width, attr.Default, 1)
	l.Write(0, char.Set(char.Null, r), 1, attr.Default, 1, false)
	return l
}

func firstRune(l *Line) rune {
	if l == nil {
		return 0
	}
	seq := char.Resolve(l.Cell(0).Ch, make([]rune, 1))
	if len(seq) == 0 {
		return 0
	}
	return seq[0]
}

func TestHistoryPushPopOrder(t *testing.T) {
	h := NewHistory(0)
	for _, r := range []rune{'a', 'b', 'c'} {
		h.Push(newTestLine(3, r))
	}
	if h.NLines() != 3 {
		t.Fatalf("n_lines = %d, want 3", h.NLines())
	}
	if got := firstRune(h.Pop(3, attr.Default, 2)); got != 'c' {
		t.Fatalf("expected tail 'c' first, got %q", got)
	}
	if got := firstRune(h.Pop(3, attr.Default, 2)); got != 'b' {
		t.Fatalf("expected 'b' second, got %q", got)
	}
	if h.NLines() != 1 {
		t.Fatalf("n_lines = %d, want 1", h.NLines())
	}
}

func TestHistoryCapEvictsHead(t *testing.T) {
	h := NewHistory(2)
	for _, r := range []rune{'a', 'b', 'c'} {
		h.Push(newTestLine(3, r))
	}
	if h.NLines() != 2 {
		t.Fatalf("n_lines = %d, want 2 (capped)", h.NLines())
	}
	if got := firstRune(h.Peek()); got != 'c' {
		t.Fatalf("tail = %q, want 'c'", got)
	}
}

func TestHistoryPopOnEmptyReturnsNil(t *testing.T) {
	h := NewHistory(5)
	if h.Pop(3, attr.Default, 1) != nil {
		t.Fatal("expected nil from empty history")
	}
}

func TestHistoryTrim(t *testing.T) {
	h := NewHistory(0)
	for _, r := range []rune{'a', 'b', 'c', 'd'} {
		h.Push(newTestLine(3, r))
	}
	h.Trim(2)
	if h.NLines() != 2 {
		t.Fatalf("n_lines = %d, want 2", h.NLines())
	}
	if got := firstRune(h.Peek()); got != 'd' {
		t.Fatalf("tail should remain 'd', got %q", got)
	}
}

func TestHistoryPopReconcilesWidth(t *testing.T) {
	h := NewHistory(0)
	h.Push(newTestLine(3, 'a'))
	popped := h.Pop(10, attr.Default, 2)
	if popped.Width() != 10 {
		t.Fatalf("width = %d, want 10", popped.Width())
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0)
	h.Push(newTestLine(3, 'a'))
	h.Push(newTestLine(3, 'b'))
	h.Clear()
	if h.NLines() != 0 {
		t.Fatalf("n_lines = %d, want 0 after Clear", h.NLines())
	}
}

// writeLongCluster writes a grapheme cluster with enough combining marks
// that char.Set/Merge must allocate a registry slot rather than packing
// the cluster inline.
func writeLongCluster(l *Line, x int) {
	h := char.Set(char.Null, 'e')
	for _, mark := range []rune{0x0301, 0x0302, 0x0303, 0x0304} {
		h = char.Merge(h, mark)
	}
	l.Write(x, h, 1, attr.Default, 1, false)
}

func TestHistoryEvictionFreesAllocatedCellHandles(t *testing.T) {
	before := char.AllocatedCount()

	h := NewHistory(2)
	for i := 0; i < 10; i++ {
		l := NewLine(3, attr.Default, 1)
		writeLongCluster(l, 0)
		h.Push(l) // cap is 2: every push past that evicts and must free
	}
	if got := h.NLines(); got != 2 {
		t.Fatalf("n_lines = %d, want 2 (capped)", got)
	}
	if got := char.AllocatedCount(); got > before+2 {
		t.Fatalf("allocated count = %d, want at most %d (2 lines still parked in history)", got, before+2)
	}

	h.Clear()
	if got := char.AllocatedCount(); got != before {
		t.Fatalf("allocated count = %d, want %d after Clear frees the remaining lines", got, before)
	}
}
