package page

import (
	"container/list"

	"github.com/pkg/errors"

	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
)

// Line is a variable-width row: an allocated cell buffer of capacity
// n_cells >= width, a fill counter, a per-line age, and (only while
// parked in a History) a list-element linkage.
type Line struct {
	cells []Cell // len(cells) == capacity (n_cells); cells[0:width] are visible
	width int
	fill  int
	age   Age

	elem *list.Element // non-nil only while linked into a History
}

// NewLine allocates a line of the given width, blank-filled with a and
// age.
func NewLine(width int, a attr.Attributes, age Age) *Line {
	l := &Line{}
	if err := l.Reserve(width, a, age, 0); err != nil {
		// width>=0 by construction below; Reserve only fails on
		// negative width, which NewLine's caller cannot produce without
		// a bug upstream. Fall back to an empty line rather than panic.
		l.width = 0
	}
	return l
}

// Reserve ensures capacity >= width, preserving cells in [0, protectWidth)
// unchanged; any newly exposed cells are blanked with a/age. Returns an
// error (and leaves the line at its prior width/capacity) only for a
// structurally invalid request.
func (l *Line) Reserve(width int, a attr.Attributes, age Age, protectWidth int) error {
	if width < 0 {
		return errors.Errorf("page: negative line width %d", width)
	}
	if protectWidth > len(l.cells) {
		protectWidth = len(l.cells)
	}
	if width > len(l.cells) {
		grown := make([]Cell, width)
		copy(grown, l.cells[:protectWidth])
		for i := protectWidth; i < width; i++ {
			grown[i] = blank(a, age)
		}
		l.cells = grown
	} else {
		for i := l.width; i < width; i++ {
			release(&l.cells[i])
			l.cells[i] = blank(a, age)
		}
	}
	l.width = width
	if l.fill > width {
		l.fill = width
	}
	return nil
}

// SetWidth shrinks or grows the visible width within capacity (a width
// beyond capacity is clamped to it; callers needing more capacity call
// Reserve first). Shrinking truncates fill.
func (l *Line) SetWidth(w int) {
	if w < 0 {
		w = 0
	}
	if w > cap(l.cells) && w > len(l.cells) {
		w = len(l.cells)
	}
	l.width = w
	if l.fill > w {
		l.fill = w
	}
}

// Width returns the line's current visible width.
func (l *Line) Width() int { return l.width }

// Fill returns the count of leftmost non-blank cells.
func (l *Line) Fill() int { return l.fill }

// Age returns the line's own age (stamped only by callers forcing a
// full-line redraw, e.g. after SetWidth).
func (l *Line) Age() Age { return l.age }

// SetAge stamps the line's own age.
func (l *Line) SetAge(age Age) { l.age = age }

// Cell returns a pointer to the cell at column x, or nil if out of
// [0, width).
func (l *Line) Cell(x int) *Cell {
	if x < 0 || x >= l.width {
		return nil
	}
	return &l.cells[x]
}

// Write places a character at column x. If insertMode, cells in
// [x, width-cwidth) shift right by cwidth first; otherwise x is
// overwritten in place. A width-2 write sets cell x to ch and cell x+1 to
// a zero-width continuation placeholder; writing over an existing wide
// cell blanks its partner. A wide write landing at x == width-1 is
// dropped rather than leaving a partial glyph.
func (l *Line) Write(x int, ch char.Handle, cwidth int, a attr.Attributes, age Age, insertMode bool) {
	if x < 0 || x >= l.width || cwidth <= 0 {
		return
	}
	if cwidth == 2 && x == l.width-1 {
		return
	}
	if insertMode {
		l.shiftRight(x, cwidth, a, age)
		if x < l.fill {
			l.fill += cwidth
			if l.fill > l.width {
				l.fill = l.width
			}
		}
	} else {
		l.clearWidePartner(x, a, age)
		if cwidth == 2 {
			l.clearWidePartner(x+1, a, age)
		}
	}
	release(&l.cells[x])
	l.cells[x] = Cell{Ch: ch, Age: age, Attr: a, Width: cwidth}
	if cwidth == 2 {
		release(&l.cells[x+1])
		l.cells[x+1] = continuation(a, age)
	}
	if x+cwidth > l.fill {
		l.fill = x + cwidth
	}
}

// clearWidePartner blanks the other half of a wide character pair if x
// overlaps one, so overwriting never leaves a dangling half-glyph.
func (l *Line) clearWidePartner(x int, a attr.Attributes, age Age) {
	if x < 0 || x >= l.width {
		return
	}
	if l.cells[x].Width == 0 && x > 0 {
		release(&l.cells[x-1])
		l.cells[x-1] = blank(a, age)
	} else if l.cells[x].Width == 2 && x+1 < l.width {
		release(&l.cells[x+1])
		l.cells[x+1] = blank(a, age)
	}
}

func (l *Line) shiftRight(x, num int, a attr.Attributes, age Age) {
	if num <= 0 {
		return
	}
	l.clearWidePartner(x, a, age)
	for i := l.width - 1; i >= x+num; i-- {
		release(&l.cells[i])
		l.cells[i] = l.cells[i-num]
		l.cells[i].Age = age
	}
	for i := x; i < x+num && i < l.width; i++ {
		release(&l.cells[i])
		l.cells[i] = blank(a, age)
	}
}

// Insert shifts cells in [from, width) right by num, blanking vacated
// cells with a/age.
func (l *Line) Insert(from, num int, a attr.Attributes, age Age) {
	if from < 0 || from >= l.width || num <= 0 {
		return
	}
	if num > l.width-from {
		num = l.width - from
	}
	l.clearWidePartner(from, a, age)
	for i := l.width - 1; i >= from+num; i-- {
		release(&l.cells[i])
		l.cells[i] = l.cells[i-num]
		l.cells[i].Age = age
	}
	for i := from; i < from+num; i++ {
		release(&l.cells[i])
		l.cells[i] = blank(a, age)
	}
	if from < l.fill {
		l.fill += num
		if l.fill > l.width {
			l.fill = l.width
		}
	}
}

// Delete shifts cells in [from+num, width) left to from, blanking the
// vacated tail with a/age.
func (l *Line) Delete(from, num int, a attr.Attributes, age Age) {
	if from < 0 || from >= l.width || num <= 0 {
		return
	}
	if num > l.width-from {
		num = l.width - from
	}
	l.clearWidePartner(from, a, age)
	l.clearWidePartner(from+num, a, age)
	src := from + num
	dst := from
	for src < l.width {
		release(&l.cells[dst])
		l.cells[dst] = l.cells[src]
		l.cells[dst].Age = age
		dst++
		src++
	}
	for dst < l.width {
		release(&l.cells[dst])
		l.cells[dst] = blank(a, age)
		dst++
	}
	if l.fill > l.width-num {
		l.fill = l.width - num
		if l.fill < 0 {
			l.fill = 0
		}
	}
}

// AppendCombChar merges a combining mark onto the character at column x.
// If the target cell is blank, the mark becomes a standalone base there
// (defensive fallback for a combiner with no preceding base).
func (l *Line) AppendCombChar(x int, ucs4 rune, age Age) {
	c := l.Cell(x)
	if c == nil {
		return
	}
	c.Ch = char.Merge(c.Ch, ucs4)
	c.Age = age
	if c.Width == 0 {
		c.Width = char.Width(c.Ch)
	}
}

// Erase blanks cells in [from, from+num); if keepProtected, cells whose
// Attr.Protect is set are left untouched.
func (l *Line) Erase(from, num int, a attr.Attributes, age Age, keepProtected bool) {
	if from < 0 {
		from = 0
	}
	end := from + num
	if end > l.width {
		end = l.width
	}
	if from >= end {
		return
	}
	l.clearWidePartner(from, a, age)
	l.clearWidePartner(end, a, age)
	for i := from; i < end; i++ {
		if keepProtected && l.cells[i].Attr.Protect {
			continue
		}
		release(&l.cells[i])
		l.cells[i] = blank(a, age)
	}
	if from < l.fill {
		allBlank := true
		for i := from; i < l.fill; i++ {
			if !l.cells[i].IsBlank() {
				allBlank = false
				break
			}
		}
		if allBlank {
			l.fill = from
		}
	}
}

// Reset blanks every cell and zeroes fill.
func (l *Line) Reset(a attr.Attributes, age Age) {
	for i := range l.cells[:l.width] {
		release(&l.cells[i])
		l.cells[i] = blank(a, age)
	}
	l.fill = 0
}

// Release frees every cell's allocated handle storage. Call this only
// when the line itself is being discarded for good — a scrollback
// eviction past the cap, an explicit history clear, or a resize that
// shrinks height with nowhere to push the displaced rows. A line headed
// back into the active page (recycled by ScrollUp/ScrollDown, or parked
// in History) keeps its cells untouched.
func (l *Line) Release() {
	for i := range l.cells {
		release(&l.cells[i])
	}
}
