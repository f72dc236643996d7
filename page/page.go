package page

import (
	"github.com/pkg/errors"

	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
)

// Page is the 2D grid: an array of line pointers, a scroll region, and
// its own monotonic age. It has no cursor; cursor tracking belongs to
// the caller driving it.
type Page struct {
	age Age

	lines     []*Line
	lineCache []*Line // scratch for pointer-rotation scrolling

	width, height int

	scrollIdx, scrollNum int
	scrollFill           int
	touched              []bool // per-region-row "written since reset" marks backing scrollFill
}

// NewPage allocates a width x height page, every cell blank with a, scroll
// region set to the full page.
func NewPage(width, height int, a attr.Attributes) *Page {
	p := &Page{age: next(AgeNull)}
	p.lines = make([]*Line, height)
	for i := range p.lines {
		p.lines[i] = NewLine(width, a, p.age)
	}
	p.width, p.height = width, height
	p.scrollIdx, p.scrollNum = 0, height
	p.touched = make([]bool, height)
	return p
}

func (p *Page) Age() Age        { return p.age }
func (p *Page) Width() int      { return p.width }
func (p *Page) Height() int     { return p.height }
func (p *Page) ScrollIdx() int  { return p.scrollIdx }
func (p *Page) ScrollNum() int  { return p.scrollNum }
func (p *Page) ScrollFill() int { return p.scrollFill }

func (p *Page) lineAt(y int) *Line {
	if y < 0 || y >= p.height {
		return nil
	}
	return p.lines[y]
}

// GetCell returns the cell at (x, y), or nil if out of bounds.
func (p *Page) GetCell(x, y int) *Cell {
	l := p.lineAt(y)
	if l == nil {
		return nil
	}
	return l.Cell(x)
}

func (p *Page) noteWrite(y int) {
	idx := y - p.scrollIdx
	if idx < 0 || idx >= len(p.touched) || p.touched[idx] {
		return
	}
	p.touched[idx] = true
	p.scrollFill++
}

// SetScrollRegion validates idx+num <= height, records the region, and
// resets scrollFill.
func (p *Page) SetScrollRegion(idx, num int) error {
	if idx < 0 || num < 0 || idx+num > p.height {
		return errors.Errorf("page: invalid scroll region idx=%d num=%d height=%d", idx, num, p.height)
	}
	p.scrollIdx, p.scrollNum = idx, num
	p.scrollFill = 0
	p.touched = make([]bool, num)
	return nil
}

// Write places a character at (x, y) in the current scroll/insert mode.
func (p *Page) Write(x, y int, ch char.Handle, cwidth int, a attr.Attributes, insertMode bool) {
	l := p.lineAt(y)
	if l == nil {
		return
	}
	p.age = next(p.age)
	l.Write(x, ch, cwidth, a, p.age, insertMode)
	p.noteWrite(y)
}

// InsertCells shifts cells in row y right, per Line.Insert.
func (p *Page) InsertCells(y, from, num int, a attr.Attributes) {
	l := p.lineAt(y)
	if l == nil {
		return
	}
	p.age = next(p.age)
	l.Insert(from, num, a, p.age)
	p.noteWrite(y)
}

// DeleteCells shifts cells in row y left, per Line.Delete.
func (p *Page) DeleteCells(y, from, num int, a attr.Attributes) {
	l := p.lineAt(y)
	if l == nil {
		return
	}
	p.age = next(p.age)
	l.Delete(from, num, a, p.age)
	p.noteWrite(y)
}

// AppendCombChar merges a combining mark onto the cell at (x, y).
func (p *Page) AppendCombChar(x, y int, ucs4 rune) {
	l := p.lineAt(y)
	if l == nil {
		return
	}
	p.age = next(p.age)
	l.AppendCombChar(x, ucs4, p.age)
	p.noteWrite(y)
}

// EraseCells blanks cells [from, from+num) in row y (ECH, and DECERA/
// DECSERA's per-row rectangle fill).
func (p *Page) EraseCells(y, from, num int, a attr.Attributes, keepProtected bool) {
	l := p.lineAt(y)
	if l == nil {
		return
	}
	p.age = next(p.age)
	l.Erase(from, num, a, p.age, keepProtected)
	p.noteWrite(y)
}

// Erase blanks cells in reading order from (fromX, fromY) to (toX, toY)
// inclusive, wrapping line-wise across a multi-row range (ED/EL's shared
// shape: a partial first row, full rows in between, a partial last row).
// One logical mutation: the page age advances once for the whole call,
// not once per touched row.
func (p *Page) Erase(fromX, fromY, toX, toY int, a attr.Attributes, keepProtected bool) {
	if fromY < 0 {
		fromX, fromY = 0, 0
	}
	if toY >= p.height {
		toX, toY = p.width-1, p.height-1
	}
	if fromY > toY || (fromY == toY && fromX > toX) {
		return
	}
	p.age = next(p.age)
	if fromY == toY {
		p.eraseRow(fromY, fromX, toX-fromX+1, a, keepProtected)
		return
	}
	p.eraseRow(fromY, fromX, p.width-fromX, a, keepProtected)
	for y := fromY + 1; y < toY; y++ {
		p.eraseRow(y, 0, p.width, a, keepProtected)
	}
	p.eraseRow(toY, 0, toX+1, a, keepProtected)
}

// eraseRow blanks [from, from+num) in row y using the age Erase already
// stamped for the whole logical operation.
func (p *Page) eraseRow(y, from, num int, a attr.Attributes, keepProtected bool) {
	l := p.lineAt(y)
	if l == nil {
		return
	}
	l.Erase(from, num, a, p.age, keepProtected)
	p.noteWrite(y)
}

// Reset blanks every line, resets the scroll region to the full page.
func (p *Page) Reset(a attr.Attributes) {
	p.age = next(p.age)
	for _, l := range p.lines {
		l.Reset(a, p.age)
	}
	p.scrollIdx, p.scrollNum = 0, p.height
	p.scrollFill = 0
	p.touched = make([]bool, p.height)
}

func (p *Page) ensureCache(n int) []*Line {
	if cap(p.lineCache) < n {
		p.lineCache = make([]*Line, n)
	}
	return p.lineCache[:n]
}

// ScrollUp takes the top min(num, scrollNum) lines of the scroll region,
// optionally pushing each to history, and cycles freshly blanked (or
// newly allocated, if transferred to history) lines to the bottom.
// Pointer-only: cell contents are never copied, only *Line slots rotate.
func (p *Page) ScrollUp(num int, a attr.Attributes, history *History) {
	if p.scrollNum <= 0 || num <= 0 {
		return
	}
	if num > p.scrollNum {
		num = p.scrollNum
	}
	p.age = next(p.age)
	region := p.lines[p.scrollIdx : p.scrollIdx+p.scrollNum]
	n := len(region)
	cache := p.ensureCache(n)
	copy(cache, region[num:])
	for i := 0; i < num; i++ {
		var l *Line
		if history != nil {
			history.Push(region[i])
			l = NewLine(p.width, a, p.age)
		} else {
			l = region[i]
			l.Reset(a, p.age)
		}
		cache[n-num+i] = l
	}
	copy(region, cache)
	p.scrollFill = p.scrollNum
	for i := range p.touched {
		p.touched[i] = true
	}
}

// ScrollDown is the inverse of ScrollUp: it pops from history's tail to
// refill the top of the region when available, else blanks.
func (p *Page) ScrollDown(num int, a attr.Attributes, history *History) {
	if p.scrollNum <= 0 || num <= 0 {
		return
	}
	if num > p.scrollNum {
		num = p.scrollNum
	}
	p.age = next(p.age)
	region := p.lines[p.scrollIdx : p.scrollIdx+p.scrollNum]
	n := len(region)
	cache := p.ensureCache(n)
	copy(cache[num:], region[:n-num])
	for i := num - 1; i >= 0; i-- {
		var l *Line
		if history != nil {
			l = history.Pop(p.width, a, p.age)
		}
		if l == nil {
			l = region[n-num+i]
			l.Reset(a, p.age)
		} else {
			region[n-num+i].Release()
		}
		cache[i] = l
	}
	copy(region, cache)
	p.scrollFill = p.scrollNum
	for i := range p.touched {
		p.touched[i] = true
	}
}

// InsertLines scrolls [y, scrollIdx+scrollNum) down by num within the
// scroll region, blanking the vacated top.
func (p *Page) InsertLines(y, num int, a attr.Attributes) {
	end := p.scrollIdx + p.scrollNum
	if num <= 0 || y < p.scrollIdx || y >= end {
		return
	}
	if avail := end - y; num > avail {
		num = avail
	}
	p.age = next(p.age)
	region := p.lines[y:end]
	n := len(region)
	cache := p.ensureCache(n)
	copy(cache[num:], region[:n-num])
	for i := 0; i < num; i++ {
		l := region[n-num+i]
		l.Reset(a, p.age)
		cache[i] = l
	}
	copy(region, cache)
}

// DeleteLines scrolls [y, scrollIdx+scrollNum) up by num within the scroll
// region, blanking the vacated bottom.
func (p *Page) DeleteLines(y, num int, a attr.Attributes) {
	end := p.scrollIdx + p.scrollNum
	if num <= 0 || y < p.scrollIdx || y >= end {
		return
	}
	if avail := end - y; num > avail {
		num = avail
	}
	p.age = next(p.age)
	region := p.lines[y:end]
	n := len(region)
	cache := p.ensureCache(n)
	copy(cache, region[num:])
	for i := 0; i < num; i++ {
		l := region[i]
		l.Reset(a, p.age)
		cache[n-num+i] = l
	}
	copy(region, cache)
}

// Resize changes visible width x height. Shrinking height evicts top lines
// to history (if non-nil) until height is met; growing height pops from
// history to refill the top, falling back to fresh blank lines. Width
// change reflows each line via Reserve/SetWidth without hard wrapping.
func (p *Page) Resize(width, height int, a attr.Attributes, history *History) error {
	if width < 0 || height < 0 {
		return errors.Errorf("page: negative resize dimensions (%d,%d)", width, height)
	}
	p.age = next(p.age)
	switch {
	case height < p.height:
		evict := p.height - height
		for i := 0; i < evict; i++ {
			top := p.lines[0]
			p.lines = p.lines[1:]
			if history != nil {
				history.Push(top)
			} else {
				top.Release()
			}
		}
	case height > p.height:
		grow := height - p.height
		added := make([]*Line, 0, grow)
		for i := 0; i < grow; i++ {
			var l *Line
			if history != nil {
				l = history.Pop(width, a, p.age)
			}
			if l == nil {
				l = NewLine(width, a, p.age)
			}
			added = append([]*Line{l}, added...)
		}
		p.lines = append(added, p.lines...)
	}
	for _, l := range p.lines {
		if err := l.Reserve(width, a, p.age, l.Width()); err != nil {
			return errors.Wrap(err, "page: resize")
		}
		l.SetWidth(width)
	}
	p.width, p.height = width, height
	if p.scrollIdx+p.scrollNum > height {
		p.scrollIdx = 0
		p.scrollNum = height
	}
	p.scrollFill = 0
	p.touched = make([]bool, p.scrollNum)
	p.lineCache = nil
	return nil
}
