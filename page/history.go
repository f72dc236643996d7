package page

import (
	"container/list"

	"github.com/cliofy/vtcore/attr"
)

// History is the scrollback ring: a FIFO of evicted lines capped at
// maxLines. Lines are pushed at the tail when they scroll off the top
// of a scroll region, popped from the tail when scrolling back down
// re-populates that top, and trimmed from the head when the cap is
// exceeded or on explicit Trim.
type History struct {
	list     *list.List
	maxLines int
}

// NewHistory builds an empty history capped at maxLines. maxLines <= 0
// means unbounded.
func NewHistory(maxLines int) *History {
	return &History{list: list.New(), maxLines: maxLines}
}

// NLines returns the current line count.
func (h *History) NLines() int { return h.list.Len() }

// MaxLines returns the configured cap.
func (h *History) MaxLines() int { return h.maxLines }

// Push appends l at the tail, transferring ownership to the history. If
// the cap is exceeded, the line at the head is dropped.
func (h *History) Push(l *Line) {
	l.elem = h.list.PushBack(l)
	if h.maxLines > 0 && h.list.Len() > h.maxLines {
		front := h.list.Front()
		evicted := front.Value.(*Line)
		h.list.Remove(front)
		evicted.elem = nil
		evicted.Release()
		log.Debugw("history line evicted", "n_lines", h.list.Len(), "max_lines", h.maxLines)
	}
}

// Pop detaches the tail line, reserving it at width/attr/age so it is
// compatible with the current page before handing it back. Returns nil if
// the history is empty.
func (h *History) Pop(width int, a attr.Attributes, age Age) *Line {
	back := h.list.Back()
	if back == nil {
		return nil
	}
	h.list.Remove(back)
	l := back.Value.(*Line)
	l.elem = nil
	if err := l.Reserve(width, a, age, l.Width()); err != nil {
		log.Warnw("history pop: reserve failed, returning line as-is", "error", err)
	}
	l.SetWidth(width)
	return l
}

// Peek returns the tail line without detaching it, or nil if empty.
func (h *History) Peek() *Line {
	back := h.list.Back()
	if back == nil {
		return nil
	}
	return back.Value.(*Line)
}

// Trim evicts up to n lines from the head.
func (h *History) Trim(n int) {
	for i := 0; i < n; i++ {
		front := h.list.Front()
		if front == nil {
			return
		}
		evicted := front.Value.(*Line)
		h.list.Remove(front)
		evicted.elem = nil
		evicted.Release()
	}
}

// Clear evicts every line.
func (h *History) Clear() {
	for e := h.list.Front(); e != nil; e = e.Next() {
		e.Value.(*Line).Release()
	}
	h.list = list.New()
}
