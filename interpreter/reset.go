package interpreter

import (
	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/charset"
	"github.com/cliofy/vtcore/page"
)

// hardReset implements RIS: the page is recreated blank at its current
// size, history is cleared, and every piece of ambient state (attr,
// modes, charsets, tabstops, cursor, scroll region) returns to its
// power-on default.
func (t *Terminal) hardReset() {
	w, h := t.page.Width(), t.page.Height()
	t.page = page.NewPage(w, h, attr.Default)
	if t.history != nil {
		t.history.Clear()
	}
	t.usingAlt = false
	t.altPage = nil
	t.cursorX, t.cursorY = 0, 0
	t.attr = attr.Default
	t.insertMode = false
	t.originMode = false
	t.autowrap = true
	t.pendingWrap = false
	t.cursorVisible = true
	t.charsets = [4]charset.Name{charset.ASCII, charset.ASCII, charset.ASCII, charset.ASCII}
	t.gl, t.gr = charset.G0, charset.G1
	t.userPref = charset.ASCII
	t.syncSelector()
	t.tabstops = defaultTabstops(w)
	t.saved = savedCursor{}
	t.altSaved = savedCursor{}
	t.modes = make(map[int32]bool)
	t.dec = make(map[int32]bool)
	t.BracketedPaste = false
	t.haveLast = false
	t.Title, t.IconName = "", ""
	t.Palette = nil
}

// softReset implements DECSTR: like RIS but the screen's contents, the
// alternate-screen selection, and the scrollback are left untouched —
// only cursor position, attributes, modes, and the scroll region reset.
func (t *Terminal) softReset() {
	t.cursorX, t.cursorY = 0, 0
	t.attr = attr.Default
	t.insertMode = false
	t.originMode = false
	t.autowrap = true
	t.pendingWrap = false
	t.cursorVisible = true
	t.saved = savedCursor{}
	if err := t.page.SetScrollRegion(0, t.page.Height()); err != nil {
		log.Debugw("DECSTR: failed to reset scroll region", "error", err)
	}
}
