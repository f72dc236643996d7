package interpreter

import (
	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/page"
)

// ANSI SM/RM mode numbers this interpreter tracks by effect rather than
// just storing a bit (the rest round-trip through t.modes untouched).
const (
	ansiIRM = 4 // Insert/Replace Mode
)

// DEC private SET/RST mode numbers (CSI ? Pm h/l) this interpreter gives
// concrete behavior to. Modes it doesn't recognize are still recorded in
// t.dec for a caller to query (Mode), covering the rest of the xterm
// private-mode catalog as an opaque catch-all.
const (
	decDECCKM   = 1    // Application Cursor Keys
	decDECOM    = 6    // Origin Mode
	decDECAWM   = 7    // Autowrap Mode
	decDECTCEM  = 25   // Text Cursor Enable Mode
	decAltOld   = 47   // Alternate Screen Buffer (no cursor save)
	decAlt1047  = 1047 // Alternate Screen Buffer
	decAlt1048  = 1048 // Save/restore cursor (paired with 1047)
	decAlt1049  = 1049 // Save cursor + switch + clear, in one mode
	decBracket  = 2004 // Bracketed Paste Mode
)

// Mode reports whether an ANSI SM/RM-numbered mode is currently set.
func (t *Terminal) Mode(n int32) bool { return t.modes[n] }

// DecMode reports whether a DEC private SET/RST-numbered mode is
// currently set.
func (t *Terminal) DecMode(n int32) bool { return t.dec[n] }

func (t *Terminal) setAnsiModes(args []int32, on bool) {
	for _, n := range args {
		t.modes[n] = on
		if n == ansiIRM {
			t.insertMode = on
		}
	}
}

func (t *Terminal) setDecModes(args []int32, on bool) {
	for _, n := range args {
		t.dec[n] = on
		switch n {
		case decDECOM:
			t.originMode = on
			t.moveCursor(0, 0)
		case decDECAWM:
			t.autowrap = on
		case decDECTCEM:
			t.cursorVisible = on
		case decBracket:
			t.BracketedPaste = on
		case decAltOld, decAlt1047:
			t.swapAltScreen(on, false)
		case decAlt1048:
			if on {
				t.saveCursor()
			} else {
				t.restoreCursor()
			}
		case decAlt1049:
			t.swapAltScreen(on, true)
		}
	}
}

// swapAltScreen toggles between the primary and alternate screen
// buffers (xterm's 47/1047/1049 private modes). withCursor also
// saves/restores the cursor the way 1049 bundles with DECSC/DECRC.
func (t *Terminal) swapAltScreen(enable, withCursor bool) {
	if enable == t.usingAlt {
		return
	}
	if enable {
		if withCursor {
			t.altSaved = savedCursor{x: t.cursorX, y: t.cursorY, attr: t.attr, charsets: t.charsets, gl: t.gl, gr: t.gr, valid: true}
		}
		if t.altPage == nil {
			t.altPage = page.NewPage(t.page.Width(), t.page.Height(), attr.Default)
		} else {
			t.altPage.Reset(attr.Default)
		}
		t.page, t.altPage = t.altPage, t.page
		t.usingAlt = true
		t.moveCursor(0, 0)
	} else {
		t.page, t.altPage = t.altPage, t.page
		t.usingAlt = false
		if withCursor && t.altSaved.valid {
			t.cursorX, t.cursorY = t.altSaved.x, t.altSaved.y
			t.attr = t.altSaved.attr
			t.charsets = t.altSaved.charsets
			t.gl, t.gr = t.altSaved.gl, t.altSaved.gr
			t.syncSelector()
		}
		t.clampCursor()
	}
}
