package interpreter

import "fmt"

// reply hands bytes to t.Reply, the optional host-response channel used
// by DA1/DA2/DA3/DSR and friends. A nil Reply makes every report a
// no-op: a caller not driving a live PTY has nowhere for the bytes to
// go.
func (t *Terminal) reply(s string) {
	if t.Reply == nil {
		return
	}
	t.Reply([]byte(s))
}

// dsr implements ANSI Device Status Report (CSI Pn n): 5 reports
// terminal-OK, 6 reports the cursor position (1-based, DECOM-relative).
func (t *Terminal) dsr(kind int) {
	switch kind {
	case 5:
		t.reply("\x1b[0n")
	case 6:
		row := t.cursorY + 1
		if t.originMode {
			row = t.cursorY - t.page.ScrollIdx() + 1
		}
		t.reply(fmt.Sprintf("\x1b[%d;%dR", row, t.cursorX+1))
	}
}

// decdsr implements the DEC-private Device Status Report family
// (CSI ? Pn n).
func (t *Terminal) decdsr(kind int) {
	switch kind {
	case 6:
		row := t.cursorY + 1
		if t.originMode {
			row = t.cursorY - t.page.ScrollIdx() + 1
		}
		t.reply(fmt.Sprintf("\x1b[?%d;%dR", row, t.cursorX+1))
	case 15:
		t.reply("\x1b[?13n") // no printer
	case 25:
		t.reply("\x1b[?20n") // UDK unlocked
	case 26:
		t.reply("\x1b[?27;1n") // North American keyboard
	}
}
