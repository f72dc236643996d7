package interpreter

import (
	"fmt"

	"github.com/cliofy/vtcore"
	"github.com/cliofy/vtcore/char"
	"github.com/cliofy/vtcore/charset"
	"github.com/cliofy/vtcore/page"
)

// apply is the Recorder's Emit callback: one recognized Seq in, zero or
// more page/cursor mutations out. The core engine only emits Seq
// records; turning one into page/cursor state is this dispatch table's
// job.
func (t *Terminal) apply(seq *govte.Seq) {
	switch seq.Type {
	case govte.SeqGraphic:
		t.PutRune(seq.Terminator)
		t.lastRune, t.haveLast = seq.Terminator, true
	case govte.SeqControl:
		t.control(seq)
	case govte.SeqEscape:
		t.escape(seq)
	case govte.SeqCSI:
		t.csi(seq)
	case govte.SeqOSC:
		t.osc(seq)
	case govte.SeqDCS:
		t.dcs(seq)
	case govte.SeqSOSPMApc:
		// SOS/PM/APC content has no assigned meaning here; discarded.
	}
}

func (t *Terminal) control(seq *govte.Seq) {
	switch seq.Command {
	case govte.CommandBEL:
		// no-op: audible/visual bell is a renderer concern.
	case govte.CommandBS:
		if t.cursorX > 0 {
			t.cursorX--
		}
		t.pendingWrap = false
	case govte.CommandHT:
		t.tabForward(1)
	case govte.CommandLF, govte.CommandVT, govte.CommandFF:
		t.lineFeed()
	case govte.CommandCR:
		t.cursorX = 0
		t.pendingWrap = false
	case govte.CommandSO:
		t.gl = charset.G1
		t.syncSelector()
	case govte.CommandSI:
		t.gl = charset.G0
		t.syncSelector()
	}
}

// lineFeed moves the cursor down one row, scrolling the region (and
// pushing to history) when it is already at the bottom.
func (t *Terminal) lineFeed() {
	bottom := t.page.ScrollIdx() + t.page.ScrollNum() - 1
	if t.cursorY >= bottom {
		t.page.ScrollUp(1, t.attr, t.historyFor())
		return
	}
	t.cursorY++
}

func (t *Terminal) reverseIndex() {
	top := t.page.ScrollIdx()
	if t.cursorY <= top {
		t.page.ScrollDown(1, t.attr, t.historyFor())
		return
	}
	t.cursorY--
}


func (t *Terminal) escape(seq *govte.Seq) {
	switch seq.Command {
	case govte.CommandIND:
		t.lineFeed()
	case govte.CommandNEL:
		t.cursorX = 0
		t.lineFeed()
	case govte.CommandRI:
		t.reverseIndex()
	case govte.CommandRIS:
		t.hardReset()
	case govte.CommandDECSC:
		t.saveCursor()
	case govte.CommandDECRC:
		t.restoreCursor()
	case govte.CommandSS2:
		t.selector.SingleShift(charset.G2)
	case govte.CommandSS3:
		t.selector.SingleShift(charset.G3)
	case govte.CommandLS2:
		t.gl = charset.G2
		t.syncSelector()
	case govte.CommandLS3:
		t.gl = charset.G3
		t.syncSelector()
	case govte.CommandLS1R:
		t.gr = charset.G1
		t.syncSelector()
	case govte.CommandLS2R:
		t.gr = charset.G2
		t.syncSelector()
	case govte.CommandLS3R:
		t.gr = charset.G3
		t.syncSelector()
	case govte.CommandDECALN:
		t.fillScreenE()
	case govte.CommandSCS:
		t.designate(seq)
	}
}

// designate implements SCS: seq.Intermediates[0] is the slot introducer
// ('(' ')' '*' '+' for G0-G3); seq.Terminator is the designator byte
// naming a catalog entry.
func (t *Terminal) designate(seq *govte.Seq) {
	if len(seq.Intermediates) == 0 {
		return
	}
	var slot charset.Index
	switch seq.Intermediates[0] {
	case '(':
		slot = charset.G0
	case ')':
		slot = charset.G1
	case '*':
		slot = charset.G2
	case '+':
		slot = charset.G3
	default:
		return
	}
	name, ok := designatorTable[byte(seq.Terminator)]
	if !ok {
		log.Debugw("unrecognized SCS designator", "byte", byte(seq.Terminator))
		return
	}
	t.charsets[slot] = name
	t.syncSelector()
}

// designatorTable maps the single-byte final of a one-intermediate SCS
// sequence to a catalog entry, covering the designators that show up in
// ordinary xterm/VT220 traffic. Two-intermediate designators (Greek,
// Hebrew, Cyrillic, Turkish DEC; the "%"-prefixed national sets) are not
// resolvable by govte/table.go's single-intermediate ResolveESC and so
// have no entry here.
var designatorTable = map[byte]charset.Name{
	'B': charset.ASCII,
	'A': charset.BritishNRCS,
	'0': charset.DECSpecialGraphic,
	'1': charset.DECSpecialGraphic,
	'2': charset.DECSpecialGraphic,
	'<': charset.DECSupplemental,
	'>': charset.DECTechnical,
	'4': charset.DutchNRCS,
	'5': charset.FinnishNRCS,
	'C': charset.FinnishNRCS,
	'R': charset.FrenchNRCS,
	'f': charset.FrenchNRCS,
	'Q': charset.FrenchCanadianNRCS,
	'9': charset.FrenchCanadianNRCS,
	'K': charset.GermanNRCS,
	'Y': charset.ItalianNRCS,
	'E': charset.NorwegianDanishNRCS,
	'6': charset.NorwegianDanishNRCS,
	'Z': charset.SpanishNRCS,
	'H': charset.SwedishNRCS,
	'7': charset.SwedishNRCS,
	'=': charset.SwissNRCS,
}

func (t *Terminal) fillScreenE() {
	for y := 0; y < t.page.Height(); y++ {
		for x := 0; x < t.page.Width(); x++ {
			t.page.Write(x, y, char.Set(char.Null, 'E'), 1, t.attr, false)
		}
	}
}

func (t *Terminal) saveCursor() {
	t.saved = savedCursor{
		x: t.cursorX, y: t.cursorY, attr: t.attr,
		charsets: t.charsets, gl: t.gl, gr: t.gr, valid: true,
	}
}

func (t *Terminal) restoreCursor() {
	if !t.saved.valid {
		return
	}
	t.cursorX, t.cursorY = t.saved.x, t.saved.y
	t.attr = t.saved.attr
	t.charsets = t.saved.charsets
	t.gl, t.gr = t.saved.gl, t.saved.gr
	t.pendingWrap = false
	t.syncSelector()
	t.clampCursor()
}

func arg(seq *govte.Seq, i int, def int32) int32 {
	if i < 0 || i >= len(seq.Args) || seq.Args[i] <= 0 {
		return def
	}
	return seq.Args[i]
}

// argRaw reads seq.Args[i] verbatim, unlike arg: an explicit 0 is kept
// (ED/EL's mode 0 means something different from mode 1 or 2). An
// elided field (-1, no digits typed) and an out-of-range index both
// fall back to def.
func argRaw(seq *govte.Seq, i int, def int32) int32 {
	if i < 0 || i >= len(seq.Args) || seq.Args[i] == -1 {
		return def
	}
	return seq.Args[i]
}

func (t *Terminal) csi(seq *govte.Seq) {
	switch seq.Command {
	case govte.CommandCUU:
		t.moveCursor(t.cursorX, t.cursorY-int(arg(seq, 0, 1)))
	case govte.CommandCUD:
		t.moveCursor(t.cursorX, t.cursorY+int(arg(seq, 0, 1)))
	case govte.CommandCUF:
		t.moveCursor(t.cursorX+int(arg(seq, 0, 1)), t.cursorY)
	case govte.CommandCUB:
		t.moveCursor(t.cursorX-int(arg(seq, 0, 1)), t.cursorY)
	case govte.CommandCNL:
		t.moveCursor(0, t.cursorY+int(arg(seq, 0, 1)))
	case govte.CommandCPL:
		t.moveCursor(0, t.cursorY-int(arg(seq, 0, 1)))
	case govte.CommandCHA:
		t.moveCursor(int(arg(seq, 0, 1))-1, t.cursorY)
	case govte.CommandCUP, govte.CommandHVP:
		row, col := int(arg(seq, 0, 1)), int(arg(seq, 1, 1))
		base := 0
		if t.originMode {
			base = t.page.ScrollIdx()
		}
		t.moveCursor(col-1, base+row-1)
	case govte.CommandHPA:
		t.moveCursor(int(arg(seq, 0, 1))-1, t.cursorY)
	case govte.CommandHPR:
		t.moveCursor(t.cursorX+int(arg(seq, 0, 1)), t.cursorY)
	case govte.CommandVPA:
		t.moveCursor(t.cursorX, int(arg(seq, 0, 1))-1)
	case govte.CommandVPR:
		t.moveCursor(t.cursorX, t.cursorY+int(arg(seq, 0, 1)))
	case govte.CommandED:
		t.eraseDisplay(int(argRaw(seq, 0, 0)))
	case govte.CommandEL:
		t.eraseLine(int(argRaw(seq, 0, 0)))
	case govte.CommandECH:
		t.page.EraseCells(t.cursorY, t.cursorX, int(arg(seq, 0, 1)), t.attr, false)
	case govte.CommandDCH:
		t.page.DeleteCells(t.cursorY, t.cursorX, int(arg(seq, 0, 1)), t.attr)
	case govte.CommandICH:
		t.page.InsertCells(t.cursorY, t.cursorX, int(arg(seq, 0, 1)), t.attr)
	case govte.CommandIL:
		t.page.InsertLines(t.cursorY, int(arg(seq, 0, 1)), t.attr)
	case govte.CommandDL:
		t.page.DeleteLines(t.cursorY, int(arg(seq, 0, 1)), t.attr)
	case govte.CommandREP:
		t.repeat(int(arg(seq, 0, 1)))
	case govte.CommandSU:
		t.page.ScrollUp(int(arg(seq, 0, 1)), t.attr, t.historyFor())
	case govte.CommandSD:
		t.page.ScrollDown(int(arg(seq, 0, 1)), t.attr, t.historyFor())
	case govte.CommandDECSTBM:
		t.setScrollRegion(int(argRaw(seq, 0, 0)), int(argRaw(seq, 1, 0)))
	case govte.CommandHTS:
		if t.cursorX < len(t.tabstops) {
			t.tabstops[t.cursorX] = true
		}
	case govte.CommandCHT:
		t.tabForward(int(arg(seq, 0, 1)))
	case govte.CommandCBT:
		t.tabBackward(int(arg(seq, 0, 1)))
	case govte.CommandTBC:
		t.clearTabs(int(argRaw(seq, 0, 0)))
	case govte.CommandSM:
		t.setAnsiModes(seq.Args, true)
	case govte.CommandRM:
		t.setAnsiModes(seq.Args, false)
	case govte.CommandDECSET:
		t.setDecModes(seq.Args, true)
	case govte.CommandDECRST:
		t.setDecModes(seq.Args, false)
	case govte.CommandSGR:
		t.sgr(seq)
	case govte.CommandDECSCA:
		t.decsca(int(argRaw(seq, 0, 0)))
	case govte.CommandDECCARA:
		t.decxara(seq, false)
	case govte.CommandDECRARA:
		t.decxara(seq, true)
	case govte.CommandDECERA:
		t.decera(seq, false)
	case govte.CommandDECSERA:
		t.decera(seq, true)
	case govte.CommandDECFRA:
		t.decfra(seq)
	case govte.CommandDECCRA:
		t.deccra(seq)
	case govte.CommandDA1:
		t.reply("\x1b[?62;1;6c")
	case govte.CommandDA2:
		t.reply("\x1b[>1;10;0c")
	case govte.CommandDA3:
		t.reply("\x1bP!|00000000\x1b\\")
	case govte.CommandDSR:
		t.dsr(int(argRaw(seq, 0, 0)))
	case govte.CommandDECDSR:
		t.decdsr(int(argRaw(seq, 0, 0)))
	case govte.CommandDECRQM:
		t.reply(fmt.Sprintf("\x1b[?%d;0$y", argRaw(seq, 0, 0)))
	case govte.CommandDECRQPSR:
		t.reply("\x1bP1$r\x1b\\")
	case govte.CommandDECREQTPARM:
		t.reply("\x1b[2;1;1;112;112;1;0x")
	case govte.CommandDECSTR:
		t.softReset()
	case govte.CommandSCOSC:
		t.saveCursor()
	case govte.CommandSCORC:
		t.restoreCursor()
	}
}

func (t *Terminal) repeat(n int) {
	if !t.haveLast || n <= 0 {
		return
	}
	for i := 0; i < n; i++ {
		t.PutRune(t.lastRune)
	}
}

func (t *Terminal) eraseDisplay(mode int) {
	last := t.page.Width() - 1
	switch mode {
	case 0:
		t.page.Erase(t.cursorX, t.cursorY, last, t.page.Height()-1, t.attr, false)
	case 1:
		t.page.Erase(0, 0, t.cursorX, t.cursorY, t.attr, false)
	case 2:
		t.page.Erase(0, 0, last, t.page.Height()-1, t.attr, false)
	case 3:
		t.page.Erase(0, 0, last, t.page.Height()-1, t.attr, false)
		if t.history != nil {
			t.history.Clear()
		}
	}
}

func (t *Terminal) eraseLine(mode int) {
	last := t.page.Width() - 1
	switch mode {
	case 0:
		t.page.Erase(t.cursorX, t.cursorY, last, t.cursorY, t.attr, false)
	case 1:
		t.page.Erase(0, t.cursorY, t.cursorX, t.cursorY, t.attr, false)
	case 2:
		t.page.Erase(0, t.cursorY, last, t.cursorY, t.attr, false)
	}
}

func (t *Terminal) setScrollRegion(top, bottom int) {
	if top <= 0 {
		top = 1
	}
	if bottom <= 0 {
		bottom = t.page.Height()
	}
	if bottom > t.page.Height() {
		bottom = t.page.Height()
	}
	if top >= bottom {
		top, bottom = 1, t.page.Height()
	}
	if err := t.page.SetScrollRegion(top-1, bottom-top+1); err != nil {
		log.Debugw("DECSTBM rejected", "error", err)
		return
	}
	if t.originMode {
		t.moveCursor(0, t.page.ScrollIdx())
	} else {
		t.moveCursor(0, 0)
	}
}

// historyFor returns the scrollback ring SU/SD/lineFeed should push into,
// nil while the alternate screen buffer is active.
func (t *Terminal) historyFor() *page.History {
	if t.usingAlt {
		return nil
	}
	return t.history
}

func (t *Terminal) tabForward(n int) {
	for ; n > 0; n-- {
		next := t.cursorX + 1
		for next < t.page.Width()-1 && !t.tabstops[next] {
			next++
		}
		if next >= t.page.Width() {
			next = t.page.Width() - 1
		}
		t.cursorX = next
	}
}

func (t *Terminal) tabBackward(n int) {
	for ; n > 0; n-- {
		prev := t.cursorX - 1
		for prev > 0 && !t.tabstops[prev] {
			prev--
		}
		if prev < 0 {
			prev = 0
		}
		t.cursorX = prev
	}
}

func (t *Terminal) clearTabs(mode int) {
	switch mode {
	case 0:
		if t.cursorX < len(t.tabstops) {
			t.tabstops[t.cursorX] = false
		}
	case 3:
		for i := range t.tabstops {
			t.tabstops[i] = false
		}
	}
}

func (t *Terminal) decsca(mode int) {
	switch mode {
	case 1:
		t.attr.Protect = true
	case 0, 2:
		t.attr.Protect = false
	}
}
