// Package interpreter is a thin, reference dispatch from parsed
// sequences to page mutations: an example "executor" built on top of
// the core engine, included here only so the whole byte -> Seq -> page
// pipeline is exercisable end to end. Nothing in wcwidth, utf8codec,
// char, attr, charset, page, or govte imports this package.
package interpreter

import (
	"go.uber.org/zap"

	"github.com/cliofy/vtcore"
	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
	"github.com/cliofy/vtcore/charset"
	"github.com/cliofy/vtcore/page"
	"github.com/cliofy/vtcore/wcwidth"
)

// log is nil-safe by construction, matching page's package logger
// convention; SetLogger wires in a real one.
var log = zap.NewNop().Sugar()

// SetLogger replaces the package logger. Pass nil to discard again.
func SetLogger(l *zap.Logger) {
	if l == nil {
		log = zap.NewNop().Sugar()
		return
	}
	log = l.Sugar()
}

// savedCursor is the DECSC/SCOSC snapshot: position, attribute, and the
// G0-G3 designations and GL/GR assignment in effect at save time.
type savedCursor struct {
	x, y     int
	attr     attr.Attributes
	charsets [4]charset.Name
	gl, gr   charset.Index
	valid    bool
}

// Terminal holds a page.Page, a govte.Parser+Recorder pair, cursor
// position, current SGR state, charset selection, and tabstops; it
// dispatches each Seq.Command the Recorder produces onto page
// operations. It is cursor-aware and mode-aware specifically because
// page.Page itself carries no cursor.
type Terminal struct {
	page     *page.Page
	history  *page.History
	parser   *govte.Parser
	recorder *govte.Recorder

	cursorX, cursorY int
	attr             attr.Attributes
	insertMode       bool // IRM
	originMode       bool // DECOM
	autowrap         bool // DECAWM, default on
	pendingWrap      bool // deferred wrap, set when a write lands in the last column

	cursorVisible bool
	cwidthCJK     bool

	selector *charset.Selector
	charsets [4]charset.Name
	gl, gr   charset.Index
	userPref charset.Name

	tabstops []bool

	saved    savedCursor
	altSaved savedCursor

	modes map[int32]bool // ANSI SM/RM by numeric code
	dec   map[int32]bool // DEC private SET/RST by numeric code

	altPage   *page.Page
	usingAlt  bool
	lastRune  rune
	haveLast  bool

	// BracketedPaste mirrors DEC private mode 2004.
	BracketedPaste bool

	// Reply, if non-nil, receives bytes the terminal would send back to
	// the host (DA/DSR/DECRPM replies, OSC query responses). Optional:
	// a caller that doesn't drive a live PTY can leave it nil.
	Reply func([]byte)

	// Title is the most recent OSC 0/2 window-title payload.
	Title string
	// IconName is the most recent OSC 1 icon-name payload.
	IconName string
	// Palette holds OSC 4 indexed-color overrides, nil until the first one
	// arrives. A renderer consults it before falling back to the built-in
	// 256-color table.
	Palette map[uint8]attr.Color

	// LastDCS is the most recent DCS passthrough payload.
	LastDCS LastDCS
}

// New builds a Terminal over a fresh width x height page with no
// scrollback cap.
func New(width, height int) *Terminal {
	return NewWithHistory(width, height, page.NewHistory(0))
}

// NewWithHistory builds a Terminal over a fresh page backed by the given
// history (nil disables scrollback entirely: scrolled-off lines are
// simply dropped).
func NewWithHistory(width, height int, history *page.History) *Terminal {
	t := &Terminal{
		page:          page.NewPage(width, height, attr.Default),
		history:       history,
		attr:          attr.Default,
		autowrap:      true,
		cursorVisible: true,
		selector:      charset.NewSelector(),
		charsets:      [4]charset.Name{charset.ASCII, charset.ASCII, charset.ASCII, charset.ASCII},
		gl:            charset.G0,
		gr:            charset.G1,
		userPref:      charset.ASCII,
		tabstops:      defaultTabstops(width),
		modes:         make(map[int32]bool),
		dec:           make(map[int32]bool),
	}
	t.recorder = &govte.Recorder{IsHost: true, Emit: t.apply}
	t.parser = govte.NewParser()
	return t
}

func defaultTabstops(width int) []bool {
	stops := make([]bool, width)
	for i := 0; i < width; i += 8 {
		stops[i] = true
	}
	return stops
}

// Page returns the underlying grid, for a renderer to walk.
func (t *Terminal) Page() *page.Page { return t.page }

// History returns the scrollback ring (nil if this Terminal was built
// without one).
func (t *Terminal) History() *page.History { return t.history }

// Cursor returns the current 0-based cursor column/row.
func (t *Terminal) Cursor() (x, y int) { return t.cursorX, t.cursorY }

// CursorVisible reports whether DECTCEM is currently on.
func (t *Terminal) CursorVisible() bool { return t.cursorVisible }

// Attr returns the current SGR state new writes will carry.
func (t *Terminal) Attr() attr.Attributes { return t.attr }

// Feed parses data and dispatches every recognized sequence, in order.
func (t *Terminal) Feed(data []byte) {
	t.parser.Advance(t.recorder, data)
}

// widthFn picks wcwidth vs wcwidth_cjk per the configured ambiguous-width
// policy (config.Limits.CJKWidth).
func (t *Terminal) widthFn() func(rune) int {
	if t.cwidthCJK {
		return wcwidth.WidthCJK
	}
	return wcwidth.Width
}

// SetCJKWidth selects the ambiguous-width convention (config.Limits.CJKWidth).
func (t *Terminal) SetCJKWidth(cjk bool) { t.cwidthCJK = cjk }

func (t *Terminal) clampCursor() {
	if t.cursorX < 0 {
		t.cursorX = 0
	}
	if t.cursorX >= t.page.Width() {
		t.cursorX = t.page.Width() - 1
	}
	if t.cursorY < t.scrollTop() {
		t.cursorY = t.scrollTop()
	}
	if t.cursorY >= t.scrollBottom() {
		t.cursorY = t.scrollBottom() - 1
	}
}

func (t *Terminal) scrollTop() int {
	if t.originMode {
		return t.page.ScrollIdx()
	}
	return 0
}

func (t *Terminal) scrollBottom() int {
	if t.originMode {
		return t.page.ScrollIdx() + t.page.ScrollNum()
	}
	return t.page.Height()
}

// moveCursor sets the absolute position, clamped to the page (and, if
// DECOM is on, to the scroll region).
func (t *Terminal) moveCursor(x, y int) {
	t.pendingWrap = false
	lo, hi := 0, t.page.Height()-1
	if t.originMode {
		lo = t.page.ScrollIdx()
		hi = t.page.ScrollIdx() + t.page.ScrollNum() - 1
	}
	if y < lo {
		y = lo
	}
	if y > hi {
		y = hi
	}
	if x < 0 {
		x = 0
	}
	if x >= t.page.Width() {
		x = t.page.Width() - 1
	}
	t.cursorX, t.cursorY = x, y
}

// PutRune translates a single decoded code point through the active
// charset slot and writes it at the cursor, advancing it and handling autowrap/combining marks the
// way a SeqGraphic dispatch would. Exposed so callers that already have
// code points in hand (tests, a REPL) don't need to round-trip through
// UTF-8 bytes.
func (t *Terminal) PutRune(r rune) {
	r = t.translate(r)
	w := t.widthFn()(r)
	if w == 0 {
		t.combine(r)
		return
	}
	if w < 0 {
		w = 1
	}
	if t.pendingWrap {
		t.wrapLine()
	}
	if t.cursorX+w > t.page.Width() {
		if t.autowrap {
			t.wrapLine()
		} else {
			t.cursorX = t.page.Width() - w
			if t.cursorX < 0 {
				t.cursorX = 0
			}
		}
	}
	h := char.Set(char.Null, r)
	t.page.Write(t.cursorX, t.cursorY, h, w, t.attr, t.insertMode)
	t.cursorX += w
	if t.cursorX >= t.page.Width() {
		t.pendingWrap = t.autowrap
		t.cursorX = t.page.Width() - 1
	}
}

func (t *Terminal) combine(r rune) {
	x := t.cursorX - 1
	if x < 0 {
		x = 0
	}
	t.page.AppendCombChar(x, t.cursorY, r)
}

func (t *Terminal) wrapLine() {
	t.pendingWrap = false
	t.cursorX = 0
	t.lineFeed()
}

// translate runs r through the slot active on GL/GR, honoring a pending
// single shift (SS2/SS3) armed by the escape dispatch.
func (t *Terminal) translate(r rune) rune {
	return t.selector.Translate(r)
}

// syncSelector pushes GL/GR and the four G-set designations (resolving
// the user-preference slot to t.userPref) into the persistent Selector.
// Called after any SCS/LS change. No control sequence changes t.userPref;
// DECAUPSS is not handled.
func (t *Terminal) syncSelector() {
	t.selector.SetGL(t.gl)
	t.selector.SetGR(t.gr)
	for i, name := range t.charsets {
		resolved := name
		if resolved == charset.UserPreference {
			resolved = t.userPref
		}
		t.selector.Designate(charset.Index(i), resolved)
	}
}
