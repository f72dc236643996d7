package interpreter

import (
	"fmt"

	"github.com/cliofy/vtcore"
)

// LastDCS is the most recent DCS passthrough payload (e.g. a Sixel body
// or a DECRQSS query string), exposed for introspection. This interpreter
// does not render Sixel/ReGIS graphics (Non-goal); it only remembers the
// bytes so a caller that does can get at them.
type LastDCS struct {
	Intermediates []byte
	Marker        byte
	Terminator    rune
	Payload       []byte
}

// dcs implements DCS passthrough (Hook/Put.../Unhook, collapsed by the
// core into one Seq): DECRQSS gets a real reply, anything else is just
// recorded in LastDCS.
func (t *Terminal) dcs(seq *govte.Seq) {
	if seq.Command != govte.CommandDCSPassthrough {
		return
	}
	t.LastDCS = LastDCS{
		Intermediates: seq.Intermediates,
		Marker:        seq.Marker,
		Terminator:    seq.Terminator,
		Payload:       seq.ST,
	}
	if len(seq.Intermediates) == 1 && seq.Intermediates[0] == '$' && seq.Terminator == 'q' {
		t.decrqss(string(seq.ST))
	}
}

// decrqss answers DECRQSS (DCS $ q Pt ST): Pt names a setting whose
// current value should be reported back as DCS 1 $ r <value> Pt ST. Only
// the handful of settings this Terminal actually tracks are answered;
// anything else gets the "invalid request" form (DCS 0 $ r ST).
func (t *Terminal) decrqss(pt string) {
	switch pt {
	case "m":
		t.reply(fmt.Sprintf("\x1bP1$r%sm\x1b\\", t.sgrReport()))
	case "r":
		top := t.page.ScrollIdx() + 1
		bottom := t.page.ScrollIdx() + t.page.ScrollNum()
		t.reply(fmt.Sprintf("\x1bP1$r%d;%dr\x1b\\", top, bottom))
	case "\"q":
		prot := 0
		if t.attr.Protect {
			prot = 1
		}
		t.reply(fmt.Sprintf("\x1bP1$r%d\"q\x1b\\", prot))
	default:
		t.reply("\x1bP0$r\x1b\\")
	}
}

// sgrReport renders t.attr back as an SGR parameter string for a DECRQSS
// "m" reply: a reset followed by the bold, italic, underline, blink,
// inverse and hidden marks that are set. Foreground and background
// colors are not included.
func (t *Terminal) sgrReport() string {
	out := "0"
	a := t.attr
	if a.Bold {
		out += ";1"
	}
	if a.Italic {
		out += ";3"
	}
	if a.Underline {
		out += ";4"
	}
	if a.Blink {
		out += ";5"
	}
	if a.Inverse {
		out += ";7"
	}
	if a.Hidden {
		out += ";8"
	}
	return out
}
