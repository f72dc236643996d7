package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/cliofy/vtcore"
	"github.com/cliofy/vtcore/attr"
)

// osc implements the OSC (Operating System Command) family: xterm's
// window-title/icon-name setters (0/1/2) and its indexed-palette setter
// (4) and resetter (104). Everything else is accepted and ignored - the
// recognized subcommand space the core hands up is deliberately wide
// open, and a caller with no title bar or palette has nothing to do
// with the rest.
func (t *Terminal) osc(seq *govte.Seq) {
	fields := strings.SplitN(string(seq.ST), ";", 2)
	if len(fields) == 0 {
		return
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return
	}
	payload := ""
	if len(fields) == 2 {
		payload = fields[1]
	}
	switch code {
	case 0, 2:
		t.Title = payload
	case 1:
		t.IconName = payload
	case 4:
		t.oscSetColor(payload)
	case 104:
		t.oscResetColor(payload)
	}
}

// oscSetColor implements OSC 4: one or more "index;spec" pairs packed
// into a single ;-joined payload (Ps;c;Ps;c;...). Only the "rgb:RR/GG/BB"
// (and shorthand "#RRGGBB") color spec forms are understood for setting;
// a spec of "?" is a query, answered with the index's currently resolved
// color instead of changing it.
func (t *Terminal) oscSetColor(payload string) {
	parts := strings.Split(payload, ";")
	for i := 0; i+1 < len(parts); i += 2 {
		idx, err := strconv.Atoi(parts[i])
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		if parts[i+1] == "?" {
			t.reportColor(uint8(idx))
			continue
		}
		c, ok := parseColorSpec(parts[i+1])
		if !ok {
			continue
		}
		if t.Palette == nil {
			t.Palette = make(map[uint8]attr.Color)
		}
		t.Palette[uint8(idx)] = c
	}
}

// reportColor answers an OSC 4 "Ps;?" query with idx's resolved color in
// xterm's "rgb:RRRR/GGGG/BBBB" reply form, routed through the same Reply
// channel as DA/DSR.
func (t *Terminal) reportColor(idx uint8) {
	c := t.currentColor(idx)
	rgb := c.ToRGB(colorful.Color{}, t.resolvePalette256)
	r, g, b := rgb.RGB255()
	t.reply(fmt.Sprintf("\x1b]4;%d;rgb:%02x%02x/%02x%02x/%02x%02x\x1b\\", idx, r, r, g, g, b, b))
}

// currentColor is idx's active attr.Color: an OSC-4 override if one was
// set, else the ANSI16 name (idx < 16) or the raw 256-cube index.
func (t *Terminal) currentColor(idx uint8) attr.Color {
	if t.Palette != nil {
		if c, ok := t.Palette[idx]; ok {
			return c
		}
	}
	if idx < 16 {
		return attr.NewNamed(attr.NamedColor(idx))
	}
	return attr.NewIndexed(idx)
}

// resolvePalette256 is the Color.ToRGB palette callback for Indexed256:
// an OSC-4 override if set for that slot, else xterm's fixed 256-color
// cube/grayscale layout.
func (t *Terminal) resolvePalette256(idx uint8) colorful.Color {
	if t.Palette != nil {
		if c, ok := t.Palette[idx]; ok {
			return c.ToRGB(colorful.Color{}, nil)
		}
	}
	r, g, b := attr.Indexed256RGB(idx)
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// oscResetColor implements OSC 104: a ;-joined list of indices to drop
// back to the built-in palette; an empty payload resets all of them.
func (t *Terminal) oscResetColor(payload string) {
	if payload == "" {
		t.Palette = nil
		return
	}
	for _, f := range strings.Split(payload, ";") {
		idx, err := strconv.Atoi(f)
		if err != nil || idx < 0 || idx > 255 {
			continue
		}
		delete(t.Palette, uint8(idx))
	}
}

// parseColorSpec understands "#RRGGBB" and X11-style "rgb:RR/GG/BB" (with
// 1, 2, or 4 hex digits per channel, per-channel averaged down to 8 bits).
func parseColorSpec(s string) (attr.Color, bool) {
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, rok := hexByte(s[1:3])
		g, gok := hexByte(s[3:5])
		b, bok := hexByte(s[5:7])
		if rok && gok && bok {
			return attr.NewRGB(r, g, b), true
		}
		return attr.Color{}, false
	}
	if strings.HasPrefix(s, "rgb:") {
		chans := strings.Split(s[4:], "/")
		if len(chans) != 3 {
			return attr.Color{}, false
		}
		var vals [3]uint8
		for i, c := range chans {
			v, err := strconv.ParseUint(c, 16, 32)
			if err != nil || len(c) == 0 {
				return attr.Color{}, false
			}
			max := uint64(1)<<(4*uint(len(c))) - 1
			vals[i] = uint8(v * 255 / max)
		}
		return attr.NewRGB(vals[0], vals[1], vals[2]), true
	}
	return attr.Color{}, false
}

func hexByte(s string) (uint8, bool) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}
