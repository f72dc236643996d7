package interpreter

import (
	"github.com/cliofy/vtcore"
	"github.com/cliofy/vtcore/attr"
)

// sgr applies a Select Graphic Rendition sequence to t.attr. It accepts
// both the colon sub-parameter form (SGR 38:2::r:g:b, one parameter
// group) and the legacy semicolon form (SGR 38;2;r;g;b, several
// top-level groups) for the extended 256-color/RGB selectors.
func (t *Terminal) sgr(seq *govte.Seq) {
	groups := seq.ArgGroups
	if len(groups) == 0 {
		t.attr = attr.Default
		return
	}
	i := 0
	for i < len(groups) {
		g := groups[i]
		v := first32(g)
		if v == 38 || v == 48 {
			consumed := t.extendedColor(v == 38, g, groups[i+1:])
			i += 1 + consumed
			continue
		}
		t.simpleSGR(v)
		i++
	}
}

// first32 reads a parameter group's primary value, treating both an
// absent group and an elided field (-1) as 0 — SGR's "\x1b[;1m" resets
// just like "\x1b[0;1m" does.
func first32(g []int32) int32 {
	if len(g) == 0 || g[0] == -1 {
		return 0
	}
	return g[0]
}

// extendedColor resolves SGR 38/48's indexed or RGB form. g is the
// group containing the 38/48 itself (possibly with colon sub-params
// already folded in); rest are the top-level groups that follow it,
// consulted only when g itself carries no sub-params (semicolon form).
// Returns how many of rest's groups the semicolon form consumed.
func (t *Terminal) extendedColor(fg bool, g []int32, rest [][]int32) int {
	if len(g) >= 2 {
		return t.extendedColorFrom(fg, g[1:])
	}
	if len(rest) == 0 {
		return 0
	}
	mode := first32(rest[0])
	switch mode {
	case 5:
		if len(rest) >= 2 {
			t.setColor(fg, attr.NewIndexed(uint8(first32(rest[1]))))
			return 2
		}
	case 2:
		if len(rest) >= 4 {
			t.setColor(fg, attr.NewRGB(uint8(first32(rest[1])), uint8(first32(rest[2])), uint8(first32(rest[3]))))
			return 4
		}
	}
	return 1
}

// extendedColorFrom resolves the colon form's tail (everything after the
// 38/48 itself, still inside the same parameter group): either
// [5, idx] or [2, r, g, b] (no colorspace id) or [2, colorspace, r, g, b]
// per ITU T.416, which this module's Params folds as plain extra values.
func (t *Terminal) extendedColorFrom(fg bool, tail []int32) int {
	if len(tail) == 0 {
		return 0
	}
	switch tail[0] {
	case 5:
		if len(tail) >= 2 {
			t.setColor(fg, attr.NewIndexed(colorByte(tail[1])))
		}
	case 2:
		switch {
		case len(tail) >= 5:
			// 38:2:colorspace:r:g:b (ITU T.416); colorspace id ignored.
			t.setColor(fg, attr.NewRGB(colorByte(tail[2]), colorByte(tail[3]), colorByte(tail[4])))
		case len(tail) == 4:
			// 38:2:r:g:b with the colorspace-id slot omitted.
			t.setColor(fg, attr.NewRGB(colorByte(tail[1]), colorByte(tail[2]), colorByte(tail[3])))
		}
	}
	return 0
}

// colorByte clamps a signed color component to uint8, treating an
// elided sub-parameter (-1) as 0 rather than wrapping to 255.
func colorByte(v int32) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (t *Terminal) setColor(fg bool, c attr.Color) {
	if fg {
		t.attr.Fg = c
	} else {
		t.attr.Bg = c
	}
}

func (t *Terminal) simpleSGR(v int32) {
	switch {
	case v == 0:
		t.attr = attr.Default
	case v == 1:
		t.attr.Bold = true
	case v == 3:
		t.attr.Italic = true
	case v == 4:
		t.attr.Underline = true
	case v == 5 || v == 6:
		t.attr.Blink = true
	case v == 7:
		t.attr.Inverse = true
	case v == 8:
		t.attr.Hidden = true
	case v == 21 || v == 22:
		t.attr.Bold = false
	case v == 23:
		t.attr.Italic = false
	case v == 24:
		t.attr.Underline = false
	case v == 25:
		t.attr.Blink = false
	case v == 27:
		t.attr.Inverse = false
	case v == 28:
		t.attr.Hidden = false
	case v == 39:
		t.attr.Fg = attr.DefaultColor
	case v == 49:
		t.attr.Bg = attr.DefaultColor
	case v >= 30 && v <= 37:
		t.attr.Fg = attr.NewNamed(attr.NamedColor(v - 30))
	case v >= 40 && v <= 47:
		t.attr.Bg = attr.NewNamed(attr.NamedColor(v - 40))
	case v >= 90 && v <= 97:
		t.attr.Fg = attr.NewNamed(attr.NamedColor(v - 90 + 8))
	case v >= 100 && v <= 107:
		t.attr.Bg = attr.NewNamed(attr.NamedColor(v - 100 + 8))
	}
}
