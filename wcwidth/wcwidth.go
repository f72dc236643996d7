// Package wcwidth maps UCS-4 code points to terminal column widths.
package wcwidth

import "github.com/mattn/go-runewidth"

var (
	narrowCond = &runewidth.Condition{EastAsianWidth: false}
	cjkCond    = &runewidth.Condition{EastAsianWidth: true}
)

// Width returns the column width of r under the East-Asian-Width=Narrow
// assumption: -1 for non-printables, 0 for combining marks, 1 for narrow,
// 2 for wide.
func Width(r rune) int {
	return runeWidth(narrowCond, r)
}

// WidthCJK returns the column width of r treating East-Asian "ambiguous"
// code points as wide, the convention CJK locales expect.
func WidthCJK(r rune) int {
	return runeWidth(cjkCond, r)
}

func runeWidth(cond *runewidth.Condition, r rune) int {
	if !isPrintable(r) {
		return -1
	}
	if isCombining(r) {
		return 0
	}
	return cond.RuneWidth(r)
}

// isPrintable rejects C0/C1 controls and the DEL code point; everything
// else is left to go-runewidth, including unassigned planes (treated as
// narrow, matching common terminal behavior for unknown code points).
func isPrintable(r rune) bool {
	switch {
	case r < 0x20:
		return false
	case r >= 0x7F && r <= 0x9F:
		return false
	}
	return true
}

// isCombining reports whether r is a zero-width combining mark. This
// covers the common combining-mark blocks; go-runewidth itself returns 0
// for most of these already, but the page/line/char layers rely on this
// being authoritative independent of the narrow/wide condition in use.
func isCombining(r rune) bool {
	switch {
	case r >= 0x0300 && r <= 0x036F: // Combining Diacritical Marks
		return true
	case r >= 0x1AB0 && r <= 0x1AFF: // Combining Diacritical Marks Extended
		return true
	case r >= 0x1DC0 && r <= 0x1DFF: // Combining Diacritical Marks Supplement
		return true
	case r >= 0x20D0 && r <= 0x20FF: // Combining Diacritical Marks for Symbols
		return true
	case r >= 0xFE20 && r <= 0xFE2F: // Combining Half Marks
		return true
	case r == 0x200D: // Zero Width Joiner
		return true
	}
	return false
}
