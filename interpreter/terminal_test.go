package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cliofy/vtcore/attr"
	"github.com/cliofy/vtcore/char"
)

func cellRune(t *testing.T, term *Terminal, x, y int) rune {
	t.Helper()
	c := term.Page().GetCell(x, y)
	if c == nil {
		return 0
	}
	var scratch [4]rune
	pts := char.Resolve(c.Ch, scratch[:])
	if len(pts) == 0 {
		return 0
	}
	return pts[0]
}

func TestFeedPlainTextAdvancesCursor(t *testing.T) {
	term := New(10, 4)
	term.Feed([]byte("hi"))

	x, y := term.Cursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 0, y)
	assert.Equal(t, 'h', cellRune(t, term, 0, 0))
	assert.Equal(t, 'i', cellRune(t, term, 1, 0))
}

func TestFeedWideCharAtLastColumnWraps(t *testing.T) {
	term := New(3, 2)
	term.Feed([]byte("ab"))
	term.Feed([]byte("中")) // wide CJK character, width 2

	x, y := term.Cursor()
	assert.Equal(t, 1, y, "autowrap should have pushed the wide char to the next row")
	assert.Equal(t, 2, x)
	assert.Equal(t, rune(0), cellRune(t, term, 2, 0), "vacated trailing column should be blank")
	assert.Equal(t, '中', cellRune(t, term, 0, 1))
}

func TestFeedCombiningMarkAppendsToPriorCell(t *testing.T) {
	term := New(10, 2)
	term.Feed([]byte("e"))
	term.Feed([]byte("́")) // combining acute accent

	x, _ := term.Cursor()
	assert.Equal(t, 1, x, "a combining mark must not itself advance the cursor")
	c := term.Page().GetCell(0, 0)
	var scratch [4]rune
	pts := char.Resolve(c.Ch, scratch[:])
	assert.Equal(t, []rune{'e', '́'}, pts)
}

func TestLineFeedAtBottomScrollsIntoHistory(t *testing.T) {
	term := New(5, 2)
	term.Feed([]byte("A\r\n"))
	term.Feed([]byte("B\r\n"))
	term.Feed([]byte("C"))

	assert.Equal(t, 1, term.History().NLines())
	assert.Equal(t, 'B', cellRune(t, term, 0, 0))
	assert.Equal(t, 'C', cellRune(t, term, 0, 1))
}

func TestCSIWithDefaultsMovesCursorHome(t *testing.T) {
	term := New(10, 5)
	term.Feed([]byte("\x1b[3;4Hx"))
	x, y := term.Cursor()
	assert.Equal(t, 4, x)
	assert.Equal(t, 2, y)

	term.Feed([]byte("\x1b[H"))
	x, y = term.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
}

func TestOSCTitleWithBELTerminator(t *testing.T) {
	term := New(10, 2)
	term.Feed([]byte("\x1b]0;my title\x07"))
	assert.Equal(t, "my title", term.Title)
}

func TestInvalidUTF8DoesNotPanic(t *testing.T) {
	term := New(10, 2)
	assert.NotPanics(t, func() {
		term.Feed([]byte{'a', 0xff, 0xfe, 'b'})
	})
}

func TestSGRColonSubParametersSetRGBColor(t *testing.T) {
	term := New(10, 2)
	term.Feed([]byte("\x1b[38:2::10:20:30mX"))
	got := term.Attr().Fg
	assert.Equal(t, attr.RGB, got.CCode)
	assert.Equal(t, uint8(10), got.R)
	assert.Equal(t, uint8(20), got.G)
	assert.Equal(t, uint8(30), got.B)
}

func TestSGRSemicolonExtendedIndexed(t *testing.T) {
	term := New(10, 2)
	term.Feed([]byte("\x1b[38;5;200mX"))
	got := term.Attr().Fg
	assert.Equal(t, attr.Indexed256, got.CCode)
	assert.Equal(t, uint8(200), got.C256)
}

func TestDECSETAltScreenSwapsAndRestoresCursor(t *testing.T) {
	term := New(10, 3)
	term.Feed([]byte("primary"))
	term.Feed([]byte("\x1b[?1049h"))
	x, y := term.Cursor()
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)
	term.Feed([]byte("alt"))
	term.Feed([]byte("\x1b[?1049l"))
	x, _ = term.Cursor()
	assert.Equal(t, 7, x, "primary cursor position should have been restored")
	assert.Equal(t, 'p', cellRune(t, term, 0, 0), "primary screen contents survive the alt-screen round trip")
}

func TestDECFRAFillsRectangle(t *testing.T) {
	term := New(5, 5)
	term.Feed([]byte("\x1b[88;2;2;4;4$x"))
	assert.Equal(t, 'X', cellRune(t, term, 1, 1))
	assert.Equal(t, 'X', cellRune(t, term, 3, 3))
	assert.Equal(t, rune(0), cellRune(t, term, 0, 0))
}

func TestDECERAErasesRectangle(t *testing.T) {
	term := New(5, 5)
	term.Feed([]byte("\x1b[88;1;1;5;5$x"))
	term.Feed([]byte("\x1b[2;2;4;4$z"))
	assert.Equal(t, rune(0), cellRune(t, term, 1, 1))
	assert.Equal(t, 'X', cellRune(t, term, 0, 0))
}

func TestDECCRACopiesRectangle(t *testing.T) {
	term := New(6, 4)
	term.Feed([]byte("\x1b[1;1Hab"))
	term.Feed([]byte("\x1b[1;1;1;2;1;3;4;1$v"))
	assert.Equal(t, 'a', cellRune(t, term, 3, 2))
	assert.Equal(t, 'b', cellRune(t, term, 4, 2))
}

func fillGrid(term *Terminal, width, height int) {
	for y := 0; y < height; y++ {
		term.Feed([]byte("\x1b[" + intStr(y+1) + ";1H"))
		row := make([]byte, width)
		for x := 0; x < width; x++ {
			row[x] = byte('a' + (y*width+x)%26)
		}
		term.Feed(row)
	}
}

func intStr(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

func TestEraseDisplayMode0ErasesFromCursorToEnd(t *testing.T) {
	term := New(3, 3)
	fillGrid(term, 3, 3)
	term.Feed([]byte("\x1b[2;2H")) // cursor to (1, 1), 0-based
	term.Feed([]byte("\x1b[0J"))

	assert.Equal(t, 'a', cellRune(t, term, 0, 0))
	assert.Equal(t, 'd', cellRune(t, term, 0, 1))
	assert.Equal(t, rune(0), cellRune(t, term, 1, 1))
	assert.Equal(t, rune(0), cellRune(t, term, 2, 1))
	assert.Equal(t, rune(0), cellRune(t, term, 0, 2))
	assert.Equal(t, rune(0), cellRune(t, term, 2, 2))
}

func TestEraseDisplayMode1ErasesFromStartToCursor(t *testing.T) {
	term := New(3, 3)
	fillGrid(term, 3, 3)
	term.Feed([]byte("\x1b[2;2H")) // cursor to (1, 1), 0-based
	term.Feed([]byte("\x1b[1J"))

	assert.Equal(t, rune(0), cellRune(t, term, 0, 0))
	assert.Equal(t, rune(0), cellRune(t, term, 2, 0))
	assert.Equal(t, rune(0), cellRune(t, term, 0, 1))
	assert.Equal(t, rune(0), cellRune(t, term, 1, 1))
	assert.Equal(t, 'f', cellRune(t, term, 2, 1))
	assert.Equal(t, 'g', cellRune(t, term, 0, 2))
}

func TestEraseDisplayMode2ErasesEverything(t *testing.T) {
	term := New(3, 3)
	fillGrid(term, 3, 3)
	term.Feed([]byte("\x1b[2;2H"))
	term.Feed([]byte("\x1b[2J"))

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, rune(0), cellRune(t, term, x, y))
		}
	}
}

func TestEraseDisplayIsOneAgeBump(t *testing.T) {
	term := New(3, 3)
	fillGrid(term, 3, 3)
	before := term.Page().Age()
	term.Feed([]byte("\x1b[2J"))
	after := term.Page().Age()
	assert.Equal(t, before+1, after)
}

func TestEraseLineMode0ErasesFromCursorToEndOfRow(t *testing.T) {
	term := New(4, 2)
	fillGrid(term, 4, 2)
	term.Feed([]byte("\x1b[1;2H")) // cursor to (1, 0)
	term.Feed([]byte("\x1b[0K"))

	assert.Equal(t, 'a', cellRune(t, term, 0, 0))
	assert.Equal(t, rune(0), cellRune(t, term, 1, 0))
	assert.Equal(t, rune(0), cellRune(t, term, 3, 0))
	assert.Equal(t, 'e', cellRune(t, term, 0, 1))
}

func TestEraseLineMode1ErasesFromStartOfRowToCursor(t *testing.T) {
	term := New(4, 2)
	fillGrid(term, 4, 2)
	term.Feed([]byte("\x1b[1;3H")) // cursor to (2, 0)
	term.Feed([]byte("\x1b[1K"))

	assert.Equal(t, rune(0), cellRune(t, term, 0, 0))
	assert.Equal(t, rune(0), cellRune(t, term, 2, 0))
	assert.Equal(t, 'd', cellRune(t, term, 3, 0))
}
