package utf8codec

import (
	"testing"
	"unicode/utf8"
)

func feedAll(t *testing.T, d *Decoder, bs []byte) []rune {
	t.Helper()
	var out []rune
	for _, b := range bs {
		out = append(out, d.Feed(b).Runes...)
	}
	return out
}

func TestASCIIPassthrough(t *testing.T) {
	var d Decoder
	got := feedAll(t, &d, []byte("hi"))
	want := []rune{'h', 'i'}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestValidMultibyte(t *testing.T) {
	var d Decoder
	got := feedAll(t, &d, []byte("あ"))
	if len(got) != 1 || got[0] != 'あ' {
		t.Fatalf("got %v", got)
	}
}

func TestInvalidLeadFallsBackToLatin1(t *testing.T) {
	// 0xC3 0x28: 0xC3 looks like a 2-byte lead, but 0x28 ('(') is not a
	// valid continuation byte, so it falls back to Latin-1: U+00C3 then '('.
	var d Decoder
	got := feedAll(t, &d, []byte{0xC3, 0x28})
	if len(got) != 2 || got[0] != 0x00C3 || got[1] != '(' {
		t.Fatalf("got %v, want [0xC3 '(']", got)
	}
}

func TestStrayContinuationByte(t *testing.T) {
	var d Decoder
	got := feedAll(t, &d, []byte{0x80})
	if len(got) != 1 || got[0] != 0x80 {
		t.Fatalf("got %v", got)
	}
}

func TestPendingAcrossFeeds(t *testing.T) {
	var d Decoder
	r := d.Feed(0xE3) // first byte of a 3-byte sequence
	if len(r.Runes) != 0 || !d.Pending() {
		t.Fatalf("expected pending state after lead byte")
	}
	r = d.Feed(0x81)
	if len(r.Runes) != 0 {
		t.Fatalf("expected still pending")
	}
	r = d.Feed(0x82) // completes U+3042 'あ'
	if len(r.Runes) != 1 || r.Runes[0] != 'あ' {
		t.Fatalf("got %v", r.Runes)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', 0x00E9, 0x3042, 0x1F600} {
		b := Encode(r)
		var d Decoder
		var got []rune
		for _, bb := range b {
			got = append(got, d.Feed(bb).Runes...)
		}
		if len(got) != 1 || got[0] != r {
			t.Fatalf("round trip failed for %U: got %v", r, got)
		}
	}
}

func TestEncodeInvalidCodePoint(t *testing.T) {
	b := Encode(0xD800) // surrogate
	r, _ := utf8.DecodeRune(b)
	if r != utf8.RuneError {
		t.Fatalf("expected RuneError for surrogate encode, got %U", r)
	}
}
