// Package utf8codec implements the lenient, stateful UTF-8 handling the
// VT core needs: a byte-at-a-time decoder that never fails (invalid
// sequences fall back to Latin-1 reinterpretation, so legacy 7-bit and
// DEC data passes through unchanged), and a UCS-4 encoder.
//
// This is pulled out of the parser's old inline UTF-8 handling
// (cliofy-govte/parser.go's handleUTF8/partialUTF8) so it can be driven
// and tested independently of the DFA.
package utf8codec

import "unicode/utf8"

// maxPending is the longest partial multi-byte sequence the decoder ever
// buffers (4 bytes: the lead byte of a 4-byte sequence plus its 3
// continuations, all held until the sequence is decoded).
const maxPending = 4

// Decoder consumes bytes one at a time and resolves complete code point
// sequences. It is the only place the VT core needs to reason about
// partial multi-byte UTF-8 state.
type Decoder struct {
	pending    [maxPending]byte
	pendingLen int
	want       int // total bytes expected once pending is done (0 = not mid-sequence)
}

// Result is what Feed returns: zero or more resolved code points (len 0
// means "need more bytes", which only happens mid-sequence).
type Result struct {
	Runes []rune
}

// Feed processes a single byte and returns the code points it resolved,
// if any. A stray continuation or invalid lead byte is emitted as its
// Latin-1 code point. A non-continuation byte mid-sequence flushes the
// pending bytes as Latin-1 code points and is then processed as a fresh
// lead byte. A completed sequence that does not decode (overlong,
// surrogate, out of range) is emitted byte by byte as Latin-1. Legacy
// 7-bit/8-bit data thus passes through instead of failing the decode.
func (d *Decoder) Feed(b byte) Result {
	if d.want == 0 {
		return d.feedLead(b)
	}
	return d.feedContinuation(b)
}

func (d *Decoder) feedLead(b byte) Result {
	switch {
	case b < 0x80:
		return Result{Runes: []rune{rune(b)}}
	case b>>5 == 0x6: // 110xxxxx: 2-byte sequence
		d.startSequence(b, 2)
		return Result{}
	case b>>4 == 0xE: // 1110xxxx: 3-byte sequence
		d.startSequence(b, 3)
		return Result{}
	case b>>3 == 0x1E: // 11110xxx: 4-byte sequence
		d.startSequence(b, 4)
		return Result{}
	default:
		// Stray continuation byte or invalid lead (0x80-0xBF, 0xF8-0xFF):
		// Latin-1 fallback, no state to unwind.
		return Result{Runes: []rune{rune(b)}}
	}
}

func (d *Decoder) startSequence(lead byte, want int) {
	d.pending[0] = lead
	d.pendingLen = 1
	d.want = want
}

func (d *Decoder) feedContinuation(b byte) Result {
	if b&0xC0 != 0x80 {
		// Invalid continuation: flush what we had as Latin-1, then treat
		// b as a fresh lead byte.
		out := d.flushPendingAsLatin1()
		rest := d.feedLead(b)
		out = append(out, rest.Runes...)
		return Result{Runes: out}
	}

	d.pending[d.pendingLen] = b
	d.pendingLen++
	if d.pendingLen < d.want {
		return Result{}
	}

	n := d.pendingLen
	r, size := utf8.DecodeRune(d.pending[:n])
	d.pendingLen, d.want = 0, 0
	if r == utf8.RuneError && size <= 1 {
		// Overlong encoding, surrogate, or out-of-range: fall back to
		// replaying every buffered byte as Latin-1.
		return Result{Runes: d.flushPendingAsLatin1Bytes(make([]rune, n))}
	}
	return Result{Runes: []rune{r}}
}

func (d *Decoder) flushPendingAsLatin1() []rune {
	out := make([]rune, d.pendingLen)
	for i := 0; i < d.pendingLen; i++ {
		out[i] = rune(d.pending[i])
	}
	d.pendingLen, d.want = 0, 0
	return out
}

func (d *Decoder) flushPendingAsLatin1Bytes(buf []rune) []rune {
	for i := range buf {
		buf[i] = rune(d.pending[i])
	}
	return buf
}

// Reset clears any partial sequence, as if the decoder were newly
// constructed. Used after a parser-level abort (CAN/SUB).
func (d *Decoder) Reset() {
	d.pendingLen, d.want = 0, 0
}

// Pending reports whether the decoder is in the middle of a multi-byte
// sequence.
func (d *Decoder) Pending() bool {
	return d.want != 0
}

// Encode converts a single code point to UTF-8 bytes. Surrogates and
// code points beyond U+10FFFF encode as U+FFFD (EncodeRune already
// substitutes RuneError for any code point outside the valid range,
// which includes surrogates).
func Encode(r rune) []byte {
	buf := make([]byte, utf8.UTFMax)
	n := utf8.EncodeRune(buf, r)
	return buf[:n]
}
