// Package char implements the packed character handle: a grapheme
// cluster — one base code point plus any number of combining
// marks — represented as an opaque 64-bit value. Short clusters (up to
// three code points) pack inline with no allocation; longer ones fall
// back to an owned, heap-allocated rune sequence.
//
// The engine is single-threaded and synchronous, so the
// allocated-sequence registry below carries no locking.
package char

import "github.com/cliofy/vtcore/wcwidth"

// Handle is the packed character handle. The zero value is Null
// (empty cell).
//
//   - Inline: low bit set. Bits [1:22), [22:43), [43:64) hold up to three
//     21-bit code points (base, then combining marks, in order). An
//     unused high slot is zero.
//   - Allocated: low bit clear and the value nonzero. The remaining 63
//     bits hold (registryIndex+1), a reference into the package-level
//     allocated-sequence table.
type Handle uint64

// Null is the empty cell: no character at all.
const Null Handle = 0

const (
	inlineTagBit  = 1
	codePointBits = 21
	codePointMask = 1<<codePointBits - 1
	maxInline     = 3
)

// registry backs allocated handles. Single-threaded use only: no
// mutex. Freed slots are nil and reused via freeList.
var (
	registry []([]rune)
	freeList []uint64
)

func allocSlot(seq []rune) Handle {
	owned := make([]rune, len(seq))
	copy(owned, seq)

	var idx uint64
	if n := len(freeList); n > 0 {
		idx = freeList[n-1]
		freeList = freeList[:n-1]
		registry[idx] = owned
	} else {
		idx = uint64(len(registry))
		registry = append(registry, owned)
	}
	return Handle((idx + 1) << 1)
}

// IsAllocated reports whether h holds a reference to a heap-allocated
// sequence rather than packing inline. IsAllocated(Null) is always false.
func IsAllocated(h Handle) bool {
	return h != Null && h&inlineTagBit == 0
}

// AllocatedCount reports the number of registry slots currently in use
// (allocated minus freed), for tests that want to confirm Free is
// actually reclaiming slots rather than leaking them.
func AllocatedCount() int {
	return len(registry) - len(freeList)
}

func (h Handle) index() uint64 {
	return uint64(h)>>1 - 1
}

func (h Handle) inlinePoints() []rune {
	if h == Null {
		return nil
	}
	out := make([]rune, 0, maxInline)
	v := uint64(h) >> 1
	for i := 0; i < maxInline; i++ {
		cp := rune(v & codePointMask)
		v >>= codePointBits
		if i == 0 || cp != 0 {
			out = append(out, cp)
		} else {
			break
		}
	}
	return out
}

func packInline(points []rune) (Handle, bool) {
	if len(points) == 0 || len(points) > maxInline {
		return Null, false
	}
	if points[0] == 0 && len(points) == 1 {
		return Null, true // Set(_, 0) collapses to Null
	}
	var v uint64
	for i := len(points) - 1; i >= 0; i-- {
		v = v<<codePointBits | uint64(points[i])&codePointMask
	}
	return Handle(v<<1 | inlineTagBit), true
}

// Set replaces prev with a fresh handle holding base as the sole
// (not-yet-combined) code point, freeing prev first if it was allocated.
// Set(prev, 0) returns Null.
func Set(prev Handle, base rune) Handle {
	Free(prev)
	if base == 0 {
		return Null
	}
	h, _ := packInline([]rune{base})
	return h
}

// Merge appends a combining code point to h's cluster. If the result
// still fits inline it is returned inline; otherwise it is allocated.
// Merging onto Null treats cc as a standalone base (defensive, matching
// Line.AppendCombChar's "blank cell" case).
func Merge(h Handle, cc rune) Handle {
	existing := sequenceOf(h)
	if len(existing) == 0 {
		return Set(Null, cc)
	}
	points := make([]rune, len(existing)+1)
	copy(points, existing)
	points[len(existing)] = cc
	if inline, ok := packInline(points); ok {
		if IsAllocated(h) {
			freeIndex(h.index())
		}
		return inline
	}
	if IsAllocated(h) {
		freeIndex(h.index())
	}
	return allocSlot(points)
}

// Dup deep-copies an allocated handle into a fresh registry slot; it is a
// no-op (returns h unchanged) for inline handles, since those are plain
// values with no shared backing store.
func Dup(h Handle) Handle {
	if !IsAllocated(h) {
		return h
	}
	return allocSlot(registry[h.index()])
}

// Free releases an allocated handle's backing storage. It is a no-op on
// inline handles and on Null.
func Free(h Handle) {
	if !IsAllocated(h) {
		return
	}
	freeIndex(h.index())
}

func freeIndex(idx uint64) {
	registry[idx] = nil
	freeList = append(freeList, idx)
}

func sequenceOf(h Handle) []rune {
	if h == Null {
		return nil
	}
	if IsAllocated(h) {
		return registry[h.index()]
	}
	return h.inlinePoints()
}

// Resolve returns the grapheme cluster's code points. For an inline
// handle, scratch (supplied by the caller) is used as backing storage and
// the returned slice aliases it; for an allocated handle, the returned
// slice aliases the handle's own owned storage directly and must not be
// mutated by the caller.
func Resolve(h Handle, scratch []rune) []rune {
	if h == Null {
		return nil
	}
	if IsAllocated(h) {
		return registry[h.index()]
	}
	points := h.inlinePoints()
	n := copy(scratch[:cap(scratch)], points)
	return scratch[:n]
}

// Width returns the column width of h's base code point.
func Width(h Handle) int {
	if h == Null {
		return 0
	}
	seq := sequenceOf(h)
	if len(seq) == 0 {
		return 0
	}
	w := wcwidth.Width(seq[0])
	if w < 0 {
		return 0
	}
	return w
}

// Same reports bit-identity: the two handles are the exact same value.
// Same implies Equal, but not vice versa.
func Same(a, b Handle) bool {
	return a == b
}

// Equal reports content equality: the two handles resolve to the same
// code point sequence, regardless of representation.
func Equal(a, b Handle) bool {
	if a == b {
		return true
	}
	sa, sb := sequenceOf(a), sequenceOf(b)
	if len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
