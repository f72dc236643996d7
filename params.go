package govte

import (
	"fmt"
	"strings"
)

// MaxParams bounds the total number of slots (top-level parameters plus
// colon-separated sub-parameters) the parser will accumulate for one
// sequence. The top-level count has no separate cap, so up to 32 plain
// parameters are accepted.
const MaxParams = 32

// ElidedParam marks a parameter slot the parser reached with no digits
// typed (e.g. the first field of "\x1b[;5H", or a trailing field before
// the final byte). It sits outside the digit parser's 0-9999 range, so
// it never collides with a value actually typed on the wire; Iter
// surfaces it as-is, String renders it as an empty field, and
// ArgsFromParams/GroupsFromParams translate
// it to the -1 missing-parameter sentinel callers expect.
const ElidedParam uint16 = 0xFFFF

// Params accumulates the semicolon-separated parameters (and their
// colon-separated sub-parameters) of one CSI/DCS sequence as the parser
// scans it. A "group" is one top-level parameter plus any sub-parameters
// that followed it before the next ';'.
type Params struct {
	// subparams[i] is the group size starting at params[i] (nonzero means
	// "a group starts here"); 0 marks a slot that belongs to the group
	// that precedes it.
	subparams [MaxParams]uint8

	params [MaxParams]uint16

	// currentSubparams counts sub-parameters appended to the open group.
	currentSubparams uint8

	// len is the total number of occupied slots across params/subparams.
	len int
}

// NewParams returns an empty Params ready for Push/Extend.
func NewParams() *Params {
	return &Params{}
}

// Len reports the total slot count (top-level params plus sub-params).
func (p *Params) Len() int {
	return p.len
}

// IsEmpty reports whether no parameter has been pushed yet.
func (p *Params) IsEmpty() bool {
	return p.len == 0
}

// IsFull reports whether Params has reached MaxParams slots; further
// Push/Extend calls are no-ops once a sequence overflows.
func (p *Params) IsFull() bool {
	return p.len >= MaxParams
}

// Clear resets Params to empty, ready for reuse on the next sequence.
func (p *Params) Clear() {
	p.currentSubparams = 0
	p.len = 0
	for i := range p.subparams {
		p.subparams[i] = 0
	}
	for i := range p.params {
		p.params[i] = 0
	}
}

// Push starts a new top-level parameter group with value as its primary
// element. Called on ';' (and once for the sequence's first parameter).
func (p *Params) Push(value uint16) {
	if p.IsFull() {
		return
	}

	p.params[p.len] = value
	p.subparams[p.len] = 1
	p.currentSubparams = 0
	p.len++
}

// Extend appends value as a sub-parameter of the currently open group.
// Called on ':'. If no group is open yet, it behaves like Push — a bare
// leading colon (e.g. "\x1b[:5m") still produces one group.
func (p *Params) Extend(value uint16) {
	if p.IsFull() {
		return
	}

	if p.len == 0 {
		p.Push(value)
		return
	}

	groupStart := p.len - 1
	for groupStart >= 0 && p.subparams[groupStart] == 0 {
		groupStart--
	}
	if groupStart < 0 {
		p.Push(value)
		return
	}

	p.params[p.len] = value
	p.subparams[p.len] = 0
	p.subparams[groupStart]++
	p.currentSubparams++
	p.len++
}

// Iter returns the accumulated groups in order; group i's first element
// is its top-level value, any remaining elements are sub-parameters.
func (p *Params) Iter() [][]uint16 {
	if p.len == 0 {
		return nil
	}

	var result [][]uint16
	i := 0
	for i < p.len {
		count := int(p.subparams[i])
		if count == 0 {
			// Sub-param slot reached without its group header; Push/Extend
			// never produce this, but skip defensively rather than loop.
			i++
			continue
		}

		group := make([]uint16, 0, count)
		for j := 0; j < count && i+j < p.len; j++ {
			group = append(group, p.params[i+j])
		}
		result = append(result, group)
		i += count
	}

	return result
}

// formatParam renders a single slot, printing elided slots as an empty
// field to match the wire syntax that produced them.
func formatParam(v uint16) string {
	if v == ElidedParam {
		return ""
	}
	return fmt.Sprintf("%d", v)
}

// String renders groups semicolon-separated, sub-parameters within a
// group colon-separated, e.g. "Params{1;38:2:255:0:0}". An elided slot
// (see ElidedParam) renders as an empty field, e.g. "Params{;5}".
func (p *Params) String() string {
	iter := p.Iter()
	if len(iter) == 0 {
		return "Params{}"
	}

	parts := make([]string, 0, len(iter))
	for _, group := range iter {
		if len(group) == 1 {
			parts = append(parts, formatParam(group[0]))
			continue
		}
		subparts := make([]string, 0, len(group))
		for _, v := range group {
			subparts = append(subparts, formatParam(v))
		}
		parts = append(parts, strings.Join(subparts, ":"))
	}

	return fmt.Sprintf("Params{%s}", strings.Join(parts, ";"))
}
