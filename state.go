package govte

import "fmt"

// State is one of the named states of the DEC/ECMA-48 VT500 escape-
// sequence DFA. Parser.Advance is the only place transitions
// actually happen; this type just names the states and formats them.
type State uint8

const (
	StateGround State = iota
	StateEscape
	StateEscapeIntermediate
	StateCSIEntry
	StateCSIParam
	StateCSIIntermediate
	StateCSIIgnore
	StateOSCString
	StateDCSEntry
	StateDCSParam
	StateDCSIntermediate
	StateDCSPassthrough
	StateDCSIgnore
	StateSOSPMApcString
)

// String returns the string representation of the state
func (s State) String() string {
	names := []string{
		"Ground",
		"Escape",
		"EscapeIntermediate",
		"CSIEntry",
		"CSIParam",
		"CSIIntermediate",
		"CSIIgnore",
		"OSCString",
		"DCSEntry",
		"DCSParam",
		"DCSIntermediate",
		"DCSPassthrough",
		"DCSIgnore",
		"SOSPMApcString",
	}

	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Unknown(%d)", s)
}

// IsValid reports whether s is one of the named DFA states.
func (s State) IsValid() bool {
	return s <= StateSOSPMApcString
}