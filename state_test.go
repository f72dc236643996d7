package govte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateConstants(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected string
	}{
		{"Ground state", StateGround, "Ground"},
		{"Escape state", StateEscape, "Escape"},
		{"CSI Entry state", StateCSIEntry, "CSIEntry"},
		{"CSI Param state", StateCSIParam, "CSIParam"},
		{"CSI Intermediate state", StateCSIIntermediate, "CSIIntermediate"},
		{"CSI Ignore state", StateCSIIgnore, "CSIIgnore"},
		{"OSC String state", StateOSCString, "OSCString"},
		{"DCS Entry state", StateDCSEntry, "DCSEntry"},
		{"DCS Param state", StateDCSParam, "DCSParam"},
		{"DCS Intermediate state", StateDCSIntermediate, "DCSIntermediate"},
		{"DCS Passthrough state", StateDCSPassthrough, "DCSPassthrough"},
		{"DCS Ignore state", StateDCSIgnore, "DCSIgnore"},
		{"SOS PM APC String state", StateSOSPMApcString, "SOSPMApcString"},
		{"Escape Intermediate state", StateEscapeIntermediate, "EscapeIntermediate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStateUnknownStringsByOrdinal(t *testing.T) {
	assert.Equal(t, "Unknown(99)", State(99).String())
}

func TestStateDefaultValue(t *testing.T) {
	var s State
	assert.Equal(t, StateGround, s, "default state should be Ground")
}

func TestStateValidation(t *testing.T) {
	states := []State{
		StateGround,
		StateEscape,
		StateEscapeIntermediate,
		StateCSIEntry,
		StateCSIParam,
		StateCSIIntermediate,
		StateCSIIgnore,
		StateOSCString,
		StateDCSEntry,
		StateDCSParam,
		StateDCSIntermediate,
		StateDCSPassthrough,
		StateDCSIgnore,
		StateSOSPMApcString,
	}

	for _, state := range states {
		assert.True(t, state.IsValid(), "state %v should be valid", state)
	}

	assert.False(t, State(99).IsValid(), "state 99 should be invalid")
}

// TestStateReachedByParser exercises the real transitions via Parser.Advance
// rather than a standalone stub, since the DFA itself lives in parser.go.
func TestStateReachedByParser(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  State
	}{
		{"ESC from Ground", []byte{0x1B}, StateEscape},
		{"CSI from Escape", []byte{0x1B, '['}, StateCSIEntry},
		{"OSC from Escape", []byte{0x1B, ']'}, StateOSCString},
		{"DCS from Escape", []byte{0x1B, 'P'}, StateDCSEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser()
			p.Advance(&NoopPerformer{}, tt.input)
			assert.Equal(t, tt.want, p.State())
		})
	}
}
