package govte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockPerformer is a test implementation of the Performer interface
type MockPerformer struct {
	printed       []rune
	executed      []byte
	csiDispatched []CSIDispatch
	escDispatched []ESCDispatch
	oscDispatched []OSCDispatch
	hookCalled    bool
	unhookCalled  bool
	putBytes      []byte
}

type CSIDispatch struct {
	params        *Params
	intermediates []byte
	ignore        bool
	action        rune
}

type ESCDispatch struct {
	intermediates []byte
	ignore        bool
	b             byte
}

type OSCDispatch struct {
	params         [][]byte
	bellTerminated bool
}

func (m *MockPerformer) Print(c rune) {
	m.printed = append(m.printed, c)
}

func (m *MockPerformer) Execute(b byte) {
	m.executed = append(m.executed, b)
}

func (m *MockPerformer) Hook(params *Params, intermediates []byte, ignore bool, action rune) {
	m.hookCalled = true
}

func (m *MockPerformer) Put(b byte) {
	m.putBytes = append(m.putBytes, b)
}

func (m *MockPerformer) Unhook() {
	m.unhookCalled = true
}

func (m *MockPerformer) OscDispatch(params [][]byte, bellTerminated bool) {
	m.oscDispatched = append(m.oscDispatched, OSCDispatch{
		params:         params,
		bellTerminated: bellTerminated,
	})
}

func (m *MockPerformer) CsiDispatch(params *Params, intermediates []byte, ignore bool, action rune) {
	// Make a copy of params to avoid reference issues
	paramsCopy := &Params{}
	if params != nil {
		// Copy the params data
		*paramsCopy = *params
	}

	m.csiDispatched = append(m.csiDispatched, CSIDispatch{
		params:        paramsCopy,
		intermediates: append([]byte(nil), intermediates...), // Copy intermediates too
		ignore:        ignore,
		action:        action,
	})
}

func (m *MockPerformer) EscDispatch(intermediates []byte, ignore bool, b byte) {
	m.escDispatched = append(m.escDispatched, ESCDispatch{
		intermediates: intermediates,
		ignore:        ignore,
		b:             b,
	})
}

func TestPerformerInterface(t *testing.T) {
	var _ Performer = (*MockPerformer)(nil)

	mock := &MockPerformer{}

	mock.Print('A')
	mock.Print('B')
	assert.Equal(t, []rune{'A', 'B'}, mock.printed)

	mock.Execute(0x08) // Backspace
	mock.Execute(0x0A) // Line Feed
	assert.Equal(t, []byte{0x08, 0x0A}, mock.executed)

	mock.Hook(nil, nil, false, 'p')
	assert.True(t, mock.hookCalled)

	mock.Unhook()
	assert.True(t, mock.unhookCalled)

	mock.Put('x')
	mock.Put('y')
	assert.Equal(t, []byte{'x', 'y'}, mock.putBytes)

	mock.OscDispatch([][]byte{[]byte("test")}, false)
	assert.Len(t, mock.oscDispatched, 1)
	assert.Equal(t, [][]byte{[]byte("test")}, mock.oscDispatched[0].params)
	assert.False(t, mock.oscDispatched[0].bellTerminated)

	params := &Params{}
	mock.CsiDispatch(params, []byte{}, false, 'H')
	assert.Len(t, mock.csiDispatched, 1)
	assert.Equal(t, 'H', mock.csiDispatched[0].action)

	mock.EscDispatch([]byte{}, false, 'M')
	assert.Len(t, mock.escDispatched, 1)
	assert.Equal(t, byte('M'), mock.escDispatched[0].b)
}

func TestNoopPerformer(t *testing.T) {
	noop := &NoopPerformer{}

	// None of these should panic; that's the entire contract of Noop.
	noop.Print('A')
	noop.Execute(0x08)
	noop.Hook(nil, nil, false, 'p')
	noop.Put('x')
	noop.Unhook()
	noop.OscDispatch(nil, false)
	noop.CsiDispatch(nil, nil, false, 'H')
	noop.EscDispatch(nil, false, 'M')
}
