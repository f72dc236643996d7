package govte

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderCSIWithDefaultsRecordsEmptyArgs(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	// CSI H with no parameters: cursor-to-home (CUP) using its defaults.
	p.Advance(r, []byte("\x1b[H"))

	assert.NotNil(t, got)
	assert.Equal(t, SeqCSI, got.Type)
	assert.Equal(t, CommandCUP, got.Command)
	assert.Nil(t, got.Args)
}

func TestRecorderCSIWithArgsAndMarker(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("\x1b[?25h")) // DECSET 25 (show cursor)

	assert.Equal(t, CommandDECSET, got.Command)
	assert.Equal(t, byte('?'), got.Marker)
	assert.Equal(t, []int32{25}, got.Args)
}

func TestRecorderDA1RequestVsReplyDiffersByIsHost(t *testing.T) {
	var hostSeq, termSeq *Seq
	host := &Recorder{IsHost: true, Emit: func(s *Seq) { hostSeq = s }}
	term := &Recorder{IsHost: false, Emit: func(s *Seq) { termSeq = s }}

	NewParser().Advance(host, []byte("\x1b[c"))
	NewParser().Advance(term, []byte("\x1b[c"))

	assert.Equal(t, CommandDA1, hostSeq.Command)
	assert.Equal(t, CommandDA1Reply, termSeq.Command)
}

func TestRecorderOSCBellTerminatedRoundTripsPayload(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("\x1b]0;my title\x07"))

	assert.Equal(t, SeqOSC, got.Type)
	assert.Equal(t, CommandOSC, got.Command)
	assert.Equal(t, rune(0x07), got.Terminator)
	assert.Equal(t, "0;my title", string(got.ST))
}

func TestRecorderOSCSTTerminated(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("\x1b]0;title\x1b\\"))

	assert.Equal(t, rune(0x9C), got.Terminator)
	assert.Equal(t, "0;title", string(got.ST))
}

func TestRecorderCSIPreservesColonSubParameters(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	// SGR 38:2::10:20:30 (ITU T.416 RGB form): ArgsFromParams collapses
	// this to a single 38, but ArgGroups must retain the full group.
	p.Advance(r, []byte("\x1b[38:2::10:20:30m"))

	assert.Equal(t, []int32{38}, got.Args)
	assert.Equal(t, [][]int32{{38, 2, -1, 10, 20, 30}}, got.ArgGroups)
}

func TestRecorderEscDispatchSimple(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("\x1bc")) // RIS

	assert.Equal(t, SeqEscape, got.Type)
	assert.Equal(t, CommandRIS, got.Command)
}

func TestRecorderEscDispatchSCSCharsetDesignation(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("\x1b(0")) // designate DEC special graphics into G0

	assert.Equal(t, CommandSCS, got.Command)
	assert.Equal(t, byte('('), soleIntermediate(got.Intermediates))
	assert.Equal(t, rune('0'), got.Terminator)
}

func TestRecorderExecuteMapsC0Controls(t *testing.T) {
	var seqs []*Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { seqs = append(seqs, s) }}
	p := NewParser()

	p.Advance(r, []byte{0x07, 0x0A, 0x0D})

	assert.Equal(t, []Command{CommandBEL, CommandLF, CommandCR}, []Command{seqs[0].Command, seqs[1].Command, seqs[2].Command})
}

func TestRecorderPrintEmitsGraphic(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("x"))

	assert.Equal(t, SeqGraphic, got.Type)
	assert.Equal(t, 'x', got.Terminator)
}

func TestRecorderDCSHookPutUnhook(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	p.Advance(r, []byte("\x1bP$qhello\x1b\\")) // DECRQSS-shaped DCS

	assert.Equal(t, SeqDCS, got.Type)
	assert.Equal(t, CommandDCSPassthrough, got.Command)
	assert.Equal(t, "hello", string(got.ST))
}

func TestArgsFromParamsNilForEmpty(t *testing.T) {
	assert.Nil(t, ArgsFromParams(NewParams()))
}

func TestArgsFromParamsFlattensGroups(t *testing.T) {
	params := NewParams()
	params.Push(38)
	params.Push(5)
	params.Push(196)
	assert.Equal(t, []int32{38, 5, 196}, ArgsFromParams(params))
}

func TestRecorderCSILeadingElidedParamIsMinusOne(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	// CUP with the row omitted: "\x1b[;5H" must read back as [-1, 5], not
	// [0, 5] — an elided field is not the same as an explicit 0.
	p.Advance(r, []byte("\x1b[;5H"))

	assert.Equal(t, CommandCUP, got.Command)
	assert.Equal(t, []int32{-1, 5}, got.Args)
}

func TestRecorderCSITrailingElidedParamIsMinusOne(t *testing.T) {
	var got *Seq
	r := &Recorder{IsHost: true, Emit: func(s *Seq) { got = s }}
	p := NewParser()

	// CUP with the column omitted: "\x1b[5;H" must still produce two
	// groups, the second elided, rather than dropping it entirely.
	p.Advance(r, []byte("\x1b[5;H"))

	assert.Equal(t, CommandCUP, got.Command)
	assert.Equal(t, []int32{5, -1}, got.Args)
}

func TestArgsFromParamsElidedFieldIsMinusOne(t *testing.T) {
	params := NewParams()
	params.Push(ElidedParam)
	params.Push(5)
	assert.Equal(t, []int32{-1, 5}, ArgsFromParams(params))
}

func TestGroupsFromParamsElidedSubParamIsMinusOne(t *testing.T) {
	params := NewParams()
	params.Push(38)
	params.Extend(2)
	params.Extend(ElidedParam)
	params.Extend(10)
	assert.Equal(t, [][]int32{{38, 2, -1, 10}}, GroupsFromParams(params))
}
