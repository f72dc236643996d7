package govte

// Recorder implements Performer by turning every parser callback into a
// Seq record and handing it to Emit. It carries no terminal state of
// its own (no cursor, no page) - that belongs to whatever consumes the
// Seqs it produces.
type Recorder struct {
	// IsHost selects which CSI direction table to resolve against: true
	// for the usual host-to-terminal stream, false when this Recorder is
	// parsing a terminal's own replies (DA/DSR responses).
	IsHost bool

	// Emit receives each recognized Seq. Required; a nil Emit makes the
	// Recorder a no-op.
	Emit func(*Seq)

	// dcsMarker/dcsInter/dcsArgs/dcsAction remember the Hook() that
	// opened the current DCS so Unhook can resolve its Command once the
	// accumulated string is known.
	dcsMarker byte
	dcsInter  []byte
	dcsArgs   []int32
	dcsGroups [][]int32
	dcsAction rune
	dcsBuf    []byte
	inDCS     bool
}

var _ Performer = (*Recorder)(nil)

func (r *Recorder) emit(s Seq) {
	if r.Emit != nil {
		r.Emit(&s)
	}
}

// Print implements Performer: a single decoded graphic character.
func (r *Recorder) Print(c rune) {
	r.emit(Seq{Type: SeqGraphic, Command: CommandNone, Terminator: c})
}

// controlCommands maps C0 control bytes to their Command, for the ones
// the catalog names explicitly; anything else still emits SeqControl
// with CommandNone so the caller can act on the raw byte.
var controlCommands = map[byte]Command{
	0x07: CommandBEL,
	0x08: CommandBS,
	0x09: CommandHT,
	0x0A: CommandLF,
	0x0B: CommandVT,
	0x0C: CommandFF,
	0x0D: CommandCR,
	0x0E: CommandSO,
	0x0F: CommandSI,
}

// Execute implements Performer: a C0 or C1 control function.
func (r *Recorder) Execute(b byte) {
	cmd := controlCommands[b]
	r.emit(Seq{Type: SeqControl, Command: cmd, Terminator: rune(b)})
}

// EscDispatch implements Performer: the final byte of an escape
// sequence (not CSI/DCS/OSC/SOS/PM/APC, which have their own entry
// points).
func (r *Recorder) EscDispatch(intermediates []byte, ignore bool, b byte) {
	if ignore {
		r.emit(Seq{Type: SeqEscape, Command: CommandNone, Terminator: rune(b), Intermediates: intermediates})
		return
	}
	marker, inter := splitIntermediates(intermediates)
	cmd := ResolveESC(inter, b)
	r.emit(Seq{Type: SeqEscape, Command: cmd, Terminator: rune(b), Intermediates: inter, Marker: marker})
}

// CsiDispatch implements Performer: the final byte of a CSI sequence.
func (r *Recorder) CsiDispatch(params *Params, intermediates []byte, ignore bool, action rune) {
	args := ArgsFromParams(params)
	groups := GroupsFromParams(params)
	if ignore {
		r.emit(Seq{Type: SeqCSI, Command: CommandNone, Terminator: action, Intermediates: intermediates, Args: args, ArgGroups: groups})
		return
	}
	marker, inter := splitIntermediates(intermediates)
	cmd := ResolveCSI(marker, inter, byte(action), r.IsHost)
	r.emit(Seq{Type: SeqCSI, Command: cmd, Terminator: action, Intermediates: inter, Marker: marker, Args: args, ArgGroups: groups})
}

// Hook implements Performer: the final byte of a DCS introducer. The
// actual Command is only resolvable once the body and its terminator
// (ST vs BEL-alias, if any) are known, so this just remembers the
// opening and defers emission to Unhook.
func (r *Recorder) Hook(params *Params, intermediates []byte, ignore bool, action rune) {
	r.inDCS = true
	r.dcsMarker, r.dcsInter = splitIntermediates(intermediates)
	r.dcsArgs = ArgsFromParams(params)
	r.dcsGroups = GroupsFromParams(params)
	r.dcsAction = action
	r.dcsBuf = r.dcsBuf[:0]
	if ignore {
		r.dcsAction = 0
	}
}

// Put implements Performer: a byte of DCS string payload.
func (r *Recorder) Put(b byte) {
	if !r.inDCS {
		return
	}
	r.dcsBuf = append(r.dcsBuf, b)
}

// Unhook implements Performer: the DCS has terminated; emit its Seq.
func (r *Recorder) Unhook() {
	if !r.inDCS {
		return
	}
	r.inDCS = false
	if r.dcsAction == 0 {
		r.emit(Seq{Type: SeqDCS, Command: CommandNone, ST: r.dcsBuf})
		return
	}
	r.emit(Seq{
		Type:          SeqDCS,
		Command:       CommandDCSPassthrough,
		Terminator:    r.dcsAction,
		Intermediates: r.dcsInter,
		Marker:        r.dcsMarker,
		Args:          r.dcsArgs,
		ArgGroups:     r.dcsGroups,
		ST:            r.dcsBuf,
	})
}

// OscDispatch implements Performer: a complete OSC sequence. params is
// the `;`-split payload (the first element is the numeric subcommand,
// interpreted by whatever consumes the Seq, not by the core); it is
// flattened back into one ST buffer with separators restored so callers
// see exactly what arrived.
func (r *Recorder) OscDispatch(params [][]byte, bellTerminated bool) {
	terminator := rune(0x9C) // ST
	if bellTerminated {
		terminator = 0x07 // BEL
	}
	var buf []byte
	for i, p := range params {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = append(buf, p...)
	}
	r.emit(Seq{Type: SeqOSC, Command: CommandOSC, Terminator: terminator, ST: buf})
}
