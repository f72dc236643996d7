package govte

// SeqType discriminates the six/seven shapes a recognized sequence can
// take, mirroring the parser's own terminal states.
type SeqType uint8

const (
	SeqGraphic SeqType = iota
	SeqControl
	SeqEscape
	SeqCSI
	SeqDCS
	SeqOSC
	SeqSOSPMApc
)

func (t SeqType) String() string {
	switch t {
	case SeqGraphic:
		return "Graphic"
	case SeqControl:
		return "Control"
	case SeqEscape:
		return "Escape"
	case SeqCSI:
		return "CSI"
	case SeqDCS:
		return "DCS"
	case SeqOSC:
		return "OSC"
	case SeqSOSPMApc:
		return "SOSPMApc"
	default:
		return "Unknown"
	}
}

// Seq is the complete public record a Recorder hands to an external
// dispatcher: one recognized escape/control/graphic unit. ST is only
// meaningful for OSC/DCS/SOS/PM/APC and only valid until the Recorder's
// next Print/Execute/CsiDispatch/OscDispatch/Unhook call — a caller that
// needs it past that point must copy it.
type Seq struct {
	Type          SeqType
	Command       Command
	Terminator    rune
	Intermediates []byte
	Marker        byte // private marker byte (<=>?) or SCS/LS designator, 0 if none
	Args          []int32
	ArgGroups     [][]int32 // full parameter groups, sub-parameters included; ArgGroups[i][0] == Args[i]
	ST            []byte
}

// argValue converts one raw Params slot to its signed representation,
// translating ElidedParam to the -1 missing-parameter sentinel callers
// expect (e.g. "\x1b[;5H" yields args[0] == -1, not 0).
func argValue(v uint16) int32 {
	if v == ElidedParam {
		return -1
	}
	return int32(v)
}

// ArgsFromParams flattens a Params' top-level groups into a signed-int
// argument list, one entry per group's primary value (sub-parameters
// within a group are not exposed here; callers needing them should walk
// Params.Iter() directly via the Hook/CsiDispatch callback instead).
// An elided field (no digits typed, e.g. either position in "\x1b[;5H"
// or "\x1b[5;H") reads back as -1.
func ArgsFromParams(params *Params) []int32 {
	if params == nil || params.IsEmpty() {
		return nil
	}
	groups := params.Iter()
	args := make([]int32, len(groups))
	for i, g := range groups {
		if len(g) > 0 {
			args[i] = argValue(g[0])
		} else {
			args[i] = -1
		}
	}
	return args
}

// GroupsFromParams flattens a Params' groups into signed-int sub-param
// groups, preserving the colon-separated sub-parameters ArgsFromParams
// drops (e.g. SGR 38:2:r:g:b's full 5-element group). GroupsFromParams(p)[i][0]
// always equals ArgsFromParams(p)[i]; elided fields at either level read
// back as -1.
func GroupsFromParams(params *Params) [][]int32 {
	if params == nil || params.IsEmpty() {
		return nil
	}
	groups := params.Iter()
	out := make([][]int32, len(groups))
	for i, g := range groups {
		gi := make([]int32, len(g))
		for j, v := range g {
			gi[j] = argValue(v)
		}
		out[i] = gi
	}
	return out
}
