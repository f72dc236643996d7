package govte

// csiKey is the lookup key for a CSI final byte: private marker (0 if
// none), the sole true intermediate byte (0 if none or if more than
// one arrived - multi-intermediate CSI sequences are not part of this
// catalog and resolve to CommandNone), and the final byte itself.
type csiKey struct {
	marker byte
	inter  byte
	final  byte
}

// csiHostTable resolves CSI sequences the host sends to the terminal.
var csiHostTable = map[csiKey]Command{
	{0, 0, 'A'}: CommandCUU,
	{0, 0, 'B'}: CommandCUD,
	{0, 0, 'C'}: CommandCUF,
	{0, 0, 'D'}: CommandCUB,
	{0, 0, 'E'}: CommandCNL,
	{0, 0, 'F'}: CommandCPL,
	{0, 0, 'G'}: CommandCHA,
	{0, 0, 'H'}: CommandCUP,
	{0, 0, 'I'}: CommandCHT,
	{0, 0, 'J'}: CommandED,
	{0, 0, 'K'}: CommandEL,
	{0, 0, 'L'}: CommandIL,
	{0, 0, 'M'}: CommandDL,
	{0, 0, 'P'}: CommandDCH,
	{0, 0, 'S'}: CommandSU,
	{0, 0, 'T'}: CommandSD,
	{0, 0, 'X'}: CommandECH,
	{0, 0, 'Z'}: CommandCBT,
	{0, 0, '@'}: CommandICH,
	{0, 0, '`'}: CommandHPA,
	{0, 0, 'a'}: CommandHPR,
	{0, 0, 'b'}: CommandREP,
	{0, 0, 'c'}: CommandDA1,
	{0, 0, 'd'}: CommandVPA,
	{0, 0, 'e'}: CommandVPR,
	{0, 0, 'f'}: CommandHVP,
	{0, 0, 'g'}: CommandTBC,
	{0, 0, 'h'}: CommandSM,
	{0, 0, 'l'}: CommandRM,
	{0, 0, 'm'}: CommandSGR,
	{0, 0, 'n'}: CommandDSR,
	{0, 0, 'r'}: CommandDECSTBM,
	{0, 0, 's'}: CommandSCOSC,
	{0, 0, 'u'}: CommandSCORC,

	{'?', 0, 'h'}: CommandDECSET,
	{'?', 0, 'l'}: CommandDECRST,
	{'?', 0, 'n'}: CommandDECDSR,

	{'>', 0, 'c'}: CommandDA2,
	{'=', 0, 'c'}: CommandDA3,

	{0, '$', 'p'}: CommandDECRQPSR,
	{'?', '$', 'p'}: CommandDECRQM,
	{0, '"', 'q'}: CommandDECSCA,
	{0, '!', 'p'}: CommandDECSTR,

	{0, '$', 'r'}: CommandDECCARA,
	{0, '$', 't'}: CommandDECRARA,
	{0, '$', 'v'}: CommandDECCRA,
	{0, '$', 'x'}: CommandDECFRA,
	{0, '$', 'z'}: CommandDECERA,
	{0, '$', '{'}: CommandDECSERA,
	{0, 0, 'x'}:   CommandDECREQTPARM,
}

// csiTerminalTable resolves CSI sequences the terminal sends back to
// the host (DA/DSR/mode-report replies).
var csiTerminalTable = map[csiKey]Command{
	{0, 0, 'c'}:     CommandDA1Reply,
	{'>', 0, 'c'}:   CommandDA2Reply,
	{'=', 0, 'c'}:   CommandDA3Reply,
	{0, 0, 'n'}:     CommandDSRReply,
	{'?', 0, 'n'}:   CommandDECDSRReply,
	{'?', '$', 'y'}: CommandDECRPM,
}

// ResolveCSI looks up the Command for a completed CSI sequence. marker
// is the private-marker byte (0 if none); inter is the true
// intermediate bytes collected (0 or 1 of them expected); final is the
// dispatching byte. isHost selects which direction's table to consult.
func ResolveCSI(marker byte, inter []byte, final byte, isHost bool) Command {
	key := csiKey{marker: marker, inter: soleIntermediate(inter), final: final}
	table := csiHostTable
	if !isHost {
		table = csiTerminalTable
	}
	if cmd, ok := table[key]; ok {
		return cmd
	}
	return CommandNone
}

// escKey is the lookup key for a two-or-fewer-byte escape sequence: the
// sole true intermediate (0 if none) and the final byte.
type escKey struct {
	inter byte
	final byte
}

var escTable = map[escKey]Command{
	{0, 'D'}: CommandIND,
	{0, 'E'}: CommandNEL,
	{0, 'M'}: CommandRI,
	{0, 'c'}: CommandRIS,
	{0, '7'}: CommandDECSC,
	{0, '8'}: CommandDECRC,
	{0, 'N'}: CommandSS2,
	{0, 'O'}: CommandSS3,
	{0, 'n'}: CommandLS2,
	{0, 'o'}: CommandLS3,
	{0, '|'}: CommandLS3R,
	{0, '}'}: CommandLS2R,
	{0, '~'}: CommandLS1R,
	{'#', '8'}: CommandDECALN,
}

// scsIntermediates are the G0-G3 charset-designation introducers; the
// byte that follows them (the final byte of the ESC sequence) is the
// catalog designator, carried back to the caller via Seq.Terminator
// rather than looked up here.
var scsIntermediates = map[byte]bool{'(': true, ')': true, '*': true, '+': true}

// ResolveESC looks up the Command for a completed escape sequence given
// its true intermediate bytes (0 or 1 expected) and final byte.
func ResolveESC(inter []byte, final byte) Command {
	b := soleIntermediate(inter)
	if scsIntermediates[b] {
		return CommandSCS
	}
	if cmd, ok := escTable[escKey{inter: b, final: final}]; ok {
		return cmd
	}
	return CommandNone
}
