package govte

// Command enumerates the recognized control functions a Seq can carry,
// grouped the way DEC/ECMA-48/xterm group them. CommandNone is both the
// zero value and the synthetic command a sequence gets when it
// overflowed into IGNORE.
type Command int

const (
	CommandNone Command = iota

	// Cursor movement
	CommandCUU // Cursor Up
	CommandCUD // Cursor Down
	CommandCUF // Cursor Forward
	CommandCUB // Cursor Back
	CommandCUP // Cursor Position
	CommandCNL // Cursor Next Line
	CommandCPL // Cursor Previous Line
	CommandCHA // Cursor Horizontal Absolute
	CommandHVP // Horizontal/Vertical Position
	CommandHPA // Horizontal Position Absolute
	CommandHPR // Horizontal Position Relative
	CommandVPA // Vertical Position Absolute
	CommandVPR // Vertical Position Relative

	// Text operations
	CommandED  // Erase in Display
	CommandEL  // Erase in Line
	CommandECH // Erase Character
	CommandDCH // Delete Character
	CommandICH // Insert Character
	CommandIL  // Insert Line
	CommandDL  // Delete Line
	CommandREP // Repeat preceding graphic character

	// Scrolling
	CommandSU      // Scroll Up
	CommandSD      // Scroll Down
	CommandDECSTBM // Set Top/Bottom Margins

	// Tabs
	CommandHT  // Horizontal Tab
	CommandCHT // Cursor Horizontal Tab
	CommandCBT // Cursor Backward Tab
	CommandHTS // Horizontal Tab Set
	CommandTBC // Tab Clear

	// Modes
	CommandSM       // Set Mode (ANSI)
	CommandRM       // Reset Mode (ANSI)
	CommandDECSET   // Set Mode (DEC private)
	CommandDECRST   // Reset Mode (DEC private)

	// Attributes
	CommandSGR    // Select Graphic Rendition
	CommandDECSCA // Select Character Protection Attribute

	// Charsets
	CommandSCS // Select Character Set (G0-G3 designation)
	CommandLS0
	CommandLS1
	CommandLS1R
	CommandLS2
	CommandLS2R
	CommandLS3
	CommandLS3R
	CommandSS2
	CommandSS3
	CommandSI
	CommandSO

	// Rectangular area operations
	CommandDECCARA // Change Attributes in Rectangular Area
	CommandDECCRA  // Copy Rectangular Area
	CommandDECERA  // Erase Rectangular Area
	CommandDECFRA  // Fill Rectangular Area
	CommandDECRARA // Reverse Attributes in Rectangular Area
	CommandDECSERA // Selective Erase Rectangular Area

	// Reports
	CommandDA1          // Primary Device Attributes (request, is_host)
	CommandDA1Reply     // Primary Device Attributes (response, !is_host)
	CommandDA2          // Secondary Device Attributes (request)
	CommandDA2Reply     // Secondary Device Attributes (response)
	CommandDA3          // Tertiary Device Attributes (request)
	CommandDA3Reply     // Tertiary Device Attributes (response)
	CommandDSR          // Device Status Report (ANSI, request)
	CommandDSRReply     // Device Status Report (ANSI, response)
	CommandDECDSR       // Device Status Report (DEC, request)
	CommandDECDSRReply  // Device Status Report (DEC, response)
	CommandDECRQM       // Request Mode
	CommandDECRPM       // Report Mode (response)
	CommandDECRQPSR     // Request Presentation State Report
	CommandDECREQTPARM  // Request Terminal Parameters

	// Reset
	CommandRIS     // Reset to Initial State
	CommandDECSTR  // Soft Terminal Reset

	// Save/restore
	CommandDECSC // Save Cursor (DEC)
	CommandDECRC // Restore Cursor (DEC)
	CommandSCOSC // Save Cursor (ANSI.SYS/SCO alias, CSI s)
	CommandSCORC // Restore Cursor (ANSI.SYS/SCO alias, CSI u)

	// OSC / strings
	CommandOSC // Operating System Command (payload in Seq.ST; numeric
	// subcommand is the caller's job to parse out of the payload)
	CommandDCSPassthrough // generic DCS passthrough (e.g. Sixel/DECRQSS bodies)
	CommandSOSPMApc       // SOS/PM/APC string, discarded content

	// Misc control
	CommandBEL
	CommandBS
	CommandCR
	CommandLF
	CommandVT
	CommandFF
	CommandNEL // Next Line (ESC E)
	CommandIND // Index (ESC D)
	CommandRI  // Reverse Index (ESC M)
	CommandDECALN
)

// String names a Command for logging/debugging.
func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "None"
}

var commandNames = map[Command]string{
	CommandCUU: "CUU", CommandCUD: "CUD", CommandCUF: "CUF", CommandCUB: "CUB",
	CommandCUP: "CUP", CommandCNL: "CNL", CommandCPL: "CPL", CommandCHA: "CHA",
	CommandHVP: "HVP", CommandHPA: "HPA", CommandHPR: "HPR", CommandVPA: "VPA", CommandVPR: "VPR",
	CommandED: "ED", CommandEL: "EL", CommandECH: "ECH", CommandDCH: "DCH",
	CommandICH: "ICH", CommandIL: "IL", CommandDL: "DL", CommandREP: "REP",
	CommandSU: "SU", CommandSD: "SD", CommandDECSTBM: "DECSTBM",
	CommandHT: "HT", CommandCHT: "CHT", CommandCBT: "CBT", CommandHTS: "HTS", CommandTBC: "TBC",
	CommandSM: "SM", CommandRM: "RM", CommandDECSET: "DECSET", CommandDECRST: "DECRST",
	CommandSGR: "SGR", CommandDECSCA: "DECSCA",
	CommandSCS: "SCS", CommandLS0: "LS0", CommandLS1: "LS1", CommandLS1R: "LS1R",
	CommandLS2: "LS2", CommandLS2R: "LS2R", CommandLS3: "LS3", CommandLS3R: "LS3R",
	CommandSS2: "SS2", CommandSS3: "SS3", CommandSI: "SI", CommandSO: "SO",
	CommandDECCARA: "DECCARA", CommandDECCRA: "DECCRA", CommandDECERA: "DECERA",
	CommandDECFRA: "DECFRA", CommandDECRARA: "DECRARA", CommandDECSERA: "DECSERA",
	CommandDA1: "DA1", CommandDA1Reply: "DA1Reply", CommandDA2: "DA2", CommandDA2Reply: "DA2Reply",
	CommandDA3: "DA3", CommandDA3Reply: "DA3Reply",
	CommandDSR: "DSR", CommandDSRReply: "DSRReply",
	CommandDECDSR: "DECDSR", CommandDECDSRReply: "DECDSRReply",
	CommandDECRQM: "DECRQM", CommandDECRPM: "DECRPM",
	CommandDECRQPSR: "DECRQPSR", CommandDECREQTPARM: "DECREQTPARM",
	CommandRIS: "RIS", CommandDECSTR: "DECSTR",
	CommandDECSC: "DECSC", CommandDECRC: "DECRC", CommandSCOSC: "SCOSC", CommandSCORC: "SCORC",
	CommandOSC: "OSC", CommandDCSPassthrough: "DCSPassthrough", CommandSOSPMApc: "SOSPMApc",
	CommandBEL: "BEL", CommandBS: "BS", CommandCR: "CR", CommandLF: "LF",
	CommandVT: "VT", CommandFF: "FF", CommandNEL: "NEL", CommandIND: "IND",
	CommandRI: "RI", CommandDECALN: "DECALN",
}
