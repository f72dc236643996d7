package charset

// Index identifies a G-set slot (G0-G3). SCS designates a catalog Name
// into one of these slots; LS0-LS3/LS1R-LS3R and SS2/SS3 select which
// slot is active on GL/GR. The engine only exposes the slots and
// indices parsed from these sequences — interpreting SO/SI/LSn as
// "switch the active slot" is the interpreter's job.
type Index uint8

const (
	G0 Index = iota
	G1
	G2
	G3
)

// String returns the slot's name.
func (i Index) String() string {
	switch i {
	case G0:
		return "G0"
	case G1:
		return "G1"
	case G2:
		return "G2"
	case G3:
		return "G3"
	default:
		return "Unknown"
	}
}

// Selector holds the four G-set slots, the GL/GR assignment, and the
// single-shift override (SS2/SS3 affects only the next character).
type Selector struct {
	slots      [4]Name
	gl, gr     Index
	singleShift Index
	hasShift    bool
}

// NewSelector returns a selector with all slots designated ASCII and
// G0/G1 on GL/GR respectively.
func NewSelector() *Selector {
	return &Selector{
		slots: [4]Name{ASCII, ASCII, ASCII, ASCII},
		gl:    G0,
		gr:    G1,
	}
}

// Designate assigns name to slot (the SCS operation).
func (s *Selector) Designate(slot Index, name Name) {
	s.slots[slot] = name
}

// Table returns the catalog table currently designated into slot.
func (s *Selector) Table(slot Index) Table {
	return TableFor(s.slots[slot])
}

// SetGL / SetGR implement LS0-LS3 / LS1R-LS3R: select which slot is
// active on the GL (0x20-0x7F) or GR (0xA0-0xFF) column.
func (s *Selector) SetGL(slot Index) { s.gl = slot }
func (s *Selector) SetGR(slot Index) { s.gr = slot }

// SingleShift arms a one-character override (SS2/SS3): the next call to
// Translate consumes it and reverts to the standing GL/GR assignment.
func (s *Selector) SingleShift(slot Index) {
	s.singleShift = slot
	s.hasShift = true
}

// Translate maps c through the slot active for its column (GR for
// 0xA0-0xFF, GL otherwise), honoring any pending single shift. Table.Map
// only translates 0x20-0x7F, so code points in 0xA0-0xFF come back
// unchanged whichever table the GR slot holds.
func (s *Selector) Translate(c rune) rune {
	slot := s.gl
	if c >= 0xA0 && c <= 0xFF {
		slot = s.gr
	}
	if s.hasShift {
		slot = s.singleShift
		s.hasShift = false
	}
	return s.Table(slot).Map(c)
}
