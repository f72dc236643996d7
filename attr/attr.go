package attr

// Attributes is the per-cell SGR state: a foreground and background
// color plus seven independent boolean marks.
type Attributes struct {
	Fg, Bg Color

	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
	Protect   bool
	Blink     bool
	Hidden    bool
}

// Default is the attribute state a reset (RIS/DECSTR) restores.
var Default = Attributes{Fg: DefaultColor, Bg: DefaultColor}

// Equal reports field-wise equality.
func (a Attributes) Equal(b Attributes) bool {
	return a == b
}
