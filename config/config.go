// Package config loads the engine's tunable limits from YAML, falling
// back to built-in defaults for anything the file omits.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cliofy/vtcore/charset"
)

// Limits holds the per-engine tunables: parameter and string-payload
// caps, the history retention policy, and the two rendering-policy knobs
// (CJK width, the user-preference charset) that aren't protocol
// constants but do need to live somewhere a caller configures once. The
// parser does not read Limits; it uses its own compiled-in MaxParams and
// MaxOSCRaw.
type Limits struct {
	// MaxArgs is the parameter cap (default 16).
	MaxArgs int `yaml:"max_args"`

	// MaxOSCBytes is the DCS/OSC/SOS/PM/APC string payload cap (default
	// 4096).
	MaxOSCBytes int `yaml:"max_osc_bytes"`

	// MaxHistoryLines caps page.History's retained scrollback. 0 means
	// unbounded, matching page.NewHistory(0)'s own convention.
	MaxHistoryLines int `yaml:"max_history_lines"`

	// CJKWidth selects the wcwidth ambiguous-width convention: "narrow"
	// (default, matches most Western locales) or "wide" (CJK locales,
	// where ambiguous-width code points render as 2 columns).
	CJKWidth string `yaml:"cjk_width"`

	// UserPreferenceCharset names the catalog entry for the
	// charset.UserPreference slot; ResolveUserPreference looks it up.
	UserPreferenceCharset string `yaml:"user_preference_charset"`
}

// Default returns the built-in limits (16 args, 4096-byte OSC/DCS
// strings, 10000 history lines).
func Default() Limits {
	return Limits{
		MaxArgs:               16,
		MaxOSCBytes:           4096,
		MaxHistoryLines:       10000,
		CJKWidth:              "narrow",
		UserPreferenceCharset: "ASCII",
	}
}

// Load reads YAML limits from path, overlaying them onto Default() so a
// partial file only overrides the fields it sets.
func Load(path string) (Limits, error) {
	l := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return l, errors.Wrap(err, "config: read limits file")
	}
	if err := yaml.Unmarshal(data, &l); err != nil {
		return l, errors.Wrap(err, "config: parse limits file")
	}
	l.clamp()
	return l, nil
}

// clamp replaces out-of-range YAML values with the defaults: a
// non-positive MaxArgs or MaxOSCBytes, a negative MaxHistoryLines, or an
// unrecognized CJKWidth.
func (l *Limits) clamp() {
	if l.MaxArgs <= 0 {
		l.MaxArgs = 16
	}
	if l.MaxOSCBytes <= 0 {
		l.MaxOSCBytes = 4096
	}
	if l.MaxHistoryLines < 0 {
		l.MaxHistoryLines = 0
	}
	if l.CJKWidth != "narrow" && l.CJKWidth != "wide" {
		l.CJKWidth = "narrow"
	}
}

// ResolveUserPreference looks up the configured user-preference charset
// name in the catalog, falling back to ASCII for an unrecognized name.
func (l Limits) ResolveUserPreference() charset.Name {
	for n := charset.ASCII; n <= charset.UserPreference; n++ {
		if n.String() == l.UserPreferenceCharset {
			return n
		}
	}
	return charset.ASCII
}
