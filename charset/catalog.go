package charset

import "golang.org/x/text/encoding/charmap"

// Name enumerates the full charset catalog: 96-sets, 94-sets (DEC
// line-drawing/supplemental/technical plus the national NRCS variants),
// and the user-preference supplemental slot selectable via DECAUPSS.
type Name int

const (
	ASCII Name = iota

	// 96-sets
	ISOLatin1Supplemental
	ISOLatin2Supplemental
	ISOLatin5Supplemental
	ISOGreekSupplemental
	ISOHebrewSupplemental
	ISOLatinCyrillic
	BritishNRCS  // aliased to ISO Latin-1
	AmericanNRCS // aliased to ISO Latin-2

	// 94-sets
	DECSpecialGraphic
	DECSupplemental
	DECTechnical
	CyrillicDEC
	DutchNRCS
	FinnishNRCS
	FrenchNRCS
	FrenchCanadianNRCS
	GermanNRCS
	GreekNRCS
	HebrewNRCS
	ItalianNRCS
	NorwegianDanishNRCS
	PortugueseNRCS
	RussianNRCS
	SCSNRCS
	SpanishNRCS
	SwedishNRCS
	SwissNRCS
	TurkishNRCS
	GreekDEC
	HebrewDEC
	TurkishDEC

	// UserPreference is the DECAUPSS-modifiable slot: its Table is
	// whatever the user last configured, defaulting to ASCII.
	UserPreference
)

var names = map[Name]string{
	ASCII:                 "ASCII",
	ISOLatin1Supplemental: "ISOLatin1Supplemental",
	ISOLatin2Supplemental: "ISOLatin2Supplemental",
	ISOLatin5Supplemental: "ISOLatin5Supplemental",
	ISOGreekSupplemental:  "ISOGreekSupplemental",
	ISOHebrewSupplemental: "ISOHebrewSupplemental",
	ISOLatinCyrillic:      "ISOLatinCyrillic",
	BritishNRCS:           "BritishNRCS",
	AmericanNRCS:          "AmericanNRCS",
	DECSpecialGraphic:     "DECSpecialGraphic",
	DECSupplemental:       "DECSupplemental",
	DECTechnical:          "DECTechnical",
	CyrillicDEC:           "CyrillicDEC",
	DutchNRCS:             "DutchNRCS",
	FinnishNRCS:           "FinnishNRCS",
	FrenchNRCS:            "FrenchNRCS",
	FrenchCanadianNRCS:    "FrenchCanadianNRCS",
	GermanNRCS:            "GermanNRCS",
	GreekNRCS:             "GreekNRCS",
	HebrewNRCS:            "HebrewNRCS",
	ItalianNRCS:           "ItalianNRCS",
	NorwegianDanishNRCS:   "NorwegianDanishNRCS",
	PortugueseNRCS:        "PortugueseNRCS",
	RussianNRCS:           "RussianNRCS",
	SCSNRCS:               "SCSNRCS",
	SpanishNRCS:           "SpanishNRCS",
	SwedishNRCS:           "SwedishNRCS",
	SwissNRCS:             "SwissNRCS",
	TurkishNRCS:           "TurkishNRCS",
	GreekDEC:              "GreekDEC",
	HebrewDEC:             "HebrewDEC",
	TurkishDEC:            "TurkishDEC",
	UserPreference:        "UserPreference",
}

// String returns the catalog entry's name.
func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return "Unknown"
}

// fromCharmapHighHalf builds a 96-set table from the upper half
// (0xA0-0xFF) of an ISO-8859-* code page: code point i (byte 0x20+i)
// decodes the byte 0xA0+i through cm.
func fromCharmapHighHalf(cm *charmap.Charmap) Table {
	var t Table
	for i := range t {
		t[i] = cm.DecodeByte(byte(0xA0 + i))
	}
	return t
}

var (
	asciiTable              = identity()
	decSpecialGraphicTable  = substituted(decSpecialGraphicOverrides)
	latin1SupplementalTable = fromCharmapHighHalf(charmap.ISO8859_1)
	latin2SupplementalTable = fromCharmapHighHalf(charmap.ISO8859_2)
	latin5SupplementalTable = fromCharmapHighHalf(charmap.ISO8859_9)
	greekSupplementalTable  = fromCharmapHighHalf(charmap.ISO8859_7)
	hebrewSupplementalTable = fromCharmapHighHalf(charmap.ISO8859_8)
	latinCyrillicTable      = fromCharmapHighHalf(charmap.ISO8859_5)
	cyrillicDECTable        = fromCharmapHighHalf(charmap.KOI8R)
	russianNRCSTable        = fromCharmapHighHalf(charmap.KOI8R)
)

// catalog maps each Name to its Table. DEC Supplemental and the
// 8-bit-code-page-backed sets reuse the corresponding ISO (or KOI8-R)
// high-half table as the closest available approximation; DEC Technical
// and SCS NRCS have no table of their own and map as ASCII; the
// substituted national NRCS variants differ from ASCII at the handful of
// positions DEC's VT220 national replacement character sets historically
// used.
var catalog = map[Name]Table{
	ASCII:                 asciiTable,
	ISOLatin1Supplemental: latin1SupplementalTable,
	ISOLatin2Supplemental: latin2SupplementalTable,
	ISOLatin5Supplemental: latin5SupplementalTable,
	ISOGreekSupplemental:  greekSupplementalTable,
	ISOHebrewSupplemental: hebrewSupplementalTable,
	ISOLatinCyrillic:      latinCyrillicTable,
	BritishNRCS:           latin1SupplementalTable,
	AmericanNRCS:          latin2SupplementalTable,
	DECSpecialGraphic:     decSpecialGraphicTable,
	DECSupplemental:       latin1SupplementalTable,
	DECTechnical:          asciiTable,
	CyrillicDEC:           cyrillicDECTable,
	DutchNRCS:             substituted(dutchOverrides),
	FinnishNRCS:           substituted(finnishOverrides),
	FrenchNRCS:            substituted(frenchOverrides),
	FrenchCanadianNRCS:    substituted(frenchCanadianOverrides),
	GermanNRCS:            substituted(germanOverrides),
	GreekNRCS:             greekSupplementalTable,
	HebrewNRCS:            hebrewSupplementalTable,
	ItalianNRCS:           substituted(italianOverrides),
	NorwegianDanishNRCS:   substituted(norwegianDanishOverrides),
	PortugueseNRCS:        substituted(portugueseOverrides),
	RussianNRCS:           russianNRCSTable,
	SCSNRCS:               asciiTable,
	SpanishNRCS:           substituted(spanishOverrides),
	SwedishNRCS:           substituted(swedishOverrides),
	SwissNRCS:             substituted(swissOverrides),
	TurkishNRCS:           latin5SupplementalTable,
	GreekDEC:              greekSupplementalTable,
	HebrewDEC:             hebrewSupplementalTable,
	TurkishDEC:            latin5SupplementalTable,
}

// TableFor returns the translation table for a catalog entry.
func TableFor(n Name) Table {
	if t, ok := catalog[n]; ok {
		return t
	}
	return asciiTable
}

// decSpecialGraphicOverrides is the classic VT100 special graphics and
// line-drawing set (grounded on cliofy-govte/ansi.go's
// mapSpecialLineDrawing).
var decSpecialGraphicOverrides = map[byte]rune{
	'_': ' ', '`': '◆', 'a': '▒', 'b': '␉', 'c': '␌', 'd': '␍',
	'e': '␊', 'f': '°', 'g': '±', 'h': '␤', 'i': '␋',
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└', 'n': '┼', 'o': '⎺', 'p': '⎻',
	'q': '─', 'r': '⎼', 's': '⎽', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬',
	'x': '│', 'y': '≤', 'z': '≥', '{': 'π', '|': '≠', '}': '£', '~': '·',
}

// National replacement character sets: each substitutes ASCII at the
// handful of positions DEC's VT220 NRCS tables conventionally used for
// accented/national characters.
var (
	dutchOverrides = map[byte]rune{
		'#': '£', '@': '¾', '[': 'ĳ', '\\': '½', ']': '|', '{': '¨', '|': 'f', '}': '¼', '~': '´',
	}
	finnishOverrides = map[byte]rune{
		'[': 'Ä', '\\': 'Ö', ']': 'Å', '^': 'Ü', '`': 'é', '{': 'ä', '|': 'ö', '}': 'å', '~': 'ü',
	}
	frenchOverrides = map[byte]rune{
		'#': '£', '@': 'à', '[': '°', '\\': 'ç', ']': '§', '{': 'é', '|': 'ù', '}': 'è', '~': '¨',
	}
	frenchCanadianOverrides = map[byte]rune{
		'@': 'à', '[': 'â', '\\': 'ç', ']': 'ê', '^': 'î', '`': 'ô', '{': 'é', '|': 'ù', '}': 'è', '~': 'û',
	}
	germanOverrides = map[byte]rune{
		'@': '§', '[': 'Ä', '\\': 'Ö', ']': 'Ü', '{': 'ä', '|': 'ö', '}': 'ü', '~': 'ß',
	}
	italianOverrides = map[byte]rune{
		'#': '£', '@': '§', '[': '°', '\\': 'ç', ']': 'é', '`': 'ù', '{': 'à', '|': 'ò', '}': 'è', '~': 'ì',
	}
	norwegianDanishOverrides = map[byte]rune{
		'@': 'Ä', '[': 'Æ', '\\': 'Ø', ']': 'Å', '^': 'Ü', '`': 'ä', '{': 'æ', '|': 'ø', '}': 'å', '~': 'ü',
	}
	portugueseOverrides = map[byte]rune{
		'[': 'Ã', '\\': 'Ç', ']': 'Õ', '{': 'ã', '|': 'ç', '}': 'õ',
	}
	spanishOverrides = map[byte]rune{
		'#': '£', '@': '§', '[': '¡', '\\': 'Ñ', ']': '¿', '{': '°', '|': 'ñ', '}': 'ç',
	}
	swedishOverrides = map[byte]rune{
		'@': 'É', '[': 'Ä', '\\': 'Ö', ']': 'Å', '^': 'Ü', '`': 'é', '{': 'ä', '|': 'ö', '}': 'å', '~': 'ü',
	}
	swissOverrides = map[byte]rune{
		'#': 'ù', '@': 'à', '[': 'é', '\\': 'ç', ']': 'ê', '^': 'î', '_': 'è', '`': 'ô', '{': 'ä', '|': 'ö', '}': 'ü', '~': 'û',
	}
)
