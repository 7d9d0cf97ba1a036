package truetype

import "unicode/utf8"

// macGlyphNames is the 258-entry standard Macintosh glyph order used by
// post format 1.0 and as the implicit name for indices below 258 in format
// 2.0. Only the first handful matter for most Latin text fonts, but the
// full table is required to resolve arbitrary indices correctly.
var macGlyphNames = [...]string{
	".notdef", ".null", "nonmarkingreturn", "space", "exclam", "quotedbl",
	"numbersign", "dollar", "percent", "ampersand", "quotesingle",
	"parenleft", "parenright", "asterisk", "plus", "comma", "hyphen",
	"period", "slash", "zero", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "colon", "semicolon", "less", "equal",
	"greater", "question", "at", "A", "B", "C", "D", "E", "F", "G", "H", "I",
	"J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W",
	"X", "Y", "Z", "bracketleft", "backslash", "bracketright",
	"asciicircum", "underscore", "grave", "a", "b", "c", "d", "e", "f", "g",
	"h", "i", "j", "k", "l", "m", "n", "o", "p", "q", "r", "s", "t", "u",
	"v", "w", "x", "y", "z", "braceleft", "bar", "braceright", "asciitilde",
	"Adieresis", "Aring", "Ccedilla", "Eacute", "Ntilde", "Odieresis",
	"Udieresis", "aacute", "agrave", "acircumflex", "adieresis", "atilde",
	"aring", "ccedilla", "eacute", "egrave", "ecircumflex", "edieresis",
	"iacute", "igrave", "icircumflex", "idieresis", "ntilde", "oacute",
	"ograve", "ocircumflex", "odieresis", "otilde", "uacute", "ugrave",
	"ucircumflex", "udieresis", "dagger", "degree", "cent", "sterling",
	"section", "bullet", "paragraph", "germandbls", "registered",
	"copyright", "trademark", "acute", "dieresis", "notequal", "AE",
	"Oslash", "infinity", "plusminus", "lessequal", "greaterequal", "yen",
	"mu", "partialdiff", "summation", "product", "pi", "integral",
	"ordfeminine", "ordmasculine", "Omega", "ae", "oslash", "questiondown",
	"exclamdown", "logicalnot", "radical", "florin", "approxequal",
	"Delta", "guillemotleft", "guillemotright", "ellipsis",
	"nonbreakingspace", "Agrave", "Atilde", "Otilde", "OE", "oe",
	"endash", "emdash", "quotedblleft", "quotedblright", "quoteleft",
	"quoteright", "divide", "lozenge", "ydieresis", "Ydieresis",
	"fraction", "currency", "guilsinglleft", "guilsinglright", "fi", "fl",
	"daggerdbl", "periodcentered", "quotesinglbase", "quotedblbase",
	"perthousand", "Acircumflex", "Ecircumflex", "Aacute", "Edieresis",
	"Egrave", "Iacute", "Icircumflex", "Idieresis", "Igrave", "Oacute",
	"Ocircumflex", "apple", "Ograve", "Uacute", "Ucircumflex", "Ugrave",
	"dotlessi", "circumflex", "tilde", "macron", "breve", "dotaccent",
	"ring", "cedilla", "hungarumlaut", "ogonek", "caron", "Lslash",
	"lslash", "Scaron", "scaron", "Zcaron", "zcaron", "brokenbar", "Eth",
	"eth", "Yacute", "yacute", "Thorn", "thorn", "minus", "multiply",
	"onesuperior", "twosuperior", "threesuperior", "onehalf", "onequarter",
	"threequarters", "franc", "Gbreve", "gbreve", "Idotaccent", "Scedilla",
	"scedilla", "Cacute", "cacute", "Ccaron", "ccaron", "dcroat",
}

// Post is the glyph name and PostScript compatibility table ("post"). Only
// versions 1.0, 2.0 and 3.0 are supported; version 2.5 was deprecated by
// the OpenType specification and is rejected.
type Post struct {
	Version            Q32
	ItalicAngle        Q32
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       uint32
	MinMemType42       uint32
	MaxMemType42       uint32
	MinMemType1        uint32
	MaxMemType1        uint32

	// GlyphNameIndex and Names are populated only for version 2.0.
	GlyphNameIndex []uint16
	Names          []string
}

func (p *Post) readTape(t *Tape) error {
	if err := t.Require("post", 32); err != nil {
		return err
	}
	version, err := Take[Q32](t)
	if err != nil {
		return err
	}
	p.Version = version
	italicAngle, err := Take[Q32](t)
	if err != nil {
		return err
	}
	p.ItalicAngle = italicAngle
	p.UnderlinePosition = t.TakeI16()
	p.UnderlineThickness = t.TakeI16()
	p.IsFixedPitch = t.TakeU32()
	p.MinMemType42 = t.TakeU32()
	p.MaxMemType42 = t.TakeU32()
	p.MinMemType1 = t.TakeU32()
	p.MaxMemType1 = t.TakeU32()

	switch p.Version.Raw {
	case q32Post10, q32Post30:
		return nil
	case q32Post25:
		return errorf("post", "version 2.5 is deprecated and not supported")
	case q32Post20:
	default:
		return errorf("post", "unsupported version %s", formatQ32(p.Version))
	}

	if err := t.Require("post", 2); err != nil {
		return err
	}
	numGlyphs := t.TakeU16()
	index := make([]uint16, numGlyphs)
	for i := range index {
		index[i] = t.TakeU16()
	}
	p.GlyphNameIndex = index

	nameCount := 0
	for _, idx := range index {
		if idx >= 258 && idx <= 32767 {
			nameCount++
		}
	}
	names := make([]string, nameCount)
	for i := range names {
		if err := t.Require("post", 1); err != nil {
			return err
		}
		n := t.TakeU8()
		if err := t.Require("post", uint32(n)); err != nil {
			return err
		}
		raw := t.TakeBytes(uint32(n))
		if !utf8.Valid(raw) {
			names[i] = "<malformed>"
			continue
		}
		names[i] = string(raw)
	}
	p.Names = names
	return nil
}

func (p *Post) writeTape(w *WTape) error {
	if err := Give(w, &p.Version); err != nil {
		return err
	}
	if err := Give(w, &p.ItalicAngle); err != nil {
		return err
	}
	w.GiveI16(p.UnderlinePosition)
	w.GiveI16(p.UnderlineThickness)
	w.GiveU32(p.IsFixedPitch)
	w.GiveU32(p.MinMemType42)
	w.GiveU32(p.MaxMemType42)
	w.GiveU32(p.MinMemType1)
	w.GiveU32(p.MaxMemType1)
	if p.Version.Raw != q32Post20 {
		return nil
	}
	w.GiveU16(uint16(len(p.GlyphNameIndex)))
	for _, idx := range p.GlyphNameIndex {
		w.GiveU16(idx)
	}
	for _, name := range p.Names {
		w.GiveU8(uint8(len(name)))
		w.GiveBytes([]byte(name))
	}
	return nil
}

// GlyphName resolves glyph id to its PostScript name for a version 2.0
// table, following the standard-Macintosh-order-or-pascal-string rule.
func (p *Post) GlyphName(id GlyphID) (string, bool) {
	i := int(id)
	if i < 0 || i >= len(p.GlyphNameIndex) {
		return "", false
	}
	idx := p.GlyphNameIndex[i]
	if idx < 258 {
		if int(idx) >= len(macGlyphNames) {
			return "", false
		}
		return macGlyphNames[idx], true
	}
	j := int(idx) - 258
	if j < 0 || j >= len(p.Names) {
		return "", false
	}
	return p.Names[j], true
}
