package truetype

// Lenience relaxes specific validations that would otherwise reject a
// malformed-but-recoverable font. Each field corresponds to one of the
// toggleable strictness relaxations: by default (the zero value) every
// table is parsed strictly. A nil *Lenience passed to a Read function means
// "strict".
type Lenience struct {
	// IgnoreInvalidFontHeaderVersion accepts head.MajorVersion/MinorVersion
	// combinations other than 1.0 instead of rejecting the table.
	IgnoreInvalidFontHeaderVersion bool

	// IgnoreInvalidLanguageIDs treats name-record language ids that fall
	// outside the known predefined ranges as opaque instead of failing.
	IgnoreInvalidLanguageIDs bool

	// IgnoreInvalidComponentFlags accepts composite glyph component flags
	// with reserved bits set instead of rejecting the glyph.
	IgnoreInvalidComponentFlags bool

	// IgnoreInvalidCompositeGlyphFlags accepts simple-glyph point flags
	// with the reserved high bit set instead of rejecting the glyph.
	IgnoreInvalidCompositeGlyphFlags bool

	// IgnoreInvalidNameRecords skips name records whose (offset, size)
	// overruns the string storage blob instead of failing the whole table.
	IgnoreInvalidNameRecords bool
}

func (l *Lenience) ignoreInvalidFontHeaderVersion() bool {
	return l != nil && l.IgnoreInvalidFontHeaderVersion
}

func (l *Lenience) ignoreInvalidLanguageIDs() bool {
	return l != nil && l.IgnoreInvalidLanguageIDs
}

func (l *Lenience) ignoreInvalidComponentFlags() bool {
	return l != nil && l.IgnoreInvalidComponentFlags
}

func (l *Lenience) ignoreInvalidCompositeGlyphFlags() bool {
	return l != nil && l.IgnoreInvalidCompositeGlyphFlags
}

func (l *Lenience) ignoreInvalidNameRecords() bool {
	return l != nil && l.IgnoreInvalidNameRecords
}
