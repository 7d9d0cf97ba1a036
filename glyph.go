package truetype

// GlyphID is a 16-bit glyph index into a font's glyph list.
type GlyphID uint16
