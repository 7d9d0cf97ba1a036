package truetype

// Maxp is the maximum profile table ("maxp"): the glyph count and, for
// TrueType outlines (version 1.0), the worst-case resource bounds a
// rasterizer must be able to allocate for any single glyph in the font.
// CFF-outline fonts carry only the version 0.5 header (NumGlyphs alone).
type Maxp struct {
	Version   Q32
	NumGlyphs uint16

	// The fields below are populated only when Version is 1.0.
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

func (m *Maxp) readTape(t *Tape) error {
	if err := t.Require("maxp", 6); err != nil {
		return err
	}
	version, err := Take[Q32](t)
	if err != nil {
		return err
	}
	m.Version = version
	m.NumGlyphs = t.TakeU16()
	switch m.Version.Raw {
	case q32Maxp05:
		return nil
	case q32Maxp10:
	default:
		return errorf("maxp", "unsupported version %s", formatQ32(m.Version))
	}
	if err := t.Require("maxp", 26); err != nil {
		return err
	}
	m.MaxPoints = t.TakeU16()
	m.MaxContours = t.TakeU16()
	m.MaxCompositePoints = t.TakeU16()
	m.MaxCompositeContours = t.TakeU16()
	m.MaxZones = t.TakeU16()
	m.MaxTwilightPoints = t.TakeU16()
	m.MaxStorage = t.TakeU16()
	m.MaxFunctionDefs = t.TakeU16()
	m.MaxInstructionDefs = t.TakeU16()
	m.MaxStackElements = t.TakeU16()
	m.MaxSizeOfInstructions = t.TakeU16()
	m.MaxComponentElements = t.TakeU16()
	m.MaxComponentDepth = t.TakeU16()
	return nil
}

func (m *Maxp) writeTape(w *WTape) error {
	if err := Give(w, &m.Version); err != nil {
		return err
	}
	w.GiveU16(m.NumGlyphs)
	if m.Version.Raw == q32Maxp05 {
		return nil
	}
	w.GiveU16(m.MaxPoints)
	w.GiveU16(m.MaxContours)
	w.GiveU16(m.MaxCompositePoints)
	w.GiveU16(m.MaxCompositeContours)
	w.GiveU16(m.MaxZones)
	w.GiveU16(m.MaxTwilightPoints)
	w.GiveU16(m.MaxStorage)
	w.GiveU16(m.MaxFunctionDefs)
	w.GiveU16(m.MaxInstructionDefs)
	w.GiveU16(m.MaxStackElements)
	w.GiveU16(m.MaxSizeOfInstructions)
	w.GiveU16(m.MaxComponentElements)
	w.GiveU16(m.MaxComponentDepth)
	return nil
}

// IsTrueType reports whether the table carries the version 1.0 TrueType
// outline bounds (as opposed to the version 0.5 header alone used by
// CFF-outline fonts).
func (m Maxp) IsTrueType() bool {
	return m.Version.Raw == q32Maxp10
}
