package truetype

// bit reports whether bit n (0-indexed from the least significant bit) is
// set in v.
func bit(v uint32, n uint) bool {
	return v&(1<<n) != 0
}

// HeadFlags holds the head table's "flags" field. Bits 0-4 and 11 describe
// baseline/scaling assumptions a rasterizer may rely on; the rest are
// largely historical (Apple/Microsoft specific) or reserved.
type HeadFlags uint16

func (f HeadFlags) BaselineAtY0() bool                  { return bit(uint32(f), 0) }
func (f HeadFlags) LeftSidebearingAtX0() bool           { return bit(uint32(f), 1) }
func (f HeadFlags) InstructionsDependOnPointSize() bool { return bit(uint32(f), 2) }
func (f HeadFlags) ForceIntegerPPEM() bool              { return bit(uint32(f), 3) }
func (f HeadFlags) InstructionsAlterAdvanceWidth() bool { return bit(uint32(f), 4) }
func (f HeadFlags) Vertical() bool                      { return bit(uint32(f), 5) }
func (f HeadFlags) RequiresLinguisticRendering() bool   { return bit(uint32(f), 13) }
func (f HeadFlags) IsAATFont() bool                     { return bit(uint32(f), 14) }

// IsInvalid reports whether bit 15, reserved and required to be zero, is
// set.
func (f HeadFlags) IsInvalid() bool { return bit(uint32(f), 15) }

func (f *HeadFlags) readTape(t *Tape) error {
	*f = HeadFlags(t.TakeU16())
	return nil
}

func (f *HeadFlags) writeTape(w *WTape) error {
	w.GiveU16(uint16(*f))
	return nil
}

// MacStyle holds the head table's "macStyle" field, the bold/italic/etc.
// style bits Macintosh System software historically used to pick a variant
// out of a font family without parsing the name table.
type MacStyle uint16

func (f MacStyle) Bold() bool      { return bit(uint32(f), 0) }
func (f MacStyle) Italic() bool    { return bit(uint32(f), 1) }
func (f MacStyle) Underline() bool { return bit(uint32(f), 2) }
func (f MacStyle) Outline() bool   { return bit(uint32(f), 3) }
func (f MacStyle) Shadow() bool    { return bit(uint32(f), 4) }
func (f MacStyle) Condensed() bool { return bit(uint32(f), 5) }
func (f MacStyle) Extended() bool  { return bit(uint32(f), 6) }

// IsInvalid reports whether any of the reserved bits (7-15) is set.
func (f MacStyle) IsInvalid() bool { return uint32(f)&0xFF80 != 0 }

func (f *MacStyle) readTape(t *Tape) error {
	*f = MacStyle(t.TakeU16())
	return nil
}

func (f *MacStyle) writeTape(w *WTape) error {
	w.GiveU16(uint16(*f))
	return nil
}

// PointFlags describes a single point of a simple glyph outline: whether it
// is on-curve, and whether its x/y coordinates are encoded as a byte delta
// or repeat the previous point's coordinate.
type PointFlags uint8

const (
	pointOnCurve         = 1 << 0
	pointXShort          = 1 << 1
	pointYShort          = 1 << 2
	pointRepeat          = 1 << 3
	pointXSameOrPositive = 1 << 4
	pointYSameOrPositive = 1 << 5
	pointOverlapSimple   = 1 << 6
	pointReserved        = 1 << 7
)

func (f PointFlags) OnCurve() bool { return bit(uint32(f), 0) }
func (f PointFlags) XIsByte() bool { return bit(uint32(f), 1) }
func (f PointFlags) YIsByte() bool { return bit(uint32(f), 2) }
func (f PointFlags) Repeat() bool  { return bit(uint32(f), 3) }

// XIsSameOrPositive is read together with XIsByte: when XIsByte is true it
// is the sign of the one-byte delta (true for positive); when XIsByte is
// false it selects between "same as previous point" (true) and "signed
// 16-bit delta follows" (false). YIsSameOrPositive works the same for y.
func (f PointFlags) XIsSameOrPositive() bool { return bit(uint32(f), 4) }
func (f PointFlags) YIsSameOrPositive() bool { return bit(uint32(f), 5) }
func (f PointFlags) OverlapSimple() bool     { return bit(uint32(f), 6) }

// IsInvalid reports whether the reserved bit 7 is set.
func (f PointFlags) IsInvalid() bool { return bit(uint32(f), 7) }

// ComponentFlags describes how a composite glyph's component is scaled and
// positioned, and whether further components follow it.
type ComponentFlags uint16

func (f ComponentFlags) ArgsAreWords() bool     { return bit(uint32(f), 0) }
func (f ComponentFlags) ArgsAreXY() bool        { return bit(uint32(f), 1) }
func (f ComponentFlags) RoundXYToGrid() bool    { return bit(uint32(f), 2) }
func (f ComponentFlags) HaveScale() bool        { return bit(uint32(f), 3) }
func (f ComponentFlags) MoreComponents() bool   { return bit(uint32(f), 5) }
func (f ComponentFlags) HaveXAndYScale() bool   { return bit(uint32(f), 6) }
func (f ComponentFlags) HaveTwoByTwo() bool     { return bit(uint32(f), 7) }
func (f ComponentFlags) HaveInstructions() bool { return bit(uint32(f), 8) }
func (f ComponentFlags) UseMyMetrics() bool     { return bit(uint32(f), 9) }
func (f ComponentFlags) OverlapCompound() bool  { return bit(uint32(f), 10) }
func (f ComponentFlags) ScaledComponentOffset() bool {
	return bit(uint32(f), 11)
}
func (f ComponentFlags) UnscaledComponentOffset() bool {
	return bit(uint32(f), 12)
}

// IsInvalid reports whether any of the three reserved bits (13-15) is set.
func (f ComponentFlags) IsInvalid() bool {
	return bit(uint32(f), 13) || bit(uint32(f), 14) || bit(uint32(f), 15)
}

func (f *ComponentFlags) readTape(t *Tape) error {
	*f = ComponentFlags(t.TakeU16())
	return nil
}

func (f *ComponentFlags) writeTape(w *WTape) error {
	w.GiveU16(uint16(*f))
	return nil
}
