package truetype

// PANOSE is the 10-byte PANOSE classification number carried by OS/2,
// describing a font's overall visual style for substitution purposes.
type PANOSE [10]byte

// FsType holds OS/2's embedding licensing bits.
type FsType uint16

func (f FsType) Installable() bool       { return f&0x000F == 0 }
func (f FsType) RestrictedLicense() bool { return bit(uint32(f), 1) }
func (f FsType) PreviewAndPrint() bool   { return bit(uint32(f), 2) }
func (f FsType) Editable() bool          { return bit(uint32(f), 3) }
func (f FsType) NoSubsetting() bool      { return bit(uint32(f), 8) }
func (f FsType) BitmapOnly() bool        { return bit(uint32(f), 9) }

// IsInvalid reports whether any of the reserved bits (4-7, 10-15) is set.
func (f FsType) IsInvalid() bool { return f&0xFCF0 != 0 }

func (f *FsType) readTape(t *Tape) error {
	*f = FsType(t.TakeU16())
	return nil
}

func (f *FsType) writeTape(w *WTape) error {
	w.GiveU16(uint16(*f))
	return nil
}

// FsSelection holds OS/2's style-selection bits (version-independent
// subset shared by versions 0 through 5).
type FsSelection uint16

func (f FsSelection) Italic() bool         { return bit(uint32(f), 0) }
func (f FsSelection) Underscore() bool     { return bit(uint32(f), 1) }
func (f FsSelection) Negative() bool       { return bit(uint32(f), 2) }
func (f FsSelection) Outlined() bool       { return bit(uint32(f), 3) }
func (f FsSelection) Strikeout() bool      { return bit(uint32(f), 4) }
func (f FsSelection) Bold() bool           { return bit(uint32(f), 5) }
func (f FsSelection) Regular() bool        { return bit(uint32(f), 6) }
func (f FsSelection) UseTypoMetrics() bool { return bit(uint32(f), 7) }
func (f FsSelection) WWS() bool            { return bit(uint32(f), 8) }
func (f FsSelection) Oblique() bool        { return bit(uint32(f), 9) }

// IsInvalid reports whether any of the reserved bits (10-15) is set.
func (f FsSelection) IsInvalid() bool { return f&0xFC00 != 0 }

func (f *FsSelection) readTape(t *Tape) error {
	*f = FsSelection(t.TakeU16())
	return nil
}

func (f *FsSelection) writeTape(w *WTape) error {
	w.GiveU16(uint16(*f))
	return nil
}

// OS2 is the OS/2 and Windows compatibility metrics table. Fields are
// additive across versions 0-5: a version N table carries every field
// through the version N cutoff; later fields are left at their zero value
// when the source table predates them.
type OS2 struct {
	Version             uint16
	XAvgCharWidth       int16
	USWeightClass       uint16
	USWidthClass        uint16
	FsType              FsType
	YSubscriptXSize     int16
	YSubscriptYSize     int16
	YSubscriptXOffset   int16
	YSubscriptYOffset   int16
	YSuperscriptXSize   int16
	YSuperscriptYSize   int16
	YSuperscriptXOffset int16
	YSuperscriptYOffset int16
	YStrikeoutSize      int16
	YStrikeoutPosition  int16
	SFamilyClass        int16
	Panose              PANOSE
	UlUnicodeRange1     uint32
	UlUnicodeRange2     uint32
	UlUnicodeRange3     uint32
	UlUnicodeRange4     uint32
	AchVendID           Tag
	FsSelection         FsSelection
	USFirstCharIndex    uint16
	USLastCharIndex     uint16
	STypoAscender       int16
	STypoDescender      int16
	STypoLineGap        int16
	USWinAscent         uint16
	USWinDescent        uint16

	// Version >= 1
	UlCodePageRange1 uint32
	UlCodePageRange2 uint32

	// Version >= 2
	SxHeight      int16
	SCapHeight    int16
	UsDefaultChar uint16
	UsBreakChar   uint16
	UsMaxContext  uint16

	// Version >= 5
	UsLowerOpticalPointSize uint16
	UsUpperOpticalPointSize uint16
}

func (o *OS2) readTape(t *Tape) error {
	if err := t.Require("OS/2", 78); err != nil {
		return err
	}
	o.Version = t.TakeU16()
	if o.Version > 5 {
		return errorf("OS/2", "unsupported version %d", o.Version)
	}
	o.XAvgCharWidth = t.TakeI16()
	o.USWeightClass = t.TakeU16()
	o.USWidthClass = t.TakeU16()
	fsType, err := Take[FsType](t)
	if err != nil {
		return err
	}
	if fsType.IsInvalid() {
		return errorf("OS/2", "fsType has reserved bits set")
	}
	o.FsType = fsType
	o.YSubscriptXSize = t.TakeI16()
	o.YSubscriptYSize = t.TakeI16()
	o.YSubscriptXOffset = t.TakeI16()
	o.YSubscriptYOffset = t.TakeI16()
	o.YSuperscriptXSize = t.TakeI16()
	o.YSuperscriptYSize = t.TakeI16()
	o.YSuperscriptXOffset = t.TakeI16()
	o.YSuperscriptYOffset = t.TakeI16()
	o.YStrikeoutSize = t.TakeI16()
	o.YStrikeoutPosition = t.TakeI16()
	o.SFamilyClass = t.TakeI16()
	copy(o.Panose[:], t.TakeBytes(10))
	o.UlUnicodeRange1 = t.TakeU32()
	o.UlUnicodeRange2 = t.TakeU32()
	o.UlUnicodeRange3 = t.TakeU32()
	o.UlUnicodeRange4 = t.TakeU32()
	achVendID, err := Take[Tag](t)
	if err != nil {
		return err
	}
	o.AchVendID = achVendID
	fsSelection, err := Take[FsSelection](t)
	if err != nil {
		return err
	}
	if fsSelection.IsInvalid() {
		return errorf("OS/2", "fsSelection has reserved bits set")
	}
	o.FsSelection = fsSelection
	o.USFirstCharIndex = t.TakeU16()
	o.USLastCharIndex = t.TakeU16()
	o.STypoAscender = t.TakeI16()
	o.STypoDescender = t.TakeI16()
	o.STypoLineGap = t.TakeI16()
	o.USWinAscent = t.TakeU16()
	o.USWinDescent = t.TakeU16()

	if o.Version == 0 {
		return nil
	}
	if err := t.Require("OS/2", 8); err != nil {
		return err
	}
	o.UlCodePageRange1 = t.TakeU32()
	o.UlCodePageRange2 = t.TakeU32()

	if o.Version == 1 {
		return nil
	}
	if err := t.Require("OS/2", 10); err != nil {
		return err
	}
	o.SxHeight = t.TakeI16()
	o.SCapHeight = t.TakeI16()
	o.UsDefaultChar = t.TakeU16()
	o.UsBreakChar = t.TakeU16()
	o.UsMaxContext = t.TakeU16()

	if o.Version < 5 {
		return nil
	}
	if err := t.Require("OS/2", 4); err != nil {
		return err
	}
	o.UsLowerOpticalPointSize = t.TakeU16()
	o.UsUpperOpticalPointSize = t.TakeU16()
	return nil
}

func (o *OS2) writeTape(w *WTape) error {
	w.GiveU16(o.Version)
	w.GiveI16(o.XAvgCharWidth)
	w.GiveU16(o.USWeightClass)
	w.GiveU16(o.USWidthClass)
	w.GiveU16(uint16(o.FsType))
	w.GiveI16(o.YSubscriptXSize)
	w.GiveI16(o.YSubscriptYSize)
	w.GiveI16(o.YSubscriptXOffset)
	w.GiveI16(o.YSubscriptYOffset)
	w.GiveI16(o.YSuperscriptXSize)
	w.GiveI16(o.YSuperscriptYSize)
	w.GiveI16(o.YSuperscriptXOffset)
	w.GiveI16(o.YSuperscriptYOffset)
	w.GiveI16(o.YStrikeoutSize)
	w.GiveI16(o.YStrikeoutPosition)
	w.GiveI16(o.SFamilyClass)
	w.GiveBytes(o.Panose[:])
	w.GiveU32(o.UlUnicodeRange1)
	w.GiveU32(o.UlUnicodeRange2)
	w.GiveU32(o.UlUnicodeRange3)
	w.GiveU32(o.UlUnicodeRange4)
	if err := Give(w, &o.AchVendID); err != nil {
		return err
	}
	w.GiveU16(uint16(o.FsSelection))
	w.GiveU16(o.USFirstCharIndex)
	w.GiveU16(o.USLastCharIndex)
	w.GiveI16(o.STypoAscender)
	w.GiveI16(o.STypoDescender)
	w.GiveI16(o.STypoLineGap)
	w.GiveU16(o.USWinAscent)
	w.GiveU16(o.USWinDescent)
	if o.Version == 0 {
		return nil
	}
	w.GiveU32(o.UlCodePageRange1)
	w.GiveU32(o.UlCodePageRange2)
	if o.Version == 1 {
		return nil
	}
	w.GiveI16(o.SxHeight)
	w.GiveI16(o.SCapHeight)
	w.GiveU16(o.UsDefaultChar)
	w.GiveU16(o.UsBreakChar)
	w.GiveU16(o.UsMaxContext)
	if o.Version < 5 {
		return nil
	}
	w.GiveU16(o.UsLowerOpticalPointSize)
	w.GiveU16(o.UsUpperOpticalPointSize)
	return nil
}
