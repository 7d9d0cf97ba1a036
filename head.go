package truetype

// IndexToLocFormat selects the width of the offsets in the loca table.
type IndexToLocFormat int16

const (
	LocShort IndexToLocFormat = 0
	LocLong  IndexToLocFormat = 1
)

// Head is the font header table ("head"): global metrics and flags shared
// by every glyph, plus the font's overall bounding box and checksum.
type Head struct {
	MajorVersion       uint16
	MinorVersion       uint16
	FontRevision       Q32
	CheckSumAdjustment uint32
	MagicNumber        uint32
	Flags              HeadFlags
	UnitsPerEm         uint16
	Created            int64
	Modified           int64
	XMin               int16
	YMin               int16
	XMax               int16
	YMax               int16
	MacStyle           MacStyle
	LowestRecPPEM      uint16
	FontDirectionHint  int16
	IndexToLocFormat   IndexToLocFormat
	GlyphDataFormat    int16
}

const headMagicNumber = 0x5F0F3CF5

func (h *Head) readTape(t *Tape) error {
	if err := t.Require("head", 54); err != nil {
		return err
	}
	h.MajorVersion = t.TakeU16()
	h.MinorVersion = t.TakeU16()
	if h.MajorVersion != 1 || h.MinorVersion != 0 {
		if !t.Lenience().ignoreInvalidFontHeaderVersion() {
			return errorf("head", "unsupported version %d.%d", h.MajorVersion, h.MinorVersion)
		}
	}
	fontRevision, err := Take[Q32](t)
	if err != nil {
		return err
	}
	h.FontRevision = fontRevision
	h.CheckSumAdjustment = t.TakeU32()
	h.MagicNumber = t.TakeU32()
	if h.MagicNumber != headMagicNumber {
		return errorf("head", "bad magic number 0x%08X", h.MagicNumber)
	}
	flags, err := Take[HeadFlags](t)
	if err != nil {
		return err
	}
	if flags.IsInvalid() {
		return errorf("head", "flags bit 15 must be zero")
	}
	h.Flags = flags
	h.UnitsPerEm = t.TakeU16()
	h.Created = int64(t.TakeU64())
	h.Modified = int64(t.TakeU64())
	h.XMin = t.TakeI16()
	h.YMin = t.TakeI16()
	h.XMax = t.TakeI16()
	h.YMax = t.TakeI16()
	macStyle, err := Take[MacStyle](t)
	if err != nil {
		return err
	}
	if macStyle.IsInvalid() {
		return errorf("head", "macStyle has reserved bits set")
	}
	h.MacStyle = macStyle
	h.LowestRecPPEM = t.TakeU16()
	h.FontDirectionHint = t.TakeI16()
	h.IndexToLocFormat = IndexToLocFormat(t.TakeI16())
	if h.IndexToLocFormat != LocShort && h.IndexToLocFormat != LocLong {
		return errorf("head", "indexToLocFormat %d out of range", h.IndexToLocFormat)
	}
	h.GlyphDataFormat = t.TakeI16()
	return nil
}

func (h *Head) writeTape(w *WTape) error {
	w.GiveU16(h.MajorVersion)
	w.GiveU16(h.MinorVersion)
	if err := Give(w, &h.FontRevision); err != nil {
		return err
	}
	w.GiveU32(h.CheckSumAdjustment)
	w.GiveU32(h.MagicNumber)
	if err := Give(w, &h.Flags); err != nil {
		return err
	}
	w.GiveU16(h.UnitsPerEm)
	w.GiveU64(uint64(h.Created))
	w.GiveU64(uint64(h.Modified))
	w.GiveI16(h.XMin)
	w.GiveI16(h.YMin)
	w.GiveI16(h.XMax)
	w.GiveI16(h.YMax)
	if err := Give(w, &h.MacStyle); err != nil {
		return err
	}
	w.GiveU16(h.LowestRecPPEM)
	w.GiveI16(h.FontDirectionHint)
	w.GiveI16(int16(h.IndexToLocFormat))
	w.GiveI16(h.GlyphDataFormat)
	return nil
}
