package truetype

// Hhea is the horizontal header table ("hhea"): line-layout metrics for
// horizontal text, plus the count of long horizontal metric entries that
// hmtx uses to decide where its trailing left-side-bearing-only array
// begins.
type Hhea struct {
	MajorVersion        uint16
	MinorVersion        uint16
	Ascender            int16
	Descender           int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	MetricDataFormat    int16
	NumberOfHMetrics    uint16
}

func (h *Hhea) readTape(t *Tape) error {
	if err := t.Require("hhea", 36); err != nil {
		return err
	}
	h.MajorVersion = t.TakeU16()
	h.MinorVersion = t.TakeU16()
	if h.MajorVersion != 1 || h.MinorVersion != 0 {
		return errorf("hhea", "unsupported version %d.%d", h.MajorVersion, h.MinorVersion)
	}
	h.Ascender = t.TakeI16()
	h.Descender = t.TakeI16()
	h.LineGap = t.TakeI16()
	h.AdvanceWidthMax = t.TakeU16()
	h.MinLeftSideBearing = t.TakeI16()
	h.MinRightSideBearing = t.TakeI16()
	h.XMaxExtent = t.TakeI16()
	h.CaretSlopeRise = t.TakeI16()
	h.CaretSlopeRun = t.TakeI16()
	h.CaretOffset = t.TakeI16()
	t.TakeI16() // reserved
	t.TakeI16() // reserved
	t.TakeI16() // reserved
	t.TakeI16() // reserved
	h.MetricDataFormat = t.TakeI16()
	h.NumberOfHMetrics = t.TakeU16()
	return nil
}

func (h *Hhea) writeTape(w *WTape) error {
	w.GiveU16(h.MajorVersion)
	w.GiveU16(h.MinorVersion)
	w.GiveI16(h.Ascender)
	w.GiveI16(h.Descender)
	w.GiveI16(h.LineGap)
	w.GiveU16(h.AdvanceWidthMax)
	w.GiveI16(h.MinLeftSideBearing)
	w.GiveI16(h.MinRightSideBearing)
	w.GiveI16(h.XMaxExtent)
	w.GiveI16(h.CaretSlopeRise)
	w.GiveI16(h.CaretSlopeRun)
	w.GiveI16(h.CaretOffset)
	w.GiveI16(0)
	w.GiveI16(0)
	w.GiveI16(0)
	w.GiveI16(0)
	w.GiveI16(h.MetricDataFormat)
	w.GiveU16(h.NumberOfHMetrics)
	return nil
}
