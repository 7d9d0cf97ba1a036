package truetype

// LongHorMetric pairs a glyph's advance width with its left side bearing.
type LongHorMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

func (m *LongHorMetric) readTape(t *Tape) error {
	if err := t.Require("hmtx", 4); err != nil {
		return err
	}
	m.AdvanceWidth = t.TakeU16()
	m.LeftSideBearing = t.TakeI16()
	return nil
}

func (m *LongHorMetric) writeTape(w *WTape) error {
	w.GiveU16(m.AdvanceWidth)
	w.GiveI16(m.LeftSideBearing)
	return nil
}

// HmtxParams carries the cross-table counts hmtx needs to know how many
// full (advance, bearing) pairs precede the trailing bearing-only array.
type HmtxParams struct {
	NumberOfHMetrics int
	NumGlyphs        int
}

// Hmtx is the horizontal metrics table ("hmtx"): one LongHorMetric per
// monospaced-width run, followed by a left-side-bearing-only entry for
// every remaining glyph that shares the final advance width.
type Hmtx struct {
	HMetrics        []LongHorMetric
	LeftSideBearing []int16
}

func (h *Hmtx) readTapeGiven(t *Tape, p HmtxParams) error {
	if p.NumberOfHMetrics < 0 || p.NumGlyphs < p.NumberOfHMetrics {
		return errorf("hmtx", "inconsistent hMetrics/numGlyphs counts")
	}
	hMetrics, err := TakeVec[LongHorMetric](t, p.NumberOfHMetrics)
	if err != nil {
		return err
	}
	h.HMetrics = hMetrics
	remaining := p.NumGlyphs - p.NumberOfHMetrics
	if remaining > 0 {
		if err := t.Require("hmtx", uint32(remaining*2)); err != nil {
			return err
		}
		lsb := make([]int16, remaining)
		for i := range lsb {
			lsb[i] = t.TakeI16()
		}
		h.LeftSideBearing = lsb
	}
	return nil
}

func (h *Hmtx) writeTape(w *WTape) error {
	for i := range h.HMetrics {
		if err := Give(w, &h.HMetrics[i]); err != nil {
			return err
		}
	}
	for _, lsb := range h.LeftSideBearing {
		w.GiveI16(lsb)
	}
	return nil
}

// AdvanceWidth returns the advance width of glyph id, following the
// convention that glyphs beyond NumberOfHMetrics repeat the final advance.
func (h *Hmtx) AdvanceWidth(id GlyphID) uint16 {
	if len(h.HMetrics) == 0 {
		return 0
	}
	i := int(id)
	if i < len(h.HMetrics) {
		return h.HMetrics[i].AdvanceWidth
	}
	return h.HMetrics[len(h.HMetrics)-1].AdvanceWidth
}

// LeftSideBearingFor returns the left side bearing of glyph id, clamping at
// the last entry of the trailing bearing-only array for ids beyond it.
func (h *Hmtx) LeftSideBearingFor(id GlyphID) int16 {
	i := int(id)
	if i < len(h.HMetrics) {
		return h.HMetrics[i].LeftSideBearing
	}
	if len(h.LeftSideBearing) == 0 {
		return 0
	}
	j := i - len(h.HMetrics)
	if j >= len(h.LeftSideBearing) {
		j = len(h.LeftSideBearing) - 1
	}
	return h.LeftSideBearing[j]
}
