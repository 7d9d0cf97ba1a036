package truetype

// LocaParams carries the cross-table values loca needs: the offset width
// (from head.IndexToLocFormat) and the glyph count (from maxp.NumGlyphs).
type LocaParams struct {
	Format    IndexToLocFormat
	NumGlyphs int
}

// Loca is the glyph location table ("loca"): NumGlyphs+1 offsets into glyf,
// where glyph i's outline spans [Offsets[i], Offsets[i+1]). Equal adjacent
// offsets mean the glyph has no outline (e.g. the space glyph).
type Loca struct {
	Offsets []uint32
}

func (l *Loca) readTapeGiven(t *Tape, p LocaParams) error {
	if p.NumGlyphs < 0 {
		return errorf("loca", "negative numGlyphs")
	}
	n := p.NumGlyphs + 1
	offsets := make([]uint32, n)
	switch p.Format {
	case LocShort:
		if err := t.Require("loca", uint32(n*2)); err != nil {
			return err
		}
		for i := range offsets {
			offsets[i] = uint32(t.TakeU16()) * 2
		}
	case LocLong:
		if err := t.Require("loca", uint32(n*4)); err != nil {
			return err
		}
		for i := range offsets {
			offsets[i] = t.TakeU32()
		}
	default:
		return errorf("loca", "unsupported indexToLocFormat %d", p.Format)
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return errorf("loca", "offsets are not monotonically non-decreasing")
		}
	}
	l.Offsets = offsets
	return nil
}

func (l *Loca) writeTapeGiven(w *WTape, format IndexToLocFormat) error {
	switch format {
	case LocShort:
		for _, o := range l.Offsets {
			w.GiveU16(uint16(o / 2))
		}
	case LocLong:
		for _, o := range l.Offsets {
			w.GiveU32(o)
		}
	default:
		return errorf("loca", "unsupported indexToLocFormat %d", format)
	}
	return nil
}

// Range returns the byte range of glyph id's outline within glyf, and
// whether the glyph has any outline at all.
func (l *Loca) Range(id GlyphID) (start, end uint32, ok bool) {
	i := int(id)
	if i < 0 || i+1 >= len(l.Offsets) {
		return 0, 0, false
	}
	start, end = l.Offsets[i], l.Offsets[i+1]
	return start, end, end > start
}
