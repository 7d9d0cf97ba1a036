package truetype

import "sort"

// CmapEncodingRecord identifies one subtable within the cmap table by the
// (platform, encoding) pair that selects which character set it maps.
type CmapEncodingRecord struct {
	PlatformID uint16
	EncodingID uint16
	Offset     uint32
}

func (r *CmapEncodingRecord) readTape(t *Tape) error {
	if err := t.Require("cmap", 8); err != nil {
		return err
	}
	r.PlatformID = t.TakeU16()
	r.EncodingID = t.TakeU16()
	r.Offset = t.TakeU32()
	return nil
}

func (r *CmapEncodingRecord) writeTape(w *WTape) error {
	w.GiveU16(r.PlatformID)
	w.GiveU16(r.EncodingID)
	w.GiveU32(r.Offset)
	return nil
}

// CmapSubtable is one decoded character-to-glyph mapping, tagged with the
// format it was encoded in and the (platform, encoding) it was found under.
type CmapSubtable struct {
	PlatformID uint16
	EncodingID uint16
	Format     uint16

	Format0  *Cmap0
	Format4  *Cmap4
	Format6  *Cmap6
	Format12 *Cmap12
	Format14 *Cmap14
}

// Lookup maps a Unicode code point to a glyph id, returning false if the
// subtable has no mapping for it.
func (s *CmapSubtable) Lookup(r rune) (GlyphID, bool) {
	switch {
	case s.Format0 != nil:
		return s.Format0.Lookup(r)
	case s.Format4 != nil:
		return s.Format4.Lookup(r)
	case s.Format6 != nil:
		return s.Format6.Lookup(r)
	case s.Format12 != nil:
		return s.Format12.Lookup(r)
	}
	return 0, false
}

// Cmap is the character-to-glyph mapping table ("cmap"): a version header
// followed by one encoding record and subtable per supported platform.
type Cmap struct {
	Version   uint16
	Subtables []CmapSubtable
}

// writeTape re-encodes the table, deduplicating identical subtables that
// share a byte encoding the way real font builders do (two platforms often
// point at the same format 4 data).
func (c *Cmap) writeTape(w *WTape) error {
	w.GiveU16(c.Version)
	w.GiveU16(uint16(len(c.Subtables)))

	headerLen := uint32(4 + 8*len(c.Subtables))
	offsets := make([]uint32, len(c.Subtables))
	bodies := make([][]byte, len(c.Subtables))
	seen := map[string]uint32{}
	bodyEnd := uint32(0)
	for i := range c.Subtables {
		body, err := encodeCmapSubtable(&c.Subtables[i])
		if err != nil {
			return err
		}
		bodies[i] = body
		if off, ok := seen[string(body)]; ok {
			offsets[i] = off
			continue
		}
		offsets[i] = headerLen + bodyEnd
		seen[string(body)] = offsets[i]
		bodyEnd += uint32(len(body))
	}

	for i, sub := range c.Subtables {
		w.GiveU16(sub.PlatformID)
		w.GiveU16(sub.EncodingID)
		w.GiveU32(offsets[i])
	}
	written := map[uint32]bool{}
	for i, off := range offsets {
		if written[off] {
			continue
		}
		written[off] = true
		w.GiveBytes(bodies[i])
	}
	return nil
}

func encodeCmapSubtable(sub *CmapSubtable) ([]byte, error) {
	body := NewWTape()
	switch {
	case sub.Format0 != nil:
		if err := Give(body, sub.Format0); err != nil {
			return nil, err
		}
	case sub.Format4 != nil:
		if err := Give(body, sub.Format4); err != nil {
			return nil, err
		}
	case sub.Format6 != nil:
		if err := Give(body, sub.Format6); err != nil {
			return nil, err
		}
	case sub.Format12 != nil:
		if err := Give(body, sub.Format12); err != nil {
			return nil, err
		}
	default:
		return nil, errorf("cmap", "subtable has no decoded format to re-encode")
	}
	return body.Bytes(), nil
}

func (c *Cmap) readTape(t *Tape) error {
	if err := t.Require("cmap", 4); err != nil {
		return err
	}
	base := t.Position()
	c.Version = t.TakeU16()
	numTables := t.TakeU16()
	records, err := TakeVec[CmapEncodingRecord](t, int(numTables))
	if err != nil {
		return err
	}
	subtables := make([]CmapSubtable, 0, len(records))
	for _, r := range records {
		sub, err := c.readSubtable(t, base, r)
		if err != nil {
			return err
		}
		subtables = append(subtables, sub)
	}
	c.Subtables = subtables
	return nil
}

func (c *Cmap) readSubtable(t *Tape, base uint32, r CmapEncodingRecord) (CmapSubtable, error) {
	sub := CmapSubtable{PlatformID: r.PlatformID, EncodingID: r.EncodingID}
	err := t.Stay(func(t *Tape) error {
		t.Jump(base + r.Offset)
		if err := t.Require("cmap", 2); err != nil {
			return err
		}
		format := t.TakeU16()
		sub.Format = format
		t.Jump(base + r.Offset)
		switch format {
		case 0:
			v, err := Take[Cmap0](t)
			if err != nil {
				return err
			}
			sub.Format0 = &v
		case 4:
			v, err := Take[Cmap4](t)
			if err != nil {
				return err
			}
			sub.Format4 = &v
		case 6:
			v, err := Take[Cmap6](t)
			if err != nil {
				return err
			}
			sub.Format6 = &v
		case 12:
			v, err := Take[Cmap12](t)
			if err != nil {
				return err
			}
			sub.Format12 = &v
		case 14:
			v, err := Take[Cmap14](t)
			if err != nil {
				return err
			}
			sub.Format14 = &v
		default:
			return errorf("cmap", "unsupported subtable format %d", format)
		}
		return nil
	})
	return sub, err
}

// Cmap0 is format 0: a flat 256-entry byte-encoding table, the original
// Macintosh single-byte character map.
type Cmap0 struct {
	Language uint16
	GlyphIDs [256]uint8
}

func (c *Cmap0) readTape(t *Tape) error {
	if err := t.Require("cmap format 0", 262); err != nil {
		return err
	}
	t.TakeU16() // format
	t.TakeU16() // length
	c.Language = t.TakeU16()
	copy(c.GlyphIDs[:], t.TakeBytes(256))
	return nil
}

func (c *Cmap0) writeTape(w *WTape) error {
	w.GiveU16(0)
	w.GiveU16(262)
	w.GiveU16(c.Language)
	w.GiveBytes(c.GlyphIDs[:])
	return nil
}

func (c *Cmap0) Lookup(r rune) (GlyphID, bool) {
	if r < 0 || r > 255 {
		return 0, false
	}
	g := c.GlyphIDs[r]
	return GlyphID(g), g != 0
}

// Cmap4Segment is one contiguous run of code points mapped by format 4.
type Cmap4Segment struct {
	EndCode       uint16
	StartCode     uint16
	IDDelta       int16
	IDRangeOffset uint16

	// GlyphIDArray holds the glyph-index array slice this segment reads
	// from when IDRangeOffset is non-zero. It is filled in after the full
	// array has been read, since segments address it relative to their
	// own position in the subtable.
	GlyphIDArray []uint16
	indexInArray int
}

// Cmap4 is format 4: the classic segmented Windows BMP mapping, built from
// sorted, non-overlapping code-point ranges.
type Cmap4 struct {
	Language uint16
	Segments []Cmap4Segment
}

func (c *Cmap4) readTape(t *Tape) error {
	if err := t.Require("cmap format 4", 14); err != nil {
		return err
	}
	t.TakeU16() // format
	t.TakeU16() // length
	c.Language = t.TakeU16()
	segCountX2 := t.TakeU16()
	segCount := int(segCountX2 / 2)
	t.TakeU16() // searchRange
	t.TakeU16() // entrySelector
	t.TakeU16() // rangeShift

	if err := t.Require("cmap format 4", uint32(segCount*2)); err != nil {
		return err
	}
	endCodes := make([]uint16, segCount)
	for i := range endCodes {
		endCodes[i] = t.TakeU16()
	}
	t.TakeU16() // reservedPad
	startCodes := make([]uint16, segCount)
	for i := range startCodes {
		startCodes[i] = t.TakeU16()
	}
	idDeltas := make([]int16, segCount)
	for i := range idDeltas {
		idDeltas[i] = t.TakeI16()
	}
	idRangeOffsets := make([]uint16, segCount)
	for i := range idRangeOffsets {
		idRangeOffsets[i] = t.TakeU16()
	}

	// glyphIdCount isn't stored directly; per spec it is derived from the
	// maximum index any segment's idRangeOffset addresses, which is reached
	// at that segment's own endCode (original_source's glyph_id_count()).
	glyphIDCount := 0
	for i := 0; i < segCount; i++ {
		if idRangeOffsets[i] == 0 {
			continue
		}
		index := int(idRangeOffsets[i])/2 + (int(endCodes[i]) - int(startCodes[i])) - (segCount - i)
		if index+1 > glyphIDCount {
			glyphIDCount = index + 1
		}
	}
	if err := t.Require("cmap format 4", uint32(glyphIDCount*2)); err != nil {
		return err
	}
	glyphIDArray := make([]uint16, glyphIDCount)
	for i := range glyphIDArray {
		glyphIDArray[i] = t.TakeU16()
	}

	segments := make([]Cmap4Segment, segCount)
	for i := 0; i < segCount; i++ {
		segments[i] = Cmap4Segment{
			EndCode:       endCodes[i],
			StartCode:     startCodes[i],
			IDDelta:       idDeltas[i],
			IDRangeOffset: idRangeOffsets[i],
			GlyphIDArray:  glyphIDArray,
			indexInArray:  i,
		}
	}
	c.Segments = segments
	return nil
}

func (c *Cmap4) writeTape(w *WTape) error {
	segCount := len(c.Segments)
	entries, entrySelector := uint16(1), uint16(0)
	for entries*2 <= uint16(segCount) {
		entries *= 2
		entrySelector++
	}
	searchRange := entries * 2
	rangeShift := uint16(segCount)*2 - searchRange

	var glyphIDArray []uint16
	if segCount > 0 {
		glyphIDArray = c.Segments[0].GlyphIDArray
	}

	length := 16 + segCount*8 + len(glyphIDArray)*2
	w.GiveU16(4)
	w.GiveU16(uint16(length))
	w.GiveU16(c.Language)
	w.GiveU16(uint16(segCount * 2))
	w.GiveU16(searchRange)
	w.GiveU16(entrySelector)
	w.GiveU16(rangeShift)
	for _, s := range c.Segments {
		w.GiveU16(s.EndCode)
	}
	w.GiveU16(0)
	for _, s := range c.Segments {
		w.GiveU16(s.StartCode)
	}
	for _, s := range c.Segments {
		w.GiveI16(s.IDDelta)
	}
	for _, s := range c.Segments {
		w.GiveU16(s.IDRangeOffset)
	}
	for _, g := range glyphIDArray {
		w.GiveU16(g)
	}
	return nil
}

// Lookup implements the format 4 mapping formula: for the segment whose
// [StartCode, EndCode] contains r, either add IDDelta directly to r, or, if
// IDRangeOffset is non-zero, index into the trailing glyph array relative
// to the segment's own position.
func (c *Cmap4) Lookup(r rune) (GlyphID, bool) {
	if r < 0 || r > 0xFFFF {
		return 0, false
	}
	code := uint16(r)
	i := sort.Search(len(c.Segments), func(i int) bool {
		return c.Segments[i].EndCode >= code
	})
	if i == len(c.Segments) {
		return 0, false
	}
	seg := c.Segments[i]
	if code < seg.StartCode {
		return 0, false
	}
	if seg.IDRangeOffset == 0 {
		return GlyphID(uint16(int32(code) + int32(seg.IDDelta))), true
	}
	offset := int(seg.IDRangeOffset)/2 + (int(code) - int(seg.StartCode)) - (len(c.Segments) - seg.indexInArray)
	if offset < 0 || offset >= len(seg.GlyphIDArray) {
		return 0, false
	}
	g := seg.GlyphIDArray[offset]
	if g == 0 {
		return 0, false
	}
	return GlyphID(g), true
}

// Cmap6 is format 6: a dense trimmed mapping table for a single contiguous
// range of code points, the common case for small non-Latin character sets.
type Cmap6 struct {
	Language  uint16
	FirstCode uint16
	GlyphIDs  []uint16
}

func (c *Cmap6) readTape(t *Tape) error {
	if err := t.Require("cmap format 6", 10); err != nil {
		return err
	}
	t.TakeU16() // format
	t.TakeU16() // length
	c.Language = t.TakeU16()
	c.FirstCode = t.TakeU16()
	entryCount := t.TakeU16()
	ids := make([]uint16, entryCount)
	for i := range ids {
		ids[i] = t.TakeU16()
	}
	c.GlyphIDs = ids
	return nil
}

func (c *Cmap6) writeTape(w *WTape) error {
	w.GiveU16(6)
	w.GiveU16(uint16(10 + len(c.GlyphIDs)*2))
	w.GiveU16(c.Language)
	w.GiveU16(c.FirstCode)
	w.GiveU16(uint16(len(c.GlyphIDs)))
	for _, g := range c.GlyphIDs {
		w.GiveU16(g)
	}
	return nil
}

func (c *Cmap6) Lookup(r rune) (GlyphID, bool) {
	if r < rune(c.FirstCode) {
		return 0, false
	}
	i := int(r) - int(c.FirstCode)
	if i < 0 || i >= len(c.GlyphIDs) {
		return 0, false
	}
	g := c.GlyphIDs[i]
	return GlyphID(g), g != 0
}

// Cmap12Group is one contiguous run of code points sharing a linear glyph
// id progression, format 12's segmented coverage unit.
type Cmap12Group struct {
	StartCharCode uint32
	EndCharCode   uint32
	StartGlyphID  uint32
}

// Cmap12 is format 12: the segmented coverage mapping used for character
// sets beyond the Basic Multilingual Plane (32-bit code points).
type Cmap12 struct {
	Language uint32
	Groups   []Cmap12Group
}

func (c *Cmap12) readTape(t *Tape) error {
	if err := t.Require("cmap format 12", 16); err != nil {
		return err
	}
	t.TakeU16() // format
	t.TakeU16() // reserved
	t.TakeU32() // length
	c.Language = t.TakeU32()
	numGroups := t.TakeU32()
	if err := t.Require("cmap format 12", numGroups*12); err != nil {
		return err
	}
	groups := make([]Cmap12Group, numGroups)
	for i := range groups {
		groups[i] = Cmap12Group{
			StartCharCode: t.TakeU32(),
			EndCharCode:   t.TakeU32(),
			StartGlyphID:  t.TakeU32(),
		}
	}
	c.Groups = groups
	return nil
}

func (c *Cmap12) writeTape(w *WTape) error {
	w.GiveU16(12)
	w.GiveU16(0) // reserved
	w.GiveU32(uint32(16 + len(c.Groups)*12))
	w.GiveU32(c.Language)
	w.GiveU32(uint32(len(c.Groups)))
	for _, g := range c.Groups {
		w.GiveU32(g.StartCharCode)
		w.GiveU32(g.EndCharCode)
		w.GiveU32(g.StartGlyphID)
	}
	return nil
}

func (c *Cmap12) Lookup(r rune) (GlyphID, bool) {
	if r < 0 {
		return 0, false
	}
	code := uint32(r)
	i := sort.Search(len(c.Groups), func(i int) bool {
		return c.Groups[i].EndCharCode >= code
	})
	if i == len(c.Groups) || code < c.Groups[i].StartCharCode {
		return 0, false
	}
	g := c.Groups[i]
	return GlyphID(g.StartGlyphID + (code - g.StartCharCode)), true
}

// Cmap14VarSelectorRecord links one Unicode variation selector to its
// default and non-default glyph mappings.
type Cmap14VarSelectorRecord struct {
	VarSelector         uint32
	DefaultUVSOffset    uint32
	NonDefaultUVSOffset uint32
}

// Cmap14 is format 14: the Unicode variation sequence table, mapping
// (base character, variation selector) pairs to glyph ids that differ from
// the character's default glyph.
type Cmap14 struct {
	VarSelectors []Cmap14VarSelectorRecord
}

func (c *Cmap14) readTape(t *Tape) error {
	if err := t.Require("cmap format 14", 10); err != nil {
		return err
	}
	t.TakeU16() // format
	t.TakeU32() // length
	numRecords := t.TakeU32()
	if err := t.Require("cmap format 14", numRecords*11); err != nil {
		return err
	}
	records := make([]Cmap14VarSelectorRecord, numRecords)
	for i := range records {
		records[i] = Cmap14VarSelectorRecord{
			VarSelector:         t.TakeU24(),
			DefaultUVSOffset:    t.TakeU32(),
			NonDefaultUVSOffset: t.TakeU32(),
		}
	}
	c.VarSelectors = records
	return nil
}
