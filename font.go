package truetype

// Well-known table tags this package knows how to decode and encode.
var (
	tagHead = mustTag("head")
	tagHhea = mustTag("hhea")
	tagMaxp = mustTag("maxp")
	tagHmtx = mustTag("hmtx")
	tagName = mustTag("name")
	tagPost = mustTag("post")
	tagOS2  = mustTag("OS/2")
	tagCmap = mustTag("cmap")
	tagLoca = mustTag("loca")
	tagGlyf = mustTag("glyf")
)

// Font is a decoded sfnt font: the table directory plus whichever of the
// recognized tables the font carried. Tables this package does not
// understand (CFF, GPOS/GSUB, bytecode hinting programs, and so on) are
// left out of the decoded view, but their directory records survive in
// OffsetTable so a re-encoded font still lists them, backed by their
// original bytes.
type Font struct {
	OffsetTable OffsetTable

	Head *Head
	Hhea *Hhea
	Maxp *Maxp
	Hmtx *Hmtx
	OS2  *OS2
	Post *Post
	Cmap *Cmap
	Name *Name
	Loca *Loca
	Glyf []Glyph

	raw map[Tag][]byte
}

// Parse decodes a font from its raw bytes under strict validation.
func Parse(b []byte) (*Font, error) {
	return ParseLenient(b, nil)
}

// ParseLenient decodes a font from its raw bytes, relaxing the checks l
// opts into.
func ParseLenient(b []byte, l *Lenience) (*Font, error) {
	dt := NewTape(b).WithLenience(l)
	offsetTable, err := Take[OffsetTable](dt)
	if err != nil {
		return nil, err
	}

	f := &Font{OffsetTable: offsetTable, raw: map[Tag][]byte{}}
	for _, rec := range offsetTable.Records {
		data, err := sliceTable(b, rec)
		if err != nil {
			return nil, err
		}
		f.raw[rec.Tag] = data
	}

	if rec, ok := offsetTable.Find(tagHead); ok {
		head, err := Take[Head](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.Head = &head
	}
	if rec, ok := offsetTable.Find(tagHhea); ok {
		hhea, err := Take[Hhea](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.Hhea = &hhea
	}
	if rec, ok := offsetTable.Find(tagMaxp); ok {
		maxp, err := Take[Maxp](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.Maxp = &maxp
	}
	if rec, ok := offsetTable.Find(tagOS2); ok {
		os2, err := Take[OS2](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.OS2 = &os2
	}
	if rec, ok := offsetTable.Find(tagPost); ok {
		post, err := Take[Post](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.Post = &post
	}
	if rec, ok := offsetTable.Find(tagCmap); ok {
		cmap, err := Take[Cmap](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.Cmap = &cmap
	}
	if rec, ok := offsetTable.Find(tagName); ok {
		name, err := Take[Name](NewTape(f.raw[rec.Tag]).WithLenience(l))
		if err != nil {
			return nil, err
		}
		f.Name = &name
	}

	if f.Head != nil && f.Maxp != nil {
		if rec, ok := offsetTable.Find(tagLoca); ok {
			params := LocaParams{Format: f.Head.IndexToLocFormat, NumGlyphs: int(f.Maxp.NumGlyphs)}
			loca, err := TakeGiven[Loca](NewTape(f.raw[rec.Tag]).WithLenience(l), params)
			if err != nil {
				return nil, err
			}
			f.Loca = &loca

			if glyfRec, ok := offsetTable.Find(tagGlyf); ok {
				glyphs, err := decodeGlyphs(f.raw[glyfRec.Tag], &loca, l)
				if err != nil {
					return nil, err
				}
				f.Glyf = glyphs
			}
		}
	}

	if f.Hhea != nil && f.Maxp != nil {
		if rec, ok := offsetTable.Find(tagHmtx); ok {
			params := HmtxParams{NumberOfHMetrics: int(f.Hhea.NumberOfHMetrics), NumGlyphs: int(f.Maxp.NumGlyphs)}
			hmtx, err := TakeGiven[Hmtx](NewTape(f.raw[rec.Tag]).WithLenience(l), params)
			if err != nil {
				return nil, err
			}
			f.Hmtx = &hmtx
		}
	}

	return f, nil
}

func sliceTable(b []byte, rec TableRecord) ([]byte, error) {
	start := int(rec.Offset)
	end := start + int(rec.Length)
	if start < 0 || end < start || end > len(b) {
		return nil, errorf(rec.Tag.String(), "table extends past end of file")
	}
	return b[start:end], nil
}

func decodeGlyphs(glyf []byte, loca *Loca, l *Lenience) ([]Glyph, error) {
	n := len(loca.Offsets) - 1
	glyphs := make([]Glyph, n)
	for id := 0; id < n; id++ {
		start, end, ok := loca.Range(GlyphID(id))
		if !ok {
			continue
		}
		if end > uint32(len(glyf)) {
			return nil, errorf("glyf", "glyph %d extends past end of table", id)
		}
		glyph, err := TakeGiven[Glyph](NewTape(glyf[start:end]).WithLenience(l), l)
		if err != nil {
			return nil, wrapf("glyf", err, "glyph %d", id)
		}
		glyphs[id] = glyph
	}
	return glyphs, nil
}

// Glyph returns the decoded outline of glyph id, or false if the font
// carries no glyf table or id is out of range.
func (f *Font) Glyph(id GlyphID) (Glyph, bool) {
	i := int(id)
	if i < 0 || i >= len(f.Glyf) {
		return Glyph{}, false
	}
	return f.Glyf[i], true
}

// Lookup maps a Unicode code point to a glyph id using the first cmap
// subtable willing to answer it, preferring platform 3 (Windows) subtables
// over those of the other platforms.
func (f *Font) Lookup(r rune) (GlyphID, bool) {
	if f.Cmap == nil {
		return 0, false
	}
	for _, windows := range []bool{true, false} {
		for i := range f.Cmap.Subtables {
			sub := &f.Cmap.Subtables[i]
			if (sub.PlatformID == PlatformWindows) != windows {
				continue
			}
			if id, ok := sub.Lookup(r); ok {
				return id, true
			}
		}
	}
	return 0, false
}

// RawTable returns the original bytes of table tag as read from the font,
// for tables this package does not decode (or simply to inspect the bytes
// a decoded table came from).
func (f *Font) RawTable(tag Tag) ([]byte, bool) {
	b, ok := f.raw[tag]
	return b, ok
}

// VerifyChecksums recomputes every table's checksum (and the head table's
// checkSumAdjustment) and reports the first mismatch found, or nil if the
// font's directory is internally consistent.
func (f *Font) VerifyChecksums(fontBytes []byte) error {
	for _, rec := range f.OffsetTable.Records {
		data, ok := f.raw[rec.Tag]
		if !ok {
			continue
		}
		sum := data
		if rec.Tag == tagHead && len(data) >= 12 {
			patched := make([]byte, len(data))
			copy(patched, data)
			patched[8], patched[9], patched[10], patched[11] = 0, 0, 0, 0
			sum = patched
		}
		if got := tableChecksum(sum); got != rec.CheckSum {
			return errorf(rec.Tag.String(), "checksum mismatch: table has 0x%08X, directory records 0x%08X", got, rec.CheckSum)
		}
	}
	if f.Head == nil {
		return nil
	}
	headRec, ok := f.OffsetTable.Find(tagHead)
	if !ok {
		return nil
	}
	patched := make([]byte, len(fontBytes))
	copy(patched, fontBytes)
	adjOffset := int(headRec.Offset) + 8
	if adjOffset+4 > len(patched) {
		return errorf("head", "checkSumAdjustment field extends past end of file")
	}
	patched[adjOffset], patched[adjOffset+1], patched[adjOffset+2], patched[adjOffset+3] = 0, 0, 0, 0
	want := fontChecksumAdjustment(tableChecksum(patched))
	if want != f.Head.CheckSumAdjustment {
		return errorf("head", "checkSumAdjustment mismatch: computed 0x%08X, stored 0x%08X", want, f.Head.CheckSumAdjustment)
	}
	return nil
}

// Encode reassembles the font into sfnt bytes. Tables this package decoded
// are re-encoded from their current (possibly modified) in-memory form;
// every other table is carried through byte-for-byte from the source font.
// The table directory is rewritten in tag order, and head's
// checkSumAdjustment is recomputed over the result.
func (f *Font) Encode() ([]byte, error) {
	bodies := map[Tag][]byte{}
	for tag, data := range f.raw {
		bodies[tag] = data
	}

	encode := func(tag Tag, v writable) error {
		wt := NewWTape()
		if err := v.writeTape(wt); err != nil {
			return err
		}
		bodies[tag] = wt.Bytes()
		return nil
	}

	if f.Head != nil {
		if err := encode(tagHead, f.Head); err != nil {
			return nil, err
		}
	}
	if f.Hhea != nil {
		if err := encode(tagHhea, f.Hhea); err != nil {
			return nil, err
		}
	}
	if f.Maxp != nil {
		if err := encode(tagMaxp, f.Maxp); err != nil {
			return nil, err
		}
	}
	if f.OS2 != nil {
		if err := encode(tagOS2, f.OS2); err != nil {
			return nil, err
		}
	}
	if f.Post != nil {
		if err := encode(tagPost, f.Post); err != nil {
			return nil, err
		}
	}
	if f.Cmap != nil {
		if err := encode(tagCmap, f.Cmap); err != nil {
			return nil, err
		}
	}
	if f.Name != nil {
		if err := encode(tagName, f.Name); err != nil {
			return nil, err
		}
	}
	if f.Hmtx != nil {
		if err := encode(tagHmtx, f.Hmtx); err != nil {
			return nil, err
		}
	}
	if f.Glyf != nil && f.Head != nil {
		glyfBytes, offsets, err := encodeGlyphs(f.Glyf)
		if err != nil {
			return nil, err
		}
		bodies[tagGlyf] = glyfBytes
		loca := Loca{Offsets: offsets}
		wt := NewWTape()
		if err := loca.writeTapeGiven(wt, f.Head.IndexToLocFormat); err != nil {
			return nil, err
		}
		bodies[tagLoca] = wt.Bytes()
	}

	tags := make([]Tag, 0, len(bodies))
	for tag := range bodies {
		tags = append(tags, tag)
	}
	records := make([]TableRecord, len(tags))
	for i, tag := range tags {
		records[i] = TableRecord{Tag: tag}
	}
	offsetTable := OffsetTable{Version: f.OffsetTable.Version, Records: records}

	headerLen := uint32(12 + 16*len(records))
	offset := headerLen
	sorted := offsetTable.Sorted()
	for i := range sorted {
		data := bodies[sorted[i].Tag]
		sorted[i].Offset = offset
		sorted[i].Length = uint32(len(data))
		sum := data
		if sorted[i].Tag == tagHead && len(data) >= 12 {
			sum = append([]byte(nil), data...)
			sum[8], sum[9], sum[10], sum[11] = 0, 0, 0, 0
		}
		sorted[i].CheckSum = tableChecksum(sum)
		padded := (len(data) + 3) &^ 3
		offset += uint32(padded)
	}
	offsetTable.Records = sorted

	wt := NewWTape()
	if err := Give(wt, &offsetTable); err != nil {
		return nil, err
	}
	for _, rec := range sorted {
		data := bodies[rec.Tag]
		wt.GiveBytes(data)
		if pad := (4 - len(data)%4) % 4; pad > 0 {
			wt.GiveBytes(make([]byte, pad))
		}
	}
	out := wt.Bytes()

	if f.Head != nil {
		if headRec, ok := offsetTable.Find(tagHead); ok {
			adjOffset := int(headRec.Offset) + 8
			if adjOffset+4 <= len(out) {
				out[adjOffset], out[adjOffset+1], out[adjOffset+2], out[adjOffset+3] = 0, 0, 0, 0
				adjustment := fontChecksumAdjustment(tableChecksum(out))
				out[adjOffset] = byte(adjustment >> 24)
				out[adjOffset+1] = byte(adjustment >> 16)
				out[adjOffset+2] = byte(adjustment >> 8)
				out[adjOffset+3] = byte(adjustment)
			}
		}
	}
	return out, nil
}

// encodeGlyphs serializes glyphs in order, padding each entry to an even
// byte boundary (loca offsets are always word-aligned), and returns both
// the glyf bytes and the matching loca offset array.
func encodeGlyphs(glyphs []Glyph) ([]byte, []uint32, error) {
	wt := NewWTape()
	offsets := make([]uint32, len(glyphs)+1)
	for i := range glyphs {
		offsets[i] = wt.Len()
		if glyphs[i].IsEmpty() {
			continue
		}
		if err := Give(wt, &glyphs[i]); err != nil {
			return nil, nil, err
		}
		if wt.Len()%2 != 0 {
			wt.GiveU8(0)
		}
	}
	offsets[len(glyphs)] = wt.Len()
	return wt.Bytes(), offsets, nil
}
