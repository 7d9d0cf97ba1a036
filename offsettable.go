package truetype

import "sort"

// TableRecord is one entry of the sfnt table directory: the identity,
// checksum and byte range of a single table within the font file.
type TableRecord struct {
	Tag      Tag
	CheckSum uint32
	Offset   uint32
	Length   uint32
}

func (r *TableRecord) readTape(t *Tape) error {
	if err := t.Require("directory", 16); err != nil {
		return err
	}
	tag, err := Take[Tag](t)
	if err != nil {
		return err
	}
	r.Tag = tag
	r.CheckSum = t.TakeU32()
	r.Offset = t.TakeU32()
	r.Length = t.TakeU32()
	return nil
}

func (r *TableRecord) writeTape(w *WTape) error {
	if err := Give(w, &r.Tag); err != nil {
		return err
	}
	w.GiveU32(r.CheckSum)
	w.GiveU32(r.Offset)
	w.GiveU32(r.Length)
	return nil
}

// OffsetTable is the sfnt header: a version tag followed by the table
// directory. NumTables, SearchRange, EntrySelector and RangeShift are
// derived from len(Records) rather than stored redundantly.
type OffsetTable struct {
	Version Tag
	Records []TableRecord
}

func (o *OffsetTable) readTape(t *Tape) error {
	if err := t.Require("offset table", 12); err != nil {
		return err
	}
	version, err := Take[Tag](t)
	if err != nil {
		return err
	}
	o.Version = version
	switch o.Version {
	case TagTrueType, TagOpenType, TagPostScriptTrueType, TagOldPostScript:
	default:
		return errorf("offset table", "unsupported version %s", o.Version)
	}
	numTables := t.TakeU16()
	t.TakeU16() // searchRange
	t.TakeU16() // entrySelector
	t.TakeU16() // rangeShift
	records, err := TakeVec[TableRecord](t, int(numTables))
	if err != nil {
		return err
	}
	o.Records = records
	return nil
}

func (o *OffsetTable) writeTape(w *WTape) error {
	if err := Give(w, &o.Version); err != nil {
		return err
	}
	n := uint16(len(o.Records))
	w.GiveU16(n)
	searchRange, entrySelector, rangeShift := directorySearchParams(n)
	w.GiveU16(searchRange)
	w.GiveU16(entrySelector)
	w.GiveU16(rangeShift)
	for i := range o.Records {
		if err := Give(w, &o.Records[i]); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the table record for tag and whether it was present.
func (o *OffsetTable) Find(tag Tag) (TableRecord, bool) {
	for _, r := range o.Records {
		if r.Tag == tag {
			return r, true
		}
	}
	return TableRecord{}, false
}

// Sorted returns the table records ordered by tag, the order table
// directories are conventionally written in (and the order checksum
// recomputation iterates over).
func (o *OffsetTable) Sorted() []TableRecord {
	out := make([]TableRecord, len(o.Records))
	copy(out, o.Records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Tag.Uint32() < out[j].Tag.Uint32()
	})
	return out
}

// directorySearchParams computes the binary-search helper fields that
// accompany numTables in the offset table header.
func directorySearchParams(numTables uint16) (searchRange, entrySelector, rangeShift uint16) {
	entries := uint16(1)
	selector := uint16(0)
	for entries*2 <= numTables {
		entries *= 2
		selector++
	}
	searchRange = entries * 16
	entrySelector = selector
	rangeShift = numTables*16 - searchRange
	return
}

// tableChecksum sums a table's data as big-endian uint32 words, padding the
// final partial word with zero bytes, per the sfnt checksum algorithm. The
// head table's checksum is computed with its checkSumAdjustment field
// treated as zero; callers pass the raw table bytes already adjusted.
func tableChecksum(data []byte) uint32 {
	var sum uint32
	n := len(data)
	for i := 0; i < n; i += 4 {
		var word uint32
		for j := 0; j < 4; j++ {
			word <<= 8
			if i+j < n {
				word |= uint32(data[i+j])
			}
		}
		sum += word
	}
	return sum
}

// fontChecksumAdjustment computes the head table's checkSumAdjustment: the
// magic constant 0xB1B0AFBA minus the checksum of the whole file (with the
// head table's own checkSumAdjustment field treated as zero while summing).
func fontChecksumAdjustment(fileChecksum uint32) uint32 {
	return 0xB1B0AFBA - fileChecksum
}
