package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCmap4LookupFormula(t *testing.T) {
	// Two segments: a direct-delta range, then a glyph-array-indexed range,
	// terminated by the mandatory 0xFFFF sentinel segment.
	glyphIDArray := []uint16{0, 55, 56, 0}
	c := &Cmap4{
		Segments: []Cmap4Segment{
			{StartCode: 10, EndCode: 20, IDDelta: 5, IDRangeOffset: 0, indexInArray: 0, GlyphIDArray: glyphIDArray},
			{StartCode: 30, EndCode: 32, IDDelta: 7, IDRangeOffset: 6, indexInArray: 1, GlyphIDArray: glyphIDArray},
			{StartCode: 0xFFFF, EndCode: 0xFFFF, IDDelta: 1, IDRangeOffset: 0, indexInArray: 2, GlyphIDArray: glyphIDArray},
		},
	}
	id, ok := c.Lookup(15)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(20)) // 15 + idDelta 5

	// segment 1, code 31: offset = idRangeOffset/2 + (c-start) - (segCount-i)
	//                    = 3 + 1 - (3-1) = 2 -> glyphIDArray[2] == 56, with
	//                    idDelta (7) not applied to an array-indexed lookup
	id, ok = c.Lookup(31)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(56))

	_, ok = c.Lookup(9999)
	test.T(t, ok, false)
}

func TestCmap4DoesNotSwallowTrailingSubtables(t *testing.T) {
	// format 4's glyph-id array must be bounded by glyph_id_count, not read
	// to the end of the tape, or a following subtable's bytes (here format
	// 6, with a non-zero first glyph id) would be consumed by format 4 and
	// misdecoded as part of its glyph array.
	c := &Cmap{
		Version: 0,
		Subtables: []CmapSubtable{
			{
				PlatformID: PlatformWindows, EncodingID: 1, Format: 4,
				Format4: &Cmap4{
					Segments: []Cmap4Segment{
						{StartCode: 10, EndCode: 10, IDDelta: 5, IDRangeOffset: 0},
						{StartCode: 0xFFFF, EndCode: 0xFFFF, IDDelta: 1, IDRangeOffset: 0},
					},
				},
			},
			{
				PlatformID: PlatformMacintosh, EncodingID: 0, Format: 6,
				Format6: &Cmap6{FirstCode: 50, GlyphIDs: []uint16{7, 8, 9}},
			},
		},
	}

	wt := NewWTape()
	test.Error(t, Give(wt, c))

	got, err := Take[Cmap](NewTape(wt.Bytes()))
	test.Error(t, err)
	test.T(t, len(got.Subtables), 2)

	f4 := got.Subtables[0].Format4
	if f4 == nil {
		t.Fatal("expected subtable 0 to decode as format 4")
	}
	test.T(t, len(f4.Segments[0].GlyphIDArray), 0)
	id, ok := f4.Lookup(10)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(15))

	f6 := got.Subtables[1].Format6
	if f6 == nil {
		t.Fatal("expected subtable 1 to decode as format 6")
	}
	id, ok = f6.Lookup(51)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(8))
}

func TestCmap12Lookup(t *testing.T) {
	c := &Cmap12{
		Groups: []Cmap12Group{
			{StartCharCode: 0x10000, EndCharCode: 0x10002, StartGlyphID: 500},
		},
	}
	id, ok := c.Lookup(0x10000)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(500))
	id, ok = c.Lookup(0x10002)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(502))
	_, ok = c.Lookup(0x10003)
	test.T(t, ok, false)
}

func TestCmap0RoundTrip(t *testing.T) {
	var c Cmap0
	c.Language = 0
	c.GlyphIDs[65] = 10 // 'A'

	wt := NewWTape()
	test.Error(t, Give(wt, &c))

	got, err := Take[Cmap0](NewTape(wt.Bytes()))
	test.Error(t, err)
	id, ok := got.Lookup('A')
	test.T(t, ok, true)
	test.T(t, id, GlyphID(10))
}

func TestCmap6RoundTrip(t *testing.T) {
	c := Cmap6{FirstCode: 100, GlyphIDs: []uint16{1, 2, 3}}
	wt := NewWTape()
	test.Error(t, Give(wt, &c))

	got, err := Take[Cmap6](NewTape(wt.Bytes()))
	test.Error(t, err)
	id, ok := got.Lookup(101)
	test.T(t, ok, true)
	test.T(t, id, GlyphID(2))
}
