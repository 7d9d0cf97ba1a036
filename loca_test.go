package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLocaShortFormatRoundTrip(t *testing.T) {
	l := Loca{Offsets: []uint32{0, 20, 20, 40}}

	wt := NewWTape()
	test.Error(t, l.writeTapeGiven(wt, LocShort))

	var got Loca
	test.Error(t, got.readTapeGiven(NewTape(wt.Bytes()), LocaParams{Format: LocShort, NumGlyphs: 3}))
	test.T(t, len(got.Offsets), 4)
	test.T(t, got.Offsets[1], uint32(20))

	start, end, ok := got.Range(0)
	test.T(t, ok, true)
	test.T(t, start, uint32(0))
	test.T(t, end, uint32(20))

	_, _, ok = got.Range(1)
	test.T(t, ok, false) // empty glyph (equal adjacent offsets)
}

func TestLocaLongFormatRoundTrip(t *testing.T) {
	l := Loca{Offsets: []uint32{0, 131072, 262144}}

	wt := NewWTape()
	test.Error(t, l.writeTapeGiven(wt, LocLong))

	var got Loca
	test.Error(t, got.readTapeGiven(NewTape(wt.Bytes()), LocaParams{Format: LocLong, NumGlyphs: 2}))
	test.T(t, got.Offsets[1], uint32(131072))
}

func TestLocaRejectsNonMonotonicOffsets(t *testing.T) {
	wt := NewWTape()
	wt.GiveU16(10)
	wt.GiveU16(2) // decreasing when doubled: 4 < 20

	var l Loca
	if err := l.readTapeGiven(NewTape(wt.Bytes()), LocaParams{Format: LocShort, NumGlyphs: 1}); err == nil {
		t.Fatal("expected non-monotonic loca offsets to be rejected")
	}
}

func TestLocaRangeOutOfBounds(t *testing.T) {
	l := Loca{Offsets: []uint32{0, 10}}
	_, _, ok := l.Range(5)
	test.T(t, ok, false)
}
