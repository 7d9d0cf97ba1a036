package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestMaxpVersion05HasNoBounds(t *testing.T) {
	wt := NewWTape()
	wt.GiveU32(q32Maxp05)
	wt.GiveU16(42) // numGlyphs

	var m Maxp
	test.Error(t, m.readTape(NewTape(wt.Bytes())))
	test.T(t, m.NumGlyphs, uint16(42))
	test.T(t, m.IsTrueType(), false)
	test.T(t, m.MaxPoints, uint16(0))
}

func TestMaxpVersion10RoundTrip(t *testing.T) {
	m := Maxp{
		Version:              Q32{Raw: q32Maxp10},
		NumGlyphs:            7,
		MaxPoints:            100,
		MaxContours:          3,
		MaxCompositePoints:   10,
		MaxCompositeContours: 1,
		MaxZones:             2,
		MaxTwilightPoints:    5,
		MaxStorage:           8,
		MaxFunctionDefs:      4,
		MaxInstructionDefs:   1,
		MaxStackElements:     64,
		MaxSizeOfInstructions: 128,
		MaxComponentElements: 2,
		MaxComponentDepth:    1,
	}

	wt := NewWTape()
	test.Error(t, m.writeTape(wt))

	var got Maxp
	test.Error(t, got.readTape(NewTape(wt.Bytes())))
	test.T(t, got.IsTrueType(), true)
	test.T(t, got.NumGlyphs, uint16(7))
	test.T(t, got.MaxPoints, uint16(100))
	test.T(t, got.MaxComponentDepth, uint16(1))
}

func TestMaxpRejectsUnknownVersion(t *testing.T) {
	wt := NewWTape()
	wt.GiveU32(0x00020000)
	wt.GiveU16(1)

	var m Maxp
	if err := m.readTape(NewTape(wt.Bytes())); err == nil {
		t.Fatal("expected an unsupported maxp version to be rejected")
	}
}
