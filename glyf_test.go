package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSimpleGlyphRoundTrip(t *testing.T) {
	g := Glyph{
		NumContours: 1,
		XMin:        0,
		YMin:        0,
		XMax:        100,
		YMax:        100,
		Contours: []Contour{
			{
				{X: 0, Y: 0, OnCurve: true},
				{X: 100, Y: 0, OnCurve: true},
				{X: 50, Y: 100, OnCurve: false},
			},
		},
	}

	wt := NewWTape()
	test.Error(t, g.writeTape(wt))

	var got Glyph
	tp := NewTape(wt.Bytes())
	test.Error(t, got.readTapeGiven(tp, nil))

	test.T(t, got.NumContours, int16(1))
	test.T(t, len(got.Contours), 1)
	test.T(t, got.Contours[0], g.Contours[0])
	test.T(t, got.IsComposite(), false)
}

func TestCompositeGlyphRoundTrip(t *testing.T) {
	// ZenLoop glyph 72 scenario: one component, offsets, a vector scale.
	g := Glyph{
		NumContours: -1,
		Components: []Component{
			{
				GlyphIndex: 70,
				Flags:      ComponentFlags(1<<0 | 1<<1 | 1<<6), // ARGS_ARE_WORDS | ARGS_ARE_XY | WE_HAVE_AN_X_AND_Y_SCALE
				Arg1:       298,
				Arg2:       0,
				ArgsAreXY:  true,
				Vector:     [2]Q16{{Raw: -16384}, {Raw: 16384}}, // (-1.0, 1.0) in F2Dot14
			},
		},
	}

	wt := NewWTape()
	test.Error(t, g.writeTape(wt))

	var got Glyph
	tp := NewTape(wt.Bytes())
	test.Error(t, got.readTapeGiven(tp, nil))

	test.T(t, got.IsComposite(), true)
	test.T(t, len(got.Components), 1)
	test.T(t, got.Components[0].GlyphIndex, GlyphID(70))
	test.T(t, got.Components[0].Arg1, int16(298))
	test.T(t, got.Components[0].Vector[0].Float32(), float32(-1.0))
	test.T(t, got.Components[0].Vector[1].Float32(), float32(1.0))
}

func TestPointFlagsOnCurveBit(t *testing.T) {
	f := PointFlags(0)
	test.T(t, f.OnCurve(), false)
	f2 := PointFlags(1) // on-curve bit
	test.T(t, f2.OnCurve(), true)
}

func TestComponentFlagsIsInvalid(t *testing.T) {
	var f ComponentFlags
	test.T(t, f.IsInvalid(), false)
	f = ComponentFlags(1 << 13)
	test.T(t, f.IsInvalid(), true)
}

func TestSimpleGlyphRejectsNonMonotonicEndPoints(t *testing.T) {
	wt := NewWTape()
	wt.GiveI16(2) // numberOfContours
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveU16(5) // endPts[0]
	wt.GiveU16(2) // endPts[1], decreasing -> malformed
	wt.GiveU16(0) // instructionLength

	var g Glyph
	err := g.readTapeGiven(NewTape(wt.Bytes()), nil)
	if err == nil {
		t.Fatal("expected an error for non-monotonic end points")
	}
}

func TestSimpleGlyphRejectsInvalidPointFlagBit(t *testing.T) {
	wt := NewWTape()
	wt.GiveI16(1)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveU16(0) // endPts[0]
	wt.GiveU16(0) // instructionLength
	wt.GiveU8(0x80 | pointOnCurve)
	wt.GiveI16(0) // x delta
	wt.GiveI16(0) // y delta
	data := wt.Bytes()

	var g Glyph
	err := g.readTapeGiven(NewTape(data), nil)
	if err == nil {
		t.Fatal("expected an error for the reserved point flag bit")
	}

	var lenient Glyph
	err = lenient.readTapeGiven(NewTape(data), &Lenience{IgnoreInvalidCompositeGlyphFlags: true})
	test.Error(t, err)
}
