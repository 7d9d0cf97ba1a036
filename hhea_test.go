package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestHheaRoundTrip(t *testing.T) {
	h := Hhea{
		MajorVersion:        1,
		MinorVersion:        0,
		Ascender:            800,
		Descender:           -200,
		LineGap:             0,
		AdvanceWidthMax:     1000,
		MinLeftSideBearing:  -50,
		MinRightSideBearing: -50,
		XMaxExtent:          900,
		CaretSlopeRise:      1,
		CaretSlopeRun:       0,
		CaretOffset:         0,
		MetricDataFormat:    0,
		NumberOfHMetrics:    42,
	}

	wt := NewWTape()
	test.Error(t, h.writeTape(wt))

	var got Hhea
	test.Error(t, got.readTape(NewTape(wt.Bytes())))
	test.T(t, got.Ascender, int16(800))
	test.T(t, got.NumberOfHMetrics, uint16(42))
}

func TestHheaRejectsUnsupportedVersion(t *testing.T) {
	wt := NewWTape()
	wt.GiveU16(2) // major
	wt.GiveU16(0)
	for i := 0; i < 16; i++ {
		wt.GiveI16(0)
	}

	var h Hhea
	if err := h.readTape(NewTape(wt.Bytes())); err == nil {
		t.Fatal("expected an unsupported hhea version to be rejected")
	}
}
