package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func buildMinimalFont() *Font {
	head := &Head{
		MajorVersion: 1, MinorVersion: 0,
		MagicNumber:      headMagicNumber,
		UnitsPerEm:       1000,
		XMax:             100, YMax: 100,
		IndexToLocFormat: LocShort,
	}
	maxp := &Maxp{Version: Q32{Raw: q32Maxp05}, NumGlyphs: 2}
	hhea := &Hhea{MajorVersion: 1, MinorVersion: 0, NumberOfHMetrics: 2}
	hmtx := &Hmtx{HMetrics: []LongHorMetric{{AdvanceWidth: 500}, {AdvanceWidth: 600, LeftSideBearing: 5}}}
	glyf := []Glyph{
		{}, // .notdef, empty
		{
			NumContours: 1,
			XMax:        10, YMax: 10,
			Contours: []Contour{{{X: 0, Y: 0, OnCurve: true}, {X: 10, Y: 0, OnCurve: true}, {X: 5, Y: 10, OnCurve: true}}},
		},
	}
	return &Font{
		OffsetTable: OffsetTable{Version: TagTrueType},
		Head:        head,
		Maxp:        maxp,
		Hhea:        hhea,
		Hmtx:        hmtx,
		Glyf:        glyf,
	}
}

func TestFontEncodeParseRoundTrip(t *testing.T) {
	f := buildMinimalFont()

	out, err := f.Encode()
	test.Error(t, err)

	got, err := Parse(out)
	test.Error(t, err)

	test.T(t, got.Maxp.NumGlyphs, uint16(2))
	test.T(t, got.Head.UnitsPerEm, uint16(1000))
	test.T(t, len(got.Glyf), 2)

	g, ok := got.Glyph(1)
	test.T(t, ok, true)
	test.T(t, g.NumContours, int16(1))
	test.T(t, len(g.Contours[0]), 3)

	_, ok = got.Glyph(5)
	test.T(t, ok, false)

	test.Error(t, got.VerifyChecksums(out))
}

func TestFontParseRejectsTruncatedFile(t *testing.T) {
	_, err := Parse([]byte{0, 1, 0, 0})
	if err == nil {
		t.Fatal("expected a truncated font to be rejected")
	}
}

func TestFontLookupWithoutCmapFails(t *testing.T) {
	f := buildMinimalFont()
	_, ok := f.Lookup('A')
	test.T(t, ok, false)
}

func TestFontRawTableSurvivesRoundTrip(t *testing.T) {
	f := buildMinimalFont()
	out, err := f.Encode()
	test.Error(t, err)

	got, err := Parse(out)
	test.Error(t, err)

	raw, ok := got.RawTable(tagHead)
	test.T(t, ok, true)
	test.T(t, len(raw) > 0, true)

	_, ok = got.RawTable(mustTag("CFF "))
	test.T(t, ok, false)
}
