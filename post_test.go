package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPostVersion1IsStandardMacOrder(t *testing.T) {
	wt := NewWTape()
	wt.GiveU32(q32Post10)
	wt.GiveU32(0) // italicAngle
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)

	var p Post
	test.Error(t, p.readTape(NewTape(wt.Bytes())))
	test.T(t, len(p.GlyphNameIndex), 0)
}

func TestPostVersion2CustomNamesAndMalformedUTF8(t *testing.T) {
	wt := NewWTape()
	wt.GiveU32(q32Post20)
	wt.GiveU32(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU16(2) // numberOfGlyphs
	wt.GiveU16(0) // glyph 0 -> standard Mac order ".notdef"
	wt.GiveU16(258) // glyph 1 -> custom name index 0
	wt.GiveU8(3)
	wt.GiveBytes([]byte{0xFF, 0xFE, 0xFD}) // invalid UTF-8

	var p Post
	test.Error(t, p.readTape(NewTape(wt.Bytes())))
	test.T(t, len(p.Names), 1)
	test.T(t, p.Names[0], "<malformed>")

	name0, ok := p.GlyphName(0)
	test.T(t, ok, true)
	test.T(t, name0, ".notdef")

	name1, ok := p.GlyphName(1)
	test.T(t, ok, true)
	test.T(t, name1, "<malformed>")
}

func TestPostVersion25IsRejected(t *testing.T) {
	wt := NewWTape()
	wt.GiveU32(q32Post25)
	wt.GiveU32(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)

	var p Post
	if err := p.readTape(NewTape(wt.Bytes())); err == nil {
		t.Fatal("expected version 2.5 to be rejected")
	}
}
