package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func writeHeadBody(wt *WTape, flags uint16, unitsPerEm uint16, locFormat int16) {
	writeHeadBodyWithMacStyle(wt, flags, unitsPerEm, 0, locFormat)
}

func writeHeadBodyWithMacStyle(wt *WTape, flags uint16, unitsPerEm uint16, macStyle uint16, locFormat int16) {
	wt.GiveU16(1) // majorVersion
	wt.GiveU16(0) // minorVersion
	wt.GiveU32(0) // fontRevision
	wt.GiveU32(0) // checkSumAdjustment
	wt.GiveU32(headMagicNumber)
	wt.GiveU16(flags)
	wt.GiveU16(unitsPerEm)
	wt.GiveU64(0) // created
	wt.GiveU64(0) // modified
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(100)
	wt.GiveI16(100)
	wt.GiveU16(macStyle)
	wt.GiveU16(8) // lowestRecPPEM
	wt.GiveI16(2) // fontDirectionHint
	wt.GiveI16(locFormat)
	wt.GiveI16(0) // glyphDataFormat
}

func TestHeadRoundTrip(t *testing.T) {
	wt := NewWTape()
	writeHeadBody(wt, 0, 1000, int16(LocLong))

	var h Head
	test.Error(t, h.readTape(NewTape(wt.Bytes())))
	test.T(t, h.UnitsPerEm, uint16(1000))
	test.T(t, h.IndexToLocFormat, LocLong)

	out := NewWTape()
	test.Error(t, h.writeTape(out))
	test.T(t, out.Bytes(), wt.Bytes())
}

func TestHeadRejectsBadMagicNumber(t *testing.T) {
	wt := NewWTape()
	writeHeadBody(wt, 0, 1000, int16(LocShort))
	data := wt.Bytes()
	data[12], data[13], data[14], data[15] = 0, 0, 0, 0 // corrupt magic number

	var h Head
	if err := h.readTape(NewTape(data)); err == nil {
		t.Fatal("expected a bad magic number to be rejected")
	}
}

func TestHeadRejectsReservedFlagBit(t *testing.T) {
	wt := NewWTape()
	writeHeadBody(wt, 1<<15, 1000, int16(LocShort))

	var h Head
	if err := h.readTape(NewTape(wt.Bytes())); err == nil {
		t.Fatal("expected the reserved flags bit to be rejected")
	}
}

func TestHeadAcceptsUnusualUnitsPerEm(t *testing.T) {
	// spec.md's head invariants don't bound unitsPerEm to any particular
	// range; only the magic number, flags bit 15, macStyle's reserved bits,
	// and indexToLocFormat are validated.
	wt := NewWTape()
	writeHeadBody(wt, 0, 4, int16(LocShort))

	var h Head
	test.Error(t, h.readTape(NewTape(wt.Bytes())))
}

func TestHeadRejectsReservedMacStyleBit(t *testing.T) {
	wt := NewWTape()
	writeHeadBodyWithMacStyle(wt, 0, 1000, 1<<7, int16(LocShort))

	var h Head
	if err := h.readTape(NewTape(wt.Bytes())); err == nil {
		t.Fatal("expected the reserved macStyle bit to be rejected")
	}
}

func TestHeadRejectsInvalidIndexToLocFormat(t *testing.T) {
	wt := NewWTape()
	writeHeadBody(wt, 0, 1000, 2)

	var h Head
	if err := h.readTape(NewTape(wt.Bytes())); err == nil {
		t.Fatal("expected an out-of-range indexToLocFormat to be rejected")
	}
}

func TestHeadLenientVersionAccepted(t *testing.T) {
	wt := NewWTape()
	wt.GiveU16(2) // unsupported major version
	wt.GiveU16(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(headMagicNumber)
	wt.GiveU16(0)
	wt.GiveU16(1000)
	wt.GiveU64(0)
	wt.GiveU64(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(100)
	wt.GiveI16(100)
	wt.GiveU16(0)
	wt.GiveU16(8)
	wt.GiveI16(2)
	wt.GiveI16(int16(LocShort))
	wt.GiveI16(0)

	var h Head
	err := h.readTape(NewTape(wt.Bytes()).WithLenience(&Lenience{IgnoreInvalidFontHeaderVersion: true}))
	test.Error(t, err)
}
