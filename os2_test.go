package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func writeOS2V0(wt *WTape) {
	wt.GiveU16(0) // version
	wt.GiveI16(0) // xAvgCharWidth
	wt.GiveU16(400)
	wt.GiveU16(5)
	wt.GiveU16(0) // fsType
	for i := 0; i < 8; i++ {
		wt.GiveI16(0)
	}
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveBytes(make([]byte, 10)) // panose
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveU32(0)
	wt.GiveBytes([]byte("ABCD")) // achVendID
	wt.GiveU16(0)                // fsSelection
	wt.GiveU16(0)
	wt.GiveU16(0xFFFF)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveI16(0)
	wt.GiveU16(0)
	wt.GiveU16(0)
}

func TestOS2Version0Decode(t *testing.T) {
	wt := NewWTape()
	writeOS2V0(wt)

	var o OS2
	test.Error(t, o.readTape(NewTape(wt.Bytes())))
	test.T(t, o.Version, uint16(0))
	test.T(t, o.USWeightClass, uint16(400))
	test.T(t, o.AchVendID.String(), "ABCD")
}

func TestOS2RejectsReservedFsTypeBits(t *testing.T) {
	wt := NewWTape()
	writeOS2V0(wt)
	data := wt.Bytes()
	data[8], data[9] = 0, 1<<4 // patch fsType's reserved bit 4

	var o OS2
	if err := (&OS2{}).readTape(NewTape(data)); err == nil {
		t.Fatal("expected reserved fsType bit to be rejected")
	}
	_ = o
}

func TestOS2RejectsUnknownVersion(t *testing.T) {
	wt := NewWTape()
	writeOS2V0(wt)
	data := wt.Bytes()
	data[0], data[1] = 0, 6 // unsupported version

	if err := (&OS2{}).readTape(NewTape(data)); err == nil {
		t.Fatal("expected version 6 to be rejected")
	}
}
