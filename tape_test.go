package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTapePrimitives(t *testing.T) {
	b := []byte{0x01, 0x02, 0x03, 0x04, 0xFF, 0xFE}
	tp := NewTape(b)
	test.T(t, tp.TakeU16(), uint16(0x0102))
	test.T(t, tp.TakeI16(), int16(0x0304))
	test.T(t, tp.TakeU8(), uint8(0xFF))
	test.T(t, tp.Position(), uint32(5))
	test.T(t, tp.Len(), uint32(1))
}

func TestTapeStayRestoresPosition(t *testing.T) {
	tp := NewTape([]byte{1, 2, 3, 4, 5, 6})
	tp.Jump(2)
	err := tp.Stay(func(inner *Tape) error {
		inner.Jump(5)
		inner.TakeU8()
		return nil
	})
	test.Error(t, err)
	test.T(t, tp.Position(), uint32(2))
}

func TestTapeRequireShortRead(t *testing.T) {
	tp := NewTape([]byte{1, 2})
	err := tp.Require("head", 4)
	if err == nil {
		t.Fatal("expected short-read error")
	}
}

func TestTagRoundTrip(t *testing.T) {
	tag, ok := TagFromString("cmap")
	test.T(t, ok, true)
	test.T(t, tag.String(), "cmap")
	test.T(t, TagFromUint32(tag.Uint32()), tag)
}
