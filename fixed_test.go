package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestQ16Float32(t *testing.T) {
	cases := []struct {
		raw  int16
		want float32
	}{
		{0x7FFF, 1.999939},
		{0x7000, 1.75},
		{0x0001, 0.0000610},
		{0x0000, 0.0},
		{-1, -0.0000610},
		{-0x8000, -2.0},
	}
	for _, c := range cases {
		q := Q16{Raw: c.raw}
		got := q.Float32()
		if diff := got - c.want; diff > 0.0001 || diff < -0.0001 {
			t.Errorf("Q16{%d}.Float32() = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestFormatQ32(t *testing.T) {
	test.T(t, formatQ32(Q32{Raw: 0x00010000}), "1.0")
}
