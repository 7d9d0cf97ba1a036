package truetype

import "fmt"

// Q16 is a signed fixed-point rational with 14 fractional bits (the
// "F2Dot14" format used for component scale factors).
type Q16 struct {
	Raw int16
}

// Float32 converts q to a 32-bit float by dividing the raw integer backing
// by 2^14. The conversion is lossy.
func (q Q16) Float32() float32 {
	return float32(q.Raw) / (1 << 14)
}

func (q *Q16) readTape(t *Tape) error {
	q.Raw = t.TakeI16()
	return nil
}

func (q *Q16) writeTape(w *WTape) error {
	w.GiveI16(q.Raw)
	return nil
}

// Q32 is a signed fixed-point rational with 16 fractional bits, used for
// table version numbers and format revisions ("Fixed" in the OpenType
// specification).
type Q32 struct {
	Raw int32
}

// Float32 converts q to a 32-bit float by dividing the raw integer backing
// by 2^16. The conversion is lossy.
func (q Q32) Float32() float32 {
	return float32(q.Raw) / (1 << 16)
}

func (q *Q32) readTape(t *Tape) error {
	q.Raw = t.TakeI32()
	return nil
}

func (q *Q32) writeTape(w *WTape) error {
	w.GiveI32(q.Raw)
	return nil
}

// formatQ32 renders a Q32 table-version field as "major.minor", the form
// used in error messages.
func formatQ32(q Q32) string {
	return fmt.Sprintf("%d.%d", uint16(q.Raw>>16), uint16(q.Raw))
}

// q32 constants for the maxp and post table version fields.
const (
	q32Maxp05   = 0x00005000
	q32Maxp10   = 0x00010000
	q32Post10   = 0x00010000
	q32Post20   = 0x00020000
	q32Post25   = 0x00025000
	q32Post30   = 0x00030000
	q32Version1 = 0x00010000
)
