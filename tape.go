package truetype

import (
	"github.com/tdewolff/parse/v2"
)

// Tape is a seekable, big-endian byte source. It wraps a binary reader with
// checkpointed positions and a uniform decode contract: primitive integers
// are read directly, composite values are read through Value or Walue.
type Tape struct {
	r        *parse.BinaryReader
	data     []byte
	lenience *Lenience
}

// NewTape wraps b for sequential, seekable, big-endian decoding. The cursor
// starts at position 0.
func NewTape(b []byte) *Tape {
	return &Tape{r: parse.NewBinaryReader(b), data: b}
}

// WithLenience attaches relaxed-validation settings to the tape and returns
// it. It is typically chained onto NewTape before the first Take call.
func (t *Tape) WithLenience(l *Lenience) *Tape {
	t.lenience = l
	return t
}

// Lenience returns the relaxed-validation settings attached to the tape, or
// nil for strict decoding.
func (t *Tape) Lenience() *Lenience {
	return t.lenience
}

// Len returns the number of bytes remaining between the cursor and the end
// of the tape.
func (t *Tape) Len() uint32 {
	return uint32(t.r.Len())
}

// Position returns the current cursor offset from the start of the tape.
func (t *Tape) Position() uint32 {
	return t.r.Pos()
}

// Jump moves the cursor to an absolute offset from the start of the tape.
// It does not itself validate that pos is in range; the next read will fail
// if it is not.
func (t *Tape) Jump(pos uint32) {
	t.r.Seek(pos)
}

// Stay checkpoints the cursor, runs body, and restores the cursor
// afterwards regardless of whether body returned an error.
func (t *Tape) Stay(body func(*Tape) error) error {
	pos := t.Position()
	err := body(t)
	t.Jump(pos)
	return err
}

// Require fails with a table-scoped "bad table" error unless at least n
// bytes remain.
func (t *Tape) Require(table string, n uint32) error {
	if t.Len() < n {
		return errorf(table, "bad table (unexpected end of data)")
	}
	return nil
}

// TakeBytes reads exactly n bytes and advances the cursor.
func (t *Tape) TakeBytes(n uint32) []byte {
	return t.r.ReadBytes(n)
}

// TakeU8, TakeI8, TakeU16, TakeI16, TakeU32, TakeI32, TakeU64 read a single
// big-endian primitive and advance the cursor accordingly.
func (t *Tape) TakeU8() uint8   { return t.r.ReadUint8() }
func (t *Tape) TakeI8() int8    { return t.r.ReadInt8() }
func (t *Tape) TakeU16() uint16 { return t.r.ReadUint16() }
func (t *Tape) TakeI16() int16  { return t.r.ReadInt16() }
func (t *Tape) TakeU32() uint32 { return t.r.ReadUint32() }
func (t *Tape) TakeI32() int32  { return t.r.ReadInt32() }
func (t *Tape) TakeU64() uint64 { return t.r.ReadUint64() }

// TakeU24 reads a 3-byte big-endian unsigned integer, as used by cmap
// format 14's 24-bit variation-selector code points.
func (t *Tape) TakeU24() uint32 {
	b := t.TakeBytes(3)
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// value is implemented by types that decode themselves from a Tape without
// external context. It corresponds to the specification's Value trait.
type value interface {
	readTape(t *Tape) error
}

// walue is implemented by types that require a typed parameter P to decode:
// a length, a companion table, or an enclosing flags value. It corresponds
// to the specification's Walue trait.
type walue[P any] interface {
	readTapeGiven(t *Tape, param P) error
}

// Take decodes a value of type T from the tape using its Value
// implementation, advancing the cursor by T's encoded width.
func Take[T any, PT interface {
	*T
	value
}](t *Tape) (T, error) {
	var v T
	if err := PT(&v).readTape(t); err != nil {
		return v, err
	}
	return v, nil
}

// TakeGiven decodes a value of type T using a parameter P of T's own
// choosing (sequence length, enclosing flags, cross-table context).
func TakeGiven[T any, P any, PT interface {
	*T
	walue[P]
}](t *Tape, param P) (T, error) {
	var v T
	if err := PT(&v).readTapeGiven(t, param); err != nil {
		return v, err
	}
	return v, nil
}

// Peek decodes a value of type T without moving the cursor.
func Peek[T any, PT interface {
	*T
	value
}](t *Tape) (T, error) {
	var v T
	var err error
	staysErr := t.Stay(func(t *Tape) error {
		v, err = Take[T, PT](t)
		return err
	})
	if staysErr != nil {
		return v, staysErr
	}
	return v, err
}

// TakeVec decodes n consecutive Values of type T in sequence.
func TakeVec[T any, PT interface {
	*T
	value
}](t *Tape, n int) ([]T, error) {
	out := make([]T, n)
	for i := range out {
		v, err := Take[T, PT](t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
