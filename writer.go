package truetype

import (
	"github.com/tdewolff/parse/v2"
)

// WTape is the write-side counterpart of Tape: a big-endian byte sink with
// no implicit alignment padding. Writers are symmetric with their readers:
// decode(encode(x)) reproduces x for every table that supports both sides.
type WTape struct {
	w *parse.BinaryWriter
}

// NewWTape creates an empty write tape.
func NewWTape() *WTape {
	return &WTape{w: parse.NewBinaryWriter(make([]byte, 0, 64))}
}

// Bytes returns the bytes written so far.
func (w *WTape) Bytes() []byte {
	return w.w.Bytes()
}

// Len returns the number of bytes written so far.
func (w *WTape) Len() uint32 {
	return uint32(w.w.Len())
}

func (w *WTape) GiveBytes(b []byte) { w.w.WriteBytes(b) }
func (w *WTape) GiveU8(v uint8)     { w.w.WriteUint8(v) }
func (w *WTape) GiveI8(v int8)      { w.w.WriteInt8(v) }
func (w *WTape) GiveU16(v uint16)   { w.w.WriteUint16(v) }
func (w *WTape) GiveI16(v int16)    { w.w.WriteInt16(v) }
func (w *WTape) GiveU32(v uint32)   { w.w.WriteUint32(v) }
func (w *WTape) GiveI32(v int32)    { w.w.WriteInt32(v) }
func (w *WTape) GiveU64(v uint64)   { w.w.WriteUint64(v) }

// GiveU24 writes a 3-byte big-endian unsigned integer.
func (w *WTape) GiveU24(v uint32) {
	w.GiveBytes([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

// writable is implemented by types that encode themselves to a WTape. Each
// type's writeTape is hand-written next to its readTape and writes fields in
// the same order they are read.
type writable interface {
	writeTape(w *WTape) error
}

// Give encodes v to the write tape.
func Give[T any, PT interface {
	*T
	writable
}](w *WTape, v *T) error {
	return PT(v).writeTape(w)
}
