package edit

import (
	"io"

	"github.com/joshuapare/binkit/pkg/types"
)

// WriteUint8 emits one byte at the cursor.
func (e *Editor) WriteUint8(b byte) error {
	buf := [1]byte{b}
	return e.writeFull(buf[:])
}

// WriteInt8 emits one signed byte at the cursor.
func (e *Editor) WriteInt8(v int8) error {
	return e.WriteUint8(byte(v))
}

// WriteChar encodes a UTF-16 code unit at the cursor.
func (e *Editor) WriteChar(c rune) error {
	var b [2]byte
	e.ord.PutChar(b[:], c)
	return e.writeFull(b[:])
}

// WriteInt16 encodes v at the cursor.
func (e *Editor) WriteInt16(v int16) error {
	var b [2]byte
	e.ord.PutInt16(b[:], v)
	return e.writeFull(b[:])
}

// WriteUint16 encodes v at the cursor.
func (e *Editor) WriteUint16(v uint16) error {
	var b [2]byte
	e.ord.PutUint16(b[:], v)
	return e.writeFull(b[:])
}

// WriteInt32 encodes v at the cursor.
func (e *Editor) WriteInt32(v int32) error {
	var b [4]byte
	e.ord.PutInt32(b[:], v)
	return e.writeFull(b[:])
}

// WriteUint32 encodes v at the cursor.
func (e *Editor) WriteUint32(v uint32) error {
	var b [4]byte
	e.ord.PutUint32(b[:], v)
	return e.writeFull(b[:])
}

// WriteInt64 encodes v at the cursor.
func (e *Editor) WriteInt64(v int64) error {
	var b [8]byte
	e.ord.PutInt64(b[:], v)
	return e.writeFull(b[:])
}

// WriteUint64 encodes v at the cursor.
func (e *Editor) WriteUint64(v uint64) error {
	var b [8]byte
	e.ord.PutUint64(b[:], v)
	return e.writeFull(b[:])
}

// WriteFloat32 encodes the bit pattern of v at the cursor.
func (e *Editor) WriteFloat32(v float32) error {
	var b [4]byte
	e.ord.PutFloat32(b[:], v)
	return e.writeFull(b[:])
}

// WriteFloat64 encodes the bit pattern of v at the cursor.
func (e *Editor) WriteFloat64(v float64) error {
	var b [8]byte
	e.ord.PutFloat64(b[:], v)
	return e.writeFull(b[:])
}

// Write emits p at the cursor, growing the medium as needed, and advances
// the cursor by the count written. Slice p to write a sub-range.
func (e *Editor) Write(p []byte) (int, error) {
	if e.closed {
		return 0, types.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if _, err := e.m.Seek(e.pos, io.SeekStart); err != nil {
		return 0, wrapMedium("seek", err)
	}
	n, err := e.m.Write(p)
	e.pos += int64(n)
	if err != nil {
		return n, wrapMedium("write", err)
	}
	return n, nil
}
