package edit

import (
	"errors"
	"io"

	"github.com/joshuapare/binkit/pkg/types"
)

// ReadUint8 consumes the next byte.
func (e *Editor) ReadUint8() (byte, error) {
	var b [1]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadInt8 consumes the next byte as a signed value.
func (e *Editor) ReadInt8() (int8, error) {
	b, err := e.ReadUint8()
	return int8(b), err
}

// ReadChar consumes the next two bytes as a UTF-16 code unit.
func (e *Editor) ReadChar() (rune, error) {
	var b [2]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Char(b[:]), nil
}

// ReadInt16 consumes the next two bytes.
func (e *Editor) ReadInt16() (int16, error) {
	var b [2]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Int16(b[:]), nil
}

// ReadUint16 consumes the next two bytes, zero-extended.
func (e *Editor) ReadUint16() (uint16, error) {
	var b [2]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Uint16(b[:]), nil
}

// ReadInt32 consumes the next four bytes.
func (e *Editor) ReadInt32() (int32, error) {
	var b [4]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Int32(b[:]), nil
}

// ReadUint32 consumes the next four bytes, zero-extended.
func (e *Editor) ReadUint32() (uint32, error) {
	var b [4]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Uint32(b[:]), nil
}

// ReadInt64 consumes the next eight bytes.
func (e *Editor) ReadInt64() (int64, error) {
	var b [8]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Int64(b[:]), nil
}

// ReadUint64 consumes the next eight bytes, zero-extended.
func (e *Editor) ReadUint64() (uint64, error) {
	var b [8]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Uint64(b[:]), nil
}

// ReadFloat32 consumes four bytes and reinterprets the 32-bit pattern.
func (e *Editor) ReadFloat32() (float32, error) {
	var b [4]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Float32(b[:]), nil
}

// ReadFloat64 consumes eight bytes and reinterprets the 64-bit pattern.
func (e *Editor) ReadFloat64() (float64, error) {
	var b [8]byte
	if err := e.readFull(b[:]); err != nil {
		return 0, err
	}
	return e.ord.Float64(b[:]), nil
}

// Read transfers up to len(p) bytes into p and advances the cursor by the
// count transferred. Unlike the scalar readers it may return fewer bytes
// than requested; it fails with ErrEndOfData only when zero bytes are
// available. Slice p to read into a sub-range.
func (e *Editor) Read(p []byte) (int, error) {
	if e.closed {
		return 0, types.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if _, err := e.m.Seek(e.pos, io.SeekStart); err != nil {
		return 0, wrapMedium("seek", err)
	}
	n, err := e.m.Read(p)
	e.pos += int64(n)
	if n > 0 {
		return n, nil
	}
	if err == nil {
		return 0, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, types.ErrEndOfData
	}
	return 0, wrapMedium("read", err)
}
