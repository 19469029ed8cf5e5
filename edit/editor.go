package edit

import (
	"errors"
	"io"

	"github.com/joshuapare/binkit/order"
	"github.com/joshuapare/binkit/pkg/types"
)

// Editor provides position-addressed primitive access over a Medium. The
// byte order is fixed at construction and the editor owns the medium's
// offset for its full lifetime.
type Editor struct {
	m      types.Medium
	ord    order.ByteOrder
	pos    int64
	closed bool
}

// New binds a little-endian editor to an already-open medium. The editor's
// cursor starts at offset zero regardless of the medium's current offset.
func New(m types.Medium) *Editor {
	return NewWithOrder(m, order.LittleEndian)
}

// NewWithOrder binds an editor with the given byte order to an already-open
// medium.
func NewWithOrder(m types.Medium, ord order.ByteOrder) *Editor {
	return &Editor{m: m, ord: ord}
}

// Order reports the editor's byte order.
func (e *Editor) Order() order.ByteOrder { return e.ord }

// Tell returns the current cursor position.
func (e *Editor) Tell() int64 { return e.pos }

// Seek moves the cursor to pos. Seeking past the current end of the medium
// is allowed; the medium grows on the next write there.
func (e *Editor) Seek(pos int64) error {
	if e.closed {
		return types.ErrClosed
	}
	if pos < 0 {
		return types.ErrInvalidPosition
	}
	e.pos = pos
	return nil
}

// Skip moves the cursor n bytes forward (or backward when n is negative).
func (e *Editor) Skip(n int64) error {
	return e.Seek(e.pos + n)
}

// Len returns the current length of the medium.
func (e *Editor) Len() (int64, error) {
	if e.closed {
		return 0, types.ErrClosed
	}
	end, err := e.m.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, wrapMedium("seek", err)
	}
	return end, nil
}

// Remaining returns the number of bytes between the cursor and the end of
// the medium.
func (e *Editor) Remaining() (int64, error) {
	end, err := e.Len()
	if err != nil {
		return 0, err
	}
	if e.pos >= end {
		return 0, nil
	}
	return end - e.pos, nil
}

// HasRemaining reports whether the cursor is ahead of the end of the medium.
func (e *Editor) HasRemaining() (bool, error) {
	n, err := e.Remaining()
	return n > 0, err
}

// Close releases the medium. Closing an already-closed editor is a no-op;
// every other operation on a closed editor fails with ErrClosed.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if err := e.m.Close(); err != nil {
		return wrapMedium("close", err)
	}
	return nil
}

// readFull fills buf from the cursor position and advances the cursor by
// len(buf), or fails without moving it. The medium offset is re-established
// on every transfer, so a prior partial failure cannot skew later ones.
func (e *Editor) readFull(buf []byte) error {
	if e.closed {
		return types.ErrClosed
	}
	if _, err := e.m.Seek(e.pos, io.SeekStart); err != nil {
		return wrapMedium("seek", err)
	}
	if _, err := io.ReadFull(e.m, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return types.ErrEndOfData
		}
		return wrapMedium("read", err)
	}
	e.pos += int64(len(buf))
	return nil
}

// writeFull emits buf at the cursor position and advances the cursor by
// len(buf), or fails without moving it.
func (e *Editor) writeFull(buf []byte) error {
	if e.closed {
		return types.ErrClosed
	}
	if _, err := e.m.Seek(e.pos, io.SeekStart); err != nil {
		return wrapMedium("seek", err)
	}
	n, err := e.m.Write(buf)
	if err != nil {
		return wrapMedium("write", err)
	}
	if n < len(buf) {
		return wrapMedium("write", io.ErrShortWrite)
	}
	e.pos += int64(n)
	return nil
}

// wrapMedium passes an underlying medium failure through unreinterpreted.
func wrapMedium(op string, err error) error {
	return &types.Error{Kind: types.ErrKindMedium, Msg: "medium " + op, Err: err}
}
