// Package medium provides Medium implementations to hand to an edit.Editor:
// a growable in-memory buffer and a read-only memory-mapped file.
package medium

import (
	"io"

	"github.com/joshuapare/binkit/pkg/types"
)

// Buffer is an in-memory Medium. Writes past the end grow it; a seek past
// the end followed by a write zero-fills the gap, matching file semantics.
type Buffer struct {
	data   []byte
	off    int64
	closed bool
}

// NewBuffer returns a Buffer owning data as its initial contents.
func NewBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the current contents. The slice is only valid until the
// next write.
func (b *Buffer) Bytes() []byte { return b.data }

// Size returns the current length in bytes.
func (b *Buffer) Size() int64 { return int64(len(b.data)) }

func (b *Buffer) Read(p []byte) (int, error) {
	if b.closed {
		return 0, types.ErrClosed
	}
	if b.off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	if b.closed {
		return 0, types.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	if need := b.off + int64(len(p)); need > int64(len(b.data)) {
		grown := make([]byte, need)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.off:], p)
	b.off += int64(n)
	return n, nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	if b.closed {
		return 0, types.ErrClosed
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = b.off + offset
	case io.SeekEnd:
		abs = int64(len(b.data)) + offset
	default:
		return 0, types.ErrInvalidPosition
	}
	if abs < 0 {
		return 0, types.ErrInvalidPosition
	}
	b.off = abs
	return abs, nil
}

// Close marks the buffer released; the contents remain readable via Bytes.
func (b *Buffer) Close() error {
	b.closed = true
	return nil
}
