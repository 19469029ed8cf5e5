package medium

import (
	"io"

	"github.com/joshuapare/binkit/pkg/types"
)

// Mapped is a read-only Medium over a file's contents, memory-mapped where
// the platform supports it and read fully into memory elsewhere. Writes
// fail with ErrReadOnly.
type Mapped struct {
	data   []byte
	off    int64
	unmap  func() error
	closed bool
}

// Map opens the file at path as a read-only Mapped medium.
func Map(path string) (*Mapped, error) {
	data, unmap, err := mapFile(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindMedium, Msg: "map file", Err: err}
	}
	return &Mapped{data: data, unmap: unmap}, nil
}

// Size returns the mapped length in bytes.
func (m *Mapped) Size() int64 { return int64(len(m.data)) }

func (m *Mapped) Read(p []byte) (int, error) {
	if m.closed {
		return 0, types.ErrClosed
	}
	if m.off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.off:])
	m.off += int64(n)
	return n, nil
}

func (m *Mapped) Write(p []byte) (int, error) {
	if m.closed {
		return 0, types.ErrClosed
	}
	return 0, types.ErrReadOnly
}

func (m *Mapped) Seek(offset int64, whence int) (int64, error) {
	if m.closed {
		return 0, types.ErrClosed
	}
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.off + offset
	case io.SeekEnd:
		abs = int64(len(m.data)) + offset
	default:
		return 0, types.ErrInvalidPosition
	}
	if abs < 0 {
		return 0, types.ErrInvalidPosition
	}
	m.off = abs
	return abs, nil
}

// Close releases the mapping. Double close is a no-op.
func (m *Mapped) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.data = nil
	if m.unmap != nil {
		return m.unmap()
	}
	return nil
}
