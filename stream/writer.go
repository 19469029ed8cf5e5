package stream

import (
	"io"
	"math"

	"github.com/joshuapare/binkit/order"
	"github.com/joshuapare/binkit/pkg/types"
)

// Writer encodes primitives sequentially onto a forward-only byte sink.
// Each primitive is decomposed per the configured order and emitted as one
// contiguous block; flushing and closing remain the sink's own concern.
type Writer struct {
	dst io.Writer
	ord order.ByteOrder
}

// NewWriter wraps dst with a little-endian writer.
func NewWriter(dst io.Writer) *Writer {
	return NewWriterWithOrder(dst, order.LittleEndian)
}

// NewWriterWithOrder wraps dst with a writer of the given byte order.
func NewWriterWithOrder(dst io.Writer, ord order.ByteOrder) *Writer {
	return &Writer{dst: dst, ord: ord}
}

// Order reports the writer's byte order.
func (w *Writer) Order() order.ByteOrder { return w.ord }

func (w *Writer) emit(b []byte) error {
	if _, err := w.dst.Write(b); err != nil {
		return &types.Error{Kind: types.ErrKindMedium, Msg: "stream write", Err: err}
	}
	return nil
}

// WriteByte emits one byte to the sink.
func (w *Writer) WriteByte(b byte) error {
	buf := [1]byte{b}
	return w.emit(buf[:])
}

// WriteUint8 is WriteByte under the primitive naming scheme.
func (w *Writer) WriteUint8(b byte) error { return w.WriteByte(b) }

// WriteInt8 emits one signed byte.
func (w *Writer) WriteInt8(v int8) error { return w.WriteByte(byte(v)) }

// WriteChar emits a UTF-16 code unit.
func (w *Writer) WriteChar(c rune) error { return w.WriteUint16(uint16(c)) }

// WriteUint16 decomposes v into two bytes in stream order.
func (w *Writer) WriteUint16(v uint16) error {
	b := w.ord.Split16(v)
	return w.emit(b[:])
}

// WriteInt16 decomposes v into two bytes in stream order.
func (w *Writer) WriteInt16(v int16) error { return w.WriteUint16(uint16(v)) }

// WriteUint32 decomposes v into four bytes in stream order.
func (w *Writer) WriteUint32(v uint32) error {
	b := w.ord.Split32(v)
	return w.emit(b[:])
}

// WriteInt32 decomposes v into four bytes in stream order.
func (w *Writer) WriteInt32(v int32) error { return w.WriteUint32(uint32(v)) }

// WriteUint64 decomposes v into eight bytes in stream order.
func (w *Writer) WriteUint64(v uint64) error {
	b := w.ord.Split64(v)
	return w.emit(b[:])
}

// WriteInt64 decomposes v into eight bytes in stream order.
func (w *Writer) WriteInt64(v int64) error { return w.WriteUint64(uint64(v)) }

// WriteFloat32 emits the 32-bit pattern of v.
func (w *Writer) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 emits the 64-bit pattern of v.
func (w *Writer) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// Write emits p to the sink unchanged.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	if err != nil {
		return n, &types.Error{Kind: types.ErrKindMedium, Msg: "stream write", Err: err}
	}
	return n, nil
}
