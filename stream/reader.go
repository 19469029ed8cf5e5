package stream

import (
	"errors"
	"io"
	"math"

	"github.com/joshuapare/binkit/order"
	"github.com/joshuapare/binkit/pkg/types"
)

// Reader decodes primitives sequentially from a forward-only byte source.
type Reader struct {
	src io.Reader
	ord order.ByteOrder
}

// NewReader wraps src with a little-endian reader.
func NewReader(src io.Reader) *Reader {
	return NewReaderWithOrder(src, order.LittleEndian)
}

// NewReaderWithOrder wraps src with a reader of the given byte order.
func NewReaderWithOrder(src io.Reader, ord order.ByteOrder) *Reader {
	return &Reader{src: src, ord: ord}
}

// Order reports the reader's byte order.
func (r *Reader) Order() order.ByteOrder { return r.ord }

// ReadByte consumes the next byte from the source.
func (r *Reader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r.src, b[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, types.ErrEndOfData
		}
		return 0, wrapSource(err)
	}
	return b[0], nil
}

// ReadUint8 is ReadByte under the primitive naming scheme.
func (r *Reader) ReadUint8() (byte, error) { return r.ReadByte() }

// ReadInt8 consumes the next byte as a signed value.
func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

// ReadChar consumes two bytes as a UTF-16 code unit.
func (r *Reader) ReadChar() (rune, error) {
	v, err := r.ReadUint16()
	return rune(v), err
}

// ReadUint16 composes the next two bytes.
func (r *Reader) ReadUint16() (uint16, error) {
	b0, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	b1, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	return r.ord.Combine16(b0, b1), nil
}

// ReadInt16 composes the next two bytes as a signed value.
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 composes the next four bytes.
func (r *Reader) ReadUint32() (uint32, error) {
	var b [4]byte
	for i := range b {
		var err error
		if b[i], err = r.ReadByte(); err != nil {
			return 0, err
		}
	}
	return r.ord.Combine32(b[0], b[1], b[2], b[3]), nil
}

// ReadInt32 composes the next four bytes as a signed value.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 composes the next eight bytes.
func (r *Reader) ReadUint64() (uint64, error) {
	var b [8]byte
	for i := range b {
		var err error
		if b[i], err = r.ReadByte(); err != nil {
			return 0, err
		}
	}
	return r.ord.Combine64(b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7]), nil
}

// ReadInt64 composes the next eight bytes as a signed value.
func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 composes four bytes and reinterprets the 32-bit pattern.
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 composes eight bytes and reinterprets the 64-bit pattern.
func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// Read transfers up to len(p) bytes from the source; it fails with
// ErrEndOfData only when zero bytes are available.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.src.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil {
		return 0, nil
	}
	if errors.Is(err, io.EOF) {
		return 0, types.ErrEndOfData
	}
	return 0, wrapSource(err)
}

func wrapSource(err error) error {
	return &types.Error{Kind: types.ErrKindMedium, Msg: "stream read", Err: err}
}
