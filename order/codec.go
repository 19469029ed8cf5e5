package order

import "math"

// Block codec. Each routine reads or writes exactly its width at the front
// of b; b must be at least that long.

// Uint16 decodes two bytes of b in this order.
func (o ByteOrder) Uint16(b []byte) uint16 { return o.Binary().Uint16(b) }

// Uint32 decodes four bytes of b in this order.
func (o ByteOrder) Uint32(b []byte) uint32 { return o.Binary().Uint32(b) }

// Uint64 decodes eight bytes of b in this order.
func (o ByteOrder) Uint64(b []byte) uint64 { return o.Binary().Uint64(b) }

// PutUint16 encodes v into the first two bytes of b.
func (o ByteOrder) PutUint16(b []byte, v uint16) { o.Binary().PutUint16(b, v) }

// PutUint32 encodes v into the first four bytes of b.
func (o ByteOrder) PutUint32(b []byte, v uint32) { o.Binary().PutUint32(b, v) }

// PutUint64 encodes v into the first eight bytes of b.
func (o ByteOrder) PutUint64(b []byte, v uint64) { o.Binary().PutUint64(b, v) }

// Int16 decodes two bytes of b as a signed value.
func (o ByteOrder) Int16(b []byte) int16 { return int16(o.Uint16(b)) }

// Int32 decodes four bytes of b as a signed value.
func (o ByteOrder) Int32(b []byte) int32 { return int32(o.Uint32(b)) }

// Int64 decodes eight bytes of b as a signed value.
func (o ByteOrder) Int64(b []byte) int64 { return int64(o.Uint64(b)) }

// PutInt16 encodes v into the first two bytes of b.
func (o ByteOrder) PutInt16(b []byte, v int16) { o.PutUint16(b, uint16(v)) }

// PutInt32 encodes v into the first four bytes of b.
func (o ByteOrder) PutInt32(b []byte, v int32) { o.PutUint32(b, uint32(v)) }

// PutInt64 encodes v into the first eight bytes of b.
func (o ByteOrder) PutInt64(b []byte, v int64) { o.PutUint64(b, uint64(v)) }

// Float32 decodes four bytes of b by reinterpreting the 32-bit integer bit
// pattern; there is no separate floating-point encoding.
func (o ByteOrder) Float32(b []byte) float32 { return math.Float32frombits(o.Uint32(b)) }

// Float64 decodes eight bytes of b by reinterpreting the 64-bit integer bit
// pattern.
func (o ByteOrder) Float64(b []byte) float64 { return math.Float64frombits(o.Uint64(b)) }

// PutFloat32 encodes the bit pattern of v into the first four bytes of b.
func (o ByteOrder) PutFloat32(b []byte, v float32) { o.PutUint32(b, math.Float32bits(v)) }

// PutFloat64 encodes the bit pattern of v into the first eight bytes of b.
func (o ByteOrder) PutFloat64(b []byte, v float64) { o.PutUint64(b, math.Float64bits(v)) }

// Char decodes two bytes of b as a UTF-16 code unit.
func (o ByteOrder) Char(b []byte) rune { return rune(o.Uint16(b)) }

// PutChar encodes the UTF-16 code unit c into the first two bytes of b.
// Code points above U+FFFF must be split into surrogates by the caller.
func (o ByteOrder) PutChar(b []byte, c rune) { o.PutUint16(b, uint16(c)) }

// Composition codec. Stream readers hand bytes over one at a time, in the
// order they arrived on the wire; each byte is zero-extended before shifting
// so unsigned composition never sign-extends.

// Combine16 composes two stream-order bytes into a uint16.
func (o ByteOrder) Combine16(b0, b1 byte) uint16 {
	if o == BigEndian {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

// Combine32 composes four stream-order bytes into a uint32.
func (o ByteOrder) Combine32(b0, b1, b2, b3 byte) uint32 {
	if o == BigEndian {
		return uint32(b0)<<24 | uint32(b1)<<16 | uint32(b2)<<8 | uint32(b3)
	}
	return uint32(b3)<<24 | uint32(b2)<<16 | uint32(b1)<<8 | uint32(b0)
}

// Combine64 composes eight stream-order bytes into a uint64.
func (o ByteOrder) Combine64(b0, b1, b2, b3, b4, b5, b6, b7 byte) uint64 {
	if o == BigEndian {
		return uint64(b0)<<56 | uint64(b1)<<48 | uint64(b2)<<40 | uint64(b3)<<32 |
			uint64(b4)<<24 | uint64(b5)<<16 | uint64(b6)<<8 | uint64(b7)
	}
	return uint64(b7)<<56 | uint64(b6)<<48 | uint64(b5)<<40 | uint64(b4)<<32 |
		uint64(b3)<<24 | uint64(b2)<<16 | uint64(b1)<<8 | uint64(b0)
}

// Split16 decomposes v into two bytes in stream order.
func (o ByteOrder) Split16(v uint16) [2]byte {
	var b [2]byte
	o.PutUint16(b[:], v)
	return b
}

// Split32 decomposes v into four bytes in stream order.
func (o ByteOrder) Split32(v uint32) [4]byte {
	var b [4]byte
	o.PutUint32(b[:], v)
	return b
}

// Split64 decomposes v into eight bytes in stream order.
func (o ByteOrder) Split64(v uint64) [8]byte {
	var b [8]byte
	o.PutUint64(b[:], v)
	return b
}
