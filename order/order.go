// Package order implements the byte-order selector and the pure codec for
// fixed-width primitives. The codec performs no I/O: block routines require
// the caller to supply exactly enough bytes, composition routines take the
// bytes one at a time in stream order.
package order

import "encoding/binary"

// ByteOrder selects how a multi-byte value's bytes are arranged. The zero
// value is LittleEndian, the toolkit-wide default.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return "unknown"
}

// Binary returns the equivalent encoding/binary order for block codec paths.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Byte widths of the fixed-width primitives.
const (
	Width8  = 1
	Width16 = 2
	Width32 = 4
	Width64 = 8
)
