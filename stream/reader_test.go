package stream_test

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binkit/order"
	"github.com/joshuapare/binkit/pkg/types"
	"github.com/joshuapare/binkit/stream"
)

func TestReader_LittleEndian(t *testing.T) {
	src := bytes.NewReader([]byte{
		0x01,
		0x01, 0x02,
		0x44, 0x33, 0x22, 0x11,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	})
	r := stream.NewReader(src)

	b, err := r.ReadUint8()
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), b)

	v16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), v16)

	v32, err := r.ReadInt32()
	require.NoError(t, err)
	assert.Equal(t, int32(0x11223344), v32)

	v64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), v64)
}

func TestReader_BigEndian(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0x11, 0x22, 0x33, 0x44})
	r := stream.NewReaderWithOrder(src, order.BigEndian)

	v16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v16)

	v32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x11223344), v32)
}

func TestReader_Floats(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriterWithOrder(&buf, order.BigEndian)
	require.NoError(t, w.WriteFloat32(3.14))
	require.NoError(t, w.WriteFloat64(-2.718281828))

	r := stream.NewReaderWithOrder(bytes.NewReader(buf.Bytes()), order.BigEndian)
	f32, err := r.ReadFloat32()
	require.NoError(t, err)
	assert.Equal(t, math.Float32bits(3.14), math.Float32bits(f32))

	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(-2.718281828), math.Float64bits(f64))
}

func TestReader_SignedAndChar(t *testing.T) {
	src := bytes.NewReader([]byte{0xFF, 0xFE, 0xFF, 0xE9, 0x00})
	r := stream.NewReader(src)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	assert.Equal(t, int8(-1), i8)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	c, err := r.ReadChar()
	require.NoError(t, err)
	assert.Equal(t, 'é', c)
}

func TestReader_ShortSource(t *testing.T) {
	r := stream.NewReader(bytes.NewReader([]byte{0x01, 0x02}))

	_, err := r.ReadUint32()
	require.ErrorIs(t, err, types.ErrEndOfData)
	assert.ErrorIs(t, err, io.EOF)

	// Exhausted source: byte-wise reads report end of data too.
	_, err = r.ReadByte()
	assert.ErrorIs(t, err, types.ErrEndOfData)
}

func TestReader_Bulk(t *testing.T) {
	r := stream.NewReader(bytes.NewReader([]byte{1, 2, 3}))

	p := make([]byte, 8)
	n, err := r.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = r.Read(p)
	assert.ErrorIs(t, err, types.ErrEndOfData)
}
