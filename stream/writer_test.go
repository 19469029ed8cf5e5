package stream_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binkit/order"
	"github.com/joshuapare/binkit/pkg/types"
	"github.com/joshuapare/binkit/stream"
)

func TestWriter_LittleEndian(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriter(&buf)

	require.NoError(t, w.WriteUint8(0x01))
	require.NoError(t, w.WriteUint16(0x0102))
	require.NoError(t, w.WriteInt32(0x11223344))
	require.NoError(t, w.WriteUint64(0x0102030405060708))

	want := []byte{
		0x01,
		0x02, 0x01,
		0x44, 0x33, 0x22, 0x11,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestWriter_BigEndian(t *testing.T) {
	var buf bytes.Buffer
	w := stream.NewWriterWithOrder(&buf, order.BigEndian)

	require.NoError(t, w.WriteUint16(0x0102))
	require.NoError(t, w.WriteInt64(-1))
	require.NoError(t, w.WriteChar('A'))

	want := []byte{
		0x01, 0x02,
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x41,
	}
	assert.Equal(t, want, buf.Bytes())
}

func TestWriter_RoundTripThroughReader(t *testing.T) {
	for _, ord := range []order.ByteOrder{order.LittleEndian, order.BigEndian} {
		var buf bytes.Buffer
		w := stream.NewWriterWithOrder(&buf, ord)
		require.NoError(t, w.WriteInt16(-12345))
		require.NoError(t, w.WriteUint32(0xDEADBEEF))
		require.NoError(t, w.WriteFloat64(6.125))

		r := stream.NewReaderWithOrder(bytes.NewReader(buf.Bytes()), ord)
		i16, err := r.ReadInt16()
		require.NoError(t, err)
		assert.Equal(t, int16(-12345), i16, "%v", ord)
		u32, err := r.ReadUint32()
		require.NoError(t, err)
		assert.Equal(t, uint32(0xDEADBEEF), u32, "%v", ord)
		f64, err := r.ReadFloat64()
		require.NoError(t, err)
		assert.Equal(t, 6.125, f64, "%v", ord)
	}
}

type failingSink struct{}

func (failingSink) Write(p []byte) (int, error) { return 0, errors.New("device gone") }

func TestWriter_SinkFailure(t *testing.T) {
	w := stream.NewWriter(failingSink{})

	err := w.WriteInt32(1)
	var te *types.Error
	require.True(t, errors.As(err, &te))
	assert.Equal(t, types.ErrKindMedium, te.Kind)
	assert.ErrorContains(t, err, "device gone")
}
