package medium_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/binkit/edit"
	"github.com/joshuapare/binkit/medium"
	"github.com/joshuapare/binkit/order"
	"github.com/joshuapare/binkit/pkg/types"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapped.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMapped_Read(t *testing.T) {
	path := writeTempFile(t, []byte{0x01, 0x02, 0x03, 0x04})

	m, err := medium.Map(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(4), m.Size())

	p := make([]byte, 4)
	n, err := m.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, p)
}

func TestMapped_ReadOnly(t *testing.T) {
	path := writeTempFile(t, []byte{1})

	m, err := medium.Map(path)
	require.NoError(t, err)
	defer m.Close()

	_, err = m.Write([]byte{2})
	assert.ErrorIs(t, err, types.ErrReadOnly)
}

func TestMapped_AsEditorMedium(t *testing.T) {
	path := writeTempFile(t, []byte{0x01, 0x02})

	m, err := medium.Map(path)
	require.NoError(t, err)

	e := edit.NewWithOrder(m, order.BigEndian)
	defer e.Close()

	v, err := e.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v)

	more, err := e.HasRemaining()
	require.NoError(t, err)
	assert.False(t, more)
}

func TestMapped_DoubleClose(t *testing.T) {
	path := writeTempFile(t, []byte{1, 2, 3})

	m, err := medium.Map(path)
	require.NoError(t, err)
	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	_, err = m.Read(make([]byte, 1))
	assert.ErrorIs(t, err, types.ErrClosed)
}

func TestMapped_EmptyFile(t *testing.T) {
	path := writeTempFile(t, nil)

	m, err := medium.Map(path)
	require.NoError(t, err)
	defer m.Close()
	assert.Zero(t, m.Size())
}
