package edit

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"

	"github.com/joshuapare/binkit/pkg/types"
)

// ReadStringLatin1 consumes n bytes and decodes them as Windows-1252. The
// read is all-or-nothing: on failure the cursor does not move.
func (e *Editor) ReadStringLatin1(n int) (string, error) {
	if n < 0 {
		return "", types.ErrInvalidPosition
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := e.readFull(buf); err != nil {
		return "", err
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252 string: %w", err)
	}
	return string(decoded), nil
}

// ReadStringUTF16 consumes n UTF-16 code units (2n bytes) in the editor's
// byte order and decodes them, pairing surrogates.
func (e *Editor) ReadStringUTF16(n int) (string, error) {
	if n < 0 {
		return "", types.ErrInvalidPosition
	}
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, 2*n)
	if err := e.readFull(buf); err != nil {
		return "", err
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = e.ord.Uint16(buf[2*i:])
	}
	return string(utf16.Decode(units)), nil
}
