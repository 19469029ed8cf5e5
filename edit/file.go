package edit

import (
	"fmt"
	"os"

	"github.com/joshuapare/binkit/order"
)

// Open opens the file at path read-write, creating it if absent, and binds
// a little-endian editor to it. The editor owns the file until Close.
func Open(path string) (*Editor, error) {
	return OpenWithOrder(path, order.LittleEndian)
}

// OpenWithOrder is Open with an explicit byte order.
func OpenWithOrder(path string, ord order.ByteOrder) (*Editor, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open editor medium: %w", err)
	}
	return NewWithOrder(f, ord), nil
}
