package edit

// Each peek records the cursor, performs the corresponding read, and
// restores the cursor in a defer. Every exit path, failures included,
// leaves the position untouched.

// PeekUint8 reads the next byte without moving the cursor.
func (e *Editor) PeekUint8() (byte, error) {
	defer e.restore(e.pos)
	return e.ReadUint8()
}

// PeekInt8 reads the next signed byte without moving the cursor.
func (e *Editor) PeekInt8() (int8, error) {
	defer e.restore(e.pos)
	return e.ReadInt8()
}

// PeekChar reads the next UTF-16 code unit without moving the cursor.
func (e *Editor) PeekChar() (rune, error) {
	defer e.restore(e.pos)
	return e.ReadChar()
}

// PeekInt16 reads the next int16 without moving the cursor.
func (e *Editor) PeekInt16() (int16, error) {
	defer e.restore(e.pos)
	return e.ReadInt16()
}

// PeekUint16 reads the next uint16 without moving the cursor.
func (e *Editor) PeekUint16() (uint16, error) {
	defer e.restore(e.pos)
	return e.ReadUint16()
}

// PeekInt32 reads the next int32 without moving the cursor.
func (e *Editor) PeekInt32() (int32, error) {
	defer e.restore(e.pos)
	return e.ReadInt32()
}

// PeekUint32 reads the next uint32 without moving the cursor.
func (e *Editor) PeekUint32() (uint32, error) {
	defer e.restore(e.pos)
	return e.ReadUint32()
}

// PeekInt64 reads the next int64 without moving the cursor.
func (e *Editor) PeekInt64() (int64, error) {
	defer e.restore(e.pos)
	return e.ReadInt64()
}

// PeekUint64 reads the next uint64 without moving the cursor.
func (e *Editor) PeekUint64() (uint64, error) {
	defer e.restore(e.pos)
	return e.ReadUint64()
}

// PeekFloat32 reads the next float32 without moving the cursor.
func (e *Editor) PeekFloat32() (float32, error) {
	defer e.restore(e.pos)
	return e.ReadFloat32()
}

// PeekFloat64 reads the next float64 without moving the cursor.
func (e *Editor) PeekFloat64() (float64, error) {
	defer e.restore(e.pos)
	return e.ReadFloat64()
}

// restore receives the cursor position recorded before the wrapped read.
func (e *Editor) restore(pos int64) { e.pos = pos }
