package types

import "io"

// Medium is an already-open seekable byte store. An edit.Editor takes
// exclusive ownership of its Medium for the editor's full lifetime: the
// caller must not move the medium's offset behind the editor's back.
//
// *os.File satisfies Medium, as does medium.Buffer and medium.Mapped.
type Medium interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}
