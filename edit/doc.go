// Package edit implements the random-access binary editor: direct reading
// and writing of fixed-width primitives over a seekable medium, without an
// intervening buffering layer.
//
// An Editor owns its medium and the single logical cursor into it. Scalar
// reads and writes are all-or-nothing with respect to the cursor: a failed
// multi-byte transfer never leaves the position partially advanced. Peek
// variants restore the cursor on every exit path, so format parsers can look
// ahead without bookkeeping.
//
// Editors are not safe for concurrent use; callers that share an instance
// across goroutines must serialize access externally.
package edit
