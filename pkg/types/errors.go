package types

import "io"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindEndOfData       ErrKind = iota // a read could not obtain enough bytes
	ErrKindInvalidPosition                // seek/skip target outside the contract
	ErrKindClosed                         // operation on a released handle
	ErrKindMedium                         // underlying medium failure, passed through
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrEndOfData indicates a scalar or composed read ran out of bytes. It
	// wraps io.EOF so errors.Is(err, io.EOF) holds for io.Reader consumers.
	ErrEndOfData = &Error{Kind: ErrKindEndOfData, Msg: "end of data", Err: io.EOF}
	// ErrInvalidPosition indicates a seek or skip to a disallowed offset.
	ErrInvalidPosition = &Error{Kind: ErrKindInvalidPosition, Msg: "invalid position"}
	// ErrClosed indicates an operation on an already-closed editor or medium.
	ErrClosed = &Error{Kind: ErrKindClosed, Msg: "handle is closed"}
	// ErrReadOnly indicates a mutation was attempted on a read-only medium.
	ErrReadOnly = &Error{Kind: ErrKindMedium, Msg: "medium is read-only"}
)
