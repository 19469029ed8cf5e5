package types

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	e := &Error{Kind: ErrKindMedium, Msg: "medium read", Err: errors.New("device gone")}
	if got := e.Error(); got != "medium read: device gone" {
		t.Fatalf("Error() = %q", got)
	}
	bare := &Error{Kind: ErrKindClosed, Msg: "handle is closed"}
	if got := bare.Error(); got != "handle is closed" {
		t.Fatalf("Error() = %q", got)
	}
	var nilErr *Error
	if got := nilErr.Error(); got != "<nil>" {
		t.Fatalf("nil Error() = %q", got)
	}
}

func TestSentinelMatching(t *testing.T) {
	wrapped := fmt.Errorf("read int32: %w", ErrEndOfData)
	if !errors.Is(wrapped, ErrEndOfData) {
		t.Fatal("wrapped error should match ErrEndOfData")
	}
	if !errors.Is(ErrEndOfData, io.EOF) {
		t.Fatal("ErrEndOfData should wrap io.EOF")
	}
	if errors.Is(ErrInvalidPosition, io.EOF) {
		t.Fatal("ErrInvalidPosition must not match io.EOF")
	}

	var te *Error
	if !errors.As(wrapped, &te) || te.Kind != ErrKindEndOfData {
		t.Fatalf("errors.As kind = %v", te.Kind)
	}
}
