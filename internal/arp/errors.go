package arp

import (
	"errors"
	"fmt"
)

// Truncation kinds. Both send the buffer to the opaque fallback.
var (
	ErrTruncatedHeader = errors.New("arp: truncated header")
	ErrTruncatedBody   = errors.New("arp: truncated body")
)

// TruncatedError reports how many bytes a decode needed and how many were captured.
type TruncatedError struct {
	Kind error
	Need int
	Have int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%v: need=%d have=%d", e.Kind, e.Need, e.Have)
}

func (e *TruncatedError) Unwrap() error {
	return e.Kind
}
