package tlv

import (
	"errors"
	"fmt"
)

// Error conditions.
var (
	ErrIncomplete   = errors.New("incomplete input")
	ErrTail         = errors.New("junk after end of TLV")
	ErrType         = errors.New("TLV-TYPE out of range")
	ErrTypeMismatch = errors.New("unexpected TLV-TYPE")
	ErrVarNumWidth  = errors.New("VAR-NUMBER-9 is not supported")
	ErrNNILength    = errors.New("bad NonNegativeInteger length")
	ErrCritical     = errors.New("unrecognized critical TLV-TYPE")
	ErrOrder        = errors.New("TLV-TYPE out of order")
	ErrRequired     = errors.New("missing required TLV-TYPE")
	ErrEnum         = errors.New("enum value not allowed")
	ErrText         = errors.New("invalid UTF-8 text")
	ErrRange        = errors.New("out of range")
	ErrErrorField   = errors.New("Error(nil) field")
	ErrUnbalanced   = errors.New("unbalanced BeginValue and EndValue")
)

// ErrTypeExpect returns an error that indicates TLV-TYPE is not the expected one.
func ErrTypeExpect(expected uint32, actual uint32) error {
	return fmt.Errorf("%w: expect 0x%X, got 0x%X", ErrTypeMismatch, expected, actual)
}
