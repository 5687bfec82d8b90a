// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package atlas

import "fmt"

// ErrorKind classifies a build failure the way spec §7 enumerates them, so
// callers can distinguish "the font file is missing" from "this rect
// doesn't fit" with errors.As instead of string matching.
type ErrorKind int

const (
	// ErrInputNotFound: the font file or source PNG could not be opened.
	ErrInputNotFound ErrorKind = iota
	// ErrDecode: a font or PNG byte stream was malformed.
	ErrDecode
	// ErrCapacity: a fixed-size packing could not place every rectangle.
	ErrCapacity
	// ErrUnsupportedFormat: an unsupported bit depth or colour type was requested.
	ErrUnsupportedFormat
	// ErrArgument: an invalid combination of CLI flags or BuildOptions.
	ErrArgument
)

func (k ErrorKind) String() string {
	switch k {
	case ErrInputNotFound:
		return "input not found"
	case ErrDecode:
		return "decode error"
	case ErrCapacity:
		return "capacity error"
	case ErrUnsupportedFormat:
		return "unsupported format"
	case ErrArgument:
		return "argument error"
	default:
		return "unknown error"
	}
}

// Error wraps a build failure with the ErrorKind spec §7 sorts it under.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("atlas: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("atlas: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}
