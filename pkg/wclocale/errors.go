package wclocale

import (
	"errors"
	"fmt"

	"github.com/wclocale/wclocale/internal/bindings"
)

var (
	// ErrLocaleUnavailable indicates the named or ambient locale could not be
	// resolved on this host.
	ErrLocaleUnavailable = errors.New("wclocale: locale unavailable")

	// ErrConversionIncomplete indicates a decode consumed a byte count
	// different from the input length, including invalid and truncated
	// sequences.
	ErrConversionIncomplete = errors.New("wclocale: conversion incomplete")

	// ErrEncodingFailure indicates an encode produced no bytes.
	ErrEncodingFailure = errors.New("wclocale: encoding failure")

	// ErrCGONotEnabled indicates the module was built without cgo and cannot
	// reach the native locale subsystem.
	ErrCGONotEnabled = errors.New("wclocale: cgo not enabled")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("wclocale.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// remapError converts bindings layer errors to public API errors.
func remapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bindings.ErrLocaleUnavailable):
		return ErrLocaleUnavailable
	case errors.Is(err, bindings.ErrConversionIncomplete):
		return ErrConversionIncomplete
	case errors.Is(err, bindings.ErrEncodingFailure):
		return ErrEncodingFailure
	case errors.Is(err, bindings.ErrCGONotEnabled):
		return ErrCGONotEnabled
	}
	return err
}

// opError wraps a bindings error for operation op.
func opError(op string, err error) error {
	return &Error{Op: op, Err: remapError(err)}
}
