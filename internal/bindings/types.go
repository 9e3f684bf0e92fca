package bindings

import "errors"

var (
	// ErrLocaleUnavailable reports that none of the requested locale names
	// could be resolved on this host.
	ErrLocaleUnavailable = errors.New("wclocale/internal/bindings: locale unavailable")

	// ErrConversionIncomplete reports a decode that did not consume exactly
	// the requested number of bytes. Invalid, truncated and over-long
	// sequences all collapse into this one condition.
	ErrConversionIncomplete = errors.New("wclocale/internal/bindings: conversion incomplete")

	// ErrEncodingFailure reports an encode that produced no bytes.
	ErrEncodingFailure = errors.New("wclocale/internal/bindings: encoding failure")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native locale subsystem.
	ErrCGONotEnabled = errors.New("wclocale/internal/bindings: cgo not enabled")
)
