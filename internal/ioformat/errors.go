// Package ioformat implements the instance text parser and time-major
// output writer (spec §6), the system's only external-facing boundary.
package ioformat

import "errors"

// Sentinel errors for ParseInstance.
var (
	// ErrUnreadable indicates the input could not be read at all.
	ErrUnreadable = errors.New("ioformat: input unreadable")
	// ErrEmptyInstance indicates the input file contained no lines.
	ErrEmptyInstance = errors.New("ioformat: empty instance")
	// ErrMalformedGrid indicates a grid line had the wrong length or the
	// grid had no rows.
	ErrMalformedGrid = errors.New("ioformat: malformed grid")
	// ErrMissingHeader indicates the "charge <N>" or "packages" header
	// line was missing or malformed.
	ErrMissingHeader = errors.New("ioformat: missing or malformed header")
	// ErrMalformedDelivery indicates a delivery line was too short to
	// carry its three single-character fields.
	ErrMalformedDelivery = errors.New("ioformat: malformed delivery line")
)
