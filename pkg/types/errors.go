package types

import "errors"

// Input errors reported at the caller boundary, before any trip is built.
var (
	ErrHomeMissing   = errors.New("home location is required")
	ErrInputMissing  = errors.New("input path is required")
	ErrInputNotFound = errors.New("input file does not exist")
	ErrSourceUnknown = errors.New("unknown record source")
	ErrFormatUnknown = errors.New("unknown output format")
)

// Record and aggregate errors.
var (
	// ErrMalformedRecord is returned by record sources for a line or row that
	// names a known segment kind but cannot be turned into a segment.
	ErrMalformedRecord = errors.New("malformed segment record")

	// ErrEmptyOutbound is returned by NewTrip when no outbound leg is given.
	ErrEmptyOutbound = errors.New("trip needs at least one outbound leg")
)
