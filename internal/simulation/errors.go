package simulation

import "errors"

// Fatal input errors. Both abort the whole computation before any
// downstream stage runs; neither is retried, the same input deterministically
// reproduces the same error.
var (
	// ErrMalformedInput means the uploaded loss series could not be parsed
	// at all (as opposed to individual rows being skipped).
	ErrMalformedInput = errors.New("loss series cannot be parsed")

	// ErrInsufficientData means parsing succeeded but left zero usable
	// loss observations.
	ErrInsufficientData = errors.New("no usable loss observations")

	// ErrUnknownZone means the requested risk zone is not in the zone
	// catalogue.
	ErrUnknownZone = errors.New("unknown risk zone")
)
