package model

import "errors"

// Sentinel errors for instance lookups.
var (
	// ErrUnknownShelf indicates a delivery referenced a shelf letter the
	// instance never declared.
	ErrUnknownShelf = errors.New("model: unknown shelf letter")
	// ErrNoChargers indicates an instance has no chargers at all, making
	// every delivery's leg B/D unplannable.
	ErrNoChargers = errors.New("model: instance has no chargers")
)
