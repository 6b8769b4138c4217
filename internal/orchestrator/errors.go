package orchestrator

import "errors"

// Sentinel errors for Run.
var (
	// ErrNoSolution indicates no robot could complete a delivery's four
	// legs; the caller reports "No solution" and exits 0.
	ErrNoSolution = errors.New("orchestrator: no robot could complete delivery")
	// ErrNoChargers indicates the instance has deliveries but no chargers
	// at all, making every delivery's leg B unplannable from the start.
	ErrNoChargers = errors.New("orchestrator: instance has no chargers")
)
