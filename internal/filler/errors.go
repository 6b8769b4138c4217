package filler

import "errors"

// ErrCannotEvade indicates a robot's randomized walk dead-ended before
// reaching the required trailing length; the caller reports an
// idle-evasion failure and exits 0.
var ErrCannotEvade = errors.New("filler: robot could not evade to required length")
