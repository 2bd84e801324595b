package similarity

import "errors"

// Sentinel kinds for similarity errors.
var (
	// ErrUnavailable means the strategy's backing model could not be loaded
	// or reached; callers should fall back to another strategy.
	ErrUnavailable = errors.New("similarity strategy unavailable")

	// ErrUnknownStrategy means configuration named a strategy that does not exist.
	ErrUnknownStrategy = errors.New("unknown similarity strategy")
)
