package fair

import "errors"

var (
	// ErrInvalidSeed indicates a seed string is empty or contains
	// characters outside the allowed alphabet.
	ErrInvalidSeed = errors.New("seed must be non-empty and alphanumeric")

	// ErrInvalidMineCount indicates a mine count outside [1, 24].
	ErrInvalidMineCount = errors.New("mine count must be between 1 and 24")

	// ErrNegativeIndex indicates a negative stream index or turn.
	ErrNegativeIndex = errors.New("index must be non-negative")

	// ErrInvalidPlayer indicates a player index other than 1 or 2.
	ErrInvalidPlayer = errors.New("player must be 1 or 2")

	// ErrInvalidCount indicates a stream-prefix request for fewer than
	// one element.
	ErrInvalidCount = errors.New("count must be at least 1")
)
