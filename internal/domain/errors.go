package domain

import "errors"

var (
	ErrDeckNotFound     = errors.New("deck not found")
	ErrInvalidDeckCount = errors.New("deck count must be at least 1")
)
