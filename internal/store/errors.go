package store

import "errors"

var (
	// ErrCorruptData marks a data file that exists but cannot be decoded.
	// Load still succeeds with defaults; the file is only replaced by the
	// next successful Save.
	ErrCorruptData = errors.New("data file is not well-formed")

	// ErrInvalidGoal rejects non-positive goal values.
	ErrInvalidGoal = errors.New("goal must be a positive number of seconds")

	// ErrInvalidCategory rejects empty or duplicate additions and removal
	// of a missing or the sole remaining category.
	ErrInvalidCategory = errors.New("invalid category edit")
)
