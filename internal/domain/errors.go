package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure, no infrastructure dependency.

var (
	// ErrInvalidInput rejects an operation before any state is touched:
	// same source and target language, empty text, locked language, bad profile.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoProfile is returned when an operation needs a set-up player.
	ErrNoProfile = errors.New("no player profile, run setup first")

	// ErrProfileExists is returned when setup runs on an existing player.
	ErrProfileExists = errors.New("player profile already exists")

	// ErrNotFound is returned for an unknown notification id.
	ErrNotFound = errors.New("not found")
)
