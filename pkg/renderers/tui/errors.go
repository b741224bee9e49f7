package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoClampFields is returned when a form has no field with a usable bound.
	ErrNoClampFields = errors.New("tui: form has no clamped fields")
)
