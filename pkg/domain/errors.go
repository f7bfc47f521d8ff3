package domain

import "errors"

// ErrWidgetClosed is returned when an operation needs a live widget after teardown.
var ErrWidgetClosed = errors.New("widget closed")

// ErrInvalidSchedule is returned when an animation schedule can't produce a roll.
var ErrInvalidSchedule = errors.New("invalid animation schedule")
