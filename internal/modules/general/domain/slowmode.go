package domain

import (
	"errors"
	"fmt"
)

// MaxSlowmode is the longest per-user rate limit Discord accepts, in seconds.
const MaxSlowmode = 21600

// ErrInvalidSlowmode is returned for slowmode values outside 0..MaxSlowmode.
var ErrInvalidSlowmode = errors.New("slowmode must be between 0 and 21600 seconds")

// Slowmode is a validated per-user message interval for a channel.
type Slowmode struct {
	seconds int
}

// NewSlowmode validates seconds and creates a Slowmode.
func NewSlowmode(seconds int64) (Slowmode, error) {
	if seconds < 0 || seconds > MaxSlowmode {
		return Slowmode{}, ErrInvalidSlowmode
	}
	return Slowmode{seconds: int(seconds)}, nil
}

// Seconds returns the interval in seconds.
func (s Slowmode) Seconds() int {
	return s.seconds
}

// Disabled reports whether the slowmode turns rate limiting off.
func (s Slowmode) Disabled() bool {
	return s.seconds == 0
}

// Describe returns the confirmation shown after applying the slowmode.
func (s Slowmode) Describe() string {
	if s.Disabled() {
		return "Disabled slowmode."
	}
	return fmt.Sprintf("Successfully set slowmode to %d seconds.", s.seconds)
}
