package framework

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Registration and argument errors.
var (
	// ErrDuplicateAlias is returned when an alias is already taken anywhere in the registry.
	ErrDuplicateAlias = errors.New("duplicate alias")

	// ErrDuplicateName is returned when a command name or alias collides within its group.
	ErrDuplicateName = errors.New("duplicate command name")

	// ErrDuplicateGroup is returned when a group name is registered twice.
	ErrDuplicateGroup = errors.New("duplicate group")

	// ErrDuplicateRootGroup is returned when a second prefix-less group is registered.
	// It could never be reached because the first root group always matches.
	ErrDuplicateRootGroup = errors.New("duplicate root group")

	// ErrInvalidDescriptor is returned for nil, unnamed or handler-less descriptors.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrRegistrySealed is returned when registering after a Dispatcher was built.
	ErrRegistrySealed = errors.New("registry is sealed")

	// ErrArgsExhausted is returned when an argument is requested past the end.
	ErrArgsExhausted = errors.New("no arguments left")

	// ErrNoSender is returned when replying from a context without a sender.
	ErrNoSender = errors.New("no message sender configured")
)

// RegistrationError describes why a group could not be registered.
type RegistrationError struct {
	Group string
	Key   string
	Err   error
}

func (e *RegistrationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("register group %q: %v", e.Group, e.Err)
	}
	return fmt.Sprintf("register group %q: %v: %q", e.Group, e.Err, e.Key)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// CheckFailedError reports the predicate that denied a command.
type CheckFailedError struct {
	Check   string
	Message string
}

func (e *CheckFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("check %q failed", e.Check)
	}
	return fmt.Sprintf("check %q failed: %s", e.Check, e.Message)
}

// RatelimitedError reports a bucket denial and when to retry.
type RatelimitedError struct {
	Bucket     string
	RetryAfter time.Duration
}

func (e *RatelimitedError) Error() string {
	return fmt.Sprintf("rate limited by bucket %q, retry after %s", e.Bucket, e.RetryAfter)
}

// Seconds returns the retry delay rounded up to whole seconds.
func (e *RatelimitedError) Seconds() int64 {
	return int64(math.Ceil(e.RetryAfter.Seconds()))
}

// HandlerError wraps a failure returned (or panicked) by a command handler.
type HandlerError struct {
	Command string
	Err     error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ArgumentError reports an argument that could not be parsed.
type ArgumentError struct {
	Position int
	Value    string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d (%q): %v", e.Position+1, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
