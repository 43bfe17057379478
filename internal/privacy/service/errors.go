package service

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden          = errors.New("not allowed to access this user's privacy data")
	ErrInvalidRequest     = errors.New("invalid request")
	ErrHandleTaken        = errors.New("handle already in use")
	ErrHandleNotFound     = errors.New("handle not found")
	ErrHandleLimitReached = errors.New("active handle limit reached")
	ErrProfileNotFound    = errors.New("profile not found")
)

// TransitionStep names the write an identity transition failed on.
type TransitionStep string

const (
	StepProfile  TransitionStep = "profile"
	StepSettings TransitionStep = "settings"
)

// TransitionError reports a failed reveal or hide. Both writes run in one
// transaction, so when this is returned neither was persisted.
type TransitionError struct {
	Transition string // "reveal" or "hide"
	Step       TransitionStep
	Err        error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("identity %s failed at %s step: %v", e.Transition, e.Step, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
