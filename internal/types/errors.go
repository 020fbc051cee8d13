package types

import "fmt"

// ValidationError is a payload precondition violation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StepError records which step of a platform sequence failed
type StepError struct {
	Platform Platform
	Step     string
	Err      error
}

// NewStepError wraps err with the platform and step it came from
func NewStepError(platform Platform, step string, err error) *StepError {
	return &StepError{Platform: platform, Step: step, Err: err}
}

func (e *StepError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Platform, e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
