package entities

import "fmt"

// ValidationError is a rejected operation: a guard or input precondition did
// not hold. The entity it was raised for is left unchanged.
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// ConfigurationError aborts an operation because a collaborator it depends on
// (for example the result number sequence) is not set up.
type ConfigurationError struct {
	Reason string
	Err    error
}

func NewConfigurationError(reason string, err error) *ConfigurationError {
	return &ConfigurationError{Reason: reason, Err: err}
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// AnomalyError reports stored data that breaks a result invariant, such as
// two lines referencing the same parameter.
type AnomalyError struct {
	Collection string
	Key        string
	Reason     string
}

func (e *AnomalyError) Error() string {
	return fmt.Sprintf("%s: %s (key %q)", e.Collection, e.Reason, e.Key)
}
