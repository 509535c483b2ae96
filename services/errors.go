package services

import "fmt"

// Error kinds surfaced to the HTTP layer. Controllers translate them to
// status codes; anything else renders as a generic 500. "No data" results are
// deliberately not errors — they come back as empty payloads.

// ValidationError means the caller sent missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced user, profile, or log does not exist.
// Distinct from "found but empty".
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// EstimationError means the external nutrition estimator failed or returned
// output that could not be parsed. Nothing is persisted when this happens.
type EstimationError struct {
	Msg   string
	Cause error
}

func (e *EstimationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nutrition estimation failed: %s: %v", e.Msg, e.Cause)
	}
	return "nutrition estimation failed: " + e.Msg
}

func (e *EstimationError) Unwrap() error { return e.Cause }

// StoreError wraps a persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
