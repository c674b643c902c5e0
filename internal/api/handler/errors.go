package handler

import "fmt"

// FailureError carries the client-facing message of a failed request next to
// its cause. The central error handler renders Message and logs Err.
type FailureError struct {
	Message string
	Err     error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *FailureError) Unwrap() error { return e.Err }

func fail(err error, message string) error {
	return &FailureError{Message: message, Err: err}
}
