package errors

import (
	"errors"
	"fmt"
)

var (
	EndpointUnreachable = errors.New("endpoint unreachable")
	Transport           = errors.New("transport error")
	Remote              = errors.New("remote error")
)

// SubmissionError is returned for a single failed record submission. It matches
// both its Kind and the underlying cause with errors.Is / errors.As.
type SubmissionError struct {
	Kind error
	Err  error
}

func (s SubmissionError) Unwrap() []error {
	return []error{s.Kind, s.Err}
}

func (s SubmissionError) Error() string {
	return s.Err.Error()
}

func NewTransportError(err error) error {
	return SubmissionError{Kind: Transport, Err: err}
}

func NewRemoteError(message string) error {
	return SubmissionError{Kind: Remote, Err: errors.New(message)}
}

func NewUnreachableError(err error) error {
	return fmt.Errorf("%w: %w", EndpointUnreachable, err)
}

// Cause returns the underlying error without the kind prefix
func Cause(err error) error {
	var submissionErr SubmissionError
	if errors.As(err, &submissionErr) {
		return submissionErr.Err
	}
	return err
}
