package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// FailureKind tags the recognized terminal failure conditions. Anything
// outside the taxonomy propagates as a plain error and keeps the default
// crash behavior.
type FailureKind string

const (
	// FailureCredentials: no usable AWS credentials could be resolved.
	FailureCredentials FailureKind = "credentials"
	// FailureAPI: the parameter store rejected a call after the SDK
	// exhausted its retries.
	FailureAPI FailureKind = "api"
	// FailureAborted: the user declined the confirmation prompt or
	// interrupted the run.
	FailureAborted FailureKind = "aborted"
)

// FatalError is a classified failure. Message is the single line printed to
// stderr before the process exits with code 1.
type FatalError struct {
	Kind    FailureKind
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}

var (
	ErrUserAborted     = &FatalError{Kind: FailureAborted, Message: "User aborted program"}
	ErrUserInterrupted = &FatalError{Kind: FailureAborted, Message: "User interrupted program"}
)

// CredentialsError builds the credentials-kind failure around the resolver's
// own error text.
func CredentialsError(err error) *FatalError {
	return &FatalError{
		Kind:    FailureCredentials,
		Message: fmt.Sprintf("failed to retrieve AWS credentials: %v", err),
	}
}

// ClassifyFatal maps an error from the survey pipeline onto the failure
// taxonomy. Pre-classified errors pass through unchanged, a cancelled
// context is the user interrupting the run, and an API error surfaces the
// service's own message. The second return is false for errors outside the
// taxonomy.
func ClassifyFatal(err error) (*FatalError, bool) {
	var fatal *FatalError
	if errors.As(err, &fatal) {
		return fatal, true
	}

	if errors.Is(err, context.Canceled) {
		return ErrUserInterrupted, true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return &FatalError{Kind: FailureAPI, Message: apiErr.ErrorMessage()}, true
	}

	return nil, false
}
