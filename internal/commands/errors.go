package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to the errors the shared handler can produce. Hosts
// dispatch on these rather than on message strings.
const (
	codeMessageInvalid  = "DOCSITE_MESSAGE_INVALID"
	codeRunCancelled    = "DOCSITE_RUN_CANCELLED"
	codeRunTimedOut     = "DOCSITE_RUN_TIMED_OUT"
	codeRunContextError = "DOCSITE_RUN_CONTEXT_ERROR"
	codeRunFailed       = "DOCSITE_RUN_FAILED"
)

// wrapValidationError tags message validation failures. Errors already carrying
// a go-errors wrapper pass through untouched so categories set closer to the
// source win.
func wrapValidationError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command message failed validation").
		WithTextCode(codeMessageInvalid)
}

// wrapContextError distinguishes cancellation from deadline expiry so callers
// can tell an aborted run from one that ran out of time.
func wrapContextError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run cancelled").
			WithTextCode(codeRunCancelled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run exceeded its deadline").
			WithTextCode(codeRunTimedOut)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command run context error").
			WithTextCode(codeRunContextError)
	}
}

// wrapExecuteError tags failures raised by the command body itself.
func wrapExecuteError(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command run failed").
		WithTextCode(codeRunFailed)
}
