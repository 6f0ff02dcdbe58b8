// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pledge

import "errors"

// Status of the current submission attempt
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

const (
	MsgSubmissionFailed = "Submission failed. Please try again."
	MsgUnexpected       = "An error occurred. Please try again."
)

// State is an immutable snapshot of the submission; transitions return a new value
type State struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Begin starts an attempt, clearing any previous error
func (s State) Begin() State {
	return State{Status: StatusSubmitting}
}

func (s State) Succeed() State {
	return State{Status: StatusSuccess}
}

// Fail records a failed attempt with a user-facing message derived from err
func (s State) Fail(err error) State {
	return State{Status: StatusError, Message: MessageFor(err)}
}

func (s State) Submitting() bool {
	return s.Status == StatusSubmitting
}

// MessageFor turns a Send error into the text shown to the user.
// A service-provided detail wins; otherwise a rejected submission and a
// transport failure get different generic messages.
func MessageFor(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		if remote.Detail != "" {
			return remote.Detail
		}
		return MsgSubmissionFailed
	}
	return MsgUnexpected
}
