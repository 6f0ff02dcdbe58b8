// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pledge

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrSubmitInProgress is returned when Submit is called while an earlier
// attempt has not settled. No request is sent.
var ErrSubmitInProgress = errors.New("pledge submission already in progress")

// Flow owns one pledge form and the state of its submission.
// It is safe for concurrent use; at most one Send is in flight.
type Flow struct {
	sender   Sender
	logger   *slog.Logger
	inflight *semaphore.Weighted

	mu    sync.Mutex
	form  Request
	state State
}

type FlowOption func(*Flow)

func WithLogger(l *slog.Logger) FlowOption {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithForm pre-fills the form instead of DefaultRequest
func WithForm(r Request) FlowOption {
	return func(f *Flow) {
		f.form = r
	}
}

func NewFlow(sender Sender, opts ...FlowOption) *Flow {
	f := &Flow{
		sender:   sender,
		logger:   slog.Default(),
		inflight: semaphore.NewWeighted(1),
		form:     DefaultRequest(),
		state:    State{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) Form() Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form
}

// Edit replaces the form with edit(current form)
func (f *Flow) Edit(edit func(Request) Request) Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form = edit(f.form)
	return f.form
}

// CanSubmit is false while an attempt is in flight; hosts disable their
// submit trigger on it
func (f *Flow) CanSubmit() bool {
	return !f.State().Submitting()
}

// Reset returns to Idle with a default form. Ignored while submitting.
func (f *Flow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.Submitting() {
		return
	}
	f.form = DefaultRequest()
	f.state = State{Status: StatusIdle}
}

// Submit validates the form and sends it, blocking until the pledge service
// answers. Validation failures and concurrent calls return an error without
// touching state or the network. Remote failures are not returned as errors;
// they land in the returned State.
func (f *Flow) Submit(ctx context.Context) (State, error) {
	if !f.inflight.TryAcquire(1) {
		return f.State(), ErrSubmitInProgress
	}
	defer f.inflight.Release(1)

	f.mu.Lock()
	req := f.form
	if err := req.Validate(); err != nil {
		state := f.state
		f.mu.Unlock()
		return state, err
	}
	f.state = f.state.Begin()
	f.mu.Unlock()

	err := f.sender.Send(ctx, req)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = f.state.Fail(err)
		f.logger.Warn("pledge submission failed", "error", err, "message", f.state.Message)
		return f.state, nil
	}

	f.state = f.state.Succeed()
	f.form = DefaultRequest()
	f.logger.Info("pledge submitted", "interest_area", string(req.InterestArea), "pledge_to_vote", req.PledgeToVote)
	return f.state, nil
}
