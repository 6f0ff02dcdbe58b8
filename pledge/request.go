// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pledge

import (
	"errors"
	"strings"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidArea   = errors.New("unknown interest area")
)

// InterestArea is how a supporter wants to help. The zero value means
// no preference.
type InterestArea string

const (
	AreaNone          InterestArea = ""
	AreaJustReminders InterestArea = "just_reminders"
	AreaVolunteering  InterestArea = "volunteering"
	AreaDesignSocial  InterestArea = "design_social"
	AreaStrategy      InterestArea = "strategy"
)

var areaLabels = map[InterestArea]string{
	AreaNone:          "No preference",
	AreaJustReminders: "Voting reminders only",
	AreaVolunteering:  "Volunteering (tabling, outreach, class presentations)",
	AreaDesignSocial:  "Communications support (design, social media)",
	AreaStrategy:      "Strategy and campaign planning",
}

// InterestAreas lists the selectable areas in display order, starting with
// no preference
func InterestAreas() []InterestArea {
	return []InterestArea{AreaNone, AreaJustReminders, AreaVolunteering, AreaDesignSocial, AreaStrategy}
}

func (a InterestArea) Valid() bool {
	_, ok := areaLabels[a]
	return ok
}

func (a InterestArea) Label() string {
	return areaLabels[a]
}

// Request is the pledge form. Edits return a modified copy.
type Request struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	InterestArea InterestArea `json:"interest_area"`
	PledgeToVote bool         `json:"pledge_to_vote"`
}

// DefaultRequest is an empty form with the vote pledge ticked
func DefaultRequest() Request {
	return Request{PledgeToVote: true}
}

func (r Request) WithName(name string) Request {
	r.Name = name
	return r
}

func (r Request) WithEmail(email string) Request {
	r.Email = email
	return r
}

func (r Request) WithInterestArea(area InterestArea) Request {
	r.InterestArea = area
	return r
}

func (r Request) WithPledgeToVote(v bool) Request {
	r.PledgeToVote = v
	return r
}

// Validate checks the fields that must be filled in before anything is sent.
// Email shape is left to the pledge service.
func (r Request) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ErrNameRequired)
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, ErrEmailRequired)
	}
	if !r.InterestArea.Valid() {
		errs = append(errs, ErrInvalidArea)
	}
	return errors.Join(errs...)
}
