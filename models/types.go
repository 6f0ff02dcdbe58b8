package models

// Pledge outcome statuses reported by POST /api/pledge
const (
	PledgeStatusSuccess = "success"
	PledgeStatusError   = "error"
)

// Request types

// PledgeRequest is the pledge wire body, shared with the remote pledge
// service. A missing pledge_to_vote means true.
type PledgeRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	InterestArea string `json:"interest_area"`
	PledgeToVote *bool  `json:"pledge_to_vote,omitempty"`
}

// Response types

type StatusResponse struct {
	Label       string `json:"label" yaml:"label"`
	Deficit     string `json:"deficit" yaml:"deficit"`
	ClubFunding string `json:"club_funding" yaml:"club_funding"`
	Events      string `json:"events" yaml:"events"`
	Tone        string `json:"tone" yaml:"tone"`
}

type ImpactItemResponse struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

type SimulationResponse struct {
	Fee            int                  `json:"fee" yaml:"fee"`
	Phase          string               `json:"phase" yaml:"phase"`
	Status         StatusResponse       `json:"status" yaml:"status"`
	Revenue        int                  `json:"revenue" yaml:"revenue"` // thousands of dollars
	RevenueDisplay string               `json:"revenue_display" yaml:"revenue_display"`
	RevenueNote    string               `json:"revenue_note" yaml:"revenue_note"`
	Negative       bool                 `json:"negative" yaml:"negative"`
	Heading        string               `json:"heading" yaml:"heading"`
	Impacts        []ImpactItemResponse `json:"impacts" yaml:"impacts"`
	VisibleCount   int                  `json:"visible_count" yaml:"visible_count"`
	Hint           string               `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// StepSummary is one row of the slider overview
type StepSummary struct {
	Fee          int    `json:"fee" yaml:"fee"`
	Phase        string `json:"phase" yaml:"phase"`
	Revenue      int    `json:"revenue" yaml:"revenue"`
	VisibleCount int    `json:"visible_count" yaml:"visible_count"`
	Negative     bool   `json:"negative" yaml:"negative"`
}

type StepsResponse struct {
	Steps []StepSummary `json:"steps" yaml:"steps"`
}

type InterestAreaOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type InterestAreasResponse struct {
	Areas []InterestAreaOption `json:"areas"`
}

type PledgeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Error response. Detail mirrors Message so browser code written against
// the pledge service ({"detail": ...}) reads ours the same way.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Status  string `json:"status,omitempty"`
}
