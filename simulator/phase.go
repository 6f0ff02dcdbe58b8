// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

// Phase is a funding-adequacy band
type Phase string

const (
	PhaseCritical Phase = "critical"
	PhaseAtRisk   Phase = "at-risk"
	PhasePartial  Phase = "partial"
	PhaseFull     Phase = "full"
)

// Tone is a severity hint for renderers (colour, icon choice)
type Tone string

const (
	ToneRed    Tone = "red"
	ToneOrange Tone = "orange"
	ToneYellow Tone = "yellow"
	ToneGreen  Tone = "green"
)

// StatusSummary is the fixed headline for a phase
type StatusSummary struct {
	Label       string `json:"label"`
	Deficit     string `json:"deficit"`
	ClubFunding string `json:"club_funding"`
	Events      string `json:"events"`
	Tone        Tone   `json:"tone"`
}

var summaries = map[Phase]StatusSummary{
	PhaseCritical: {
		Label:       "Critical: Major service cuts unavoidable",
		Deficit:     "$700,000+",
		ClubFunding: "40-60% cut",
		Events:      "Most cancelled",
		Tone:        ToneRed,
	},
	PhaseAtRisk: {
		Label:       "At Risk: Significant reductions required",
		Deficit:     "$400,000+",
		ClubFunding: "25-35% cut",
		Events:      "Scaled back",
		Tone:        ToneOrange,
	},
	PhasePartial: {
		Label:       "Partial: Some services maintained with constraints",
		Deficit:     "$150,000+",
		ClubFunding: "10-15% cut",
		Events:      "Minor reductions",
		Tone:        ToneYellow,
	},
	PhaseFull: {
		Label:       "Full Funding: Services and programming maintained",
		Deficit:     "Balanced",
		ClubFunding: "Maintained",
		Events:      "Full programming",
		Tone:        ToneGreen,
	},
}

// Classify maps a fee onto its phase. Shared boundaries go to the lower phase.
func Classify(fee FeeAmount) Phase {
	switch {
	case fee <= 2:
		return PhaseCritical
	case fee <= 4:
		return PhaseAtRisk
	case fee <= 6:
		return PhasePartial
	default:
		return PhaseFull
	}
}

// Summary looks up the status headline for p. Unknown phases get the
// zero summary.
func Summary(p Phase) StatusSummary {
	return summaries[p]
}

// Negative reports whether p sits on the consequences side of the slider
func (p Phase) Negative() bool {
	return p == PhaseCritical || p == PhaseAtRisk
}

func (p Phase) Valid() bool {
	_, ok := summaries[p]
	return ok
}

func (p Phase) String() string {
	return string(p)
}
