// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package simulator

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FeeAmount is a whole-dollar membership fee per semester
type FeeAmount int

const (
	MinFee      FeeAmount = 1
	MaxFee      FeeAmount = 8
	ProposedFee FeeAmount = 8

	// RevenuePerDollar is annual revenue in thousands of dollars per $1 of fee.
	// $8 is quoted as ~$519K; the linear estimate gives 520 there.
	RevenuePerDollar = 65

	CatalogSize = 6
)

var ErrFeeOutOfRange = errors.New("fee amount out of range")

// Result is everything a view needs to render one slider position
type Result struct {
	Fee          FeeAmount     `json:"fee"`
	Phase        Phase         `json:"phase"`
	Status       StatusSummary `json:"status"`
	Revenue      int           `json:"revenue"` // thousands of dollars
	RevenueNote  string        `json:"revenue_note"`
	Negative     bool          `json:"negative"`
	Impacts      []ImpactItem  `json:"impacts"`
	VisibleCount int           `json:"visible_count"`
}

// Validate checks that fee is inside [MinFee, MaxFee]
func Validate(fee FeeAmount) error {
	if fee < MinFee || fee > MaxFee {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrFeeOutOfRange, fee, MinFee, MaxFee)
	}
	return nil
}

// Clamp pulls an arbitrary integer into the fee domain.
// Simulate itself never clamps; hosts that take free-form input call this first.
func Clamp(v int) FeeAmount {
	if v < int(MinFee) {
		return MinFee
	}
	if v > int(MaxFee) {
		return MaxFee
	}
	return FeeAmount(v)
}

// Steps returns every selectable fee, lowest first
func Steps() []FeeAmount {
	steps := make([]FeeAmount, 0, MaxFee-MinFee+1)
	for f := MinFee; f <= MaxFee; f++ {
		steps = append(steps, f)
	}
	return steps
}

// Simulate derives the full result for a fee. Out-of-range fees are rejected
// with ErrFeeOutOfRange.
func Simulate(fee FeeAmount) (Result, error) {
	if err := Validate(fee); err != nil {
		return Result{}, err
	}

	phase := Classify(fee)
	return Result{
		Fee:          fee,
		Phase:        phase,
		Status:       Summary(phase),
		Revenue:      Revenue(fee),
		RevenueNote:  RevenueNote(fee),
		Negative:     phase.Negative(),
		Impacts:      Catalog(phase),
		VisibleCount: VisibleCount(fee),
	}, nil
}

// Revenue estimates annual revenue in thousands of dollars
func Revenue(fee FeeAmount) int {
	return int(math.Round(float64(fee) * RevenuePerDollar))
}

// RevenueNote describes how far the revenue at fee goes
func RevenueNote(fee FeeAmount) string {
	switch {
	case fee == MaxFee:
		return "Covers projected deficit and maintains all programming"
	case fee >= 6:
		return "Covers most operational needs with minor constraints"
	case fee >= 4:
		return "Partially covers deficit, some cuts required"
	default:
		return "Insufficient to prevent major programming reductions"
	}
}

// VisibleCount is how many catalog items to reveal at fee. Negative items
// grow as the fee drops, positive items grow as it rises.
func VisibleCount(fee FeeAmount) int {
	f := int(fee)
	switch {
	case f <= 2:
		return min(CatalogSize, CatalogSize-f+1)
	case f <= 4:
		return min(CatalogSize, 7-f)
	default:
		return min(CatalogSize, f-2)
	}
}

// Visible returns the revealed prefix of the catalog
func (r Result) Visible() []ImpactItem {
	n := r.VisibleCount
	if n > len(r.Impacts) {
		n = len(r.Impacts)
	}
	return r.Impacts[:n]
}

// Hidden is the number of catalog items not yet revealed
func (r Result) Hidden() int {
	return len(r.Impacts) - len(r.Visible())
}

func (r Result) Heading() string {
	if r.Negative {
		return "Consequences at This Funding Level:"
	}
	return "Benefits at This Funding Level:"
}

// DisclosureHint tells the user which way to move the slider to reveal more
// items. Empty when the whole catalog is shown.
func (r Result) DisclosureHint() string {
	hidden := r.Hidden()
	if hidden == 0 {
		return ""
	}
	if r.Negative {
		return fmt.Sprintf("Move slider left to see %d more consequences...", hidden)
	}
	return fmt.Sprintf("Move slider right to see %d more benefits...", hidden)
}

// RevenueDisplay formats the estimate the way the page shows it, e.g. "~$520,000"
func (r Result) RevenueDisplay() string {
	return "~$" + humanize.Comma(int64(r.Revenue)*1000)
}
