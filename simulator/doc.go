// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package simulator implements the fee impact calculator.

A single whole-dollar fee ($1-$8 per semester) is mapped onto everything the
page shows for that slider position:

	res, err := simulator.Simulate(5)
	// res.Phase        = "partial"
	// res.Revenue      = 325 (thousands of dollars)
	// res.VisibleCount = 3

# Phases

	critical  $1-$2
	at-risk   $3-$4
	partial   $5-$6
	full      $7-$8

Each phase has one fixed StatusSummary. Critical and at-risk show a
consequences catalog (severe and moderate wording respectively); partial and
full share the benefits catalog.

# Progressive Disclosure

VisibleCount grows towards either end of the slider: 6,5,4,3 from $1 to $4,
then 3,4,5,6 from $5 to $8.

# Input Range

Simulate rejects fees outside [MinFee, MaxFee] with ErrFeeOutOfRange. Hosts
driven by free-form input should call Clamp first.

Every call recomputes from scratch; results share no memory with the package
tables.
*/
package simulator
