// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tui is a bubbletea front end for the fee simulator and the pledge
// form. Both views share a single pledge.Flow, so the one-submission-at-a-time
// rule is enforced by the flow itself; the model only greys out the button.
package tui
