// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "github.com/danielhkuo/fee-referendum/simulator"

// NewSimulationResponse flattens a simulator result, including the derived
// display strings, into its wire form
func NewSimulationResponse(res simulator.Result) SimulationResponse {
	impacts := make([]ImpactItemResponse, 0, len(res.Impacts))
	for _, item := range res.Impacts {
		impacts = append(impacts, ImpactItemResponse{
			Title:       item.Title,
			Description: item.Description,
			Category:    string(item.Category),
		})
	}

	return SimulationResponse{
		Fee:   int(res.Fee),
		Phase: res.Phase.String(),
		Status: StatusResponse{
			Label:       res.Status.Label,
			Deficit:     res.Status.Deficit,
			ClubFunding: res.Status.ClubFunding,
			Events:      res.Status.Events,
			Tone:        string(res.Status.Tone),
		},
		Revenue:        res.Revenue,
		RevenueDisplay: res.RevenueDisplay(),
		RevenueNote:    res.RevenueNote,
		Negative:       res.Negative,
		Heading:        res.Heading(),
		Impacts:        impacts,
		VisibleCount:   res.VisibleCount,
		Hint:           res.DisclosureHint(),
	}
}
