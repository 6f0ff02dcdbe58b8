// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/fee-referendum/middleware"
	"github.com/danielhkuo/fee-referendum/models"
	"github.com/danielhkuo/fee-referendum/simulator"
)

type SimulationHandler struct{}

func NewSimulationHandler() *SimulationHandler {
	return &SimulationHandler{}
}

// GetSimulation handles GET /api/simulation?fee=N
// The fee defaults to the proposed $8 when omitted
func (h *SimulationHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	fee := simulator.ProposedFee

	if raw := r.URL.Query().Get("fee"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "fee must be a whole dollar amount")
			return
		}
		fee = simulator.FeeAmount(v)
	}

	res, err := simulator.Simulate(fee)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "fee must be between $1 and $8")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewSimulationResponse(res))
}

// GetSteps handles GET /api/simulation/steps
func (h *SimulationHandler) GetSteps(w http.ResponseWriter, r *http.Request) {
	steps := make([]models.StepSummary, 0, len(simulator.Steps()))
	for _, fee := range simulator.Steps() {
		res, err := simulator.Simulate(fee)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Simulation error")
			return
		}
		steps = append(steps, models.StepSummary{
			Fee:          int(res.Fee),
			Phase:        res.Phase.String(),
			Revenue:      res.Revenue,
			VisibleCount: res.VisibleCount,
			Negative:     res.Negative,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.StepsResponse{Steps: steps})
}
