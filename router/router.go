// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/fee-referendum/handlers"
	"github.com/danielhkuo/fee-referendum/middleware"
	"github.com/danielhkuo/fee-referendum/pledge"
)

// NewRouter wires the simulator and the pledge relay. sender is usually a
// *pledge.Client pointed at the configured backend.
func NewRouter(sender pledge.Sender, logSalt string) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	simulationHandler := handlers.NewSimulationHandler()
	pledgeHandler := handlers.NewPledgeHandler(sender, logSalt)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Fee impact calculator
	mux.HandleFunc("GET /api/simulation", middleware.WithLogging(simulationHandler.GetSimulation))
	mux.HandleFunc("GET /api/simulation/steps", middleware.WithLogging(simulationHandler.GetSteps))

	// Pledge form
	mux.HandleFunc("GET /api/interest-areas", middleware.WithLogging(pledgeHandler.GetInterestAreas))
	mux.HandleFunc("POST /api/pledge", middleware.WithLogging(pledgeHandler.SubmitPledge))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fee-referendum API v1"))
	})

	return mux
}
