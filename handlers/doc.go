// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the fee referendum API.

# Handler Types

  - SimulationHandler: Fee impact calculator (stateless)
  - PledgeHandler: Pledge form relay to the pledge service

Handlers are created via constructor functions:

	simulationHandler := handlers.NewSimulationHandler()
	pledgeHandler := handlers.NewPledgeHandler(client, logSalt)

# Simulation

	GET /api/simulation?fee=N   → GetSimulation (fee defaults to 8)
	GET /api/simulation/steps   → GetSteps

A fee outside 1-8 or a non-integer fee is a 400.

# Pledges

	GET  /api/interest-areas → GetInterestAreas
	POST /api/pledge         → SubmitPledge

SubmitPledge validates the form, then runs one pledge.Flow against the
pledge service. Outcomes:

  - 201 {"status":"success"} when the service accepts
  - 400 when name or email is blank or the interest area is unknown
  - 502 with the service's detail (or a generic message) otherwise

Nothing is stored. Logs carry a salted client hash and a masked email only.
*/
package handlers
