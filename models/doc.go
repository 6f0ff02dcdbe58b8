// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types for the API.

# Request Types

  - PledgeRequest: name, email, interest_area, pledge_to_vote

PledgeRequest is also the body sent to the pledge service.

# Response Types

  - SimulationResponse: one slider position, with display strings
  - StepsResponse: summary of every slider position
  - InterestAreasResponse: pledge form choices
  - PledgeResponse: status, message
  - ErrorResponse: error, message, detail, status

Simulation types carry yaml tags as well, for the feesim CLI.

# Constants

Pledge outcome statuses:

	PledgeStatusSuccess = "success"
	PledgeStatusError   = "error"
*/
package models
