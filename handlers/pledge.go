// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/fee-referendum/middleware"
	"github.com/danielhkuo/fee-referendum/models"
	"github.com/danielhkuo/fee-referendum/pledge"
	"github.com/danielhkuo/fee-referendum/privacy"
)

type PledgeHandler struct {
	sender  pledge.Sender
	logSalt string
}

// NewPledgeHandler relays pledges to sender. logSalt keys the client hash
// written to logs.
func NewPledgeHandler(sender pledge.Sender, logSalt string) *PledgeHandler {
	return &PledgeHandler{sender: sender, logSalt: logSalt}
}

// SubmitPledge handles POST /api/pledge
func (h *PledgeHandler) SubmitPledge(w http.ResponseWriter, r *http.Request) {
	var body models.PledgeRequest
	if err := middleware.ParseJSONBody(r, &body); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req := pledge.DefaultRequest().
		WithName(body.Name).
		WithEmail(body.Email).
		WithInterestArea(pledge.InterestArea(body.InterestArea))
	if body.PledgeToVote != nil {
		req = req.WithPledgeToVote(*body.PledgeToVote)
	}

	// One flow per request; a browser resubmitting after an error is a new request
	flow := pledge.NewFlow(h.sender, pledge.WithForm(req))
	state, err := flow.Submit(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	client := privacy.HashIP(middleware.GetClientIP(r), h.logSalt)

	if state.Status != pledge.StatusSuccess {
		slog.Warn("pledge relay failed", "client", client, "email", privacy.MaskEmail(req.Email), "message", state.Message)
		middleware.JSONResponse(w, http.StatusBadGateway, models.ErrorResponse{
			Error:   http.StatusText(http.StatusBadGateway),
			Message: state.Message,
			Detail:  state.Message,
			Status:  models.PledgeStatusError,
		})
		return
	}

	slog.Info("pledge relayed", "client", client, "email", privacy.MaskEmail(req.Email), "interest_area", string(req.InterestArea))

	middleware.JSONResponse(w, http.StatusCreated, models.PledgeResponse{
		Status:  models.PledgeStatusSuccess,
		Message: "Pledge Confirmed",
	})
}

// GetInterestAreas handles GET /api/interest-areas
func (h *PledgeHandler) GetInterestAreas(w http.ResponseWriter, r *http.Request) {
	areas := []models.InterestAreaOption{}
	for _, a := range pledge.InterestAreas() {
		areas = append(areas, models.InterestAreaOption{
			Value: string(a),
			Label: a.Label(),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.InterestAreasResponse{Areas: areas})
}

// validationMessage reports the first missing field the way the form does
func validationMessage(err error) string {
	switch {
	case errors.Is(err, pledge.ErrNameRequired):
		return pledge.ErrNameRequired.Error()
	case errors.Is(err, pledge.ErrEmailRequired):
		return pledge.ErrEmailRequired.Error()
	case errors.Is(err, pledge.ErrInvalidArea):
		return pledge.ErrInvalidArea.Error()
	default:
		return err.Error()
	}
}
