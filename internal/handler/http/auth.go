// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/utils"
	"github.com/MKhiriev/maritime-transport/models"
)

const maxAuthenticateBodyBytes = 1 << 20

// authenticate issues a token for the posted (email, app_name) pair. A pair
// that already holds a token gets the same token back, also with 201.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AuthenticateRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAuthenticateBodyBytes)).Decode(&request)
	// an empty body is treated like a body without parameters
	if err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.authenticate").Msg("Invalid JSON was passed")
		utils.WriteError(w, msgInvalidJSON, http.StatusBadRequest)
		return
	}

	credential, created, err := h.services.AuthService.Issue(ctx, request.Email, request.AppName)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.authenticate").Int("status", status).Msg("token was not issued")
		utils.WriteError(w, messageFromStatus(status), status)
		return
	}

	h.metrics.RecordTokenIssued(created)
	utils.WriteJSON(w, models.TokenResponse{Token: credential.Token}, http.StatusCreated)
}
