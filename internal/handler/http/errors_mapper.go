// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/maritime-transport/internal/service"
	"github.com/MKhiriev/maritime-transport/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrMissingParameter:    http.StatusUnprocessableEntity,
	service.ErrUnauthorized:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrCredentialNotFound: http.StatusUnauthorized,
	store.ErrCredentialConflict: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// statusFromError maps a service or store error to the HTTP status sent to
// the client. Unknown errors map to 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus returns the client-facing text for a failed request.
// Internal details never leave the server.
func messageFromStatus(status int) string {
	switch status {
	case http.StatusUnprocessableEntity:
		return msgMissingParameter
	case http.StatusUnauthorized:
		return msgInvalidToken
	default:
		return http.StatusText(status)
	}
}
