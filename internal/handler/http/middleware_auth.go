// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/service"
	"github.com/MKhiriev/maritime-transport/internal/utils"
)

// auth admits a request only when its Authorization header carries a token
// that was issued before. The header holds the bare token, no scheme.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := strings.TrimSpace(r.Header.Get("Authorization"))
		if token == "" {
			log.Debug().Str("func", "*Handler.auth").Msg("empty Authorization header")
			utils.WriteError(w, msgMissingToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		credential, err := h.services.AuthService.Authorize(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUnauthorized):
				log.Debug().Str("func", "*Handler.auth").Msg("invalid token")
				utils.WriteError(w, msgInvalidToken, http.StatusUnauthorized)
			default:
				log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during token lookup")
				utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
			return
		}

		l := log.With().Str("app_name", credential.AppName).Logger()
		ctx = l.WithContext(utils.WithCredential(ctx, credential))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
