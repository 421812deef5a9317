// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/utils"
)

// CheckHTTPMethod is installed as chi's MethodNotAllowed handler. A known
// path requested with an unregistered method is answered like an unknown
// path, so the API never reveals which methods a path supports.
func CheckHTTPMethod(router *chi.Mux, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := make([]string, 0, 2)
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
		}

		logger.FromRequest(r).Debug().
			Str("func", "CheckHTTPMethod").
			Str("method", r.Method).
			Strs("registered_methods", allowed).
			Msg("method is not registered for path")

		notFound(w, r)
	}
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, msgNotFound, http.StatusNotFound)
}
