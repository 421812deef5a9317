// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/utils"
)

func (h *Handler) listPorts(w http.ResponseWriter, r *http.Request) {
	ports, err := h.services.PortService.ListPorts(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listPorts", err)
		return
	}

	utils.WriteJSON(w, ports, http.StatusOK)
}

func (h *Handler) listPortUsage(w http.ResponseWriter, r *http.Request) {
	usages, err := h.services.PortService.ListPortUsage(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listPortUsage", err)
		return
	}

	utils.WriteJSON(w, usages, http.StatusOK)
}

func (h *Handler) listShips(w http.ResponseWriter, r *http.Request) {
	ships, err := h.services.ShipService.ListShips(r.Context())
	if err != nil {
		h.writeServiceError(w, r, "*Handler.listShips", err)
		return
	}

	utils.WriteJSON(w, ships, http.StatusOK)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	utils.WriteError(w, messageFromStatus(status), status)
}
