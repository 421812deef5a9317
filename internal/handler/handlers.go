// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/handler/http"
	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/metrics"
	"github.com/MKhiriev/maritime-transport/internal/service"
)

// Handlers groups the transport handlers served by the application.
type Handlers struct {
	// HTTP serves the REST API.
	HTTP *http.Handler

	// Metrics exposes the Prometheus registry. Nil when no metrics address
	// is configured.
	Metrics *metrics.Metrics
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, m, logger),
	}
	if cfg.MetricsAddress != "" {
		handlers.Metrics = m
	}

	return handlers, nil
}
