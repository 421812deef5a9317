// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/metrics"
	"github.com/MKhiriev/maritime-transport/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
