// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/maritime-transport/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	name     string
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(name, address string, handler http.Handler, logger *logger.Logger) *httpServer {
	return &httpServer{
		name: name,
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address so that bind failures surface before
// any server starts serving.
func (h *httpServer) listen() error {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s server on %q: %w", errListen, h.name, h.server.Addr, err)
	}
	h.listener = ln
	h.logger.Info().Str("server", h.name).Str("address", ln.Addr().String()).Msg("listening")
	return nil
}

func (h *httpServer) serve() error {
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %s server: %w", errServe, h.name, err)
	}
	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Str("server", h.name).Msg("shutdown failed")
		return
	}
	h.logger.Info().Str("server", h.name).Msg("server stopped")
}
