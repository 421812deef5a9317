// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/handler"
	"github.com/MKhiriev/maritime-transport/internal/logger"
)

type server struct {
	servers []*httpServer
	logger  *logger.Logger
}

// NewServer creates the API server and, when a metrics handler and address
// are configured, the metrics server.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{logger: logger}
	s.servers = append(s.servers, newHTTPServer("api", cfg.HTTPAddress, handlers.HTTP.Init(), logger))

	if handlers.Metrics != nil && cfg.MetricsAddress != "" {
		s.servers = append(s.servers, newHTTPServer("metrics", cfg.MetricsAddress, handlers.Metrics.Handler(), logger))
	}

	return s, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT is received or one of
// the listeners fails.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	for _, srv := range s.servers {
		if srv.listener != nil {
			srv.Shutdown()
		}
	}
}

func (s *server) run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

func (s *server) listen() error {
	for _, srv := range s.servers {
		if err := srv.listen(); err != nil {
			// release whatever was already bound
			s.closeListeners()
			return err
		}
	}
	return nil
}

func (s *server) closeListeners() {
	for _, srv := range s.servers {
		if srv.listener != nil {
			_ = srv.listener.Close()
			srv.listener = nil
		}
	}
}

// serve blocks until ctx is done or a server stops with an error, then shuts
// every server down.
func (s *server) serve(ctx context.Context) error {
	errCh := make(chan error, len(s.servers))
	for _, srv := range s.servers {
		srv := srv
		go func() {
			errCh <- srv.serve()
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.Shutdown()
	return runErr
}
