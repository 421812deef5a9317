// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	routeLanding      = "/"
	routeAuthenticate = "/api/v1/user/authenticate"
	routePorts        = "/api/v1/ports"
	routePortUsage    = "/api/v1/port-usage"
	routeShips        = "/api/v1/ships"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5, "application/json", "text/html"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Get(routeLanding, h.landing)
		r.Post(routeAuthenticate, h.authenticate)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get(routePorts, h.listPorts)
		r.Get(routePortUsage, h.listPortUsage)
		r.Get(routeShips, h.listShips)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
