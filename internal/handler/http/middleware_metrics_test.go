// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/maritime-transport/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithMetrics_LabelsByRoutePattern(t *testing.T) {
	h, m := newMockedHandler(t)
	expectAuthorized(m)
	m.ships.EXPECT().ListShips(gomock.Any()).Return([]models.Ship{}, nil)

	serve(h, http.MethodGet, "/api/v1/ships", "", authorized)
	serve(h, http.MethodGet, "/api/v1/ships", "", nil)
	serve(h, http.MethodGet, "/does/not/exist", "", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("GET", "/api/v1/ships", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("GET", "/api/v1/ships", "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("GET", unmatchedRoute, "404")))
}

func TestWithMetrics_NilMetricsPassThrough(t *testing.T) {
	h := &Handler{}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	// without collectors the middleware is the identity
	assert.NotNil(t, h.withMetrics(next))
}
