// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "/api/v1/ships", http.StatusOK, 15*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/ships", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/v1/ships", http.StatusUnauthorized, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/ships", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/v1/ships", "401")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))
}

func TestRecordTokenIssued(t *testing.T) {
	m := New()

	m.RecordTokenIssued(true)
	m.RecordTokenIssued(false)
	m.RecordTokenIssued(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.TokensIssued.WithLabelValues(TokenCreated)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.TokensIssued.WithLabelValues(TokenExisting)))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/api/v1/user/authenticate", http.StatusCreated, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "maritime_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}

func TestNilMetrics_NoOp(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.RecordTokenIssued(true)
	})
	assert.Nil(t, m.Registry())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
