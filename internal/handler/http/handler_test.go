// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/maritime-transport/internal/config"
	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/metrics"
	"github.com/MKhiriev/maritime-transport/internal/mock"
	"github.com/MKhiriev/maritime-transport/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// mockedServices bundles the gomock doubles behind a Handler.
type mockedServices struct {
	auth  *mock.MockAuthService
	ports *mock.MockPortService
	ships *mock.MockShipService
}

func newMockedHandler(t *testing.T) (*Handler, mockedServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := mockedServices{
		auth:  mock.NewMockAuthService(ctrl),
		ports: mock.NewMockPortService(ctrl),
		ships: mock.NewMockShipService(ctrl),
	}
	services := &service.Services{
		AuthService: m.auth,
		PortService: m.ports,
		ShipService: m.ships,
	}

	return NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, metrics.New(), logger.Nop()), m
}

// serve runs one request through the full router.
func serve(h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: time.Second}, m, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, m, h.metrics)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, time.Second, h.requestTimeout)
}

func TestLanding(t *testing.T) {
	h, _ := newMockedHandler(t)

	rec := serve(h, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "BYOB")
}
