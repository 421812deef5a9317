// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:             "GET 200",
			method:           http.MethodGet,
			path:             "/api/v1/ships",
			handlerStatus:    http.StatusOK,
			handlerResponse:  "[]",
			checkLogContains: []string{`"uri":"/api/v1/ships"`, `"method":"GET"`, `"status":200`, `"size":2`},
		},
		{
			name:             "POST 201",
			method:           http.MethodPost,
			path:             "/api/v1/user/authenticate",
			handlerStatus:    http.StatusCreated,
			handlerResponse:  `{"token":"x"}`,
			checkLogContains: []string{`"method":"POST"`, `"status":201`},
		},
		{
			name:             "implicit 200 without WriteHeader",
			method:           http.MethodGet,
			path:             "/",
			handlerStatus:    0,
			handlerResponse:  "BYOB",
			checkLogContains: []string{`"status":200`, `"size":4`},
		},
		{
			name:             "404 without body",
			method:           http.MethodGet,
			path:             "/nope",
			handlerStatus:    http.StatusNotFound,
			checkLogContains: []string{`"status":404`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.handlerStatus != 0 {
					w.WriteHeader(tt.handlerStatus)
				}
				if tt.handlerResponse != "" {
					w.Write([]byte(tt.handlerResponse))
				}
			})

			req := injectLogger(httptest.NewRequest(tt.method, tt.path, nil), zerolog.New(&buf))
			rec := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rec, req)

			for _, want := range tt.checkLogContains {
				assert.Contains(t, buf.String(), want)
			}
			assert.Contains(t, buf.String(), `"duration"`)
		})
	}
}
