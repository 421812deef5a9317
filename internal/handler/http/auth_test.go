// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/maritime-transport/internal/service"
	"github.com/MKhiriev/maritime-transport/internal/store"
	"github.com/MKhiriev/maritime-transport/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthenticate(t *testing.T) {
	missing := fmt.Errorf("%w: email is required", service.ErrMissingParameter)

	tests := []struct {
		name       string
		body       string
		setup      func(m mockedServices)
		wantStatus int
		wantToken  string
		wantError  string
	}{
		{
			name: "new pair",
			body: `{"email":"marlin@turing.io","app_name":"wallabies"}`,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Issue(gomock.Any(), "marlin@turing.io", "wallabies").
					Return(models.Credential{ID: 1, Token: "fresh"}, true, nil)
			},
			wantStatus: http.StatusCreated,
			wantToken:  "fresh",
		},
		{
			name: "existing pair",
			body: `{"email":"marlin@turing.io","app_name":"wallabies"}`,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Issue(gomock.Any(), "marlin@turing.io", "wallabies").
					Return(models.Credential{ID: 1, Token: "stored"}, false, nil)
			},
			wantStatus: http.StatusCreated,
			wantToken:  "stored",
		},
		{
			name: "missing parameters",
			body: `{"name":"max"}`,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Issue(gomock.Any(), "", "").Return(models.Credential{}, false, missing)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  msgMissingParameter,
		},
		{
			name: "empty body",
			body: "",
			setup: func(m mockedServices) {
				m.auth.EXPECT().Issue(gomock.Any(), "", "").Return(models.Credential{}, false, missing)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  msgMissingParameter,
		},
		{
			name:       "malformed json",
			body:       `{"email":`,
			setup:      func(mockedServices) {},
			wantStatus: http.StatusBadRequest,
			wantError:  msgInvalidJSON,
		},
		{
			name: "store failure",
			body: `{"email":"a@b.c","app_name":"app"}`,
			setup: func(m mockedServices) {
				m.auth.EXPECT().Issue(gomock.Any(), "a@b.c", "app").
					Return(models.Credential{}, false, fmt.Errorf("wrapped: %w", store.ErrExecutingQuery))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t)
			tt.setup(m)

			rec := serve(h, http.MethodPost, "/api/v1/user/authenticate", tt.body, map[string]string{"Content-Type": "application/json"})

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

			if tt.wantToken != "" {
				var resp models.TokenResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantToken, resp.Token)
			}
			if tt.wantError != "" {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
			}
		})
	}
}

func TestAuthenticate_CountsIssuedTokens(t *testing.T) {
	h, m := newMockedHandler(t)
	m.auth.EXPECT().Issue(gomock.Any(), "a@b.c", "app").Return(models.Credential{Token: "t"}, true, nil)
	m.auth.EXPECT().Issue(gomock.Any(), "a@b.c", "app").Return(models.Credential{Token: "t"}, false, nil)

	body := `{"email":"a@b.c","app_name":"app"}`
	serve(h, http.MethodPost, "/api/v1/user/authenticate", body, nil)
	serve(h, http.MethodPost, "/api/v1/user/authenticate", body, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.TokensIssued.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.TokensIssued.WithLabelValues("existing")))
}
