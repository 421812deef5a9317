// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/maritime-transport/internal/adapter"
	"github.com/MKhiriev/maritime-transport/internal/mock"
	"github.com/MKhiriev/maritime-transport/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr error
	}{
		{
			name: "token and resource",
			args: []string{"-token", "tok", "ships"},
			want: options{server: "http://localhost:3000", token: "tok", timeout: 15 * time.Second, resource: "ships"},
		},
		{
			name: "identity and custom server",
			args: []string{"-server", "api:8080", "-email", "a@b.c", "-app", "app", "-timeout", "2s", "port-usage"},
			want: options{server: "api:8080", email: "a@b.c", appName: "app", timeout: 2 * time.Second, resource: "port-usage"},
		},
		{name: "missing resource", args: []string{"-token", "tok"}, wantErr: errMissingResource},
		{name: "unknown resource", args: []string{"-token", "tok", "cargo"}, wantErr: errUnknownResource},
		{name: "missing app name", args: []string{"-email", "a@b.c", "ports"}, wantErr: errMissingIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptions(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptions_Version(t *testing.T) {
	opts, err := parseOptions([]string{"-version"})

	require.NoError(t, err)
	assert.True(t, opts.version)
}

func TestRun_AuthenticatesAndPrintsPorts(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	ctx := context.Background()

	ports := []models.Port{{ID: 1, PortName: "Rotterdam", PortUsage: &models.PortUsage{ID: 1, PortID: 1}}}
	gomock.InOrder(
		api.EXPECT().Authenticate(ctx, "a@b.c", "app").Return("tok", nil),
		api.EXPECT().ListPorts(ctx).Return(ports, nil),
	)

	var out bytes.Buffer
	err := run(ctx, api, options{email: "a@b.c", appName: "app", resource: resourcePorts}, &out)

	require.NoError(t, err)
	var got []models.Port
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, ports, got)
	assert.Contains(t, out.String(), "\n  {", "output is indented")
}

func TestRun_ReusesToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	ctx := context.Background()

	api.EXPECT().SetToken("tok")
	api.EXPECT().ListShips(ctx).Return([]models.Ship{}, nil)

	var out bytes.Buffer
	err := run(ctx, api, options{token: "tok", resource: resourceShips}, &out)

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out.String())
}

func TestRun_PrintsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIClient(ctrl)
	ctx := context.Background()

	api.EXPECT().Authenticate(ctx, "a@b.c", "app").Return("tok", nil)
	api.EXPECT().Token().Return("tok")

	var out bytes.Buffer
	err := run(ctx, api, options{email: "a@b.c", appName: "app", resource: resourceToken}, &out)

	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tok"}`, out.String())
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticate", func(t *testing.T) {
		api := mock.NewMockAPIClient(gomock.NewController(t))
		api.EXPECT().Authenticate(ctx, "a@b.c", "").Return("", adapter.ErrMissingParameter)

		err := run(ctx, api, options{email: "a@b.c", resource: resourcePorts}, &bytes.Buffer{})

		assert.ErrorIs(t, err, adapter.ErrMissingParameter)
	})

	t.Run("listing", func(t *testing.T) {
		api := mock.NewMockAPIClient(gomock.NewController(t))
		api.EXPECT().SetToken("bad")
		api.EXPECT().ListPortUsage(ctx).Return(nil, adapter.ErrUnauthorized)

		var out bytes.Buffer
		err := run(ctx, api, options{token: "bad", resource: resourcePortUsage}, &out)

		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.Empty(t, out.String())
	})

	t.Run("unknown resource", func(t *testing.T) {
		api := mock.NewMockAPIClient(gomock.NewController(t))
		api.EXPECT().SetToken("tok")

		err := run(ctx, api, options{token: "tok", resource: "cargo"}, &bytes.Buffer{})

		assert.True(t, errors.Is(err, errUnknownResource))
	})
}
