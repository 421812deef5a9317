// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/maritime-transport/internal/logger"
	"github.com/MKhiriev/maritime-transport/internal/utils"
	"github.com/MKhiriev/maritime-transport/models"
)

const (
	authenticatePath = "/api/v1/user/authenticate"
	portsPath        = "/api/v1/ports"
	portUsagePath    = "/api/v1/port-usage"
	shipsPath        = "/api/v1/ships"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs an [APIClient] for the server at address.
// A missing scheme defaults to http. Returns an error if address is empty
// or cannot be parsed as a URL with a host.
func NewHTTPAPIClient(address string, timeout time.Duration, logger *logger.Logger) (APIClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpAPIClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Authenticate(ctx context.Context, email, appName string) (string, error) {
	var token models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthenticateRequest{Email: email, AppName: appName}).
		SetResult(&token).
		Post(authenticatePath)
	if err != nil {
		return "", fmt.Errorf("authenticate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(token.Token)
	h.logger.Debug().Str("app_name", appName).Int("status", resp.StatusCode()).Msg("token received")
	return token.Token, nil
}

func (h *httpAPIClient) ListPorts(ctx context.Context) ([]models.Port, error) {
	var ports []models.Port
	if err := h.get(ctx, portsPath, &ports); err != nil {
		return nil, err
	}
	return ports, nil
}

func (h *httpAPIClient) ListPortUsage(ctx context.Context) ([]models.PortUsage, error) {
	var usage []models.PortUsage
	if err := h.get(ctx, portUsagePath, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}

func (h *httpAPIClient) ListShips(ctx context.Context) ([]models.Ship, error) {
	var ships []models.Ship
	if err := h.get(ctx, shipsPath, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

// get performs an authorized GET and decodes the JSON body into result.
func (h *httpAPIClient) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", h.Token()).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}
