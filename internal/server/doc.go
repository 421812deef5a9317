// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP listeners.
//
// It owns the lifecycle of the API server and the optional Prometheus
// metrics server: binding, serving, signal handling and graceful shutdown.
package server
