// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the maritime transport API
// on top of chi.
//
// Routes:
//
//	GET  /                          landing page
//	POST /api/v1/user/authenticate  issue (or return) an API token
//	GET  /api/v1/ports              ports with embedded usage (token required)
//	GET  /api/v1/port-usage         port usage rows (token required)
//	GET  /api/v1/ships              ships (token required)
//
// Any other method and path combination answers 404. Protected routes expect
// the raw token in the Authorization header, without a scheme prefix.
package http
