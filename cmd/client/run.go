// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/maritime-transport/internal/adapter"
)

const (
	resourceToken     = "token"
	resourcePorts     = "ports"
	resourcePortUsage = "port-usage"
	resourceShips     = "ships"
)

var (
	errMissingResource = errors.New("missing resource argument (token, ports, port-usage, ships)")
	errUnknownResource = errors.New("unknown resource")
	errMissingIdentity = errors.New("either -token or both -email and -app are required")
)

type options struct {
	server   string
	email    string
	appName  string
	token    string
	timeout  time.Duration
	version  bool
	resource string
}

// parseOptions reads flags followed by a single resource argument.
//
// Usage:
//
//	client [-server addr] [-token tok | -email e -app a] [-timeout d] <token|ports|port-usage|ships>
func parseOptions(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("maritime-client", flag.ContinueOnError)
	fs.StringVar(&opts.server, "server", "http://localhost:3000", "API server address")
	fs.StringVar(&opts.email, "email", "", "Email address used to request a token")
	fs.StringVar(&opts.appName, "app", "", "Application name used to request a token")
	fs.StringVar(&opts.token, "token", "", "Previously issued token")
	fs.DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")
	fs.BoolVar(&opts.version, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("error parsing flags: %w", err)
	}
	if opts.version {
		return opts, nil
	}

	if fs.NArg() == 0 {
		return options{}, errMissingResource
	}
	opts.resource = fs.Arg(0)

	switch opts.resource {
	case resourceToken, resourcePorts, resourcePortUsage, resourceShips:
	default:
		return options{}, fmt.Errorf("%w: %q", errUnknownResource, opts.resource)
	}

	if opts.token == "" && (opts.email == "" || opts.appName == "") {
		return options{}, errMissingIdentity
	}

	return opts, nil
}

// run obtains a token when none was given and prints the requested resource
// as indented JSON to out.
func run(ctx context.Context, api adapter.APIClient, opts options, out io.Writer) error {
	if opts.token != "" {
		api.SetToken(opts.token)
	} else if _, err := api.Authenticate(ctx, opts.email, opts.appName); err != nil {
		return fmt.Errorf("authenticate: %w", err)
	}

	var (
		result any
		err    error
	)
	switch opts.resource {
	case resourceToken:
		result = map[string]string{"token": api.Token()}
	case resourcePorts:
		result, err = api.ListPorts(ctx)
	case resourcePortUsage:
		result, err = api.ListPortUsage(ctx)
	case resourceShips:
		result, err = api.ListShips(ctx)
	default:
		return fmt.Errorf("%w: %q", errUnknownResource, opts.resource)
	}
	if err != nil {
		return fmt.Errorf("list %s: %w", opts.resource, err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
