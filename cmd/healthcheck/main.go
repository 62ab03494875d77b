// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command healthcheck probes a running bistro-boss server and exits with a
// non-zero status when it is not answering. It is meant for container
// HEALTHCHECK instructions.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/MKhiriev/bistro-boss/internal/utils"
)

func main() {
	url := flag.String("url", "http://localhost:5000", "base URL of the server")
	timeout := flag.Duration("timeout", 3*time.Second, "request timeout")
	flag.Parse()

	if err := probe(utils.NewHTTPClient(*url, *timeout)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func probe(client *utils.HTTPClient) error {
	resp, err := client.R().Get("/")
	if err != nil {
		return fmt.Errorf("healthcheck request failed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("healthcheck failed: unexpected status %d", resp.StatusCode())
	}

	return nil
}
