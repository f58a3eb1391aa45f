// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
//
// This software and its associated documentation files (the "Software") are
// the proprietary and confidential information of TEENet Technology (Hong Kong) Limited.
// Unauthorized copying of this file, via any medium, is strictly prohibited.
//
// No license, express or implied, is hereby granted, except by written agreement
// with TEENet Technology (Hong Kong) Limited. Use of this software without permission
// is a violation of applicable laws.
//
// -----------------------------------------------------------------------------

package network

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/fouzhe/cryptofuzz/internal/types"
)

// ErrRemoteCrash is returned when the wrapper server reports a crash.
var ErrRemoteCrash = errors.New("remote adapter crashed")

// HTTPClient drives a remote wrapper server.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTP client. A nil client uses
// http.DefaultClient.
func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Run submits a JSON descriptor and returns the remote report.
func (c *HTTPClient) Run(descriptor []byte) (*types.Report, error) {
	return c.post("application/json", descriptor)
}

// RunCBOR submits a CBOR descriptor and returns the remote report.
func (c *HTTPClient) RunCBOR(descriptor []byte) (*types.Report, error) {
	return c.post("application/cbor", descriptor)
}

func (c *HTTPClient) post(contentType string, body []byte) (*types.Report, error) {
	resp, err := c.client.Post(c.baseURL+"/run", contentType, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to submit descriptor: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusInternalServerError:
		return nil, ErrRemoteCrash
	case resp.StatusCode != http.StatusOK:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var report types.Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &report, nil
}

// Health checks that the remote wrapper is up.
func (c *HTTPClient) Health() error {
	resp, err := c.client.Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("failed to reach wrapper: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if result.Status != "ok" {
		return fmt.Errorf("wrapper unhealthy: %q", result.Status)
	}
	return nil
}
