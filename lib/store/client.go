// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package store is an HTTP client for the nickname record store.
//
// The store exposes four endpoints:
//
//	GET    /api/users
//	GET    /api/nicknames
//	GET    /api/nicknames/user/{userId}
//	DELETE /api/nicknames/{id}
//
// Responses are decoded into [nickname.Record] and [nickname.UserRef],
// whose decoders normalize the store's dual field spellings. Any
// non-2xx response becomes an [*APIError].
package store

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ani-nick/nickview/lib/netutil"
	"github.com/ani-nick/nickview/lib/nickname"
)

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the store's root URL (e.g., "http://localhost:5000").
	// Endpoint paths are appended to it.
	BaseURL string

	// HTTPClient is used for all requests. If nil, a client with a 30s
	// timeout is used.
	HTTPClient *http.Client

	// Logger is used for request logging. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Client talks to one record store. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient validates config and returns a Client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("store: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: invalid BaseURL %q: %w", config.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("store: BaseURL %q must use http or https", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized store URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Users lists every user that can own nicknames.
func (c *Client) Users(ctx context.Context) ([]nickname.UserRef, error) {
	var users []nickname.UserRef
	if err := c.getJSON(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Nicknames lists every nickname record.
func (c *Client) Nicknames(ctx context.Context) ([]nickname.Record, error) {
	var records []nickname.Record
	if err := c.getJSON(ctx, "/api/nicknames", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// NicknamesByUser lists the records owned by userID. The store does the
// scoping; the identifier is path-escaped and otherwise opaque.
func (c *Client) NicknamesByUser(ctx context.Context, userID string) ([]nickname.Record, error) {
	if userID == "" {
		return nil, fmt.Errorf("store: user id is required")
	}
	var records []nickname.Record
	if err := c.getJSON(ctx, "/api/nicknames/user/"+url.PathEscape(userID), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteNickname deletes the record with id. Any 2xx status is success;
// the response body is ignored.
func (c *Client) DeleteNickname(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("store: nickname id is required")
	}
	response, err := c.do(ctx, http.MethodDelete, "/api/nicknames/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	response.Body.Close()
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	response, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if err := netutil.DecodeResponse(response.Body, target); err != nil {
		return fmt.Errorf("store: GET %s: %w", path, err)
	}
	return nil
}

// do performs a request and returns the response when its status is
// 2xx. Otherwise the body is consumed into an *APIError.
func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("store: creating request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		c.logger.Debug("store request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("store: %s %s: %w", method, path, err)
	}
	c.logger.Debug("store request",
		"method", method,
		"path", path,
		"status", response.StatusCode,
		"duration", time.Since(start),
	)

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return response, nil
	}
	defer response.Body.Close()
	return nil, &APIError{
		StatusCode: response.StatusCode,
		Message:    errorMessage(netutil.ErrorBody(response.Body)),
		Method:     method,
		Path:       path,
	}
}
