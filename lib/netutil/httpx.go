// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP I/O helpers for talking to the record
// store.
//
// Response helpers (DecodeResponse, ErrorBody) bound every
// body read so a misbehaving store cannot exhaust memory. Connection
// error helpers (IsUnreachable) tell a store that could not be reached
// apart from one that answered with an error.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// MaxResponseSize is the bound on JSON response body reads: 32 MB. A
// full nickname listing is orders of magnitude smaller.
const MaxResponseSize int64 = 32 << 20

// MaxErrorBodySize bounds the raw body quoted in an error message.
const MaxErrorBodySize int64 = 4 << 10

// DecodeResponse reads a JSON response body (up to MaxResponseSize
// bytes) and decodes it into v.
func DecodeResponse(body io.Reader, v any) error {
	data, err := io.ReadAll(io.LimitReader(body, MaxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// ErrorBody reads an error response body for use in a diagnostic
// message, trimmed and capped at MaxErrorBodySize. Read errors are
// ignored; a partial body is still useful.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxErrorBodySize))
	return strings.TrimSpace(string(data))
}
