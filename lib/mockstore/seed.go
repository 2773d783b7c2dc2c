// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package mockstore

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

//go:embed seed.jsonc
var defaultSeed []byte

// Seed is the initial content of a Store. Entries are kept as generic
// JSON objects so the store serves exactly the field shapes it was
// given.
type Seed struct {
	Users     []map[string]any `json:"users"`
	Nicknames []map[string]any `json:"nicknames"`
}

// DefaultSeed returns the embedded development data set.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// ParseSeed strips JSONC comments and trailing commas from data and
// decodes the result.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := json.Unmarshal(jsonc.ToJSON(data), &seed); err != nil {
		return nil, fmt.Errorf("parsing seed: %w", err)
	}
	return &seed, nil
}

// ReadSeedFile reads and parses a JSONC seed file.
func ReadSeedFile(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seed, nil
}
