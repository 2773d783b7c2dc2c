// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package mockstore is an in-memory stand-in for the nickname record
// store, for local development and tests. It serves the same four
// endpoints as the real store and returns records in whatever field
// shapes its seed uses.
//
// Options inject the failure modes the client has to cope with: a
// fixed per-request latency (to let a slow response be overtaken by a
// newer one) and failing deletes.
package mockstore

import (
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ani-nick/nickview/lib/nickname"
)

// Options configures a Store.
type Options struct {
	// Latency delays every response.
	Latency time.Duration

	// FailDeletes makes every DELETE answer 500.
	FailDeletes bool

	// Logger receives one record per request. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

// Store holds the mock data set. Safe for concurrent use.
type Store struct {
	logger *slog.Logger

	mutex       sync.Mutex
	users       []map[string]any
	nicknames   []map[string]any
	latency     time.Duration
	failDeletes bool
}

// New returns a Store serving seed. Nickname entries without an _id or
// id get a fresh UUID under "_id".
func New(seed *Seed, options Options) *Store {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	store := &Store{
		logger:      logger,
		latency:     options.Latency,
		failDeletes: options.FailDeletes,
	}
	if seed == nil {
		return store
	}
	for _, user := range seed.Users {
		store.users = append(store.users, cloneEntry(user))
	}
	for _, entry := range seed.Nicknames {
		entry = cloneEntry(entry)
		if decodeRecord(entry).ID == "" {
			entry["_id"] = uuid.NewString()
		}
		store.nicknames = append(store.nicknames, entry)
	}
	return store
}

// SetLatency changes the per-request delay.
func (store *Store) SetLatency(latency time.Duration) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.latency = latency
}

// SetFailDeletes toggles failing deletes.
func (store *Store) SetFailDeletes(fail bool) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.failDeletes = fail
}

// Len returns the number of nickname entries currently held.
func (store *Store) Len() int {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return len(store.nicknames)
}

func (store *Store) currentLatency() time.Duration {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return store.latency
}

func (store *Store) listUsers() []map[string]any {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return append([]map[string]any{}, store.users...)
}

// listNicknames returns the entries owned by owner, or every entry when
// owner is empty.
func (store *Store) listNicknames(owner string) []map[string]any {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	result := make([]map[string]any, 0, len(store.nicknames))
	for _, entry := range store.nicknames {
		if owner == "" || decodeRecord(entry).Owner == owner {
			result = append(result, entry)
		}
	}
	return result
}

type deleteOutcome int

const (
	deleted deleteOutcome = iota
	deleteNotFound
	deleteRejected
)

func (store *Store) deleteNickname(id string) deleteOutcome {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	if store.failDeletes {
		return deleteRejected
	}
	index := slices.IndexFunc(store.nicknames, func(entry map[string]any) bool {
		return decodeRecord(entry).ID == id
	})
	if index < 0 {
		return deleteNotFound
	}
	store.nicknames = slices.Delete(store.nicknames, index, index+1)
	return deleted
}

// decodeRecord resolves an entry's identifier and owner the same way
// the client does.
func decodeRecord(entry map[string]any) nickname.Record {
	var record nickname.Record
	data, err := json.Marshal(entry)
	if err != nil {
		return record
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return nickname.Record{}
	}
	return record
}

func cloneEntry(entry map[string]any) map[string]any {
	clone := make(map[string]any, len(entry))
	for key, value := range entry {
		clone[key] = value
	}
	return clone
}
