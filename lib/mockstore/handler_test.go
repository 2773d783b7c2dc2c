// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package mockstore

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T, options Options) (*Store, *httptest.Server) {
	t.Helper()
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	store := New(seed, options)
	server := httptest.NewServer(store.Handler())
	t.Cleanup(server.Close)
	return store, server
}

func getEntries(t *testing.T, url string) []map[string]any {
	t.Helper()
	response, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, response.StatusCode)
	}
	var entries []map[string]any
	if err := json.NewDecoder(response.Body).Decode(&entries); err != nil {
		t.Fatalf("decoding %s: %v", url, err)
	}
	return entries
}

func TestDefaultSeedAssignsMissingIDs(t *testing.T) {
	seed, err := DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	store := New(seed, Options{})
	if store.Len() != len(seed.Nicknames) {
		t.Fatalf("Len = %d, want %d", store.Len(), len(seed.Nicknames))
	}
	for _, entry := range store.listNicknames("") {
		if decodeRecord(entry).ID == "" {
			t.Errorf("entry without id: %v", entry)
		}
	}
}

func TestListEndpoints(t *testing.T) {
	_, server := newTestServer(t, Options{})

	users := getEntries(t, server.URL+"/api/users")
	if len(users) != 3 {
		t.Errorf("users = %d, want 3", len(users))
	}

	all := getEntries(t, server.URL+"/api/nicknames")
	if len(all) != 8 {
		t.Errorf("nicknames = %d, want 8", len(all))
	}

	// u-ann owns one created_by record and two user_id records.
	scoped := getEntries(t, server.URL+"/api/nicknames/user/u-ann")
	if len(scoped) != 3 {
		t.Errorf("u-ann nicknames = %d, want 3", len(scoped))
	}
	for _, entry := range scoped {
		if owner := decodeRecord(entry).Owner; owner != "u-ann" {
			t.Errorf("scoped listing returned record owned by %q", owner)
		}
	}

	// The populated owner document on n-006 resolves to u-cy.
	if got := len(getEntries(t, server.URL+"/api/nicknames/user/u-cy")); got != 2 {
		t.Errorf("u-cy nicknames = %d, want 2", got)
	}
	if got := len(getEntries(t, server.URL+"/api/nicknames/user/nobody")); got != 0 {
		t.Errorf("unknown user nicknames = %d, want 0", got)
	}
}

func TestListPreservesFieldShapes(t *testing.T) {
	_, server := newTestServer(t, Options{})
	for _, entry := range getEntries(t, server.URL+"/api/nicknames") {
		if entry["id"] == "n-003" {
			if _, exists := entry["_id"]; exists {
				t.Error("legacy record gained an _id field")
			}
			if entry["user_id"] != "u-ann" {
				t.Errorf("legacy record user_id = %v", entry["user_id"])
			}
			return
		}
	}
	t.Fatal("n-003 not served")
}

func TestDelete(t *testing.T) {
	store, server := newTestServer(t, Options{})

	deleteRequest := func(id string) int {
		request, err := http.NewRequest(http.MethodDelete, server.URL+"/api/nicknames/"+id, nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		response, err := http.DefaultClient.Do(request)
		if err != nil {
			t.Fatalf("DELETE %s: %v", id, err)
		}
		response.Body.Close()
		return response.StatusCode
	}

	if status := deleteRequest("n-003"); status != http.StatusOK {
		t.Fatalf("DELETE n-003 status = %d, want 200", status)
	}
	if store.Len() != 7 {
		t.Errorf("Len after delete = %d, want 7", store.Len())
	}
	if status := deleteRequest("n-003"); status != http.StatusNotFound {
		t.Errorf("second DELETE n-003 status = %d, want 404", status)
	}

	store.SetFailDeletes(true)
	if status := deleteRequest("n-001"); status != http.StatusInternalServerError {
		t.Errorf("DELETE with failures enabled status = %d, want 500", status)
	}
	if store.Len() != 7 {
		t.Errorf("failed delete changed Len to %d", store.Len())
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	_, server := newTestServer(t, Options{})

	response, err := http.Get(server.URL + "/api/unknown")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want 404", response.StatusCode)
	}

	response, err = http.Post(server.URL+"/api/nicknames", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", response.StatusCode)
	}
}

func TestGzipResponses(t *testing.T) {
	_, server := newTestServer(t, Options{})

	request, err := http.NewRequest(http.MethodGet, server.URL+"/api/nicknames", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	request.Header.Set("Accept-Encoding", "gzip")
	// Setting Accept-Encoding explicitly disables the transport's
	// transparent decompression.
	response, err := http.DefaultClient.Do(request)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer response.Body.Close()
	if response.Header.Get("Content-Encoding") != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", response.Header.Get("Content-Encoding"))
	}
	reader, err := gzip.NewReader(response.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	var entries []map[string]any
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(entries) != 8 {
		t.Errorf("entries = %d, want 8", len(entries))
	}
}

func TestLatency(t *testing.T) {
	_, server := newTestServer(t, Options{Latency: 50 * time.Millisecond})
	start := time.Now()
	getEntries(t, server.URL+"/api/users")
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("response after %v, want at least 50ms", elapsed)
	}
}

// A response held by the old latency is overtaken by one issued after
// SetLatency lowers it, which is the ordering the client's
// last-request-wins handling has to survive.
func TestSetLatencyLetsNewerResponseOvertake(t *testing.T) {
	store, server := newTestServer(t, Options{Latency: 500 * time.Millisecond})

	order := make(chan string, 2)
	go func() {
		response, err := http.Get(server.URL + "/api/nicknames")
		if err == nil {
			response.Body.Close()
		}
		order <- "slow"
	}()
	time.Sleep(100 * time.Millisecond)

	store.SetLatency(0)
	getEntries(t, server.URL+"/api/users")
	order <- "fast"

	if first := <-order; first != "fast" {
		t.Errorf("first completed = %q, want the request issued after SetLatency", first)
	}
	select {
	case <-order:
	case <-time.After(5 * time.Second):
		t.Fatal("slow request never completed")
	}
}

func TestParseSeedRejectsMalformed(t *testing.T) {
	if _, err := ParseSeed([]byte(`{"users": [`)); err == nil {
		t.Fatal("expected error for truncated seed")
	}
}

func TestNilSeed(t *testing.T) {
	store := New(nil, Options{})
	server := httptest.NewServer(store.Handler())
	defer server.Close()
	if users := getEntries(t, server.URL+"/api/users"); len(users) != 0 {
		t.Errorf("users = %d, want 0", len(users))
	}
}
