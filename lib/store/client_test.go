// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ani-nick/nickview/lib/mockstore"
	"github.com/ani-nick/nickview/lib/netutil"
)

func newTestClient(t *testing.T) (*Client, *mockstore.Store) {
	t.Helper()
	seed, err := mockstore.DefaultSeed()
	if err != nil {
		t.Fatalf("DefaultSeed: %v", err)
	}
	backend := mockstore.New(seed, mockstore.Options{})
	server := httptest.NewServer(backend.Handler())
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, backend
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"no scheme", "localhost:5000"},
		{"bad scheme", "ftp://store"},
		{"unparseable", "http://[::1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := NewClient(Config{BaseURL: test.baseURL}); err == nil {
				t.Errorf("NewClient(%q) succeeded", test.baseURL)
			}
		})
	}

	client, err := NewClient(Config{BaseURL: "http://store.local:5000///"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if client.BaseURL() != "http://store.local:5000" {
		t.Errorf("BaseURL = %q", client.BaseURL())
	}
}

func TestUsers(t *testing.T) {
	client, _ := newTestClient(t)
	users, err := client.Users(context.Background())
	if err != nil {
		t.Fatalf("Users: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("got %d users, want 3", len(users))
	}
	// The third seed user uses the legacy id spelling.
	if users[2].ID != "u-cy" || users[2].Username != "cy" {
		t.Errorf("users[2] = %+v", users[2])
	}
}

func TestNicknamesNormalizesShapes(t *testing.T) {
	client, _ := newTestClient(t)
	records, err := client.Nicknames(context.Background())
	if err != nil {
		t.Fatalf("Nicknames: %v", err)
	}
	if len(records) != 8 {
		t.Fatalf("got %d records, want 8", len(records))
	}
	for _, record := range records {
		if record.ID == "" {
			t.Errorf("record %q has no id", record.Nickname)
		}
		if record.Owner == "" {
			t.Errorf("record %s has no owner", record.ID)
		}
	}
	if records[2].ID != "n-003" || records[2].Owner != "u-ann" {
		t.Errorf("legacy record decoded as %+v", records[2])
	}
}

func TestNicknamesByUser(t *testing.T) {
	client, _ := newTestClient(t)
	records, err := client.NicknamesByUser(context.Background(), "u-bo")
	if err != nil {
		t.Fatalf("NicknamesByUser: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for _, record := range records {
		if record.Owner != "u-bo" {
			t.Errorf("record %s owned by %q", record.ID, record.Owner)
		}
	}

	if _, err := client.NicknamesByUser(context.Background(), ""); err == nil {
		t.Error("empty user id accepted")
	}
}

func TestNicknamesByUserEscapesPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.NicknamesByUser(context.Background(), "a/b c"); err != nil {
		t.Fatalf("NicknamesByUser: %v", err)
	}
	if gotPath != "/api/nicknames/user/a%2Fb%20c" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestDeleteNickname(t *testing.T) {
	client, backend := newTestClient(t)
	ctx := context.Background()

	if err := client.DeleteNickname(ctx, "n-002"); err != nil {
		t.Fatalf("DeleteNickname: %v", err)
	}
	if backend.Len() != 7 {
		t.Errorf("backend holds %d records, want 7", backend.Len())
	}

	err := client.DeleteNickname(ctx, "n-002")
	if !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("second delete error = %v, want 404", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is not *APIError: %T", err)
	}
	if apiErr.Message != "Nickname not found" || apiErr.Method != http.MethodDelete {
		t.Errorf("APIError = %+v", apiErr)
	}

	backend.SetFailDeletes(true)
	if err := client.DeleteNickname(ctx, "n-001"); !IsStatus(err, http.StatusInternalServerError) {
		t.Errorf("delete with failures enabled: %v", err)
	}
	if err := client.DeleteNickname(ctx, ""); err == nil {
		t.Error("empty id accepted")
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"message":"nope"}`, "nope"},
		{`{"error":"bad"}`, "bad"},
		{`{"message":"","error":"fallback"}`, "fallback"},
		{"<html>oops</html>", "<html>oops</html>"},
		{"", ""},
		{`{"message":"no\u001b[2Jpe"}`, "nope"},
		{"bad\x1b]0;title\x07 gateway\n", "bad gateway"},
		{"line one\nline two", "line one line two"},
	}
	for _, test := range tests {
		if got := errorMessage(test.body); got != test.want {
			t.Errorf("errorMessage(%q) = %q, want %q", test.body, got, test.want)
		}
	}
}

func TestServerErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Nicknames(context.Background())
	if !IsStatus(err, http.StatusBadGateway) {
		t.Fatalf("error = %v, want 502", err)
	}
	if err.Error() != "store: GET /api/nicknames: 502 Bad Gateway" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Nicknames(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestUnreachableStore(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(Config{BaseURL: url})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Users(context.Background())
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	if !netutil.IsUnreachable(err) {
		t.Errorf("IsUnreachable(%v) = false", err)
	}
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.Nicknames(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
