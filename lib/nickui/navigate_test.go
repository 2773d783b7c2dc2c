// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickui

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestEditPath(t *testing.T) {
	if got := EditPath("n-001"); got != "/create/n-001" {
		t.Errorf("EditPath = %q", got)
	}
}

func TestBrowserNavigator(t *testing.T) {
	var opened string
	navigator := BrowserNavigator{
		BaseURL: "http://localhost:3000/",
		Open: func(target string) error {
			opened = target
			return nil
		},
	}
	if err := navigator.Navigate("/create/n-001"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if opened != "http://localhost:3000/create/n-001" {
		t.Errorf("opened %q", opened)
	}
}

func TestBrowserNavigatorErrors(t *testing.T) {
	failing := BrowserNavigator{
		BaseURL: "http://localhost:3000",
		Open:    func(string) error { return errors.New("no display") },
	}
	if err := failing.Navigate("/create/x"); err == nil || !strings.Contains(err.Error(), "no display") {
		t.Errorf("opener failure should be returned, got %v", err)
	}

	for _, base := range []string{"", "localhost:3000/app", "/relative"} {
		navigator := BrowserNavigator{BaseURL: base, Open: func(string) error {
			t.Errorf("opener called for base %q", base)
			return nil
		}}
		if err := navigator.Navigate("/create/x"); err == nil {
			t.Errorf("base %q should be rejected", base)
		}
	}
}

func TestClipboardNavigator(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "xterm-256color")

	var terminal bytes.Buffer
	navigator := ClipboardNavigator{BaseURL: "https://nick.example", Terminal: &terminal}
	if err := navigator.Navigate("/create/n-002"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte("https://nick.example/create/n-002"))
	if want := "\x1b]52;c;" + encoded + "\x07"; terminal.String() != want {
		t.Errorf("wrote %q, want %q", terminal.String(), want)
	}

	terminal.Reset()
	bare := ClipboardNavigator{Terminal: &terminal}
	if err := bare.Navigate("/create/n-002"); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if !strings.Contains(terminal.String(), base64.StdEncoding.EncodeToString([]byte("/create/n-002"))) {
		t.Error("without a base URL the bare route should be copied")
	}
}

func TestOSC52Tmux(t *testing.T) {
	sequence := osc52Sequence("hi", true)
	direct := "\x1b]52;c;aGk=\x07"
	if !strings.HasPrefix(sequence, "\x1bPtmux;\x1b\x1b]52;c;aGk=\x07\x1b\\") {
		t.Errorf("missing DCS passthrough: %q", sequence)
	}
	if !strings.HasSuffix(sequence, direct) {
		t.Errorf("missing direct sequence: %q", sequence)
	}
}
