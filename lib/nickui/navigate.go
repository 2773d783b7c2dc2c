// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickui

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// BrowserNavigator opens routes of the web application in the
// platform's browser.
type BrowserNavigator struct {
	// BaseURL is the web application's root (e.g.,
	// "http://localhost:3000"). Routes are appended to it.
	BaseURL string

	// Open launches url. If nil, the platform opener is used
	// (xdg-open, open, or rundll32).
	Open func(url string) error
}

// Navigate opens BaseURL+path.
func (navigator BrowserNavigator) Navigate(path string) error {
	target, err := joinURL(navigator.BaseURL, path)
	if err != nil {
		return err
	}
	open := navigator.Open
	if open == nil {
		open = openInBrowser
	}
	if err := open(target); err != nil {
		return fmt.Errorf("opening %s: %w", target, err)
	}
	return nil
}

func joinURL(base, path string) (string, error) {
	if base == "" {
		return "", fmt.Errorf("no web URL configured")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid web URL %q: %w", base, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("web URL %q must be absolute", base)
	}
	return strings.TrimRight(base, "/") + path, nil
}

// openInBrowser starts the platform URL opener without waiting for it.
func openInBrowser(target string) error {
	var command *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", target)
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		command = exec.Command("xdg-open", target)
	}
	if err := command.Start(); err != nil {
		return err
	}
	go command.Wait()
	return nil
}

// ClipboardNavigator copies the full edit URL (or the bare route when
// BaseURL is empty) to the terminal clipboard via OSC 52. Useful over
// SSH where no browser can be launched.
type ClipboardNavigator struct {
	BaseURL string

	// Terminal receives the escape sequence. If nil, /dev/tty is
	// opened for each copy.
	Terminal io.Writer
}

// Navigate copies the route to the clipboard.
func (navigator ClipboardNavigator) Navigate(path string) error {
	target := path
	if navigator.BaseURL != "" {
		joined, err := joinURL(navigator.BaseURL, path)
		if err != nil {
			return err
		}
		target = joined
	}

	terminal := navigator.Terminal
	if terminal == nil {
		tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("opening terminal for clipboard: %w", err)
		}
		defer tty.Close()
		terminal = tty
	}
	_, err := io.WriteString(terminal, osc52Sequence(target, inTmux()))
	return err
}

// osc52Sequence builds the clipboard escape for text. Inside tmux the
// sequence is also wrapped in a DCS passthrough (escapes doubled, BEL
// terminator) ahead of the direct form, which covers both
// allow-passthrough and set-clipboard setups.
func osc52Sequence(text string, tmux bool) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	osc52 := "\x1b]52;c;" + encoded + "\x07"
	if tmux {
		return "\x1bPtmux;\x1b" + osc52 + "\x1b\\" + osc52
	}
	return osc52
}

// inTmux detects tmux locally (TMUX) or forwarded over SSH (TERM).
func inTmux() bool {
	return os.Getenv("TMUX") != "" ||
		strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
		strings.HasPrefix(os.Getenv("TERM"), "screen")
}
