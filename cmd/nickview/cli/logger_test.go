// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewHandlerFormat(t *testing.T) {
	var text bytes.Buffer
	slog.New(newHandler(&text, true, nil)).Info("listening", "addr", ":5000")
	if !strings.Contains(text.String(), "msg=listening") {
		t.Errorf("terminal output should be text, got %q", text.String())
	}

	var structured bytes.Buffer
	slog.New(newHandler(&structured, false, nil)).Info("listening", "addr", ":5000")
	var record map[string]any
	if err := json.Unmarshal(structured.Bytes(), &record); err != nil {
		t.Fatalf("piped output should be JSON: %v (%q)", err, structured.String())
	}
	if record["msg"] != "listening" || record["addr"] != ":5000" {
		t.Errorf("unexpected record %v", record)
	}
}

func TestOpenFileLogHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nickview.log")
	handler, closeLog := OpenFileLogHandler(FileLogOptions{
		Path:       path,
		MaxSizeMB:  1,
		MaxBackups: 1,
		Level:      slog.LevelInfo,
	})

	logger := slog.New(handler)
	logger.Debug("dropped")
	logger.Warn("deleting nickname failed", "id", "n-001")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 record above the level, got %d: %q", len(lines), data)
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("record is not JSON: %v", err)
	}
	if record["id"] != "n-001" {
		t.Errorf("record id = %v", record["id"])
	}
}
