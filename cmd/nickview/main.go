// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// nickview is a terminal list of anime character nicknames kept in a
// remote record store. It shows the collection as cards, six at a
// time, filters it by owning user, deletes records after confirmation,
// and hands edits off to the web application's /create/{id} form.
//
// The store is addressed by --api-url (or store.api_url in the config
// file); the web application by --web-url. See nickview-mockstore for
// a local stand-in store.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/ani-nick/nickview/cmd/nickview/cli"
	"github.com/ani-nick/nickview/lib/config"
	"github.com/ani-nick/nickview/lib/nickui"
	"github.com/ani-nick/nickview/lib/store"
	"github.com/ani-nick/nickview/lib/version"
)

func main() {
	os.Exit(cli.ExitCode(run(os.Args[1:]), os.Stderr))
}

// flagValues holds the command-line settings that override the config
// file.
type flagValues struct {
	configPath string
	apiURL     string
	webURL     string
	editMode   string
	timeout    time.Duration
	logOutput  string
	logLevel   string
}

func newFlagSet(values *flagValues) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("nickview", pflag.ContinueOnError)
	flagSet.StringVar(&values.configPath, "config", "", "path to a YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&values.apiURL, "api-url", "", "base URL of the nickname store (overrides store.api_url)")
	flagSet.StringVar(&values.webURL, "web-url", "", "base URL of the web application serving /create/{id}")
	flagSet.StringVar(&values.editMode, "edit-mode", "", "how edits are handed off: browser or clipboard")
	flagSet.DurationVar(&values.timeout, "timeout", 0, "per-request timeout (overrides store.request_timeout)")
	flagSet.StringVar(&values.logOutput, "log-output", "", "write JSON log records to this file (in addition to the status bar)")
	flagSet.StringVar(&values.logLevel, "log-level", "", "minimum log level: debug, info, warn, error (the status bar never shows below warn)")
	flagSet.Bool("version", false, "print version information and exit")
	flagSet.BoolP("help", "h", false, "show help")
	flagSet.SortFlags = false
	return flagSet
}

func run(args []string) error {
	var values flagValues
	flagSet := newFlagSet(&values)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return cli.Validation("%w", err)
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if showVersion, _ := flagSet.GetBool("version"); showVersion {
		version.Print(os.Stdout, "nickview")
		return nil
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return cli.Validation("unexpected argument: %s", remaining[0])
	}

	cfg, err := loadConfig(flagSet, values)
	if err != nil {
		return err
	}
	timeout, _ := cfg.RequestTimeout()
	level, _ := cfg.LogLevel()

	tuiHandler := nickui.NewTUILogHandler(statusBarLevel(level))
	var handler slog.Handler = tuiHandler
	if cfg.Log.Output != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.Output), 0o755); err != nil {
			return cli.Validation("cannot create log directory for %s: %w", cfg.Log.Output, err)
		}
		fileHandler, closeLog := cli.OpenFileLogHandler(cli.FileLogOptions{
			Path:       cfg.Log.Output,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			Level:      level,
		})
		defer closeLog()
		handler = fanoutHandler{tuiHandler, fileHandler}
	}
	backgroundLogger := slog.New(handler).With("environment", string(cfg.Environment))

	client, err := store.NewClient(store.Config{
		BaseURL:    cfg.Store.APIURL,
		HTTPClient: &http.Client{Timeout: timeout + time.Second},
		Logger:     backgroundLogger,
	})
	if err != nil {
		return cli.Validation("%w", err)
	}

	model := nickui.NewModel(nickui.Config{
		Store:          client,
		Navigator:      newNavigator(cfg),
		RequestTimeout: timeout,
		Logger:         backgroundLogger,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	tuiHandler.SetProgram(program)

	backgroundLogger.Debug("starting", "store", client.BaseURL(), "version", version.Info())
	if _, err := program.Run(); err != nil {
		return cli.Internal("running terminal UI: %w", err)
	}
	return nil
}

// loadConfig reads the config file named by --config or
// NICKVIEW_CONFIG, applies the flags that were set, and validates the
// result.
// statusBarLevel is the threshold for the status-bar handler: the
// configured level, but never below warn.
func statusBarLevel(level slog.Level) slog.Level {
	return max(level, slog.LevelWarn)
}

func loadConfig(flagSet *pflag.FlagSet, values flagValues) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if values.configPath != "" {
		cfg, err = config.LoadFile(values.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("%w", err).
				WithHint("Pass --config with an existing file, or unset " + config.EnvVar + " to use the defaults.")
		}
		return nil, cli.Validation("%w", err)
	}

	if flagSet.Changed("api-url") {
		cfg.Store.APIURL = values.apiURL
	}
	if flagSet.Changed("web-url") {
		cfg.Edit.WebURL = values.webURL
	}
	if flagSet.Changed("edit-mode") {
		cfg.Edit.Mode = values.editMode
	}
	if flagSet.Changed("timeout") {
		cfg.Store.RequestTimeout = values.timeout.String()
	}
	if flagSet.Changed("log-output") {
		cfg.Log.Output = values.logOutput
	}
	if flagSet.Changed("log-level") {
		cfg.Log.Level = values.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err)
	}
	return cfg, nil
}

// newNavigator picks the edit hand-off for the configured mode.
func newNavigator(cfg *config.Config) nickui.Navigator {
	if cfg.Edit.Mode == config.EditModeClipboard {
		return nickui.ClipboardNavigator{BaseURL: cfg.Edit.WebURL}
	}
	return nickui.BrowserNavigator{BaseURL: cfg.Edit.WebURL}
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `nickview: browse, filter and delete anime character nicknames.

Shows the nickname store as cards, six at a time. Press u to filter by
user, m to load more, e to open a card's edit form, d to delete it.

Usage:
  nickview [flags]

Examples:
  # Against a local store and web app on the default ports
  nickview

  # Against a mock store with slow responses
  nickview-mockstore --latency 800ms &
  nickview --api-url http://localhost:5000

  # Over SSH: copy edit links instead of opening a browser
  nickview --edit-mode clipboard --web-url https://nick.example

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
