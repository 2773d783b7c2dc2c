// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// nickview-mockstore is an in-memory stand-in for the nickname record
// store. It serves the four routes nickview uses:
//
//   - GET /api/users
//   - GET /api/nicknames
//   - GET /api/nicknames/user/{userId}
//   - DELETE /api/nicknames/{id}
//
// Records come from a JSONC seed file (--seed) or the embedded default
// seed, which mixes the _id/id and created_by/user_id spellings the
// real store emits. --latency delays every response, which makes stale
// responses easy to produce by switching filters quickly; --fail-deletes
// answers every DELETE with a 500.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/ani-nick/nickview/cmd/nickview/cli"
	"github.com/ani-nick/nickview/lib/mockstore"
	"github.com/ani-nick/nickview/lib/version"
)

func main() {
	os.Exit(cli.ExitCode(run(os.Args[1:]), os.Stderr))
}

// shutdownTimeout bounds how long in-flight requests may finish after
// a signal.
const shutdownTimeout = 5 * time.Second

type options struct {
	listen      string
	seedPath    string
	latency     time.Duration
	failDeletes bool
	logLevel    string
}

func run(args []string) error {
	var opts options
	flagSet := pflag.NewFlagSet("nickview-mockstore", pflag.ContinueOnError)
	flagSet.StringVar(&opts.listen, "listen", "127.0.0.1:5000", "address to listen on")
	flagSet.StringVar(&opts.seedPath, "seed", "", "JSONC seed file (default: embedded seed)")
	flagSet.DurationVar(&opts.latency, "latency", 0, "artificial delay before every response")
	flagSet.BoolVar(&opts.failDeletes, "fail-deletes", false, "answer every DELETE with 500")
	flagSet.StringVar(&opts.logLevel, "log-level", "info", "minimum log level: debug, info, warn, error")
	flagSet.Bool("version", false, "print version information and exit")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return cli.Validation("%w", err)
	}
	if showVersion, _ := flagSet.GetBool("version"); showVersion {
		version.Print(os.Stdout, "nickview-mockstore")
		return nil
	}
	if opts.latency < 0 {
		return cli.Validation("--latency must not be negative")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.logLevel)); err != nil {
		return cli.Validation("--log-level: %w", err)
	}
	logger := cli.NewCommandLogger(level)

	seed, err := loadSeed(opts.seedPath)
	if err != nil {
		return err
	}
	store := mockstore.New(seed, mockstore.Options{
		Latency:     opts.latency,
		FailDeletes: opts.failDeletes,
		Logger:      logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, err := listen(opts.listen)
	if err != nil {
		return err
	}
	return serve(ctx, listener, store.Handler(), logger, store.Len())
}

// listen opens the TCP listener. An address already in use is
// transient (another store, or one still shutting down); anything else
// is a bad --listen value.
func listen(address string) (net.Listener, error) {
	listener, err := net.Listen("tcp", address)
	if err == nil {
		return listener, nil
	}
	if errors.Is(err, syscall.EADDRINUSE) {
		return nil, cli.Transient("cannot listen on %s: %w", address, err).
			WithHint("Stop the process holding the port or pass a different --listen address.")
	}
	return nil, cli.Validation("cannot listen on %s: %w", address, err)
}

func loadSeed(path string) (*mockstore.Seed, error) {
	if path == "" {
		seed, err := mockstore.DefaultSeed()
		if err != nil {
			return nil, cli.Internal("embedded seed: %w", err)
		}
		return seed, nil
	}
	seed, err := mockstore.ReadSeedFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, cli.NotFound("%w", err)
		}
		return nil, cli.Validation("%w", err)
	}
	return seed, nil
}

// serve runs the HTTP server on listener until ctx is cancelled, then
// drains in-flight requests.
func serve(ctx context.Context, listener net.Listener, handler http.Handler, logger *slog.Logger, records int) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- server.Serve(listener)
	}()

	logger.Info("mock store listening",
		"address", fmt.Sprintf("http://%s", listener.Addr()),
		"nicknames", records,
	)

	select {
	case err := <-serveDone:
		return cli.Internal("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownContext, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownContext); err != nil {
		return cli.Internal("shutdown: %w", err)
	}
	if err := <-serveDone; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return cli.Internal("serving: %w", err)
	}
	return nil
}
