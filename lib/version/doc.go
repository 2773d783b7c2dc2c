// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the nickview
// binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// These default to "unknown" / "0.1.0-dev" when not injected, which
// occurs during development builds and test runs. For example:
//
//	go build -ldflags "-X github.com/ani-nick/nickview/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// [Info] and [Full] format them; [Print] backs --version.
package version
