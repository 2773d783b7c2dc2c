// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for nickview.
//
// Configuration is loaded from a single file specified by either the
// NICKVIEW_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no automatic file search. Without either,
// [Default] applies: a store at http://localhost:5000 and the web
// application at http://localhost:3000.
//
// The file supports environment-specific sections (development,
// staging, production) that override base values when
// [Config].Environment matches. Production without its own section
// logs at error level only.
//
// ${VAR} and ${VAR:-default} patterns are expanded in the store URL,
// the web URL and the log output path. Command-line flags override
// the loaded values; this package does not read them.
//
// This package depends on no other nickview packages.
package config
