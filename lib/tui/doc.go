// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides terminal user interface components shared by
// nickview's screens. Built on bubbletea (Elm architecture), these
// components handle the common patterns: a color theme, dropdown
// overlays with fuzzy narrowing, confirmation and alert dialogs,
// ANSI-aware overlay splicing, scrollbars and terminal markdown.
//
// Screens own their data, layout and key handling and import this
// package for a consistent look: same theme, same keyboard
// conventions, same overlay mechanics.
package tui
