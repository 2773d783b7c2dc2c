// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for nickview's terminal UI. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected card and dropdown row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color
	SelectedBorder     lipgloss.Color

	// Card content.
	NicknameForeground  lipgloss.Color
	CharacterForeground lipgloss.Color
	AnimeForeground     lipgloss.Color

	// Semantic states.
	ErrorForeground      lipgloss.Color
	WarningForeground    lipgloss.Color
	PendingForeground    lipgloss.Color // In-flight mutations ("deleting").
	SpinnerForeground    lipgloss.Color
	SuccessForeground    lipgloss.Color
	FuzzyMatchForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Overlays (dropdowns, dialogs).
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),
	SelectedBorder:     lipgloss.Color("213"), // pink

	NicknameForeground:  lipgloss.Color("213"),
	CharacterForeground: lipgloss.Color("117"), // light blue
	AnimeForeground:     lipgloss.Color("180"), // tan

	ErrorForeground:      lipgloss.Color("196"),
	WarningForeground:    lipgloss.Color("220"),
	PendingForeground:    lipgloss.Color("208"),
	SpinnerForeground:    lipgloss.Color("213"),
	SuccessForeground:    lipgloss.Color("114"),
	FuzzyMatchForeground: lipgloss.Color("220"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),
}
