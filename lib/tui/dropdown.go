// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"
)

// DropdownOption is a single selectable item in a dropdown overlay.
type DropdownOption struct {
	Label string // Display text shown in the dropdown.
	Value string // Value reported on selection.
}

// dropdownMatch is an option that survives the current query.
type dropdownMatch struct {
	index     int
	score     int
	positions []int
}

// DropdownOverlay renders a floating menu anchored at a screen
// position. It captures all keyboard input when active: typing narrows
// the options by fuzzy match on their labels, up/down navigate, enter
// selects and escape dismisses. The model owns the dropdown instance
// and routes input to it when focus is set.
type DropdownOverlay struct {
	Title   string
	AnchorX int // Screen X coordinate of the dropdown's top-left corner.
	AnchorY int // Screen Y coordinate of the dropdown's top-left corner.
	MaxRows int // Option rows shown at once; 0 means all.

	options []DropdownOption
	matches []dropdownMatch
	query   []rune
	cursor  int // Index into matches.
	scroll  int // First visible index into matches.
	slab    *util.Slab
}

// NewDropdown creates a dropdown listing options in order with the
// cursor on the first one.
func NewDropdown(title string, options []DropdownOption) DropdownOverlay {
	dropdown := DropdownOverlay{
		Title:   title,
		options: slices.Clone(options),
		slab:    util.MakeSlab(16*1024, 2048),
	}
	dropdown.refilter()
	return dropdown
}

// SelectValue moves the cursor to the option with value, if it is
// among the current matches.
func (dropdown *DropdownOverlay) SelectValue(value string) {
	for position, match := range dropdown.matches {
		if dropdown.options[match.index].Value == value {
			dropdown.cursor = position
			dropdown.ensureVisible()
			return
		}
	}
}

// Query returns the current filter text.
func (dropdown *DropdownOverlay) Query() string {
	return string(dropdown.query)
}

// HandleRune appends a character to the query and re-filters.
func (dropdown *DropdownOverlay) HandleRune(character rune) {
	dropdown.query = append(dropdown.query, character)
	dropdown.refilter()
}

// HandleBackspace removes the last query character and re-filters.
func (dropdown *DropdownOverlay) HandleBackspace() {
	if len(dropdown.query) == 0 {
		return
	}
	dropdown.query = dropdown.query[:len(dropdown.query)-1]
	dropdown.refilter()
}

// refilter recomputes the matches for the current query. With an
// empty query every option matches in its original order; otherwise
// matches are ordered by descending score, ties in original order.
// The cursor resets to the best match.
func (dropdown *DropdownOverlay) refilter() {
	dropdown.matches = make([]dropdownMatch, 0, len(dropdown.options))
	for index, option := range dropdown.options {
		result := FuzzyMatch(option.Label, dropdown.query, dropdown.slab)
		if result.Score <= 0 {
			continue
		}
		dropdown.matches = append(dropdown.matches, dropdownMatch{
			index:     index,
			score:     result.Score,
			positions: result.Positions,
		})
	}
	if len(dropdown.query) > 0 {
		slices.SortStableFunc(dropdown.matches, func(a, b dropdownMatch) int {
			return b.score - a.score
		})
	}
	dropdown.cursor = 0
	dropdown.scroll = 0
}

// Len returns the number of options matching the current query.
func (dropdown *DropdownOverlay) Len() int {
	return len(dropdown.matches)
}

// Cursor returns the cursor position within the current matches.
func (dropdown *DropdownOverlay) Cursor() int {
	return dropdown.cursor
}

// MoveUp moves the cursor up by one, wrapping to the bottom.
func (dropdown *DropdownOverlay) MoveUp() {
	if len(dropdown.matches) == 0 {
		return
	}
	dropdown.cursor--
	if dropdown.cursor < 0 {
		dropdown.cursor = len(dropdown.matches) - 1
	}
	dropdown.ensureVisible()
}

// MoveDown moves the cursor down by one, wrapping to the top.
func (dropdown *DropdownOverlay) MoveDown() {
	if len(dropdown.matches) == 0 {
		return
	}
	dropdown.cursor++
	if dropdown.cursor >= len(dropdown.matches) {
		dropdown.cursor = 0
	}
	dropdown.ensureVisible()
}

func (dropdown *DropdownOverlay) visibleRows() int {
	if dropdown.MaxRows <= 0 || dropdown.MaxRows > len(dropdown.matches) {
		return len(dropdown.matches)
	}
	return dropdown.MaxRows
}

func (dropdown *DropdownOverlay) ensureVisible() {
	rows := dropdown.visibleRows()
	if dropdown.cursor < dropdown.scroll {
		dropdown.scroll = dropdown.cursor
	}
	if rows > 0 && dropdown.cursor >= dropdown.scroll+rows {
		dropdown.scroll = dropdown.cursor - rows + 1
	}
}

// Selected returns the currently highlighted option. The second result
// is false when the query matches nothing.
func (dropdown *DropdownOverlay) Selected() (DropdownOption, bool) {
	if len(dropdown.matches) == 0 {
		return DropdownOption{}, false
	}
	return dropdown.options[dropdown.matches[dropdown.cursor].index], true
}

// Width returns the total visible width of the rendered dropdown in
// columns. It depends on every option, not just the matches, so the
// overlay does not jitter while the user types.
func (dropdown *DropdownOverlay) Width() int {
	maxLabelWidth := ansi.StringWidth(dropdown.Title)
	for _, option := range dropdown.options {
		maxLabelWidth = max(maxLabelWidth, ansi.StringWidth(option.Label))
	}
	// Layout: " > LABEL " with 1 char padding on each side.
	return 3 + maxLabelWidth + 2
}

// Height returns the number of lines Render produces.
func (dropdown *DropdownOverlay) Height() int {
	return 1 + max(dropdown.visibleRows(), 1)
}

// Render produces the dropdown lines for overlay splicing: a header
// line showing the title or the query, then one line per visible
// option. Every line has the same visible width and a solid
// background. Matched characters are highlighted.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	totalWidth := dropdown.Width()
	innerWidth := totalWidth - 2

	backgroundStyle := lipgloss.NewStyle().
		Background(theme.TooltipBackground).
		Foreground(theme.TooltipForeground)
	selectedStyle := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)
	headerStyle := backgroundStyle.Foreground(theme.HeaderForeground).Bold(true)
	faintStyle := backgroundStyle.Foreground(theme.FaintText)

	var lines []string

	header := headerStyle.Render(ansi.Truncate(dropdown.Title, innerWidth, "…"))
	if len(dropdown.query) > 0 {
		header = faintStyle.Render("/") + headerStyle.Render(ansi.Truncate(string(dropdown.query), innerWidth-1, "…"))
	}
	lines = append(lines, PadOverlayLine(header, innerWidth, totalWidth, backgroundStyle))

	if len(dropdown.matches) == 0 {
		lines = append(lines, PadOverlayLine(faintStyle.Render("  no matches"), innerWidth, totalWidth, backgroundStyle))
		return lines
	}

	rows := dropdown.visibleRows()
	for position := dropdown.scroll; position < dropdown.scroll+rows && position < len(dropdown.matches); position++ {
		match := dropdown.matches[position]
		style := backgroundStyle
		marker := "  "
		if position == dropdown.cursor {
			style = selectedStyle
			marker = "> "
		}
		highlight := style.Foreground(theme.FuzzyMatchForeground).Bold(true)
		label := highlightRunes(dropdown.options[match.index].Label, match.positions, style, highlight)
		lines = append(lines, PadOverlayLine(style.Render(marker)+label, innerWidth, totalWidth, style))
	}
	return lines
}

// highlightRunes renders text with base, switching to highlight for
// the runes at positions.
func highlightRunes(text string, positions []int, base, highlight lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}
	var result strings.Builder
	var run []rune
	runHighlighted := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runHighlighted {
			result.WriteString(highlight.Render(string(run)))
		} else {
			result.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	next := 0
	for index, character := range []rune(text) {
		matched := next < len(positions) && positions[next] == index
		if matched {
			next++
		}
		if matched != runHighlighted {
			flush()
			runHighlighted = matched
		}
		run = append(run, character)
	}
	flush()
	return result.String()
}
