// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package nickui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/ani-nick/nickview/lib/nickname"
	"github.com/ani-nick/nickview/lib/tui"
)

// Grid geometry. Two columns need room for two minimum-width cards and
// the gap between them; narrower terminals get one column.
const (
	minCardWidth         = 34
	cardGap              = 2
	cardDescriptionLines = 6
)

// columnCount returns how many card columns fit in width.
func columnCount(width int) int {
	if width >= 2*minCardWidth+cardGap {
		return 2
	}
	return 1
}

// lineSpan is the [top, bottom) line range an item occupies in the
// grid content.
type lineSpan struct {
	top    int
	bottom int
}

// gridLayout is the rendered grid plus where each selectable item
// landed: one span per rendered card, then one for the Load More
// button when it is shown.
type gridLayout struct {
	content string
	spans   []lineSpan
	columns int
}

// cardView is what the renderer needs to know about one card.
type cardView struct {
	record   nickname.Record
	selected bool
	deleting bool
}

// renderGrid lays out cards in rows of columnCount(width) and appends
// the Load More button when showMore is set.
func renderGrid(theme tui.Theme, cards []cardView, showMore bool, moreSelected bool, remaining int, width int) gridLayout {
	columns := columnCount(width)
	cardWidth := max((width-cardGap*(columns-1))/columns, 12)

	layout := gridLayout{columns: columns}
	var blocks []string
	line := 0

	for rowStart := 0; rowStart < len(cards); rowStart += columns {
		rowEnd := min(rowStart+columns, len(cards))

		bodies := make([]string, 0, rowEnd-rowStart)
		height := 0
		for _, card := range cards[rowStart:rowEnd] {
			body := renderCardBody(theme, card, cardWidth-4)
			bodies = append(bodies, body)
			height = max(height, lipgloss.Height(body))
		}

		rendered := make([]string, 0, len(bodies))
		for index, body := range bodies {
			if missing := height - lipgloss.Height(body); missing > 0 {
				body += strings.Repeat("\n", missing)
			}
			rendered = append(rendered, cardFrame(theme, cards[rowStart+index], cardWidth).Render(body))
			if index < len(bodies)-1 {
				rendered = append(rendered, strings.Repeat(" ", cardGap))
			}
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		rowHeight := lipgloss.Height(row)
		for range bodies {
			layout.spans = append(layout.spans, lineSpan{top: line, bottom: line + rowHeight})
		}
		blocks = append(blocks, row)
		line += rowHeight + 1
	}

	if showMore {
		button := renderLoadMore(theme, moreSelected, remaining, width)
		layout.spans = append(layout.spans, lineSpan{top: line, bottom: line + 1})
		blocks = append(blocks, button)
	}

	layout.content = strings.Join(blocks, "\n\n")
	return layout
}

// cardFrame is the bordered box around a card body. The width passed
// to lipgloss excludes the border.
func cardFrame(theme tui.Theme, card cardView, width int) lipgloss.Style {
	borderColor := theme.BorderColor
	if card.selected {
		borderColor = theme.SelectedBorder
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(width - 2)
}

// renderCardBody renders the text inside a card: nickname, character,
// anime, description and a status line.
func renderCardBody(theme tui.Theme, card cardView, width int) string {
	width = max(width, 8)
	record := card.record

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.NicknameForeground)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText)

	title := record.Nickname
	if strings.TrimSpace(title) == "" {
		title = "(no nickname)"
	}
	if card.deleting {
		titleStyle = titleStyle.Foreground(theme.FaintText)
	}

	var lines []string
	lines = append(lines, titleStyle.Render(ansi.Truncate(title, width, "…")))
	lines = append(lines, labelStyle.Render("Character: ")+
		lipgloss.NewStyle().Foreground(theme.CharacterForeground).Render(ansi.Truncate(record.Character, max(width-11, 1), "…")))
	lines = append(lines, labelStyle.Render("Anime: ")+
		lipgloss.NewStyle().Foreground(theme.AnimeForeground).Render(ansi.Truncate(record.Anime, max(width-7, 1), "…")))

	if description := tui.RenderMarkdown(record.Description, theme, width); description != "" {
		descriptionLines := strings.Split(description, "\n")
		if len(descriptionLines) > cardDescriptionLines {
			descriptionLines = append(descriptionLines[:cardDescriptionLines-1], faintStyle.Render("…"))
		}
		lines = append(lines, "")
		lines = append(lines, descriptionLines...)
	}

	var status string
	switch {
	case card.deleting:
		status = lipgloss.NewStyle().Foreground(theme.PendingForeground).Bold(true).Render("deleting…")
	case !record.Editable():
		status = faintStyle.Render("read only: no id")
	case card.selected:
		status = faintStyle.Render("e edit · d delete")
	}
	if status != "" {
		lines = append(lines, "", status)
	}

	return strings.Join(lines, "\n")
}

// renderLoadMore renders the centered Load More button.
func renderLoadMore(theme tui.Theme, selected bool, remaining int, width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.NormalText).
		Background(theme.TooltipBackground).
		Padding(0, 2)
	if selected {
		style = style.
			Foreground(theme.SelectedForeground).
			Background(theme.SelectedBackground).
			Bold(true)
	}
	button := style.Render("Load More")
	hint := lipgloss.NewStyle().Foreground(theme.FaintText).Render(fmt.Sprintf(" %d more", remaining))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, button+hint)
}
