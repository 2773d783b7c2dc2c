// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// markdownParserInstance is initialized once and reused. The goldmark
// Parser is safe to share; parsing creates per-call state.
var (
	markdownParserInstance goldmark.Markdown
	markdownParserOnce     sync.Once
)

func getMarkdownParser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParserInstance = goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
		)
	})
	return markdownParserInstance
}

// wrapBreakpoints are the characters ansi.Wrap may break after.
const wrapBreakpoints = " ,.;-+|"

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// RenderMarkdown parses markdown text and renders it as styled terminal
// output wrapped to width. Soft line breaks become spaces so
// hard-wrapped source text reflows at any width. The result has no
// trailing newline.
func RenderMarkdown(input string, theme Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := getMarkdownParser().Parser().Parse(text.NewReader(source))

	// SetColorProfile is required because lipgloss.Renderer.ColorProfile()
	// ignores the termenv.Output profile and re-detects from the
	// environment unless explicitColorProfile is set.
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, renderer.walk)

	return strings.TrimRight(renderer.output.String(), "\n")
}

// markdownRenderer walks a goldmark AST and produces styled terminal
// text. Paragraph inline content accumulates in a buffer and is
// word-wrapped as a unit when the paragraph closes.
type markdownRenderer struct {
	source []byte
	theme  Theme
	width  int

	output strings.Builder
	inline strings.Builder

	// Prefix for nested blocks (blockquotes, list continuation).
	prefixes        []string
	linePrefix      string
	linePrefixWidth int

	// Replaces linePrefix for the next emitted line (list bullets).
	pendingBullet string

	// Counters, not booleans, so nested emphasis unwinds correctly.
	boldCount          int
	italicCount        int
	strikethroughCount int

	lists []listState

	lipRenderer      *lipgloss.Renderer
	trailingNewlines int
}

type listState struct {
	ordered bool
	counter int
	tight   bool
}

func (renderer *markdownRenderer) newStyle() lipgloss.Style {
	return renderer.lipRenderer.NewStyle()
}

// currentWidth is the content width left after prefixes, never below 10.
func (renderer *markdownRenderer) currentWidth() int {
	return max(renderer.width-renderer.linePrefixWidth, 10)
}

func (renderer *markdownRenderer) pushPrefix(prefix string) {
	renderer.prefixes = append(renderer.prefixes, prefix)
	renderer.linePrefix += prefix
	renderer.linePrefixWidth += ansi.StringWidth(prefix)
}

func (renderer *markdownRenderer) popPrefix() {
	if len(renderer.prefixes) == 0 {
		return
	}
	top := renderer.prefixes[len(renderer.prefixes)-1]
	renderer.prefixes = renderer.prefixes[:len(renderer.prefixes)-1]
	renderer.linePrefix = renderer.linePrefix[:len(renderer.linePrefix)-len(top)]
	renderer.linePrefixWidth -= ansi.StringWidth(top)
}

func (renderer *markdownRenderer) inTightList() bool {
	return len(renderer.lists) > 0 && renderer.lists[len(renderer.lists)-1].tight
}

func (renderer *markdownRenderer) writeOutput(s string) {
	if s == "" {
		return
	}
	renderer.output.WriteString(s)
	trimmed := strings.TrimRight(s, "\n")
	newlines := len(s) - len(trimmed)
	if trimmed == "" {
		renderer.trailingNewlines += newlines
	} else {
		renderer.trailingNewlines = newlines
	}
}

func (renderer *markdownRenderer) ensureNewline() {
	if renderer.output.Len() > 0 && renderer.trailingNewlines < 1 {
		renderer.writeOutput("\n")
	}
}

func (renderer *markdownRenderer) ensureBlankLine() {
	if renderer.output.Len() == 0 {
		return
	}
	for renderer.trailingNewlines < 2 {
		renderer.writeOutput("\n")
	}
}

// applyPrefixes prefixes each line of content: the first with the
// pending bullet if one is set, the rest with the regular prefix.
func (renderer *markdownRenderer) applyPrefixes(content string) string {
	lines := strings.Split(content, "\n")
	for index := range lines {
		prefix := renderer.linePrefix
		if index == 0 && renderer.pendingBullet != "" {
			prefix = renderer.pendingBullet
			renderer.pendingBullet = ""
		}
		lines[index] = prefix + lines[index]
	}
	return strings.Join(lines, "\n")
}

func (renderer *markdownRenderer) flushInline() string {
	content := renderer.inline.String()
	renderer.inline.Reset()
	if strings.TrimSpace(ansi.Strip(content)) == "" {
		return ""
	}
	return renderer.applyPrefixes(ansi.Wrap(content, renderer.currentWidth(), wrapBreakpoints))
}

func (renderer *markdownRenderer) styledText(content string) string {
	style := renderer.newStyle().Foreground(renderer.theme.NormalText)
	if renderer.boldCount > 0 {
		style = style.Bold(true)
	}
	if renderer.italicCount > 0 {
		style = style.Italic(true)
	}
	if renderer.strikethroughCount > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

func (renderer *markdownRenderer) faint(content string) string {
	return renderer.newStyle().Foreground(renderer.theme.FaintText).Render(content)
}

func (renderer *markdownRenderer) segmentsText(lines *text.Segments) string {
	var builder strings.Builder
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		builder.Write(segment.Value(renderer.source))
	}
	return builder.String()
}

func (renderer *markdownRenderer) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			renderer.inline.Reset()
			return ast.WalkContinue, nil
		}
		if flushed := renderer.flushInline(); flushed != "" {
			renderer.writeOutput(flushed)
			renderer.ensureNewline()
			if !renderer.inTightList() {
				renderer.ensureBlankLine()
			}
		}

	case ast.KindHeading:
		if entering {
			renderer.inline.Reset()
			return ast.WalkContinue, nil
		}
		content := ansi.Strip(renderer.inline.String())
		renderer.inline.Reset()
		if content != "" {
			style := renderer.newStyle().Bold(true).Foreground(renderer.theme.HeaderForeground)
			renderer.ensureBlankLine()
			renderer.writeOutput(renderer.applyPrefixes(ansi.Wrap(style.Render(content), renderer.currentWidth(), wrapBreakpoints)))
			renderer.ensureNewline()
		}

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if entering {
			code := strings.TrimRight(renderer.segmentsText(node.Lines()), "\n")
			renderer.ensureBlankLine()
			for _, line := range strings.Split(code, "\n") {
				renderer.writeOutput(renderer.applyPrefixes(renderer.faint(ansi.Truncate(line, renderer.currentWidth(), "…"))))
				renderer.writeOutput("\n")
			}
			renderer.ensureBlankLine()
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			renderer.pushPrefix(renderer.faint("│") + " ")
		} else {
			renderer.popPrefix()
			renderer.ensureBlankLine()
		}

	case ast.KindList:
		list := node.(*ast.List)
		if entering {
			renderer.lists = append(renderer.lists, listState{
				ordered: list.IsOrdered(),
				counter: list.Start,
				tight:   list.IsTight,
			})
		} else {
			renderer.lists = renderer.lists[:len(renderer.lists)-1]
			if !renderer.inTightList() {
				renderer.ensureBlankLine()
			}
		}

	case ast.KindListItem:
		if entering {
			renderer.enterListItem()
		} else {
			renderer.popPrefix()
			renderer.ensureNewline()
		}

	case ast.KindThematicBreak:
		if entering {
			rule := renderer.newStyle().Foreground(renderer.theme.BorderColor).Render(strings.Repeat("─", renderer.currentWidth()))
			renderer.ensureBlankLine()
			renderer.writeOutput(renderer.applyPrefixes(rule))
			renderer.ensureNewline()
			renderer.ensureBlankLine()
		}

	case ast.KindHTMLBlock:
		if entering {
			stripped := strings.TrimSpace(htmlTagPattern.ReplaceAllString(renderer.segmentsText(node.Lines()), ""))
			if stripped != "" {
				renderer.writeOutput(renderer.applyPrefixes(renderer.faint(stripped)))
				renderer.ensureNewline()
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			renderer.inline.WriteString(renderer.styledText(string(textNode.Segment.Value(renderer.source))))
			if textNode.HardLineBreak() {
				renderer.inline.WriteString("\n")
			} else if textNode.SoftLineBreak() {
				renderer.inline.WriteString(" ")
			}
		}

	case ast.KindString:
		if entering {
			renderer.inline.WriteString(renderer.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		delta := 1
		if !entering {
			delta = -1
		}
		if node.(*ast.Emphasis).Level >= 2 {
			renderer.boldCount += delta
		} else {
			renderer.italicCount += delta
		}

	case extast.KindStrikethrough:
		if entering {
			renderer.strikethroughCount++
		} else {
			renderer.strikethroughCount--
		}

	case ast.KindCodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				switch typed := child.(type) {
				case *ast.Text:
					code.Write(typed.Segment.Value(renderer.source))
				case *ast.String:
					code.Write(typed.Value)
				}
			}
			renderer.inline.WriteString(renderer.faint(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if !entering {
			destination := string(node.(*ast.Link).Destination)
			if destination != "" {
				renderer.inline.WriteString(" " + renderer.faint("("+destination+")"))
			}
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(renderer.source))
			renderer.inline.WriteString(renderer.newStyle().Foreground(renderer.theme.CharacterForeground).Render(url))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindImage:
		if entering {
			image := node.(*ast.Image)
			alt := ansi.Strip(renderer.collectInline(node))
			renderer.inline.WriteString(renderer.faint("[" + alt + "] (" + string(image.Destination) + ")"))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindRawHTML:
		if entering {
			stripped := htmlTagPattern.ReplaceAllString(renderer.segmentsText(node.(*ast.RawHTML).Segments), "")
			if stripped != "" {
				renderer.inline.WriteString(renderer.faint(stripped))
			}
			return ast.WalkSkipChildren, nil
		}
	}

	return ast.WalkContinue, nil
}

func (renderer *markdownRenderer) enterListItem() {
	if len(renderer.lists) == 0 {
		return
	}
	top := &renderer.lists[len(renderer.lists)-1]
	bullet := "• "
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.counter)
		top.counter++
	}
	renderer.ensureNewline()
	renderer.pendingBullet = renderer.linePrefix + bullet
	renderer.pushPrefix(strings.Repeat(" ", ansi.StringWidth(bullet)))
}

// collectInline renders node's children into a string without
// disturbing the enclosing inline buffer.
func (renderer *markdownRenderer) collectInline(node ast.Node) string {
	saved := renderer.inline.String()
	renderer.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, renderer.walk)
	}
	result := renderer.inline.String()
	renderer.inline.Reset()
	renderer.inline.WriteString(saved)
	return result
}
