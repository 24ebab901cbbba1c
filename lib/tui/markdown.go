// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Parser configuration never changes and the goldmark Parser is safe
// to share; per-call parse state lives in the text.Reader.
var (
	guideParser     goldmark.Markdown
	guideParserOnce sync.Once
)

func markdownParser() goldmark.Markdown {
	guideParserOnce.Do(func() {
		guideParser = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return guideParser
}

// RenderMarkdown renders markdown as styled terminal text wrapped to
// width. Soft line breaks become spaces so hard-wrapped source reflows
// at any terminal width; code fences, lists, and tables keep their
// structure.
func RenderMarkdown(input string, theme Theme, width int) string {
	if input == "" {
		return ""
	}
	source := []byte(input)
	document := markdownParser().Parser().Parse(text.NewReader(source))

	// Force ANSI256 so output stays colored when stdout is piped or the
	// tests run without a TTY. SetColorProfile is needed on top of the
	// termenv option because lipgloss re-detects the profile from the
	// environment unless one is set explicitly.
	styles := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	styles.SetColorProfile(termenv.ANSI256)

	writer := &markdownWriter{
		source: source,
		theme:  theme,
		width:  width,
		styles: styles,
	}
	ast.Walk(document, writer.walk)

	return strings.TrimRight(writer.out.String(), "\n")
}

// markdownWriter walks a goldmark AST directly instead of implementing
// goldmark's renderer interface: terminal output needs whole-paragraph
// word wrap, so inline content accumulates in a buffer and is flushed
// when the enclosing block closes.
type markdownWriter struct {
	source []byte
	theme  Theme
	width  int
	styles *lipgloss.Renderer

	out    strings.Builder
	inline strings.Builder

	// Prefix stack for nested containers (blockquotes, list bodies).
	prefixes    []blockPrefix
	prefix      string
	prefixWidth int

	// Bullet for the first line of the current list item. Consumed by
	// the next emitted line, after which the regular prefix applies.
	bullet string

	// Nesting counters rather than booleans so nested emphasis closes
	// correctly.
	bold   int
	italic int
	struck int

	lists []listLevel

	// Trailing newline count at the end of out, for blank line control.
	tail int
}

type blockPrefix struct {
	text  string
	width int
}

type listLevel struct {
	ordered bool
	number  int
	tight   bool
}

func (w *markdownWriter) style() lipgloss.Style {
	return w.styles.NewStyle()
}

// contentWidth is the wrap width after nesting prefixes, clamped so
// deeply nested content still wraps instead of degenerating.
func (w *markdownWriter) contentWidth() int {
	width := w.width - w.prefixWidth
	if width < 10 {
		width = 10
	}
	return width
}

func (w *markdownWriter) pushPrefix(text string, width int) {
	w.prefixes = append(w.prefixes, blockPrefix{text: text, width: width})
	w.prefix += text
	w.prefixWidth += width
}

func (w *markdownWriter) popPrefix() {
	if len(w.prefixes) == 0 {
		return
	}
	top := w.prefixes[len(w.prefixes)-1]
	w.prefixes = w.prefixes[:len(w.prefixes)-1]
	w.prefix = w.prefix[:len(w.prefix)-len(top.text)]
	w.prefixWidth -= top.width
}

func (w *markdownWriter) inTightList() bool {
	return len(w.lists) > 0 && w.lists[len(w.lists)-1].tight
}

func (w *markdownWriter) write(s string) {
	if s == "" {
		return
	}
	w.out.WriteString(s)

	trailing := 0
	allNewlines := true
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			trailing++
		} else {
			allNewlines = false
			break
		}
	}
	if allNewlines {
		w.tail += trailing
	} else {
		w.tail = trailing
	}
}

func (w *markdownWriter) endLine() {
	if w.tail < 1 {
		w.write("\n")
	}
}

func (w *markdownWriter) blankLine() {
	for w.tail < 2 {
		w.write("\n")
	}
}

// linePrefix returns the prefix for the next emitted line: the pending
// list bullet if one is set, otherwise the nesting prefix.
func (w *markdownWriter) linePrefix() string {
	if w.bullet != "" {
		bullet := w.bullet
		w.bullet = ""
		return bullet
	}
	return w.prefix
}

// prefixed prepends line prefixes to every line of content. The first
// line may consume a pending bullet.
func (w *markdownWriter) prefixed(content string) string {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(w.linePrefix())
		} else {
			b.WriteString(w.prefix)
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// flushInline word-wraps the accumulated inline buffer and resets it.
func (w *markdownWriter) flushInline() string {
	content := w.inline.String()
	w.inline.Reset()
	if content == "" {
		return ""
	}
	return w.prefixed(ansi.Wrap(content, w.contentWidth(), " ,.;-+|"))
}

func (w *markdownWriter) styledText(content string) string {
	style := w.style().Foreground(w.theme.NormalText)
	if w.bold > 0 {
		style = style.Bold(true)
	}
	if w.italic > 0 {
		style = style.Italic(true)
	}
	if w.struck > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

// inlineContent renders a node's children into a string, saving and
// restoring the inline buffer and style counters around the walk.
func (w *markdownWriter) inlineContent(node ast.Node) string {
	savedInline := w.inline.String()
	savedBold, savedItalic, savedStruck := w.bold, w.italic, w.struck

	w.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, w.walk)
	}
	result := w.inline.String()

	w.inline.Reset()
	w.inline.WriteString(savedInline)
	w.bold, w.italic, w.struck = savedBold, savedItalic, savedStruck
	return result
}

// highlight syntax-highlights code with chroma, falling back to faint
// plain text when the language is unknown. Code is verbatim: the
// fallback styles line by line, since a single multi-line render
// would pad every line to the width of the widest one.
func (w *markdownWriter) highlight(code, language string) string {
	if language != "" {
		var b strings.Builder
		if err := quick.Highlight(&b, code, language, "terminal256", "monokai"); err == nil {
			return b.String()
		}
	}
	faint := w.style().Foreground(w.theme.FaintText)
	var styled []string
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		styled = append(styled, faint.Render(line))
	}
	return strings.Join(styled, "\n")
}

func (w *markdownWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {

	case ast.KindDocument:

	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			w.inline.Reset()
		} else if flushed := w.flushInline(); flushed != "" {
			w.write(flushed)
			w.endLine()
			if !w.inTightList() {
				w.blankLine()
			}
		}

	case ast.KindHeading:
		if entering {
			w.inline.Reset()
		} else {
			w.leaveHeading(node.(*ast.Heading))
		}

	case ast.KindFencedCodeBlock:
		if entering {
			block := node.(*ast.FencedCodeBlock)
			w.writeCodeLines(w.highlight(nodeLines(block, w.source), string(block.Language(w.source))))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			w.writeCodeLines(w.highlight(nodeLines(node, w.source), ""))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			w.pushPrefix("│ ", 2)
		} else {
			w.popPrefix()
			w.blankLine()
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			number := 0
			if list.IsOrdered() {
				number = list.Start
			}
			w.lists = append(w.lists, listLevel{
				ordered: list.IsOrdered(),
				number:  number,
				tight:   list.IsTight,
			})
		} else {
			if len(w.lists) > 0 {
				w.lists = w.lists[:len(w.lists)-1]
			}
			if !w.inTightList() {
				w.blankLine()
			}
		}

	case ast.KindListItem:
		if entering {
			w.enterListItem()
		} else {
			w.popPrefix()
			if w.inTightList() {
				w.endLine()
			} else {
				w.blankLine()
			}
		}

	case ast.KindThematicBreak:
		if entering {
			rule := w.style().Foreground(w.theme.BorderColor).
				Render(strings.Repeat("─", w.contentWidth()))
			w.blankLine()
			w.write(w.prefixed(rule))
			w.endLine()
			w.blankLine()
		}

	case ast.KindHTMLBlock:
		if entering {
			stripped := strings.TrimSpace(stripTags(nodeLines(node, w.source)))
			if stripped != "" {
				faint := w.style().Foreground(w.theme.FaintText)
				w.write(w.prefixed(faint.Render(stripped)))
				w.endLine()
				w.blankLine()
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			w.inline.WriteString(w.styledText(string(textNode.Segment.Value(w.source))))
			if textNode.SoftLineBreak() {
				// Soft breaks become spaces so hard-wrapped source
				// reflows at the terminal's width.
				w.inline.WriteString(" ")
			}
			if textNode.HardLineBreak() {
				w.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			w.inline.WriteString(w.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		w.handleEmphasis(node.(*ast.Emphasis), entering)

	case ast.KindCodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				switch c := child.(type) {
				case *ast.Text:
					code.Write(c.Segment.Value(w.source))
				case *ast.String:
					code.Write(c.Value)
				}
			}
			w.inline.WriteString(w.style().Foreground(w.theme.FaintText).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if entering {
			link := node.(*ast.Link)
			w.inline.WriteString(w.inlineContent(link))
			if url := string(link.Destination); url != "" {
				faint := w.style().Foreground(w.theme.FaintText)
				w.inline.WriteString(" " + faint.Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(w.source))
			w.inline.WriteString(w.style().Foreground(w.theme.FaintText).Render(url))
		}

	case ast.KindImage:
		if entering {
			image := node.(*ast.Image)
			faint := w.style().Foreground(w.theme.FaintText)
			w.inline.WriteString(faint.Render("[" + w.inlineContent(image) + "]"))
			if url := string(image.Destination); url != "" {
				w.inline.WriteString(" " + faint.Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindRawHTML:
		if entering {
			raw := node.(*ast.RawHTML)
			var html strings.Builder
			for i := 0; i < raw.Segments.Len(); i++ {
				segment := raw.Segments.At(i)
				html.Write(segment.Value(w.source))
			}
			if stripped := stripTags(html.String()); stripped != "" {
				w.inline.WriteString(w.style().Foreground(w.theme.FaintText).Render(stripped))
			}
		}

	case extast.KindStrikethrough:
		if entering {
			w.struck++
		} else {
			w.struck--
		}

	case extast.KindTable:
		if entering {
			w.renderTable(node.(*extast.Table))
			return ast.WalkSkipChildren, nil
		}

	case extast.KindTaskCheckBox:
		if entering {
			if node.(*extast.TaskCheckBox).IsChecked {
				check := w.style().Foreground(w.theme.StatusReady)
				w.inline.WriteString(check.Render("[x]") + " ")
			} else {
				w.inline.WriteString(w.styledText("[ ] "))
			}
		}
	}

	return ast.WalkContinue, nil
}

func (w *markdownWriter) leaveHeading(heading *ast.Heading) {
	// The heading style replaces whatever inline styling accumulated.
	content := ansi.Strip(w.inline.String())
	w.inline.Reset()
	if content == "" {
		return
	}

	style := w.style().Bold(true)
	if heading.Level <= 2 {
		style = style.Foreground(w.theme.HeaderForeground)
	} else {
		style = style.Foreground(w.theme.NormalText)
	}

	wrapped := ansi.Wrap(style.Render(content), w.contentWidth(), " ,.;-+|")
	w.blankLine()
	w.write(w.prefixed(wrapped))
	w.endLine()
	w.blankLine()
}

// writeCodeLines emits pre-styled code as its own block, one line at a
// time so each line gets its nesting prefix.
func (w *markdownWriter) writeCodeLines(styled string) {
	w.blankLine()
	for _, line := range strings.Split(strings.TrimRight(styled, "\n"), "\n") {
		w.write(w.linePrefix() + line)
		w.endLine()
	}
	w.blankLine()
}

func (w *markdownWriter) enterListItem() {
	if len(w.lists) == 0 {
		return
	}
	top := &w.lists[len(w.lists)-1]

	var bullet string
	if top.ordered {
		bullet = fmt.Sprintf("%d. ", top.number)
		top.number++
	} else {
		bullet = "- "
	}

	// ASCII bullets, so byte length equals visual width.
	width := len(bullet)

	// The bullet replaces the whole prefix on the item's first line;
	// continuation lines indent under it.
	w.bullet = w.prefix + bullet
	w.pushPrefix(strings.Repeat(" ", width), width)
}

func (w *markdownWriter) handleEmphasis(node *ast.Emphasis, entering bool) {
	counter := &w.italic
	if node.Level >= 2 {
		counter = &w.bold
	}
	if entering {
		*counter++
	} else {
		*counter--
	}
}

func (w *markdownWriter) renderTable(table *extast.Table) {
	alignments := table.Alignments

	var header []string
	var rows [][]string
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.Kind() {
		case extast.KindTableHeader:
			header = w.tableRow(child)
		case extast.KindTableRow:
			rows = append(rows, w.tableRow(child))
		}
	}

	columns := len(header)
	if columns == 0 && len(rows) > 0 {
		columns = len(rows[0])
	}
	if columns == 0 {
		return
	}

	widths := make([]int, columns)
	measure := func(cells []string) {
		for i, cell := range cells {
			if i < columns {
				if cw := lipgloss.Width(cell); cw > widths[i] {
					widths[i] = cw
				}
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	const gap = "  "
	total := len(gap) * (columns - 1)
	for _, cw := range widths {
		total += cw
	}
	if available := w.contentWidth(); total > available {
		// Shrink columns proportionally, keeping at least 3 chars each.
		usable := available - len(gap)*(columns-1)
		if usable < columns*3 {
			usable = columns * 3
		}
		for i := range widths {
			widths[i] = (widths[i] * usable) / total
			if widths[i] < 3 {
				widths[i] = 3
			}
		}
	}

	w.blankLine()
	if len(header) > 0 {
		bold := w.style().Bold(true).Foreground(w.theme.NormalText)
		w.write(w.linePrefix() + w.tableLine(header, widths, alignments, bold))
		w.endLine()

		var dividers []string
		for _, cw := range widths {
			dividers = append(dividers, strings.Repeat("─", cw))
		}
		border := w.style().Foreground(w.theme.BorderColor)
		w.write(w.prefix + border.Render(strings.Join(dividers, gap)))
		w.endLine()
	}
	for _, row := range rows {
		w.write(w.prefix + w.tableLine(row, widths, alignments, w.style()))
		w.endLine()
	}
	w.blankLine()
}

func (w *markdownWriter) tableRow(row ast.Node) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell.Kind() == extast.KindTableCell {
			cells = append(cells, w.inlineContent(cell))
		}
	}
	return cells
}

func (w *markdownWriter) tableLine(
	cells []string,
	widths []int,
	alignments []extast.Alignment,
	base lipgloss.Style,
) string {
	const gap = "  "
	var parts []string
	for i, width := range widths {
		var cell string
		if i < len(cells) {
			cell = cells[i]
		}

		visible := lipgloss.Width(cell)
		if visible > width {
			cell = ansi.Truncate(cell, width, "…")
			visible = lipgloss.Width(cell)
		}

		padding := width - visible
		if padding < 0 {
			padding = 0
		}

		var alignment extast.Alignment
		if i < len(alignments) {
			alignment = alignments[i]
		}
		switch alignment {
		case extast.AlignRight:
			cell = strings.Repeat(" ", padding) + cell
		case extast.AlignCenter:
			left := padding / 2
			cell = strings.Repeat(" ", left) + cell + strings.Repeat(" ", padding-left)
		default:
			cell += strings.Repeat(" ", padding)
		}
		parts = append(parts, cell)
	}
	return base.Render(strings.Join(parts, gap))
}

// nodeLines concatenates a block node's source line segments.
func nodeLines(node ast.Node, source []byte) string {
	var b strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		b.Write(segment.Value(source))
	}
	return b.String()
}

// stripTags drops HTML tags, keeping only text content.
func stripTags(html string) string {
	var b strings.Builder
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}
