// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// plain renders markdown and returns ANSI-stripped visible text.
func plain(input string, width int) string {
	return ansi.Strip(RenderMarkdown(input, DefaultTheme, width))
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if result := RenderMarkdown("", DefaultTheme, 80); result != "" {
		t.Errorf("expected empty output for empty input, got %q", result)
	}
}

func TestRenderMarkdownParagraphReflow(t *testing.T) {
	// Source hard-wrapped at ~40 columns; at width 120 the soft breaks
	// should become spaces and the paragraph fit on one line.
	input := "Este manual cobre o fluxo de\natendimento do quiosque com\ncomandas e guarda-sois."
	result := plain(input, 120)

	if strings.Contains(result, "\n") {
		t.Errorf("expected single line at width=120, got:\n%s", result)
	}
	if !strings.Contains(result, "de atendimento do") {
		t.Errorf("expected soft break converted to space, got:\n%s", result)
	}
}

func TestRenderMarkdownWrapWidth(t *testing.T) {
	input := "This paragraph should wrap cleanly at the requested column width."
	result := plain(input, 30)

	for _, line := range strings.Split(result, "\n") {
		if len(line) > 30 {
			t.Errorf("line exceeds width 30: %q (len=%d)", line, len(line))
		}
	}
}

func TestRenderMarkdownHeadingStyled(t *testing.T) {
	input := "# Comandas\n\nTexto."
	result := RenderMarkdown(input, DefaultTheme, 80)

	if !strings.Contains(ansi.Strip(result), "Comandas") {
		t.Fatal("missing heading text")
	}
	if result == ansi.Strip(result) {
		t.Error("expected ANSI styling on heading output")
	}
}

func TestRenderMarkdownEmphasis(t *testing.T) {
	input := "Use *sempre* o botão **Enviar para cozinha**."
	result := plain(input, 80)

	if !strings.Contains(result, "sempre") || !strings.Contains(result, "Enviar para cozinha") {
		t.Errorf("missing emphasised text, got:\n%s", result)
	}
	if raw := RenderMarkdown(input, DefaultTheme, 80); raw == result {
		t.Error("expected ANSI styling on emphasis")
	}
}

func TestRenderMarkdownFencedCodeBlock(t *testing.T) {
	input := "Exemplo:\n\n```\nseashade ticket create --slot G12\n```\n\nDepois."
	result := plain(input, 80)

	if !strings.Contains(result, "seashade ticket create --slot G12") {
		t.Errorf("missing code block content, got:\n%s", result)
	}
	if !strings.Contains(result, "Exemplo:") || !strings.Contains(result, "Depois.") {
		t.Error("missing surrounding text")
	}
}

func TestRenderMarkdownCodeBlockNotReflowed(t *testing.T) {
	input := "```\num\ndois\ntres\n```"
	result := plain(input, 80)

	if !strings.Contains(result, "um\ndois\ntres") {
		t.Errorf("expected code lines preserved, got:\n%s", result)
	}
}

func TestRenderMarkdownFencedCodeBlockHighlighted(t *testing.T) {
	input := "```go\npackage main\n```"
	raw := RenderMarkdown(input, DefaultTheme, 80)

	if !strings.Contains(raw, "\x1b[") {
		t.Error("expected ANSI escapes from syntax highlighting")
	}
}

func TestRenderMarkdownBlockquote(t *testing.T) {
	input := "> Comandas canceladas não voltam ao painel."
	result := plain(input, 80)

	if !strings.Contains(result, "│") {
		t.Errorf("expected blockquote prefix, got:\n%s", result)
	}
	if !strings.Contains(result, "Comandas canceladas") {
		t.Error("missing blockquote content")
	}
}

func TestRenderMarkdownLists(t *testing.T) {
	input := "- Abrir comanda\n- Lançar itens\n\n1. Primeiro\n2. Segundo"
	result := plain(input, 80)

	for _, want := range []string{"- Abrir comanda", "- Lançar itens", "1. Primeiro", "2. Segundo"} {
		if !strings.Contains(result, want) {
			t.Errorf("missing list item %q, got:\n%s", want, result)
		}
	}
}

func TestRenderMarkdownNestedListIndent(t *testing.T) {
	input := "- Fora\n  - Dentro\n- Fora dois"
	result := plain(input, 80)

	var outer, inner int
	for _, line := range strings.Split(result, "\n") {
		indent := len(line) - len(strings.TrimLeft(line, " "))
		if strings.Contains(line, "Dentro") {
			inner = indent
		}
		if strings.Contains(line, "Fora") && !strings.Contains(line, "dois") {
			outer = indent
		}
	}
	if inner <= outer {
		t.Errorf("expected nested item more indented: outer=%d inner=%d", outer, inner)
	}
}

func TestRenderMarkdownListItemReflow(t *testing.T) {
	input := "- Este item de lista foi escrito\n  em largura estreita no fonte."
	result := plain(input, 80)

	if !strings.Contains(result, "foi escrito em largura") {
		t.Errorf("expected list item reflowed, got:\n%s", result)
	}
}

func TestRenderMarkdownLink(t *testing.T) {
	input := "Veja [o painel](https://example.com/painel) para detalhes."
	result := plain(input, 80)

	if !strings.Contains(result, "o painel") {
		t.Error("missing link text")
	}
	if !strings.Contains(result, "(https://example.com/painel)") {
		t.Errorf("missing link URL, got:\n%s", result)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	input := "| Comando | Efeito |\n|---------|--------|\n| ticket board | painel |\n| menu list | cardápio |"
	result := plain(input, 80)

	for _, want := range []string{"Comando", "ticket board", "cardápio", "───"} {
		if !strings.Contains(result, want) {
			t.Errorf("missing %q in table output:\n%s", want, result)
		}
	}
}

func TestRenderMarkdownThematicBreak(t *testing.T) {
	input := "Antes.\n\n---\n\nDepois."
	result := plain(input, 40)

	if !strings.Contains(result, "───") {
		t.Errorf("expected horizontal rule, got:\n%s", result)
	}
}

func TestRenderMarkdownStrikethrough(t *testing.T) {
	input := "Item ~~entregue~~ na comanda."
	result := plain(input, 80)

	if !strings.Contains(result, "entregue") {
		t.Error("missing strikethrough text")
	}
	if raw := RenderMarkdown(input, DefaultTheme, 80); raw == result {
		t.Error("expected ANSI styling for strikethrough")
	}
}

func TestRenderMarkdownParagraphSpacing(t *testing.T) {
	input := "Primeiro parágrafo.\n\nSegundo parágrafo."
	result := plain(input, 80)

	if !strings.Contains(result, "\n\n") {
		t.Error("expected blank line between paragraphs")
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>hello</p>", "hello"},
		{"no tags", "no tags"},
		{"<b>bold</b> and <i>italic</i>", "bold and italic"},
		{"<br/>", ""},
		{"", ""},
	}
	for _, test := range tests {
		if got := stripTags(test.input); got != test.want {
			t.Errorf("stripTags(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
