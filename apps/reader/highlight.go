// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/reader/highlight.go
// Summary: Tokenises file content into per-line styled spans.

package reader

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	enry "github.com/go-enry/go-enry/v2"

	"github.com/salty-max/briks/style"
)

const themeName = "monokai"

// highlight tokenises data and splits the token stream into lines of
// styled spans. Tabs are expanded up front; the terminal renderer has no
// tab stops.
func highlight(name string, data []byte) [][]span {
	source := strings.ReplaceAll(string(data), "\t", "    ")

	lexer := chroma.Coalesce(pickLexer(name, data))
	theme := styles.Get(themeName)
	if theme == nil {
		theme = styles.Fallback
	}

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainLines(source)
	}

	lines := [][]span{nil}
	for _, tok := range it.Tokens() {
		st := spanStyle(theme.Get(tok.Type))
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			last := len(lines) - 1
			lines[last] = append(lines[last], span{text: part, style: st})
		}
	}
	return trimFinalBlank(lines)
}

// pickLexer resolves a lexer by content-aware language detection first,
// falling back to filename matching.
func pickLexer(name string, data []byte) chroma.Lexer {
	if lang := enry.GetLanguage(name, data); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Match(name); l != nil {
		return l
	}
	return lexers.Fallback
}

// spanStyle maps a theme entry onto a terminal style. The theme's page
// background is deliberately not applied; the terminal keeps its own.
func spanStyle(entry chroma.StyleEntry) style.Style {
	var st style.Style
	if entry.Colour.IsSet() {
		st.FG = style.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Bold == chroma.Yes {
		st = st.With(style.Bold)
	}
	if entry.Italic == chroma.Yes {
		st = st.With(style.Italic)
	}
	if entry.Underline == chroma.Yes {
		st = st.With(style.Underline)
	}
	return st
}

func plainLines(source string) [][]span {
	raw := strings.Split(source, "\n")
	lines := make([][]span, len(raw))
	for i, l := range raw {
		if l != "" {
			lines[i] = []span{{text: l}}
		}
	}
	return trimFinalBlank(lines)
}

// trimFinalBlank drops the empty line a trailing newline produces.
func trimFinalBlank(lines [][]span) [][]span {
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		return lines[:n-1]
	}
	return lines
}
