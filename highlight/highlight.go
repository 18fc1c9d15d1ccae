// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package highlight turns source code into SGR-styled text that the wrapper
// and table renderer can lay out like any other styled input.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/texelfmt/ansi"
)

const DefaultStyle = "catppuccin-mocha"

// Style resolves a style name, falling back to the default.
func Style(name string) *chroma.Style {
	if name == "" {
		name = DefaultStyle
	}
	return styles.Get(name)
}

// Styles lists the registered chroma style names.
func Styles() []string { return styles.Names() }

// Lexer picks a lexer for source. An explicit language name wins; otherwise
// the filename and content are classified with go-enry, and chroma's own
// content analysis is the last resort before the plain-text fallback.
func Lexer(source, filename, lang string) chroma.Lexer {
	if lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if filename != "" {
		if l := lexers.Match(filename); l != nil {
			return l
		}
	}
	if detected := enry.GetLanguage(filename, []byte(source)); detected != "" {
		if l := lexers.Get(detected); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}

// Language reports the name of the lexer Highlight would use.
func Language(source, filename, lang string) string {
	return Lexer(source, filename, lang).Config().Name
}

// Highlight styles source with the named chroma style. Every line is
// self-contained: a token that spans a newline is closed before it and
// reopened after it. When tokenising fails, source is returned unchanged.
func Highlight(source, filename, lang, style string) string {
	if source == "" {
		return ""
	}
	lexer := chroma.Coalesce(Lexer(source, filename, lang))
	tokens, err := chroma.Tokenise(lexer, nil, source)
	if err != nil {
		return source
	}
	st := Style(style)
	base := st.Get(chroma.Text).Colour

	var sb strings.Builder
	sb.Grow(len(source) * 2)
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		writeToken(&sb, tok.Value, Sequence(st.Get(tok.Type), base))
	}
	out := sb.String()
	// Some lexers ensure a trailing newline; keep the caller's ending.
	if !strings.HasSuffix(source, "\n") {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// Sequence converts a style entry into an SGR sequence. The entry's colour
// is dropped when it matches base so default text keeps the terminal's
// foreground.
func Sequence(entry chroma.StyleEntry, base chroma.Colour) string {
	var params []string
	if entry.Bold == chroma.Yes {
		params = append(params, ansi.AttrBold.On())
	}
	if entry.Italic == chroma.Yes {
		params = append(params, ansi.AttrItalic.On())
	}
	if entry.Underline == chroma.Yes {
		params = append(params, ansi.AttrUnderline.On())
	}
	if entry.Colour.IsSet() && entry.Colour != base {
		c := ansi.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
		params = append(params, c.Params(ansi.Foreground))
	}
	return ansi.Sequence(params...)
}

func writeToken(sb *strings.Builder, value, seq string) {
	if seq == "" {
		sb.WriteString(value)
		return
	}
	for i, part := range strings.Split(value, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if part == "" {
			continue
		}
		sb.WriteString(seq)
		sb.WriteString(part)
		sb.WriteString(ansi.Reset)
	}
}
