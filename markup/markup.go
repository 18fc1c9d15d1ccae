// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: markup/markup.go
// Summary: Bracket markup to SGR translation.

// Package markup translates inline bracket tags such as "[bold red]" into
// SGR escape sequences. Tags never nest and anything that does not resolve
// is left in the text untouched, so untrusted input cannot leave the
// terminal in a broken state.
package markup

import (
	"strconv"
	"strings"

	"github.com/framegrace/texelfmt/ansi"
	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/theme"
)

// Translator resolves markup against a theme.
type Translator struct {
	theme *theme.Theme
}

// New returns a translator for t. A nil theme selects theme.Default().
func New(t *theme.Theme) *Translator {
	if t == nil {
		t = theme.Default()
	}
	return &Translator{theme: t}
}

// Embellish replaces every recognized tag with its escape sequence.
func (tr *Translator) Embellish(s string) string {
	return tr.rewrite(s, true)
}

// Plain removes every recognized tag. When stripEscapes is set, escape
// sequences already present in s are removed as well.
func (tr *Translator) Plain(s string, stripEscapes bool) string {
	out := tr.rewrite(s, false)
	if stripEscapes {
		out = scan.Strip(out)
	}
	return out
}

// Resolve returns the text Embellish substitutes for the tag "[content]".
func (tr *Translator) Resolve(content string) (string, bool) {
	r, ok := tr.tag(content)
	return r.embellished, ok
}

type replacement struct {
	embellished string
	plain       string
}

func (tr *Translator) rewrite(s string, embellish bool) string {
	if strings.IndexByte(s, '[') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		open := strings.IndexAny(s, "[\x1b")
		if open < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:open])
		s = s[open:]

		if s[0] == '\x1b' {
			// Escape sequences pass through whole; their brackets are not
			// markup.
			n := scan.EscapeLen(s)
			if n == 0 {
				n = 1
			}
			b.WriteString(s[:n])
			s = s[n:]
			continue
		}

		end := strings.IndexAny(s[1:], "[]\x1b")
		if end < 0 {
			b.WriteString(s)
			break
		}
		end++
		if s[end] != ']' {
			// The inner bracket may still open a valid tag.
			b.WriteString(s[:end])
			s = s[end:]
			continue
		}

		if r, ok := tr.tag(s[1:end]); ok {
			if embellish {
				b.WriteString(r.embellished)
			} else {
				b.WriteString(r.plain)
			}
		} else {
			b.WriteString(s[:end+1])
		}
		s = s[end+1:]
	}
	return b.String()
}

func (tr *Translator) tag(content string) (replacement, bool) {
	switch {
	case content == "/":
		return replacement{embellished: ansi.Reset}, true
	case strings.HasPrefix(content, "//"):
		lit := "[" + content[1:] + "]"
		return replacement{embellished: lit, plain: lit}, true
	case strings.HasPrefix(content, "/"):
		params, ok := tr.offParams(strings.Fields(content[1:]))
		if !ok {
			return replacement{}, false
		}
		return replacement{embellished: ansi.Sequence(params...)}, true
	}
	params, ok := tr.onParams(strings.Fields(content))
	if !ok {
		return replacement{}, false
	}
	return replacement{embellished: ansi.Sequence(params...)}, true
}

func (tr *Translator) onParams(tokens []string) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	var params []string
	for _, tok := range tokens {
		p, ok := tr.resolve(tok, true)
		if !ok {
			return nil, false
		}
		params = append(params, p...)
	}
	return params, true
}

func (tr *Translator) resolve(tok string, expandAlias bool) ([]string, bool) {
	if a, ok := tr.theme.Attribute(tok); ok {
		return []string{a.On()}, true
	}
	if expandAlias {
		if alias, ok := tr.theme.Alias(tok); ok {
			var params []string
			for _, t := range strings.Fields(alias) {
				p, ok := tr.resolve(t, false)
				if !ok {
					return nil, false
				}
				params = append(params, p...)
			}
			return params, true
		}
	}
	target, c, ok := tr.color(tok)
	if !ok {
		return nil, false
	}
	return []string{c.Params(target)}, true
}

func (tr *Translator) offParams(tokens []string) ([]string, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	var params []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			params = append(params, p)
		}
	}
	for _, tok := range tokens {
		offs, ok := tr.off(tok, true)
		if !ok {
			return nil, false
		}
		for _, p := range offs {
			add(p)
		}
	}
	return params, true
}

func (tr *Translator) off(tok string, expandAlias bool) ([]string, bool) {
	if a, ok := tr.theme.Attribute(tok); ok {
		return []string{a.Off()}, true
	}
	switch strings.ToLower(tok) {
	case "fg":
		return []string{ansi.Foreground.Off()}, true
	case "bg", "on":
		return []string{ansi.Background.Off()}, true
	case "ul":
		return []string{ansi.UnderlineColor.Off()}, true
	}
	if expandAlias {
		if alias, ok := tr.theme.Alias(tok); ok {
			var params []string
			for _, t := range strings.Fields(alias) {
				p, ok := tr.off(t, false)
				if !ok {
					return nil, false
				}
				params = append(params, p...)
			}
			return params, true
		}
	}
	if target, _, ok := tr.color(tok); ok {
		return []string{target.Off()}, true
	}
	return nil, false
}

// color parses [prefix][sep]body where prefix is fg_, bg_, on_ or ul_,
// sep is '#' or ':', and body is a 2-digit palette index, a 3 or 6 digit
// hex color or a color name.
func (tr *Translator) color(tok string) (ansi.Target, ansi.Color, bool) {
	target := ansi.Foreground
	body := tok
	if len(body) > 2 {
		prefix := strings.ToLower(body[:2])
		sep := body[2]
		if sep == '_' || sep == '#' || sep == ':' {
			switch prefix {
			case "fg":
				target = ansi.Foreground
			case "bg", "on":
				target = ansi.Background
			case "ul":
				target = ansi.UnderlineColor
			default:
				prefix = ""
			}
			if prefix != "" {
				body = body[2:]
				if sep == '_' {
					body = body[1:]
				}
			}
		}
	}

	hexOnly := false
	if len(body) > 0 && (body[0] == '#' || body[0] == ':') {
		body = body[1:]
		hexOnly = true
	}
	if body == "" {
		return target, ansi.Color{}, false
	}

	if isHex(body) {
		switch len(body) {
		case 2:
			v, err := strconv.ParseUint(body, 16, 8)
			if err == nil {
				return target, ansi.Palette(uint8(v)), true
			}
		case 3, 6:
			if c, ok := theme.ParseHex(body); ok {
				return target, c, true
			}
		}
	}
	if hexOnly {
		return target, ansi.Color{}, false
	}
	c, ok := tr.theme.Color(body)
	return target, c, ok
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}
