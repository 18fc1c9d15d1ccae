// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package scan splits terminal text into tokens: escape sequences, which
// occupy no columns, and grapheme clusters, which are measured as a whole
// and never split.
package scan

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/framegrace/texelfmt/width"
)

// Kind identifies what a Token holds.
type Kind uint8

const (
	Cluster Kind = iota // one user-perceived character
	Escape              // a complete CSI or OSC sequence
)

// Token is one unit of scanned text.
type Token struct {
	Kind  Kind
	Text  string
	Width int // columns; always 0 for escapes
}

const (
	esc = 0x1b
	bel = 0x07
)

// Scanner yields the tokens of a string in order. It makes a single pass
// over its input and cannot be restarted; scan the string again with a new
// Scanner to repeat.
type Scanner struct {
	rest  string
	cls   width.Classifier
	tok   Token
	state int
}

// New returns a Scanner over s that measures clusters with c.
func New(s string, c width.Classifier) *Scanner {
	return &Scanner{rest: s, cls: c, state: -1}
}

// Next advances to the next token. It returns false once the input is
// exhausted.
func (s *Scanner) Next() bool {
	if len(s.rest) == 0 {
		return false
	}
	if s.rest[0] == esc {
		s.state = -1
		if n := EscapeLen(s.rest); n > 0 {
			s.tok = Token{Kind: Escape, Text: s.rest[:n]}
			s.rest = s.rest[n:]
			return true
		}
		// Malformed or unterminated: the ESC byte stands alone as text and
		// scanning resumes right after it.
		s.tok = Token{Kind: Cluster, Text: s.rest[:1], Width: s.cls.Rune(esc)}
		s.rest = s.rest[1:]
		return true
	}
	var cluster string
	cluster, s.rest, _, s.state = uniseg.FirstGraphemeClusterInString(s.rest, s.state)
	s.tok = Token{Kind: Cluster, Text: cluster, Width: s.cls.Cluster(cluster)}
	return true
}

// Token returns the token produced by the last call to Next.
func (s *Scanner) Token() Token { return s.tok }

// EscapeLen returns the byte length of the CSI or OSC sequence at the start
// of s, or 0 if s does not start with a complete one.
func EscapeLen(s string) int {
	if len(s) < 2 || s[0] != esc {
		return 0
	}
	switch s[1] {
	case '[':
		i := 2
		for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
			i++
		}
		for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
			i++
		}
		if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	case ']':
		for i := 2; i < len(s); i++ {
			switch s[i] {
			case bel:
				return i + 1
			case esc:
				if i+1 < len(s) && s[i+1] == '\\' {
					return i + 2
				}
				return 0
			}
		}
	}
	return 0
}

// Tokens scans s to the end and returns all tokens.
func Tokens(s string, c width.Classifier) []Token {
	var out []Token
	sc := New(s, c)
	for sc.Next() {
		out = append(out, sc.Token())
	}
	return out
}

// Width returns the number of columns s occupies on screen. Escape
// sequences count as zero.
func Width(s string, c width.Classifier) int {
	total := 0
	sc := New(s, c)
	for sc.Next() {
		total += sc.Token().Width
	}
	return total
}

// Strip removes every well-formed escape sequence from s.
func Strip(s string) string {
	if strings.IndexByte(s, esc) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		i := strings.IndexByte(s, esc)
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		s = s[i:]
		if n := EscapeLen(s); n > 0 {
			s = s[n:]
			continue
		}
		b.WriteByte(esc)
		s = s[1:]
	}
	return b.String()
}
