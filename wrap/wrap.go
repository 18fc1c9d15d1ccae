// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: wrap/wrap.go
// Summary: Width-bounded, style-preserving line wrapping.

// Package wrap breaks styled text into lines no wider than a given number
// of columns. Breaks happen between words when possible and between
// grapheme clusters otherwise; escape sequences are never split and the
// active SGR state is closed at the end of every line and re-opened at the
// start of the next.
package wrap

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/framegrace/texelfmt/ansi"
	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/width"
)

// Line is one output line. Width is the number of screen columns Text
// occupies and is authoritative; callers must not re-measure.
type Line struct {
	Text  string
	Width int
}

// Options controls wrapping.
type Options struct {
	// Width is the maximum line width in columns. Values below 1 produce
	// no output. A single cluster wider than Width cannot be placed on any
	// line and is dropped, so that no line exceeds Width.
	Width int
	// HonorNewlines splits the input on '\n' before wrapping. Otherwise
	// newlines are treated as ordinary whitespace.
	HonorNewlines bool
}

// Wrapper wraps text with fixed options. It holds no per-call state and may
// be shared.
type Wrapper struct {
	cls  width.Classifier
	opts Options
}

// New returns a wrapper measuring with c.
func New(c width.Classifier, opts Options) *Wrapper {
	return &Wrapper{cls: c, opts: opts}
}

// Lines returns an iterator over the wrapped lines of texts. Each text is
// an independent block: style state carries across its newlines but not
// into the next block.
func (w *Wrapper) Lines(texts ...string) *Lines {
	l := &Lines{w: w}
	if w.opts.Width >= 1 {
		l.texts = texts
	}
	return l
}

// Wrap is a shortcut collecting every line of texts.
func (w *Wrapper) Wrap(texts ...string) []Line {
	return w.Lines(texts...).Collect()
}

// Strings wraps texts and returns only the line text.
func (w *Wrapper) Strings(texts ...string) []string {
	return Strings(w.Wrap(texts...))
}

// Strings extracts the text of each line.
func Strings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// Lines is a single-pass iterator over wrapped output. Lines are produced
// one hard-break segment at a time.
type Lines struct {
	w        *Wrapper
	texts    []string
	segments []string
	ready    []Line
	cur      Line
	state    ansi.State

	line      strings.Builder
	lineWidth int
	content   bool
	broke     bool
	space     []scan.Token
	spaceW    int
	word      []scan.Token
	wordW     int
}

// Next advances to the next line.
func (l *Lines) Next() bool {
	for len(l.ready) == 0 {
		if len(l.segments) == 0 {
			if len(l.texts) == 0 {
				return false
			}
			text := l.texts[0]
			l.texts = l.texts[1:]
			l.state.Clear()
			l.segments = l.split(text)
		}
		seg := l.segments[0]
		l.segments = l.segments[1:]
		l.wrapSegment(seg)
	}
	l.cur = l.ready[0]
	l.ready = l.ready[1:]
	return true
}

// Line returns the line produced by the last call to Next.
func (l *Lines) Line() Line { return l.cur }

// Collect drains the iterator.
func (l *Lines) Collect() []Line {
	var out []Line
	for l.Next() {
		out = append(out, l.Line())
	}
	return out
}

func (l *Lines) split(text string) []string {
	if !l.w.opts.HonorNewlines {
		return []string{text}
	}
	segs := strings.Split(text, "\n")
	for i, s := range segs {
		segs[i] = strings.TrimSuffix(s, "\r")
	}
	return segs
}

func (l *Lines) wrapSegment(seg string) {
	l.startLine(false)
	inWord := false
	sc := scan.New(seg, l.w.cls)
	for sc.Next() {
		tok := sc.Token()
		if tok.Kind == scan.Escape {
			if inWord {
				l.word = append(l.word, tok)
			} else {
				l.space = append(l.space, tok)
			}
			continue
		}
		if sp, ok := whitespace(tok); ok {
			if inWord {
				l.placeWord()
				inWord = false
			}
			l.space = append(l.space, sp)
			l.spaceW += sp.Width
			continue
		}
		inWord = true
		l.word = append(l.word, tok)
		l.wordW += tok.Width
	}
	if inWord {
		l.placeWord()
	}
	l.placeTrailingSpace()
	l.emit()
}

func (l *Lines) placeWord() {
	limit := l.w.opts.Width
	dropSpace := l.broke && !l.content
	spaceW := l.spaceW
	if dropSpace {
		spaceW = 0
	}

	switch {
	case l.lineWidth+spaceW+l.wordW <= limit:
		l.flushSpace(!dropSpace)
		l.appendAll(l.word)
	case l.wordW <= limit:
		l.flushSpace(false)
		if l.content {
			l.breakLine()
		}
		l.appendAll(l.word)
	default:
		l.flushSpace(false)
		if l.content {
			l.breakLine()
		}
		for _, tok := range l.word {
			if tok.Kind == scan.Cluster {
				if tok.Width > limit {
					continue
				}
				if l.lineWidth+tok.Width > limit {
					l.breakLine()
				}
			}
			l.append(tok)
		}
	}
	l.word = l.word[:0]
	l.wordW = 0
}

func (l *Lines) placeTrailingSpace() {
	drop := l.broke && !l.content
	for _, tok := range l.space {
		if tok.Kind == scan.Cluster && (drop || l.lineWidth+tok.Width > l.w.opts.Width) {
			continue
		}
		l.append(tok)
	}
	l.space = l.space[:0]
	l.spaceW = 0
}

// flushSpace appends the pending whitespace. Escapes are always kept so
// that style changes between words are not lost.
func (l *Lines) flushSpace(keep bool) {
	for _, tok := range l.space {
		if tok.Kind == scan.Escape || keep {
			l.append(tok)
		}
	}
	l.space = l.space[:0]
	l.spaceW = 0
}

func (l *Lines) appendAll(toks []scan.Token) {
	for _, tok := range toks {
		l.append(tok)
	}
}

func (l *Lines) append(tok scan.Token) {
	l.line.WriteString(tok.Text)
	if tok.Kind == scan.Escape {
		l.state.Apply(tok.Text)
		return
	}
	l.lineWidth += tok.Width
	l.content = true
}

func (l *Lines) startLine(broke bool) {
	l.line.Reset()
	l.line.WriteString(l.state.String())
	l.lineWidth = 0
	l.content = false
	l.broke = broke
}

func (l *Lines) emit() {
	if l.state.Active() {
		l.line.WriteString(ansi.Reset)
	}
	l.ready = append(l.ready, Line{Text: l.line.String(), Width: l.lineWidth})
}

func (l *Lines) breakLine() {
	l.emit()
	l.startLine(true)
}

// whitespace reports whether tok separates words. Line breaks are turned
// into a single space.
func whitespace(tok scan.Token) (scan.Token, bool) {
	switch tok.Text {
	case " ", "\t":
		return tok, true
	case "\n", "\r\n", "\r", "\v", "\f":
		return scan.Token{Kind: scan.Cluster, Text: " ", Width: 1}, true
	}
	r, size := utf8.DecodeRuneInString(tok.Text)
	if size != len(tok.Text) {
		return tok, false
	}
	switch r {
	case '\u00a0', '\u2007', '\u202f':
		return tok, false
	}
	return tok, unicode.IsSpace(r)
}
