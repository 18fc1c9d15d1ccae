// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package highlight

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"

	"github.com/framegrace/texelfmt/scan"
)

const goSource = `package main

import "fmt"

func main() {
	fmt.Println("hello")
}
`

func TestLanguageFromName(t *testing.T) {
	if got := Language("x = 1", "", "python"); got != "Python" {
		t.Errorf("Language(lang=python) = %q, want Python", got)
	}
}

func TestLanguageFromFilename(t *testing.T) {
	if got := Language("", "main.go", ""); got != "Go" {
		t.Errorf("Language(main.go) = %q, want Go", got)
	}
}

func TestLanguageUnknownNameFallsThrough(t *testing.T) {
	if got := Language(goSource, "main.go", "no-such-language"); got != "Go" {
		t.Errorf("Language = %q, want Go", got)
	}
}

func TestHighlightKeepsText(t *testing.T) {
	out := Highlight(goSource, "main.go", "", "")
	if out == goSource {
		t.Fatal("expected styling to be applied")
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("no escape sequences in %q", out)
	}
	if got := scan.Strip(out); got != goSource {
		t.Errorf("stripped output differs:\n%q\nwant\n%q", got, goSource)
	}
}

func TestHighlightLinesSelfContained(t *testing.T) {
	src := "/* one\ntwo */\nint x;"
	out := Highlight(src, "x.c", "", "monokai")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), out)
	}
	for i, l := range lines {
		if strings.Count(l, "\x1b[0m") != strings.Count(l, "\x1b[")-strings.Count(l, "\x1b[0m") {
			t.Errorf("line %d has unbalanced styling: %q", i, l)
		}
	}
	if got := scan.Strip(out); got != src {
		t.Errorf("stripped = %q, want %q", got, src)
	}
}

func TestHighlightTrailingNewline(t *testing.T) {
	src := "x := 1"
	out := Highlight(src, "", "go", "")
	if strings.HasSuffix(scan.Strip(out), "\n") {
		t.Errorf("newline added: %q", out)
	}
}

func TestHighlightEmpty(t *testing.T) {
	if got := Highlight("", "a.go", "", ""); got != "" {
		t.Errorf("Highlight(\"\") = %q", got)
	}
}

func TestSequence(t *testing.T) {
	base := chroma.MustParseColour("#ffffff")
	tests := []struct {
		name  string
		entry chroma.StyleEntry
		want  string
	}{
		{"empty", chroma.StyleEntry{}, ""},
		{"base colour dropped", chroma.StyleEntry{Colour: base}, ""},
		{"bold", chroma.StyleEntry{Bold: chroma.Yes}, "\x1b[1m"},
		{"colour", chroma.StyleEntry{Colour: chroma.MustParseColour("#ff8000")}, "\x1b[38;2;255;128;0m"},
		{"all", chroma.StyleEntry{
			Bold: chroma.Yes, Italic: chroma.Yes, Underline: chroma.Yes,
			Colour: chroma.MustParseColour("#010203"),
		}, "\x1b[1;3;4;38;2;1;2;3m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sequence(tt.entry, base); got != tt.want {
				t.Errorf("Sequence = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleFallback(t *testing.T) {
	if Style("") == nil || Style("does-not-exist") == nil {
		t.Fatal("expected a fallback style")
	}
	if Style("").Name != DefaultStyle {
		t.Errorf("default style = %q", Style("").Name)
	}
}
