// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package wrap

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/width"
)

func wrapStrings(w int, honor bool, texts ...string) []string {
	return New(width.New(1), Options{Width: w, HonorNewlines: honor}).Strings(texts...)
}

func TestWrapScenarios(t *testing.T) {
	tests := []struct {
		name  string
		width int
		honor bool
		in    []string
		want  []string
	}{
		{"words", 5, true, []string{"Hello World"}, []string{"Hello", "World"}},
		{"wide glyphs", 4, true, []string{"一二三"}, []string{"一二", "三"}},
		{"fits", 20, true, []string{"Hello World"}, []string{"Hello World"}},
		{"fill", 11, true, []string{"aa bb cc dd ee"}, []string{"aa bb cc dd", "ee"}},
		{"long word", 3, true, []string{"abcdefg"}, []string{"abc", "def", "g"}},
		{"long word after text", 4, true, []string{"ab cdefgh"}, []string{"ab", "cdef", "gh"}},
		{"empty", 10, true, []string{""}, []string{""}},
		{"blank lines", 10, true, []string{"a\n\nb"}, []string{"a", "", "b"}},
		{"crlf", 10, true, []string{"a\r\nb"}, []string{"a", "b"}},
		{"newline as space", 10, false, []string{"a\nb"}, []string{"a b"}},
		{"indent kept", 10, true, []string{"  a"}, []string{"  a"}},
		{"space dropped at break", 3, true, []string{"ab    cd"}, []string{"ab", "cd"}},
		{"trailing space fits", 5, true, []string{"ab "}, []string{"ab "}},
		{"two blocks", 10, true, []string{"a", "b"}, []string{"a", "b"}},
		{"cluster wider than line", 1, true, []string{"a一b"}, []string{"a", "b"}},
		{"only wide clusters", 1, true, []string{"一二"}, []string{""}},
		{"nbsp binds", 4, true, []string{"a\u00a0b c"}, []string{"a\u00a0b", "c"}},
		{"combining", 3, true, []string{"cafe\u0301 x"}, []string{"caf", "e\u0301 x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapStrings(tt.width, tt.honor, tt.in...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapZeroWidth(t *testing.T) {
	if got := wrapStrings(0, true, "abc"); len(got) != 0 {
		t.Fatalf("expected no lines for width 0, got %q", got)
	}
	if got := wrapStrings(-3, true, "abc"); len(got) != 0 {
		t.Fatalf("expected no lines for negative width, got %q", got)
	}
}

func TestWrapCarriesStyle(t *testing.T) {
	got := wrapStrings(5, true, "\x1b[1mHello World\x1b[0m")
	want := []string{"\x1b[1mHello\x1b[0m", "\x1b[1mWorld\x1b[0m"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapStyleAcrossNewlines(t *testing.T) {
	got := wrapStrings(10, true, "\x1b[31mred\nstill", "fresh")
	want := []string{"\x1b[31mred\x1b[0m", "\x1b[31mstill\x1b[0m", "fresh"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapEscapeBetweenWords(t *testing.T) {
	got := wrapStrings(3, true, "ab \x1b[32mcd")
	want := []string{"ab\x1b[32m\x1b[0m", "\x1b[32mcd\x1b[0m"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLinesIsSinglePass(t *testing.T) {
	lines := New(width.New(1), Options{Width: 3, HonorNewlines: true}).Lines("abc def")
	var n int
	for lines.Next() {
		n++
		if lines.Line().Width != 3 {
			t.Errorf("line %d width %d", n, lines.Line().Width)
		}
	}
	if n != 2 {
		t.Fatalf("expected 2 lines, got %d", n)
	}
	if lines.Next() {
		t.Fatalf("iterator restarted")
	}
	if rest := lines.Collect(); len(rest) != 0 {
		t.Fatalf("Collect after exhaustion returned %d lines", len(rest))
	}
}

func TestWrapWidthProperty(t *testing.T) {
	pieces := []string{
		"word", " ", "  ", "世界", "\x1b[1m", "\x1b[0m", "\x1b[38;5;3m",
		"e\u0301", "\U0001F468\u200d\U0001F469", "\t", "\n", "longerwordhere", "\uff76\uff9e",
	}
	c := width.New(1)
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 400; i++ {
		var b strings.Builder
		for n := r.Intn(15); n > 0; n-- {
			b.WriteString(pieces[r.Intn(len(pieces))])
		}
		in := b.String()
		w := 1 + r.Intn(12)
		for _, line := range New(c, Options{Width: w, HonorNewlines: i%2 == 0}).Wrap(in) {
			if line.Width > w {
				t.Fatalf("wrap(%q, %d): line %q has width %d", in, w, line.Text, line.Width)
			}
			if got := scan.Width(line.Text, c); got != line.Width {
				t.Fatalf("wrap(%q, %d): line %q reports width %d, measures %d", in, w, line.Text, line.Width, got)
			}
			if strings.Contains(line.Text, "\n") {
				t.Fatalf("wrap(%q, %d): line %q contains a newline", in, w, line.Text)
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	c := width.New(1)
	tests := []struct {
		in    string
		w     int
		want  string
		width int
	}{
		{"hello", 3, "hel", 3},
		{"一二三", 5, "一二", 4},
		{"\x1b[1mbold\x1b[0m", 2, "\x1b[1mbo\x1b[0m", 2},
		{"ab一c", 3, "ab", 2},
		{"short", 10, "short", 5},
	}
	for _, tt := range tests {
		got := Truncate(tt.in, tt.w, c)
		if got.Text != tt.want || got.Width != tt.width {
			t.Errorf("Truncate(%q, %d) = %q/%d, want %q/%d", tt.in, tt.w, got.Text, got.Width, tt.want, tt.width)
		}
	}
}
