// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package box

import (
	"errors"
	"reflect"
	"testing"

	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/theme"
	"github.com/framegrace/texelfmt/width"
	"github.com/framegrace/texelfmt/wrap"
)

func lines(texts ...string) []wrap.Line {
	c := width.New(1)
	out := make([]wrap.Line, len(texts))
	for i, t := range texts {
		out[i] = wrap.Measure(t, c)
	}
	return out
}

func checkWidths(t *testing.T, b Block) {
	t.Helper()
	c := width.New(1)
	for i, l := range b.Lines {
		if got := scan.Width(l.Text, c); got != l.Width {
			t.Errorf("line %d %q: reported width %d, measured %d", i, l.Text, l.Width, got)
		}
	}
}

func TestFromLines(t *testing.T) {
	b := FromLines(lines("ab", "一二三", ""))
	if b.Width != 6 || b.Height() != 3 {
		t.Fatalf("FromLines width=%d height=%d", b.Width, b.Height())
	}
}

func TestNormalize(t *testing.T) {
	b := FromLines(lines("ab", "一"))
	tests := []struct {
		align Align
		want  []string
	}{
		{Left, []string{"ab   ", "一   "}},
		{Right, []string{"   ab", "   一"}},
		{Center, []string{" ab  ", " 一  "}},
	}
	for _, tt := range tests {
		got := b.Normalize(5, "", tt.align)
		if !reflect.DeepEqual(got.Strings(), tt.want) {
			t.Errorf("Normalize(%v) = %q, want %q", tt.align, got.Strings(), tt.want)
		}
		if got.Width != 5 {
			t.Errorf("Normalize(%v) width %d", tt.align, got.Width)
		}
		checkWidths(t, got)
	}
}

func TestNormalizeStyleSurvivesReset(t *testing.T) {
	b := FromLines(lines("\x1b[1mx\x1b[0m"))
	got := b.Normalize(3, "\x1b[44m", Left).Strings()
	want := []string{"\x1b[44m\x1b[1mx\x1b[0m\x1b[44m  \x1b[0m"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPadding(t *testing.T) {
	b := FromLines(lines("ab")).Normalize(2, "", Left).HPad(1, 2).VPad(1, 1)
	want := []string{"     ", " ab  ", "     "}
	if !reflect.DeepEqual(b.Strings(), want) {
		t.Fatalf("got %q, want %q", b.Strings(), want)
	}
	if b.Width != 5 {
		t.Fatalf("width %d", b.Width)
	}
	checkWidths(t, b)
}

func TestStyledFill(t *testing.T) {
	b := FromLines(lines("a")).Normalize(1, "\x1b[41m", Left).HPad(1, 0)
	want := "\x1b[41m \x1b[0m\x1b[41ma\x1b[0m"
	if got := b.Strings()[0]; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestInHeight(t *testing.T) {
	base := FromLines(lines("x")).Normalize(1, "", Left)
	tests := []struct {
		valign VAlign
		want   []string
	}{
		{Top, []string{"x", " ", " ", " "}},
		{Bottom, []string{" ", " ", " ", "x"}},
		{Middle, []string{" ", "x", " ", " "}},
	}
	for _, tt := range tests {
		b := base
		b.VAlign = tt.valign
		if got := b.InHeight(4).Strings(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("InHeight(%v) = %q, want %q", tt.valign, got, tt.want)
		}
	}
	if got := base.InHeight(0).Height(); got != 1 {
		t.Errorf("InHeight must not shrink, got %d", got)
	}
}

func TestJoin(t *testing.T) {
	a := FromLines(lines("a", "b", "c")).Normalize(1, "", Left)
	b := FromLines(lines("xy")).Normalize(2, "", Left)
	b.VAlign = Bottom
	j := Join(a, b)
	want := []string{"a  ", "b  ", "cxy"}
	if !reflect.DeepEqual(j.Strings(), want) {
		t.Fatalf("Join = %q, want %q", j.Strings(), want)
	}
	if j.Width != 3 || j.Height() != 3 {
		t.Fatalf("Join size %dx%d", j.Width, j.Height())
	}
	checkWidths(t, j)

	raw := Join(FromLines(lines("long", "x")), FromLines(lines("|", "|")))
	if got := raw.Strings(); !reflect.DeepEqual(got, []string{"long|", "x   |"}) {
		t.Errorf("Join fills short lines, got %q", got)
	}
	grown := Join(FromLines(lines("long", "x")), FromLines(lines("|")))
	if got := grown.Strings(); !reflect.DeepEqual(got, []string{"long|", "x    "}) {
		t.Errorf("Join grows short blocks from the top, got %q", got)
	}
	if got := Join(); got.Height() != 0 || got.Width != 0 {
		t.Errorf("empty Join = %+v", got)
	}
}

func TestFramed(t *testing.T) {
	border, err := theme.New(1).Border("single")
	if err != nil {
		t.Fatalf("Border: %v", err)
	}
	b := FromLines(lines("hi", "a")).Framed(border, "")
	want := []string{"┌──┐", "│hi│", "│a │", "└──┘"}
	if !reflect.DeepEqual(b.Strings(), want) {
		t.Fatalf("Framed = %q, want %q", b.Strings(), want)
	}
	if b.Width != 4 {
		t.Fatalf("width %d", b.Width)
	}
	checkWidths(t, b)

	styled := FromLines(lines("x")).Framed(border, "\x1b[2m").Strings()
	if styled[1] != "\x1b[2m│\x1b[0mx\x1b[2m│\x1b[0m" {
		t.Errorf("styled frame row = %q", styled[1])
	}

	if got := FromLines(lines("x")).Framed(theme.Border{}, ""); got.Height() != 1 {
		t.Errorf("zero border must not frame, got %q", got.Strings())
	}
}

func TestParseAlign(t *testing.T) {
	if a, err := ParseAlign("Center"); err != nil || a != Center {
		t.Errorf("ParseAlign(Center) = %v, %v", a, err)
	}
	if v, err := ParseVAlign("bottom"); err != nil || v != Bottom {
		t.Errorf("ParseVAlign(bottom) = %v, %v", v, err)
	}
	if _, err := ParseAlign("justify"); !errors.Is(err, ErrUnknownAlign) {
		t.Errorf("expected ErrUnknownAlign, got %v", err)
	}
}
