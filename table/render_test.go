// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/framegrace/texelfmt/box"
	"github.com/framegrace/texelfmt/layout"
	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/theme"
	"github.com/framegrace/texelfmt/width"
)

func newRenderer() *Renderer { return NewRenderer(theme.New(1)) }

func render(t *testing.T, tbl *Table, w int) []string {
	t.Helper()
	lines, err := newRenderer().Render(tbl, w)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return lines
}

func TestRenderBordered(t *testing.T) {
	tbl := &Table{Border: "single", BorderAround: true, Padding: layout.Padding{Left: 1, Right: 1}}
	tbl.AddRow("a", "bb")
	tbl.AddRow("ccc", "d")

	got := render(t, tbl, 20)
	want := []string{
		"┌─────┬────┐",
		"│ a   │bb  │",
		"├─────┼────┤",
		"│ ccc │d   │",
		"└─────┴────┘",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderWrapsToBudget(t *testing.T) {
	tbl := &Table{Border: "single", BorderAround: true}
	tbl.AddRow("hello world", "x")

	got := render(t, tbl, 10)
	want := []string{
		"┌──────┬─┐",
		"│hello │x│",
		"│world │ │",
		"└──────┴─┘",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderWithoutBorder(t *testing.T) {
	tbl := &Table{}
	tbl.AddRow("a", "b")
	tbl.AddRow("c", "d")
	if got := render(t, tbl, 10); !reflect.DeepEqual(got, []string{"ab", "cd"}) {
		t.Errorf("no border = %q", got)
	}

	tbl.Border = "none"
	tbl.BorderAround = true
	if got := render(t, tbl, 10); !reflect.DeepEqual(got, []string{" a b ", " c d "}) {
		t.Errorf("blank border = %q", got)
	}
}

func TestRenderHeaderSeparator(t *testing.T) {
	tbl := &Table{Border: "ascii", BorderAround: true, Separators: SeparateHeader}
	tbl.AddRow("h")
	tbl.AddRow("1")
	tbl.AddRow("2")
	want := []string{"+-+", "|h|", "+-+", "|1|", "|2|", "+-+"}
	if got := render(t, tbl, 10); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	tbl.Separators = SeparateNone
	want = []string{"+-+", "|h|", "|1|", "|2|", "+-+"}
	if got := render(t, tbl, 10); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderInnerSeparatorWithoutAround(t *testing.T) {
	tbl := &Table{Border: "single"}
	tbl.AddRow("a", "b")
	tbl.AddRow("c", "d")
	want := []string{"a│b", "─┼─", "c│d"}
	if got := render(t, tbl, 10); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderAlignment(t *testing.T) {
	tbl := &Table{Border: "ascii", BorderAround: true}
	tbl.Rows = []Row{
		{{Lines: []string{"r"}, Align: box.Right, Width: 3}, {Lines: []string{"a\nb\nc"}}},
		{{Lines: []string{"m"}, Align: box.Center, VAlign: box.Middle, Width: 3}, {Lines: []string{"x\ny\nz"}}},
	}
	want := []string{
		"+---+-+",
		"|  r|a|",
		"|   |b|",
		"|   |c|",
		"+---+-+",
		"|   |x|",
		"| m |y|",
		"|   |z|",
		"+---+-+",
	}
	if got := render(t, tbl, 20); !reflect.DeepEqual(got, want) {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestRenderBlankCells(t *testing.T) {
	tbl := &Table{Border: "ascii", BorderAround: true}
	tbl.Rows = []Row{
		{NewCell("a"), NewCell("b")},
		{nil},
	}
	want := []string{"+-+-+", "|a|b|", "+-+-+", "| | |", "+-+-+"}
	if got := render(t, tbl, 10); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderStyles(t *testing.T) {
	tbl := &Table{Border: "ascii", BorderStyle: "\x1b[2m"}
	tbl.Rows = []Row{{{Lines: []string{"a"}, Style: "\x1b[1m"}, NewCell("b")}}
	got := render(t, tbl, 10)
	want := []string{"\x1b[1ma\x1b[0m\x1b[2m|\x1b[0mb"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDropsColumns(t *testing.T) {
	tbl := &Table{Border: "single"}
	tbl.Rows = []Row{{
		{Lines: []string{"aaa"}, Width: 3},
		{Lines: []string{"bbb"}, Width: 3},
		{Lines: []string{"ccc"}, Width: 3},
	}}
	got := render(t, tbl, 3)
	want := []string{"a│b", "a│b", "a│b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDegenerate(t *testing.T) {
	tbl := &Table{Border: "single", BorderAround: true}
	tbl.AddRow("a")
	lines, err := newRenderer().Render(tbl, 2)
	if err != nil || len(lines) != 0 {
		t.Fatalf("Render(width 2) = %q, %v; want no lines", lines, err)
	}
	if lines, err := newRenderer().Render(&Table{}, 10); err != nil || lines != nil {
		t.Fatalf("empty table = %q, %v", lines, err)
	}
}

func TestRenderUnknownBorder(t *testing.T) {
	tbl := &Table{Border: "wavy"}
	tbl.AddRow("a")
	if _, err := newRenderer().Render(tbl, 10); !errors.Is(err, theme.ErrUnknownBorder) {
		t.Fatalf("expected ErrUnknownBorder, got %v", err)
	}
}

func TestRenderCustomBorder(t *testing.T) {
	tbl := &Table{Border: "#", BorderAround: true}
	tbl.AddRow("x")
	want := []string{"###", "#x#", "###"}
	if got := render(t, tbl, 5); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderWidthProperty(t *testing.T) {
	words := []string{"a", "bb", "ccc dd", "一二", "\x1b[1mbold\x1b[0m", "", "long text that wraps"}
	borders := []string{"", "single", "none", "double", "ascii"}
	c := width.New(1)
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		tbl := &Table{
			Border:       borders[r.Intn(len(borders))],
			BorderAround: r.Intn(2) == 0,
			Padding:      layout.Padding{Left: r.Intn(3), Right: r.Intn(3), Top: r.Intn(2)},
		}
		for rows := 1 + r.Intn(4); rows > 0; rows-- {
			row := make(Row, 1+r.Intn(4))
			for ci := range row {
				if r.Intn(6) == 0 {
					continue
				}
				row[ci] = &Cell{Lines: []string{words[r.Intn(len(words))]}, Align: box.Align(r.Intn(3))}
				if r.Intn(5) == 0 {
					row[ci].Width = 1 + r.Intn(8)
				}
			}
			tbl.Rows = append(tbl.Rows, row)
		}
		w := r.Intn(40)
		lines, err := newRenderer().Render(tbl, w)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		first := -1
		for _, line := range lines {
			lw := scan.Width(line, c)
			if lw > w {
				t.Fatalf("line %q is %d wide, budget %d", line, lw, w)
			}
			if first < 0 {
				first = lw
			} else if lw != first {
				t.Fatalf("ragged table: %q is %d wide, first line %d", line, lw, first)
			}
		}
	}
}

func TestRenderWideAmbiguousBorder(t *testing.T) {
	th := theme.New(2)
	tbl := &Table{Border: "default", BorderAround: true}
	tbl.AddRow("alpha", "beta")
	tbl.AddRow("gamma", "delta")

	got, err := NewRenderer(th).Render(tbl, 20)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := []string{
		"+-----+-----+",
		"|alpha|beta |",
		"+-----+-----+",
		"|gamma|delta|",
		"+-----+-----+",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	for _, l := range got {
		if w := scan.Width(l, th.Classifier()); w != 13 {
			t.Errorf("line %q measures %d, want 13", l, w)
		}
	}
}

func TestRenderAmbiguousWidthProperty(t *testing.T) {
	th := theme.New(2)
	r := NewRenderer(th)
	for _, border := range []string{"default", "rounded", "heavy", "double", "ascii", "none", "#"} {
		for w := 1; w <= 30; w++ {
			tbl := &Table{Border: border, BorderAround: true, Padding: layout.Padding{Left: 1, Right: 1}}
			tbl.AddRow("one two", "三四", "x")
			tbl.AddRow("", "five six seven", "y")
			lines, err := r.Render(tbl, w)
			if err != nil {
				t.Fatalf("Render(%s, %d): %v", border, w, err)
			}
			for _, l := range lines {
				if got := scan.Width(l, th.Classifier()); got > w || got != scan.Width(lines[0], th.Classifier()) {
					t.Fatalf("border %s width %d: line %q measures %d", border, w, l, got)
				}
			}
		}
	}
}
