// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package table

import (
	"fmt"
	"strings"

	"github.com/framegrace/texelfmt/ansi"
	"github.com/framegrace/texelfmt/box"
	"github.com/framegrace/texelfmt/layout"
	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/theme"
	"github.com/framegrace/texelfmt/width"
	"github.com/framegrace/texelfmt/wrap"
)

// Renderer turns tables into lines. It is safe for concurrent use.
type Renderer struct {
	Theme      *theme.Theme
	Classifier width.Classifier
}

// NewRenderer returns a renderer for t, or for theme.Default() when t is
// nil.
func NewRenderer(t *theme.Theme) *Renderer {
	if t == nil {
		t = theme.Default()
	}
	return &Renderer{Theme: t, Classifier: t.Classifier()}
}

// Render lays the table out in at most width columns. A table that cannot
// fit a single one-column cell renders as no lines. The only errors are an
// unknown border or an invalid cell constraint.
func (r *Renderer) Render(t *Table, width int) ([]string, error) {
	if t == nil || len(t.Rows) == 0 {
		return nil, nil
	}
	th := r.Theme
	if th == nil {
		th = theme.Default()
	}
	border, err := th.ParseBorder(t.Border)
	if err != nil {
		return nil, err
	}
	// Separator and bar cells below are one column each.
	border = border.ForWidth(r.Classifier)

	ncols := t.Columns()
	if ncols == 0 {
		return nil, nil
	}
	sep := 0
	if !border.IsZero() {
		sep = 1
	}
	around := t.BorderAround && !border.IsZero()
	budget := width - sep*(ncols-1)
	if around {
		budget -= 2
	}

	widths, err := layout.Negotiate(r.constraints(t, ncols), budget, sep)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	if len(widths) == 0 {
		return nil, nil
	}

	paint := func(s string) string {
		if t.BorderStyle == "" || s == "" {
			return s
		}
		return t.BorderStyle + s + ansi.Reset
	}
	rules := !border.Blank()
	outer := func(l, j, rt theme.Part) string {
		if !around {
			l, rt = theme.NoPart, theme.NoPart
		}
		return paint(border.Line(l, j, rt, widths))
	}

	var out []string
	if around && rules {
		out = append(out, outer(theme.TopLeft, theme.TopJoint, theme.TopRight))
	}
	for ri, row := range t.Rows {
		out = append(out, r.renderRow(t, row, widths, border, sep > 0, around, paint)...)
		if rules && t.separatorAfter(ri) {
			out = append(out, outer(theme.LeftJoint, theme.Cross, theme.RightJoint))
		}
	}
	if around && rules {
		out = append(out, outer(theme.BottomLeft, theme.BottomJoint, theme.BottomRight))
	}
	return out, nil
}

// constraints derives one constraint per column: the largest fixed width
// any cell asks for, otherwise a range up to the widest natural content.
func (r *Renderer) constraints(t *Table, ncols int) []layout.Constraint {
	fixed := make([]int, ncols)
	natural := make([]int, ncols)
	for _, row := range t.Rows {
		for ci, cell := range row {
			if cell == nil {
				continue
			}
			if cell.Width > 0 {
				fixed[ci] = max(fixed[ci], cell.Width)
				continue
			}
			pad := t.padding(cell)
			natural[ci] = max(natural[ci], r.naturalWidth(cell)+pad.Horizontal())
		}
	}
	out := make([]layout.Constraint, ncols)
	for i := range out {
		if fixed[i] > 0 {
			out[i] = layout.Fixed(fixed[i])
			continue
		}
		out[i] = layout.Range(1, max(natural[i], 1))
	}
	return out
}

func (r *Renderer) naturalWidth(cell *Cell) int {
	w := 0
	for _, text := range cell.Lines {
		for _, line := range strings.Split(text, "\n") {
			w = max(w, scan.Width(strings.TrimSuffix(line, "\r"), r.Classifier))
		}
	}
	return w
}

func (t *Table) padding(c *Cell) layout.Padding {
	if c != nil && c.Padding != nil {
		return *c.Padding
	}
	return t.Padding
}

func (r *Renderer) renderRow(t *Table, row Row, widths []int, border theme.Border, inner, around bool, paint func(string) string) []string {
	blocks := make([]box.Block, len(widths))
	height := 0
	for ci, w := range widths {
		var cell *Cell
		if ci < len(row) {
			cell = row[ci]
		}
		blocks[ci] = r.renderCell(t, cell, w)
		height = max(height, blocks[ci].Height())
	}

	bar := func() box.Block {
		g := wrap.Line{Text: paint(border.Glyph(theme.Vertical)), Width: 1}
		b := box.Block{Lines: make([]wrap.Line, height), Width: 1}
		for i := range b.Lines {
			b.Lines[i] = g
		}
		return b
	}

	parts := make([]box.Block, 0, 2*len(blocks)+1)
	if around {
		parts = append(parts, bar())
	}
	for ci, b := range blocks {
		if ci > 0 && inner {
			parts = append(parts, bar())
		}
		parts = append(parts, b)
	}
	if around {
		parts = append(parts, bar())
	}
	return box.Join(parts...).Strings()
}

func (r *Renderer) renderCell(t *Table, cell *Cell, w int) box.Block {
	if cell == nil {
		cell = &Cell{}
	}
	pad := t.padding(cell)
	left, right := layout.Adjust(w, pad.Left, pad.Right)
	content := max(w-left-right, 1)

	wr := wrap.New(r.Classifier, wrap.Options{Width: content, HonorNewlines: true})
	lines := wr.Wrap(cell.Lines...)
	if len(lines) == 0 {
		lines = []wrap.Line{{}}
	}

	b := box.FromLines(lines)
	b.VAlign = cell.VAlign
	return b.Normalize(content, cell.Style, cell.Align).
		HPad(left, right).
		VPad(pad.Top, pad.Bottom)
}

// Render lays t out with a renderer for the default theme.
func Render(t *Table, width int) ([]string, error) {
	return NewRenderer(nil).Render(t, width)
}
