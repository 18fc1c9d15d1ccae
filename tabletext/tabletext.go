// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tabletext/tabletext.go
// Summary: Recognizes tables written as text and turns them into grids.

// Package tabletext recognizes Markdown, pipe separated and CSV/TSV tables
// in plain text and converts them to table.Table values, choosing
// alignment and color per column from the kind of values it holds.
package tabletext

import (
	"github.com/framegrace/texelfmt/ansi"
	"github.com/framegrace/texelfmt/box"
	"github.com/framegrace/texelfmt/layout"
	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/table"
)

// Parsed is a recognized table.
type Parsed struct {
	Format Format
	// Header is the index of the header row, or -1.
	Header int
	Rows   [][]string
	Aligns []box.Align

	explicit []bool
}

// Parse detects the table format of lines and parses them. Escape
// sequences are stripped first. It reports false when no format scores
// above its threshold.
func Parse(lines []string) (*Parsed, bool) {
	clean := make([]string, len(lines))
	for i, ln := range lines {
		clean[i] = scan.Strip(ln)
	}

	var best detector
	bestScore := 0.0
	for _, c := range candidates {
		s := c.detector.score(clean)
		if s >= c.threshold && s > bestScore {
			best, bestScore = c.detector, s
		}
	}
	if best == nil {
		return nil, false
	}
	p := best.parse(clean)
	if p == nil || len(p.Rows) == 0 {
		return nil, false
	}
	return p, true
}

// Columns returns the number of columns.
func (p *Parsed) Columns() int { return len(p.Aligns) }

// Types classifies every column from its non-header values.
func (p *Parsed) Types() []ColumnType {
	types := make([]ColumnType, p.Columns())
	for ci := range types {
		var values []string
		for ri, row := range p.Rows {
			if ri == p.Header || ci >= len(row) {
				continue
			}
			values = append(values, row[ci])
		}
		types[ci] = Classify(values)
	}
	return types
}

var (
	headerStyle = ansi.Sequence(ansi.AttrBold.On(), ansi.Standard(6).Params(ansi.Foreground))
	typeStyles  = map[ColumnType]string{
		ColumnNumber:   ansi.Sequence(ansi.Standard(3).Params(ansi.Foreground)),
		ColumnDateTime: ansi.Sequence(ansi.Standard(6).Params(ansi.Foreground)),
		ColumnPath:     ansi.Sequence(ansi.Standard(2).Params(ansi.Foreground)),
	}
)

// Table converts the parsed rows into a renderable table. The header row
// is bold cyan and separated from the body; body cells are colored by
// column type and numbers are right aligned unless the source gave an
// explicit alignment.
func (p *Parsed) Table(border string, around bool) *table.Table {
	types := p.Types()
	t := &table.Table{
		Border:       border,
		BorderStyle:  ansi.Sequence(ansi.AttrFaint.On()),
		BorderAround: around,
		Padding:      layout.Padding{Left: 1, Right: 1},
		Separators:   table.SeparateHeader,
		HeaderRows:   p.Header + 1,
	}
	if p.Header < 0 {
		t.Separators = table.SeparateNone
	}
	for ri, values := range p.Rows {
		row := make(table.Row, len(values))
		for ci, v := range values {
			cell := table.NewCell(v)
			if ci < len(p.Aligns) {
				cell.Align = p.Aligns[ci]
			}
			if ri == p.Header {
				cell.Style = headerStyle
			} else if ci < len(types) {
				cell.Style = typeStyles[types[ci]]
				if types[ci] == ColumnNumber && !p.explicitAlign(ci) {
					cell.Align = box.Right
				}
			}
			row[ci] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (p *Parsed) explicitAlign(col int) bool {
	return col < len(p.explicit) && p.explicit[col]
}
