// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: table/table.go
// Summary: Grid of styled cells rendered inside a width budget.

// Package table renders rows of cells as a grid that fits a given terminal
// width. Column widths are negotiated with the layout package, cell content
// is wrapped and aligned with the box package and borders come from the
// theme's templates.
package table

import (
	"github.com/framegrace/texelfmt/box"
	"github.com/framegrace/texelfmt/layout"
)

// Cell is one grid cell. Lines hold already styled text; each entry may
// contain newlines.
type Cell struct {
	Lines  []string
	Align  box.Align
	VAlign box.VAlign
	// Padding overrides the table padding when set.
	Padding *layout.Padding
	// Style is an SGR prefix applied to the whole cell area.
	Style string
	// Width requests a fixed column width when positive.
	Width int
}

// NewCell returns a cell holding lines.
func NewCell(lines ...string) *Cell { return &Cell{Lines: lines} }

// Row is one line of cells. Nil and missing cells render blank.
type Row []*Cell

// Separators selects which rows get a horizontal rule between them.
type Separators uint8

const (
	// SeparateAll draws a rule between every pair of rows.
	SeparateAll Separators = iota
	// SeparateHeader draws a rule only below the header rows.
	SeparateHeader
	// SeparateNone draws no rules between rows.
	SeparateNone
)

// Table describes a grid to render.
type Table struct {
	Rows []Row
	// Border is a border name known to the theme, a 1 or 11 glyph template,
	// or empty for no border.
	Border string
	// BorderStyle is an SGR prefix applied to border glyphs.
	BorderStyle  string
	BorderAround bool
	Padding      layout.Padding
	Separators   Separators
	// HeaderRows is the number of leading header rows for SeparateHeader.
	// Zero means one.
	HeaderRows int
}

// AddRow appends a row built from plain strings, one line per cell.
func (t *Table) AddRow(values ...string) Row {
	row := make(Row, len(values))
	for i, v := range values {
		row[i] = NewCell(v)
	}
	t.Rows = append(t.Rows, row)
	return row
}

// Columns returns the number of columns, the length of the longest row.
func (t *Table) Columns() int {
	n := 0
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	return n
}

func (t *Table) separatorAfter(row int) bool {
	if row >= len(t.Rows)-1 {
		return false
	}
	switch t.Separators {
	case SeparateNone:
		return false
	case SeparateHeader:
		return row == max(t.HeaderRows, 1)-1
	}
	return true
}
