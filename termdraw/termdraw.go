// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package termdraw paints rendered lines onto a cell surface such as a
// tcell.Screen, turning SGR sequences into cell styles.
package termdraw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/width"
)

// Surface is the part of tcell.Screen the painter writes to.
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Painter draws styled lines at a position.
type Painter struct {
	Surface    Surface
	Classifier width.Classifier
	// Style is the starting style of each line and what SGR 0 returns to.
	Style tcell.Style
	// MaxWidth clips lines to this many columns when positive.
	MaxWidth int
}

// New returns a painter for s using the environment's ambiguous width.
func New(s Surface) *Painter {
	return &Painter{Surface: s, Classifier: width.FromEnvironment(), Style: tcell.StyleDefault}
}

// Draw paints lines top to bottom starting at (x, y) and returns the number
// of rows written. Style state does not carry from one line to the next.
func (p *Painter) Draw(x, y int, lines []string) int {
	for row, line := range lines {
		p.drawLine(x, y+row, line)
	}
	return len(lines)
}

// DrawLine paints one line and returns the columns it occupied.
func (p *Painter) DrawLine(x, y int, line string) int {
	return p.drawLine(x, y, line)
}

func (p *Painter) drawLine(x, y int, line string) int {
	st := p.Style
	col := 0
	sc := scan.New(line, p.Classifier)
	for sc.Next() {
		tok := sc.Token()
		if tok.Kind == scan.Escape {
			st = applySGR(st, p.Style, tok.Text)
			continue
		}
		if tok.Width == 0 {
			continue
		}
		if p.MaxWidth > 0 && col+tok.Width > p.MaxWidth {
			break
		}
		primary, combining := runes(tok.Text)
		p.Surface.SetContent(x+col, y, primary, combining, st)
		col += tok.Width
	}
	return col
}

func runes(cluster string) (rune, []rune) {
	rs := []rune(cluster)
	if len(rs) == 1 {
		return rs[0], nil
	}
	return rs[0], rs[1:]
}

// Width reports the columns line would occupy when drawn.
func (p *Painter) Width(line string) int {
	return scan.Width(line, p.Classifier)
}
