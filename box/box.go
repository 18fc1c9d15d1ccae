// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: box/box.go
// Summary: Rectangular blocks of measured lines.

// Package box composes rectangular blocks of styled text: padding,
// alignment, vertical fill, horizontal joins and frames.
package box

import (
	"strings"

	"github.com/framegrace/texelfmt/ansi"
	"github.com/framegrace/texelfmt/theme"
	"github.com/framegrace/texelfmt/wrap"
)

// Block is a list of lines sharing one nominal width. Operations return new
// blocks and never modify the receiver's lines.
type Block struct {
	Lines  []wrap.Line
	Width  int
	VAlign VAlign
	// Fill is the SGR prefix used for blank filler cells.
	Fill string
}

// FromLines wraps measured lines in a block as wide as the widest line.
func FromLines(lines []wrap.Line) Block {
	w := 0
	for _, l := range lines {
		w = max(w, l.Width)
	}
	return Block{Lines: lines, Width: w}
}

// Height returns the number of lines.
func (b Block) Height() int { return len(b.Lines) }

// Strings returns the line text.
func (b Block) Strings() []string { return wrap.Strings(b.Lines) }

// Normalize pads every line to size columns using align and wraps it in
// style. Lines already wider than size are kept whole. The style becomes
// the block's fill.
func (b Block) Normalize(size int, style string, align Align) Block {
	size = max(size, 0)
	out := Block{Lines: make([]wrap.Line, len(b.Lines)), Width: size, VAlign: b.VAlign, Fill: style}
	for i, l := range b.Lines {
		gap := max(size-l.Width, 0)
		var left int
		switch align {
		case Right:
			left = gap
		case Center:
			left = gap / 2
		}
		var sb strings.Builder
		sb.WriteString(style)
		sb.WriteString(strings.Repeat(" ", left))
		sb.WriteString(restyle(l.Text, style))
		sb.WriteString(strings.Repeat(" ", gap-left))
		if style != "" {
			sb.WriteString(ansi.Reset)
		}
		out.Lines[i] = wrap.Line{Text: sb.String(), Width: l.Width + gap}
	}
	return out
}

// restyle re-opens style after every full reset inside text so the
// remainder of the line keeps the block's style.
func restyle(text, style string) string {
	if style == "" || !strings.Contains(text, ansi.Reset) {
		return text
	}
	return strings.ReplaceAll(text, ansi.Reset, ansi.Reset+style)
}

// blank returns n filler columns in the block's fill style.
func (b Block) blank(n int) string {
	if n <= 0 {
		return ""
	}
	if b.Fill == "" {
		return strings.Repeat(" ", n)
	}
	return b.Fill + strings.Repeat(" ", n) + ansi.Reset
}

// HPad adds left and right filler columns to every line.
func (b Block) HPad(left, right int) Block {
	left, right = max(left, 0), max(right, 0)
	if left == 0 && right == 0 {
		return b
	}
	out := b
	out.Width = b.Width + left + right
	out.Lines = make([]wrap.Line, len(b.Lines))
	l, r := b.blank(left), b.blank(right)
	for i, line := range b.Lines {
		out.Lines[i] = wrap.Line{Text: l + line.Text + r, Width: line.Width + left + right}
	}
	return out
}

// VPad adds top and bottom blank lines as wide as the block.
func (b Block) VPad(top, bottom int) Block {
	top, bottom = max(top, 0), max(bottom, 0)
	if top == 0 && bottom == 0 {
		return b
	}
	out := b
	out.Lines = make([]wrap.Line, 0, len(b.Lines)+top+bottom)
	fill := wrap.Line{Text: b.blank(b.Width), Width: b.Width}
	for i := 0; i < top; i++ {
		out.Lines = append(out.Lines, fill)
	}
	out.Lines = append(out.Lines, b.Lines...)
	for i := 0; i < bottom; i++ {
		out.Lines = append(out.Lines, fill)
	}
	return out
}

// InHeight grows the block to height lines, placing the filler according
// to its VAlign. Middle puts the larger half below the content. Blocks
// already at least height tall are returned unchanged.
func (b Block) InHeight(height int) Block {
	extra := height - b.Height()
	if extra <= 0 {
		return b
	}
	switch b.VAlign {
	case Bottom:
		return b.VPad(extra, 0)
	case Middle:
		return b.VPad(extra/2, extra-extra/2)
	}
	return b.VPad(0, extra)
}

// Join places blocks side by side. Every block is first brought to the
// height of the tallest with InHeight, and short lines are filled out to
// their block's width.
func Join(blocks ...Block) Block {
	height := 0
	for _, b := range blocks {
		height = max(height, b.Height())
	}
	out := Block{Lines: make([]wrap.Line, height)}
	if len(blocks) > 0 {
		out.VAlign = blocks[0].VAlign
		out.Fill = blocks[0].Fill
	}
	rows := make([]strings.Builder, height)
	for _, b := range blocks {
		b = b.InHeight(height)
		for i, l := range b.Lines {
			rows[i].WriteString(l.Text)
			w := l.Width
			if w < b.Width {
				rows[i].WriteString(b.blank(b.Width - w))
				w = b.Width
			}
			out.Lines[i].Width += w
		}
		out.Width += b.Width
	}
	for i := range rows {
		out.Lines[i].Text = rows[i].String()
	}
	return out
}

// Framed surrounds the block with a border drawn in style. A zero border
// returns the block unchanged.
func (b Block) Framed(border theme.Border, style string) Block {
	if border.IsZero() {
		return b
	}
	paint := func(s string) string {
		if style == "" {
			return s
		}
		return style + s + ansi.Reset
	}
	widths := []int{b.Width}
	out := b
	out.Width = b.Width + 2
	out.Lines = make([]wrap.Line, 0, len(b.Lines)+2)
	out.Lines = append(out.Lines, wrap.Line{
		Text:  paint(border.Line(theme.TopLeft, theme.TopJoint, theme.TopRight, widths)),
		Width: out.Width,
	})
	v := paint(border.Glyph(theme.Vertical))
	for _, l := range b.Lines {
		pad := b.blank(b.Width - l.Width)
		w := max(l.Width, b.Width) + 2
		out.Lines = append(out.Lines, wrap.Line{Text: v + l.Text + pad + v, Width: w})
	}
	out.Lines = append(out.Lines, wrap.Line{
		Text:  paint(border.Line(theme.BottomLeft, theme.BottomJoint, theme.BottomRight, widths)),
		Width: out.Width,
	})
	return out
}
