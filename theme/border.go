// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/framegrace/texelfmt/width"
)

// Part indexes a glyph inside a border template.
type Part int

const (
	TopLeft Part = iota
	TopJoint
	TopRight
	LeftJoint
	Cross
	RightJoint
	BottomLeft
	BottomJoint
	BottomRight
	Vertical
	Horizontal
	partCount
)

// NoPart omits the end glyph of a border line.
const NoPart Part = -1

// Border is a fixed set of single-column glyphs used to draw frames and
// table grids. The zero Border draws nothing, not even the gap between
// columns.
type Border struct {
	glyphs [partCount]string
}

var builtinBorders = map[string]string{
	"default": "┌┬┐├┼┤└┴┘│─",
	"single":  "┌┬┐├┼┤└┴┘│─",
	"rounded": "╭┬╮├┼┤╰┴╯│─",
	"heavy":   "┏┳┓┣╋┫┗┻┛┃━",
	"double":  "╔╦╗╠╬╣╚╩╝║═",
	"ascii":   "+++++++++|-",
	"none":    "           ",
}

// Glyph returns the glyph for part p.
func (b Border) Glyph(p Part) string {
	if p < 0 || p >= partCount {
		return ""
	}
	return b.glyphs[p]
}

// IsZero reports whether the border draws nothing at all.
func (b Border) IsZero() bool { return b.glyphs[Vertical] == "" }

// Blank reports whether every glyph is a space. Blank borders keep the
// column gap but produce no separator lines.
func (b Border) Blank() bool {
	if b.IsZero() {
		return true
	}
	for _, g := range b.glyphs {
		if g != " " {
			return false
		}
	}
	return true
}

// Line builds a horizontal border line: left, then each width worth of
// horizontal glyphs joined by the junction glyph, then right. Pass NoPart
// to omit an end.
func (b Border) Line(left, junction, right Part, widths []int) string {
	if b.IsZero() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(b.Glyph(left))
	h := b.Glyph(Horizontal)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString(b.Glyph(junction))
		}
		sb.WriteString(strings.Repeat(h, w))
	}
	sb.WriteString(b.Glyph(right))
	return sb.String()
}

// Narrow reports whether every glyph takes exactly one column under c.
// The zero Border is narrow.
func (b Border) Narrow(c width.Classifier) bool {
	if b.IsZero() {
		return true
	}
	for _, g := range b.glyphs {
		if c.Cluster(g) != 1 {
			return false
		}
	}
	return true
}

// ForWidth returns b when it is narrow under c and the ascii border
// otherwise. Box-drawing glyphs are East Asian ambiguous, so they take two
// columns wherever the ambiguous width is 2.
func (b Border) ForWidth(c width.Classifier) Border {
	if b.Narrow(c) {
		return b
	}
	return asciiBorder
}

var asciiBorder, _ = newBorder(builtinBorders["ascii"])

// String returns the template as an 11-glyph string.
func (b Border) String() string { return strings.Join(b.glyphs[:], "") }

// newBorder builds a border from a 1 or 11 glyph template. Every glyph must
// be exactly one column wide.
func newBorder(template string) (Border, error) {
	var glyphs []string
	narrow := width.New(1)
	state := -1
	rest := template
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w := narrow.Cluster(cluster); w != 1 {
			return Border{}, fmt.Errorf("%w: glyph %q is %d columns wide", ErrInvalidBorder, cluster, w)
		}
		glyphs = append(glyphs, cluster)
	}

	var b Border
	switch len(glyphs) {
	case 1:
		for i := range b.glyphs {
			b.glyphs[i] = glyphs[0]
		}
	case int(partCount):
		copy(b.glyphs[:], glyphs)
	default:
		return Border{}, fmt.Errorf("%w: need 1 or %d glyphs, got %d", ErrInvalidBorder, partCount, len(glyphs))
	}
	return b, nil
}
