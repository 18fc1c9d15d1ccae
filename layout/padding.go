// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import "fmt"

// Padding is the blank space around a cell's content.
type Padding struct {
	Top, Right, Bottom, Left int
}

// NewPadding builds a Padding from CSS-style shorthand: one value for all
// sides, two for vertical and horizontal, or four for top, right, bottom
// and left.
func NewPadding(values ...int) (Padding, error) {
	for _, v := range values {
		if v < 0 {
			return Padding{}, fmt.Errorf("%w: negative padding %d", ErrInvalidConstraint, v)
		}
	}
	switch len(values) {
	case 0:
		return Padding{}, nil
	case 1:
		v := values[0]
		return Padding{v, v, v, v}, nil
	case 2:
		return Padding{values[0], values[1], values[0], values[1]}, nil
	case 4:
		return Padding{values[0], values[1], values[2], values[3]}, nil
	}
	return Padding{}, fmt.Errorf("%w: padding takes 1, 2 or 4 values, got %d", ErrInvalidConstraint, len(values))
}

// Horizontal returns Left+Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top+Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Adjust shrinks left and right padding so that a cell of the given width
// keeps at least width/2+1 columns for content. The paddings keep their
// original ratio.
func Adjust(width, left, right int) (int, int) {
	left, right = max(left, 0), max(right, 0)
	total := left + right
	if total == 0 {
		return 0, 0
	}
	room := max(width-(width/2+1), 0)
	if total <= room {
		return left, right
	}
	newLeft := room * left / total
	return newLeft, room - newLeft
}
