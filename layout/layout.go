// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: layout/layout.go
// Summary: Column width negotiation under a fixed budget.

// Package layout decides how wide each column of a grid may be when the
// columns together must fit a fixed number of terminal cells.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConstraint reports a structurally impossible constraint. It
// always indicates a caller bug, never bad input text.
var ErrInvalidConstraint = errors.New("invalid constraint")

type kind uint8

const (
	kindUnconstrained kind = iota
	kindFixed
	kindRange
)

// Constraint bounds the width of one column.
type Constraint struct {
	kind     kind
	Min, Max int
}

// Fixed asks for exactly n columns.
func Fixed(n int) Constraint { return Constraint{kind: kindFixed, Min: n, Max: n} }

// Range accepts any width between min and max inclusive.
func Range(min, max int) Constraint { return Constraint{kind: kindRange, Min: min, Max: max} }

// Unconstrained accepts any width of at least one column.
func Unconstrained() Constraint { return Constraint{kind: kindUnconstrained} }

// IsFixed reports whether c was built by Fixed.
func (c Constraint) IsFixed() bool { return c.kind == kindFixed }

func (c Constraint) String() string {
	switch c.kind {
	case kindFixed:
		return fmt.Sprintf("fixed(%d)", c.Min)
	case kindRange:
		return fmt.Sprintf("range(%d,%d)", c.Min, c.Max)
	}
	return "unconstrained"
}

// Validate reports whether c can be satisfied at all.
func (c Constraint) Validate() error {
	switch c.kind {
	case kindFixed:
		if c.Min < 0 {
			return fmt.Errorf("%w: negative fixed width %d", ErrInvalidConstraint, c.Min)
		}
	case kindRange:
		if c.Min < 0 {
			return fmt.Errorf("%w: negative minimum %d", ErrInvalidConstraint, c.Min)
		}
		if c.Min > c.Max {
			return fmt.Errorf("%w: minimum %d above maximum %d", ErrInvalidConstraint, c.Min, c.Max)
		}
	case kindUnconstrained:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidConstraint, c.kind)
	}
	return nil
}

type column struct {
	lo, hi  int
	current int
}

// Negotiate returns one width per column such that the widths sum to at
// most budget. Columns are seeded, then grown or shrunk toward the budget.
// When the shrink passes cannot reach it, the last column is dropped,
// returning its width and, while other columns remain, one separator to
// the budget, and shrinking resumes on the columns left. The result is
// therefore possibly shorter than cols, and empty when not even one column
// of width 1 fits.
func Negotiate(cols []Constraint, budget, separator int) ([]int, error) {
	if separator < 0 {
		return nil, fmt.Errorf("%w: negative separator %d", ErrInvalidConstraint, separator)
	}
	for i, c := range cols {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
	}
	if len(cols) == 0 {
		return []int{}, nil
	}

	work := seed(cols, budget)
	sum := 0
	for _, c := range work {
		sum += c.current
	}
	if sum < budget {
		sum = expand(work, sum, budget)
	}
	for len(work) > 0 {
		if sum = shrinkAll(work, sum, budget); sum <= budget {
			break
		}
		last := len(work) - 1
		sum -= work[last].current
		work = work[:last]
		if len(work) > 0 {
			budget += separator
		}
	}

	widths := make([]int, len(work))
	for i, c := range work {
		widths[i] = c.current
	}
	return widths, nil
}

// shrinkAll runs the three shrink passes in order: elastic, then columns
// whose bounds are equal, then any column wider than one.
func shrinkAll(work []column, sum, budget int) int {
	if sum > budget {
		sum = shrink(work, sum, budget, func(c *column) int {
			if c.current > c.lo {
				return c.current - c.lo
			}
			return -1
		})
	}
	if sum > budget {
		sum = shrink(work, sum, budget, func(c *column) int {
			if c.lo == c.hi && c.current > 1 {
				return c.current
			}
			return -1
		})
	}
	if sum > budget {
		sum = shrink(work, sum, budget, func(c *column) int {
			if c.current > 1 {
				return c.current
			}
			return -1
		})
	}
	return sum
}

func seed(cols []Constraint, budget int) []column {
	work := make([]column, len(cols))
	share := budget / len(cols)
	limit := max(budget, 1)
	for i, c := range cols {
		col := &work[i]
		switch c.kind {
		case kindFixed:
			col.lo = clamp(c.Min, 1, limit)
			col.hi = col.lo
			col.current = col.lo
		case kindRange:
			col.lo = max(c.Min, 1)
			col.hi = max(c.Max, col.lo)
			col.current = clamp(c.Min+(c.Max-c.Min)/2, col.lo, col.hi)
		default:
			col.lo = 1
			col.hi = math.MaxInt
			col.current = max(share, 1)
		}
	}
	return work
}

// expand grows the narrowest growable column one cell at a time.
func expand(work []column, sum, budget int) int {
	for sum < budget {
		pick := -1
		for i := range work {
			if work[i].current >= work[i].hi {
				continue
			}
			if pick < 0 || work[i].current < work[pick].current {
				pick = i
			}
		}
		if pick < 0 {
			break
		}
		work[pick].current++
		sum++
	}
	return sum
}

// shrink repeatedly takes one cell from the column with the highest score.
// Columns scoring below zero are not eligible.
func shrink(work []column, sum, budget int, score func(*column) int) int {
	for sum > budget {
		pick, best := -1, -1
		for i := range work {
			if s := score(&work[i]); s >= 0 && s > best {
				pick, best = i, s
			}
		}
		if pick < 0 {
			break
		}
		work[pick].current--
		sum--
	}
	return sum
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
