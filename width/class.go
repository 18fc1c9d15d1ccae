// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package width classifies Unicode code points by the number of terminal
// columns they occupy and measures plain text built from them.
//
// Classification is a binary search over a sorted table of inclusive range
// upper bounds. The table is derived once, on first use, from the East Asian
// Width property (golang.org/x/text/width) and the Unicode general categories
// for combining and format characters.
package width

import (
	"sort"
	"sync"
	"unicode"

	eaw "golang.org/x/text/width"
)

// Class is the display width class of a code point.
type Class uint8

const (
	Zero      Class = iota // combining, enclosing and format characters
	One                    // narrow, halfwidth and neutral characters
	Two                    // wide and fullwidth characters
	Ambiguous              // East Asian Ambiguous; resolved by a Classifier
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Two:
		return "two"
	case Ambiguous:
		return "ambiguous"
	}
	return "unknown"
}

var (
	tableOnce sync.Once
	bounds    []rune  // inclusive upper bound of each range, ascending
	classes   []Class // class of the range ending at bounds[i]
)

// Classify returns the width class of r. Code points outside the Unicode
// range classify as One.
func Classify(r rune) Class {
	if r < 0 || r > unicode.MaxRune {
		return One
	}
	tableOnce.Do(buildTable)
	i := sort.Search(len(bounds), func(i int) bool { return bounds[i] >= r })
	if i == len(bounds) {
		return One
	}
	return classes[i]
}

// segment describes a stretch of code space and how it is classified while
// building the table. Unassigned planes are filled with a constant class
// instead of being classified rune by rune.
type segment struct {
	lo, hi  rune
	perRune bool
	class   Class
}

var segments = []segment{
	{lo: 0x00000, hi: 0x3FFFF, perRune: true},
	{lo: 0x40000, hi: 0xDFFFF, class: One},
	{lo: 0xE0000, hi: 0xE0FFF, perRune: true},
	{lo: 0xE1000, hi: 0xEFFFF, class: One},
	{lo: 0xF0000, hi: unicode.MaxRune, class: Ambiguous},
}

func buildTable() {
	cur := classOf(0)
	for _, seg := range segments {
		for r := seg.lo; r <= seg.hi; r++ {
			c := seg.class
			if seg.perRune {
				c = classOf(r)
			}
			if c != cur && r > 0 {
				bounds = append(bounds, r-1)
				classes = append(classes, cur)
			}
			cur = c
			if !seg.perRune {
				r = seg.hi
			}
		}
	}
	bounds = append(bounds, unicode.MaxRune)
	classes = append(classes, cur)
}

// classOf computes the class of a single code point from the Unicode
// property tables. It is only called while building the range table.
func classOf(r rune) Class {
	switch {
	case r >= 0xD800 && r <= 0xDFFF:
		return One
	case r == 0x00AD:
		return One
	case r >= 0x1160 && r <= 0x11FF, r >= 0xD7B0 && r <= 0xD7FF:
		// Hangul medial vowels and final consonants join the preceding syllable.
		return Zero
	case r >= 0x1F1E6 && r <= 0x1F1FF:
		return Two
	case unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf):
		return Zero
	}
	switch eaw.LookupRune(r).Kind() {
	case eaw.EastAsianWide, eaw.EastAsianFullwidth:
		return Two
	case eaw.EastAsianAmbiguous:
		return Ambiguous
	}
	return One
}
