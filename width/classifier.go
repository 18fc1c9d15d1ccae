// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabWidth is the number of columns a horizontal tab occupies.
const TabWidth = 8

// controlWidths overrides the table for C0 controls, following what common
// terminals do with them when they reach the screen unprocessed.
var controlWidths = [0x20]int{
	0x00: 0,        // NUL
	0x01: 1,        // SOH
	0x02: 1,        // STX
	0x03: 1,        // ETX
	0x04: 1,        // EOT
	0x05: 1,        // ENQ
	0x06: 1,        // ACK
	0x07: 0,        // BEL
	0x08: 0,        // BS
	0x09: TabWidth, // HT
	0x0A: 0,        // LF
	0x0B: 0,        // VT
	0x0C: 0,        // FF
	0x0D: 0,        // CR
	0x0E: 0,        // SO
	0x0F: 0,        // SI
	0x10: 1,        // DLE
	0x11: 1,        // DC1
	0x12: 1,        // DC2
	0x13: 1,        // DC3
	0x14: 1,        // DC4
	0x15: 1,        // NAK
	0x16: 1,        // SYN
	0x17: 1,        // ETB
	0x18: 1,        // CAN
	0x19: 1,        // EM
	0x1A: 1,        // SUB
	0x1B: 0,        // ESC
	0x1C: 1,        // FS
	0x1D: 1,        // GS
	0x1E: 1,        // RS
	0x1F: 1,        // US
}

const (
	halfwidthDakuten    = '\uFF9E'
	halfwidthHandakuten = '\uFF9F'
)

// Classifier resolves width classes to column counts. The zero value
// resolves ambiguous characters to one column.
type Classifier struct {
	ambiguous int
}

// New returns a Classifier that resolves East Asian Ambiguous characters
// to the given width. Values other than 2 resolve to 1.
func New(ambiguous int) Classifier {
	if ambiguous != 2 {
		ambiguous = 1
	}
	return Classifier{ambiguous: ambiguous}
}

// FromEnvironment picks the ambiguous width from the locale, the way
// go-runewidth does for CJK environments.
func FromEnvironment() Classifier {
	if runewidth.IsEastAsian() {
		return New(2)
	}
	return New(1)
}

// Ambiguous reports the width ambiguous characters resolve to.
func (c Classifier) Ambiguous() int {
	if c.ambiguous == 0 {
		return 1
	}
	return c.ambiguous
}

// Rune returns the column count of a single code point.
func (c Classifier) Rune(r rune) int {
	switch {
	case r >= 0 && r < 0x20:
		return controlWidths[r]
	case r >= 0x7F && r <= 0x9F:
		return 0
	}
	switch Classify(r) {
	case Zero:
		return 0
	case Two:
		return 2
	case Ambiguous:
		return c.Ambiguous()
	}
	return 1
}

// Cluster returns the column count of one grapheme cluster. Only the base
// code point is measured; trailing members add nothing, except that a
// halfwidth (semi-)voiced sound mark widens a narrow base to two columns.
func (c Classifier) Cluster(cluster string) int {
	base, size := utf8.DecodeRuneInString(cluster)
	if size == 0 {
		return 0
	}
	w := c.Rune(base)
	if w != 1 {
		return w
	}
	for _, r := range cluster[size:] {
		if r == halfwidthDakuten || r == halfwidthHandakuten {
			return 2
		}
	}
	return w
}

// String returns the column count of plain text, measured one grapheme
// cluster at a time. Escape sequences are not recognized here; use the
// scan package for decorated text.
func (c Classifier) String(s string) int {
	total := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		total += c.Cluster(cluster)
	}
	return total
}
