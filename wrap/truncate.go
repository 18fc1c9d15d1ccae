// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package wrap

import (
	"strings"

	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/width"
)

// Truncate cuts s to at most w columns without splitting a grapheme
// cluster. Every escape sequence is kept, including those after the cut,
// so styles opened and closed in s stay balanced.
func Truncate(s string, w int, c width.Classifier) Line {
	var b strings.Builder
	b.Grow(len(s))
	used := 0
	full := false
	sc := scan.New(s, c)
	for sc.Next() {
		tok := sc.Token()
		if tok.Kind == scan.Escape {
			b.WriteString(tok.Text)
			continue
		}
		if full || used+tok.Width > w {
			full = true
			continue
		}
		b.WriteString(tok.Text)
		used += tok.Width
	}
	return Line{Text: b.String(), Width: used}
}

// Measure returns s as a single line with its screen width.
func Measure(s string, c width.Classifier) Line {
	return Line{Text: s, Width: scan.Width(s, c)}
}
