// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabletext

import (
	"regexp"
	"strings"

	"github.com/framegrace/texelfmt/box"
)

// Format identifies the textual table syntax that was recognized.
type Format int

const (
	FormatNone Format = iota
	FormatMarkdown
	FormatPipe
	FormatCSV
	FormatTSV
)

func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatPipe:
		return "pipe"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	}
	return "none"
}

// detector scores how likely lines are a table of its format and parses
// them when chosen.
type detector interface {
	score(lines []string) float64
	parse(lines []string) *Parsed
}

type candidate struct {
	detector  detector
	threshold float64
}

// candidates are tried in order; the best score above its threshold wins.
var candidates = []candidate{
	{markdownDetector{}, 0.95},
	{pipeDetector{}, 0.7},
	{csvDetector{delim: ','}, 0.5},
	{csvDetector{delim: '\t'}, 0.5},
}

// ─── Markdown ────────────────────────────────────────────────────────────────

var (
	reMDRule    = regexp.MustCompile(`^\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`)
	reMDRuleCol = regexp.MustCompile(`^\s*(:?)-{3,}(:?)\s*$`)
)

type markdownDetector struct{}

func ruleIndex(lines []string) int {
	for i, ln := range lines {
		if reMDRule.MatchString(ln) {
			return i
		}
	}
	return -1
}

func (markdownDetector) score(lines []string) float64 {
	rule := ruleIndex(lines)
	if rule < 1 {
		return 0
	}
	want := len(splitPipes(lines[rule]))
	if want < 2 {
		return 0
	}
	match, total := 0, 0
	for i, ln := range lines {
		if i == rule || blank(ln) {
			continue
		}
		total++
		if len(splitPipes(ln)) == want {
			match++
		}
	}
	if total == 0 {
		return 0
	}
	ratio := float64(match) / float64(total)
	if ratio >= 0.7 {
		return 0.95 + 0.05*ratio
	}
	return 0.9 * ratio
}

func (markdownDetector) parse(lines []string) *Parsed {
	rule := ruleIndex(lines)
	if rule < 1 {
		return nil
	}
	ruleCols := splitPipes(lines[rule])
	p := &Parsed{Format: FormatMarkdown, Header: -1, Aligns: make([]box.Align, len(ruleCols))}
	for i, col := range ruleCols {
		p.Aligns[i] = ruleAlign(col)
		p.explicit = append(p.explicit, strings.Contains(col, ":"))
	}
	for i, ln := range lines {
		if i == rule || blank(ln) {
			continue
		}
		if i == rule-1 {
			p.Header = len(p.Rows)
		}
		p.Rows = append(p.Rows, fit(splitPipes(ln), len(ruleCols)))
	}
	return p
}

func ruleAlign(col string) box.Align {
	m := reMDRuleCol.FindStringSubmatch(col)
	if m == nil {
		return box.Left
	}
	switch {
	case m[1] == ":" && m[2] == ":":
		return box.Center
	case m[2] == ":":
		return box.Right
	}
	return box.Left
}

// ─── Pipe separated ──────────────────────────────────────────────────────────

type pipeDetector struct{}

func (pipeDetector) score(lines []string) float64 {
	if ruleIndex(lines) >= 0 {
		return 0
	}
	counts := make(map[int]int)
	total := 0
	for _, ln := range lines {
		if blank(ln) {
			continue
		}
		total++
		if n := strings.Count(ln, "|"); n > 0 {
			counts[n]++
		}
	}
	if total < 2 {
		return 0
	}
	_, freq := mode(counts)
	ratio := float64(freq) / float64(total)
	if ratio >= 0.7 {
		return 0.7 + 0.2*ratio
	}
	return 0.7 * ratio
}

func (pipeDetector) parse(lines []string) *Parsed {
	p := &Parsed{Format: FormatPipe, Header: 0}
	cols := 0
	for _, ln := range lines {
		if blank(ln) {
			continue
		}
		row := splitPipes(ln)
		cols = max(cols, len(row))
		p.Rows = append(p.Rows, row)
	}
	if len(p.Rows) < 2 || cols < 2 {
		return nil
	}
	for i := range p.Rows {
		p.Rows[i] = fit(p.Rows[i], cols)
	}
	p.Aligns = make([]box.Align, cols)
	return p
}

func splitPipes(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// ─── CSV / TSV ───────────────────────────────────────────────────────────────

type csvDetector struct {
	delim byte
}

func (d csvDetector) score(lines []string) float64 {
	counts := make(map[int]int)
	total := 0
	for _, ln := range lines {
		if blank(ln) {
			continue
		}
		total++
		counts[countUnquoted(strings.TrimSpace(ln), d.delim)]++
	}
	if total < 3 {
		return 0
	}
	n, freq := mode(counts)
	// One delimiter per line is too weak a signal; prose has commas too.
	if n < 2 {
		return 0
	}
	ratio := float64(freq) / float64(total)
	if ratio < 0.8 {
		return 0
	}
	return 0.5 + 0.4*ratio
}

func (d csvDetector) parse(lines []string) *Parsed {
	format := FormatCSV
	if d.delim == '\t' {
		format = FormatTSV
	}
	p := &Parsed{Format: format, Header: 0}
	cols := 0
	for _, ln := range lines {
		if blank(ln) {
			continue
		}
		row := splitQuoted(strings.TrimSpace(ln), d.delim)
		cols = max(cols, len(row))
		p.Rows = append(p.Rows, row)
	}
	if len(p.Rows) < 2 || cols < 2 {
		return nil
	}
	for i := range p.Rows {
		p.Rows[i] = fit(p.Rows[i], cols)
	}
	p.Aligns = make([]box.Align, cols)
	return p
}

func countUnquoted(line string, delim byte) int {
	n := 0
	quoted := false
	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"':
			quoted = !quoted
		case !quoted && line[i] == delim:
			n++
		}
	}
	return n
}

// splitQuoted splits on delim outside double quotes. A doubled quote inside
// a quoted field is a literal quote.
func splitQuoted(line string, delim byte) []string {
	var fields []string
	var field strings.Builder
	quoted := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted && c == '"':
			if i+1 < len(line) && line[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				quoted = false
			}
		case quoted:
			field.WriteByte(c)
		case c == '"':
			quoted = true
		case c == delim:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// fit pads or cuts row to n cells.
func fit(row []string, n int) []string {
	if len(row) == n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}

// mode returns the most frequent key, preferring the larger key on ties.
func mode(counts map[int]int) (key, freq int) {
	for k, f := range counts {
		if f > freq || (f == freq && k > key) {
			key, freq = k, f
		}
	}
	return key, freq
}
