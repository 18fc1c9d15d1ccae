// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/framegrace/texelfmt/scan"
)

const fallbackWidth = 80

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0, false
	}
	return cols, true
}

// colorEnabled decides whether styling reaches the output. NO_COLOR beats
// FORCE_COLOR, which beats terminal detection.
func (a *app) colorEnabled() bool {
	switch a.opts.color {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return a.isTerm(a.out)
}

// width resolves the output width: the flag, then the terminal, then 80.
func (a *app) width() int {
	if a.opts.width > 0 {
		return a.opts.width
	}
	if cols, ok := a.size(a.out); ok {
		return cols
	}
	return fallbackWidth
}

// emit writes lines, stripping escapes when color is off.
func (a *app) emit(lines []string) error {
	color := a.colorEnabled()
	var sb strings.Builder
	for _, l := range lines {
		if !color {
			l = scan.Strip(l)
		}
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(a.out, sb.String())
	return err
}

// input returns args joined by spaces, or all of stdin when there are none.
func (a *app) input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(a.in)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}
