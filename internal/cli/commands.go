// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelfmt/highlight"
	"github.com/framegrace/texelfmt/markup"
	"github.com/framegrace/texelfmt/scan"
	"github.com/framegrace/texelfmt/table"
	"github.com/framegrace/texelfmt/tabletext"
	"github.com/framegrace/texelfmt/wrap"
)

var errNoTable = errors.New("no table found in input")

func (a *app) markupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "markup [text...]",
		Short: "Translate [tag] markup into ANSI styling",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			tr := markup.New(a.theme)
			if !a.colorEnabled() {
				return a.emit(strings.Split(tr.Plain(s, true), "\n"))
			}
			return a.emit(strings.Split(tr.Embellish(s), "\n"))
		},
	}
}

func (a *app) plainCmd() *cobra.Command {
	var keep bool
	cmd := &cobra.Command{
		Use:   "plain [text...]",
		Short: "Remove markup tags, and escape sequences unless --keep-escapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			out := markup.New(a.theme).Plain(s, !keep)
			_, err = fmt.Fprintln(a.out, out)
			return err
		},
	}
	cmd.Flags().BoolVar(&keep, "keep-escapes", false, "Leave existing escape sequences in place")
	return cmd
}

func (a *app) wrapCmd() *cobra.Command {
	var withMarkup, flow bool
	cmd := &cobra.Command{
		Use:   "wrap [text...]",
		Short: "Wrap styled text to the output width",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			if withMarkup {
				s = markup.New(a.theme).Embellish(s)
			}
			honor := a.cfg.GetBool("wrap", "honor_newlines", true)
			if cmd.Flags().Changed("flow") {
				honor = !flow
			}
			w := wrap.New(a.theme.Classifier(), wrap.Options{Width: a.width(), HonorNewlines: honor})
			return a.emit(w.Strings(s))
		},
	}
	cmd.Flags().BoolVarP(&withMarkup, "markup", "m", false, "Translate markup tags before wrapping")
	cmd.Flags().BoolVar(&flow, "flow", false, "Treat newlines as spaces and reflow paragraphs")
	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	var border string
	var inner bool
	cmd := &cobra.Command{
		Use:   "table [file]",
		Short: "Detect a markdown, pipe, CSV or TSV table and render it boxed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := a.readSource(args)
			if err != nil {
				return err
			}
			parsed, ok := tabletext.Parse(strings.Split(strings.TrimRight(src, "\n"), "\n"))
			if !ok {
				return errNoTable
			}
			if !cmd.Flags().Changed("border") {
				border = a.cfg.GetString("table", "border", "rounded")
			}
			t := parsed.Table(border, !inner && a.cfg.GetBool("table", "border_around", true))
			a.styleTable(t)
			lines, err := table.NewRenderer(a.theme).Render(t, a.width())
			if err != nil {
				return err
			}
			return a.emit(lines)
		},
	}
	cmd.Flags().StringVarP(&border, "border", "b", "", "Border name or glyph template")
	cmd.Flags().BoolVar(&inner, "inner", false, "Draw only the rules between cells")
	return cmd
}

// styleTable applies the configured border style and cell padding.
func (a *app) styleTable(t *table.Table) {
	style := a.cfg.GetString("table", "border_style", "")
	if seq, ok := markup.New(a.theme).Resolve(style); ok {
		t.BorderStyle = seq
	} else if style == "" {
		t.BorderStyle = ""
	}
	t.Padding.Left = max(a.cfg.GetInt("table", "padding_left", 1), 0)
	t.Padding.Right = max(a.cfg.GetInt("table", "padding_right", 1), 0)
}

func (a *app) widthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width [text...]",
		Short: "Print the display width of each input line",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.input(args)
			if err != nil {
				return err
			}
			cls := a.theme.Classifier()
			var out []string
			for _, line := range strings.Split(s, "\n") {
				out = append(out, strconv.Itoa(scan.Width(strings.TrimSuffix(line, "\r"), cls)))
			}
			return a.emit(out)
		},
	}
}

func (a *app) highlightCmd() *cobra.Command {
	var lang, style string
	var list bool
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Syntax highlight source code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return a.emit(highlight.Styles())
			}
			src, err := a.readSource(args)
			if err != nil {
				return err
			}
			var name string
			if len(args) == 1 {
				name = filepath.Base(args[0])
			}
			if !cmd.Flags().Changed("style") {
				style = a.cfg.GetString("highlight", "style", highlight.DefaultStyle)
			}
			out := highlight.Highlight(strings.TrimSuffix(src, "\n"), name, lang, style)
			return a.emit(strings.Split(out, "\n"))
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Language name (default: detect)")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Chroma style name")
	cmd.Flags().BoolVar(&list, "list-styles", false, "List available styles")
	return cmd
}

// readSource reads the named file, or stdin when no file is given.
func (a *app) readSource(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return a.input(nil)
}
