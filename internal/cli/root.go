// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/cli/root.go
// Summary: Command tree for the texelfmt binary.

package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelfmt/config"
	"github.com/framegrace/texelfmt/theme"
)

type options struct {
	width      int
	color      string
	configPath string
	ambiguous  int
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	opts   options
	in     io.Reader
	out    io.Writer
	cfg    config.Config
	theme  *theme.Theme
	isTerm func(io.Writer) bool
	size   func(io.Writer) (int, bool)
}

// NewRootCommand builds the command tree reading from in and writing to out.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, isTerm: isTerminal, size: terminalWidth}
	root := &cobra.Command{
		Use:   "texelfmt",
		Short: "Format styled text for the terminal",
		Long: `texelfmt translates inline markup into ANSI styling, wraps styled text
to a column width without breaking escape sequences or grapheme clusters,
and renders bordered tables that fit the terminal.

Examples:
  texelfmt markup "[bold red]error[/] disk full"
  ls -l | texelfmt wrap --width 40
  texelfmt table < report.csv
  texelfmt highlight main.go`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.IntVarP(&a.opts.width, "width", "w", 0, "Output width in columns (default: terminal width, else 80)")
	flags.StringVar(&a.opts.color, "color", "auto", "Emit ANSI styling: auto, always or never")
	flags.StringVar(&a.opts.configPath, "config", "", "Read configuration from this file instead of the user config")
	flags.IntVar(&a.opts.ambiguous, "ambiguous-width", 0, "Columns for East Asian ambiguous characters (1 or 2)")

	root.AddCommand(
		a.markupCmd(),
		a.plainCmd(),
		a.wrapCmd(),
		a.tableCmd(),
		a.widthCmd(),
		a.highlightCmd(),
	)
	return root
}

// Execute runs the command tree against the process streams.
func Execute() error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute()
}

func (a *app) setup() error {
	switch a.opts.color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q: must be auto, always or never", a.opts.color)
	}
	if a.opts.ambiguous != 0 && a.opts.ambiguous != 1 && a.opts.ambiguous != 2 {
		return fmt.Errorf("invalid --ambiguous-width %d: must be 1 or 2", a.opts.ambiguous)
	}

	if a.opts.configPath != "" {
		cfg, err := config.LoadFile(a.opts.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	} else {
		if err := config.Err(); err != nil {
			log.Printf("CLI: user config unusable, using defaults: %v", err)
		}
		a.cfg = config.Clone(config.System())
	}
	if a.opts.ambiguous != 0 {
		a.cfg.RegisterDefaults("theme", config.Section{})
		a.cfg.Section("theme")["ambiguous_width"] = a.opts.ambiguous
	}

	t, err := theme.Load(a.cfg)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	a.theme = t
	return nil
}
