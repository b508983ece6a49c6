// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package cmd implements the synchk command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/synchk/internal/config"
	"github.com/db47h/synchk/internal/logging"
	"github.com/db47h/synchk/report"
)

// errRejected is returned when at least one file failed the check. The
// failure itself has already been reported.
var errRejected = errors.New("syntax check failed")

type flags struct {
	cfgFile string
	verbose bool
	context bool
	noColor bool
}

// env holds what a command needs to run checking sessions.
type env struct {
	cfg *config.Config
	log *zap.Logger
	rep *report.Reporter
}

func newRootCmd() *cobra.Command {
	var fl flags
	rootCmd := &cobra.Command{
		Use:   "synchk [file...]",
		Short: "Syntax checker for program/begin/end sources",
		Long: `synchk checks whether source files conform to the grammar:

  program        := "program" "begin" statement_list "end"
  statement_list := statement { ";" statement }
  statement      := assignment | if_statement | loop_statement
  assignment     := variable "=" expression
  if_statement   := "if" "(" logic_expr ")" "then" statement
  loop_statement := "loop" "(" logic_expr ")" statement
  logic_expr     := variable ("<" | ">") variable
  expression     := term { ("+" | "-") term }
  term           := factor { ("*" | "/") factor }
  factor         := IDENTIFIER | INT_CONST | "(" expression ")"

Without file arguments, synchk prompts for a file path.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, &fl, args)
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&fl.cfgFile, "config", "", "config file (.toml or .yaml)")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "trace the parser derivation")
	pf.BoolVar(&fl.context, "context", false, "show the source line and a caret below errors")
	pf.BoolVar(&fl.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newCheckCmd(&fl), newTokensCmd(&fl), newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	if err != nil && !errors.Is(err, errRejected) {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "synchk: %v\n", err)
}

// setup loads the configuration and applies command line overrides.
func setup(cmd *cobra.Command, fl *flags) (*env, error) {
	cfg := config.Default()
	if fl.cfgFile != "" {
		var err error
		if cfg, err = config.Load(fl.cfgFile); err != nil {
			return nil, err
		}
	}
	if fl.verbose {
		cfg.Log.Trace = true
	}
	if cmd.Flags().Changed("context") {
		cfg.Report.Context = fl.context
	}
	if fl.noColor {
		cfg.Report.Color = false
	}

	log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	rep := report.New(cmd.OutOrStdout(),
		report.WithColor(cfg.Report.Color),
		report.WithContext(cfg.Report.Context))
	return &env{cfg: cfg, log: log, rep: rep}, nil
}
