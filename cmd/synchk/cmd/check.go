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

package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/db47h/synchk"
	"github.com/db47h/synchk/internal/logging"
	"github.com/db47h/synchk/parser"
	"github.com/db47h/synchk/token"
)

const promptMsg = "Enter program file path: "

func newCheckCmd(fl *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check source files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, fl, args)
		},
	}
}

func runCheck(cmd *cobra.Command, fl *flags, args []string) error {
	e, err := setup(cmd, fl)
	if err != nil {
		return err
	}
	defer func() { _ = e.log.Sync() }()

	if len(args) == 0 {
		path, err := prompt(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		args = []string{path}
	}

	failed := 0
	for _, path := range args {
		if !e.checkFile(path) {
			failed++
		}
	}
	if failed > 0 {
		return errors.Wrapf(errRejected, "%d of %d files", failed, len(args))
	}
	return nil
}

// prompt asks for a single file path.
func prompt(in io.Reader, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, promptMsg); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "read file path")
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no file path given")
	}
	return path, nil
}

// checkFile runs a checking session on the file at path and reports the
// outcome. It returns true if the file was accepted.
func (e *env) checkFile(path string) bool {
	log := logging.Session(e.log, path)
	f, err := readFile(path)
	if err != nil {
		log.Debug("read failed", zap.Error(err))
		e.rep.Failure(nil, err)
		return false
	}

	var opts []parser.Option
	if e.cfg.Log.Trace {
		opts = append(opts, parser.WithLogger(log))
	}
	start := time.Now()
	err = synchk.Check(f, opts...)
	log.Debug("checked",
		zap.Int("size", f.Size()),
		zap.Int("lines", f.LineCount()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Bool("accepted", err == nil))
	if err != nil {
		e.rep.Failure(f, err)
		return false
	}
	e.rep.Success(path)
	return true
}

func readFile(path string) (*token.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading from file")
	}
	defer fh.Close()
	return synchk.ReadSource(path, fh)
}
