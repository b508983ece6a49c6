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
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/synchk"
)

func newTokensCmd(fl *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens file",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, fl)
			if err != nil {
				return err
			}
			defer func() { _ = e.log.Sync() }()

			f, err := readFile(args[0])
			if err != nil {
				e.rep.Failure(nil, err)
				return errRejected
			}
			toks, err := synchk.Tokens(f)
			out := cmd.OutOrStdout()
			for _, tok := range toks {
				fmt.Fprintf(out, "%s\t%s\t%s\n", f.Position(tok.Pos), tok.Kind, tok.Lexeme)
			}
			if err != nil {
				e.rep.Failure(f, err)
				return errors.Wrap(errRejected, args[0])
			}
			return nil
		},
	}
}
