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

package synchk_test

import (
	"fmt"
	"strings"

	"github.com/db47h/synchk"
)

func ExampleCheckReader() {
	src := `program begin
  if (x < y) then
    loop (a > b) z = z + 1;
  x = x * (y - 2)
end
`
	if err := synchk.CheckReader("good.txt", strings.NewReader(src)); err != nil {
		fmt.Println(err)
	} else {
		fmt.Println("No syntax errors reported")
	}

	err := synchk.CheckReader("bad.txt", strings.NewReader("program begin\n  x = 1\nend y\n"))
	fmt.Println(err)

	// Output:
	// No syntax errors reported
	// bad.txt:3:5: syntax error: expected EndOfFile, found Identifier "y"
}
