/*
Package lines counts the meaningful lines of text files.

A line is meaningful if, after stripping leading white space, it is not
empty and does not start with '#'.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lines

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exercises.lines'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.lines")
}

// ErrIO is part of every error returned for files which cannot be opened
// or read. The error from the file system is retained as well, i.e.
// errors.Is(err, fs.ErrNotExist) works as expected.
var ErrIO = errors.New("lines: I/O error")

// Count returns the number of meaningful lines in the file filename.
func Count(filename string) (n int, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			n, err = 0, fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()
	n, err = CountReader(f)
	tracer().Debugf("%s: %d meaningful lines", filename, n)
	return n, err
}

// CountReader returns the number of meaningful lines read from r.
// Lines may be of any length.
func CountReader(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	count := 0
	for {
		line, err := br.ReadString('\n')
		if meaningful(line) {
			count++
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
}

func meaningful(line string) bool {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	return line != "" && line[0] != '#'
}
