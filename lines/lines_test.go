package lines

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# a comment
package main

    # an indented comment

import "fmt"   # trailing comments do not matter
func main() {
	fmt.Println("#1")
}
   `

func TestCountReader(t *testing.T) {
	c := []struct {
		text  string
		count int
	}{
		{"", 0},
		{"\n\n\n", 0},
		{"a", 1},
		{"a\nb", 2},
		{"a\nb\n", 2},
		{"#\n#x\n  #y\n", 0},
		{"x#\n", 1},
		{"a\r\n\r\n  \r\nb\r\n", 2},
		{"  text\n", 1},
		{sample, 5},
	}
	for i, x := range c {
		n, err := CountReader(strings.NewReader(x.text))
		if err != nil {
			t.Fatalf("%d: unexpected error: %v", i, err)
		}
		if n != x.count {
			t.Errorf("%d: expected %d meaningful lines, counted %d", i, x.count, n)
		}
	}
}

func TestCountReaderLongLines(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	n, err := CountReader(strings.NewReader(long + "\n#" + long + "\n" + long))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCountReaderError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("a\nb\n"), iotest.ErrReader(boom))
	_, err := CountReader(r)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, boom)
}

func TestCountFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.lines")
	defer teardown()
	//
	filename := filepath.Join(t.TempDir(), "sample.go")
	require.NoError(t, os.WriteFile(filename, []byte(sample), 0o644))
	n, err := Count(filename)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCountMissingFile(t *testing.T) {
	n, err := Count(filepath.Join(t.TempDir(), "no-such-file.txt"))
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCountDirectory(t *testing.T) {
	_, err := Count(t.TempDir())
	assert.ErrorIs(t, err, ErrIO)
}
