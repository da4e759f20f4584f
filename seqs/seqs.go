/*
Package seqs has helpers for searching and generating sequences.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seqs

import (
	"iter"
	"math"
	"strings"

	"github.com/npillmayer/exercises/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exercises.seqs'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.seqs")
}

// First returns the first element of xs satisfying pred, or Nothing.
// pred is not called for elements following the first match.
func First[T any](xs []T, pred func(T) bool) maybe.Maybe[T] {
	for i, x := range xs {
		if pred(x) {
			tracer().Debugf("first match at index %d", i)
			return maybe.Just(x)
		}
	}
	return maybe.Nothing[T]()
}

// FirstThenApply returns f applied to the first element of xs satisfying
// pred, or Nothing.
func FirstThenApply[T, U any](xs []T, pred func(T) bool, f func(T) U) maybe.Maybe[U] {
	return maybe.Map(f, First(xs, pred))
}

// FirstThenLowerCase returns a lower-case copy of the first string in xs
// satisfying pred, or Nothing.
func FirstThenLowerCase(xs []string, pred func(string) bool) maybe.Maybe[string] {
	return FirstThenApply(xs, pred, strings.ToLower)
}

// Powers yields base⁰, base¹, base², … as long as the values do not exceed
// limit. For a negative limit nothing is yielded. Iteration ends before an
// int overflow would occur.
//
//	for p := range seqs.Powers(2, 70) { … } // 1 2 4 8 16 32 64
func Powers(base, limit int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for p := 1; p <= limit; {
			if !yield(p) {
				return
			}
			if base == 1 || p == 0 {
				return
			}
			if overflows(p, base) {
				return
			}
			p *= base
		}
	}
}

func overflows(p, base int) bool {
	switch {
	case base == 0 || base == 1 || base == -1:
		return false
	case p > 0 && base > 0:
		return p > math.MaxInt/base
	case p > 0 && base < 0:
		return p > math.MinInt/base
	case p < 0 && base > 0:
		return p < math.MinInt/base
	default: // p < 0 && base < 0
		return p < math.MaxInt/base
	}
}
