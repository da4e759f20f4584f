// Package result implements a type for the outcome of a computation which
// may fail.
package result

import (
	"errors"

	"github.com/npillmayer/exercises/maybe"
)

// ErrUnknown stands in for a missing error value in Err.
var ErrUnknown = errors.New("result: unknown error")

// Result is either Ok(value) or Err(error).
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful outcome.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil error is treated as failure nonetheless,
// carrying ErrUnknown.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrUnknown
	}
	return result[T]{err: err}
}

// Try lifts a Go-style (value, error) pair into a Result.
//
//	r := result.Try(lines.Count(filename))
func Try[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// ToMaybe drops the error of r.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	if v, err := r.Get(); err == nil {
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Result.Match, to be used as a switch subject.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
