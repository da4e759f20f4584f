/*
Package stack implements a persistent, bounded LIFO stack.

Stacks are values. Push and Pop return a new stack and leave the receiver
untouched; the new stack shares all of its cells with the old one:

	s, _ := stack.New("a", "b")
	t, _ := s.Push("c")
	fmt.Println(s, t) // [b a] [c b a]

A stack holds at most MaxCapacity elements. Pushing onto a full stack
fails with ErrFull, popping from an empty one with ErrEmpty.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stack

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/exercises/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'exercises.stack'.
func tracer() tracing.Trace {
	return tracing.Select("exercises.stack")
}

// MaxCapacity is the maximum number of elements of any stack.
const MaxCapacity = 1024

var (
	// ErrFull is returned when pushing onto a stack of MaxCapacity elements.
	ErrFull = errors.New("stack: full")
	// ErrEmpty is returned when popping from an empty stack.
	ErrEmpty = errors.New("stack: empty")
)

// Stack is a persistent stack of elements of type T.
// The zero value is an empty stack.
type Stack[T any] struct {
	top  *cell[T]
	size int
}

type cell[T any] struct {
	value T
	next  *cell[T]
}

// New returns a stack with items pushed from left to right, i.e. the last
// item is on top.
func New[T any](items ...T) (Stack[T], error) {
	var s Stack[T]
	for _, x := range items {
		var err error
		if s, err = s.Push(x); err != nil {
			return Stack[T]{}, err
		}
	}
	return s, nil
}

// Push returns s with x on top.
func (s Stack[T]) Push(x T) (Stack[T], error) {
	if s.IsFull() {
		tracer().Debugf("push onto full stack of size %d", s.size)
		return s, fmt.Errorf("%w: capacity is %d", ErrFull, MaxCapacity)
	}
	return Stack[T]{top: &cell[T]{value: x, next: s.top}, size: s.size + 1}, nil
}

// Pop returns s without its top element, and the top element.
// For an empty stack, Pop returns s unchanged, the zero T and ErrEmpty.
func (s Stack[T]) Pop() (Stack[T], T, error) {
	if s.IsEmpty() {
		var zero T
		return s, zero, ErrEmpty
	}
	return Stack[T]{top: s.top.next, size: s.size - 1}, s.top.value, nil
}

// Peek returns the top element, if any.
func (s Stack[T]) Peek() maybe.Maybe[T] {
	if s.IsEmpty() {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.top.value)
}

func (s Stack[T]) Size() int { return s.size }

func (s Stack[T]) IsEmpty() bool { return s.size == 0 }

func (s Stack[T]) IsFull() bool { return s.size >= MaxCapacity }

// All iterates over the elements from top to bottom.
func (s Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s.top; c != nil; c = c.next {
			if !yield(c.value) {
				return
			}
		}
	}
}

// String lists the elements from top to bottom, e.g. "[c b a]".
func (s Stack[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for x := range s.All() {
		if sb.Len() > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}
