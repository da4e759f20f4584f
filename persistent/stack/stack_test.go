package stack

import (
	"errors"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyStack(t *testing.T) {
	var s Stack[string]
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsFull())
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, "[]", s.String())
	assert.False(t, s.Peek().IsJust())

	popped, x, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, "", x)
	assert.True(t, popped.IsEmpty())
}

func TestPushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.stack")
	defer teardown()
	//
	s, err := New("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, "[c b a]", s.String())
	assert.Equal(t, "c", s.Peek().WithDefault(""))

	var popped []string
	for !s.IsEmpty() {
		var x string
		s, x, err = s.Pop()
		require.NoError(t, err)
		popped = append(popped, x)
	}
	assert.Equal(t, []string{"c", "b", "a"}, popped)
	_, _, err = s.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestStackIsPersistent(t *testing.T) {
	s, err := New(1, 2)
	require.NoError(t, err)
	t1, err := s.Push(3)
	require.NoError(t, err)
	t2, _, err := s.Pop()
	require.NoError(t, err)

	assert.Equal(t, "[2 1]", s.String())
	assert.Equal(t, "[3 2 1]", t1.String())
	assert.Equal(t, "[1]", t2.String())
	assert.Same(t, s.top, t1.top.next, "push shares the cells below")
	assert.Same(t, s.top.next, t2.top, "pop shares the cells below")
}

func TestCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "exercises.stack")
	defer teardown()
	tracer().SetTraceLevel(tracing.LevelError)
	//
	var s Stack[int]
	var err error
	for i := 0; i < MaxCapacity; i++ {
		if s, err = s.Push(i); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}
	assert.True(t, s.IsFull())
	assert.Equal(t, MaxCapacity, s.Size())

	full, err := s.Push(-1)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, s, full, "failed push returns the receiver")
	assert.Equal(t, MaxCapacity-1, s.Peek().WithDefault(-1))

	_, err = New(make([]int, MaxCapacity+1)...)
	assert.True(t, errors.Is(err, ErrFull))

	less, _, err := s.Pop()
	require.NoError(t, err)
	assert.False(t, less.IsFull())
}

func TestAllStopsEarly(t *testing.T) {
	s, err := New("a", "b", "c", "d")
	require.NoError(t, err)
	var seen []string
	for x := range s.All() {
		seen = append(seen, x)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"d", "c"}, seen)
	assert.Equal(t, []string{"d", "c", "b", "a"}, slices.Collect(s.All()))
}

func TestStackProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("pop undoes push", prop.ForAll(
		func(xs []int, x int) bool {
			s, err := New(xs...)
			if err != nil {
				return false
			}
			pushed, err := s.Push(x)
			if err != nil {
				return false
			}
			back, top, err := pushed.Pop()
			return err == nil && top == x && back.Size() == s.Size() &&
				slices.Equal(slices.Collect(back.All()), slices.Collect(s.All()))
		},
		gen.SliceOf(gen.Int()),
		gen.Int(),
	))
	properties.Property("elements come out in reverse order", prop.ForAll(
		func(xs []int) bool {
			s, err := New(xs...)
			if err != nil {
				return false
			}
			out := slices.Collect(s.All())
			slices.Reverse(out)
			return s.Size() == len(xs) && slices.Equal(out, xs)
		},
		gen.SliceOf(gen.Int()),
	))
	properties.TestingRun(t)
}
