package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/exercises/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7)
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Errorf("expected Ok(7) not to match Err, got %v", e)
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Errorf("expected Err not to match Ok, got %d", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultTry(t *testing.T) {
	r := Try(strconv.Atoi("12"))
	if n, err := r.Get(); err != nil || n != 12 {
		t.Errorf("expected Try(Atoi(12)) to be Ok(12), is (%d, %v)", n, err)
	}
	r = Try(strconv.Atoi("twelve"))
	if _, err := r.Get(); err == nil {
		t.Error("expected Try(Atoi(twelve)) to be an Err, isn't")
	}
	if r.WithDefault(-1) != -1 {
		t.Errorf("expected Err to default to -1, is %d", r.WithDefault(-1))
	}
}

func TestResultErrWithNil(t *testing.T) {
	r := Err[string](nil)
	if _, err := r.Get(); !errors.Is(err, ErrUnknown) {
		t.Errorf("expected Err(nil) to carry ErrUnknown, carries %v", err)
	}
}

func TestResultToMaybe(t *testing.T) {
	if !ToMaybe(Ok("x")).IsJust() {
		t.Error("expected Ok to convert to Just")
	}
	if ToMaybe(Err[string](errors.New("x"))).IsJust() {
		t.Error("expected Err to convert to Nothing")
	}
}
