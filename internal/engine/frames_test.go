package engine

import (
	"reflect"
	"testing"
)

func TestFrameQueueOrderAndCancel(t *testing.T) {
	q := NewFrameQueue(func() float64 { return 42 })
	var got []string

	q.RequestFrame(func(float64) { got = append(got, "a") })
	b := q.RequestFrame(func(float64) { got = append(got, "b") })
	q.RequestFrame(func(float64) { got = append(got, "c") })
	q.CancelFrame(b)
	q.CancelFrame(999)

	if n := q.Fire(16); n != 2 {
		t.Fatalf("Fire ran %d callbacks, want 2", n)
	}
	if !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("callbacks ran as %v", got)
	}
	if q.Now() != 42 {
		t.Errorf("Now() = %v", q.Now())
	}
}

func TestFrameQueueDefersNestedRequests(t *testing.T) {
	q := NewFrameQueue(func() float64 { return 0 })
	runs := 0

	var loop FrameFunc
	loop = func(float64) {
		runs++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	q.Fire(0)
	q.Fire(16)
	if runs != 2 {
		t.Errorf("expected one run per Fire, got %d", runs)
	}
	if q.Pending() != 1 {
		t.Errorf("expected one pending frame, got %d", q.Pending())
	}
}

func TestFrameQueuePassesTimestamp(t *testing.T) {
	q := NewFrameQueue(func() float64 { return 0 })
	var seen float64
	q.RequestFrame(func(now float64) { seen = now })
	q.Fire(123.5)
	if seen != 123.5 {
		t.Errorf("callback saw %v, want 123.5", seen)
	}
	if q.Fire(200) != 0 {
		t.Error("empty queue should run nothing")
	}
}
