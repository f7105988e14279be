package logging

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"
)

func TestWorkerRunsTasksInOrder(t *testing.T) {
	w := newWorker(16, nil)
	var order []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		w.submit(func() { order = append(order, i) })
	}
	w.submit(func() { close(done) })
	<-done
	w.close()

	if len(order) != 5 {
		t.Fatalf("expected 5 tasks run, got %d", len(order))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("task order = %v", order)
		}
	}
}

func TestWorkerRecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	w := newWorker(4, &buf)
	w.submit(func() { panic("sink exploded") })

	var ran atomic.Bool
	w.submit(func() { ran.Store(true) })
	w.close()

	if !ran.Load() {
		t.Fatal("expected worker to continue after a panic")
	}
	if !strings.Contains(buf.String(), "sink exploded") {
		t.Fatalf("expected panic reported on fallback, got %q", buf.String())
	}
}

func TestWorkerSubmitAfterCloseIsNoop(t *testing.T) {
	w := newWorker(4, nil)
	w.close()
	w.submit(func() { t.Error("task must not run after close") })
}
