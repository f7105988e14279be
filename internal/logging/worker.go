package logging

import (
	"fmt"
	"io"
	"sync"
)

// worker runs sink side effects off the caller's goroutine. Tasks are
// processed one at a time in submission order, which also serializes
// the durable store's read-modify-write appends. Each task runs inside
// its own error boundary: a panic is reported on the fallback writer
// and never reaches logging callers.
type worker struct {
	mu       sync.Mutex
	closed   bool
	tasks    chan func()
	wg       sync.WaitGroup
	fallback io.Writer
}

func newWorker(queueSize int, fallback io.Writer) *worker {
	if queueSize <= 0 {
		queueSize = 256
	}
	w := &worker{
		tasks:    make(chan func(), queueSize),
		fallback: fallback,
	}
	w.wg.Add(1)
	go w.loop()
	return w
}

func (w *worker) loop() {
	defer w.wg.Done()
	for task := range w.tasks {
		w.run(task)
	}
}

func (w *worker) run(task func()) {
	defer func() {
		if r := recover(); r != nil && w.fallback != nil {
			fmt.Fprintf(w.fallback, "logship: background task failed: %v\n", r)
		}
	}()
	task()
}

// submit hands a task to the worker without blocking. When the queue
// is full the task is dropped and noted on the fallback writer; a
// slow store must not stall the caller.
func (w *worker) submit(task func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.tasks <- task:
	default:
		if w.fallback != nil {
			fmt.Fprintln(w.fallback, "logship: background queue full, dropping task")
		}
	}
}

// close stops intake and waits for queued tasks to finish.
func (w *worker) close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.tasks)
	}
	w.mu.Unlock()
	w.wg.Wait()
}
