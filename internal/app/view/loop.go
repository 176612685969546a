package view

import (
	"context"
	"sync"
)

type task struct {
	fn   func()
	done chan struct{}
}

// Loop is an Executor backed by one dedicated goroutine
type Loop struct {
	tasks   chan task
	stopped chan struct{}
	once    sync.Once
}

// NewLoop creates a loop; call Run to start serving tasks
func NewLoop() *Loop {
	return &Loop{
		tasks:   make(chan task),
		stopped: make(chan struct{}),
	}
}

// Run serves tasks until the context is cancelled or Stop is called
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return
		case <-l.stopped:
			return
		case t := <-l.tasks:
			t.fn()
			close(t.done)
		}
	}
}

// Exec hands fn to the loop goroutine and waits for it to finish
func (l *Loop) Exec(fn func()) bool {
	t := task{fn: fn, done: make(chan struct{})}

	select {
	case l.tasks <- t:
	case <-l.stopped:
		return false
	}

	<-t.done

	return true
}

// Stop makes pending and future Exec calls return false
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.stopped) })
}
