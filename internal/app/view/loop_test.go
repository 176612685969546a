package view

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Loop_ExecRunsOnLoopGoroutine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := NewLoop()
	go loop.Run(ctx)

	ran := false
	ok := loop.Exec(func() { ran = true })

	assert.True(t, ok)
	assert.True(t, ran)
}

func Test_Loop_SerializesTasks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := NewLoop()
	go loop.Run(ctx)

	var (
		wg      sync.WaitGroup
		running int
		maxSeen int
	)

	for i := 0; i < 20; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			loop.Exec(func() {
				running++
				if running > maxSeen {
					maxSeen = running
				}
				running--
			})
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func Test_Loop_StopRejectsTasks(t *testing.T) {
	loop := NewLoop()
	loop.Stop()
	loop.Stop()

	ran := false
	ok := loop.Exec(func() { ran = true })

	assert.False(t, ok)
	assert.False(t, ran)
}

func Test_Loop_StopUnblocksWaitingExec(t *testing.T) {
	loop := NewLoop()

	result := make(chan bool, 1)

	go func() {
		result <- loop.Exec(func() {})
	}()

	time.Sleep(10 * time.Millisecond)
	loop.Stop()

	select {
	case ok := <-result:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("Exec did not return after Stop")
	}
}

func Test_Loop_ContextCancelStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop()

	done := make(chan struct{})

	go func() {
		loop.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assert.False(t, loop.Exec(func() {}))
}
