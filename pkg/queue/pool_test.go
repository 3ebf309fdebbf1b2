package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolProcessesJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())
	defer pool.Stop()

	var mu sync.Mutex
	done := make(map[string]bool)
	var wg sync.WaitGroup

	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		id := id
		pool.Submit(Job{ID: id, Kind: "test", Run: func(context.Context) error {
			defer wg.Done()
			mu.Lock()
			done[id] = true
			mu.Unlock()
			return nil
		}})
	}

	waitDone(t, &wg)
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, done, 4)
}

func TestPoolSubmitNeverBlocks(t *testing.T) {
	pool := NewPool(1)
	// Not started: submissions must still return immediately.
	for i := 0; i < 1000; i++ {
		pool.Submit(Job{ID: "x", Kind: "test", Run: func(context.Context) error { return nil }})
	}
	_, depth := pool.Health()
	assert.Equal(t, 1000, depth)
}

func TestPoolStopWaitsForInflight(t *testing.T) {
	pool := NewPool(1)
	pool.Start(context.Background())

	started := make(chan struct{})
	var finished bool
	pool.Submit(Job{ID: "slow", Kind: "test", Run: func(context.Context) error {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished = true
		return nil
	}})

	<-started
	pool.Stop()
	assert.True(t, finished, "Stop waits for the running job")
}

func TestPoolHealth(t *testing.T) {
	pool := NewPool(3)
	pool.Start(context.Background())
	defer pool.Stop()

	pool.Submit(Job{ID: "h", Kind: "test", Run: func(context.Context) error { return nil }})

	workers, _ := pool.Health()
	require.Len(t, workers, 3)
	assert.Eventually(t, func() bool {
		workers, _ := pool.Health()
		total := 0
		for _, w := range workers {
			total += w.JobsProcessed
		}
		return total == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func waitDone(t *testing.T, wg *sync.WaitGroup) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for jobs")
	}
}
