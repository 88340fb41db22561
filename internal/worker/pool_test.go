package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	require.NoError(t, pool.Enqueue(context.Background(), job))
	require.NoError(t, pool.Enqueue(context.Background(), job))

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, 5*time.Millisecond)

	pool.Stop()
}

func TestPool_SingleWorkerKeepsOrder(t *testing.T) {
	pool := NewPool(1, 100)
	pool.Start()
	defer pool.Stop()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
			defer wg.Done()
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})))
	}
	wg.Wait()

	for i := range order {
		assert.Equal(t, i, order[i])
	}
}

func TestPool_FailingJobDoesNotStopWorker(t *testing.T) {
	pool := NewPool(1, 4)
	pool.Start()
	defer pool.Stop()

	ran := make(chan struct{})
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})))
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
		close(ran)
		return nil
	})))

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("second job never ran")
	}
}

func TestPool_EnqueueAfterStop(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()
	pool.Stop()

	err := pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, ErrPoolStopped)

	// stopping twice is harmless
	pool.Stop()
}

func TestPool_EnqueueRespectsContext(t *testing.T) {
	pool := NewPool(1, 0)
	// not started: nobody drains the unbuffered queue
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := pool.Enqueue(ctx, JobFunc(func(ctx context.Context) error { return nil }))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	pool.Stop()
}

func TestPool_ShutdownTimeoutCancelsJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	started := make(chan struct{})
	cancelled := make(chan struct{})
	require.NoError(t, pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return ctx.Err()
	})))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, pool.Shutdown(ctx), context.DeadlineExceeded)

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	pool := NewPool(4, 8)
	pool.Start()
	for i := 0; i < 8; i++ {
		_ = pool.Enqueue(context.Background(), JobFunc(func(ctx context.Context) error { return nil }))
	}
	require.NoError(t, pool.Shutdown(context.Background()))
}
