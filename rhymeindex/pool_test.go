package rhymeindex

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsJobs(t *testing.T) {
	p := NewWorkerPool(4, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	var ran atomic.Int32
	const jobs = 100
	for range jobs {
		err := p.Submit(ctx, func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
		require.NoError(t, err)
	}
	p.Close()
	assert.EqualValues(t, jobs, ran.Load())
}

func TestSubmitAfterClose(t *testing.T) {
	p := NewWorkerPool(1, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	p.Close()
	err := p.Submit(ctx, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	p := NewWorkerPool(2, 0)
	p.Start(context.Background())
	p.Close()
	p.Close()
}

func TestSubmitUnblocksOnCancel(t *testing.T) {
	p := NewWorkerPool(1, 1) // workers never started, queue fills at once
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Submit(ctx, func(ctx context.Context) error { return nil }))

	errc := make(chan error, 1)
	go func() {
		errc <- p.Submit(ctx, func(ctx context.Context) error { return nil })
	}()
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Submit did not return after cancel")
	}
}
