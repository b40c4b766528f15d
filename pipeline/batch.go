package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/flightdesk/core"
)

// Batch runs many queries concurrently over a shared worker pool. Each
// query is an independent orchestrator invocation; the pipeline holds no
// shared mutable state, so no cross-request locking is needed.
type Batch struct {
	orchestrator *Orchestrator
	pool         *ants.Pool
	logger       *slog.Logger
}

// BatchOption configures a Batch.
type BatchOption func(*Batch) error

// WithPoolSize sets the worker pool size for concurrent query processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BatchOption {
	return func(b *Batch) error {
		if size < 1 {
			size = 1
		}

		if b.pool != nil {
			b.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// NewBatch creates a batch runner over the given orchestrator.
func NewBatch(orchestrator *Orchestrator, opts ...BatchOption) (*Batch, error) {
	if orchestrator == nil {
		return nil, ErrOrchestratorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Batch{
		orchestrator: orchestrator,
		pool:         pool,
		logger:       slog.Default().With("component", "batch"),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			b.pool.Release()
			return nil, err
		}
	}

	return b, nil
}

// Run processes every query and returns results in input order. Each query
// gets a well-formed result even when pool submission fails.
func (b *Batch) Run(ctx context.Context, queries []string) []core.PipelineResult {
	results := make([]core.PipelineResult, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		i, query := i, query
		wg.Add(1)
		err := b.pool.Submit(func() {
			defer wg.Done()
			results[i] = b.orchestrator.Run(ctx, query)
		})
		if err != nil {
			wg.Done()
			b.logger.Error("error submitting query to pool", "err", err)
			results[i] = core.PipelineResult{Message: fmt.Sprintf(internalErrorFormat, err)}
		}
	}
	wg.Wait()

	return results
}

// Close releases the worker pool.
func (b *Batch) Close() {
	b.pool.Release()
}
