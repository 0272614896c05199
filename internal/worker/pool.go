package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Task represents a unit of work processed by the pool.
type Task[T any, R any] struct {
	Input  T
	Result R
	Err    error
}

// ProcessFunc is the function signature for processing a single input.
type ProcessFunc[T any, R any] func(ctx context.Context, input T) (R, error)

// Pool is a generic worker pool with a fixed concurrency bound.
type Pool[T any, R any] struct {
	workers int
	process ProcessFunc[T, R]
	logger  zerolog.Logger
}

// NewPool creates a worker pool running fn with the given concurrency.
func NewPool[T any, R any](workers int, fn ProcessFunc[T, R], logger zerolog.Logger) *Pool[T, R] {
	if workers < 1 {
		workers = 1
	}
	return &Pool[T, R]{
		workers: workers,
		process: fn,
		logger:  logger,
	}
}

// Execute runs all inputs through the pool and returns one Task per input,
// in input order. Cancelling ctx stops workers; tasks not yet processed are
// returned with zero results.
func (p *Pool[T, R]) Execute(ctx context.Context, inputs []T) []Task[T, R] {
	results := make([]Task[T, R], len(inputs))
	for i := range inputs {
		results[i].Input = inputs[i]
	}

	indexCh := make(chan int, len(inputs))
	for i := range inputs {
		indexCh <- i
	}
	close(indexCh)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case idx, ok := <-indexCh:
					if !ok {
						return
					}
					result, err := p.process(ctx, inputs[idx])
					results[idx].Result = result
					results[idx].Err = err
					if err != nil {
						p.logger.Error().Err(err).Int("worker", workerID).Int("index", idx).Msg("Task failed")
					}
				}
			}
		}(w)
	}

	wg.Wait()
	return results
}
