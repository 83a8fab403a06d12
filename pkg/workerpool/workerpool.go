// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Process runs a worker pool over the provided work items, invoking process for each.
// If process returns an error, the pool cancels the context and stops further work.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workerCount = workers(workerCount, len(items))
	tasks := make(chan T, workerCount)
	errs := make(chan error, 1)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
							if onCancel != nil {
								onCancel()
							}
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	if err := <-errs; err != nil {
		return err
	}
	return ctx.Err()
}

// Map applies fn to every item using up to workerCount goroutines and
// returns the results in input order. Once ctx is done no further items are
// handed out, and the partially filled result is returned with ctx.Err().
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(T) R) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	indices := make(chan int)
	wg := sync.WaitGroup{}
	for w := workers(workerCount, len(items)); w > 0; w-- {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				out[i] = fn(items[i])
			}
		}()
	}

	var err error
feed:
	for i := range items {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()

	return out, err
}

func workers(requested, items int) int {
	if requested <= 0 {
		requested = 1
	}
	if items > 0 && requested > items {
		return items
	}
	return requested
}
