// Package fanout runs a function over a slice of inputs on a bounded number of
// goroutines and collects the outcomes in input order.
package fanout

import (
	"context"
	"sync"
)

// Outcome is what one call produced.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Each calls fn once per item with at most limit calls in flight. outcomes[i]
// always belongs to items[i].
//
// An item still waiting for a slot when ctx is done is not handed to fn; its
// outcome carries ctx.Err(). Calls already running are left to finish.
// A limit below 1 is treated as 1.
func Each[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Outcome[R] {
	outcomes := make([]Outcome[R], len(items))
	if len(items) == 0 {
		return outcomes
	}
	if limit < 1 {
		limit = 1
	}

	slots := make(chan struct{}, limit)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				outcomes[i].Err = ctx.Err()
				return
			}
			defer func() { <-slots }()

			v, err := fn(ctx, item)
			outcomes[i] = Outcome[R]{Value: v, Err: err}
		}()
	}
	wg.Wait()

	return outcomes
}

// Errors returns just the error of every outcome, in order.
func Errors[R any](outcomes []Outcome[R]) []error {
	errs := make([]error, len(outcomes))
	for i, o := range outcomes {
		errs[i] = o.Err
	}
	return errs
}
