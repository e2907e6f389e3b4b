// Package parallel provides a fan-out/fan-in map over independent inputs.
//
// Every pipeline in this repository parallelizes the same way: a pure
// function applied to each element of a batch, gathered back in input order
// once all workers finish. There is no streaming, no cancellation and no
// partial result; a failing worker fails the whole batch.
package parallel

import (
	"runtime"
	"sync"
)

// Map applies fn to every element of inputs using a fixed-size worker pool
// and returns the results in input order. fn must be safe to call
// concurrently and free of side effects.
func Map[T, R any](inputs []T, fn func(T) R) []R {
	n := len(inputs)
	out := make([]R, n)
	if n == 0 {
		return out
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i, in := range inputs {
			out[i] = fn(in)
		}
		return out
	}

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = fn(inputs[i])
			}
		}()
	}

	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return out
}

// MapErr is Map for functions that can fail. The whole batch runs to
// completion; the first error in input order is returned and the results
// slice is discarded by callers on error.
func MapErr[T, R any](inputs []T, fn func(T) (R, error)) ([]R, error) {
	type outcome struct {
		val R
		err error
	}
	results := Map(inputs, func(in T) outcome {
		v, err := fn(in)
		return outcome{val: v, err: err}
	})

	out := make([]R, len(results))
	for i, r := range results {
		if r.err != nil {
			return nil, r.err
		}
		out[i] = r.val
	}
	return out, nil
}
