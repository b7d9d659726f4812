package olc

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// parallelFor applies fn to every index in [0, n) and waits for all calls
// to finish. When workers <= 1 it runs inline in the calling goroutine —
// the "sequential fallback" spec §5 requires for implementations without
// data-parallel primitives, and the deterministic mode tests rely on.
// Otherwise it fans the range out across `workers` goroutines via
// errgroup, splitting it into contiguous chunks so each goroutine's writes
// stay index-local and no synchronization is needed beyond the final
// wg/errgroup join — every call site here writes to a distinct slice
// index, mirroring the "append-only, no cell mutated twice" invariant of
// the DP graph layers.
//
// fn must not itself depend on the order in which indices are visited;
// the only ordering guarantee is that parallelFor returns after every call
// has completed.
func parallelFor(n int, workers int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}

		return
	}
	if workers > n {
		workers = n
	}

	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}

			return nil
		})
	}
	// fn never returns an error; the errgroup is only used for its
	// goroutine-fan-out + Wait semantics, not error propagation.
	_ = g.Wait()
}

// parallelForErr is parallelFor's error-propagating sibling, for a
// row/cell computation that can fail; nothing in the package calls it.
// The first error from
// any goroutine is returned; other goroutines still run to completion
// (errgroup does not cancel in-flight work started before an error was
// observed, matching "no cancellation mid-optimize" in spec §5).
func parallelForErr(n int, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}
	if workers > n {
		workers = n
	}

	var (
		mu      sync.Mutex
		firstErr error
	)
	g, _ := errgroup.WithContext(context.Background())
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if start >= n {
			break
		}
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					mu.Unlock()

					return err
				}
			}

			return nil
		})
	}
	_ = g.Wait()

	return firstErr
}
