// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"runtime"
	"sync"

	"github.com/luxfi/treasury/crypto"
)

// partition splits the half-open range [0, n) into at most max contiguous,
// near-equal chunks, matching worker i's share [n*i/k, n*(i+1)/k).
func partition(n, max int) [][2]int {
	if n <= 0 {
		return nil
	}
	k := max
	if k > n {
		k = n
	}
	if k < 1 {
		k = 1
	}

	chunks := make([][2]int, 0, k)
	for i := 0; i < k; i++ {
		start := n * i / k
		end := n * (i + 1) / k
		if end > start {
			chunks = append(chunks, [2]int{start, end})
		}
	}
	return chunks
}

// Run executes fn(i) for every i in [0, n), spread across
// min(n, runtime.GOMAXPROCS(0)) workers each handling a contiguous range.
// It blocks until every worker has returned.
func Run(n int, fn func(i int)) {
	chunks := partition(n, runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for _, c := range chunks {
		lo, hi := c[0], c[1]
		go func() {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}()
	}
	wg.Wait()
}

// VerifyRange runs a verification task, indexed 0..n, across
// min(n, runtime.GOMAXPROCS(0)) workers. Each worker gets its own
// BatchContext (batched proof checks amortize across that worker's slice)
// and writes into its own verdict slot; the overall result is the
// conjunction of every slot, so a single task's failure never needs to
// race a shared flag. fn reports false for any failing task within its
// range; a worker stops attempting further batching-sensitive work for a
// failed task but other tasks in its range still run (failures never
// abort peer tasks, per the task's independence contract).
func VerifyRange(n int, fn func(i int, batch *crypto.BatchContext) bool) bool {
	chunks := partition(n, runtime.GOMAXPROCS(0))

	verdicts := make([]bool, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for idx, c := range chunks {
		idx, lo, hi := idx, c[0], c[1]
		go func() {
			defer wg.Done()
			batch := crypto.NewBatchContext()
			ok := true
			for i := lo; i < hi; i++ {
				if !fn(i, batch) {
					ok = false
				}
			}
			if ok && !batch.Verify() {
				ok = false
			}
			verdicts[idx] = ok
		}()
	}
	wg.Wait()

	for _, v := range verdicts {
		if !v {
			return false
		}
	}
	return true
}
