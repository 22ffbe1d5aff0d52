// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/treasury/crypto"
)

func TestPartitionCoversEveryIndexExactlyOnce(t *testing.T) {
	require := require.New(t)

	for _, n := range []int{0, 1, 2, 7, 100} {
		for _, max := range []int{1, 2, 4, 16} {
			seen := make([]int, n)
			for _, c := range partition(n, max) {
				for i := c[0]; i < c[1]; i++ {
					seen[i]++
				}
			}
			for i, s := range seen {
				require.Equal(1, s, "index %d covered %d times (n=%d, max=%d)", i, s, n, max)
			}
		}
	}
}

func TestRunVisitsEveryIndex(t *testing.T) {
	require := require.New(t)

	n := 257
	var mu sync.Mutex
	seen := make(map[int]bool, n)
	Run(n, func(i int) {
		mu.Lock()
		seen[i] = true
		mu.Unlock()
	})
	require.Len(seen, n)
}

func TestVerifyRangeConjunctionFailsOnAnyFalseTask(t *testing.T) {
	require := require.New(t)

	n := 50
	badIndex := int32(37)
	ok := VerifyRange(n, func(i int, batch *crypto.BatchContext) bool {
		return int32(i) != atomic.LoadInt32(&badIndex)
	})
	require.False(ok)
}

func TestVerifyRangeAllTruePasses(t *testing.T) {
	require := require.New(t)

	ok := VerifyRange(40, func(i int, batch *crypto.BatchContext) bool {
		return true
	})
	require.True(ok)
}

func TestVerifyRangeEmptyIsVacuouslyValid(t *testing.T) {
	require := require.New(t)

	ok := VerifyRange(0, func(i int, batch *crypto.BatchContext) bool {
		t.Fatal("should never be called for n=0")
		return false
	})
	require.True(ok)
}
