// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import "crypto/sha256"

// hashPoint is the message signed by a single coin's value proof (over its
// commitment) and by a kernel's excess signature (over its excess).
func hashPoint(p [32]byte) []byte {
	h := sha256.Sum256(p[:])
	return h[:]
}

// hashAllCommitments is the message signed by a response's aggregate
// signature: the concatenation of every output commitment across every
// group, in declared group/coin order.
func hashAllCommitments(groups []ResponseGroup) []byte {
	h := sha256.New()
	for _, g := range groups {
		for _, c := range g.Coins {
			h.Write(c.Output.Commitment[:])
		}
	}
	return h.Sum(nil)
}
