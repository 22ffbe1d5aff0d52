// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"github.com/luxfi/treasury/crypto"
)

// IsValid reports whether resp is a correct, untampered answer to req. Any
// failure in any check — group counts, kernel shape, a single coin's value
// proof, the group's mass-conservation identity, or the aggregate
// signature — makes the whole response invalid. There is no partial
// acceptance.
func (resp *Response) IsValid(req *Request) bool {
	if resp.WalletID != req.WalletID {
		return false
	}
	if len(resp.Groups) != len(req.Groups) {
		return false
	}

	ok := VerifyRange(len(req.Groups), func(g int, batch *crypto.BatchContext) bool {
		return groupIsValid(&req.Groups[g], &resp.Groups[g], batch)
	})
	if !ok {
		return false
	}

	identity, err := resp.WalletID.Point()
	if err != nil {
		return false
	}
	aggSig, err := resp.AggSig.Decode()
	if err != nil {
		return false
	}
	return crypto.Verify(aggSig, identity, hashAllCommitments(resp.Groups))
}

// groupIsValid checks one response group against its matching request
// group, queueing the kernel's excess signature and every coin's value
// proof into batch rather than verifying them one at a time.
//
// The mass-conservation identity checked here is
//
//	Σ(commitment_i − H·value_i) + G·offset + kernel.excess == 0
//
// which is the identity that actually holds given how the responder
// accumulates offset = −(Σ blinding_i + kernel_blinding) and sets
// kernel.excess = kernel_blinding·G.
func groupIsValid(rq *Group, rg *ResponseGroup, batch *crypto.BatchContext) bool {
	if len(rg.Coins) != len(rq.Coins) {
		return false
	}

	if rg.Kernel.Fee != 0 {
		return false
	}
	if rg.Kernel.Height.Min > HeightGenesis || rg.Kernel.Height.Max != MaxHeight {
		return false
	}

	excess, err := rg.Kernel.ExcessPoint()
	if err != nil {
		return false
	}
	ksig, err := rg.Kernel.Sig.Decode()
	if err != nil {
		return false
	}
	batch.Queue(ksig, excess, hashPoint(rg.Kernel.Excess))

	var sigma crypto.Accumulator
	sigma.Add(crypto.MulBase(rg.Base.OffsetScalar()))
	sigma.Add(excess)

	for i, rc := range rg.Coins {
		c0 := rq.Coins[i]

		if rc.Output.Public || rc.Output.Coinbase {
			return false
		}
		if rc.Output.Incubation != c0.Incubation {
			return false
		}

		commitment, err := rc.Output.CommitmentPoint()
		if err != nil {
			return false
		}
		p := crypto.SubtractValue(commitment, uint64(c0.Value))
		sigma.Add(p)

		vsig, err := rc.ValueSig.Decode()
		if err != nil {
			return false
		}
		batch.Queue(vsig, p, hashPoint(rc.Output.Commitment))
	}

	return sigma.IsZero()
}
