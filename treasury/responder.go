// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"fmt"

	"github.com/luxfi/treasury/crypto"
)

// CreateResponse builds the wallet-side answer to req using kdf as the
// wallet's key-derivation root. nextIndex is an in/out cursor into the
// wallet's derivation space: on success it advances by exactly
// total_coins + group_count, independent of how many workers ran.
//
// If the identity key derived from kdf does not match req.WalletID,
// CreateResponse returns ErrWrongIdentity and the wallet must not transmit
// anything — there is no partial response to discard.
func CreateResponse(req *Request, kdf *crypto.KDF, nextIndex *uint64) (*Response, error) {
	identityPub, identitySec, err := kdf.DerivePoint(TagWalletIdentity, 0)
	if err != nil {
		return nil, fmt.Errorf("derive wallet identity: %w", err)
	}
	if PeerIDFromPoint(identityPub) != req.WalletID {
		return nil, ErrWrongIdentity
	}

	index0 := *nextIndex
	starts := make([]uint64, len(req.Groups))
	n := index0
	for g, grp := range req.Groups {
		starts[g] = n
		n += uint64(len(grp.Coins)) + 1
	}
	total := n - index0

	groups := make([]ResponseGroup, len(req.Groups))
	errs := make([]error, len(req.Groups))
	Run(len(req.Groups), func(g int) {
		groups[g], errs[g] = createResponseGroup(&req.Groups[g], kdf, starts[g])
	})
	for _, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("%w: %v", ErrGroupCreationFailed, e)
		}
	}

	*nextIndex = index0 + total

	resp := &Response{WalletID: req.WalletID, Groups: groups}
	aggMsg := hashAllCommitments(groups)
	aggSig, err := crypto.Sign(identitySec, identityPub, aggMsg)
	if err != nil {
		return nil, fmt.Errorf("sign response: %w", err)
	}
	resp.AggSig = SignatureFromCrypto(aggSig)

	return resp, nil
}

// createResponseGroup derives every coin and the kernel for one request
// group, starting its derivation counter at start. Coins and kernel each
// consume one counter value, in order, so the next group's starting
// counter (start + len(coins) + 1) is fixed independent of execution order.
func createResponseGroup(g *Group, kdf *crypto.KDF, start uint64) (ResponseGroup, error) {
	n := start
	var offset crypto.Scalar

	coins := make([]ResponseCoin, len(g.Coins))
	for i, c := range g.Coins {
		blinding, err := kdf.DeriveScalar(TagOutputBlinding, n)
		if err != nil {
			return ResponseGroup{}, fmt.Errorf("derive output blinding: %w", err)
		}
		n++

		commitment := crypto.Commit(uint64(c.Value), blinding)

		var out Output
		out.SetCommitmentPoint(commitment)
		out.Incubation = c.Incubation

		sig, err := crypto.Sign(blinding, crypto.MulBase(blinding), hashPoint(out.Commitment))
		if err != nil {
			return ResponseGroup{}, fmt.Errorf("sign value proof: %w", err)
		}

		coins[i] = ResponseCoin{Output: out, ValueSig: SignatureFromCrypto(sig)}
		offset = offset.Add(blinding)
	}

	kernelBlinding, err := kdf.DeriveScalar(TagKernelBlinding, n)
	if err != nil {
		return ResponseGroup{}, fmt.Errorf("derive kernel blinding: %w", err)
	}

	excess := crypto.MulBase(kernelBlinding)
	var kernel Kernel
	kernel.Height = HeightRange{Min: HeightGenesis, Max: MaxHeight}
	kernel.SetExcessPoint(excess)

	ksig, err := crypto.Sign(kernelBlinding, excess, hashPoint(kernel.Excess))
	if err != nil {
		return ResponseGroup{}, fmt.Errorf("sign kernel: %w", err)
	}
	kernel.Sig = SignatureFromCrypto(ksig)
	offset = offset.Add(kernelBlinding)

	var base TxBase
	base.SetOffsetScalar(offset.Neg())

	return ResponseGroup{Coins: coins, Base: base, Kernel: kernel}, nil
}
