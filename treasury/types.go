// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"math/big"

	"github.com/luxfi/treasury/crypto"
)

// PeerID is the opaque 32-byte public identity of a beneficiary wallet: the
// compressed encoding of the wallet's identity point, derived at TagWalletIdentity.
type PeerID [32]byte

// Point decodes p as a commitment-group point.
func (p PeerID) Point() (crypto.Point, error) {
	var pt crypto.Point
	if err := pt.SetBytes(p[:]); err != nil {
		return crypto.Point{}, err
	}
	return pt, nil
}

// PeerIDFromPoint encodes a point as a PeerID.
func PeerIDFromPoint(p crypto.Point) PeerID {
	var id PeerID
	b := p.Bytes()
	copy(id[:], b[:])
	return id
}

// Amount is a 64-bit unsigned coin value.
type Amount uint64

// AmountBig is an arbitrary-precision non-negative accumulator over Amount,
// used for a block body's total subsidy once many coins have been summed.
type AmountBig struct {
	v *big.Int
}

// NewAmountBig returns a zero-valued accumulator.
func NewAmountBig() AmountBig {
	return AmountBig{v: new(big.Int)}
}

// Add returns a copy of a with v added; a itself is left unmodified.
func (a AmountBig) Add(v Amount) AmountBig {
	r := a.clone()
	r.v.Add(r.v, new(big.Int).SetUint64(uint64(v)))
	return r
}

func (a AmountBig) clone() AmountBig {
	if a.v == nil {
		return NewAmountBig()
	}
	return AmountBig{v: new(big.Int).Set(a.v)}
}

// BigInt returns a's value.
func (a AmountBig) BigInt() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

// Bytes returns a's big-endian magnitude, with no leading zero byte.
func (a AmountBig) Bytes() []byte {
	if a.v == nil {
		return nil
	}
	return a.v.Bytes()
}

// Cmp compares a and b, using big.Int's Cmp convention.
func (a AmountBig) Cmp(b AmountBig) int {
	return a.BigInt().Cmp(b.BigInt())
}

func (a AmountBig) String() string {
	if a.v == nil {
		return "0"
	}
	return a.v.String()
}

// Height is a 64-bit block index.
type Height uint64

const (
	// HeightGenesis is the smallest valid block height.
	HeightGenesis Height = 0
	// MaxHeight is the sentinel meaning "no upper bound".
	MaxHeight Height = ^Height(0)
)

// HeightRange is an inclusive [Min, Max] block-height window.
type HeightRange struct {
	Min Height `serialize:"true"`
	Max Height `serialize:"true"`
}

// blocksPerDay assumes one-minute blocks, matching the default Parameters'
// "≈30 days" / "≈90 days" / "≈5 years" framing in the issuance schedule.
const blocksPerDay Height = 24 * 60

// Parameters controls how CreatePlan lays out an issuance schedule.
type Parameters struct {
	// StepMin is the height stride between consecutive coins.
	StepMin Height
	// MaxDiffPerBlock bounds how wide (in height) a single group may span
	// before the plan opens a new group.
	MaxDiffPerBlock Height
	// MaxHeight is the height at which the schedule stops emitting coins.
	MaxHeight Height
}

// DefaultParameters returns the issuance defaults: a coin roughly every 30
// days, grouped in ~90-day batches, vesting over a 5-year (360-day year)
// plan.
func DefaultParameters() Parameters {
	return Parameters{
		StepMin:         30 * blocksPerDay,
		MaxDiffPerBlock: 90 * blocksPerDay,
		MaxHeight:       5 * 360 * blocksPerDay,
	}
}
