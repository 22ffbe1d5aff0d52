// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

// Coin is a single promise within a Request group: issue Value units whose
// output becomes spendable no earlier than height Incubation.
type Coin struct {
	Value      Amount `serialize:"true"`
	Incubation Height `serialize:"true"`
}

// Group is an ordered list of coins that will be offered to the block
// packer together. Coins within a group share serialization locality; they
// are never split across blocks at different horizons.
type Group struct {
	Coins []Coin `serialize:"true"`
}

// Request is the issuer-authored side of one beneficiary's issuance
// ceremony: an immutable vesting schedule keyed to a wallet identity. Once
// created, a Request is never mutated in place; CreatePlan replaces it
// wholesale.
type Request struct {
	WalletID PeerID  `serialize:"true"`
	Groups   []Group `serialize:"true"`
}

// TotalCoins returns the number of coins across every group.
func (r *Request) TotalCoins() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Coins)
	}
	return n
}

// Value returns the sum of a group's coin values.
func (g *Group) Value() AmountBig {
	total := NewAmountBig()
	for _, c := range g.Coins {
		total = total.Add(c.Value)
	}
	return total
}

// GroupValue returns the sum of coin values in group g.
func (r *Request) GroupValue(g int) AmountBig {
	return r.Groups[g].Value()
}
