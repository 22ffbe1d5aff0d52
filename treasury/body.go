// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/luxfi/log"

	"github.com/luxfi/treasury/crypto"
)

// DefaultMaxBodySize bounds a packed block body's total serialized size.
// Genesis-adjacent issuance blocks carry no other transactions, so the
// whole budget is available to treasury outputs and kernels.
const DefaultMaxBodySize = 2 * 1024 * 1024

// baseBodyOverhead is the framing cost of an otherwise-empty block body
// (header fields other than the variable-width subsidy).
const baseBodyOverhead = 64

func bodyOverhead(subsidy AmountBig) int {
	return baseBodyOverhead + len(subsidy.Bytes())
}

// Body is a packed block body: the flattened outputs and kernels merged
// from every response group that fit within Build's body size budget at one horizon,
// plus the aggregate offset and declared subsidy for the whole body.
type Body struct {
	Subsidy AmountBig      `serialize:"true"`
	Offset  [32]byte       `serialize:"true"`
	Coins   []ResponseCoin `serialize:"true"`
	Kernels []Kernel       `serialize:"true"`
}

// Block pairs a packed body with the height and genesis flag it was
// validated against.
type Block struct {
	Height  Height
	Genesis bool
	Body    *Body
}

// openBody is the packer's in-progress accumulator for one block body; it
// tracks exactly the quantities the projected-size formula needs so they
// never have to be recomputed from scratch after every peer.
type openBody struct {
	subsidy  AmountBig
	offset   crypto.Scalar
	coins    []ResponseCoin
	kernels  []Kernel
	overhead int
	total    int
}

func newOpenBody() *openBody {
	overhead := bodyOverhead(NewAmountBig())
	return &openBody{subsidy: NewAmountBig(), overhead: overhead, total: overhead}
}

func (b *openBody) isEmpty() bool {
	return len(b.coins) == 0 && len(b.kernels) == 0
}

func (b *openBody) merge(g *ResponseGroup, subsidyNext AmountBig, overheadNext, projected int) {
	b.coins = append(b.coins, g.Coins...)
	b.kernels = append(b.kernels, g.Kernel)
	b.offset = b.offset.Add(g.Base.OffsetScalar())
	b.subsidy = subsidyNext
	b.overhead = overheadNext
	b.total = projected
}

func (b *openBody) flush() *Body {
	body := &Body{
		Subsidy: b.subsidy,
		Coins:   b.coins,
		Kernels: b.kernels,
	}
	body.Offset = b.offset.Bytes()
	return body
}

// Build packs every collected response into the sequence of genesis-
// adjacent block bodies the chain boots from, walking group horizons in
// ascending order and peers within a horizon in PeerID order. It returns
// ErrGroupTooLarge if a single group can never fit a body on its own, and
// ErrInvalidGeneratedBlock if a packed body fails post-pack validation.
func (t *Treasury) Build(maxBodySize int) ([]*Block, error) {
	t.mu.Lock()
	peers := t.sortedPeers()
	entries := make(map[PeerID]*Entry, len(peers))
	for _, p := range peers {
		entries[p] = t.entries[p]
	}
	t.mu.Unlock()

	var blocks []*Block
	for horizon := 0; ; horizon++ {
		any := false
		for _, p := range peers {
			if groupAt(entries[p], horizon) != nil {
				any = true
				break
			}
		}
		if !any {
			break
		}

		open := newOpenBody()
		for _, p := range peers {
			e := entries[p]
			rg := groupAt(e, horizon)
			if rg == nil {
				continue
			}
			qg := &e.Request.Groups[horizon]

			for {
				groupValue := qg.Value()
				netto := nettoSize(rg)
				subsidyNext := open.subsidy.addBig(groupValue)
				overheadNext := bodyOverhead(subsidyNext)
				projected := open.total + netto + (overheadNext - open.overhead)

				if projected <= maxBodySize {
					open.merge(rg, subsidyNext, overheadNext, projected)
					break
				}

				if open.isEmpty() {
					return nil, fmt.Errorf("%w: peer group at horizon %d", ErrGroupTooLarge, horizon)
				}
				blocks = append(blocks, &Block{
					Height:  HeightGenesis + Height(len(blocks)),
					Genesis: true,
					Body:    open.flush(),
				})
				open = newOpenBody()
				// retry the same peer against the freshly reset body.
			}
		}
		if !open.isEmpty() {
			blocks = append(blocks, &Block{
				Height:  HeightGenesis + Height(len(blocks)),
				Genesis: true,
				Body:    open.flush(),
			})
		}
	}

	valid := VerifyRange(len(blocks), func(i int, _ *crypto.BatchContext) bool {
		normalize(blocks[i].Body)
		return validateBlock(blocks[i]) == nil
	})
	if !valid {
		return nil, ErrInvalidGeneratedBlock
	}

	t.log.Info("packed treasury entries into blocks",
		log.Int("blocks", len(blocks)),
		log.Int("peers", len(peers)),
	)
	return blocks, nil
}

func groupAt(e *Entry, horizon int) *ResponseGroup {
	if e == nil || e.Response == nil || horizon >= len(e.Response.Groups) {
		return nil
	}
	return &e.Response.Groups[horizon]
}

// addBig returns a+b for two AmountBig accumulators.
func (a AmountBig) addBig(b AmountBig) AmountBig {
	r := a.clone()
	r.v.Add(r.v, b.BigInt())
	return r
}

// normalize sorts a body's coins and kernels into canonical order
// (ascending by their commitment/excess bytes), matching the chain's usual
// transaction-merge convention. The aggregate offset is unaffected by
// reordering since it is already a single accumulated scalar.
func normalize(b *Body) {
	sort.Slice(b.Coins, func(i, j int) bool {
		return bytes.Compare(b.Coins[i].Output.Commitment[:], b.Coins[j].Output.Commitment[:]) < 0
	})
	sort.Slice(b.Kernels, func(i, j int) bool {
		return bytes.Compare(b.Kernels[i].Excess[:], b.Kernels[j].Excess[:]) < 0
	})
}

// validateBlock is the chain's genesis-block validity predicate: a packed
// block must carry the genesis flag, at least one kernel and at least one
// output, and satisfy the same mass-conservation identity as a single group,
// summed across every coin and kernel the body carries:
//
//	Σ(commitments) − H·subsidy + G·offset + Σ(kernel excess) == 0
//
// This is the body-level counterpart of groupIsValid's check, re-derived
// here rather than assumed, since Build merges groups from potentially many
// peers and a wrong subsidy or corrupted offset would otherwise slip
// through unnoticed. It does not re-check the body's serialized size
// against the budget, and it does not count kernels per merged group.
func validateBlock(b *Block) error {
	if !b.Genesis {
		return fmt.Errorf("treasury: block %d missing genesis flag", b.Height)
	}
	if len(b.Body.Kernels) == 0 {
		return fmt.Errorf("treasury: block %d has no kernels", b.Height)
	}
	if len(b.Body.Coins) == 0 {
		return fmt.Errorf("treasury: block %d has no outputs", b.Height)
	}

	var offset crypto.Scalar
	offset.SetBytes(b.Body.Offset[:])

	var sigma crypto.Accumulator
	sigma.Add(crypto.MulBase(offset))
	sigma.Sub(crypto.ValueTermBig(b.Body.Subsidy.BigInt()))

	for i := range b.Body.Kernels {
		excess, err := b.Body.Kernels[i].ExcessPoint()
		if err != nil {
			return fmt.Errorf("treasury: block %d kernel %d: %w", b.Height, i, err)
		}
		sigma.Add(excess)
	}
	for i := range b.Body.Coins {
		commitment, err := b.Body.Coins[i].Output.CommitmentPoint()
		if err != nil {
			return fmt.Errorf("treasury: block %d coin %d: %w", b.Height, i, err)
		}
		sigma.Add(commitment)
	}

	if !sigma.IsZero() {
		return fmt.Errorf("treasury: block %d fails mass conservation", b.Height)
	}
	return nil
}
