// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"fmt"

	"github.com/luxfi/treasury/crypto"
)

// Signature is a Schnorr signature in its canonical 64-byte wire form, kept
// as two fixed-size arrays so the codec serializes it byte-exact without
// reaching into crypto's unexported field representation.
type Signature struct {
	R [32]byte `serialize:"true"`
	S [32]byte `serialize:"true"`
}

// SignatureFromCrypto packs a crypto.Signature into its wire form.
func SignatureFromCrypto(sig crypto.Signature) Signature {
	var w Signature
	w.R = sig.R.Bytes()
	w.S = sig.S.Bytes()
	return w
}

// Decode unpacks a wire signature back into crypto.Signature.
func (s Signature) Decode() (crypto.Signature, error) {
	var sig crypto.Signature
	if err := sig.R.SetBytes(s.R[:]); err != nil {
		return crypto.Signature{}, fmt.Errorf("decode signature nonce: %w", err)
	}
	sig.S.SetBytes(s.S[:])
	return sig, nil
}

// Output is a treasury-issued coin: a Pedersen commitment hiding its value,
// plus the incubation height below which it cannot be spent. Treasury
// outputs are always private (no cleartext value) and never coinbase.
type Output struct {
	Commitment [32]byte `serialize:"true"`
	Incubation Height   `serialize:"true"`
	Public     bool     `serialize:"true"`
	Coinbase   bool     `serialize:"true"`
}

// CommitmentPoint decodes the output's commitment.
func (o *Output) CommitmentPoint() (crypto.Point, error) {
	var p crypto.Point
	if err := p.SetBytes(o.Commitment[:]); err != nil {
		return crypto.Point{}, fmt.Errorf("decode output commitment: %w", err)
	}
	return p, nil
}

// SetCommitmentPoint stores p as the output's commitment.
func (o *Output) SetCommitmentPoint(p crypto.Point) {
	o.Commitment = p.Bytes()
}

// ResponseCoin pairs one output with the signature proving its commitment
// encodes exactly the value promised by the matching Request.Coin.
type ResponseCoin struct {
	Output   Output    `serialize:"true"`
	ValueSig Signature `serialize:"true"`
}

// Kernel is a no-op transaction kernel: zero fee, the unbounded height
// range, carrying an excess point and the signature proving knowledge of
// the blinding scalar behind it. It exists solely to give a response group
// a transaction identity.
type Kernel struct {
	Fee    Amount      `serialize:"true"`
	Height HeightRange `serialize:"true"`
	Excess [32]byte    `serialize:"true"`
	Sig    Signature   `serialize:"true"`
}

// ExcessPoint decodes the kernel's excess.
func (k *Kernel) ExcessPoint() (crypto.Point, error) {
	var p crypto.Point
	if err := p.SetBytes(k.Excess[:]); err != nil {
		return crypto.Point{}, fmt.Errorf("decode kernel excess: %w", err)
	}
	return p, nil
}

// SetExcessPoint stores p as the kernel's excess.
func (k *Kernel) SetExcessPoint(p crypto.Point) {
	k.Excess = p.Bytes()
}

// TxBase carries a group's published blinding-sum offset: the negation of
// the sum of every blinding factor (outputs and kernel) produced for the
// group, letting a verifier cancel the G·blinding terms without learning
// any individual blinding factor.
type TxBase struct {
	Offset [32]byte `serialize:"true"`
}

// OffsetScalar decodes the base's offset.
func (b *TxBase) OffsetScalar() crypto.Scalar {
	var s crypto.Scalar
	s.SetBytes(b.Offset[:])
	return s
}

// SetOffsetScalar stores s as the base's offset.
func (b *TxBase) SetOffsetScalar(s crypto.Scalar) {
	b.Offset = s.Bytes()
}

// ResponseGroup is one request group's answer: one response coin per
// request coin, in the same order, plus the base and kernel that give the
// group its transaction identity.
type ResponseGroup struct {
	Coins  []ResponseCoin `serialize:"true"`
	Base   TxBase         `serialize:"true"`
	Kernel Kernel         `serialize:"true"`
}

// Response is a wallet's complete answer to a Request: one group per
// request group, plus an aggregate signature over every output commitment
// in group/coin order, proving the whole response came from the wallet
// holding the identity key behind wallet_id.
type Response struct {
	WalletID PeerID          `serialize:"true"`
	Groups   []ResponseGroup `serialize:"true"`
	AggSig   Signature       `serialize:"true"`
}
