// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import "crypto/sha256"

// Signature is a Schnorr signature over bn254 G1, proving knowledge of the
// scalar behind a public Point without revealing it. The treasury uses one
// per output (the value proof) and one per kernel (the excess signature).
type Signature struct {
	R Point
	S Scalar
}

// Sign proves knowledge of secret, where pub = secret*G, over msg.
func Sign(secret Scalar, pub Point, msg []byte) (Signature, error) {
	k, err := RandomScalar()
	if err != nil {
		return Signature{}, err
	}

	R := MulBase(k)
	e := challenge(R, pub, msg)
	s := k.Add(e.Mul(secret))

	return Signature{R: R, S: s}, nil
}

// Verify checks a single signature against its claimed public point and
// message. For checking many signatures at once, use BatchContext instead.
func Verify(sig Signature, pub Point, msg []byte) bool {
	e := challenge(sig.R, pub, msg)

	lhs := MulBase(sig.S)
	rhs := sig.R.Add(pub.Mul(e))

	return lhs.Equal(rhs)
}

func challenge(r, pub Point, msg []byte) Scalar {
	h := sha256.New()
	rb := r.Bytes()
	pb := pub.Bytes()
	h.Write(rb[:])
	h.Write(pb[:])
	h.Write(msg)

	var e Scalar
	e.SetBytes(h.Sum(nil))
	return e
}

// BatchContext amortizes many Schnorr verifications — one per coin's value
// proof plus one per kernel excess — across a single worker's slice of
// treasury groups. Every queued equality s*G == R + e*pub is scaled by an
// independent random weight and summed into one combined equality check;
// each queued signature still costs its own scalar multiplications. A forged signature surviving the
// random weighting would require guessing the weight in advance, which is
// negligible, so the batch's single failure still flags the batch invalid.
type BatchContext struct {
	terms []batchTerm
}

type batchTerm struct {
	s   Scalar
	r   Point
	e   Scalar
	pub Point
}

// NewBatchContext creates an empty batch. Callers create one per worker
// before that worker's task loop starts, so batched checks amortize across
// the worker's whole slice of work.
func NewBatchContext() *BatchContext {
	return &BatchContext{}
}

// Queue adds one Schnorr equality to the batch without verifying it yet.
func (b *BatchContext) Queue(sig Signature, pub Point, msg []byte) {
	e := challenge(sig.R, pub, msg)
	b.terms = append(b.terms, batchTerm{s: sig.S, r: sig.R, e: e, pub: pub})
}

// Verify checks every queued equality at once. An empty batch is vacuously
// valid.
func (b *BatchContext) Verify() bool {
	if len(b.terms) == 0 {
		return true
	}

	var lhs, rhs Accumulator
	for _, t := range b.terms {
		lambda, err := RandomScalar()
		if err != nil {
			return false
		}

		lhs.Add(MulBase(t.s.Mul(lambda)))
		rhs.Add(t.r.Mul(lambda))
		rhs.Add(t.pub.Mul(t.e.Mul(lambda)))
	}

	return lhs.Point().Equal(rhs.Point())
}
