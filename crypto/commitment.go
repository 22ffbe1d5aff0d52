// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

var (
	baseG = generator()
	baseH = deriveH()
)

// deriveH picks the commitment scheme's second generator by hashing a fixed
// domain string onto G1: nobody, including this code, ever learns the
// discrete log relating G and H.
func deriveH() Point {
	h, err := bn254.HashToG1([]byte("luxfi-treasury/pedersen-generator-H/v1"), []byte("luxfi-treasury/pedersen-generator-H"))
	if err != nil {
		panic(err)
	}
	return Point{p: h}
}

// G returns the commitment scheme's blinding generator.
func G() Point { return baseG }

// H returns the commitment scheme's value generator.
func H() Point { return baseH }

// Commit returns the Pedersen commitment blinding*G + value*H.
func Commit(value uint64, blinding Scalar) Point {
	return MulBase(blinding).Add(ValueTerm(value))
}

// ValueTerm returns value*H.
func ValueTerm(value uint64) Point {
	var v Scalar
	v.SetUint64(value)
	return H().Mul(v)
}

// ValueTermBig returns value*H for an arbitrary-precision non-negative value.
func ValueTermBig(value *big.Int) Point {
	var v Scalar
	v.SetBigInt(value)
	return H().Mul(v)
}

// SubtractValue returns commitment - value*H: if commitment truly encodes
// value, this is exactly blinding*G for the commitment's blinding factor.
func SubtractValue(commitment Point, value uint64) Point {
	return commitment.Add(ValueTerm(value).Neg())
}

// Accumulator sums a running set of points, used to check a group's or a
// block body's mass-conservation identity without materializing the sum's
// terms anywhere except inside this accumulator.
type Accumulator struct {
	p Point
}

// Add folds p into the running sum.
func (a *Accumulator) Add(p Point) {
	a.p = a.p.Add(p)
}

// Sub subtracts p from the running sum.
func (a *Accumulator) Sub(p Point) {
	a.p = a.p.Add(p.Neg())
}

// IsZero reports whether the running sum is the group identity.
func (a *Accumulator) IsZero() bool {
	return a.p.IsIdentity()
}

// Point returns the accumulator's current running sum.
func (a *Accumulator) Point() Point {
	return a.p
}
