// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// Point is an element of the bn254 G1 group. Pedersen commitments, kernel
// excesses, and signature nonces/public keys are all Points.
type Point struct {
	p bn254.G1Affine
}

var identity Point

// Add returns a+b.
func (a Point) Add(b Point) Point {
	var r Point
	r.p.Add(&a.p, &b.p)
	return r
}

// Neg returns -a.
func (a Point) Neg() Point {
	var r Point
	r.p.Neg(&a.p)
	return r
}

// Mul returns s*a.
func (a Point) Mul(s Scalar) Point {
	var r Point
	r.p.ScalarMultiplication(&a.p, s.BigInt())
	return r
}

// MulBase returns s*G, the group's base generator.
func MulBase(s Scalar) Point {
	var r Point
	r.p.ScalarMultiplicationBase(s.BigInt())
	return r
}

// Equal reports whether a and b are the same point.
func (a Point) Equal(b Point) bool {
	return a.p.Equal(&b.p)
}

// IsOnCurve reports whether a decodes to a point actually on the curve.
func (a Point) IsOnCurve() bool {
	return a.p.IsOnCurve()
}

// IsIdentity reports whether a is the group identity (point at infinity).
func (a Point) IsIdentity() bool {
	return a.Equal(identity)
}

// Bytes returns a's canonical compressed encoding.
func (a Point) Bytes() [32]byte {
	return a.p.Bytes()
}

// SetBytes decodes a compressed point, rejecting anything not on the curve.
func (a *Point) SetBytes(b []byte) error {
	_, err := a.p.SetBytes(b)
	return err
}

// MarshalBinary implements encoding.BinaryMarshaler so Points serialize as
// their 32-byte compressed form under the treasury's canonical codec.
func (a Point) MarshalBinary() ([]byte, error) {
	b := a.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Point) UnmarshalBinary(b []byte) error {
	return a.SetBytes(b)
}

// generator returns the standard bn254 G1 base point.
func generator() Point {
	_, _, g1, _ := bn254.Generators()
	return Point{p: g1}
}
