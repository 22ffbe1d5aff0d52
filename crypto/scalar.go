// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Scalar is an element of the bn254 scalar field: blinding factors, coin
// values (when used as an exponent of H), and signature nonces/responses.
type Scalar struct {
	s fr.Element
}

// Add returns a+b mod r.
func (a Scalar) Add(b Scalar) Scalar {
	var r Scalar
	r.s.Add(&a.s, &b.s)
	return r
}

// Sub returns a-b mod r.
func (a Scalar) Sub(b Scalar) Scalar {
	var r Scalar
	r.s.Sub(&a.s, &b.s)
	return r
}

// Mul returns a*b mod r.
func (a Scalar) Mul(b Scalar) Scalar {
	var r Scalar
	r.s.Mul(&a.s, &b.s)
	return r
}

// Neg returns -a mod r.
func (a Scalar) Neg() Scalar {
	var r Scalar
	r.s.Neg(&a.s)
	return r
}

// IsZero reports whether a is the additive identity.
func (a Scalar) IsZero() bool {
	return a.s.IsZero()
}

// BigInt returns a's value as a big.Int.
func (a Scalar) BigInt() *big.Int {
	return a.s.BigInt(new(big.Int))
}

// Bytes returns a's canonical 32-byte big-endian encoding.
func (a Scalar) Bytes() [32]byte {
	return a.s.Bytes()
}

// SetBytes reduces b (big-endian, any length) mod r and stores it in a.
func (a *Scalar) SetBytes(b []byte) *Scalar {
	a.s.SetBytes(b)
	return a
}

// SetUint64 sets a to v.
func (a *Scalar) SetUint64(v uint64) *Scalar {
	a.s.SetUint64(v)
	return a
}

// SetBigInt reduces v mod r and stores it in a.
func (a *Scalar) SetBigInt(v *big.Int) *Scalar {
	a.s.SetBigInt(v)
	return a
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (a Scalar) MarshalBinary() ([]byte, error) {
	b := a.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *Scalar) UnmarshalBinary(b []byte) error {
	a.s.SetBytes(b)
	return nil
}

// RandomScalar draws a uniformly random scalar using crypto/rand.
func RandomScalar() (Scalar, error) {
	var s Scalar
	if _, err := s.s.SetRandom(); err != nil {
		return Scalar{}, err
	}
	return s, nil
}
