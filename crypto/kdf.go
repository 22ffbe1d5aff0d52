// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KDF deterministically derives per-coin and per-kernel scalars from a
// wallet's root seed, keyed by a four-character domain tag and a
// monotonically increasing index. The same (tag, index) pair always yields
// the same scalar for a given KDF, independent of call order — this is what
// lets the responder derive coins across parallel workers without sharing a
// mutable counter.
type KDF struct {
	seed []byte
}

// NewKDF wraps a wallet's root seed. The seed is copied; callers may zero
// their own copy afterward.
func NewKDF(seed []byte) *KDF {
	s := make([]byte, len(seed))
	copy(s, seed)
	return &KDF{seed: s}
}

// DeriveScalar derives the scalar for (tag, index).
func (k *KDF) DeriveScalar(tag [4]byte, index uint64) (Scalar, error) {
	info := make([]byte, 4+8)
	copy(info, tag[:])
	binary.BigEndian.PutUint64(info[4:], index)

	r := hkdf.New(sha256.New, k.seed, nil, info)
	buf := make([]byte, 32)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Scalar{}, err
	}

	var s Scalar
	s.SetBytes(buf)
	return s, nil
}

// DerivePoint derives the (public point, secret scalar) pair for (tag, index).
func (k *KDF) DerivePoint(tag [4]byte, index uint64) (Point, Scalar, error) {
	s, err := k.DeriveScalar(tag, index)
	if err != nil {
		return Point{}, Scalar{}, err
	}
	return MulBase(s), s, nil
}
