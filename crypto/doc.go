// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package crypto wraps the elliptic-curve primitives the treasury needs to
// build and check Pedersen commitments and Schnorr-style excess signatures:
// scalar and point arithmetic over bn254 G1, the commitment generators G and
// H, a deterministic HKDF-based key derivation function, and a batched
// signature verifier. It is the treasury's only dependency on curve math;
// callers never touch gnark-crypto directly.
package crypto
