// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import "errors"

var (
	// ErrWrongIdentity is returned by CreateResponse when the wallet key
	// derived from the supplied KDF does not match the request's claimed
	// wallet ID.
	ErrWrongIdentity = errors.New("treasury: kdf does not derive the request's wallet id")

	// ErrGroupCreationFailed covers any per-group failure during
	// CreateResponse (a key derivation error, or the randomness source
	// behind a signature nonce failing).
	ErrGroupCreationFailed = errors.New("treasury: response group creation failed")

	// ErrGroupTooLarge is fatal: a single response group's serialized size
	// exceeds the body size budget passed to Build on its own, so no block
	// body can ever hold it.
	ErrGroupTooLarge = errors.New("treasury: response group exceeds max body size")

	// ErrInvalidGeneratedBlock is fatal: a block body produced by Build
	// failed its own post-pack validation.
	ErrInvalidGeneratedBlock = errors.New("treasury: generated block failed validation")

	// ErrUnknownPeer is returned when an operation references a PeerID with
	// no entry in the treasury.
	ErrUnknownPeer = errors.New("treasury: unknown peer id")

	// ErrWalletMismatch is returned when a request and response paired
	// together do not share a wallet id.
	ErrWalletMismatch = errors.New("treasury: request and response wallet id differ")
)

// Four-character derivation tags. These are part of the on-chain contract:
// changing them would make every previously-derived key unrecoverable, so
// they are fixed forever as compile-time constants, never configuration.
var (
	// TagWalletIdentity derives a wallet's treasury identity key, always at
	// index 0.
	TagWalletIdentity = [4]byte{'t', 'R', 'i', 'd'}
	// TagOutputBlinding derives each coin's output blinding factor.
	TagOutputBlinding = [4]byte{'T', 'r', 'e', 's'}
	// TagKernelBlinding derives each group's kernel blinding factor.
	TagKernelBlinding = [4]byte{'K', 'e', 'R', '3'}
)
