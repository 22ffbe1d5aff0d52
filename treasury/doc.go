// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package treasury implements the issuance ceremony for a confidential-
// transaction chain's pre-mined subsidy: an issuer plans a vesting schedule
// of coins per beneficiary wallet (Request), each wallet derives outputs and
// proves it knows the values it received (Response), the issuer checks every
// proof without ever learning a value (Response.IsValid), and once every
// wallet has answered the issuer packs all of it into the sequence of
// genesis-adjacent blocks the chain boots from (Treasury.Build).
//
// The elliptic-curve math lives in github.com/luxfi/treasury/crypto; this
// package only ever talks to Points, Scalars and Signatures, never to raw
// curve coordinates.
package treasury
