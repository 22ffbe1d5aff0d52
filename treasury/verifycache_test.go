// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/treasury/crypto"
)

func TestVerifyResponseCachesVerdict(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("verify-cache-wallet"))
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	peer := PeerIDFromPoint(pub)

	req := &Request{WalletID: peer, Groups: []Group{{Coins: []Coin{{Value: 7, Incubation: 0}}}}}
	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	tr := New(nil)
	require.Equal(0, tr.VerifyCacheLen())

	valid, err := tr.VerifyResponse(req, resp)
	require.NoError(err)
	require.True(valid)
	require.Equal(1, tr.VerifyCacheLen())

	// A second call against the same pair must hit the cache rather than
	// growing it.
	valid, err = tr.VerifyResponse(req, resp)
	require.NoError(err)
	require.True(valid)
	require.Equal(1, tr.VerifyCacheLen())

	tr.ClearVerifyCache()
	require.Equal(0, tr.VerifyCacheLen())
}

func TestVerifyResponseCachesNegativeVerdict(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("verify-cache-wallet-2"))
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	peer := PeerIDFromPoint(pub)

	req := &Request{WalletID: peer, Groups: []Group{{Coins: []Coin{{Value: 7, Incubation: 0}}}}}
	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	// Tamper with the request after the response was produced.
	tampered := &Request{WalletID: peer, Groups: []Group{{Coins: []Coin{{Value: 8, Incubation: 0}}}}}

	tr := New(nil)
	valid, err := tr.VerifyResponse(tampered, resp)
	require.NoError(err)
	require.False(valid)
	require.Equal(1, tr.VerifyCacheLen())
}
