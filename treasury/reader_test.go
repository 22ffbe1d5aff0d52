// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/treasury/crypto"
)

func TestReaderYieldsOutputsThenKernel(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("reader-wallet"))
	req := &Request{Groups: []Group{{Coins: []Coin{
		{Value: 1, Incubation: 0},
		{Value: 2, Incubation: 1},
	}}}}
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	req.WalletID = PeerIDFromPoint(pub)

	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	r := NewReader(&resp.Groups[0])

	o1, ok := r.NextOutput()
	require.True(ok)
	require.Equal(Height(0), o1.Incubation)

	o2, ok := r.NextOutput()
	require.True(ok)
	require.Equal(Height(1), o2.Incubation)

	_, ok = r.NextOutput()
	require.False(ok, "only two coins were issued")

	k, ok := r.Kernel()
	require.True(ok)
	require.Equal(Amount(0), k.Fee)
}

func TestReaderCloneHasIndependentCursor(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("reader-wallet-2"))
	req := &Request{Groups: []Group{{Coins: []Coin{{Value: 1, Incubation: 0}}}}}
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	req.WalletID = PeerIDFromPoint(pub)

	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	r := NewReader(&resp.Groups[0])
	_, ok := r.NextOutput()
	require.True(ok)

	clone := r.Clone()
	_, ok = clone.Kernel()
	require.True(ok)

	// The original reader's cursor must be unaffected by the clone's advance.
	_, ok = r.NextOutput()
	require.False(ok, "original reader already exhausted its single output before cloning")
	_, ok = r.Kernel()
	require.True(ok, "the clone's kernel read must not mark the original reader done")
}

func TestReaderResetRewinds(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("reader-wallet-3"))
	req := &Request{Groups: []Group{{Coins: []Coin{{Value: 1, Incubation: 0}}}}}
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	req.WalletID = PeerIDFromPoint(pub)

	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	r := NewReader(&resp.Groups[0])
	r.NextOutput()
	r.Kernel()
	r.Reset()

	_, ok := r.NextOutput()
	require.True(ok, "reset should make the output visible again")
}

func TestReaderNettoSizeMatchesGroupFootprint(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("reader-wallet-4"))
	req := &Request{Groups: []Group{{Coins: []Coin{
		{Value: 1, Incubation: 0},
		{Value: 2, Incubation: 1},
		{Value: 3, Incubation: 2},
	}}}}
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	req.WalletID = PeerIDFromPoint(pub)

	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	r := NewReader(&resp.Groups[0])
	require.Equal(nettoSize(&resp.Groups[0]), r.NettoSize())
}
