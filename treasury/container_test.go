// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/treasury/crypto"
)

func TestTreasuryMarshalUnmarshalRoundTrip(t *testing.T) {
	require := require.New(t)

	kdf := crypto.NewKDF([]byte("container-wallet"))
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(err)
	peer := PeerIDFromPoint(pub)

	tr := New(nil)
	entry := tr.CreatePlan(peer, 1, Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 3})

	var nextIndex uint64
	resp, err := CreateResponse(entry.Request, kdf, &nextIndex)
	require.NoError(err)
	require.NoError(tr.SetResponse(peer, resp))

	b, err := tr.Marshal()
	require.NoError(err)

	restored := New(nil)
	require.NoError(restored.Unmarshal(b))

	got := restored.Entry(peer)
	require.NotNil(got)
	require.True(got.Response.IsValid(got.Request))
}

func TestSetResponseRejectsUnknownPeer(t *testing.T) {
	require := require.New(t)

	tr := New(nil)
	var peer PeerID
	err := tr.SetResponse(peer, &Response{})
	require.ErrorIs(err, ErrUnknownPeer)
}

func TestAddEntryRejectsWalletMismatch(t *testing.T) {
	require := require.New(t)

	tr := New(nil)
	var peerA, peerB PeerID
	peerA[0], peerB[0] = 1, 2

	req := &Request{WalletID: peerA}
	resp := &Response{WalletID: peerB}

	err := tr.AddEntry(req, resp)
	require.ErrorIs(err, ErrWalletMismatch)
}
