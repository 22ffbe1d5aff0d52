// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/treasury/crypto"
)

func testRequest(t *testing.T, seed string, params Parameters, avg Amount) (*Request, *crypto.KDF) {
	t.Helper()
	kdf := crypto.NewKDF([]byte(seed))
	pub, _, err := kdf.DerivePoint(TagWalletIdentity, 0)
	require.NoError(t, err)

	tr := New(nil)
	entry := tr.CreatePlan(PeerIDFromPoint(pub), avg, params)
	return entry.Request, kdf
}

func TestCreateResponseThenIsValid(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-a", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 7}, 3)

	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)
	require.True(resp.IsValid(req))

	total := 0
	for _, g := range req.Groups {
		total += len(g.Coins) + 1
	}
	require.Equal(uint64(total), nextIndex)
}

func TestCreateResponseAdvancesCounterIndependentOfStart(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-b", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 9}, 1)

	nextIndex := uint64(100)
	_, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)

	total := 0
	for _, g := range req.Groups {
		total += len(g.Coins) + 1
	}
	require.Equal(uint64(100+total), nextIndex)
}

func TestCreateResponseRejectsWrongIdentity(t *testing.T) {
	require := require.New(t)

	req, _ := testRequest(t, "wallet-c", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 5}, 1)
	wrongKDF := crypto.NewKDF([]byte("not-the-wallet"))

	var nextIndex uint64
	resp, err := CreateResponse(req, wrongKDF, &nextIndex)
	require.ErrorIs(err, ErrWrongIdentity)
	require.Nil(resp)
}

func TestIsValidRejectsTamperedCommitment(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-d", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 5}, 1)
	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)
	require.True(resp.IsValid(req))

	resp.Groups[0].Coins[0].Output.Commitment[0] ^= 1
	require.False(resp.IsValid(req))
}

func TestIsValidRejectsTamperedValueSig(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-e", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 5}, 1)
	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)
	require.True(resp.IsValid(req))

	resp.Groups[0].Coins[0].ValueSig.S[0] ^= 1
	require.False(resp.IsValid(req))
}

func TestIsValidRejectsTamperedAggSig(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-f", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 5}, 1)
	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)
	require.True(resp.IsValid(req))

	resp.AggSig.S[0] ^= 1
	require.False(resp.IsValid(req))
}

func TestIsValidRejectsChangedRequestValue(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-g", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 5}, 1)
	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)
	require.True(resp.IsValid(req))

	req.Groups[0].Coins[0].Value++
	require.False(resp.IsValid(req))
}

func TestIsValidRejectsCoinsSwappedBetweenGroups(t *testing.T) {
	require := require.New(t)

	req, kdf := testRequest(t, "wallet-h", Parameters{StepMin: 1, MaxDiffPerBlock: 2, MaxHeight: 9}, 1)
	require.GreaterOrEqual(len(req.Groups), 2)

	var nextIndex uint64
	resp, err := CreateResponse(req, kdf, &nextIndex)
	require.NoError(err)
	require.True(resp.IsValid(req))

	resp.Groups[0].Coins[0], resp.Groups[1].Coins[0] = resp.Groups[1].Coins[0], resp.Groups[0].Coins[0]
	require.False(resp.IsValid(req))
}
