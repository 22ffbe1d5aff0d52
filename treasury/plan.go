// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package treasury

// CreatePlan populates a freshly inserted Entry's Request for peer,
// targeting an average emission of avg per block under params. It is
// deterministic: identical (peer, avg, params) always produce a
// byte-identical request, independent of how many times it is called.
//
// Coins are appended every params.StepMin in height, each worth
// avg*params.StepMin, starting at height 0. A new group opens whenever the
// request has no groups yet or the height span since the current group's
// first coin would reach params.MaxDiffPerBlock. Iteration stops once the
// coin height reaches params.MaxHeight.
func (t *Treasury) CreatePlan(peer PeerID, avg Amount, params Parameters) *Entry {
	perCoin := Amount(uint64(avg) * uint64(params.StepMin))

	req := &Request{WalletID: peer}

	var groupStart Height
	for h := HeightGenesis; h < params.MaxHeight; h += params.StepMin {
		if len(req.Groups) == 0 || h-groupStart >= params.MaxDiffPerBlock {
			req.Groups = append(req.Groups, Group{})
			groupStart = h
		}
		g := &req.Groups[len(req.Groups)-1]
		g.Coins = append(g.Coins, Coin{Value: perCoin, Incubation: h})
	}

	entry := &Entry{Request: req}
	t.setEntry(peer, entry)
	return entry
}
