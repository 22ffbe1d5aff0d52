// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package plan

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/treasury/treasury"
)

var (
	peerHex   string
	avg       uint64
	stepMin   uint64
	maxDiff   uint64
	maxHeight uint64
	outPath   string
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "plan",
		Short: "Creates a vesting-schedule request for one beneficiary wallet",
		RunE:  run,
	}
	flags := c.Flags()
	flags.StringVar(&peerHex, "peer", "", "beneficiary wallet id, hex-encoded (32 bytes)")
	flags.Uint64Var(&avg, "avg", 0, "desired average emission per block")
	flags.Uint64Var(&stepMin, "step-min", 0, "height stride between coins (0 = default)")
	flags.Uint64Var(&maxDiff, "max-diff", 0, "max height span per group (0 = default)")
	flags.Uint64Var(&maxHeight, "max-height", 0, "height at which the schedule stops (0 = default)")
	flags.StringVar(&outPath, "out", "", "path to write the canonically-encoded request")
	return c
}

func run(*cobra.Command, []string) error {
	if peerHex == "" || outPath == "" {
		return fmt.Errorf("plan: --peer and --out are required")
	}

	raw, err := hex.DecodeString(peerHex)
	if err != nil || len(raw) != 32 {
		return fmt.Errorf("plan: --peer must be 32 bytes of hex")
	}
	var peer treasury.PeerID
	copy(peer[:], raw)

	params := treasury.DefaultParameters()
	if stepMin != 0 {
		params.StepMin = treasury.Height(stepMin)
	}
	if maxDiff != 0 {
		params.MaxDiffPerBlock = treasury.Height(maxDiff)
	}
	if maxHeight != 0 {
		params.MaxHeight = treasury.Height(maxHeight)
	}

	t := treasury.New(nil)
	entry := t.CreatePlan(peer, treasury.Amount(avg), params)

	b, err := treasury.MarshalRequest(entry.Request)
	if err != nil {
		return fmt.Errorf("plan: encode request: %w", err)
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return fmt.Errorf("plan: write request: %w", err)
	}

	fmt.Printf("wrote request with %d groups, %d coins to %s\n",
		len(entry.Request.Groups), entry.Request.TotalCoins(), outPath)
	return nil
}
