// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package respond

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/treasury/crypto"
	"github.com/luxfi/treasury/treasury"
)

var (
	requestPath string
	seedHex     string
	startIndex  uint64
	outPath     string
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "respond",
		Short: "Derives a wallet's response to an issuance request",
		RunE:  run,
	}
	flags := c.Flags()
	flags.StringVar(&requestPath, "request", "", "path to the canonically-encoded request")
	flags.StringVar(&seedHex, "seed", "", "wallet's key-derivation root seed, hex-encoded")
	flags.Uint64Var(&startIndex, "index", 0, "starting derivation counter")
	flags.StringVar(&outPath, "out", "", "path to write the canonically-encoded response")
	return c
}

func run(*cobra.Command, []string) error {
	if requestPath == "" || seedHex == "" || outPath == "" {
		return fmt.Errorf("respond: --request, --seed and --out are required")
	}

	reqBytes, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("respond: read request: %w", err)
	}
	req, err := treasury.UnmarshalRequest(reqBytes)
	if err != nil {
		return fmt.Errorf("respond: decode request: %w", err)
	}

	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return fmt.Errorf("respond: --seed must be hex: %w", err)
	}
	kdf := crypto.NewKDF(seed)

	nextIndex := startIndex
	resp, err := treasury.CreateResponse(req, kdf, &nextIndex)
	if err != nil {
		return fmt.Errorf("respond: %w", err)
	}

	b, err := treasury.MarshalResponse(resp)
	if err != nil {
		return fmt.Errorf("respond: encode response: %w", err)
	}
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return fmt.Errorf("respond: write response: %w", err)
	}

	fmt.Printf("wrote response to %s, next index %d\n", outPath, nextIndex)
	return nil
}
