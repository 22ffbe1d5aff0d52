// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/treasury/treasury"
)

var (
	requestPath  string
	responsePath string
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify",
		Short: "Checks a wallet's response against its request",
		RunE:  run,
	}
	flags := c.Flags()
	flags.StringVar(&requestPath, "request", "", "path to the canonically-encoded request")
	flags.StringVar(&responsePath, "response", "", "path to the canonically-encoded response")
	return c
}

func run(*cobra.Command, []string) error {
	if requestPath == "" || responsePath == "" {
		return fmt.Errorf("verify: --request and --response are required")
	}

	reqBytes, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("verify: read request: %w", err)
	}
	req, err := treasury.UnmarshalRequest(reqBytes)
	if err != nil {
		return fmt.Errorf("verify: decode request: %w", err)
	}

	respBytes, err := os.ReadFile(responsePath)
	if err != nil {
		return fmt.Errorf("verify: read response: %w", err)
	}
	resp, err := treasury.UnmarshalResponse(respBytes)
	if err != nil {
		return fmt.Errorf("verify: decode response: %w", err)
	}

	valid, err := treasury.New(nil).VerifyResponse(req, resp)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if !valid {
		fmt.Println("invalid")
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}
