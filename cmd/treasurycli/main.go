// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Command treasurycli drives one issuance ceremony end to end: plan a
// wallet's vesting schedule, have the wallet respond, verify the response,
// and pack every accepted response into genesis-adjacent block bodies.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/luxfi/treasury/cmd/treasurycli/build"
	"github.com/luxfi/treasury/cmd/treasurycli/plan"
	"github.com/luxfi/treasury/cmd/treasurycli/respond"
	"github.com/luxfi/treasury/cmd/treasurycli/verify"
)

func main() {
	root := &cobra.Command{
		Use:   "treasurycli",
		Short: "Issuance ceremony tooling for the treasury subsystem",
	}
	root.AddCommand(plan.Command())
	root.AddCommand(respond.Command())
	root.AddCommand(verify.Command())
	root.AddCommand(build.Command())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
