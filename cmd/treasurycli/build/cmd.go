// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luxfi/treasury/treasury"
)

var (
	entriesDir  string
	blocksDir   string
	maxBodySize int
)

func Command() *cobra.Command {
	c := &cobra.Command{
		Use:   "build",
		Short: "Packs every accepted response into genesis-adjacent block bodies",
		RunE:  run,
	}
	flags := c.Flags()
	flags.StringVar(&entriesDir, "entries", "", "directory of <peer>.req / <peer>.resp pairs")
	flags.StringVar(&blocksDir, "blocks", "", "directory to write packed block bodies into")
	flags.IntVar(&maxBodySize, "max-body-size", treasury.DefaultMaxBodySize, "block body size budget in bytes")
	return c
}

func run(*cobra.Command, []string) error {
	if entriesDir == "" || blocksDir == "" {
		return fmt.Errorf("build: --entries and --blocks are required")
	}

	t := treasury.New(nil)
	if err := loadEntries(t, entriesDir); err != nil {
		return err
	}

	blocks, err := t.Build(maxBodySize)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	if err := os.MkdirAll(blocksDir, 0o755); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	for _, blk := range blocks {
		b, err := treasury.MarshalBody(blk.Body)
		if err != nil {
			return fmt.Errorf("build: encode block %d: %w", blk.Height, err)
		}
		path := filepath.Join(blocksDir, fmt.Sprintf("%d.block", blk.Height))
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return fmt.Errorf("build: write block %d: %w", blk.Height, err)
		}
	}

	fmt.Printf("packed %d block bodies into %s\n", len(blocks), blocksDir)
	return nil
}

func loadEntries(t *treasury.Treasury, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("build: read %s: %w", dir, err)
	}

	for _, ent := range entries {
		name := ent.Name()
		if !strings.HasSuffix(name, ".req") {
			continue
		}
		peer := strings.TrimSuffix(name, ".req")

		reqBytes, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return fmt.Errorf("build: read %s: %w", name, err)
		}
		req, err := treasury.UnmarshalRequest(reqBytes)
		if err != nil {
			return fmt.Errorf("build: decode %s: %w", name, err)
		}

		var resp *treasury.Response
		respPath := filepath.Join(dir, peer+".resp")
		if respBytes, err := os.ReadFile(respPath); err == nil {
			resp, err = treasury.UnmarshalResponse(respBytes)
			if err != nil {
				return fmt.Errorf("build: decode %s.resp: %w", peer, err)
			}
		}

		if resp != nil {
			valid, err := t.VerifyResponse(req, resp)
			if err != nil {
				return fmt.Errorf("build: verify %s: %w", peer, err)
			}
			if !valid {
				return fmt.Errorf("build: response for peer %s failed verification", peer)
			}
		}

		if err := t.AddEntry(req, resp); err != nil {
			return fmt.Errorf("build: add entry %s: %w", peer, err)
		}
	}
	return nil
}
