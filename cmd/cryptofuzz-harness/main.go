// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
//
// This software and its associated documentation files (the "Software") are
// the proprietary and confidential information of TEENet Technology (Hong Kong) Limited.
// Unauthorized copying of this file, via any medium, is strictly prohibited.
//
// No license, express or implied, is hereby granted, except by written agreement
// with TEENet Technology (Hong Kong) Limited. Use of this software without permission
// is a violation of applicable laws.
//
// -----------------------------------------------------------------------------

// Command cryptofuzz-harness runs framework descriptors through the adapter.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/fouzhe/cryptofuzz"
)

// Build-time variables (injected with -ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	log.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
}

// harness builds the harness selected by the global flags.
func (o *globalOptions) harness() (*cryptofuzz.Harness, error) {
	if o.configPath == "" {
		return cryptofuzz.New(), nil
	}
	cfg, err := cryptofuzz.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	return cryptofuzz.NewWithConfig(cfg), nil
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "cryptofuzz-harness",
		Short: "Differential crypto fuzzing module adapter",
		Long: `cryptofuzz-harness translates operation descriptors of a differential
cryptographic fuzzing framework into primitive calls and prints the result
envelope, or nothing when the operation is not supported.

Examples:
  # Run one descriptor from stdin
  echo '{"operation":"1","digestType":"2","cleartext":"616263"}' | cryptofuzz-harness run

  # Replay a corpus directory and show every outcome
  cryptofuzz-harness replay corpus/

  # Expose the adapter to a remote framework
  cryptofuzz-harness serve --addr :8089

  # Print the active classification table
  cryptofuzz-harness table --config cryptofuzz.yaml`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to a YAML configuration file (feature switches and classification table)")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newReplayCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newTableCmd(opts))
	return root
}
