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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fouzhe/cryptofuzz"
)

func newRunCmd(opts *globalOptions) *cobra.Command {
	var (
		useCBOR bool
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run one descriptor and print its result envelope",
		Long: `Run reads one descriptor from file (or stdin) and prints the result
envelope. Nothing is printed when the iteration produces no output; the
exit status is 0 in both cases.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := opts.harness()
			if err != nil {
				return err
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var res cryptofuzz.Result
			if useCBOR {
				res = h.RunCBOR(data)
			} else {
				res = h.Run(data)
			}

			if explain {
				fmt.Fprintln(cmd.ErrOrStderr(), explainResult(res))
			}
			if out, ok := res.Encode(); ok {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useCBOR, "cbor", false, "Decode the descriptor as CBOR instead of JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Print the outcome tag and skip reason to stderr")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return data, nil
}

func explainResult(res cryptofuzz.Result) string {
	if res.Reason == "" {
		return res.Outcome.String()
	}
	return fmt.Sprintf("%s: %s", res.Outcome, res.Reason)
}
