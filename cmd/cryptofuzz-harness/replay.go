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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fouzhe/cryptofuzz"
)

// corpusEntry is one descriptor read from a corpus file.
type corpusEntry struct {
	source string
	data   []byte
	cbor   bool
}

// replayer runs corpus entries either in process or on a remote wrapper.
type replayer struct {
	harness *cryptofuzz.Harness
	remote  *cryptofuzz.Remote
}

var errRemoteCrash = errors.New("remote adapter crashed")

func (r *replayer) run(e corpusEntry) (cryptofuzz.Report, error) {
	if r.remote == nil {
		var res cryptofuzz.Result
		if e.cbor {
			res = r.harness.RunCBOR(e.data)
		} else {
			res = r.harness.Run(e.data)
		}
		return cryptofuzz.NewReport(res), nil
	}

	var (
		rep *cryptofuzz.Report
		err error
	)
	if e.cbor {
		rep, err = r.remote.RunCBOR(e.data)
	} else {
		rep, err = r.remote.Run(e.data)
	}
	if err != nil {
		return cryptofuzz.Report{}, err
	}
	return *rep, nil
}

func newReplayCmd(opts *globalOptions) *cobra.Command {
	var remoteURL string

	cmd := &cobra.Command{
		Use:   "replay <path>...",
		Short: "Run every descriptor of a corpus",
		Long: `Replay runs every descriptor found in the given files and directories
and prints one line per descriptor: source, outcome and envelope ("-" when
no output was produced).

Files ending in .json hold one descriptor, .jsonl one descriptor per line
and .cbor one CBOR descriptor. Other files found while walking a directory
are ignored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &replayer{}
			if remoteURL != "" {
				r.remote = cryptofuzz.NewRemote(remoteURL, nil)
				if err := r.remote.Health(); err != nil {
					return err
				}
			} else {
				h, err := opts.harness()
				if err != nil {
					return err
				}
				r.harness = h
			}

			var entries []corpusEntry
			for _, path := range args {
				found, err := collectCorpus(path)
				if err != nil {
					return err
				}
				entries = append(entries, found...)
			}

			out := cmd.OutOrStdout()
			var emitted, crashed int
			for _, e := range entries {
				rep, err := r.run(e)
				if err != nil {
					if !errors.Is(err, cryptofuzz.ErrRemoteCrash) {
						return fmt.Errorf("%s: %w", e.source, err)
					}
					crashed++
					fmt.Fprintf(out, "%s crash -\n", e.source)
					continue
				}

				envelope := "-"
				if rep.Output != nil {
					emitted++
					envelope = string(rep.Output)
				}
				fmt.Fprintf(out, "%s %s %s\n", e.source, rep.Outcome, envelope)
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Replayed %d descriptors: %d emitted, %d crashed\n", len(entries), emitted, crashed)
			if crashed > 0 {
				return fmt.Errorf("%w: %d descriptors", errRemoteCrash, crashed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteURL, "remote", "", "Base URL of a wrapper server to replay against")
	return cmd
}

// collectCorpus reads the descriptors of a file, or of every corpus file
// below a directory.
func collectCorpus(path string) ([]corpusEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}
	if !info.IsDir() {
		if !isCorpusFile(path) {
			return nil, fmt.Errorf("unsupported corpus file: %s", path)
		}
		return readCorpusFile(path)
	}

	var entries []corpusEntry
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isCorpusFile(p) {
			return nil
		}
		found, err := readCorpusFile(p)
		if err != nil {
			return err
		}
		entries = append(entries, found...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func isCorpusFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl", ".cbor":
		return true
	}
	return false
}

func readCorpusFile(path string) ([]corpusEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor":
		return []corpusEntry{{source: path, data: data, cbor: true}}, nil
	case ".jsonl":
		return splitLines(path, bytes.NewReader(data))
	default:
		return []corpusEntry{{source: path, data: data}}, nil
	}
}

func splitLines(path string, r io.Reader) ([]corpusEntry, error) {
	var entries []corpusEntry
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16<<20)
	for line := 1; sc.Scan(); line++ {
		text := bytes.TrimSpace(sc.Bytes())
		if len(text) == 0 {
			continue
		}
		entries = append(entries, corpusEntry{
			source: fmt.Sprintf("%s:%d", path, line),
			data:   bytes.Clone(text),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return entries, nil
}
