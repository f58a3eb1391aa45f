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

// Package classify maps integer algorithm codes to concrete identities.
//
// A classification table is data: per family, an ordered list of entries,
// each owning a set of explicit codes and closed ranges. Tables are
// validated when compiled so that every code resolves to at most one
// identity, and are read-only afterwards.
package classify

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/fouzhe/cryptofuzz/internal/crypto"
	"github.com/fouzhe/cryptofuzz/internal/types"
)

//go:embed default.yaml
var defaultYAML []byte

var (
	// ErrUnknownName is returned when an entry names no identity of its family.
	ErrUnknownName = errors.New("unknown identity")
	// ErrEmptyEntry is returned when an entry has neither codes nor ranges.
	ErrEmptyEntry = errors.New("entry has no codes")
	// ErrDuplicate is returned when an identity appears twice in a family.
	ErrDuplicate = errors.New("duplicate identity")
	// ErrInvertedRange is returned when a range has Min greater than Max.
	ErrInvertedRange = errors.New("inverted range")
	// ErrOverlap is returned when a code maps to two identities of a family.
	ErrOverlap = errors.New("overlapping codes")
)

// Range is a closed interval of codes.
type Range struct {
	Min uint64 `yaml:"min"`
	Max uint64 `yaml:"max"`
}

// Entry assigns codes to one identity of a family.
type Entry struct {
	Name   string   `yaml:"name"`
	Codes  []uint64 `yaml:"codes,omitempty,flow"`
	Ranges []Range  `yaml:"ranges,omitempty"`
}

// Spec is the serialised form of a classification table.
type Spec struct {
	Operations []Entry `yaml:"operations"`
	Digests    []Entry `yaml:"digests"`
	Ciphers    []Entry `yaml:"ciphers"`
	Curves     []Entry `yaml:"curves"`
	CalcOps    []Entry `yaml:"calcops"`
}

// Table is a compiled classification table.
type Table struct {
	spec       Spec
	operations *family[types.OperationKind]
	digests    *family[crypto.DigestKind]
	ciphers    *family[crypto.CipherKind]
	curves     *family[crypto.CurveKind]
	calcOps    *family[crypto.CalcOp]
}

// Compile validates a Spec and builds its resolvers.
func Compile(s Spec) (*Table, error) {
	t := &Table{spec: s}
	var err error
	if t.operations, err = compile("operations", s.Operations, types.Operations(), types.ParseOperation); err != nil {
		return nil, err
	}
	if t.digests, err = compile("digests", s.Digests, crypto.Digests(), crypto.ParseDigest); err != nil {
		return nil, err
	}
	if t.ciphers, err = compile("ciphers", s.Ciphers, crypto.Ciphers(), crypto.ParseCipher); err != nil {
		return nil, err
	}
	if t.curves, err = compile("curves", s.Curves, crypto.Curves(), crypto.ParseCurve); err != nil {
		return nil, err
	}
	if t.calcOps, err = compile("calcops", s.CalcOps, crypto.CalcOps(), crypto.ParseCalcOp); err != nil {
		return nil, err
	}
	return t, nil
}

// Parse decodes a YAML table and compiles it.
func Parse(data []byte) (*Table, error) {
	var s Spec
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse classification table: %w", err)
	}
	return Compile(s)
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("classify: invalid embedded table: %v", err))
	}
	return t
})

// Default returns the embedded default table.
func Default() *Table {
	return defaultTable()
}

// Spec returns the table in serialisable form.
func (t *Table) Spec() Spec {
	return t.spec
}

// Operation resolves an operation code.
func (t *Table) Operation(code uint64) (types.OperationKind, bool) {
	return t.operations.resolve(code)
}

// Digest resolves a digest code.
func (t *Table) Digest(code uint64) (crypto.DigestKind, bool) {
	return t.digests.resolve(code)
}

// Cipher resolves a cipher code.
func (t *Table) Cipher(code uint64) (crypto.CipherKind, bool) {
	return t.ciphers.resolve(code)
}

// Curve resolves a curve code.
func (t *Table) Curve(code uint64) (crypto.CurveKind, bool) {
	return t.curves.resolve(code)
}

// CalcOp resolves a bignum operation code.
func (t *Table) CalcOp(code uint64) (crypto.CalcOp, bool) {
	return t.calcOps.resolve(code)
}

type compiledEntry[K comparable] struct {
	kind  K
	spans []Range
}

func (e *compiledEntry[K]) matches(code uint64) bool {
	for _, r := range e.spans {
		if code >= r.Min && code <= r.Max {
			return true
		}
	}
	return false
}

// family holds the entries of one family in enumeration order, so that
// resolution queries identities left to right and the first match wins.
type family[K comparable] struct {
	entries []compiledEntry[K]
}

func (f *family[K]) resolve(code uint64) (K, bool) {
	for i := range f.entries {
		if f.entries[i].matches(code) {
			return f.entries[i].kind, true
		}
	}
	var zero K
	return zero, false
}

func compile[K comparable](name string, entries []Entry, order []K, parse func(string) (K, error)) (*family[K], error) {
	f := &family[K]{}
	seen := make(map[K]string)

	for _, e := range entries {
		kind, err := parse(e.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %q", name, ErrUnknownName, e.Name)
		}
		if prev, ok := seen[kind]; ok {
			return nil, fmt.Errorf("%s: %w: %q and %q", name, ErrDuplicate, prev, e.Name)
		}
		seen[kind] = e.Name

		if len(e.Codes) == 0 && len(e.Ranges) == 0 {
			return nil, fmt.Errorf("%s: %q: %w", name, e.Name, ErrEmptyEntry)
		}

		ce := compiledEntry[K]{kind: kind}
		for _, c := range e.Codes {
			ce.spans = append(ce.spans, Range{Min: c, Max: c})
		}
		for _, r := range e.Ranges {
			if r.Min > r.Max {
				return nil, fmt.Errorf("%s: %q: %w [%d, %d]", name, e.Name, ErrInvertedRange, r.Min, r.Max)
			}
			ce.spans = append(ce.spans, r)
		}
		f.entries = append(f.entries, ce)
	}

	for i := range f.entries {
		for j := i + 1; j < len(f.entries); j++ {
			if r, ok := overlap(f.entries[i].spans, f.entries[j].spans); ok {
				return nil, fmt.Errorf("%s: %w: %v and %v share [%d, %d]",
					name, ErrOverlap, f.entries[i].kind, f.entries[j].kind, r.Min, r.Max)
			}
		}
	}

	rank := make(map[K]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	slices.SortStableFunc(f.entries, func(a, b compiledEntry[K]) int {
		return rank[a.kind] - rank[b.kind]
	})
	return f, nil
}

func overlap(a, b []Range) (Range, bool) {
	for _, x := range a {
		for _, y := range b {
			lo, hi := max(x.Min, y.Min), min(x.Max, y.Max)
			if lo <= hi {
				return Range{Min: lo, Max: hi}, true
			}
		}
	}
	return Range{}, false
}
