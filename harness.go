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

// Package cryptofuzz is the module adapter of a differential cryptographic
// fuzzing framework.
//
// The framework hands every library under test the same operation
// descriptor and compares the outputs. This package decodes a descriptor,
// resolves its integer codes through a classification table, validates the
// parameter combination, runs the primitive and encodes the result, or
// produces no output when the combination is unsupported.
//
// Supported operations:
//   - Digest and HMAC over SHA1, SHA256, SHA512, RIPEMD160
//   - AES CCM, GCM, OCB2, CTR and (optionally) CBC encryption and decryption
//   - HKDF, PBKDF2 and scrypt key derivation
//   - Arbitrary-precision arithmetic (Add, Sub, Mul, Sqr, InvMod, MulMod, Mod, ExpMod)
//   - Private-to-public scalar multiplication on seven short Weierstrass curves
//
// Basic Usage:
//
//	h := cryptofuzz.New()
//	res := h.Run([]byte(`{"operation":"1","digestType":"2","cleartext":"616263"}`))
//	if out, ok := res.Encode(); ok {
//	    os.Stdout.Write(out)
//	}
//
// Configuration (feature switches and a custom classification table) is
// loaded with LoadConfig and passed to NewWithConfig.
package cryptofuzz

import (
	"net/http"

	"github.com/fouzhe/cryptofuzz/internal/adapter"
	"github.com/fouzhe/cryptofuzz/internal/config"
	"github.com/fouzhe/cryptofuzz/internal/network"
)

// Harness is a facade for the internal adapter.
// It is safe for concurrent use.
type Harness struct {
	impl *adapter.Adapter
}

// New creates a harness with the embedded classification table and every
// feature switch off.
func New() *Harness {
	return NewWithConfig(nil)
}

// NewWithConfig creates a harness from a loaded configuration.
// Pass nil to use the defaults.
//
// Example:
//
//	cfg, err := cryptofuzz.LoadConfig("cryptofuzz.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := cryptofuzz.NewWithConfig(cfg)
func NewWithConfig(cfg *Config) *Harness {
	if cfg == nil {
		cfg = config.Default()
	}
	opts := cfg.Features
	return &Harness{impl: adapter.NewAdapterWithOptions(cfg.Table(), &opts)}
}

// LoadConfig loads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// Run processes one JSON descriptor.
func (h *Harness) Run(data []byte) Result {
	return h.impl.Run(data)
}

// RunCBOR processes one CBOR descriptor.
func (h *Harness) RunCBOR(data []byte) Result {
	return h.impl.RunCBOR(data)
}

// Process runs an already decoded descriptor.
func (h *Harness) Process(d *Descriptor) Result {
	return h.impl.Process(d)
}

// Options returns the active feature switches.
func (h *Harness) Options() AdapterOptions {
	return h.impl.Options()
}

// Classification returns the active classification table in serialisable form.
func (h *Harness) Classification() ClassificationSpec {
	return h.impl.Table().Spec()
}

// Handler returns the HTTP handler of the wrapper server.
func (h *Harness) Handler() http.Handler {
	return network.NewHandler(h.impl)
}

// NewServer creates a wrapper server for this harness listening on addr.
func (h *Harness) NewServer(addr string) (*Server, error) {
	return network.NewServer(addr, h.impl)
}

// NewRemote creates a client for a wrapper server at baseURL.
// A nil client uses http.DefaultClient.
func NewRemote(baseURL string, client *http.Client) *Remote {
	return network.NewHTTPClient(baseURL, client)
}
