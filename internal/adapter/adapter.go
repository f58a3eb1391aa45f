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

// Package adapter translates framework operation descriptors into calls on
// the primitive layer.
//
// Every invocation runs the same linear pipeline: decode the descriptor,
// resolve the operation code and any nested algorithm codes through the
// classification table, validate the parameter combination, invoke the
// primitive and encode its output. Any step may end the iteration with a
// skip outcome instead of an output:
//
//   - Malformed: a field failed to decode (bad hex, no numeric prefix)
//   - Unresolved: a code matched no identity in the table
//   - Unsupported: the combination is recognised but rejected up front
//   - PrimitiveFailure: the primitive returned an error
//
// Panics raised by a primitive are not recovered; they are the crash signal
// the driving framework looks for.
//
// Basic Usage:
//
//	a := adapter.NewAdapter(classify.Default())
//	res := a.Run([]byte(`{"operation":"1","digestType":"2","cleartext":"616263"}`))
//	if out, ok := res.Encode(); ok {
//	    fmt.Println(string(out))
//	}
package adapter

import (
	"log"

	"github.com/fouzhe/cryptofuzz/internal/classify"
	"github.com/fouzhe/cryptofuzz/internal/types"
)

// Adapter runs descriptors through the pipeline.
//
// An Adapter holds only read-only state (the classification table and the
// feature switches) and is safe for concurrent use.
type Adapter struct {
	table *classify.Table
	opts  types.AdapterOptions
}

// NewAdapter creates an adapter with every feature switch off.
//
// Parameters:
//   - table: classification table (nil for the embedded default)
func NewAdapter(table *classify.Table) *Adapter {
	return NewAdapterWithOptions(table, nil)
}

// NewAdapterWithOptions creates an adapter with custom feature switches.
// Pass nil for opts to keep the defaults.
//
// Example:
//
//	opts := &types.AdapterOptions{Multipart: true, Verbose: true}
//	a := adapter.NewAdapterWithOptions(classify.Default(), opts)
func NewAdapterWithOptions(table *classify.Table, opts *types.AdapterOptions) *Adapter {
	if table == nil {
		table = classify.Default()
	}

	a := &Adapter{table: table}
	if opts != nil {
		a.opts = *opts
	}
	return a
}

// Options returns the feature switches of the adapter.
func (a *Adapter) Options() types.AdapterOptions {
	return a.opts
}

// Table returns the classification table of the adapter.
func (a *Adapter) Table() *classify.Table {
	return a.table
}

// Run decodes a JSON descriptor and processes it.
func (a *Adapter) Run(data []byte) types.Result {
	d, err := types.ParseDescriptor(data)
	if err != nil {
		return a.finish("descriptor", types.Malformed(err))
	}
	return a.Process(d)
}

// RunCBOR decodes a CBOR descriptor and processes it.
func (a *Adapter) RunCBOR(data []byte) types.Result {
	d, err := types.ParseDescriptorCBOR(data)
	if err != nil {
		return a.finish("descriptor", types.Malformed(err))
	}
	return a.Process(d)
}

// Process resolves the operation of a decoded descriptor and dispatches it.
func (a *Adapter) Process(d *types.Descriptor) types.Result {
	code, err := d.OperationCode()
	if err != nil {
		return a.finish("descriptor", types.Malformed(err))
	}

	op, ok := a.table.Operation(code)
	if !ok {
		return a.finish("descriptor", types.Unresolved("operation", code))
	}

	var r types.Result
	switch op {
	case types.OpDigest:
		r = a.digest(d)
	case types.OpHMAC:
		r = a.hmac(d)
	case types.OpSymmetricEncrypt:
		r = a.symmetricEncrypt(d)
	case types.OpSymmetricDecrypt:
		r = a.symmetricDecrypt(d)
	case types.OpKDFHKDF:
		r = a.hkdf(d)
	case types.OpKDFPBKDF2:
		r = a.pbkdf2(d)
	case types.OpKDFScrypt:
		r = a.scrypt(d)
	case types.OpBignumCalc:
		r = a.bignumCalc(d)
	case types.OpECCPrivateToPublic:
		r = a.eccPrivateToPublic(d)
	default:
		r = types.Unsupported("no dispatcher for %v", op)
	}
	return a.finish(op.String(), r)
}

func (a *Adapter) finish(op string, r types.Result) types.Result {
	if a.opts.Verbose && !r.Emitted() {
		log.Printf("Skipped %s: %s: %s", op, r.Outcome, r.Reason)
	}
	return r
}
