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

// Package types defines the data model shared by the adapter, the wrapper
// transport and the public facade: operation descriptors, typed parameter
// sets and the tagged Result produced for every iteration.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OperationKind identifies which dispatcher handles a descriptor.
type OperationKind uint32

const (
	OpDigest OperationKind = iota + 1
	OpHMAC
	OpSymmetricEncrypt
	OpSymmetricDecrypt
	OpKDFHKDF
	OpKDFPBKDF2
	OpKDFScrypt
	OpBignumCalc
	OpECCPrivateToPublic
)

var operationNames = []string{"",
	"Digest", "HMAC", "SymmetricEncrypt", "SymmetricDecrypt",
	"KDF_HKDF", "KDF_PBKDF2", "KDF_SCRYPT", "BignumCalc", "ECC_PrivateToPublic",
}

// Operations returns every operation kind in resolution priority order.
func Operations() []OperationKind {
	ops := make([]OperationKind, 0, len(operationNames)-1)
	for i := 1; i < len(operationNames); i++ {
		ops = append(ops, OperationKind(i))
	}
	return ops
}

func (o OperationKind) String() string {
	if o == 0 || int(o) >= len(operationNames) {
		return fmt.Sprintf("OperationKind(%d)", uint32(o))
	}
	return operationNames[o]
}

// ParseOperation converts an operation name to its kind (case-insensitive).
func ParseOperation(name string) (OperationKind, error) {
	for i := 1; i < len(operationNames); i++ {
		if strings.EqualFold(operationNames[i], name) {
			return OperationKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation: %s", name)
}

// AdapterOptions holds the feature switches of the adapter.
//
// Every switch defaults to false: digests take a single update, and ExpMod
// and CBC are inert.
type AdapterOptions struct {
	// Multipart feeds Digest and HMAC input through the Multipart Chunker
	// so that every chunk becomes a separate hash update.
	Multipart bool `yaml:"multipart" json:"multipart"`

	// ExpMod activates the BignumCalc ExpMod operation.
	ExpMod bool `yaml:"expmod" json:"expmod"`

	// CBC activates AES-CBC encryption with PKCS#7 padding.
	CBC bool `yaml:"cbc" json:"cbc"`

	// Verbose logs the reason of every iteration that produced no output.
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// Outcome tags the result of one iteration.
type Outcome int

const (
	// OutcomeSuccess means a value was produced and must be emitted.
	OutcomeSuccess Outcome = iota
	// OutcomeUnsupported means the combination is recognised but rejected
	// before any primitive was invoked.
	OutcomeUnsupported
	// OutcomeUnresolved means an enum code matched no known identity.
	OutcomeUnresolved
	// OutcomePrimitiveFailure means the primitive rejected otherwise
	// valid-looking input (no inverse, authentication failure, ...).
	OutcomePrimitiveFailure
	// OutcomeMalformed means the descriptor itself could not be decoded.
	OutcomeMalformed
)

var outcomeNames = []string{"success", "unsupported", "unresolved", "primitive-failure", "malformed"}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*o = Outcome(i)
			return nil
		}
	}
	return fmt.Errorf("unknown outcome: %s", text)
}

// Result is the outcome of one iteration. Value is set only on success and
// holds either a string (hex or decimal) or a [2]string coordinate pair.
type Result struct {
	Outcome Outcome
	Value   any
	Reason  string
}

// Success wraps a value to be emitted.
func Success(v any) Result {
	return Result{Outcome: OutcomeSuccess, Value: v}
}

// Unsupported reports a combination rejected by validation.
func Unsupported(format string, args ...any) Result {
	return Result{Outcome: OutcomeUnsupported, Reason: fmt.Sprintf(format, args...)}
}

// Unresolved reports a classification code without a matching identity.
func Unresolved(family string, code uint64) Result {
	return Result{Outcome: OutcomeUnresolved, Reason: fmt.Sprintf("unresolved %s code %d", family, code)}
}

// PrimitiveFailure reports an error returned by a primitive.
func PrimitiveFailure(err error) Result {
	return Result{Outcome: OutcomePrimitiveFailure, Reason: err.Error()}
}

// Malformed reports a descriptor decode failure.
func Malformed(err error) Result {
	return Result{Outcome: OutcomeMalformed, Reason: err.Error()}
}

// Emitted reports whether the result carries an output.
func (r Result) Emitted() bool {
	return r.Outcome == OutcomeSuccess
}

// Encode serializes the value into the framework's textual envelope (a
// JSON value). It returns false for every skip outcome.
func (r Result) Encode() ([]byte, bool) {
	if !r.Emitted() {
		return nil, false
	}
	out, err := json.Marshal(r.Value)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Report is the wire form of a Result used by the wrapper transport.
type Report struct {
	Outcome Outcome         `json:"outcome"`
	Output  json.RawMessage `json:"output,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

// NewReport converts a Result into its wire form.
func NewReport(r Result) Report {
	rep := Report{Outcome: r.Outcome, Reason: r.Reason}
	if out, ok := r.Encode(); ok {
		rep.Output = out
	}
	return rep
}
