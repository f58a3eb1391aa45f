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

package cryptofuzz

import (
	"github.com/fouzhe/cryptofuzz/internal/adapter"
	"github.com/fouzhe/cryptofuzz/internal/classify"
	"github.com/fouzhe/cryptofuzz/internal/config"
	"github.com/fouzhe/cryptofuzz/internal/network"
	"github.com/fouzhe/cryptofuzz/internal/types"
)

// Re-export types from the internal packages for the public API.

type (
	Descriptor         = types.Descriptor
	CipherSpec         = types.CipherSpec
	Numeric            = types.Numeric
	Result             = types.Result
	Outcome            = types.Outcome
	Report             = types.Report
	AdapterOptions     = types.AdapterOptions
	OperationKind      = types.OperationKind
	Config             = config.Config
	ClassificationSpec = classify.Spec
	Server             = network.Server
	Remote             = network.HTTPClient
)

// Re-export outcome tags.
const (
	OutcomeSuccess          = types.OutcomeSuccess
	OutcomeUnsupported      = types.OutcomeUnsupported
	OutcomeUnresolved       = types.OutcomeUnresolved
	OutcomePrimitiveFailure = types.OutcomePrimitiveFailure
	OutcomeMalformed        = types.OutcomeMalformed
)

// Re-export operation kinds.
const (
	OpDigest             = types.OpDigest
	OpHMAC               = types.OpHMAC
	OpSymmetricEncrypt   = types.OpSymmetricEncrypt
	OpSymmetricDecrypt   = types.OpSymmetricDecrypt
	OpKDFHKDF            = types.OpKDFHKDF
	OpKDFPBKDF2          = types.OpKDFPBKDF2
	OpKDFScrypt          = types.OpKDFScrypt
	OpBignumCalc         = types.OpBignumCalc
	OpECCPrivateToPublic = types.OpECCPrivateToPublic
)

// Re-export functions from the internal packages.
var (
	ParseDescriptor     = types.ParseDescriptor
	ParseDescriptorCBOR = types.ParseDescriptorCBOR
	NewReport           = types.NewReport
	Chunk               = adapter.Chunk
)

// ErrRemoteCrash is returned by Remote when the wrapper server reports a crash.
var ErrRemoteCrash = network.ErrRemoteCrash
