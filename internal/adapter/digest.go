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

package adapter

import (
	"github.com/fouzhe/cryptofuzz/internal/crypto"
	"github.com/fouzhe/cryptofuzz/internal/types"
	"github.com/fouzhe/cryptofuzz/internal/util"
)

func (a *Adapter) digest(d *types.Descriptor) types.Result {
	p, err := d.DigestParams()
	if err != nil {
		return types.Malformed(err)
	}

	kind, ok := a.table.Digest(p.DigestType)
	if !ok {
		return types.Unresolved("digest", p.DigestType)
	}

	out, err := crypto.Digest(kind, a.parts(p.Modifier, p.Cleartext)...)
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(util.EncodeHex(out))
}

func (a *Adapter) hmac(d *types.Descriptor) types.Result {
	p, err := d.HMACParams()
	if err != nil {
		return types.Malformed(err)
	}

	kind, ok := a.table.Digest(p.DigestType)
	if !ok {
		return types.Unresolved("digest", p.DigestType)
	}

	out, err := crypto.HMAC(kind, p.Key, a.parts(p.Modifier, p.Cleartext)...)
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(util.EncodeHex(out))
}
