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

func (a *Adapter) hkdf(d *types.Descriptor) types.Result {
	p, err := d.HKDFParams()
	if err != nil {
		return types.Malformed(err)
	}

	kind, ok := a.table.Digest(p.DigestType)
	if !ok {
		return types.Unresolved("digest", p.DigestType)
	}

	key, err := crypto.HKDF(kind, p.Password, p.Salt, p.Info, int(p.KeySize))
	if err != nil {
		return types.PrimitiveFailure(err)
	}

	out := util.EncodeHex(key)
	if len(out)%2 != 0 {
		return types.Unsupported("odd-length hkdf output")
	}
	return types.Success(out)
}

func (a *Adapter) pbkdf2(d *types.Descriptor) types.Result {
	p, err := d.PBKDF2Params()
	if err != nil {
		return types.Malformed(err)
	}
	if p.Iterations == 0 {
		return types.Unsupported("zero iterations")
	}

	kind, ok := a.table.Digest(p.DigestType)
	if !ok {
		return types.Unresolved("digest", p.DigestType)
	}

	key, err := crypto.PBKDF2(kind, p.Password, p.Salt, int(p.Iterations), int(p.KeySize))
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(util.EncodeHex(key))
}

func (a *Adapter) scrypt(d *types.Descriptor) types.Result {
	p, err := d.ScryptParams()
	if err != nil {
		return types.Malformed(err)
	}
	if p.N == 0 || p.R == 0 || p.P == 0 {
		return types.Unsupported("scrypt cost N=%d r=%d p=%d", p.N, p.R, p.P)
	}

	key, err := crypto.Scrypt(p.Password, p.Salt, int(p.N), int(p.R), int(p.P), int(p.KeySize))
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(util.EncodeHex(key))
}
