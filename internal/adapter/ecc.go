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
	"math/big"

	"github.com/fouzhe/cryptofuzz/internal/crypto"
	"github.com/fouzhe/cryptofuzz/internal/types"
	"github.com/fouzhe/cryptofuzz/internal/util"
)

func (a *Adapter) eccPrivateToPublic(d *types.Descriptor) types.Result {
	ops, err := d.ECCOperands()
	if err != nil {
		return types.Malformed(err)
	}

	curve, ok := a.table.Curve(ops.CurveType)
	if !ok {
		return types.Unresolved("curve", ops.CurveType)
	}

	x, y, err := crypto.ScalarBaseMult(curve, ops.Priv)
	if err != nil {
		return types.PrimitiveFailure(err)
	}

	size := curve.CoordinateSize()
	return types.Success([2]string{coordinate(x, size), coordinate(y, size)})
}

// coordinate hex-encodes a field element at the curve's fixed width.
func coordinate(v *big.Int, size int) string {
	return util.EncodeHex(v.FillBytes(make([]byte, size)))
}
