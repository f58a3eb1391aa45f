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
)

func (a *Adapter) bignumCalc(d *types.Descriptor) types.Result {
	ops, err := d.BignumOperands()
	if err != nil {
		return types.Malformed(err)
	}

	op, ok := a.table.CalcOp(ops.CalcOp)
	if !ok {
		return types.Unresolved("calcop", ops.CalcOp)
	}

	bn := ops.BN
	switch op {
	case crypto.CalcSetBit:
		return types.Unsupported("SetBit is inert")
	case crypto.CalcExpMod:
		if !a.opts.ExpMod {
			return types.Unsupported("ExpMod is not enabled")
		}
		if bn[2].Sign() == 0 {
			return types.Unsupported("ExpMod with zero modulus")
		}
	case crypto.CalcMulMod:
		if bn[2].Sign() == 0 {
			return types.Unsupported("MulMod with zero modulus")
		}
	case crypto.CalcMod:
		if bn[1].Sign() == 0 {
			return types.Unsupported("Mod with zero modulus")
		}
	}

	z, err := crypto.Calc(op, bn)
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(z.String())
}
