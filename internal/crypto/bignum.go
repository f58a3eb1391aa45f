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

package crypto

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when a modulus operand is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNoInverse is returned when the operand is not invertible.
	ErrNoInverse = errors.New("no modular inverse")
	// ErrUnknownCalcOp is returned for operations without an implementation.
	ErrUnknownCalcOp = errors.New("unknown bignum operation")
)

// Calc applies op to the operands bn. Operations read bn[0]..bn[2] as
// needed; bn[3] is carried for operations that take four operands.
//
// Results are fresh values; the operands are never modified. Modular
// results use Euclidean reduction and are never negative.
func Calc(op CalcOp, bn [4]*big.Int) (*big.Int, error) {
	z := new(big.Int)

	switch op {
	case CalcAdd:
		return z.Add(bn[0], bn[1]), nil
	case CalcSub:
		return z.Sub(bn[0], bn[1]), nil
	case CalcMul:
		return z.Mul(bn[0], bn[1]), nil
	case CalcSqr:
		return z.Mul(bn[0], bn[0]), nil
	case CalcInvMod:
		if bn[1].Sign() == 0 {
			return nil, fmt.Errorf("invmod: %w", ErrDivisionByZero)
		}
		if z.ModInverse(bn[0], bn[1]) == nil {
			return nil, fmt.Errorf("invmod: %w: %s mod %s", ErrNoInverse, bn[0], bn[1])
		}
		return z, nil
	case CalcExpMod:
		if bn[2].Sign() == 0 {
			return nil, fmt.Errorf("expmod: %w", ErrDivisionByZero)
		}
		if z.Exp(bn[0], bn[1], bn[2]) == nil {
			return nil, fmt.Errorf("expmod: %w", ErrNoInverse)
		}
		return z, nil
	case CalcMulMod:
		if bn[2].Sign() == 0 {
			return nil, fmt.Errorf("mulmod: %w", ErrDivisionByZero)
		}
		z.Mul(bn[0], bn[1])
		return z.Mod(z, bn[2]), nil
	case CalcMod:
		if bn[1].Sign() == 0 {
			return nil, fmt.Errorf("mod: %w", ErrDivisionByZero)
		}
		return z.Mod(bn[0], bn[1]), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCalcOp, op)
	}
}
