// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
// -----------------------------------------------------------------------------

package crypto

import (
	"errors"
	"math/big"
	"testing"
)

func TestCalc(t *testing.T) {
	n := func(s string) *big.Int {
		v, _ := new(big.Int).SetString(s, 10)
		return v
	}
	zero := big.NewInt(0)

	tests := []struct {
		name     string
		op       CalcOp
		bn       [4]*big.Int
		expected string
		wantErr  error
	}{
		{"add", CalcAdd, [4]*big.Int{n("2"), n("3"), zero, zero}, "5", nil},
		{"sub negative", CalcSub, [4]*big.Int{n("2"), n("3"), zero, zero}, "-1", nil},
		{"mul", CalcMul, [4]*big.Int{n("123456789123456789"), n("1000000000"), zero, zero}, "123456789123456789000000000", nil},
		{"sqr", CalcSqr, [4]*big.Int{n("-12"), zero, zero, zero}, "144", nil},
		{"invmod", CalcInvMod, [4]*big.Int{n("3"), n("11"), zero, zero}, "4", nil},
		{"invmod not coprime", CalcInvMod, [4]*big.Int{n("4"), n("8"), zero, zero}, "", ErrNoInverse},
		{"invmod zero modulus", CalcInvMod, [4]*big.Int{n("4"), zero, zero, zero}, "", ErrDivisionByZero},
		{"expmod", CalcExpMod, [4]*big.Int{n("4"), n("13"), n("497"), zero}, "445", nil},
		{"expmod zero modulus", CalcExpMod, [4]*big.Int{n("4"), n("13"), zero, zero}, "", ErrDivisionByZero},
		{"mulmod", CalcMulMod, [4]*big.Int{n("7"), n("8"), n("5"), zero}, "1", nil},
		{"mulmod negative", CalcMulMod, [4]*big.Int{n("-7"), n("8"), n("5"), zero}, "4", nil},
		{"mulmod zero modulus", CalcMulMod, [4]*big.Int{n("7"), n("8"), zero, zero}, "", ErrDivisionByZero},
		{"mod", CalcMod, [4]*big.Int{n("10"), n("3"), zero, zero}, "1", nil},
		{"mod zero", CalcMod, [4]*big.Int{n("10"), zero, zero, zero}, "", ErrDivisionByZero},
		{"setbit", CalcSetBit, [4]*big.Int{n("10"), n("1"), zero, zero}, "", ErrUnknownCalcOp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calc(tt.op, tt.bn)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCalcDoesNotModifyOperands(t *testing.T) {
	a, b := big.NewInt(7), big.NewInt(5)
	if _, err := Calc(CalcMod, [4]*big.Int{a, b, big.NewInt(0), big.NewInt(0)}); err != nil {
		t.Fatal(err)
	}
	if a.Int64() != 7 || b.Int64() != 5 {
		t.Error("Operands were modified")
	}
}
