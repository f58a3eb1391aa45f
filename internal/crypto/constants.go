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

// Package crypto provides the algorithm families and primitive layer used by
// the adapter.
//
// This internal package defines the closed algorithm families (digests,
// ciphers, curves, bignum operations), their name parsing, and thin wrappers
// over the primitives that compute results. It is not intended for direct
// external use.
package crypto

import (
	"fmt"
	"strings"
)

// DigestKind identifies a hash function.
type DigestKind uint32

// Digest identifiers, in resolution priority order.
const (
	DigestSHA1      DigestKind = 1
	DigestSHA256    DigestKind = 2
	DigestSHA512    DigestKind = 3
	DigestRIPEMD160 DigestKind = 4
)

// CipherKind identifies a symmetric cipher and mode.
type CipherKind uint32

// Cipher identifiers, in resolution priority order.
const (
	CipherAES128CCM CipherKind = 1
	CipherAES256CCM CipherKind = 2
	CipherAES128GCM CipherKind = 3
	CipherAES256GCM CipherKind = 4
	CipherAES128OCB CipherKind = 5
	CipherAES256OCB CipherKind = 6
	CipherAES128CTR CipherKind = 7
	CipherAES256CTR CipherKind = 8
	CipherAES128CBC CipherKind = 9
	CipherAES256CBC CipherKind = 10
)

// CipherMode is the block cipher mode of a CipherKind.
type CipherMode uint32

// Block cipher modes.
const (
	ModeCCM CipherMode = 1
	ModeGCM CipherMode = 2
	ModeOCB CipherMode = 3
	ModeCTR CipherMode = 4
	ModeCBC CipherMode = 5
)

// CurveKind identifies an elliptic curve.
type CurveKind uint32

// Curve identifiers, in resolution priority order.
const (
	CurveX962P192v1 CurveKind = 1
	CurveSecp224r1  CurveKind = 2
	CurveX962P256v1 CurveKind = 3
	CurveSecp384r1  CurveKind = 4
	CurveSecp192k1  CurveKind = 5
	CurveSecp224k1  CurveKind = 6
	CurveSecp256k1  CurveKind = 7
)

// CalcOp identifies a bignum operation.
type CalcOp uint32

// Bignum operation identifiers, in resolution priority order.
const (
	CalcAdd    CalcOp = 1
	CalcSub    CalcOp = 2
	CalcMul    CalcOp = 3
	CalcSqr    CalcOp = 4
	CalcInvMod CalcOp = 5
	CalcSetBit CalcOp = 6
	CalcExpMod CalcOp = 7
	CalcMulMod CalcOp = 8
	CalcMod    CalcOp = 9
)

var digestNames = []string{"", "SHA1", "SHA256", "SHA512", "RIPEMD160"}

var cipherNames = []string{"",
	"AES_128_CCM", "AES_256_CCM",
	"AES_128_GCM", "AES_256_GCM",
	"AES_128_OCB", "AES_256_OCB",
	"AES_128_CTR", "AES_256_CTR",
	"AES_128_CBC", "AES_256_CBC",
}

var curveNames = []string{"",
	"x962_p192v1", "secp224r1", "x962_p256v1", "secp384r1",
	"secp192k1", "secp224k1", "secp256k1",
}

var calcOpNames = []string{"",
	"Add", "Sub", "Mul", "Sqr", "InvMod", "SetBit", "ExpMod", "MulMod", "Mod",
}

// Digests returns every digest kind in resolution priority order.
func Digests() []DigestKind {
	out := make([]DigestKind, 0, len(digestNames)-1)
	for i := 1; i < len(digestNames); i++ {
		out = append(out, DigestKind(i))
	}
	return out
}

// Ciphers returns every cipher kind in resolution priority order.
func Ciphers() []CipherKind {
	out := make([]CipherKind, 0, len(cipherNames)-1)
	for i := 1; i < len(cipherNames); i++ {
		out = append(out, CipherKind(i))
	}
	return out
}

// Curves returns every curve kind in resolution priority order.
func Curves() []CurveKind {
	out := make([]CurveKind, 0, len(curveNames)-1)
	for i := 1; i < len(curveNames); i++ {
		out = append(out, CurveKind(i))
	}
	return out
}

// CalcOps returns every bignum operation in resolution priority order.
func CalcOps() []CalcOp {
	out := make([]CalcOp, 0, len(calcOpNames)-1)
	for i := 1; i < len(calcOpNames); i++ {
		out = append(out, CalcOp(i))
	}
	return out
}

func nameOf(names []string, i uint32) string {
	if i == 0 || int(i) >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

// lookup finds name in names, case-insensitively.
func lookup(names []string, name string) (uint32, bool) {
	for i := 1; i < len(names); i++ {
		if strings.EqualFold(names[i], name) {
			return uint32(i), true
		}
	}
	return 0, false
}

func (d DigestKind) String() string { return nameOf(digestNames, uint32(d)) }
func (c CipherKind) String() string { return nameOf(cipherNames, uint32(c)) }
func (c CurveKind) String() string  { return nameOf(curveNames, uint32(c)) }
func (o CalcOp) String() string     { return nameOf(calcOpNames, uint32(o)) }

// Mode returns the block cipher mode of c.
func (c CipherKind) Mode() CipherMode {
	switch c {
	case CipherAES128CCM, CipherAES256CCM:
		return ModeCCM
	case CipherAES128GCM, CipherAES256GCM:
		return ModeGCM
	case CipherAES128OCB, CipherAES256OCB:
		return ModeOCB
	case CipherAES128CTR, CipherAES256CTR:
		return ModeCTR
	case CipherAES128CBC, CipherAES256CBC:
		return ModeCBC
	default:
		return 0
	}
}

// Is256 reports whether c is the 256-bit member of its mode pair.
func (c CipherKind) Is256() bool {
	return c != 0 && c%2 == 0
}

// ParseDigest converts a digest name to its kind.
//
// Supported names (case-insensitive): SHA1, SHA256, SHA512, RIPEMD160.
func ParseDigest(name string) (DigestKind, error) {
	if i, ok := lookup(digestNames, name); ok {
		return DigestKind(i), nil
	}
	return 0, fmt.Errorf("unsupported digest: %s (supported: %s)", name, strings.Join(digestNames[1:], ", "))
}

// ParseCipher converts a cipher name such as "AES_128_GCM" to its kind.
func ParseCipher(name string) (CipherKind, error) {
	if i, ok := lookup(cipherNames, name); ok {
		return CipherKind(i), nil
	}
	return 0, fmt.Errorf("unsupported cipher: %s (supported: %s)", name, strings.Join(cipherNames[1:], ", "))
}

// ParseCurve converts a curve name such as "secp256k1" to its kind.
func ParseCurve(name string) (CurveKind, error) {
	if i, ok := lookup(curveNames, name); ok {
		return CurveKind(i), nil
	}
	return 0, fmt.Errorf("unsupported curve: %s (supported: %s)", name, strings.Join(curveNames[1:], ", "))
}

// ParseCalcOp converts a bignum operation name such as "MulMod" to its kind.
func ParseCalcOp(name string) (CalcOp, error) {
	if i, ok := lookup(calcOpNames, name); ok {
		return CalcOp(i), nil
	}
	return 0, fmt.Errorf("unsupported bignum operation: %s (supported: %s)", name, strings.Join(calcOpNames[1:], ", "))
}
