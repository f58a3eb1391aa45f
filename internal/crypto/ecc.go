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
	"crypto/elliptic"
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ErrUnknownCurve is returned for a CurveKind outside the family.
var ErrUnknownCurve = errors.New("unknown curve")

// ScalarBaseMult returns k*G on curve c in affine coordinates.
//
// The scalar is not validated against the curve order. It is handed to the
// curve implementation as big-endian magnitude bytes, so zero, negative and
// over-range scalars follow that implementation's own rules. The point at
// infinity is reported as (0, 0).
//
// Supported curves:
//   - secp224r1, x962_p256v1, secp384r1 (crypto/elliptic)
//   - secp256k1 (btcec)
//   - x962_p192v1, secp192k1, secp224k1 (short Weierstrass arithmetic)
func ScalarBaseMult(c CurveKind, k *big.Int) (*big.Int, *big.Int, error) {
	scalar := k.Bytes()

	switch c {
	case CurveSecp224r1:
		x, y := elliptic.P224().ScalarBaseMult(scalar)
		return x, y, nil
	case CurveX962P256v1:
		x, y := elliptic.P256().ScalarBaseMult(scalar)
		return x, y, nil
	case CurveSecp384r1:
		x, y := elliptic.P384().ScalarBaseMult(scalar)
		return x, y, nil
	case CurveSecp256k1:
		x, y := btcec.S256().ScalarBaseMult(scalar)
		return x, y, nil
	case CurveX962P192v1, CurveSecp192k1, CurveSecp224k1:
		x, y := weierstrassCurves[c].scalarBaseMult(scalar)
		return x, y, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownCurve, c)
	}
}

// CoordinateSize returns the byte length of a field element of c.
func (c CurveKind) CoordinateSize() int {
	switch c {
	case CurveX962P192v1, CurveSecp192k1:
		return 24
	case CurveSecp224r1, CurveSecp224k1:
		return 28
	case CurveX962P256v1, CurveSecp256k1:
		return 32
	case CurveSecp384r1:
		return 48
	default:
		return 0
	}
}

// weierstrass is a curve y^2 = x^3 + ax + b over GF(p) without a library
// implementation. crypto/elliptic.CurveParams assumes a = -3 and cannot
// serve the Koblitz curves.
type weierstrass struct {
	p, n, a, b *big.Int
	gx, gy     *big.Int
}

var weierstrassCurves = map[CurveKind]*weierstrass{
	CurveX962P192v1: {
		p:  hexInt("fffffffffffffffffffffffffffffffeffffffffffffffff"),
		n:  hexInt("ffffffffffffffffffffffff99def836146bc9b1b4d22831"),
		a:  hexInt("fffffffffffffffffffffffffffffffefffffffffffffffc"),
		b:  hexInt("64210519e59c80e70fa7e9ab72243049feb8deecc146b9b1"),
		gx: hexInt("188da80eb03090f67cbf20eb43a18800f4ff0afd82ff1012"),
		gy: hexInt("07192b95ffc8da78631011ed6b24cdd573f977a11e794811"),
	},
	CurveSecp192k1: {
		p:  hexInt("fffffffffffffffffffffffffffffffffffffffeffffee37"),
		n:  hexInt("fffffffffffffffffffffffe26f2fc170f69466a74defd8d"),
		a:  big.NewInt(0),
		b:  big.NewInt(3),
		gx: hexInt("db4ff10ec057e9ae26b07d0280b7f4341da5d1b1eae06c7d"),
		gy: hexInt("9b2f2f6d9c5628a7844163d015be86344082aa88d95e2f9d"),
	},
	CurveSecp224k1: {
		p:  hexInt("fffffffffffffffffffffffffffffffffffffffffffffffeffffe56d"),
		n:  hexInt("010000000000000000000000000001dce8d2ec6184caf0a971769fb1f7"),
		a:  big.NewInt(0),
		b:  big.NewInt(5),
		gx: hexInt("a1455b334df099df30fc28a169a467e9e47075a90f7e650eb6b7a45c"),
		gy: hexInt("7e089fed7fba344282cafbd6f7e319f7c0b0bd59e2ca4bdb556d61a5"),
	},
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("crypto: bad curve constant " + s)
	}
	return v
}

// point is an affine point; nil is the point at infinity.
type point struct {
	x, y *big.Int
}

// scalarBaseMult computes k*G with left-to-right double-and-add. The
// scalar is used as given, without reduction modulo the order.
func (c *weierstrass) scalarBaseMult(k []byte) (*big.Int, *big.Int) {
	g := &point{c.gx, c.gy}
	var r *point
	for _, byt := range k {
		for bit := 7; bit >= 0; bit-- {
			r = c.double(r)
			if byt>>uint(bit)&1 == 1 {
				r = c.add(r, g)
			}
		}
	}
	if r == nil {
		return new(big.Int), new(big.Int)
	}
	return new(big.Int).Set(r.x), new(big.Int).Set(r.y)
}

func (c *weierstrass) add(p, q *point) *point {
	if p == nil {
		return q
	}
	if q == nil {
		return p
	}
	if p.x.Cmp(q.x) == 0 {
		if p.y.Cmp(q.y) == 0 {
			return c.double(p)
		}
		return nil
	}

	// lambda = (qy - py) / (qx - px)
	num := new(big.Int).Sub(q.y, p.y)
	den := new(big.Int).Sub(q.x, p.x)
	den.Mod(den, c.p)
	den.ModInverse(den, c.p)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, c.p)

	return c.finish(lambda, p, q.x)
}

func (c *weierstrass) double(p *point) *point {
	if p == nil || p.y.Sign() == 0 {
		return nil
	}

	// lambda = (3x^2 + a) / 2y
	num := new(big.Int).Mul(p.x, p.x)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.a)
	den := new(big.Int).Lsh(p.y, 1)
	den.Mod(den, c.p)
	den.ModInverse(den, c.p)
	lambda := num.Mul(num, den)
	lambda.Mod(lambda, c.p)

	return c.finish(lambda, p, p.x)
}

// finish computes x3 = lambda^2 - px - qx, y3 = lambda(px - x3) - py.
func (c *weierstrass) finish(lambda *big.Int, p *point, qx *big.Int) *point {
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Sub(x3, p.x)
	x3.Sub(x3, qx)
	x3.Mod(x3, c.p)

	y3 := new(big.Int).Sub(p.x, x3)
	y3.Mul(y3, lambda)
	y3.Sub(y3, p.y)
	y3.Mod(y3, c.p)

	return &point{x3, y3}
}

// isOnCurve reports whether (x, y) satisfies the curve equation.
func (c *weierstrass) isOnCurve(x, y *big.Int) bool {
	lhs := new(big.Int).Mul(y, y)
	lhs.Mod(lhs, c.p)

	rhs := new(big.Int).Mul(x, x)
	rhs.Mul(rhs, x)
	ax := new(big.Int).Mul(c.a, x)
	rhs.Add(rhs, ax)
	rhs.Add(rhs, c.b)
	rhs.Mod(rhs, c.p)

	return lhs.Cmp(rhs) == 0
}
