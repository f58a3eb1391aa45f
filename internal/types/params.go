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

package types

import (
	"fmt"
	"math/big"

	"github.com/fouzhe/cryptofuzz/internal/util"
)

// DigestParams are the decoded fields of a Digest descriptor.
type DigestParams struct {
	DigestType uint64
	Cleartext  []byte
	Modifier   []byte
}

// HMACParams are the decoded fields of an HMAC descriptor.
type HMACParams struct {
	DigestType uint64
	Key        []byte
	Cleartext  []byte
	Modifier   []byte
}

// CipherParams are the decoded fields of a symmetric descriptor. Input is
// the cleartext when encrypting and the ciphertext when decrypting.
type CipherParams struct {
	CipherType uint64
	Key        []byte
	IV         []byte
	AAD        []byte
	Tag        []byte
	TagSize    int64
	Input      []byte
}

// HKDFParams are the decoded fields of a KDF_HKDF descriptor.
type HKDFParams struct {
	DigestType uint64
	Password   []byte
	Salt       []byte
	Info       []byte
	KeySize    int64
	Modifier   []byte
}

// PBKDF2Params are the decoded fields of a KDF_PBKDF2 descriptor.
type PBKDF2Params struct {
	DigestType uint64
	Iterations int64
	KeySize    int64
	Password   []byte
	Salt       []byte
	Modifier   []byte
}

// ScryptParams are the decoded fields of a KDF_SCRYPT descriptor.
type ScryptParams struct {
	Password []byte
	Salt     []byte
	N, R, P  int64
	KeySize  int64
	Modifier []byte
}

// BignumOperands are the four operands and op code of a BignumCalc
// descriptor. Operands are never nil.
type BignumOperands struct {
	CalcOp uint64
	BN     [4]*big.Int
}

// ECCOperands are the decoded fields of an ECC_PrivateToPublic descriptor.
type ECCOperands struct {
	CurveType uint64
	Priv      *big.Int
}

// fieldDecoder decodes descriptor fields and keeps the first error.
type fieldDecoder struct {
	err error
}

func (f *fieldDecoder) hex(name, s string) []byte {
	if f.err != nil {
		return nil
	}
	b, err := util.DecodeHex(s)
	if err != nil {
		f.err = fmt.Errorf("%s: %w", name, err)
	}
	return b
}

func (f *fieldDecoder) code(name string, n Numeric) uint64 {
	if f.err != nil {
		return 0
	}
	v, err := n.Uint()
	if err != nil {
		f.err = fmt.Errorf("%s: %w", name, err)
	}
	return v
}

func (f *fieldDecoder) int(name string, n Numeric) int64 {
	if f.err != nil {
		return 0
	}
	v, err := n.Int()
	if err != nil {
		f.err = fmt.Errorf("%s: %w", name, err)
	}
	return v
}

// DigestParams decodes the Digest fields.
func (d *Descriptor) DigestParams() (DigestParams, error) {
	var f fieldDecoder
	p := DigestParams{
		DigestType: f.code("digestType", d.DigestType),
		Cleartext:  f.hex("cleartext", d.Cleartext),
		Modifier:   f.hex("modifier", d.Modifier),
	}
	return p, f.err
}

// HMACParams decodes the HMAC fields. The key is cipher.key.
func (d *Descriptor) HMACParams() (HMACParams, error) {
	var f fieldDecoder
	p := HMACParams{
		DigestType: f.code("digestType", d.DigestType),
		Cleartext:  f.hex("cleartext", d.Cleartext),
		Key:        f.hex("cipher.key", d.Cipher.Key),
		Modifier:   f.hex("modifier", d.Modifier),
	}
	return p, f.err
}

// EncryptParams decodes the SymmetricEncrypt fields.
func (d *Descriptor) EncryptParams() (CipherParams, error) {
	var f fieldDecoder
	p := CipherParams{
		Input:      f.hex("cleartext", d.Cleartext),
		CipherType: f.code("cipher.cipherType", d.Cipher.CipherType),
		Key:        f.hex("cipher.key", d.Cipher.Key),
		IV:         f.hex("cipher.iv", d.Cipher.IV),
		AAD:        f.hex("aad", d.AAD),
		TagSize:    f.int("tagSize", d.TagSize),
	}
	return p, f.err
}

// DecryptParams decodes the SymmetricDecrypt fields.
func (d *Descriptor) DecryptParams() (CipherParams, error) {
	var f fieldDecoder
	p := CipherParams{
		Input:      f.hex("ciphertext", d.Ciphertext),
		CipherType: f.code("cipher.cipherType", d.Cipher.CipherType),
		Key:        f.hex("cipher.key", d.Cipher.Key),
		IV:         f.hex("cipher.iv", d.Cipher.IV),
		AAD:        f.hex("aad", d.AAD),
		Tag:        f.hex("tag", d.Tag),
	}
	return p, f.err
}

// HKDFParams decodes the KDF_HKDF fields.
func (d *Descriptor) HKDFParams() (HKDFParams, error) {
	var f fieldDecoder
	p := HKDFParams{
		DigestType: f.code("digestType", d.DigestType),
		Password:   f.hex("password", d.Password),
		Salt:       f.hex("salt", d.Salt),
		Info:       f.hex("info", d.Info),
		KeySize:    f.int("keySize", d.KeySize),
		Modifier:   f.hex("modifier", d.Modifier),
	}
	return p, f.err
}

// PBKDF2Params decodes the KDF_PBKDF2 fields.
func (d *Descriptor) PBKDF2Params() (PBKDF2Params, error) {
	var f fieldDecoder
	p := PBKDF2Params{
		DigestType: f.code("digestType", d.DigestType),
		Iterations: f.int("iterations", d.Iterations),
		KeySize:    f.int("keySize", d.KeySize),
		Password:   f.hex("password", d.Password),
		Salt:       f.hex("salt", d.Salt),
		Modifier:   f.hex("modifier", d.Modifier),
	}
	return p, f.err
}

// ScryptParams decodes the KDF_SCRYPT fields.
func (d *Descriptor) ScryptParams() (ScryptParams, error) {
	var f fieldDecoder
	p := ScryptParams{
		Password: f.hex("password", d.Password),
		Salt:     f.hex("salt", d.Salt),
		N:        f.int("N", d.N),
		R:        f.int("r", d.R),
		P:        f.int("p", d.P),
		KeySize:  f.int("keySize", d.KeySize),
		Modifier: f.hex("modifier", d.Modifier),
	}
	return p, f.err
}

// BignumOperands decodes the BignumCalc fields. Operands never fail to
// decode; text without a numeric prefix is zero.
func (d *Descriptor) BignumOperands() (BignumOperands, error) {
	var f fieldDecoder
	p := BignumOperands{
		CalcOp: f.code("calcOp", d.CalcOp),
		BN:     [4]*big.Int{d.Bn0.Big(), d.Bn1.Big(), d.Bn2.Big(), d.Bn3.Big()},
	}
	return p, f.err
}

// ECCOperands decodes the ECC_PrivateToPublic fields.
func (d *Descriptor) ECCOperands() (ECCOperands, error) {
	var f fieldDecoder
	p := ECCOperands{
		CurveType: f.code("curveType", d.CurveType),
		Priv:      d.Priv.Big(),
	}
	return p, f.err
}
