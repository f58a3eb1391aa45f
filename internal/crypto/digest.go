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
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"

	"golang.org/x/crypto/ripemd160"
)

// ErrUnknownDigest is returned for a DigestKind outside the family.
var ErrUnknownDigest = errors.New("unknown digest")

// HashFunc returns the constructor for d.
func HashFunc(d DigestKind) (func() hash.Hash, error) {
	switch d {
	case DigestSHA1:
		return sha1.New, nil
	case DigestSHA256:
		return sha256.New, nil
	case DigestSHA512:
		return sha512.New, nil
	case DigestRIPEMD160:
		return ripemd160.New, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDigest, d)
	}
}

// NewHash returns a fresh hash instance for d.
func NewHash(d DigestKind) (hash.Hash, error) {
	fn, err := HashFunc(d)
	if err != nil {
		return nil, err
	}
	return fn(), nil
}

// Size returns the output length of d in bytes, or 0 for an unknown kind.
func (d DigestKind) Size() int {
	switch d {
	case DigestSHA1, DigestRIPEMD160:
		return 20
	case DigestSHA256:
		return 32
	case DigestSHA512:
		return 64
	default:
		return 0
	}
}

// Digest hashes chunks in order, issuing one update per chunk.
func Digest(d DigestKind, chunks ...[]byte) ([]byte, error) {
	h, err := NewHash(d)
	if err != nil {
		return nil, err
	}
	return update(h, chunks), nil
}

// HMAC computes HMAC over chunks keyed by key, using d as the hash.
func HMAC(d DigestKind, key []byte, chunks ...[]byte) ([]byte, error) {
	fn, err := HashFunc(d)
	if err != nil {
		return nil, err
	}
	return update(hmac.New(fn, key), chunks), nil
}

func update(h hash.Hash, chunks [][]byte) []byte {
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}
