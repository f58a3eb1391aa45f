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
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// ErrInvalidKDFParams is returned when derivation parameters are rejected.
var ErrInvalidKDFParams = errors.New("invalid kdf parameters")

// HKDF derives keySize bytes from secret, salt and info (RFC 5869).
func HKDF(d DigestKind, secret, salt, info []byte, keySize int) ([]byte, error) {
	fn, err := HashFunc(d)
	if err != nil {
		return nil, err
	}
	if keySize < 0 || keySize > 255*d.Size() {
		return nil, fmt.Errorf("hkdf: %w: key size %d", ErrInvalidKDFParams, keySize)
	}

	out := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(fn, secret, salt, info), out); err != nil {
		return nil, fmt.Errorf("hkdf: %w", err)
	}
	return out, nil
}

// PBKDF2 derives keySize bytes using HMAC over d as the PRF.
func PBKDF2(d DigestKind, password, salt []byte, iterations, keySize int) ([]byte, error) {
	fn, err := HashFunc(d)
	if err != nil {
		return nil, err
	}
	if iterations < 1 || keySize < 0 {
		return nil, fmt.Errorf("pbkdf2: %w: iterations %d, key size %d", ErrInvalidKDFParams, iterations, keySize)
	}
	return pbkdf2.Key(password, salt, iterations, keySize, fn), nil
}

// Scrypt derives keySize bytes with the scrypt memory-hard function.
func Scrypt(password, salt []byte, n, r, p, keySize int) ([]byte, error) {
	if keySize < 0 {
		return nil, fmt.Errorf("scrypt: %w: key size %d", ErrInvalidKDFParams, keySize)
	}
	out, err := scrypt.Key(password, salt, n, r, p, keySize)
	if err != nil {
		return nil, fmt.Errorf("scrypt: %w: %v", ErrInvalidKDFParams, err)
	}
	return out, nil
}
