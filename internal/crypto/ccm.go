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
	"crypto/cipher"
	"crypto/subtle"
	"fmt"

	"github.com/pion/dtls/v2/pkg/crypto/ccm"
)

// AES-CCM (NIST SP 800-38C).
//
// The length field L is the smallest size in [2,4] that encodes the message
// length, raised to 15-len(nonce) for short nonces, and the nonce is clamped
// to 15-L bytes. Nonces shorter than 7 bytes are rejected.

func ccmNonce(nonce []byte, msgLen int) ([]byte, error) {
	if len(nonce) < 7 {
		return nil, fmt.Errorf("ccm: %w: %d bytes (minimum 7)", ErrInvalidNonce, len(nonce))
	}
	L := 2
	for L < 4 && msgLen>>(8*L) != 0 {
		L++
	}
	if L < 15-len(nonce) {
		L = 15 - len(nonce)
	}
	return nonce[:15-L], nil
}

func newCCM(b cipher.Block, nonce []byte, msgLen, tagSize int) (ccm.CCM, []byte, error) {
	n, err := ccmNonce(nonce, msgLen)
	if err != nil {
		return nil, nil, err
	}
	aead, err := ccm.NewCCM(b, tagSize, len(n))
	if err != nil {
		return nil, nil, fmt.Errorf("ccm: %w", err)
	}
	return aead, n, nil
}

func ccmSeal(b cipher.Block, nonce, aad, plaintext []byte, tagSize int) ([]byte, error) {
	aead, n, err := newCCM(b, nonce, len(plaintext), tagSize)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, n, plaintext, aad), nil
}

func ccmOpen(b cipher.Block, nonce, aad, ciphertext []byte, tagSize int) ([]byte, error) {
	if len(ciphertext) < tagSize {
		return nil, fmt.Errorf("ccm: %w: ciphertext shorter than tag", ErrAuthentication)
	}

	aead, n, err := newCCM(b, nonce, len(ciphertext)-tagSize, tagSize)
	if err != nil {
		return nil, err
	}

	// The library refuses a bare tag; an empty message is checked by resealing.
	if len(ciphertext) == tagSize {
		if subtle.ConstantTimeCompare(aead.Seal(nil, n, nil, aad), ciphertext) != 1 {
			return nil, fmt.Errorf("ccm: %w", ErrAuthentication)
		}
		return []byte{}, nil
	}

	out, err := aead.Open(nil, n, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("ccm: %w", ErrAuthentication)
	}
	return out, nil
}
