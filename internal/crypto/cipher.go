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
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
)

// Tag sizes appended by the AEAD modes.
const (
	GCMTagSize = 16
	CCMTagSize = 8
	OCBTagSize = 8
)

var (
	// ErrUnknownCipher is returned for a CipherKind outside the family.
	ErrUnknownCipher = errors.New("unknown cipher")
	// ErrInvalidKeySize is returned when the key is not a valid AES key.
	ErrInvalidKeySize = errors.New("invalid key size")
	// ErrInvalidNonce is returned when the IV length is unusable by the mode.
	ErrInvalidNonce = errors.New("invalid nonce size")
	// ErrAuthentication is returned when a tag does not verify.
	ErrAuthentication = errors.New("message authentication failed")
	// ErrInvalidPadding is returned when CBC padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
)

func newBlock(key []byte) (cipher.Block, error) {
	b, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeySize, len(key))
	}
	return b, nil
}

// Encrypt encrypts plaintext under key and iv using the mode of c.
//
// The AES variant follows the key length. AEAD modes append their tag
// (GCMTagSize, CCMTagSize, OCBTagSize) and CBC applies PKCS#7 padding.
func Encrypt(c CipherKind, key, iv, plaintext []byte) ([]byte, error) {
	mode := c.Mode()
	if mode == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipher, c)
	}
	b, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeCCM:
		return ccmSeal(b, iv, nil, plaintext, CCMTagSize)
	case ModeGCM:
		aead, err := newGCM(b, iv)
		if err != nil {
			return nil, err
		}
		return aead.Seal(nil, iv, plaintext, nil), nil
	case ModeOCB:
		return ocb2Seal(b, iv, plaintext, OCBTagSize)
	case ModeCTR:
		return ctrXOR(b, iv, plaintext)
	default:
		return cbcEncrypt(b, iv, plaintext)
	}
}

// Decrypt reverses Encrypt. For AEAD modes the trailing tag is verified and
// removed; a mismatch returns ErrAuthentication.
func Decrypt(c CipherKind, key, iv, ciphertext []byte) ([]byte, error) {
	mode := c.Mode()
	if mode == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipher, c)
	}
	b, err := newBlock(key)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeCCM:
		return ccmOpen(b, iv, nil, ciphertext, CCMTagSize)
	case ModeGCM:
		aead, err := newGCM(b, iv)
		if err != nil {
			return nil, err
		}
		out, err := aead.Open(nil, iv, ciphertext, nil)
		if err != nil {
			return nil, fmt.Errorf("gcm: %w", ErrAuthentication)
		}
		return out, nil
	case ModeOCB:
		return ocb2Open(b, iv, ciphertext, OCBTagSize)
	case ModeCTR:
		return ctrXOR(b, iv, ciphertext)
	default:
		return cbcDecrypt(b, iv, ciphertext)
	}
}

func newGCM(b cipher.Block, iv []byte) (cipher.AEAD, error) {
	if len(iv) == 0 {
		return nil, fmt.Errorf("gcm: %w: 0 bytes", ErrInvalidNonce)
	}
	aead, err := cipher.NewGCMWithNonceSize(b, len(iv))
	if err != nil {
		return nil, fmt.Errorf("gcm: %w", err)
	}
	return aead, nil
}

// ctrXOR checks the IV length first: cipher.NewCTR panics on a mismatch.
func ctrXOR(b cipher.Block, iv, in []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("ctr: %w: %d bytes", ErrInvalidNonce, len(iv))
	}
	out := make([]byte, len(in))
	cipher.NewCTR(b, iv).XORKeyStream(out, in)
	return out, nil
}

func cbcEncrypt(b cipher.Block, iv, plaintext []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("cbc: %w: %d bytes", ErrInvalidNonce, len(iv))
	}
	n := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(bytes.Clone(plaintext), bytes.Repeat([]byte{byte(n)}, n)...)
	cipher.NewCBCEncrypter(b, iv).CryptBlocks(padded, padded)
	return padded, nil
}

func cbcDecrypt(b cipher.Block, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("cbc: %w: %d bytes", ErrInvalidNonce, len(iv))
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("cbc: %w: ciphertext length %d", ErrInvalidPadding, len(ciphertext))
	}
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(b, iv).CryptBlocks(out, ciphertext)

	n := int(out[len(out)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("cbc: %w", ErrInvalidPadding)
	}
	for _, p := range out[len(out)-n:] {
		if int(p) != n {
			return nil, fmt.Errorf("cbc: %w", ErrInvalidPadding)
		}
	}
	return out[:len(out)-n], nil
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
