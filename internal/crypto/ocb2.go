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
	"encoding/binary"
	"fmt"
)

// OCB2 without associated data. The nonce must be exactly one block. The
// offset starts at 2*E(N) and is doubled after every full block and once
// more after the final pad.

func ocb2Seal(b cipher.Block, nonce, plaintext []byte, tagSize int) ([]byte, error) {
	if len(nonce) != 16 {
		return nil, fmt.Errorf("ocb2: %w: %d bytes (must be 16)", ErrInvalidNonce, len(nonce))
	}

	var delta, checksum, t [16]byte
	b.Encrypt(delta[:], nonce)
	delta = times2(delta)

	out := make([]byte, 0, len(plaintext)+tagSize)
	m := plaintext
	for len(m) > 16 {
		xorBytes(checksum[:], checksum[:], m[:16])
		xorBytes(t[:], delta[:], m[:16])
		b.Encrypt(t[:], t[:])
		xorBytes(t[:], t[:], delta[:])
		out = append(out, t[:]...)
		delta = times2(delta)
		m = m[16:]
	}

	pad := ocb2Pad(b, delta, len(m))
	delta = times2(delta)
	c := make([]byte, len(m))
	xorBytes(c, m, pad[:len(m)])
	out = append(out, c...)

	// C_m || 0* xor Pad is M_m || Pad[len(m):].
	last := pad
	copy(last[:], m)
	xorBytes(checksum[:], checksum[:], last[:])

	tag := ocb2Tag(b, checksum, delta)
	return append(out, tag[:tagSize]...), nil
}

func ocb2Open(b cipher.Block, nonce, ciphertext []byte, tagSize int) ([]byte, error) {
	if len(nonce) != 16 {
		return nil, fmt.Errorf("ocb2: %w: %d bytes (must be 16)", ErrInvalidNonce, len(nonce))
	}
	if len(ciphertext) < tagSize {
		return nil, fmt.Errorf("ocb2: %w: ciphertext shorter than tag", ErrAuthentication)
	}
	body, tag := ciphertext[:len(ciphertext)-tagSize], ciphertext[len(ciphertext)-tagSize:]

	var delta, checksum, t [16]byte
	b.Encrypt(delta[:], nonce)
	delta = times2(delta)

	out := make([]byte, 0, len(body))
	c := body
	for len(c) > 16 {
		xorBytes(t[:], delta[:], c[:16])
		b.Decrypt(t[:], t[:])
		xorBytes(t[:], t[:], delta[:])
		xorBytes(checksum[:], checksum[:], t[:])
		out = append(out, t[:]...)
		delta = times2(delta)
		c = c[16:]
	}

	pad := ocb2Pad(b, delta, len(c))
	delta = times2(delta)
	m := make([]byte, len(c))
	xorBytes(m, c, pad[:len(c)])
	out = append(out, m...)

	last := pad
	copy(last[:], m)
	xorBytes(checksum[:], checksum[:], last[:])

	expected := ocb2Tag(b, checksum, delta)
	if subtle.ConstantTimeCompare(expected[:tagSize], tag) != 1 {
		return nil, fmt.Errorf("ocb2: %w", ErrAuthentication)
	}
	return out, nil
}

// ocb2Pad returns E(delta xor len(bits)).
func ocb2Pad(b cipher.Block, delta [16]byte, n int) [16]byte {
	var pad [16]byte
	binary.BigEndian.PutUint64(pad[8:], uint64(n)*8)
	xorBytes(pad[:], pad[:], delta[:])
	b.Encrypt(pad[:], pad[:])
	return pad
}

// ocb2Tag returns E(checksum xor 3*delta).
func ocb2Tag(b cipher.Block, checksum, delta [16]byte) [16]byte {
	d2 := times2(delta)
	var t [16]byte
	xorBytes(t[:], checksum[:], delta[:])
	xorBytes(t[:], t[:], d2[:])
	b.Encrypt(t[:], t[:])
	return t
}

// times2 doubles x in GF(2^128).
func times2(x [16]byte) [16]byte {
	var out [16]byte
	carry := x[0] >> 7
	for i := 0; i < 15; i++ {
		out[i] = x[i]<<1 | x[i+1]>>7
	}
	out[15] = x[15] << 1
	if carry != 0 {
		out[15] ^= 0x87
	}
	return out
}
