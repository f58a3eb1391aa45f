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

package adapter

// Chunk splits input into consecutive slices whose lengths are driven by
// modifier. Each length is a 3-byte big-endian value taken from modifier,
// reduced modulo the remaining input length plus one; zero-length chunks
// are kept. Once fewer than 3 modifier bytes remain, the rest of input is
// one final chunk. The chunks alias input and concatenate back to it.
func Chunk(modifier, input []byte) [][]byte {
	var parts [][]byte
	for len(input) > 0 {
		n := len(input)
		if len(modifier) >= 3 {
			v := int(modifier[0])<<16 | int(modifier[1])<<8 | int(modifier[2])
			n = v % (n + 1)
			modifier = modifier[3:]
		}
		parts = append(parts, input[:n])
		input = input[n:]
	}
	return parts
}

// parts returns the update sequence for a hash input.
func (a *Adapter) parts(modifier, input []byte) [][]byte {
	if !a.opts.Multipart {
		return [][]byte{input}
	}
	return Chunk(modifier, input)
}
