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

// Package util provides the field decoding used by the operation decoder.
//
// Binary descriptor fields travel as hexadecimal strings and counts or enum
// codes as decimal strings. Decimal parsing is lenient: leading whitespace and
// trailing garbage are ignored and the longest numeric prefix is used.
package util

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidNumber is returned when a decimal field carries no numeric prefix.
var ErrInvalidNumber = errors.New("invalid number")

// DecodeHex decodes a hex-encoded descriptor field to raw bytes.
//
// The "0x" prefix is accepted and stripped. Odd-length input or non-hex
// characters are reported as an error.
//
// Example:
//
//	// Both of these work:
//	bytes1, _ := DecodeHex("0x1234abcd")
//	bytes2, _ := DecodeHex("1234abcd")
func DecodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex field: %w", err)
	}
	return b, nil
}

// EncodeHex encodes raw bytes as lowercase hex.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// numericPrefix splits s into its sign and the digit run that follows it.
// An empty (or blank) string yields ok with no digits.
func numericPrefix(s string) (neg bool, digits string, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	if s == "" {
		return false, "", true
	}
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return false, "", false
	}
	return neg, s[:end], true
}

// ParseInt parses the longest signed decimal prefix of s.
//
// An empty field parses as 0. A field with no numeric prefix, or one that
// overflows int64, returns ErrInvalidNumber.
func ParseInt(s string) (int64, error) {
	neg, digits, ok := numericPrefix(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if digits == "" {
		return 0, nil
	}
	if neg {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// ParseUint parses the longest unsigned decimal prefix of s.
//
// Enum codes span the full uint64 range. Negative values, values with no
// numeric prefix and values that overflow return ErrInvalidNumber.
func ParseUint(s string) (uint64, error) {
	neg, digits, ok := numericPrefix(s)
	if !ok || (neg && strings.Trim(digits, "0") != "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if digits == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return v, nil
}

// ParseBigInt parses the longest signed decimal prefix of s as an
// arbitrary-precision integer. It never fails: a field without digits is 0.
func ParseBigInt(s string) *big.Int {
	neg, digits, ok := numericPrefix(s)
	if !ok || digits == "" {
		return new(big.Int)
	}
	v, _ := new(big.Int).SetString(digits, 10)
	if neg {
		v.Neg(v)
	}
	return v
}
