// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
// -----------------------------------------------------------------------------

package crypto

import (
	"encoding/hex"
	"errors"
	"testing"
)

// RFC 5869 test case 1.
func TestHKDFKnownAnswer(t *testing.T) {
	ikm := mustHex(t, "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	salt := mustHex(t, "000102030405060708090a0b0c")
	info := mustHex(t, "f0f1f2f3f4f5f6f7f8f9")

	out, err := HKDF(DigestSHA256, ikm, salt, info, 42)
	if err != nil {
		t.Fatalf("HKDF failed: %v", err)
	}
	expected := "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865"
	if got := hex.EncodeToString(out); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestHKDFRejectsOversizedOutput(t *testing.T) {
	if _, err := HKDF(DigestSHA1, nil, nil, nil, 255*20+1); !errors.Is(err, ErrInvalidKDFParams) {
		t.Errorf("Expected ErrInvalidKDFParams, got %v", err)
	}
	out, err := HKDF(DigestSHA1, nil, nil, nil, 0)
	if err != nil || len(out) != 0 {
		t.Errorf("Expected empty output for zero key size, got %x (%v)", out, err)
	}
}

// RFC 6070 test vectors and the common PBKDF2-HMAC-SHA256 vector.
func TestPBKDF2KnownAnswers(t *testing.T) {
	tests := []struct {
		kind       DigestKind
		iterations int
		keySize    int
		expected   string
	}{
		{DigestSHA1, 1, 20, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{DigestSHA1, 2, 20, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{DigestSHA256, 1, 32, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b"},
	}

	for _, tt := range tests {
		out, err := PBKDF2(tt.kind, []byte("password"), []byte("salt"), tt.iterations, tt.keySize)
		if err != nil {
			t.Fatalf("PBKDF2 failed: %v", err)
		}
		if got := hex.EncodeToString(out); got != tt.expected {
			t.Errorf("%v/%d: expected %s, got %s", tt.kind, tt.iterations, tt.expected, got)
		}
	}
}

func TestPBKDF2RejectsZeroIterations(t *testing.T) {
	if _, err := PBKDF2(DigestSHA256, nil, nil, 0, 16); !errors.Is(err, ErrInvalidKDFParams) {
		t.Errorf("Expected ErrInvalidKDFParams, got %v", err)
	}
}

// RFC 7914 section 12, first vector.
func TestScryptKnownAnswer(t *testing.T) {
	out, err := Scrypt(nil, nil, 16, 1, 1, 64)
	if err != nil {
		t.Fatalf("Scrypt failed: %v", err)
	}
	expected := "77d6576238657b203b19ca42c18a0497f16b4844e3074ae8dfdffa3fede21442" +
		"fcd0069ded0948f8326a753a0fc81f17e8d3e0fb2e0d3628cf35e20c38d18906"
	if got := hex.EncodeToString(out); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestScryptRejectsBadCost(t *testing.T) {
	if _, err := Scrypt(nil, nil, 3, 1, 1, 16); !errors.Is(err, ErrInvalidKDFParams) {
		t.Errorf("Expected ErrInvalidKDFParams for non power of two N, got %v", err)
	}
}
