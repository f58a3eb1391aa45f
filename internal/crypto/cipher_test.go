// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
// -----------------------------------------------------------------------------

package crypto

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"errors"
	"testing"
)

// GCM test case 2 (McGrew & Viega).
func TestEncryptGCMKnownAnswer(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 12)
	pt := make([]byte, 16)

	out, err := Encrypt(CipherAES128GCM, key, iv, pt)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	expected := "0388dace60b6a392f328c2b971b2fe78" + "ab6e47d42cec13bdf53a67b21257bddf"
	if got := hex.EncodeToString(out); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	back, err := Decrypt(CipherAES128GCM, key, iv, out)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("Expected %x, got %x", pt, back)
	}
}

func TestGCMRejectsEmptyIV(t *testing.T) {
	_, err := Encrypt(CipherAES128GCM, make([]byte, 16), nil, []byte("x"))
	if !errors.Is(err, ErrInvalidNonce) {
		t.Errorf("Expected ErrInvalidNonce, got %v", err)
	}
}

// NIST SP 800-38C, appendix C, examples 1 and 2.
func TestCCMKnownAnswers(t *testing.T) {
	key := mustHex(t, "404142434445464748494a4b4c4d4e4f")
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		nonce    string
		aad      string
		pt       string
		tagSize  int
		expected string
	}{
		{"example1", "10111213141516", "0001020304050607", "20212223", 4, "7162015b4dac255d"},
		{"example2", "1011121314151617", "000102030405060708090a0b0c0d0e0f", "202122232425262728292a2b2c2d2e2f", 6, "d2a1f0e051ea5f62081a7792073d593d1fc64fbfaccd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nonce, aad, pt := mustHex(t, tt.nonce), mustHex(t, tt.aad), mustHex(t, tt.pt)
			out, err := ccmSeal(block, nonce, aad, pt, tt.tagSize)
			if err != nil {
				t.Fatalf("ccmSeal failed: %v", err)
			}
			if got := hex.EncodeToString(out); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}

			back, err := ccmOpen(block, nonce, aad, out, tt.tagSize)
			if err != nil {
				t.Fatalf("ccmOpen failed: %v", err)
			}
			if !bytes.Equal(back, pt) {
				t.Errorf("Expected %x, got %x", pt, back)
			}
		})
	}
}

func TestCCMNonceHandling(t *testing.T) {
	key := make([]byte, 16)

	if _, err := Encrypt(CipherAES128CCM, key, make([]byte, 6), []byte("abc")); !errors.Is(err, ErrInvalidNonce) {
		t.Errorf("Expected ErrInvalidNonce for 6-byte nonce, got %v", err)
	}

	// Nonces longer than 13 bytes are clamped.
	long := bytes.Repeat([]byte{0x42}, 20)
	a, err := Encrypt(CipherAES128CCM, key, long, []byte("abc"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	b, err := Encrypt(CipherAES128CCM, key, long[:13], []byte("abc"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Expected a 20-byte nonce to behave like its 13-byte prefix")
	}
	if len(a) != 3+CCMTagSize {
		t.Errorf("Expected %d bytes, got %d", 3+CCMTagSize, len(a))
	}
}

func TestCCMTamperDetection(t *testing.T) {
	key, nonce := make([]byte, 32), make([]byte, 12)
	ct, err := Encrypt(CipherAES256CCM, key, nonce, []byte("attack at dawn"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	ct[0] ^= 0x01
	if _, err := Decrypt(CipherAES256CCM, key, nonce, ct); !errors.Is(err, ErrAuthentication) {
		t.Errorf("Expected ErrAuthentication, got %v", err)
	}
	if _, err := Decrypt(CipherAES256CCM, key, nonce, ct[:3]); !errors.Is(err, ErrAuthentication) {
		t.Errorf("Expected ErrAuthentication for short input, got %v", err)
	}
}

func TestCCMEmptyAndLongMessages(t *testing.T) {
	key, nonce := make([]byte, 32), bytes.Repeat([]byte{0x24}, 13)

	for _, n := range []int{0, 1, 1 << 16} {
		pt := bytes.Repeat([]byte{0x5a}, n)
		ct, err := Encrypt(CipherAES256CCM, key, nonce, pt)
		if err != nil {
			t.Fatalf("Encrypt(%d) failed: %v", n, err)
		}
		if len(ct) != n+CCMTagSize {
			t.Errorf("Expected %d bytes, got %d", n+CCMTagSize, len(ct))
		}

		back, err := Decrypt(CipherAES256CCM, key, nonce, ct)
		if err != nil {
			t.Fatalf("Decrypt(%d) failed: %v", n, err)
		}
		if !bytes.Equal(back, pt) {
			t.Errorf("Round trip mismatch for length %d", n)
		}

		ct[len(ct)-1] ^= 0x01
		if _, err := Decrypt(CipherAES256CCM, key, nonce, ct); !errors.Is(err, ErrAuthentication) {
			t.Errorf("Expected ErrAuthentication for tampered length %d, got %v", n, err)
		}
	}
}

func TestOCB2RoundTrip(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	nonce := mustHex(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff")

	for _, n := range []int{0, 1, 15, 16, 17, 32, 33, 100} {
		pt := bytes.Repeat([]byte{0xa5}, n)
		ct, err := Encrypt(CipherAES128OCB, key, nonce, pt)
		if err != nil {
			t.Fatalf("Encrypt(%d) failed: %v", n, err)
		}
		if len(ct) != n+OCBTagSize {
			t.Errorf("Expected %d bytes, got %d", n+OCBTagSize, len(ct))
		}
		back, err := Decrypt(CipherAES128OCB, key, nonce, ct)
		if err != nil {
			t.Fatalf("Decrypt(%d) failed: %v", n, err)
		}
		if !bytes.Equal(back, pt) {
			t.Errorf("Round trip mismatch for length %d", n)
		}

		ct[len(ct)-1] ^= 0x80
		if _, err := Decrypt(CipherAES128OCB, key, nonce, ct); !errors.Is(err, ErrAuthentication) {
			t.Errorf("Expected ErrAuthentication for tampered length %d, got %v", n, err)
		}
	}
}

// OCB2.0 vectors with key and nonce 000102...0f and no header.
func TestOCB2KnownAnswers(t *testing.T) {
	block, err := aes.NewCipher(mustHex(t, "000102030405060708090a0b0c0d0e0f"))
	if err != nil {
		t.Fatalf("aes.NewCipher failed: %v", err)
	}
	nonce := mustHex(t, "000102030405060708090a0b0c0d0e0f")

	tests := []struct {
		name      string
		plaintext string
		body      string
		tag       string
	}{
		{"empty", "", "", "74835edc3ea97dcee48521519f099bc7"},
		{"8 bytes", "0001020304050607", "c636b3a868f429bb", "db165a03d0ea902b318450ed1f65ffa1"},
		{"16 bytes", "000102030405060708090a0b0c0d0e0f", "52e48f5d19fe2d9869f0c4a4b3d2be57", "1f5a8c032f4faa9b37d5a8e22018220d"},
		{
			"40 bytes",
			"000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f2021222324252627",
			"f75d6bc8b4dc8d66b836a2b08b32a6369f1cd3c5228d79fd6c267f5f6aa7b231c7dfb9d59951ae9c",
			"22bed6926e17dd757c4c8e12d9b45fe0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pt := mustHex(t, tt.plaintext)
			expected := mustHex(t, tt.body+tt.tag)

			ct, err := ocb2Seal(block, nonce, pt, 16)
			if err != nil {
				t.Fatalf("ocb2Seal failed: %v", err)
			}
			if !bytes.Equal(ct, expected) {
				t.Errorf("Expected %x, got %x", expected, ct)
			}

			back, err := ocb2Open(block, nonce, expected, 16)
			if err != nil {
				t.Fatalf("ocb2Open failed: %v", err)
			}
			if !bytes.Equal(back, pt) {
				t.Errorf("Expected %x, got %x", pt, back)
			}

			short, err := Encrypt(CipherAES128OCB, mustHex(t, "000102030405060708090a0b0c0d0e0f"), nonce, pt)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}
			if !bytes.Equal(short, expected[:len(pt)+OCBTagSize]) {
				t.Errorf("Expected %x, got %x", expected[:len(pt)+OCBTagSize], short)
			}
		})
	}
}

func TestOCB2RequiresBlockNonce(t *testing.T) {
	_, err := Encrypt(CipherAES256OCB, make([]byte, 32), make([]byte, 32), []byte("x"))
	if !errors.Is(err, ErrInvalidNonce) {
		t.Errorf("Expected ErrInvalidNonce, got %v", err)
	}
}

func TestTimes2(t *testing.T) {
	var x [16]byte
	x[0] = 0x80
	y := times2(x)
	var expected [16]byte
	expected[15] = 0x87
	if y != expected {
		t.Errorf("Expected reduction by 0x87, got %x", y)
	}

	x = [16]byte{}
	x[15] = 0x01
	y = times2(x)
	if y[15] != 0x02 {
		t.Errorf("Expected 0x02, got %x", y[15])
	}
}

// NIST SP 800-38A F.5.1 and F.2.1, first block.
func TestCTRAndCBCKnownAnswers(t *testing.T) {
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	pt := mustHex(t, "6bc1bee22e409f96e93d7e117393172a")

	ctr, err := Encrypt(CipherAES128CTR, key, mustHex(t, "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"), pt)
	if err != nil {
		t.Fatalf("CTR Encrypt failed: %v", err)
	}
	if got := hex.EncodeToString(ctr); got != "874d6191b620e3261bef6864990db6ce" {
		t.Errorf("Unexpected CTR output %s", got)
	}

	iv := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	cbc, err := Encrypt(CipherAES128CBC, key, iv, pt)
	if err != nil {
		t.Fatalf("CBC Encrypt failed: %v", err)
	}
	if len(cbc) != 32 {
		t.Fatalf("Expected a full padding block, got %d bytes", len(cbc))
	}
	if got := hex.EncodeToString(cbc[:16]); got != "7649abac8119b246cee98e9b12e9197d" {
		t.Errorf("Unexpected CBC output %s", got)
	}
	back, err := Decrypt(CipherAES128CBC, key, iv, cbc)
	if err != nil {
		t.Fatalf("CBC Decrypt failed: %v", err)
	}
	if !bytes.Equal(back, pt) {
		t.Errorf("Expected %x, got %x", pt, back)
	}
}

func TestCTRRejectsWrongIVSize(t *testing.T) {
	_, err := Encrypt(CipherAES256CTR, make([]byte, 32), make([]byte, 32), []byte("x"))
	if !errors.Is(err, ErrInvalidNonce) {
		t.Errorf("Expected ErrInvalidNonce, got %v", err)
	}
}

func TestCBCRejectsBadPadding(t *testing.T) {
	key, iv := make([]byte, 16), make([]byte, 16)
	if _, err := Decrypt(CipherAES128CBC, key, iv, make([]byte, 15)); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("Expected ErrInvalidPadding for partial block, got %v", err)
	}
	ct, _ := Encrypt(CipherAES128CBC, key, iv, []byte("sixteen byte msg"))
	// Flipping the previous block turns the 0x10 padding byte into 0xef.
	ct[15] ^= 0xff
	if _, err := Decrypt(CipherAES128CBC, key, iv, ct); !errors.Is(err, ErrInvalidPadding) {
		t.Errorf("Expected ErrInvalidPadding, got %v", err)
	}
}

func TestEncryptRejectsBadKey(t *testing.T) {
	_, err := Encrypt(CipherAES128CCM, make([]byte, 8), make([]byte, 12), []byte("x"))
	if !errors.Is(err, ErrInvalidKeySize) {
		t.Errorf("Expected ErrInvalidKeySize, got %v", err)
	}
	if _, err := Encrypt(CipherKind(0), make([]byte, 16), nil, nil); !errors.Is(err, ErrUnknownCipher) {
		t.Errorf("Expected ErrUnknownCipher, got %v", err)
	}
}
