// -----------------------------------------------------------------------------
// Copyright (c) 2025 TEENet Technology (Hong Kong) Limited. All Rights Reserved.
// -----------------------------------------------------------------------------

package adapter

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/fouzhe/cryptofuzz/internal/classify"
	"github.com/fouzhe/cryptofuzz/internal/crypto"
	"github.com/fouzhe/cryptofuzz/internal/types"
)

// code returns the default-table code of a kind; the embedded table maps
// every identity to its enumeration value.
func code[K ~uint32](k K) types.Numeric {
	return types.Numeric(strconv.FormatUint(uint64(k), 10))
}

func newTestAdapter(opts *types.AdapterOptions) *Adapter {
	return NewAdapterWithOptions(classify.Default(), opts)
}

func expectOutput(t *testing.T, r types.Result, want string) {
	t.Helper()
	if r.Outcome != types.OutcomeSuccess {
		t.Fatalf("Expected success, got %s: %s", r.Outcome, r.Reason)
	}
	got, ok := r.Value.(string)
	if !ok {
		t.Fatalf("Expected string value, got %T", r.Value)
	}
	if got != want {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func expectSkip(t *testing.T, r types.Result, want types.Outcome) {
	t.Helper()
	if r.Outcome != want {
		t.Errorf("Expected %s, got %s (%s)", want, r.Outcome, r.Reason)
	}
	if _, ok := r.Encode(); ok {
		t.Error("Expected no output for a skip")
	}
}

func TestRunDigestSHA256(t *testing.T) {
	a := NewAdapter(nil)
	r := a.Run([]byte(`{"operation":"1","digestType":"2","cleartext":"616263","modifier":""}`))
	expectOutput(t, r, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")

	out, ok := r.Encode()
	if !ok || string(out) != `"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"` {
		t.Errorf("Unexpected envelope: %s", out)
	}
}

func TestRunGCMOutputHasNoTag(t *testing.T) {
	a := NewAdapter(nil)
	r := a.Process(&types.Descriptor{
		Operation: code(types.OpSymmetricEncrypt),
		Cleartext: strings.Repeat("00", 16),
		Cipher: types.CipherSpec{
			CipherType: code(crypto.CipherAES128GCM),
			Key:        strings.Repeat("00", 16),
			IV:         strings.Repeat("00", 12),
		},
		TagSize: "0",
	})
	expectOutput(t, r, "0388dace60b6a392f328c2b971b2fe78")
}

func TestRunPBKDF2ZeroIterations(t *testing.T) {
	a := NewAdapter(nil)
	r := a.Process(&types.Descriptor{
		Operation:  code(types.OpKDFPBKDF2),
		DigestType: code(crypto.DigestSHA256),
		Iterations: "0",
		KeySize:    "32",
		Password:   "70617373",
		Salt:       "73616c74",
	})
	expectSkip(t, r, types.OutcomeUnsupported)
}

func TestRunModByZero(t *testing.T) {
	a := NewAdapter(nil)
	r := a.Process(&types.Descriptor{
		Operation: code(types.OpBignumCalc),
		CalcOp:    code(crypto.CalcMod),
		Bn0:       "10",
		Bn1:       "0",
	})
	expectSkip(t, r, types.OutcomeUnsupported)
}

func TestRunECCGenerator(t *testing.T) {
	a := NewAdapter(nil)
	r := a.Run([]byte(`{"operation":"9","curveType":"7","priv":"1"}`))
	out, ok := r.Encode()
	if !ok {
		t.Fatalf("Expected output, got %s: %s", r.Outcome, r.Reason)
	}
	want := `["79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",` +
		`"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"]`
	if string(out) != want {
		t.Errorf("Expected %s, got %s", want, out)
	}
}

func TestRunDecryptWithTagIsSkipped(t *testing.T) {
	a := NewAdapter(nil)
	for _, c := range crypto.Ciphers() {
		r := a.Process(&types.Descriptor{
			Operation:  code(types.OpSymmetricDecrypt),
			Ciphertext: strings.Repeat("00", 32),
			Cipher: types.CipherSpec{
				CipherType: code(c),
				Key:        strings.Repeat("00", 16),
				IV:         strings.Repeat("00", 16),
			},
			Tag: "00112233",
		})
		expectSkip(t, r, types.OutcomeUnsupported)
	}
}

func TestRunUnresolvedOperation(t *testing.T) {
	a := NewAdapter(nil)
	for _, op := range []string{"0", "10", "18446744073709551615", ""} {
		expectSkip(t, a.Run([]byte(`{"operation":"`+op+`"}`)), types.OutcomeUnresolved)
	}
}

func TestRunMalformed(t *testing.T) {
	a := NewAdapter(nil)
	tests := []string{
		`not json`,
		`{"operation":"abc"}`,
		`{"operation":"-3"}`,
		`{"operation":"1","digestType":"2","cleartext":"6162z3"}`,
		`{"operation":"1","digestType":"2","cleartext":"616"}`,
		`{"operation":"3","cleartext":"00","cipher":{"cipherType":"3","key":"00","iv":"0"}}`,
		`{"operation":"7","password":"","salt":"","N":"many"}`,
	}
	for _, tt := range tests {
		expectSkip(t, a.Run([]byte(tt)), types.OutcomeMalformed)
	}
}

func TestRunCBOR(t *testing.T) {
	data, err := cbor.Marshal(map[string]any{
		"operation":  uint64(1),
		"digestType": uint64(1),
		"cleartext":  "616263",
	})
	if err != nil {
		t.Fatalf("cbor.Marshal failed: %v", err)
	}
	r := NewAdapter(nil).RunCBOR(data)
	expectOutput(t, r, "a9993e364706816aba3e25717850c26c9cd0d89d")

	expectSkip(t, NewAdapter(nil).RunCBOR([]byte{0xff}), types.OutcomeMalformed)
}

func TestCustomTable(t *testing.T) {
	tbl, err := classify.Parse([]byte(`
operations:
  - name: Digest
    ranges: [{min: 1000, max: 1999}]
digests:
  - name: RIPEMD160
    codes: [42]
`))
	if err != nil {
		t.Fatalf("classify.Parse failed: %v", err)
	}
	a := NewAdapter(tbl)

	r := a.Process(&types.Descriptor{Operation: "1500", DigestType: "42", Cleartext: "616263"})
	expectOutput(t, r, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc")

	expectSkip(t, a.Process(&types.Descriptor{Operation: "1", DigestType: "42"}), types.OutcomeUnresolved)
	expectSkip(t, a.Process(&types.Descriptor{Operation: "1000", DigestType: "2"}), types.OutcomeUnresolved)
}

func TestVerboseLogsSkips(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	a := newTestAdapter(&types.AdapterOptions{Verbose: true})
	a.Run([]byte(`{"operation":"8","calcOp":"6"}`))
	if !strings.Contains(buf.String(), "Skipped BignumCalc: unsupported: SetBit is inert") {
		t.Errorf("Unexpected log output: %q", buf.String())
	}

	buf.Reset()
	a.Run([]byte(`{"operation":"1","digestType":"1"}`))
	if buf.Len() != 0 {
		t.Errorf("Expected no log for an emitted result, got %q", buf.String())
	}
}

func TestOptions(t *testing.T) {
	opts := &types.AdapterOptions{Multipart: true, CBC: true}
	a := NewAdapterWithOptions(nil, opts)
	opts.CBC = false
	if !a.Options().CBC || !a.Options().Multipart {
		t.Error("Expected options to be copied at construction")
	}
	if a.Table() != classify.Default() {
		t.Error("Expected nil table to select the default table")
	}
}

func FuzzRun(f *testing.F) {
	seeds := []string{
		`{"operation":"1","digestType":"2","cleartext":"616263","modifier":"000001000002"}`,
		`{"operation":"2","digestType":"4","cleartext":"00","cipher":{"key":"0102"}}`,
		`{"operation":"3","cleartext":"00112233","cipher":{"cipherType":"5","key":"000102030405060708090a0b0c0d0e0f","iv":"000102030405060708090a0b0c0d0e0f"}}`,
		`{"operation":"4","ciphertext":"00112233445566778899aabbccddeeff","cipher":{"cipherType":"3","key":"000102030405060708090a0b0c0d0e0f","iv":"00"}}`,
		`{"operation":"5","digestType":"1","password":"00","salt":"","info":"","keySize":"20"}`,
		`{"operation":"6","digestType":"1","password":"00","salt":"01","iterations":"2","keySize":"16"}`,
		`{"operation":"7","password":"","salt":"","N":"16","r":"1","p":"1","keySize":"8"}`,
		`{"operation":"8","calcOp":"5","bn0":"3","bn1":"-11"}`,
		`{"operation":"9","curveType":"1","priv":"115792089237316195423570985008687907853269984665640564039457584007908834671663"}`,
		`{"operation":"9","curveType":"3","priv":"-5"}`,
		`{}`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	a := newTestAdapter(&types.AdapterOptions{Multipart: true, ExpMod: true, CBC: true})
	f.Fuzz(func(t *testing.T, data []byte) {
		// Must not panic; skips are fine.
		r := a.Run(data)
		if out, ok := r.Encode(); ok && !json.Valid(out) {
			t.Errorf("Invalid envelope %q", out)
		}
	})
}
