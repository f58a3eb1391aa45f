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

import (
	"log"
	"sync"

	"github.com/fouzhe/cryptofuzz/internal/crypto"
	"github.com/fouzhe/cryptofuzz/internal/types"
	"github.com/fouzhe/cryptofuzz/internal/util"
)

// anyIV marks a combination that accepts every IV length.
const anyIV = -1

type combination struct {
	keySize int
	ivSize  int
}

// legalCombinations lists the only key and IV sizes accepted per cipher.
var legalCombinations = map[crypto.CipherKind]combination{
	crypto.CipherAES128CCM: {8, anyIV},
	crypto.CipherAES256CCM: {16, anyIV},
	crypto.CipherAES128GCM: {16, anyIV},
	crypto.CipherAES256GCM: {32, anyIV},
	crypto.CipherAES128OCB: {16, 16},
	crypto.CipherAES256OCB: {32, 32},
	crypto.CipherAES128CTR: {16, 16},
	crypto.CipherAES256CTR: {32, 32},
	crypto.CipherAES128CBC: {16, 16},
	crypto.CipherAES256CBC: {32, 32},
}

var ctrWarning sync.Once

func checkCombination(kind crypto.CipherKind, p *types.CipherParams) bool {
	c, ok := legalCombinations[kind]
	if !ok || len(p.Key) != c.keySize {
		return false
	}
	return c.ivSize == anyIV || len(p.IV) == c.ivSize
}

// truncateHex keeps the first n bytes of the hex encoding of out.
func truncateHex(out []byte, n int) string {
	if len(out) > n {
		out = out[:n]
	}
	return util.EncodeHex(out)
}

func (a *Adapter) symmetricEncrypt(d *types.Descriptor) types.Result {
	p, err := d.EncryptParams()
	if err != nil {
		return types.Malformed(err)
	}
	if len(p.AAD) != 0 {
		return types.Unsupported("aad is not supported")
	}
	if p.TagSize != 0 {
		return types.Unsupported("tag size %d is not supported", p.TagSize)
	}

	kind, ok := a.table.Cipher(p.CipherType)
	if !ok {
		return types.Unresolved("cipher", p.CipherType)
	}
	if !checkCombination(kind, &p) {
		return types.Unsupported("%v with %d-byte key and %d-byte iv", kind, len(p.Key), len(p.IV))
	}

	switch kind.Mode() {
	case crypto.ModeCTR:
		ctrWarning.Do(func() {
			log.Printf("Warning: CTR mode is dangerous because it doesn't protect message integrity")
		})
	case crypto.ModeCBC:
		if !a.opts.CBC {
			return types.Unsupported("%v padding is not enabled", kind)
		}
	}

	out, err := crypto.Encrypt(kind, p.Key, p.IV, p.Input)
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(truncateHex(out, len(p.Input)))
}

func (a *Adapter) symmetricDecrypt(d *types.Descriptor) types.Result {
	p, err := d.DecryptParams()
	if err != nil {
		return types.Malformed(err)
	}
	if len(p.AAD) != 0 {
		return types.Unsupported("aad is not supported")
	}
	if len(p.Tag) != 0 {
		return types.Unsupported("detached tag is not supported")
	}

	kind, ok := a.table.Cipher(p.CipherType)
	if !ok {
		return types.Unresolved("cipher", p.CipherType)
	}
	if !checkCombination(kind, &p) {
		return types.Unsupported("%v with %d-byte key and %d-byte iv", kind, len(p.Key), len(p.IV))
	}
	if m := kind.Mode(); m == crypto.ModeCTR || m == crypto.ModeCBC {
		return types.Unsupported("%v decryption is not supported", kind)
	}

	out, err := crypto.Decrypt(kind, p.Key, p.IV, p.Input)
	if err != nil {
		return types.PrimitiveFailure(err)
	}
	return types.Success(truncateHex(out, len(p.Input)))
}
