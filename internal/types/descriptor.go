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

package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/fxamacker/cbor/v2"

	"github.com/fouzhe/cryptofuzz/internal/util"
)

// Numeric is a decimal-like descriptor field. The canonical wire form is a
// string; bare JSON numbers and CBOR integers are accepted and kept as
// their decimal text. Parsing is lenient (see util.ParseInt).
type Numeric string

// UnmarshalJSON accepts a JSON string, number or null.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("numeric field: %w", err)
		}
		*n = Numeric(num)
	}
	return nil
}

// UnmarshalCBOR accepts a CBOR text string, integer, bignum, float or null.
func (n *Numeric) UnmarshalCBOR(data []byte) error {
	var v any
	if err := cbor.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*n = ""
	case string:
		*n = Numeric(x)
	case uint64:
		*n = Numeric(strconv.FormatUint(x, 10))
	case int64:
		*n = Numeric(strconv.FormatInt(x, 10))
	case big.Int:
		*n = Numeric(x.String())
	case *big.Int:
		*n = Numeric(x.String())
	case float64:
		*n = Numeric(strconv.FormatFloat(x, 'f', -1, 64))
	default:
		return fmt.Errorf("numeric field: unsupported CBOR type %T", v)
	}
	return nil
}

// Int parses the field as a machine integer.
func (n Numeric) Int() (int64, error) {
	return util.ParseInt(string(n))
}

// Uint parses the field as an enum code.
func (n Numeric) Uint() (uint64, error) {
	return util.ParseUint(string(n))
}

// Big parses the field as an arbitrary-precision integer.
func (n Numeric) Big() *big.Int {
	return util.ParseBigInt(string(n))
}

// CipherSpec is the nested "cipher" object of a descriptor.
type CipherSpec struct {
	CipherType Numeric `json:"cipherType"`
	Key        string  `json:"key"`
	IV         string  `json:"iv"`
}

// Descriptor is the input record of one fuzz iteration. Which fields are
// meaningful depends on the operation. Binary fields are hex strings.
type Descriptor struct {
	Operation  Numeric    `json:"operation"`
	DigestType Numeric    `json:"digestType,omitempty"`
	Cleartext  string     `json:"cleartext,omitempty"`
	Ciphertext string     `json:"ciphertext,omitempty"`
	Modifier   string     `json:"modifier,omitempty"`
	Cipher     CipherSpec `json:"cipher"`
	AAD        string     `json:"aad,omitempty"`
	Tag        string     `json:"tag,omitempty"`
	TagSize    Numeric    `json:"tagSize,omitempty"`

	Password   string  `json:"password,omitempty"`
	Salt       string  `json:"salt,omitempty"`
	Info       string  `json:"info,omitempty"`
	KeySize    Numeric `json:"keySize,omitempty"`
	Iterations Numeric `json:"iterations,omitempty"`
	N          Numeric `json:"N,omitempty"`
	R          Numeric `json:"r,omitempty"`
	P          Numeric `json:"p,omitempty"`

	Bn0    Numeric `json:"bn0,omitempty"`
	Bn1    Numeric `json:"bn1,omitempty"`
	Bn2    Numeric `json:"bn2,omitempty"`
	Bn3    Numeric `json:"bn3,omitempty"`
	CalcOp Numeric `json:"calcOp,omitempty"`

	CurveType Numeric `json:"curveType,omitempty"`
	Priv      Numeric `json:"priv,omitempty"`
}

// ParseDescriptor decodes a JSON descriptor.
func ParseDescriptor(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor: %w", err)
	}
	return &d, nil
}

// ParseDescriptorCBOR decodes a CBOR descriptor (a map keyed by the same
// field names as the JSON form).
func ParseDescriptorCBOR(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse CBOR descriptor: %w", err)
	}
	return &d, nil
}

// OperationCode returns the raw operation code.
func (d *Descriptor) OperationCode() (uint64, error) {
	code, err := d.Operation.Uint()
	if err != nil {
		return 0, fmt.Errorf("operation: %w", err)
	}
	return code, nil
}
