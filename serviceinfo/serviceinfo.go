// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

import (
	"github.com/fido-iot/protocol/cbor"
	"github.com/fido-iot/protocol/composite"
)

// DefaultMTU for service info when Max(Owner|Device)ServiceInfoSz is null.
const DefaultMTU = 1300

// KV is a ServiceInfoKV structure.
type KV struct {
	Key string
	Val composite.Value
}

// Composite returns the positional form of the pair: [Key, Val].
func (kv KV) Composite() composite.Array {
	return composite.NewBuilder(2).
		Append(composite.Text(kv.Key)).
		Append(kv.Val).
		Build()
}

// MarshalCBOR implements cbor.Marshaler.
func (kv KV) MarshalCBOR() ([]byte, error) { return kv.Composite().MarshalCBOR() }

func (kv KV) String() string {
	return kv.Composite().String()
}

// Size calculates the number of bytes once marshaled to CBOR.
func (kv KV) Size() int {
	size := 1 // header for overall KV structure
	size += cbor.HeadLen(uint64(len(kv.Key))) + len(kv.Key)
	size += composite.Size(kv.Val)
	return size
}

// BatchSize returns the size of the ServiceInfo field holding pairs once
// marshaled to CBOR.
func BatchSize(pairs []KV) int {
	if len(pairs) == 0 {
		return 1 // []
	}
	size := 1 + cbor.HeadLen(uint64(len(pairs))) // [[...]]
	for _, kv := range pairs {
		size += kv.Size()
	}
	return size
}
