// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package cbor implements the encode half of RFC 8949 Concise Binary Object
Representation (CBOR), as needed to put ServiceInfo messages on the wire.

Only preferred (shortest head) serialization is produced. Decoding is not
provided.

Not supported:

  - Indefinite length arrays, maps, byte strings, or text strings
  - Maps and tags
  - Simple values other than bool and null
  - Floats
  - Reflection over arbitrary structs and slices

Types with a richer shape implement [Marshaler] and are written as-is.

# Encoding

	var w bytes.Buffer
	enc := cbor.NewEncoder(&w)

	_ = enc.Encode(true)     // 0xf5
	_ = enc.Encode(nil)      // 0xf6
	_ = enc.Encode(-1)       // 0x20
	_ = enc.Encode(uint8(1)) // 0x01

	_ = enc.Encode([]byte{0x01, 0x02}) // 0x42 0x01 0x02
	_ = enc.Encode("IETF")             // 0x64 0x49 0x45 0x54 0x46

	_ = enc.Encode([]any{true, []any{}}) // 0x82 0xf5 0x80
*/
package cbor
