// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package composite

import (
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/fido-iot/protocol/cbor"
)

// Diagnostic renders v in CBOR diagnostic notation (RFC 8949 section 8).
// Byte strings use base16 notation only. Text is quoted as a JSON string, so
// invalid UTF-8 in a Text shows as the escape \ufffd even though the
// marshaled CBOR carries the original bytes. Diagnostic output is for
// reading, not for reproducing the encoding.
//
//	[true, [["devmod:active", true]]]
func Diagnostic(v Value) string {
	var b strings.Builder
	writeDiagnostic(&b, orNull(v))
	return b.String()
}

func writeDiagnostic(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case Bool:
		b.WriteString(strconv.FormatBool(bool(v)))
	case Text:
		d, err := json.Marshal(string(v))
		if err != nil {
			// json.Marshal of a string cannot fail
			panic(err)
		}
		b.Write(d)
	case Bytes:
		b.WriteString("h'")
		b.WriteString(hex.EncodeToString(v))
		b.WriteString("'")
	case Int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case Uint:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	case Null:
		b.WriteString("null")
	case Array:
		b.WriteString("[")
		for i, elem := range v.elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDiagnostic(b, elem)
		}
		b.WriteString("]")
	}
}

// Size returns the number of bytes v occupies once marshaled to CBOR, without
// marshaling it.
func Size(v Value) int {
	switch v := orNull(v).(type) {
	case Bool, Null:
		return 1
	case Text:
		return cbor.HeadLen(uint64(len(v))) + len(v)
	case Bytes:
		return cbor.HeadLen(uint64(len(v))) + len(v)
	case Int:
		if v < 0 {
			return cbor.HeadLen(uint64(-(v + 1)))
		}
		return cbor.HeadLen(uint64(v))
	case Uint:
		return cbor.HeadLen(uint64(v))
	case Array:
		size := cbor.HeadLen(uint64(len(v.elems)))
		for _, elem := range v.elems {
			size += Size(elem)
		}
		return size
	default:
		panic("composite: unknown value type")
	}
}
