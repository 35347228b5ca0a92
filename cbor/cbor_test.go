// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package cbor_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fido-iot/protocol/cbor"
)

func TestEncodeInt(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		input := 999
		expect := []byte{0x19, 0x03, 0xe7}

		if got, err := cbor.Marshal(input); err != nil {
			t.Errorf("error marshaling %d: %v", input, err)
		} else if !bytes.Equal(got, expect) {
			t.Errorf("marshaling %d; expected % x, got % x", input, expect, got)
		}
	})

	t.Run("int64", func(t *testing.T) {
		for _, test := range []struct {
			input  int64
			expect []byte
		}{
			{expect: []byte{0x00}, input: 0},
			{expect: []byte{0x20}, input: -1},
			{expect: []byte{0x01}, input: 1},
			{expect: []byte{0x21}, input: -2},
			{expect: []byte{0x17}, input: 23},
			{expect: []byte{0x37}, input: -24},
			{expect: []byte{0x18, 0x18}, input: 24},
			{expect: []byte{0x38, 0x18}, input: -25},
			{expect: []byte{0x18, 0x64}, input: 100},
			{expect: []byte{0x38, 0x64}, input: -101},
			{expect: []byte{0x19, 0x03, 0xe8}, input: 1000},
			{expect: []byte{0x39, 0x03, 0xe8}, input: -1001},
			{expect: []byte{0x1a, 0x00, 0x0f, 0x42, 0x40}, input: 1000000},
			{expect: []byte{0x3a, 0x00, 0x0f, 0x42, 0x40}, input: -1000001},
			{expect: []byte{0x1b, 0x00, 0x00, 0x00, 0xe8, 0xd4, 0xa5, 0x10, 0x00}, input: 1000000000000},
			{expect: []byte{0x3b, 0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, input: math.MinInt64},
		} {
			if got, err := cbor.Marshal(test.input); err != nil {
				t.Errorf("error marshaling %d: %v", test.input, err)
			} else if !bytes.Equal(got, test.expect) {
				t.Errorf("marshaling %d; expected % x, got % x", test.input, test.expect, got)
			}
		}
	})

	t.Run("uint", func(t *testing.T) {
		for _, test := range []struct {
			input  any
			expect []byte
		}{
			{expect: []byte{0x01}, input: uint(1)},
			{expect: []byte{0x18, 0xff}, input: uint8(255)},
			{expect: []byte{0x19, 0xff, 0xff}, input: uint16(65535)},
			{expect: []byte{0x1a, 0x00, 0x01, 0x00, 0x00}, input: uint32(65536)},
			{expect: []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, input: uint64(math.MaxUint64)},
		} {
			if got, err := cbor.Marshal(test.input); err != nil {
				t.Errorf("error marshaling %d: %v", test.input, err)
			} else if !bytes.Equal(got, test.expect) {
				t.Errorf("marshaling %d; expected % x, got % x", test.input, test.expect, got)
			}
		}
	})
}

func TestEncodeSimple(t *testing.T) {
	for _, test := range []struct {
		input  any
		expect []byte
	}{
		{input: true, expect: []byte{0xf5}},
		{input: false, expect: []byte{0xf4}},
		{input: nil, expect: []byte{0xf6}},
	} {
		if got, err := cbor.Marshal(test.input); err != nil {
			t.Errorf("error marshaling %v: %v", test.input, err)
		} else if !bytes.Equal(got, test.expect) {
			t.Errorf("marshaling %v; expected % x, got % x", test.input, test.expect, got)
		}
	}
}

func TestEncodeTextOrBinary(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		for _, test := range []struct {
			input  string
			expect []byte
		}{
			{input: "", expect: []byte{0x60}},
			{input: "IETF", expect: []byte{0x64, 0x49, 0x45, 0x54, 0x46}},
			{input: strings.Repeat("a", 24), expect: append([]byte{0x78, 0x18}, strings.Repeat("a", 24)...)},
		} {
			if got, err := cbor.Marshal(test.input); err != nil {
				t.Errorf("error marshaling %q: %v", test.input, err)
			} else if !bytes.Equal(got, test.expect) {
				t.Errorf("marshaling %q; expected % x, got % x", test.input, test.expect, got)
			}
		}
	})

	t.Run("binary", func(t *testing.T) {
		for _, test := range []struct {
			input  []byte
			expect []byte
		}{
			{input: []byte{}, expect: []byte{0x40}},
			{input: []byte{0x01, 0x02, 0x03, 0x04}, expect: []byte{0x44, 0x01, 0x02, 0x03, 0x04}},
			{input: make([]byte, 256), expect: append([]byte{0x59, 0x01, 0x00}, make([]byte, 256)...)},
		} {
			if got, err := cbor.Marshal(test.input); err != nil {
				t.Errorf("error marshaling % x: %v", test.input, err)
			} else if !bytes.Equal(got, test.expect) {
				t.Errorf("marshaling % x; expected % x, got % x", test.input, test.expect, got)
			}
		}
	})
}

func TestEncodeArray(t *testing.T) {
	for _, test := range []struct {
		input  []any
		expect []byte
	}{
		{input: []any{}, expect: []byte{0x80}},
		{input: []any{true, []any{}}, expect: []byte{0x82, 0xf5, 0x80}},
		{input: []any{false, []any{[]any{}}}, expect: []byte{0x82, 0xf4, 0x81, 0x80}},
		{input: []any{1, []any{2, 3}, []any{4, 5}}, expect: []byte{0x83, 0x01, 0x82, 0x02, 0x03, 0x82, 0x04, 0x05}},
	} {
		if got, err := cbor.Marshal(test.input); err != nil {
			t.Errorf("error marshaling %v: %v", test.input, err)
		} else if !bytes.Equal(got, test.expect) {
			t.Errorf("marshaling %v; expected % x, got % x", test.input, test.expect, got)
		}
	}
}

type failingMarshaler struct{}

var errMarshal = errors.New("marshal failed")

func (failingMarshaler) MarshalCBOR() ([]byte, error) { return nil, errMarshal }

func TestEncodeErrors(t *testing.T) {
	t.Run("unsupported type", func(t *testing.T) {
		_, err := cbor.Marshal(1.5)
		var unsupported cbor.ErrUnsupportedType
		if !errors.As(err, &unsupported) {
			t.Fatalf("expected ErrUnsupportedType, got %v", err)
		}
		if unsupported.Error() != "unsupported type: float64" {
			t.Errorf("unexpected error text: %q", unsupported.Error())
		}
	})

	t.Run("marshaler error", func(t *testing.T) {
		if _, err := cbor.Marshal([]any{1, failingMarshaler{}}); !errors.Is(err, errMarshal) {
			t.Errorf("expected wrapped marshaler error, got %v", err)
		}
	})
}

func TestHeadLen(t *testing.T) {
	for _, n := range []uint64{0, 23, 24, 255, 256, 65535, 65536, math.MaxUint32, math.MaxUint32 + 1} {
		data, err := cbor.Marshal(n)
		if err != nil {
			t.Fatalf("error marshaling %d: %v", n, err)
		}
		if got := cbor.HeadLen(n); got != len(data) {
			t.Errorf("HeadLen(%d) = %d, expected %d", n, got, len(data))
		}
	}
}
