// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package cbor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Major types (high 3 bits)
const (
	unsignedIntMajorType byte = 0x00
	negativeIntMajorType byte = 0x01
	byteStringMajorType  byte = 0x02
	textStringMajorType  byte = 0x03
	arrayMajorType       byte = 0x04
	simpleMajorType      byte = 0x07
)

// Additional info (low 5 bits)
const (
	oneByteAdditional    byte = 0x18
	twoBytesAdditional   byte = 0x19
	fourBytesAdditional  byte = 0x1a
	eightBytesAdditional byte = 0x1b
)

// Well-known simple values
const (
	falseVal byte = 0x14
	trueVal  byte = 0x15
	nullVal  byte = 0x16
)

// ErrUnsupportedType means that a value of this type cannot be encoded.
type ErrUnsupportedType struct {
	typeName string
}

func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported type: %s", e.typeName)
}

// Marshaler is the interface implemented by types that can marshal themselves
// into valid CBOR.
type Marshaler interface {
	MarshalCBOR() ([]byte, error)
}

// Marshal any supported type into CBOR.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes CBOR items to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new Encoder. The [io.Writer] is not automatically flushed.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{w: w} }

func (e *Encoder) write(b []byte) error {
	_, err := e.w.Write(b)
	return err
}

// Encode CBOR data to the underlying [io.Writer].
//
//nolint:gocyclo // Dispatch will always have naturally high complexity.
func (e *Encoder) Encode(v any) error {
	switch v := v.(type) {
	case nil:
		return e.write([]byte{simpleMajorType<<5 | nullVal})
	case Marshaler:
		b, err := v.MarshalCBOR()
		if err != nil {
			return err
		}
		return e.write(b)
	case bool:
		if v {
			return e.write([]byte{simpleMajorType<<5 | trueVal})
		}
		return e.write([]byte{simpleMajorType<<5 | falseVal})
	case string:
		return e.encodeTextOrBinary(textStringMajorType, []byte(v))
	case []byte:
		return e.encodeTextOrBinary(byteStringMajorType, v)
	case []any:
		if err := e.write(head(arrayMajorType, uint64(len(v)))); err != nil {
			return err
		}
		for i, item := range v {
			if err := e.Encode(item); err != nil {
				return fmt.Errorf("error encoding array item %d: %w", i, err)
			}
		}
		return nil
	case int:
		return e.encodeInt(int64(v))
	case int8:
		return e.encodeInt(int64(v))
	case int16:
		return e.encodeInt(int64(v))
	case int32:
		return e.encodeInt(int64(v))
	case int64:
		return e.encodeInt(v)
	case uint:
		return e.write(head(unsignedIntMajorType, uint64(v)))
	case uint8:
		return e.write(head(unsignedIntMajorType, uint64(v)))
	case uint16:
		return e.write(head(unsignedIntMajorType, uint64(v)))
	case uint32:
		return e.write(head(unsignedIntMajorType, uint64(v)))
	case uint64:
		return e.write(head(unsignedIntMajorType, v))
	default:
		return ErrUnsupportedType{typeName: fmt.Sprintf("%T", v)}
	}
}

func (e *Encoder) encodeInt(i64 int64) error {
	if i64 >= 0 {
		return e.write(head(unsignedIntMajorType, uint64(i64)))
	}
	// -1 - n without overflowing on math.MinInt64
	return e.write(head(negativeIntMajorType, uint64(-(i64 + 1))))
}

func (e *Encoder) encodeTextOrBinary(majorType byte, b []byte) error {
	if err := e.write(head(majorType, uint64(len(b)))); err != nil {
		return err
	}
	return e.write(b)
}

// head builds the initial byte and any following argument bytes for an item
// of the given major type.
func head(majorType byte, n uint64) []byte {
	b := (majorType & 0x07) << 5
	switch {
	case n < uint64(oneByteAdditional):
		return []byte{b | byte(n)}
	case n <= 0xff:
		return []byte{b | oneByteAdditional, byte(n)}
	case n <= 0xffff:
		return binary.BigEndian.AppendUint16([]byte{b | twoBytesAdditional}, uint16(n))
	case n <= 0xffffffff:
		return binary.BigEndian.AppendUint32([]byte{b | fourBytesAdditional}, uint32(n))
	default:
		return binary.BigEndian.AppendUint64([]byte{b | eightBytesAdditional}, n)
	}
}

// HeadLen returns the number of bytes of the head of a CBOR item whose
// argument (length, count, or unsigned value) is n.
func HeadLen(n uint64) int {
	switch {
	case n < uint64(oneByteAdditional):
		return 1
	case n <= 0xff:
		return 2
	case n <= 0xffff:
		return 3
	case n <= 0xffffffff:
		return 5
	default:
		return 9
	}
}
