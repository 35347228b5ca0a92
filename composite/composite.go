// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// Package composite provides the ordered, positional, mixed-type container
// that carries protocol structures until they are serialized.
//
// A [Value] is one of a closed set of variants: [Bool], [Text], [Bytes],
// [Int], [Uint], [Null], and [Array]. Arrays are immutable once built; use a
// [Builder] to accumulate elements and [Builder.Build] to freeze them.
package composite

import (
	"bytes"
	"iter"
	"slices"

	"github.com/fido-iot/protocol/cbor"
)

// Value is an element of a composite structure. No types outside this
// package may implement it.
type Value interface {
	cbor.Marshaler
	isValue()
}

// Bool is a boolean value.
type Bool bool

// Text is a UTF-8 text string.
type Text string

// Bytes is a byte string.
type Bytes []byte

// Int is a signed integer.
type Int int64

// Uint is an unsigned integer.
type Uint uint64

// Null is the absence of a value. It also fills positions skipped by
// [Builder.Set].
type Null struct{}

func (Bool) isValue()  {}
func (Text) isValue()  {}
func (Bytes) isValue() {}
func (Int) isValue()   {}
func (Uint) isValue()  {}
func (Null) isValue()  {}
func (Array) isValue() {}

// MarshalCBOR implements cbor.Marshaler.
func (b Bool) MarshalCBOR() ([]byte, error) { return cbor.Marshal(bool(b)) }

// MarshalCBOR implements cbor.Marshaler.
func (t Text) MarshalCBOR() ([]byte, error) { return cbor.Marshal(string(t)) }

// MarshalCBOR implements cbor.Marshaler. A nil Bytes encodes as an empty byte
// string, not null.
func (b Bytes) MarshalCBOR() ([]byte, error) {
	if b == nil {
		return cbor.Marshal([]byte{})
	}
	return cbor.Marshal([]byte(b))
}

// MarshalCBOR implements cbor.Marshaler.
func (i Int) MarshalCBOR() ([]byte, error) { return cbor.Marshal(int64(i)) }

// MarshalCBOR implements cbor.Marshaler.
func (u Uint) MarshalCBOR() ([]byte, error) { return cbor.Marshal(uint64(u)) }

// MarshalCBOR implements cbor.Marshaler.
func (Null) MarshalCBOR() ([]byte, error) { return cbor.Marshal(nil) }

// Array is an immutable ordered sequence of values. The zero value is the
// empty array.
type Array struct {
	elems []Value
}

// ArrayOf returns an array holding a copy of vs. A nil element is stored as
// [Null].
func ArrayOf(vs ...Value) Array {
	return NewBuilder(len(vs)).appendAll(vs).Build()
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.elems) }

// At returns the element at index i. It panics if i is out of range.
func (a Array) At(i int) Value { return a.elems[i] }

// All iterates over the index and value of each element in order.
func (a Array) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

// MarshalCBOR implements cbor.Marshaler.
func (a Array) MarshalCBOR() ([]byte, error) {
	var buf bytes.Buffer
	enc := cbor.NewEncoder(&buf)
	items := make([]any, len(a.elems))
	for i, v := range a.elems {
		items[i] = v
	}
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a Array) String() string { return Diagnostic(a) }

// Builder accumulates the elements of an [Array]. The zero value is ready to
// use. A Builder is not safe for concurrent use.
type Builder struct {
	elems []Value
}

// NewBuilder returns a Builder with room for capacity elements.
func NewBuilder(capacity int) *Builder {
	return &Builder{elems: make([]Value, 0, capacity)}
}

// Append adds v after the last element and returns the Builder.
func (b *Builder) Append(v Value) *Builder {
	b.elems = append(b.elems, orNull(v))
	return b
}

func (b *Builder) appendAll(vs []Value) *Builder {
	for _, v := range vs {
		b.Append(v)
	}
	return b
}

// Set places v at index i and returns the Builder. Setting i == Len appends.
// Positions between the current length and i are filled with [Null]. Set
// panics if i is negative.
func (b *Builder) Set(i int, v Value) *Builder {
	if i < 0 {
		panic("composite: negative index")
	}
	for len(b.elems) <= i {
		b.elems = append(b.elems, Null{})
	}
	b.elems[i] = orNull(v)
	return b
}

// Len returns the number of elements added so far.
func (b *Builder) Len() int { return len(b.elems) }

// Build returns an Array of the current elements. The Builder may continue to
// be used; changes made to it afterwards are not visible in the Array.
func (b *Builder) Build() Array {
	return Array{elems: slices.Clone(b.elems)}
}

func orNull(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

// Equal reports whether a and b are structurally identical. A nil Value is
// equal to [Null].
func Equal(a, b Value) bool {
	a, b = orNull(a), orNull(b)
	switch a := a.(type) {
	case Bytes:
		b, ok := b.(Bytes)
		return ok && bytes.Equal(a, b)
	case Array:
		b, ok := b.(Array)
		return ok && slices.EqualFunc(a.elems, b.elems, Equal)
	default:
		return a == b
	}
}
