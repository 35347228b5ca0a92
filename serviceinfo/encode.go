// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

import (
	"fmt"
	"slices"

	"github.com/fido-iot/protocol/composite"
)

// DeviceServiceInfo is the body of TO2.DeviceServiceInfo (Type 68).
type DeviceServiceInfo struct {
	IsMoreServiceInfo bool
	ServiceInfo       []KV
}

// OwnerServiceInfo is the body of TO2.OwnerServiceInfo (Type 69).
type OwnerServiceInfo struct {
	IsMoreServiceInfo bool
	IsDone            bool
	ServiceInfo       []KV
}

// EncodeValue pairs a service info key with its value.
func EncodeValue(name string, val composite.Value) KV {
	return KV{Key: name, Val: val}
}

// EncodeDeviceServiceInfo builds a device service info message. The pairs are
// copied in order; duplicate keys are kept.
func EncodeDeviceServiceInfo(pairs []KV, isMore bool) DeviceServiceInfo {
	return DeviceServiceInfo{
		IsMoreServiceInfo: isMore,
		ServiceInfo:       slices.Clone(pairs),
	}
}

// EncodeOwnerServiceInfo builds an owner service info message. isMore and
// isDone are written as given, even when the combination makes no sense to
// the protocol.
func EncodeOwnerServiceInfo(pairs []KV, isMore, isDone bool) OwnerServiceInfo {
	return OwnerServiceInfo{
		IsMoreServiceInfo: isMore,
		IsDone:            isDone,
		ServiceInfo:       slices.Clone(pairs),
	}
}

// Composite returns [IsMoreServiceInfo, ServiceInfo].
func (info DeviceServiceInfo) Composite() composite.Array {
	return composite.NewBuilder(2).
		Append(composite.Bool(info.IsMoreServiceInfo)).
		Append(batch(info.ServiceInfo)).
		Build()
}

// MarshalCBOR implements cbor.Marshaler.
func (info DeviceServiceInfo) MarshalCBOR() ([]byte, error) {
	return info.Composite().MarshalCBOR()
}

func (info DeviceServiceInfo) String() string {
	return fmt.Sprintf("More: %t, Info: %s",
		info.IsMoreServiceInfo, batch(info.ServiceInfo))
}

// Composite returns [IsMoreServiceInfo, IsDone, ServiceInfo].
func (info OwnerServiceInfo) Composite() composite.Array {
	return composite.NewBuilder(3).
		Append(composite.Bool(info.IsMoreServiceInfo)).
		Append(composite.Bool(info.IsDone)).
		Append(batch(info.ServiceInfo)).
		Build()
}

// MarshalCBOR implements cbor.Marshaler.
func (info OwnerServiceInfo) MarshalCBOR() ([]byte, error) {
	return info.Composite().MarshalCBOR()
}

func (info OwnerServiceInfo) String() string {
	return fmt.Sprintf("More: %t, Done: %t, Info: %s",
		info.IsMoreServiceInfo, info.IsDone, batch(info.ServiceInfo))
}

// batch wraps the pairs in a single-element array, or returns an empty array
// when there are no pairs. Empty service info is [], not [[]].
func batch(pairs []KV) composite.Array {
	if len(pairs) == 0 {
		return composite.Array{}
	}
	kvs := composite.NewBuilder(len(pairs))
	for _, kv := range pairs {
		kvs.Append(kv.Composite())
	}
	return composite.ArrayOf(kvs.Build())
}
