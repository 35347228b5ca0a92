// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

/*
Package serviceinfo encodes the service info carried between the device and
owner service in the TO2 DeviceServiceInfo and OwnerServiceInfo messages.

Service info is a list of key value pairs where the key is a string containing
the module name and message name and the value contains arbitrary data. A
batch of pairs may not fit in one message, so each message carries an
IsMoreServiceInfo flag and the owner's message additionally carries an IsDone
flag ending the exchange.

Each message is a positional CBOR array:

	KV                = [key, value]
	DeviceServiceInfo = [IsMoreServiceInfo, ServiceInfo]
	OwnerServiceInfo  = [IsMoreServiceInfo, IsDone, ServiceInfo]
	ServiceInfo       = [] / [[KV, ...]]

An empty batch is always written as [] and never as [[]]. Receivers use the
difference to tell "no service info" from "an empty list of pairs".

Encoding never fails and never validates keys, values, or flag combinations.
Checks of that kind belong to the caller or to the decoder.
*/
package serviceinfo
