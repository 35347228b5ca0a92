// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo

import (
	"errors"
	"fmt"

	"github.com/fido-iot/protocol/cbor"
)

// ErrSizeTooSmall indicates that a KV could not fit into a message due to
// insufficient max size.
var ErrSizeTooSmall = errors.New("not enough size for KV")

// Split divides pairs, in order, into batches whose KVs add up to no more
// than mtu bytes once marshaled. No pairs still produce one (empty) batch so
// that a round is sent.
func Split(pairs []KV, mtu uint16) ([][]KV, error) {
	return split(pairs, mtu, func(_, kvSize int) int { return kvSize })
}

// split fills each batch until budget, given the number of KVs and their
// summed size, would exceed mtu.
func split(pairs []KV, mtu uint16, budget func(count, kvSize int) int) ([][]KV, error) {
	batches := [][]KV{nil}
	var total int
	for _, kv := range pairs {
		size := kv.Size()
		if budget(1, size) > int(mtu) {
			return nil, fmt.Errorf("service info %q is %d bytes, mtu %d: %w", kv.Key, size, mtu, ErrSizeTooSmall)
		}
		last := len(batches) - 1
		if n := len(batches[last]); n > 0 && budget(n+1, total+size) > int(mtu) {
			batches = append(batches, nil)
			last++
			total = 0
		}
		batches[last] = append(batches[last], kv)
		total += size
	}
	return batches, nil
}

// ownerBudget counts the service info array header against the mtu, as the
// owner service does when checking the service info a module produced.
func ownerBudget(count, kvSize int) int {
	return cbor.HeadLen(uint64(count)) + kvSize
}

// DeviceRounds splits pairs into as many DeviceServiceInfo messages as the
// mtu requires. All but the last message have IsMoreServiceInfo set.
func DeviceRounds(pairs []KV, mtu uint16) ([]DeviceServiceInfo, error) {
	batches, err := Split(pairs, mtu)
	if err != nil {
		return nil, err
	}
	rounds := make([]DeviceServiceInfo, len(batches))
	for i, kvs := range batches {
		rounds[i] = EncodeDeviceServiceInfo(kvs, i < len(batches)-1)
	}
	return rounds, nil
}

// OwnerRounds splits pairs into as many OwnerServiceInfo messages as the mtu
// requires. All but the last message have IsMoreServiceInfo set and only the
// last has IsDone set. Unlike DeviceRounds, the array header of each batch
// counts against the mtu.
func OwnerRounds(pairs []KV, mtu uint16) ([]OwnerServiceInfo, error) {
	batches, err := split(pairs, mtu, ownerBudget)
	if err != nil {
		return nil, err
	}
	rounds := make([]OwnerServiceInfo, len(batches))
	for i, kvs := range batches {
		last := i == len(batches)-1
		rounds[i] = EncodeOwnerServiceInfo(kvs, !last, last)
	}
	return rounds, nil
}
