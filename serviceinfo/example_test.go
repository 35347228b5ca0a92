// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package serviceinfo_test

import (
	"fmt"

	"github.com/fido-iot/protocol/composite"
	"github.com/fido-iot/protocol/serviceinfo"
)

func Example() {
	pairs := []serviceinfo.KV{
		serviceinfo.EncodeValue("devmod:active", composite.Bool(true)),
		serviceinfo.EncodeValue("devmod:os", composite.Text("Linux")),
	}

	fmt.Println(serviceinfo.EncodeDeviceServiceInfo(pairs, false).Composite())
	fmt.Println(serviceinfo.EncodeDeviceServiceInfo(nil, true).Composite())
	fmt.Println(serviceinfo.EncodeOwnerServiceInfo(nil, false, true).Composite())
	// Output:
	// [false, [[["devmod:active", true], ["devmod:os", "Linux"]]]]
	// [true, []]
	// [false, true, []]
}
