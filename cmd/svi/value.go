// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fido-iot/protocol/composite"
	"github.com/fido-iot/protocol/serviceinfo"
)

var errNoKey = errors.New("missing key")

// parseKV parses a key=value argument.
func parseKV(arg string) (serviceinfo.KV, error) {
	key, raw, ok := strings.Cut(arg, "=")
	if !ok || key == "" {
		return serviceinfo.KV{}, fmt.Errorf("invalid service info %q: %w", arg, errNoKey)
	}
	val, err := parseValue(raw)
	if err != nil {
		return serviceinfo.KV{}, fmt.Errorf("invalid value for %q: %w", key, err)
	}
	return serviceinfo.EncodeValue(key, val), nil
}

// parseValue interprets an optional type prefix. Text without a recognized
// prefix is taken literally.
func parseValue(raw string) (composite.Value, error) {
	if raw == "null" {
		return composite.Null{}, nil
	}
	typ, s, ok := strings.Cut(raw, ":")
	if !ok {
		return composite.Text(raw), nil
	}
	switch typ {
	case "int":
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return composite.Int(i), nil
	case "uint":
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return composite.Uint(u), nil
	case "bool":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return composite.Bool(b), nil
	case "hex":
		b, err := hex.DecodeString(s)
		if err != nil {
			return nil, err
		}
		return composite.Bytes(b), nil
	case "text":
		return composite.Text(s), nil
	default:
		return composite.Text(raw), nil
	}
}
