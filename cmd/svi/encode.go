// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"golang.org/x/term"

	"github.com/fido-iot/protocol/cbor"
	"github.com/fido-iot/protocol/composite"
	"github.com/fido-iot/protocol/serviceinfo"
)

var (
	deviceFlags = flag.NewFlagSet("device", flag.ContinueOnError)
	ownerFlags  = flag.NewFlagSet("owner", flag.ContinueOnError)
)

var (
	isMore bool
	isDone bool
	mtu    uint
	format string
)

func init() {
	for _, fs := range []*flag.FlagSet{deviceFlags, ownerFlags} {
		fs.BoolVar(&isMore, "more", false, "Set IsMoreServiceInfo (ignored with -mtu)")
		fs.UintVar(&mtu, "mtu", 0, "Split service info into rounds of at most `size` bytes (0 = single message)")
		fs.StringVar(&format, "format", "", "Output `format` [options: diag, hex, raw] (default diag on a terminal, raw otherwise)")
	}
	ownerFlags.BoolVar(&isDone, "done", false, "Set IsDone (ignored with -mtu)")
}

func device(w io.Writer, args []string) error {
	if debug {
		level.Set(slog.LevelDebug)
	}

	pairs, err := parseKVs(args)
	if err != nil {
		return err
	}

	if mtu == 0 {
		return write(w, serviceinfo.EncodeDeviceServiceInfo(pairs, isMore))
	}
	size, err := mtuSize()
	if err != nil {
		return err
	}
	rounds, err := serviceinfo.DeviceRounds(pairs, size)
	if err != nil {
		return err
	}
	slog.Debug("split device service info", "pairs", len(pairs), "rounds", len(rounds), "mtu", size)
	for _, round := range rounds {
		if err := write(w, round); err != nil {
			return err
		}
	}
	return nil
}

func owner(w io.Writer, args []string) error {
	if debug {
		level.Set(slog.LevelDebug)
	}

	pairs, err := parseKVs(args)
	if err != nil {
		return err
	}

	if mtu == 0 {
		if isMore && isDone {
			slog.Warn("IsMoreServiceInfo and IsDone are both set")
		}
		return write(w, serviceinfo.EncodeOwnerServiceInfo(pairs, isMore, isDone))
	}
	size, err := mtuSize()
	if err != nil {
		return err
	}
	rounds, err := serviceinfo.OwnerRounds(pairs, size)
	if err != nil {
		return err
	}
	slog.Debug("split owner service info", "pairs", len(pairs), "rounds", len(rounds), "mtu", size)
	for _, round := range rounds {
		if err := write(w, round); err != nil {
			return err
		}
	}
	return nil
}

func parseKVs(args []string) ([]serviceinfo.KV, error) {
	pairs := make([]serviceinfo.KV, 0, len(args))
	for _, arg := range args {
		kv, err := parseKV(arg)
		if err != nil {
			return nil, err
		}
		slog.Debug("service info", "key", kv.Key, "value", composite.Diagnostic(kv.Val), "size", kv.Size())
		pairs = append(pairs, kv)
	}
	return pairs, nil
}

func mtuSize() (uint16, error) {
	if mtu > math.MaxUint16 {
		return 0, fmt.Errorf("mtu %d exceeds max %d", mtu, math.MaxUint16)
	}
	return uint16(mtu), nil
}

type message interface {
	cbor.Marshaler
	Composite() composite.Array
}

func write(w io.Writer, msg message) error {
	switch outputFormat() {
	case "diag":
		_, err := fmt.Fprintln(w, msg.Composite())
		return err
	case "hex":
		data, err := cbor.Marshal(msg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	case "raw":
		return cbor.NewEncoder(w).Encode(msg)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func outputFormat() string {
	if format != "" {
		return format
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return "diag"
	}
	return "raw"
}
