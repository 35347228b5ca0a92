// SPDX-FileCopyrightText: (C) 2025 Intel Corporation
// SPDX-License-Identifier: Apache 2.0

// Package main encodes device and owner service info messages from
// key=value arguments.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

var flags = flag.NewFlagSet("svi", flag.ContinueOnError)

var (
	debug bool
)

// subcommand encodes the messages of one side of the service info exchange.
type subcommand struct {
	name    string
	aliases []string
	flags   *flag.FlagSet
	encode  func(w io.Writer, args []string) error
}

var subcommands = []subcommand{
	{name: "device", aliases: []string{"d", "dev"}, flags: deviceFlags, encode: device},
	{name: "owner", aliases: []string{"o", "own"}, flags: ownerFlags, encode: owner},
}

func init() {
	flags.BoolVar(&debug, "debug", false, "Log each parsed service info and round split")
	flags.SetOutput(io.Discard)
	for _, sub := range subcommands {
		sub.flags.SetOutput(io.Discard)
	}
}

func usage(w io.Writer) {
	var names []string
	var sections strings.Builder
	for _, sub := range subcommands {
		names = append(names, sub.name)
		_, _ = fmt.Fprintf(&sections, "\n%s options (aliases: %s):\n%s",
			sub.name, strings.Join(sub.aliases, ", "), options(sub.flags))
	}

	_, _ = fmt.Fprintf(w, `
Usage:
  svi [-debug] %s [--] [options] key=value...

Encodes ServiceInfo key=value pairs as a TO2.DeviceServiceInfo (68) or
TO2.OwnerServiceInfo (69) message body.

Global options:
%s%s
Value syntax:
  text          Text string (also text:<s> to force text)
  int:-5        Signed integer
  uint:7        Unsigned integer
  bool:true     Boolean
  hex:0a0b      Byte string
  null          Null
`, strings.Join(names, "|"), options(flags), sections.String())
}

func options(flags *flag.FlagSet) string {
	oldOutput := flags.Output()
	defer flags.SetOutput(oldOutput)

	var buf bytes.Buffer
	flags.SetOutput(&buf)
	flags.PrintDefaults()

	return buf.String()
}

// run returns the process exit code: 1 for usage errors and 2 for encoding
// errors.
func run(args []string, stdout, stderr io.Writer) int {
	if err := flags.Parse(args); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		usage(stderr)
		return 1
	}

	name := flags.Arg(0)
	rest := flags.Args()
	if len(rest) > 0 {
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == "--" {
		rest = rest[1:]
	}

	i := slices.IndexFunc(subcommands, func(sub subcommand) bool {
		return sub.name == name || slices.Contains(sub.aliases, name)
	})
	if i < 0 {
		if name != "" {
			_, _ = fmt.Fprintf(stderr, "unknown subcommand %q\n", name)
		}
		usage(stderr)
		return 1
	}

	sub := subcommands[i]
	if err := sub.flags.Parse(rest); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", sub.name, err)
		usage(stderr)
		return 1
	}
	if err := sub.encode(stdout, sub.flags.Args()); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s error: %v\n", sub.name, err)
		return 2
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
