// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/reader/main.go
// Summary: Entry point for the file viewer demo.
// Usage: reader [-log debug.log] <file>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	briks "github.com/salty-max/briks"
	"github.com/salty-max/briks/apps/reader"
)

func main() {
	logPath := flag.String("log", "", "append log output to this file instead of stderr")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: reader [-log file] <file>")
		os.Exit(2)
	}

	app, err := reader.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var opts []briks.Option
	if *logPath != "" {
		opts = append(opts, briks.WithLogFile(*logPath))
	}
	if err := briks.Run(app, opts...); err != nil {
		log.Fatal(err)
	}
}
