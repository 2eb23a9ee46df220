// Copyright © 2026 Briks contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/counter/main.go
// Summary: Entry point for the counter demo.

package main

import (
	"log"

	briks "github.com/salty-max/briks"
	"github.com/salty-max/briks/apps/counter"
)

func main() {
	if err := briks.Run(counter.New()); err != nil {
		log.Fatal(err)
	}
}
