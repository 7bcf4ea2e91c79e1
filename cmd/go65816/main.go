// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/beevik/term"

	go65816 "github.com/beevik/go65816"
	"github.com/beevik/go65816/host"
)

func main() {
	settings := parseSettings()

	h := host.New()
	h.Trace = settings.trace

	if settings.romPath != "" {
		if err := h.LoadROM(settings.romPath); err != nil {
			exitOnError(err)
		}
	}

	for _, addr := range settings.breakpoints {
		h.AddBreakpoint(go65816.Address(addr))
	}

	// Run commands contained in command-line files.
	for _, filename := range flagArgs() {
		file, err := os.Open(filename)
		if err != nil {
			exitOnError(err)
		}
		h.RunCommands(file, os.Stdout, false)
		file.Close()
	}

	// Break on Ctrl-C.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go handleInterrupt(h, c)

	// Only offer the "* " prompt and live register display when stdin is
	// actually a terminal; a piped script has no one to prompt.
	stdinFd := int(os.Stdin.Fd())
	interactive := term.IsTerminal(stdinFd)

	// Run commands interactively.
	h.RunCommands(os.Stdin, os.Stdout, interactive)
}

func handleInterrupt(h *host.Host, c chan os.Signal) {
	for {
		<-c
		h.Break()
	}
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	os.Exit(1)
}
