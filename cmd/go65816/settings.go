// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"strconv"
	"strings"
)

// runSettings holds the command-line configuration for a single run of
// the debugger, parsed from flags rather than a config file: there is no
// host process boundary here for env vars or config files to matter.
type runSettings struct {
	romPath     string
	trace       bool
	breakpoints []uint32
}

func parseSettings() *runSettings {
	s := &runSettings{}

	var bpList string
	flag.StringVar(&s.romPath, "rom", "", "path to a ROM image to load at startup")
	flag.BoolVar(&s.trace, "trace", false, "print every instruction as it executes")
	flag.StringVar(&bpList, "break", "", "comma-separated list of breakpoint addresses ($ hex prefix allowed)")
	flag.CommandLine.Usage = func() {
		println("Usage: go65816 [-rom file] [-trace] [-break addr,addr,...] [script] ..")
		flag.PrintDefaults()
	}
	flag.Parse()

	if bpList != "" {
		for _, tok := range strings.Split(bpList, ",") {
			tok = strings.TrimSpace(tok)
			tok = strings.TrimPrefix(tok, "$")
			v, err := strconv.ParseUint(tok, 16, 32)
			if err == nil {
				s.breakpoints = append(s.breakpoints, uint32(v))
			}
		}
	}

	return s
}

func flagArgs() []string {
	return flag.Args()
}
