// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package disasm implements a 65C816 instruction set disassembler.
package disasm

import (
	"fmt"

	go65816 "github.com/beevik/go65816"
)

// modeFormat gives the printf-style operand template for each
// addressing mode. "%s" is filled with the hex digits of the operand
// bytes, most significant byte first.
var modeFormat = map[go65816.Mode]string{
	go65816.ModeImplied:           "",
	go65816.ModeAccumulator:       "A",
	go65816.ModeStack:             "",
	go65816.ModeSignature8:        "",
	go65816.ModeImmAccum:          "#$%s",
	go65816.ModeImmIndex:          "#$%s",
	go65816.ModeImm8:              "#$%s",
	go65816.ModeRelative8:         "$%s",
	go65816.ModeRelative16:        "$%s",
	go65816.ModeDirect:            "$%s",
	go65816.ModeDirectX:           "$%s,X",
	go65816.ModeDirectY:           "$%s,Y",
	go65816.ModeDirectInd:         "($%s)",
	go65816.ModeDirectIndLong:     "[$%s]",
	go65816.ModeDirectIndX:        "($%s,X)",
	go65816.ModeDirectIndY:        "($%s),Y",
	go65816.ModeDirectIndLongY:    "[$%s],Y",
	go65816.ModeAbsolute:          "$%s",
	go65816.ModeAbsoluteX:         "$%s,X",
	go65816.ModeAbsoluteY:         "$%s,Y",
	go65816.ModeAbsoluteLong:      "$%s",
	go65816.ModeAbsoluteLongX:     "$%s,X",
	go65816.ModeAbsoluteInd:       "($%s)",
	go65816.ModeAbsoluteIndLong:   "[$%s]",
	go65816.ModeAbsoluteIndX:      "($%s,X)",
	go65816.ModeStackRel:          "$%s,S",
	go65816.ModeStackRelIndY:      "($%s,S),Y",
	go65816.ModeBlockMove:         "$%s,$%s",
	go65816.ModePEA:               "$%s",
	go65816.ModePEI:               "($%s)",
}

var hexDigits = "0123456789ABCDEF"

// hexString renders the little-endian bytes b as hex digits, most
// significant byte first.
func hexString(b []byte) string {
	buf := make([]byte, len(b)*2)
	j := len(buf) - 1
	for _, n := range b {
		buf[j] = hexDigits[n&0xf]
		buf[j-1] = hexDigits[n>>4]
		j -= 2
	}
	return string(buf)
}

// Disassemble decodes the instruction at 'addr' on 'bus' and returns its
// textual form and the address of the following instruction. accum8 and
// index8 select the operand width for immediate-mode decoding, since
// the instruction stream alone doesn't carry the M/X flags.
func Disassemble(bus go65816.Bus, addr go65816.Address, accum8, index8 bool) (line string, next go65816.Address) {
	opcode := bus.Read(addr)
	inst := go65816.Lookup(opcode)
	n := go65816.OperandLength(inst.Mode, accum8, index8)

	operand := make([]byte, n)
	for i := 0; i < n; i++ {
		operand[i] = bus.Read(addr + 1 + go65816.Address(i))
	}

	if inst.Mode == go65816.ModeBlockMove {
		line = fmt.Sprintf("%s $%02X,$%02X", inst.Name, operand[0], operand[1])
		return line, addr + 1 + go65816.Address(n)
	}

	format, ok := modeFormat[inst.Mode]
	if !ok || format == "" {
		line = inst.Name
	} else {
		// Operand bytes are little-endian in the instruction stream;
		// hexString renders them most-significant-byte-first for display.
		line = inst.Name + " " + fmt.Sprintf(format, hexString(operand))
	}

	return line, addr + 1 + go65816.Address(n)
}
