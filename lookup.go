// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

// InstructionInfo exposes one opcode table entry's static metadata, for
// tools (disassemblers, REPL hosts) that need to decode instruction
// shape without access to the unexported opcode table itself.
type InstructionInfo struct {
	Name string
	Mode Mode
}

// Lookup returns the static decode metadata for the given opcode byte.
func Lookup(opcode byte) InstructionInfo {
	e := &opcodeTable[opcode]
	return InstructionInfo{Name: e.name, Mode: e.mode}
}

// OperandLength returns the number of operand bytes that follow an
// opcode byte for the given mode, given the current M/X widths.
func OperandLength(mode Mode, accum8, index8 bool) int {
	return operandLength(mode, accum8, index8)
}
