// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

func execJMP(cpu *CPU, e *opcodeEntry, operand []byte) {
	switch e.mode {
	case ModeAbsolute:
		cpu.Reg.PC = operandToU16(operand)
	default:
		pc, pb := cpu.resolveJumpTarget(e.mode, operand)
		cpu.Reg.PC = pc
		cpu.Reg.PB = pb
	}
}

func execJML(cpu *CPU, e *opcodeEntry, operand []byte) {
	switch e.mode {
	case ModeAbsoluteLong:
		full := operandToU24(operand)
		cpu.Reg.PC = full.Offset()
		cpu.Reg.PB = full.Bank()
	default:
		pc, pb := cpu.resolveJumpTarget(e.mode, operand)
		cpu.Reg.PC = pc
		cpu.Reg.PB = pb
	}
}

func execJSR(cpu *CPU, e *opcodeEntry, operand []byte) {
	switch e.mode {
	case ModeAbsolute:
		cpu.push16(cpu.Reg.PC - 1)
		cpu.Reg.PC = operandToU16(operand)
	case ModeAbsoluteIndX:
		pc, _ := cpu.resolveJumpTarget(e.mode, operand)
		cpu.push16(cpu.Reg.PC - 1)
		cpu.Reg.PC = pc
	}
}

func execJSL(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.push8(cpu.Reg.PB)
	cpu.push16(cpu.Reg.PC - 1)
	full := operandToU24(operand)
	cpu.Reg.PC = full.Offset()
	cpu.Reg.PB = full.Bank()
}

func execRTS(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.PC = cpu.pull16() + 1
}

func execRTL(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.PC = cpu.pull16() + 1
	cpu.Reg.PB = cpu.pull8()
}

func execRTI(cpu *CPU, e *opcodeEntry, operand []byte) {
	r := &cpu.Reg
	if r.E {
		p := cpu.pull8()
		r.P = Status(p)
		r.fixupEmulationMode()
		r.PC = cpu.pull16()
	} else {
		p := cpu.pull8()
		r.P = Status(p)
		r.PC = cpu.pull16()
		r.PB = cpu.pull8()
	}
}

func execPEA(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.push16(operandToU16(operand))
}

func execPEI(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	cpu.push16(Read16(cpu.Bus, addr))
}

func execPER(cpu *CPU, e *opcodeEntry, operand []byte) {
	disp := int16(operandToU16(operand))
	cpu.push16(uint16(int32(cpu.Reg.PC) + int32(disp)))
}
