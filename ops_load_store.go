// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

func execLDA(cpu *CPU, e *opcodeEntry, operand []byte) {
	v := operandValue(cpu, e, operand)
	if cpu.Reg.AccumIs8Bit() {
		cpu.Reg.setA8(byte(v))
	} else {
		cpu.Reg.setA16(v)
	}
	cpu.setNZAccum(cpu.Reg.A)
}

func execLDX(cpu *CPU, e *opcodeEntry, operand []byte) {
	var v uint16
	if e.mode == ModeImmIndex {
		v = immIndex(cpu, operand)
	} else {
		v = cpu.readIndex(addrFor(cpu, e, operand))
	}
	cpu.Reg.X = v
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.X &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.X)
}

func execLDY(cpu *CPU, e *opcodeEntry, operand []byte) {
	var v uint16
	if e.mode == ModeImmIndex {
		v = immIndex(cpu, operand)
	} else {
		v = cpu.readIndex(addrFor(cpu, e, operand))
	}
	cpu.Reg.Y = v
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.Y &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.Y)
}

func execSTA(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	cpu.writeAccum(addr, cpu.Reg.A)
}

func execSTX(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	cpu.writeIndex(addr, cpu.Reg.X)
}

func execSTY(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	cpu.writeIndex(addr, cpu.Reg.Y)
}

func execSTZ(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	cpu.writeAccum(addr, 0)
}
