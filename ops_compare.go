// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

func compare(cpu *CPU, reg, v uint16, is8bit bool) {
	if is8bit {
		r, vv := byte(reg), byte(v)
		diff := int(r) - int(vv)
		cpu.Reg.SetStatus(Carry, r >= vv)
		cpu.Reg.SetStatus(Zero, diff == 0)
		cpu.Reg.SetStatus(Negative, byte(diff)&0x80 != 0)
	} else {
		diff := int(reg) - int(v)
		cpu.Reg.SetStatus(Carry, reg >= v)
		cpu.Reg.SetStatus(Zero, diff == 0)
		cpu.Reg.SetStatus(Negative, uint16(diff)&0x8000 != 0)
	}
}

func execCMP(cpu *CPU, e *opcodeEntry, operand []byte) {
	v := operandValue(cpu, e, operand)
	compare(cpu, cpu.Reg.A, v, cpu.Reg.AccumIs8Bit())
}

func execCPX(cpu *CPU, e *opcodeEntry, operand []byte) {
	var v uint16
	if e.mode == ModeImmIndex {
		v = immIndex(cpu, operand)
	} else {
		v = cpu.readIndex(addrFor(cpu, e, operand))
	}
	compare(cpu, cpu.Reg.X, v, cpu.Reg.IndexIs8Bit())
}

func execCPY(cpu *CPU, e *opcodeEntry, operand []byte) {
	var v uint16
	if e.mode == ModeImmIndex {
		v = immIndex(cpu, operand)
	} else {
		v = cpu.readIndex(addrFor(cpu, e, operand))
	}
	compare(cpu, cpu.Reg.Y, v, cpu.Reg.IndexIs8Bit())
}

func execDEC(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	v := cpu.readAccum(addr) - 1
	if cpu.Reg.AccumIs8Bit() {
		v &= 0x00FF
	}
	cpu.writeAccum(addr, v)
	cpu.setNZAccum(v)
}

func execDECA(cpu *CPU, e *opcodeEntry, operand []byte) {
	v := cpu.Reg.A - 1
	if cpu.Reg.AccumIs8Bit() {
		v &= 0x00FF
		cpu.Reg.setA8(byte(v))
	} else {
		cpu.Reg.setA16(v)
	}
	cpu.setNZAccum(cpu.Reg.A)
}

func execINC(cpu *CPU, e *opcodeEntry, operand []byte) {
	addr := addrFor(cpu, e, operand)
	v := cpu.readAccum(addr) + 1
	if cpu.Reg.AccumIs8Bit() {
		v &= 0x00FF
	}
	cpu.writeAccum(addr, v)
	cpu.setNZAccum(v)
}

func execINCA(cpu *CPU, e *opcodeEntry, operand []byte) {
	v := cpu.Reg.A + 1
	if cpu.Reg.AccumIs8Bit() {
		v &= 0x00FF
		cpu.Reg.setA8(byte(v))
	} else {
		cpu.Reg.setA16(v)
	}
	cpu.setNZAccum(cpu.Reg.A)
}

func execDEX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.X--
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.X &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.X)
}

func execDEY(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.Y--
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.Y &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.Y)
}

func execINX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.X++
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.X &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.X)
}

func execINY(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.Y++
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.Y &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.Y)
}
