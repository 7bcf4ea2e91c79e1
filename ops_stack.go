// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

func execPHA(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.pushAccumWidth(cpu.Reg.A)
}

func execPLA(cpu *CPU, e *opcodeEntry, operand []byte) {
	v := cpu.pullAccumWidth()
	if cpu.Reg.AccumIs8Bit() {
		cpu.Reg.clearAHigh()
		cpu.Reg.setA8(byte(v))
	} else {
		cpu.Reg.setA16(v)
	}
	cpu.setNZAccum(cpu.Reg.A)
}

func execPHX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.pushIndexWidth(cpu.Reg.X)
}

func execPLX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.X = cpu.pullIndexWidth()
	cpu.setNZIndex(cpu.Reg.X)
}

func execPHY(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.pushIndexWidth(cpu.Reg.Y)
}

func execPLY(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.Y = cpu.pullIndexWidth()
	cpu.setNZIndex(cpu.Reg.Y)
}

func execPHP(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.push8(byte(cpu.Reg.P))
}

func execPLP(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.P = Status(cpu.pull8())
	cpu.Reg.fixupEmulationMode()
	cpu.Reg.maskIndexWidth()
}

func execPHB(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.push8(cpu.Reg.DB)
}

func execPLB(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.DB = cpu.pull8()
	cpu.setNZ8(cpu.Reg.DB)
}

func execPHD(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.push16(cpu.Reg.D)
}

func execPLD(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.D = cpu.pull16()
	cpu.Reg.SetStatus(Zero, cpu.Reg.D == 0)
	cpu.Reg.SetStatus(Negative, cpu.Reg.D&0x8000 != 0)
}

func execPHK(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.push8(cpu.Reg.PB)
}

// setNZ8 updates N and Z against an 8-bit value, used by the bank
// register pulls (PLB), which are always byte-wide regardless of M/X.
func (cpu *CPU) setNZ8(v byte) {
	cpu.Reg.SetStatus(Zero, v == 0)
	cpu.Reg.SetStatus(Negative, v&0x80 != 0)
}
