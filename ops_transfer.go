// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

func execTAX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.X = cpu.Reg.A
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.X &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.X)
}

func execTAY(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.Y = cpu.Reg.A
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.Y &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.Y)
}

func execTXA(cpu *CPU, e *opcodeEntry, operand []byte) {
	if cpu.Reg.AccumIs8Bit() {
		cpu.Reg.setA8(byte(cpu.Reg.X))
	} else {
		cpu.Reg.setA16(cpu.Reg.X)
	}
	cpu.setNZAccum(cpu.Reg.A)
}

func execTYA(cpu *CPU, e *opcodeEntry, operand []byte) {
	if cpu.Reg.AccumIs8Bit() {
		cpu.Reg.setA8(byte(cpu.Reg.Y))
	} else {
		cpu.Reg.setA16(cpu.Reg.Y)
	}
	cpu.setNZAccum(cpu.Reg.A)
}

func execTXY(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.Y = cpu.Reg.X
	cpu.setNZIndex(cpu.Reg.Y)
}

func execTYX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.X = cpu.Reg.Y
	cpu.setNZIndex(cpu.Reg.X)
}

func execTSX(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.X = cpu.Reg.SP
	if cpu.Reg.IndexIs8Bit() {
		cpu.Reg.X &= 0x00FF
	}
	cpu.setNZIndex(cpu.Reg.X)
}

func execTXS(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.SP = cpu.Reg.X
	cpu.Reg.pinStackHighByte()
}

func execTCD(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.D = cpu.Reg.A
	cpu.Reg.SetStatus(Zero, cpu.Reg.D == 0)
	cpu.Reg.SetStatus(Negative, cpu.Reg.D&0x8000 != 0)
}

func execTDC(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.setA16(cpu.Reg.D)
	cpu.Reg.SetStatus(Zero, cpu.Reg.A == 0)
	cpu.Reg.SetStatus(Negative, cpu.Reg.A&0x8000 != 0)
}

func execTCS(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.SP = cpu.Reg.A
	cpu.Reg.pinStackHighByte()
}

func execTSC(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.setA16(cpu.Reg.SP)
	cpu.Reg.SetStatus(Zero, cpu.Reg.A == 0)
	cpu.Reg.SetStatus(Negative, cpu.Reg.A&0x8000 != 0)
}

func execREP(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.P &^= Status(operand[0])
	cpu.Reg.fixupEmulationMode()
}

// execSEP sets the requested status bits. Setting the X bit (0->1)
// zero-extends X and Y to 8 bits.
func execSEP(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.P |= Status(operand[0])
	cpu.Reg.fixupEmulationMode()
	cpu.Reg.maskIndexWidth()
}

func execCLC(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(Carry, false) }
func execSEC(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(Carry, true) }
func execCLD(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(Decimal, false) }
func execSED(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(Decimal, true) }
func execCLI(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(InterruptDisable, false) }
func execSEI(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(InterruptDisable, true) }
func execCLV(cpu *CPU, e *opcodeEntry, operand []byte) { cpu.Reg.SetStatus(Overflow, false) }

// execXCE exchanges the Carry flag with the E latch, the documented
// way to switch between native and emulation mode.
func execXCE(cpu *CPU, e *opcodeEntry, operand []byte) {
	r := &cpu.Reg
	oldE := r.E
	r.E = r.IsStatusSet(Carry)
	r.SetStatus(Carry, oldE)
	r.fixupEmulationMode()
	if r.E {
		r.maskIndexWidth()
		r.X &= 0x00FF
		r.Y &= 0x00FF
	}
}

// execXBA exchanges the two bytes of the accumulator, independent of
// the current M width.
func execXBA(cpu *CPU, e *opcodeEntry, operand []byte) {
	lo := byte(cpu.Reg.A)
	hi := byte(cpu.Reg.A >> 8)
	cpu.Reg.A = uint16(lo)<<8 | uint16(hi)
	cpu.setNZ8(hi)
}
