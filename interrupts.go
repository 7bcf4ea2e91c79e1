// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

// deliverInterrupt pushes the return-state stack frame appropriate to
// the current E mode and transfers control to the given vector. The
// setBreak flag marks the pushed status byte's B bit for a
// software-invoked interrupt (BRK/COP) in emulation mode, where that
// bit distinguishes a software break from a hardware IRQ; native mode
// has no B bit and ignores it.
func (cpu *CPU) deliverInterrupt(nativeVec, emulVec uint16, setBreak bool) int {
	r := &cpu.Reg

	if r.E {
		cpu.push16(r.PC)
		p := r.P
		if setBreak {
			p |= Break
		} else {
			p &^= Break
		}
		cpu.push8(byte(p))
	} else {
		cpu.push8(r.PB)
		cpu.push16(r.PC)
		cpu.push8(byte(r.P))
	}

	r.SetStatus(InterruptDisable, true)
	r.SetStatus(Decimal, false)
	r.PB = 0

	vec := emulVec
	if !r.E {
		vec = nativeVec
	}
	r.PC = Read16(cpu.Bus, Addr(0, vec))

	if r.E {
		return 7
	}
	return 8
}

func execBRK(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.deliverInterrupt(vecBRKNative, vecIRQEmul, true)
}

func execCOP(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.deliverInterrupt(vecCOPNative, vecCOPEmul, true)
}
