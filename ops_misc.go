// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

func execNOP(cpu *CPU, e *opcodeEntry, operand []byte) {}

// execWDM consumes its signature byte and does nothing else. Reserved
// for future co-processor handshakes; no meaning is defined here.
func execWDM(cpu *CPU, e *opcodeEntry, operand []byte) {}

// execWAI latches the CPU into the waiting-for-interrupt state; Step
// resumes normal dispatch only once an NMI or unmasked IRQ arrives.
func execWAI(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.WaitingForInterrupt = true
}

// execSTP halts the CPU until a hardware reset. No provision exists
// to resume from STP other than Reset.
func execSTP(cpu *CPU, e *opcodeEntry, operand []byte) {
	cpu.Reg.Stopped = true
}
