// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

// Interrupt vector addresses. Native-mode vectors occupy the bank-0
// addresses just below the emulation-mode (6502-compatible) vectors.
const (
	vecCOPNative   uint16 = 0xFFE4
	vecBRKNative   uint16 = 0xFFE6
	vecABORTNative uint16 = 0xFFE8
	vecNMINative   uint16 = 0xFFEA
	vecIRQNative   uint16 = 0xFFEE

	vecCOPEmul   uint16 = 0xFFF4
	vecABORTEmul uint16 = 0xFFF8
	vecNMIEmul   uint16 = 0xFFFA
	vecResetVec  uint16 = 0xFFFC
	vecIRQEmul   uint16 = 0xFFFE
)

// Diagnostic describes an anomalous condition the core detected while
// running (an undefined opcode, for instance). Diagnostics never panic
// or abort execution; they're surfaced for a host to log or break on.
type Diagnostic struct {
	PC   Address
	Code byte
	Kind string
}

// CPU represents the complete state of an emulated 65C816 processor:
// its registers, the memory bus it's wired to, and the bookkeeping
// needed to dispatch and time instructions.
type CPU struct {
	Reg    Registers
	Bus    Bus
	Cycles uint64

	// dpPenalty and pageCrossed are set by resolve() during operand
	// resolution and consumed by the dispatch loop when it finalizes
	// the instruction's cycle count: a pageCrossed/deltaCycles style
	// split, generalized to carry the 65C816's direct-page penalty
	// alongside the inherited page-crossing one. Taken 8-bit branches
	// (takeBranch8) also use the two fields as plain +1 cycle signals:
	// pageCrossed for the branch being taken, dpPenalty for the branch
	// crossing a page.
	dpPenalty   bool
	pageCrossed bool

	irqPending bool
	nmiPending bool

	LastPC Address

	// Debugger, if non-nil, is consulted for breakpoints before each
	// instruction executes and for data breakpoints on every memory
	// store the core performs through write8.
	Debugger *Debugger

	// diagnostic, when non-nil, is set by the most recent Step() call
	// for a host to inspect; it never alters control flow.
	diagnostic *Diagnostic
}

// NewCPU creates a CPU wired to the given bus, and initializes its
// registers to the power-on state.
func NewCPU(bus Bus) *CPU {
	cpu := &CPU{Bus: bus}
	cpu.Reg.Init()
	return cpu
}

// read8 and write8 are the sole entry points instruction handlers use
// to touch memory for data operands (as opposed to pointer chasing
// during address resolution), so that data breakpoints see every
// store the core performs.
func (cpu *CPU) read8(addr Address) byte {
	return cpu.Bus.Read(addr)
}

func (cpu *CPU) write8(addr Address, v byte) {
	cpu.Bus.Write(addr, v)
	if cpu.Debugger != nil {
		cpu.Debugger.onDataStore(cpu, addr, v)
	}
}

// LastDiagnostic returns the diagnostic recorded by the most recent
// Step call, or nil if none was recorded.
func (cpu *CPU) LastDiagnostic() *Diagnostic {
	return cpu.diagnostic
}

// Reset performs a hardware reset: registers return to their power-on
// state and PC/PB are loaded from the reset vector.
func (cpu *CPU) Reset() {
	cpu.Reg.Init()
	cpu.irqPending = false
	cpu.nmiPending = false
	cpu.diagnostic = nil
	cpu.Reg.PC = Read16(cpu.Bus, Addr(0, vecResetVec))
	cpu.Reg.PB = 0
}

// RaiseIRQ arms a pending maskable interrupt. It takes effect at the
// next instruction boundary where the I flag is clear.
func (cpu *CPU) RaiseIRQ() {
	cpu.irqPending = true
}

// RaiseNMI arms a pending non-maskable interrupt, delivered at the
// next instruction boundary regardless of the I flag.
func (cpu *CPU) RaiseNMI() {
	cpu.nmiPending = true
}

// fetch reads the byte at PC/PB and advances PC, wrapping within the
// current program bank.
func (cpu *CPU) fetch() byte {
	b := cpu.Bus.Read(Addr(cpu.Reg.PB, cpu.Reg.PC))
	cpu.Reg.PC++
	return b
}

// Step executes exactly one instruction, or one interrupt-delivery
// sequence if a latched interrupt is currently serviceable, and
// returns the number of cycles it consumed.
func (cpu *CPU) Step() int {
	cpu.diagnostic = nil

	if cpu.Reg.Stopped {
		return 1
	}

	if cpu.nmiPending {
		cpu.nmiPending = false
		cpu.Reg.WaitingForInterrupt = false
		return cpu.deliverInterrupt(vecNMINative, vecNMIEmul, false)
	}
	if cpu.irqPending && !cpu.Reg.IsStatusSet(InterruptDisable) {
		cpu.irqPending = false
		cpu.Reg.WaitingForInterrupt = false
		return cpu.deliverInterrupt(vecIRQNative, vecIRQEmul, false)
	}

	if cpu.Reg.WaitingForInterrupt {
		return 1
	}

	cpu.LastPC = Addr(cpu.Reg.PB, cpu.Reg.PC)
	if cpu.Debugger != nil {
		cpu.Debugger.onCPUExecute(cpu, cpu.LastPC)
	}

	code := cpu.fetch()
	e := &opcodeTable[code]

	n := operandLength(e.mode, cpu.Reg.AccumIs8Bit(), cpu.Reg.IndexIs8Bit())
	var operand []byte
	if n > 0 {
		operand = make([]byte, n)
		for i := 0; i < n; i++ {
			operand[i] = cpu.fetch()
		}
	}

	if e.fn == nil {
		cpu.diagnostic = &Diagnostic{PC: cpu.LastPC, Code: code, Kind: "undefined opcode"}
		cpu.Cycles += 2
		return 2
	}

	cpu.dpPenalty = false
	cpu.pageCrossed = false

	e.fn(cpu, e, operand)

	cycles := int(e.cycles)
	if cpu.dpPenalty {
		cycles++
	}
	if cpu.pageCrossed {
		cycles++
	}
	switch e.width {
	case widthAccum:
		if !cpu.Reg.AccumIs8Bit() {
			cycles++
		}
	case widthIndex:
		if !cpu.Reg.IndexIs8Bit() {
			cycles++
		}
	}

	cpu.Cycles += uint64(cycles)
	return cycles
}
