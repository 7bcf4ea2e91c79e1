// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816_test

import (
	"testing"

	go65816 "github.com/beevik/go65816"
)

func newTestCPU(code []byte, origin uint16) *go65816.CPU {
	bus := go65816.NewSystemBus(nil)
	for i, b := range code {
		bus.Write(go65816.Addr(0, origin+uint16(i)), b)
	}
	cpu := go65816.NewCPU(bus)
	cpu.Reg.Init()
	cpu.Reg.PC = origin
	cpu.Reg.PB = 0
	return cpu
}

func stepN(cpu *go65816.CPU, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += cpu.Step()
	}
	return total
}

func TestNativeAccumulatorLoadStore(t *testing.T) {
	// XCE (enter native mode via carry swap), REP #$30 (16-bit A/X/Y),
	// LDA #$1234, STA $0010, STA $1F00
	code := []byte{
		0xFB,             // XCE
		0xC2, 0x30,       // REP #$30
		0xA9, 0x34, 0x12, // LDA #$1234
		0x85, 0x10, // STA $10
		0x8D, 0x00, 0x1F, // STA $1F00
	}
	cpu := newTestCPU(code, 0x1000)
	// Carry starts clear, so XCE flips E to native (0) and sets C to the
	// old E value (1).
	stepN(cpu, 5)

	if cpu.Reg.A != 0x1234 {
		t.Errorf("A incorrect: got $%04X, want $1234", cpu.Reg.A)
	}
	if got := go65816.Read16(cpu.Bus, go65816.Addr(0, 0x0010)); got != 0x1234 {
		t.Errorf("mem[$10] incorrect: got $%04X, want $1234", got)
	}
	if got := go65816.Read16(cpu.Bus, go65816.Addr(0, 0x1F00)); got != 0x1234 {
		t.Errorf("mem[$1F00] incorrect: got $%04X, want $1234", got)
	}
}

func TestLDAPreservesHighByteIn8BitMode(t *testing.T) {
	code := []byte{0xA9, 0x00} // LDA #$00, 8-bit immediate (emulation mode)
	cpu := newTestCPU(code, 0x1000)
	cpu.Reg.A = 0x1234

	stepN(cpu, 1)

	if cpu.Reg.A != 0x1200 {
		t.Errorf("A incorrect: got $%04X, want $1200", cpu.Reg.A)
	}
}

func TestANDPreservesHighByteIn8BitMode(t *testing.T) {
	code := []byte{0x29, 0x0F} // AND #$0F, 8-bit immediate (emulation mode)
	cpu := newTestCPU(code, 0x1000)
	cpu.Reg.A = 0x1234

	stepN(cpu, 1)

	if cpu.Reg.A != 0x1204 {
		t.Errorf("A incorrect: got $%04X, want $1204", cpu.Reg.A)
	}
}

func TestPLAClearsHighByteIn8BitMode(t *testing.T) {
	code := []byte{0x68} // PLA, 8-bit (emulation mode)
	cpu := newTestCPU(code, 0x1000)
	cpu.Reg.A = 0x1234
	cpu.Reg.SP = 0x01FE
	cpu.Bus.Write(go65816.Addr(0, 0x01FF), 0x55)

	stepN(cpu, 1)

	if cpu.Reg.A != 0x0055 {
		t.Errorf("A incorrect: got $%04X, want $0055", cpu.Reg.A)
	}
}

func TestEmulationModeForces8BitWidth(t *testing.T) {
	code := []byte{0xA9, 0x42} // LDA #$42
	cpu := newTestCPU(code, 0x1000)
	// cpu starts in emulation mode (E=1) by Init().

	stepN(cpu, 1)

	if !cpu.Reg.EmulationMode() {
		t.Fatal("expected emulation mode to remain set")
	}
	if cpu.Reg.A != 0x0042 {
		t.Errorf("A incorrect: got $%04X, want $0042", cpu.Reg.A)
	}
}

func TestDirectPagePenalty(t *testing.T) {
	code := []byte{
		0xA5, 0x10, // LDA $10  (dp read, 3 base cycles + 1 if D nonzero)
	}
	cpu := newTestCPU(code, 0x1000)
	cpu.Reg.D = 0x0201 // nonzero low byte of the direct page base triggers the penalty

	cycles := stepN(cpu, 1)
	if cycles != 4 {
		t.Errorf("cycles incorrect: got %d, want 4", cycles)
	}
}

func TestAbsoluteIndexedWritePenaltyIsUnconditional(t *testing.T) {
	code := []byte{
		0x9D, 0x00, 0x20, // STA $2000,X
	}
	cpu := newTestCPU(code, 0x1000)
	cpu.Reg.X = 0 // no page crossing, but writes always pay the extra cycle

	cycles := stepN(cpu, 1)
	if cycles != 6 {
		t.Errorf("cycles incorrect: got %d, want 6 (5 base + 1 write penalty)", cycles)
	}
}

func TestBranchTakenAndPageCross(t *testing.T) {
	code := []byte{
		0x18,       // CLC
		0x90, 0x7F, // BCC +127 (taken, crosses the $1100 page boundary)
	}
	cpu := newTestCPU(code, 0x1080)
	stepN(cpu, 1) // CLC
	cycles := stepN(cpu, 1)

	wantPC := uint16(0x1080 + 1 + 2 + 0x7F)
	if cpu.Reg.PC != wantPC {
		t.Errorf("PC incorrect: got $%04X, want $%04X", cpu.Reg.PC, wantPC)
	}
	if cycles != 4 {
		t.Errorf("cycles incorrect: got %d, want 4 (2 base + 1 taken + 1 page cross)", cycles)
	}
}

func TestBranchPageCrossChargedInNativeMode(t *testing.T) {
	code := []byte{
		0xFB,       // XCE -> native mode
		0x18,       // CLC
		0x90, 0x7F, // BCC +127 (taken, crosses the page boundary)
	}
	cpu := newTestCPU(code, 0x1080)
	stepN(cpu, 2) // XCE, CLC
	cycles := stepN(cpu, 1)

	if cycles != 4 {
		t.Errorf("cycles incorrect: got %d, want 4 (2 base + 1 taken + 1 page cross)", cycles)
	}
}

func TestAbsoluteIndexedPageCrossWithinBank(t *testing.T) {
	// LDA $12FF,X with X=1 crosses from page $12xx to $13xx but stays
	// within the same bank, and must still be charged the read penalty.
	code := []byte{0xBD, 0xFF, 0x12} // LDA $12FF,X
	cpu := newTestCPU(code, 0x1000)
	cpu.Reg.X = 1
	cpu.Bus.Write(go65816.Addr(0, 0x1300), 0x42)

	cycles := stepN(cpu, 1)
	if cycles != 5 {
		t.Errorf("cycles incorrect: got %d, want 5 (4 base + 1 page cross)", cycles)
	}
	if cpu.Reg.A != 0x0042 {
		t.Errorf("A incorrect: got $%04X, want $0042", cpu.Reg.A)
	}
}

func TestDecimalModeAddition(t *testing.T) {
	// SED, CLC, LDA #$19, ADC #$29 -> decimal 19 + 29 = 48 ($48), no carry
	code := []byte{
		0xF8,       // SED
		0x18,       // CLC
		0xA9, 0x19, // LDA #$19
		0x69, 0x29, // ADC #$29
	}
	cpu := newTestCPU(code, 0x1000)
	stepN(cpu, 4)

	if cpu.Reg.A != 0x0048 {
		t.Errorf("decimal ADC incorrect: got $%04X, want $0048", cpu.Reg.A)
	}
	if cpu.Reg.IsStatusSet(go65816.Carry) {
		t.Error("expected carry clear after 19+29 decimal add")
	}
}

func TestBlockMoveNegative(t *testing.T) {
	// MVN re-executes itself byte by byte until A underflows past 0.
	code := []byte{0x54, 0x00, 0x00} // MVN destbank=0 srcbank=0
	cpu := newTestCPU(code, 0x1000)
	// Native mode with 16-bit index registers, so X and Y can hold
	// $0300/$0400 without being truncated to 8 bits.
	cpu.Reg.E = false
	cpu.Reg.SetStatus(go65816.IndexWidth, false)
	cpu.Reg.A = 2 // move 3 bytes
	cpu.Reg.X = 0x0300
	cpu.Reg.Y = 0x0400
	cpu.Bus.Write(go65816.Addr(0, 0x0300), 0xAA)
	cpu.Bus.Write(go65816.Addr(0, 0x0301), 0xBB)
	cpu.Bus.Write(go65816.Addr(0, 0x0302), 0xCC)

	for i := 0; i < 3; i++ {
		cpu.Step()
	}

	if got := cpu.Bus.Read(go65816.Addr(0, 0x0400)); got != 0xAA {
		t.Errorf("mem[$400] incorrect: got $%02X, want $AA", got)
	}
	if got := cpu.Bus.Read(go65816.Addr(0, 0x0402)); got != 0xCC {
		t.Errorf("mem[$402] incorrect: got $%02X, want $CC", got)
	}
	if cpu.Reg.A != 0xFFFF {
		t.Errorf("A incorrect after block move: got $%04X, want $FFFF", cpu.Reg.A)
	}
}

func TestDefinedOpcodeHasNoDiagnostic(t *testing.T) {
	cpu := newTestCPU([]byte{0xEA}, 0x1000)
	cpu.Step()
	if d := cpu.LastDiagnostic(); d != nil {
		t.Errorf("expected no diagnostic for NOP, got %v", d)
	}
}

func TestStackRoundTrip(t *testing.T) {
	code := []byte{
		0xFB,       // XCE -> native mode
		0xC2, 0x30, // REP #$30 -> 16-bit A/X/Y
		0xA9, 0xAD, 0xDE, // LDA #$DEAD
		0x48,       // PHA
		0xA9, 0, 0, // LDA #$0000
		0x68, // PLA
	}
	cpu := newTestCPU(code, 0x1000)
	stepN(cpu, 6)

	if cpu.Reg.A != 0xDEAD {
		t.Errorf("A incorrect after PHA/PLA round trip: got $%04X, want $DEAD", cpu.Reg.A)
	}
}

func TestIRQDeliveryRespectsInterruptDisable(t *testing.T) {
	cpu := newTestCPU([]byte{0xEA, 0xEA}, 0x1000)
	cpu.Reg.SetStatus(go65816.InterruptDisable, true)
	cpu.RaiseIRQ()
	cpu.Step()
	if cpu.Reg.PC != 0x1001 {
		t.Errorf("IRQ fired despite I flag set; PC = $%04X", cpu.Reg.PC)
	}
}
