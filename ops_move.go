// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

// execMVN and execMVP implement the block-move instructions. Each
// invocation moves exactly one byte and then, if the count in A has
// not yet run out, backs PC up over its own three bytes so the next
// Step call re-executes the same instruction. This
// mirrors real 65C816 hardware, which never completes a block move in
// a single fetch/decode cycle.
func execMVN(cpu *CPU, e *opcodeEntry, operand []byte) {
	moveBlock(cpu, operand, 1)
}

func execMVP(cpu *CPU, e *opcodeEntry, operand []byte) {
	moveBlock(cpu, operand, -1)
}

func moveBlock(cpu *CPU, operand []byte, step int) {
	r := &cpu.Reg
	destBank := operand[0]
	srcBank := operand[1]

	v := cpu.read8(Addr(srcBank, r.X))
	cpu.write8(Addr(destBank, r.Y), v)
	r.DB = destBank

	r.X = uint16(int32(r.X) + int32(step))
	r.Y = uint16(int32(r.Y) + int32(step))
	if r.IndexIs8Bit() {
		r.X &= 0x00FF
		r.Y &= 0x00FF
	}

	r.A--
	if r.A != 0xFFFF {
		r.PC -= 3
	}
}
