// Copyright 2014 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package go65816

// opsym is an internal symbol identifying a mnemonic, independent of its
// addressing-mode variants, so that each (mnemonic, mode) pair shares one
// handler selected purely by opcode byte.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRA
	symBRK
	symBRL
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCOP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJML
	symJMP
	symJSL
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symMVN
	symMVP
	symNOP
	symORA
	symPEA
	symPEI
	symPER
	symPHA
	symPHB
	symPHD
	symPHK
	symPHP
	symPHX
	symPHY
	symPLA
	symPLB
	symPLD
	symPLP
	symPLX
	symPLY
	symREP
	symROL
	symROR
	symRTI
	symRTL
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSEP
	symSTA
	symSTP
	symSTX
	symSTY
	symSTZ
	symTAX
	symTAY
	symTCD
	symTCS
	symTDC
	symTRB
	symTSB
	symTSC
	symTSX
	symTXA
	symTXS
	symTXY
	symTYA
	symTYX
	symWAI
	symWDM
	symXBA
	symXCE
)

// widthFlag identifies which status bit (if any) governs the operand
// width of an instruction's memory/register access, for the purpose of
// applying the real chip's "+1 cycle when accessing a 16-bit operand"
// timing rule alongside the direct-page and page-crossing penalties.
// See DESIGN.md for why this is modeled as table metadata rather than
// an ad-hoc per-opcode check.
type widthFlag byte

const (
	widthNone  widthFlag = iota
	widthAccum           // governed by the M flag
	widthIndex           // governed by the X flag
)

// instfunc is the handler signature for a fully resolved (mnemonic,
// mode) pair.
type instfunc func(cpu *CPU, e *opcodeEntry, operand []byte)

// opcodeEntry describes one of the 256 opcode byte values. Every byte
// value is defined on the 65C816 (unlike the NMOS 6502), so the table
// is a flat, fully populated array rather than a sparse lookup.
type opcodeEntry struct {
	sym    opsym
	name   string
	mode   Mode
	cycles byte
	class  accessClass
	width  widthFlag
	fn     instfunc
}

var opcodeTable [256]opcodeEntry

func op(code byte, sym opsym, name string, mode Mode, cycles byte, class accessClass, width widthFlag, fn instfunc) {
	opcodeTable[code] = opcodeEntry{sym: sym, name: name, mode: mode, cycles: cycles, class: class, width: width, fn: fn}
}

func init() {
	// Column legend: opcode, symbol, name, mode, base cycles, access
	// class (for the page-crossing penalty rule), width flag (for the
	// 16-bit-operand timing bonus).
	op(0x00, symBRK, "BRK", ModeSignature8, 7, classNone, widthNone, execBRK)
	op(0x01, symORA, "ORA", ModeDirectIndX, 6, classRead, widthAccum, execORA)
	op(0x02, symCOP, "COP", ModeSignature8, 7, classNone, widthNone, execCOP)
	op(0x03, symORA, "ORA", ModeStackRel, 4, classRead, widthAccum, execORA)
	op(0x04, symTSB, "TSB", ModeDirect, 5, classRMW, widthAccum, execTSB)
	op(0x05, symORA, "ORA", ModeDirect, 3, classRead, widthAccum, execORA)
	op(0x06, symASL, "ASL", ModeDirect, 5, classRMW, widthAccum, execASL)
	op(0x07, symORA, "ORA", ModeDirectIndLong, 6, classRead, widthAccum, execORA)
	op(0x08, symPHP, "PHP", ModeStack, 3, classNone, widthNone, execPHP)
	op(0x09, symORA, "ORA", ModeImmAccum, 2, classRead, widthAccum, execORA)
	op(0x0A, symASL, "ASL", ModeAccumulator, 2, classNone, widthAccum, execASL)
	op(0x0B, symPHD, "PHD", ModeStack, 4, classNone, widthNone, execPHD)
	op(0x0C, symTSB, "TSB", ModeAbsolute, 6, classRMW, widthAccum, execTSB)
	op(0x0D, symORA, "ORA", ModeAbsolute, 4, classRead, widthAccum, execORA)
	op(0x0E, symASL, "ASL", ModeAbsolute, 6, classRMW, widthAccum, execASL)
	op(0x0F, symORA, "ORA", ModeAbsoluteLong, 5, classRead, widthAccum, execORA)

	op(0x10, symBPL, "BPL", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0x11, symORA, "ORA", ModeDirectIndY, 6, classRead, widthAccum, execORA)
	op(0x12, symORA, "ORA", ModeDirectInd, 5, classRead, widthAccum, execORA)
	op(0x13, symORA, "ORA", ModeStackRelIndY, 7, classRead, widthAccum, execORA)
	op(0x14, symTRB, "TRB", ModeDirect, 5, classRMW, widthAccum, execTRB)
	op(0x15, symORA, "ORA", ModeDirectX, 4, classRead, widthAccum, execORA)
	op(0x16, symASL, "ASL", ModeDirectX, 6, classRMW, widthAccum, execASL)
	op(0x17, symORA, "ORA", ModeDirectIndLongY, 6, classRead, widthAccum, execORA)
	op(0x18, symCLC, "CLC", ModeImplied, 2, classNone, widthNone, execCLC)
	op(0x19, symORA, "ORA", ModeAbsoluteY, 4, classRead, widthAccum, execORA)
	op(0x1A, symINC, "INC", ModeAccumulator, 2, classNone, widthAccum, execINCA)
	op(0x1B, symTCS, "TCS", ModeImplied, 2, classNone, widthNone, execTCS)
	op(0x1C, symTRB, "TRB", ModeAbsolute, 6, classRMW, widthAccum, execTRB)
	op(0x1D, symORA, "ORA", ModeAbsoluteX, 4, classRead, widthAccum, execORA)
	op(0x1E, symASL, "ASL", ModeAbsoluteX, 7, classRMW, widthAccum, execASL)
	op(0x1F, symORA, "ORA", ModeAbsoluteLongX, 5, classRead, widthAccum, execORA)

	op(0x20, symJSR, "JSR", ModeAbsolute, 6, classNone, widthNone, execJSR)
	op(0x21, symAND, "AND", ModeDirectIndX, 6, classRead, widthAccum, execAND)
	op(0x22, symJSL, "JSL", ModeAbsoluteLong, 8, classNone, widthNone, execJSL)
	op(0x23, symAND, "AND", ModeStackRel, 4, classRead, widthAccum, execAND)
	op(0x24, symBIT, "BIT", ModeDirect, 3, classRead, widthAccum, execBIT)
	op(0x25, symAND, "AND", ModeDirect, 3, classRead, widthAccum, execAND)
	op(0x26, symROL, "ROL", ModeDirect, 5, classRMW, widthAccum, execROL)
	op(0x27, symAND, "AND", ModeDirectIndLong, 6, classRead, widthAccum, execAND)
	op(0x28, symPLP, "PLP", ModeStack, 4, classNone, widthNone, execPLP)
	op(0x29, symAND, "AND", ModeImmAccum, 2, classRead, widthAccum, execAND)
	op(0x2A, symROL, "ROL", ModeAccumulator, 2, classNone, widthAccum, execROL)
	op(0x2B, symPLD, "PLD", ModeStack, 5, classNone, widthNone, execPLD)
	op(0x2C, symBIT, "BIT", ModeAbsolute, 4, classRead, widthAccum, execBIT)
	op(0x2D, symAND, "AND", ModeAbsolute, 4, classRead, widthAccum, execAND)
	op(0x2E, symROL, "ROL", ModeAbsolute, 6, classRMW, widthAccum, execROL)
	op(0x2F, symAND, "AND", ModeAbsoluteLong, 5, classRead, widthAccum, execAND)

	op(0x30, symBMI, "BMI", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0x31, symAND, "AND", ModeDirectIndY, 6, classRead, widthAccum, execAND)
	op(0x32, symAND, "AND", ModeDirectInd, 5, classRead, widthAccum, execAND)
	op(0x33, symAND, "AND", ModeStackRelIndY, 7, classRead, widthAccum, execAND)
	op(0x34, symBIT, "BIT", ModeDirectX, 4, classRead, widthAccum, execBIT)
	op(0x35, symAND, "AND", ModeDirectX, 4, classRead, widthAccum, execAND)
	op(0x36, symROL, "ROL", ModeDirectX, 6, classRMW, widthAccum, execROL)
	op(0x37, symAND, "AND", ModeDirectIndLongY, 6, classRead, widthAccum, execAND)
	op(0x38, symSEC, "SEC", ModeImplied, 2, classNone, widthNone, execSEC)
	op(0x39, symAND, "AND", ModeAbsoluteY, 4, classRead, widthAccum, execAND)
	op(0x3A, symDEC, "DEC", ModeAccumulator, 2, classNone, widthAccum, execDECA)
	op(0x3B, symTSC, "TSC", ModeImplied, 2, classNone, widthNone, execTSC)
	op(0x3C, symBIT, "BIT", ModeAbsoluteX, 4, classRead, widthAccum, execBIT)
	op(0x3D, symAND, "AND", ModeAbsoluteX, 4, classRead, widthAccum, execAND)
	op(0x3E, symROL, "ROL", ModeAbsoluteX, 7, classRMW, widthAccum, execROL)
	op(0x3F, symAND, "AND", ModeAbsoluteLongX, 5, classRead, widthAccum, execAND)

	op(0x40, symRTI, "RTI", ModeStack, 6, classNone, widthNone, execRTI)
	op(0x41, symEOR, "EOR", ModeDirectIndX, 6, classRead, widthAccum, execEOR)
	op(0x42, symWDM, "WDM", ModeSignature8, 2, classNone, widthNone, execWDM)
	op(0x43, symEOR, "EOR", ModeStackRel, 4, classRead, widthAccum, execEOR)
	op(0x44, symMVP, "MVP", ModeBlockMove, 7, classNone, widthNone, execMVP)
	op(0x45, symEOR, "EOR", ModeDirect, 3, classRead, widthAccum, execEOR)
	op(0x46, symLSR, "LSR", ModeDirect, 5, classRMW, widthAccum, execLSR)
	op(0x47, symEOR, "EOR", ModeDirectIndLong, 6, classRead, widthAccum, execEOR)
	op(0x48, symPHA, "PHA", ModeStack, 3, classNone, widthAccum, execPHA)
	op(0x49, symEOR, "EOR", ModeImmAccum, 2, classRead, widthAccum, execEOR)
	op(0x4A, symLSR, "LSR", ModeAccumulator, 2, classNone, widthAccum, execLSR)
	op(0x4B, symPHK, "PHK", ModeStack, 3, classNone, widthNone, execPHK)
	op(0x4C, symJMP, "JMP", ModeAbsolute, 3, classNone, widthNone, execJMP)
	op(0x4D, symEOR, "EOR", ModeAbsolute, 4, classRead, widthAccum, execEOR)
	op(0x4E, symLSR, "LSR", ModeAbsolute, 6, classRMW, widthAccum, execLSR)
	op(0x4F, symEOR, "EOR", ModeAbsoluteLong, 5, classRead, widthAccum, execEOR)

	op(0x50, symBVC, "BVC", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0x51, symEOR, "EOR", ModeDirectIndY, 6, classRead, widthAccum, execEOR)
	op(0x52, symEOR, "EOR", ModeDirectInd, 5, classRead, widthAccum, execEOR)
	op(0x53, symEOR, "EOR", ModeStackRelIndY, 7, classRead, widthAccum, execEOR)
	op(0x54, symMVN, "MVN", ModeBlockMove, 7, classNone, widthNone, execMVN)
	op(0x55, symEOR, "EOR", ModeDirectX, 4, classRead, widthAccum, execEOR)
	op(0x56, symLSR, "LSR", ModeDirectX, 6, classRMW, widthAccum, execLSR)
	op(0x57, symEOR, "EOR", ModeDirectIndLongY, 6, classRead, widthAccum, execEOR)
	op(0x58, symCLI, "CLI", ModeImplied, 2, classNone, widthNone, execCLI)
	op(0x59, symEOR, "EOR", ModeAbsoluteY, 4, classRead, widthAccum, execEOR)
	op(0x5A, symPHY, "PHY", ModeStack, 3, classNone, widthIndex, execPHY)
	op(0x5B, symTCD, "TCD", ModeImplied, 2, classNone, widthNone, execTCD)
	op(0x5C, symJML, "JML", ModeAbsoluteLong, 4, classNone, widthNone, execJML)
	op(0x5D, symEOR, "EOR", ModeAbsoluteX, 4, classRead, widthAccum, execEOR)
	op(0x5E, symLSR, "LSR", ModeAbsoluteX, 7, classRMW, widthAccum, execLSR)
	op(0x5F, symEOR, "EOR", ModeAbsoluteLongX, 5, classRead, widthAccum, execEOR)

	op(0x60, symRTS, "RTS", ModeStack, 6, classNone, widthNone, execRTS)
	op(0x61, symADC, "ADC", ModeDirectIndX, 6, classRead, widthAccum, execADC)
	op(0x62, symPER, "PER", ModeRelative16, 6, classNone, widthNone, execPER)
	op(0x63, symADC, "ADC", ModeStackRel, 4, classRead, widthAccum, execADC)
	op(0x64, symSTZ, "STZ", ModeDirect, 3, classWrite, widthAccum, execSTZ)
	op(0x65, symADC, "ADC", ModeDirect, 3, classRead, widthAccum, execADC)
	op(0x66, symROR, "ROR", ModeDirect, 5, classRMW, widthAccum, execROR)
	op(0x67, symADC, "ADC", ModeDirectIndLong, 6, classRead, widthAccum, execADC)
	op(0x68, symPLA, "PLA", ModeStack, 4, classNone, widthAccum, execPLA)
	op(0x69, symADC, "ADC", ModeImmAccum, 2, classRead, widthAccum, execADC)
	op(0x6A, symROR, "ROR", ModeAccumulator, 2, classNone, widthAccum, execROR)
	op(0x6B, symRTL, "RTL", ModeStack, 6, classNone, widthNone, execRTL)
	op(0x6C, symJMP, "JMP", ModeAbsoluteInd, 5, classNone, widthNone, execJMP)
	op(0x6D, symADC, "ADC", ModeAbsolute, 4, classRead, widthAccum, execADC)
	op(0x6E, symROR, "ROR", ModeAbsolute, 6, classRMW, widthAccum, execROR)
	op(0x6F, symADC, "ADC", ModeAbsoluteLong, 5, classRead, widthAccum, execADC)

	op(0x70, symBVS, "BVS", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0x71, symADC, "ADC", ModeDirectIndY, 6, classRead, widthAccum, execADC)
	op(0x72, symADC, "ADC", ModeDirectInd, 5, classRead, widthAccum, execADC)
	op(0x73, symADC, "ADC", ModeStackRelIndY, 7, classRead, widthAccum, execADC)
	op(0x74, symSTZ, "STZ", ModeDirectX, 4, classWrite, widthAccum, execSTZ)
	op(0x75, symADC, "ADC", ModeDirectX, 4, classRead, widthAccum, execADC)
	op(0x76, symROR, "ROR", ModeDirectX, 6, classRMW, widthAccum, execROR)
	op(0x77, symADC, "ADC", ModeDirectIndLongY, 6, classRead, widthAccum, execADC)
	op(0x78, symSEI, "SEI", ModeImplied, 2, classNone, widthNone, execSEI)
	op(0x79, symADC, "ADC", ModeAbsoluteY, 4, classRead, widthAccum, execADC)
	op(0x7A, symPLY, "PLY", ModeStack, 4, classNone, widthIndex, execPLY)
	op(0x7B, symTDC, "TDC", ModeImplied, 2, classNone, widthNone, execTDC)
	op(0x7C, symJMP, "JMP", ModeAbsoluteIndX, 6, classNone, widthNone, execJMP)
	op(0x7D, symADC, "ADC", ModeAbsoluteX, 4, classRead, widthAccum, execADC)
	op(0x7E, symROR, "ROR", ModeAbsoluteX, 7, classRMW, widthAccum, execROR)
	op(0x7F, symADC, "ADC", ModeAbsoluteLongX, 5, classRead, widthAccum, execADC)

	op(0x80, symBRA, "BRA", ModeRelative8, 3, classNone, widthNone, execBranchAlways)
	op(0x81, symSTA, "STA", ModeDirectIndX, 6, classWrite, widthAccum, execSTA)
	op(0x82, symBRL, "BRL", ModeRelative16, 4, classNone, widthNone, execBRL)
	op(0x83, symSTA, "STA", ModeStackRel, 4, classWrite, widthAccum, execSTA)
	op(0x84, symSTY, "STY", ModeDirect, 3, classWrite, widthIndex, execSTY)
	op(0x85, symSTA, "STA", ModeDirect, 3, classWrite, widthAccum, execSTA)
	op(0x86, symSTX, "STX", ModeDirect, 3, classWrite, widthIndex, execSTX)
	op(0x87, symSTA, "STA", ModeDirectIndLong, 6, classWrite, widthAccum, execSTA)
	op(0x88, symDEY, "DEY", ModeImplied, 2, classNone, widthIndex, execDEY)
	op(0x89, symBIT, "BIT", ModeImmAccum, 2, classNone, widthAccum, execBITImm)
	op(0x8A, symTXA, "TXA", ModeImplied, 2, classNone, widthNone, execTXA)
	op(0x8B, symPHB, "PHB", ModeStack, 3, classNone, widthNone, execPHB)
	op(0x8C, symSTY, "STY", ModeAbsolute, 4, classWrite, widthIndex, execSTY)
	op(0x8D, symSTA, "STA", ModeAbsolute, 4, classWrite, widthAccum, execSTA)
	op(0x8E, symSTX, "STX", ModeAbsolute, 4, classWrite, widthIndex, execSTX)
	op(0x8F, symSTA, "STA", ModeAbsoluteLong, 5, classWrite, widthAccum, execSTA)

	op(0x90, symBCC, "BCC", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0x91, symSTA, "STA", ModeDirectIndY, 6, classWrite, widthAccum, execSTA)
	op(0x92, symSTA, "STA", ModeDirectInd, 5, classWrite, widthAccum, execSTA)
	op(0x93, symSTA, "STA", ModeStackRelIndY, 7, classWrite, widthAccum, execSTA)
	op(0x94, symSTY, "STY", ModeDirectX, 4, classWrite, widthIndex, execSTY)
	op(0x95, symSTA, "STA", ModeDirectX, 4, classWrite, widthAccum, execSTA)
	op(0x96, symSTX, "STX", ModeDirectY, 4, classWrite, widthIndex, execSTX)
	op(0x97, symSTA, "STA", ModeDirectIndLongY, 6, classWrite, widthAccum, execSTA)
	op(0x98, symTYA, "TYA", ModeImplied, 2, classNone, widthNone, execTYA)
	op(0x99, symSTA, "STA", ModeAbsoluteY, 5, classWrite, widthAccum, execSTA)
	op(0x9A, symTXS, "TXS", ModeImplied, 2, classNone, widthNone, execTXS)
	op(0x9B, symTXY, "TXY", ModeImplied, 2, classNone, widthIndex, execTXY)
	op(0x9C, symSTZ, "STZ", ModeAbsolute, 4, classWrite, widthAccum, execSTZ)
	op(0x9D, symSTA, "STA", ModeAbsoluteX, 5, classWrite, widthAccum, execSTA)
	op(0x9E, symSTZ, "STZ", ModeAbsoluteX, 5, classWrite, widthAccum, execSTZ)
	op(0x9F, symSTA, "STA", ModeAbsoluteLongX, 5, classWrite, widthAccum, execSTA)

	op(0xA0, symLDY, "LDY", ModeImmIndex, 2, classNone, widthIndex, execLDY)
	op(0xA1, symLDA, "LDA", ModeDirectIndX, 6, classRead, widthAccum, execLDA)
	op(0xA2, symLDX, "LDX", ModeImmIndex, 2, classNone, widthIndex, execLDX)
	op(0xA3, symLDA, "LDA", ModeStackRel, 4, classRead, widthAccum, execLDA)
	op(0xA4, symLDY, "LDY", ModeDirect, 3, classRead, widthIndex, execLDY)
	op(0xA5, symLDA, "LDA", ModeDirect, 3, classRead, widthAccum, execLDA)
	op(0xA6, symLDX, "LDX", ModeDirect, 3, classRead, widthIndex, execLDX)
	op(0xA7, symLDA, "LDA", ModeDirectIndLong, 6, classRead, widthAccum, execLDA)
	op(0xA8, symTAY, "TAY", ModeImplied, 2, classNone, widthNone, execTAY)
	op(0xA9, symLDA, "LDA", ModeImmAccum, 2, classRead, widthAccum, execLDA)
	op(0xAA, symTAX, "TAX", ModeImplied, 2, classNone, widthNone, execTAX)
	op(0xAB, symPLB, "PLB", ModeStack, 4, classNone, widthNone, execPLB)
	op(0xAC, symLDY, "LDY", ModeAbsolute, 4, classRead, widthIndex, execLDY)
	op(0xAD, symLDA, "LDA", ModeAbsolute, 4, classRead, widthAccum, execLDA)
	op(0xAE, symLDX, "LDX", ModeAbsolute, 4, classRead, widthIndex, execLDX)
	op(0xAF, symLDA, "LDA", ModeAbsoluteLong, 5, classRead, widthAccum, execLDA)

	op(0xB0, symBCS, "BCS", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0xB1, symLDA, "LDA", ModeDirectIndY, 6, classRead, widthAccum, execLDA)
	op(0xB2, symLDA, "LDA", ModeDirectInd, 5, classRead, widthAccum, execLDA)
	op(0xB3, symLDA, "LDA", ModeStackRelIndY, 7, classRead, widthAccum, execLDA)
	op(0xB4, symLDY, "LDY", ModeDirectX, 4, classRead, widthIndex, execLDY)
	op(0xB5, symLDA, "LDA", ModeDirectX, 4, classRead, widthAccum, execLDA)
	op(0xB6, symLDX, "LDX", ModeDirectY, 4, classRead, widthIndex, execLDX)
	op(0xB7, symLDA, "LDA", ModeDirectIndLongY, 6, classRead, widthAccum, execLDA)
	op(0xB8, symCLV, "CLV", ModeImplied, 2, classNone, widthNone, execCLV)
	op(0xB9, symLDA, "LDA", ModeAbsoluteY, 4, classRead, widthAccum, execLDA)
	op(0xBA, symTSX, "TSX", ModeImplied, 2, classNone, widthNone, execTSX)
	op(0xBB, symTYX, "TYX", ModeImplied, 2, classNone, widthIndex, execTYX)
	op(0xBC, symLDY, "LDY", ModeAbsoluteX, 4, classRead, widthIndex, execLDY)
	op(0xBD, symLDA, "LDA", ModeAbsoluteX, 4, classRead, widthAccum, execLDA)
	op(0xBE, symLDX, "LDX", ModeAbsoluteY, 4, classRead, widthIndex, execLDX)
	op(0xBF, symLDA, "LDA", ModeAbsoluteLongX, 5, classRead, widthAccum, execLDA)

	op(0xC0, symCPY, "CPY", ModeImmIndex, 2, classNone, widthIndex, execCPY)
	op(0xC1, symCMP, "CMP", ModeDirectIndX, 6, classRead, widthAccum, execCMP)
	op(0xC2, symREP, "REP", ModeImm8, 3, classNone, widthNone, execREP)
	op(0xC3, symCMP, "CMP", ModeStackRel, 4, classRead, widthAccum, execCMP)
	op(0xC4, symCPY, "CPY", ModeDirect, 3, classRead, widthIndex, execCPY)
	op(0xC5, symCMP, "CMP", ModeDirect, 3, classRead, widthAccum, execCMP)
	op(0xC6, symDEC, "DEC", ModeDirect, 5, classRMW, widthAccum, execDEC)
	op(0xC7, symCMP, "CMP", ModeDirectIndLong, 6, classRead, widthAccum, execCMP)
	op(0xC8, symINY, "INY", ModeImplied, 2, classNone, widthIndex, execINY)
	op(0xC9, symCMP, "CMP", ModeImmAccum, 2, classRead, widthAccum, execCMP)
	op(0xCA, symDEX, "DEX", ModeImplied, 2, classNone, widthIndex, execDEX)
	op(0xCB, symWAI, "WAI", ModeImplied, 3, classNone, widthNone, execWAI)
	op(0xCC, symCPY, "CPY", ModeAbsolute, 4, classRead, widthIndex, execCPY)
	op(0xCD, symCMP, "CMP", ModeAbsolute, 4, classRead, widthAccum, execCMP)
	op(0xCE, symDEC, "DEC", ModeAbsolute, 6, classRMW, widthAccum, execDEC)
	op(0xCF, symCMP, "CMP", ModeAbsoluteLong, 5, classRead, widthAccum, execCMP)

	op(0xD0, symBNE, "BNE", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0xD1, symCMP, "CMP", ModeDirectIndY, 6, classRead, widthAccum, execCMP)
	op(0xD2, symCMP, "CMP", ModeDirectInd, 5, classRead, widthAccum, execCMP)
	op(0xD3, symCMP, "CMP", ModeStackRelIndY, 7, classRead, widthAccum, execCMP)
	op(0xD4, symPEI, "PEI", ModePEI, 6, classNone, widthNone, execPEI)
	op(0xD5, symCMP, "CMP", ModeDirectX, 4, classRead, widthAccum, execCMP)
	op(0xD6, symDEC, "DEC", ModeDirectX, 6, classRMW, widthAccum, execDEC)
	op(0xD7, symCMP, "CMP", ModeDirectIndLongY, 6, classRead, widthAccum, execCMP)
	op(0xD8, symCLD, "CLD", ModeImplied, 2, classNone, widthNone, execCLD)
	op(0xD9, symCMP, "CMP", ModeAbsoluteY, 4, classRead, widthAccum, execCMP)
	op(0xDA, symPHX, "PHX", ModeStack, 3, classNone, widthIndex, execPHX)
	op(0xDB, symSTP, "STP", ModeImplied, 3, classNone, widthNone, execSTP)
	op(0xDC, symJML, "JML", ModeAbsoluteIndLong, 6, classNone, widthNone, execJML)
	op(0xDD, symCMP, "CMP", ModeAbsoluteX, 4, classRead, widthAccum, execCMP)
	op(0xDE, symDEC, "DEC", ModeAbsoluteX, 7, classRMW, widthAccum, execDEC)
	op(0xDF, symCMP, "CMP", ModeAbsoluteLongX, 5, classRead, widthAccum, execCMP)

	op(0xE0, symCPX, "CPX", ModeImmIndex, 2, classNone, widthIndex, execCPX)
	op(0xE1, symSBC, "SBC", ModeDirectIndX, 6, classRead, widthAccum, execSBC)
	op(0xE2, symSEP, "SEP", ModeImm8, 3, classNone, widthNone, execSEP)
	op(0xE3, symSBC, "SBC", ModeStackRel, 4, classRead, widthAccum, execSBC)
	op(0xE4, symCPX, "CPX", ModeDirect, 3, classRead, widthIndex, execCPX)
	op(0xE5, symSBC, "SBC", ModeDirect, 3, classRead, widthAccum, execSBC)
	op(0xE6, symINC, "INC", ModeDirect, 5, classRMW, widthAccum, execINC)
	op(0xE7, symSBC, "SBC", ModeDirectIndLong, 6, classRead, widthAccum, execSBC)
	op(0xE8, symINX, "INX", ModeImplied, 2, classNone, widthIndex, execINX)
	op(0xE9, symSBC, "SBC", ModeImmAccum, 2, classRead, widthAccum, execSBC)
	op(0xEA, symNOP, "NOP", ModeImplied, 2, classNone, widthNone, execNOP)
	op(0xEB, symXBA, "XBA", ModeImplied, 3, classNone, widthNone, execXBA)
	op(0xEC, symCPX, "CPX", ModeAbsolute, 4, classRead, widthIndex, execCPX)
	op(0xED, symSBC, "SBC", ModeAbsolute, 4, classRead, widthAccum, execSBC)
	op(0xEE, symINC, "INC", ModeAbsolute, 6, classRMW, widthAccum, execINC)
	op(0xEF, symSBC, "SBC", ModeAbsoluteLong, 5, classRead, widthAccum, execSBC)

	op(0xF0, symBEQ, "BEQ", ModeRelative8, 2, classNone, widthNone, execBranch)
	op(0xF1, symSBC, "SBC", ModeDirectIndY, 6, classRead, widthAccum, execSBC)
	op(0xF2, symSBC, "SBC", ModeDirectInd, 5, classRead, widthAccum, execSBC)
	op(0xF3, symSBC, "SBC", ModeStackRelIndY, 7, classRead, widthAccum, execSBC)
	op(0xF4, symPEA, "PEA", ModePEA, 5, classNone, widthNone, execPEA)
	op(0xF5, symSBC, "SBC", ModeDirectX, 4, classRead, widthAccum, execSBC)
	op(0xF6, symINC, "INC", ModeDirectX, 6, classRMW, widthAccum, execINC)
	op(0xF7, symSBC, "SBC", ModeDirectIndLongY, 6, classRead, widthAccum, execSBC)
	op(0xF8, symSED, "SED", ModeImplied, 2, classNone, widthNone, execSED)
	op(0xF9, symSBC, "SBC", ModeAbsoluteY, 4, classRead, widthAccum, execSBC)
	op(0xFA, symPLX, "PLX", ModeStack, 4, classNone, widthIndex, execPLX)
	op(0xFB, symXCE, "XCE", ModeImplied, 2, classNone, widthNone, execXCE)
	op(0xFC, symJSR, "JSR", ModeAbsoluteIndX, 8, classNone, widthNone, execJSR)
	op(0xFD, symSBC, "SBC", ModeAbsoluteX, 4, classRead, widthAccum, execSBC)
	op(0xFE, symINC, "INC", ModeAbsoluteX, 7, classRMW, widthAccum, execINC)
	op(0xFF, symSBC, "SBC", ModeAbsoluteLongX, 5, classRead, widthAccum, execSBC)
}
