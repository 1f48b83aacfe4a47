package cpu

// instruction is one row of the 256-entry opcode table: the addressing mode
// that resolves its operand, how that mode charges page-cross cycles, the
// handler to run, and whether the opcode jams the processor instead of
// running at all.
type instruction struct {
	mode addressingMode
	kind instructionKind
	exec func(*CPU, uint16)
	jam  bool
}

// opcodeTable maps every byte value to its instruction. Mnemonic-to-opcode
// groupings (including the illegal opcodes' duplicate encodings) follow the
// standard NMOS 6502 decode matrix; addressing modes and cycle kinds are
// assigned per the 6502 reference decode table.
var opcodeTable = [256]instruction{
	0x00: {implied, kindOther, (*CPU).brk, false},
	0x01: {indexedIndirect, kindRead, (*CPU).ora, false},
	0x02: {implied, kindOther, nil, true},
	0x03: {indexedIndirect, kindReadModifyWrite, (*CPU).slo, false},
	0x04: {zeroPage, kindRead, (*CPU).nopRead, false},
	0x05: {zeroPage, kindRead, (*CPU).ora, false},
	0x06: {zeroPage, kindReadModifyWrite, (*CPU).aslMem, false},
	0x07: {zeroPage, kindReadModifyWrite, (*CPU).slo, false},
	0x08: {implied, kindOther, (*CPU).php, false},
	0x09: {immediate, kindRead, (*CPU).ora, false},
	0x0A: {accumulator, kindOther, (*CPU).aslAcc, false},
	0x0B: {immediate, kindRead, (*CPU).anc, false},
	0x0C: {absolute, kindRead, (*CPU).nopRead, false},
	0x0D: {absolute, kindRead, (*CPU).ora, false},
	0x0E: {absolute, kindReadModifyWrite, (*CPU).aslMem, false},
	0x0F: {absolute, kindReadModifyWrite, (*CPU).slo, false},

	0x10: {relative, kindOther, (*CPU).bpl, false},
	0x11: {indirectIndexed, kindRead, (*CPU).ora, false},
	0x12: {implied, kindOther, nil, true},
	0x13: {indirectIndexed, kindReadModifyWrite, (*CPU).slo, false},
	0x14: {zeroPageX, kindRead, (*CPU).nopRead, false},
	0x15: {zeroPageX, kindRead, (*CPU).ora, false},
	0x16: {zeroPageX, kindReadModifyWrite, (*CPU).aslMem, false},
	0x17: {zeroPageX, kindReadModifyWrite, (*CPU).slo, false},
	0x18: {implied, kindOther, (*CPU).clc, false},
	0x19: {absoluteY, kindRead, (*CPU).ora, false},
	0x1A: {implied, kindOther, (*CPU).nopImplied, false},
	0x1B: {absoluteY, kindReadModifyWrite, (*CPU).slo, false},
	0x1C: {absoluteX, kindRead, (*CPU).nopRead, false},
	0x1D: {absoluteX, kindRead, (*CPU).ora, false},
	0x1E: {absoluteX, kindReadModifyWrite, (*CPU).aslMem, false},
	0x1F: {absoluteX, kindReadModifyWrite, (*CPU).slo, false},

	0x20: {absolute, kindOther, (*CPU).jsr, false},
	0x21: {indexedIndirect, kindRead, (*CPU).and, false},
	0x22: {implied, kindOther, nil, true},
	0x23: {indexedIndirect, kindReadModifyWrite, (*CPU).rla, false},
	0x24: {zeroPage, kindRead, (*CPU).bit, false},
	0x25: {zeroPage, kindRead, (*CPU).and, false},
	0x26: {zeroPage, kindReadModifyWrite, (*CPU).rolMem, false},
	0x27: {zeroPage, kindReadModifyWrite, (*CPU).rla, false},
	0x28: {implied, kindOther, (*CPU).plp, false},
	0x29: {immediate, kindRead, (*CPU).and, false},
	0x2A: {accumulator, kindOther, (*CPU).rolAcc, false},
	0x2B: {immediate, kindRead, (*CPU).anc, false},
	0x2C: {absolute, kindRead, (*CPU).bit, false},
	0x2D: {absolute, kindRead, (*CPU).and, false},
	0x2E: {absolute, kindReadModifyWrite, (*CPU).rolMem, false},
	0x2F: {absolute, kindReadModifyWrite, (*CPU).rla, false},

	0x30: {relative, kindOther, (*CPU).bmi, false},
	0x31: {indirectIndexed, kindRead, (*CPU).and, false},
	0x32: {implied, kindOther, nil, true},
	0x33: {indirectIndexed, kindReadModifyWrite, (*CPU).rla, false},
	0x34: {zeroPageX, kindRead, (*CPU).nopRead, false},
	0x35: {zeroPageX, kindRead, (*CPU).and, false},
	0x36: {zeroPageX, kindReadModifyWrite, (*CPU).rolMem, false},
	0x37: {zeroPageX, kindReadModifyWrite, (*CPU).rla, false},
	0x38: {implied, kindOther, (*CPU).sec, false},
	0x39: {absoluteY, kindRead, (*CPU).and, false},
	0x3A: {implied, kindOther, (*CPU).nopImplied, false},
	0x3B: {absoluteY, kindReadModifyWrite, (*CPU).rla, false},
	0x3C: {absoluteX, kindRead, (*CPU).nopRead, false},
	0x3D: {absoluteX, kindRead, (*CPU).and, false},
	0x3E: {absoluteX, kindReadModifyWrite, (*CPU).rolMem, false},
	0x3F: {absoluteX, kindReadModifyWrite, (*CPU).rla, false},

	0x40: {implied, kindOther, (*CPU).rti, false},
	0x41: {indexedIndirect, kindRead, (*CPU).eor, false},
	0x42: {implied, kindOther, nil, true},
	0x43: {indexedIndirect, kindReadModifyWrite, (*CPU).sre, false},
	0x44: {zeroPage, kindRead, (*CPU).nopRead, false},
	0x45: {zeroPage, kindRead, (*CPU).eor, false},
	0x46: {zeroPage, kindReadModifyWrite, (*CPU).lsrMem, false},
	0x47: {zeroPage, kindReadModifyWrite, (*CPU).sre, false},
	0x48: {implied, kindOther, (*CPU).pha, false},
	0x49: {immediate, kindRead, (*CPU).eor, false},
	0x4A: {accumulator, kindOther, (*CPU).lsrAcc, false},
	0x4B: {immediate, kindRead, (*CPU).alr, false},
	0x4C: {absolute, kindOther, (*CPU).jmp, false},
	0x4D: {absolute, kindRead, (*CPU).eor, false},
	0x4E: {absolute, kindReadModifyWrite, (*CPU).lsrMem, false},
	0x4F: {absolute, kindReadModifyWrite, (*CPU).sre, false},

	0x50: {relative, kindOther, (*CPU).bvc, false},
	0x51: {indirectIndexed, kindRead, (*CPU).eor, false},
	0x52: {implied, kindOther, nil, true},
	0x53: {indirectIndexed, kindReadModifyWrite, (*CPU).sre, false},
	0x54: {zeroPageX, kindRead, (*CPU).nopRead, false},
	0x55: {zeroPageX, kindRead, (*CPU).eor, false},
	0x56: {zeroPageX, kindReadModifyWrite, (*CPU).lsrMem, false},
	0x57: {zeroPageX, kindReadModifyWrite, (*CPU).sre, false},
	0x58: {implied, kindOther, (*CPU).cli, false},
	0x59: {absoluteY, kindRead, (*CPU).eor, false},
	0x5A: {implied, kindOther, (*CPU).nopImplied, false},
	0x5B: {absoluteY, kindReadModifyWrite, (*CPU).sre, false},
	0x5C: {absoluteX, kindRead, (*CPU).nopRead, false},
	0x5D: {absoluteX, kindRead, (*CPU).eor, false},
	0x5E: {absoluteX, kindReadModifyWrite, (*CPU).lsrMem, false},
	0x5F: {absoluteX, kindReadModifyWrite, (*CPU).sre, false},

	0x60: {implied, kindOther, (*CPU).rts, false},
	0x61: {indexedIndirect, kindRead, (*CPU).adc, false},
	0x62: {implied, kindOther, nil, true},
	0x63: {indexedIndirect, kindReadModifyWrite, (*CPU).rra, false},
	0x64: {zeroPage, kindRead, (*CPU).nopRead, false},
	0x65: {zeroPage, kindRead, (*CPU).adc, false},
	0x66: {zeroPage, kindReadModifyWrite, (*CPU).rorMem, false},
	0x67: {zeroPage, kindReadModifyWrite, (*CPU).rra, false},
	0x68: {implied, kindOther, (*CPU).pla, false},
	0x69: {immediate, kindRead, (*CPU).adc, false},
	0x6A: {accumulator, kindOther, (*CPU).rorAcc, false},
	0x6B: {immediate, kindRead, (*CPU).arr, false},
	0x6C: {indirect, kindOther, (*CPU).jmp, false},
	0x6D: {absolute, kindRead, (*CPU).adc, false},
	0x6E: {absolute, kindReadModifyWrite, (*CPU).rorMem, false},
	0x6F: {absolute, kindReadModifyWrite, (*CPU).rra, false},

	0x70: {relative, kindOther, (*CPU).bvs, false},
	0x71: {indirectIndexed, kindRead, (*CPU).adc, false},
	0x72: {implied, kindOther, nil, true},
	0x73: {indirectIndexed, kindReadModifyWrite, (*CPU).rra, false},
	0x74: {zeroPageX, kindRead, (*CPU).nopRead, false},
	0x75: {zeroPageX, kindRead, (*CPU).adc, false},
	0x76: {zeroPageX, kindReadModifyWrite, (*CPU).rorMem, false},
	0x77: {zeroPageX, kindReadModifyWrite, (*CPU).rra, false},
	0x78: {implied, kindOther, (*CPU).sei, false},
	0x79: {absoluteY, kindRead, (*CPU).adc, false},
	0x7A: {implied, kindOther, (*CPU).nopImplied, false},
	0x7B: {absoluteY, kindReadModifyWrite, (*CPU).rra, false},
	0x7C: {absoluteX, kindRead, (*CPU).nopRead, false},
	0x7D: {absoluteX, kindRead, (*CPU).adc, false},
	0x7E: {absoluteX, kindReadModifyWrite, (*CPU).rorMem, false},
	0x7F: {absoluteX, kindReadModifyWrite, (*CPU).rra, false},

	0x80: {immediate, kindRead, (*CPU).nopRead, false},
	0x81: {indexedIndirect, kindWrite, (*CPU).sta, false},
	0x82: {immediate, kindRead, (*CPU).nopRead, false},
	0x83: {indexedIndirect, kindWrite, (*CPU).sax, false},
	0x84: {zeroPage, kindWrite, (*CPU).sty, false},
	0x85: {zeroPage, kindWrite, (*CPU).sta, false},
	0x86: {zeroPage, kindWrite, (*CPU).stx, false},
	0x87: {zeroPage, kindWrite, (*CPU).sax, false},
	0x88: {implied, kindOther, (*CPU).dey, false},
	0x89: {immediate, kindRead, (*CPU).nopRead, false},
	0x8A: {implied, kindOther, (*CPU).txa, false},
	0x8B: {immediate, kindRead, (*CPU).xaa, false},
	0x8C: {absolute, kindWrite, (*CPU).sty, false},
	0x8D: {absolute, kindWrite, (*CPU).sta, false},
	0x8E: {absolute, kindWrite, (*CPU).stx, false},
	0x8F: {absolute, kindWrite, (*CPU).sax, false},

	0x90: {relative, kindOther, (*CPU).bcc, false},
	0x91: {indirectIndexed, kindWrite, (*CPU).sta, false},
	0x92: {implied, kindOther, nil, true},
	0x93: {indirectIndexed, kindWrite, (*CPU).ahx, false},
	0x94: {zeroPageX, kindWrite, (*CPU).sty, false},
	0x95: {zeroPageX, kindWrite, (*CPU).sta, false},
	0x96: {zeroPageY, kindWrite, (*CPU).stx, false},
	0x97: {zeroPageY, kindWrite, (*CPU).sax, false},
	0x98: {implied, kindOther, (*CPU).tya, false},
	0x99: {absoluteY, kindWrite, (*CPU).sta, false},
	0x9A: {implied, kindOther, (*CPU).txs, false},
	0x9B: {absoluteY, kindWrite, (*CPU).tas, false},
	0x9C: {absoluteX, kindWrite, (*CPU).shy, false},
	0x9D: {absoluteX, kindWrite, (*CPU).sta, false},
	0x9E: {absoluteY, kindWrite, (*CPU).shx, false},
	0x9F: {absoluteY, kindWrite, (*CPU).ahx, false},

	0xA0: {immediate, kindRead, (*CPU).ldy, false},
	0xA1: {indexedIndirect, kindRead, (*CPU).lda, false},
	0xA2: {immediate, kindRead, (*CPU).ldx, false},
	0xA3: {indexedIndirect, kindRead, (*CPU).lax, false},
	0xA4: {zeroPage, kindRead, (*CPU).ldy, false},
	0xA5: {zeroPage, kindRead, (*CPU).lda, false},
	0xA6: {zeroPage, kindRead, (*CPU).ldx, false},
	0xA7: {zeroPage, kindRead, (*CPU).lax, false},
	0xA8: {implied, kindOther, (*CPU).tay, false},
	0xA9: {immediate, kindRead, (*CPU).lda, false},
	0xAA: {implied, kindOther, (*CPU).tax, false},
	0xAB: {immediate, kindRead, (*CPU).lax, false},
	0xAC: {absolute, kindRead, (*CPU).ldy, false},
	0xAD: {absolute, kindRead, (*CPU).lda, false},
	0xAE: {absolute, kindRead, (*CPU).ldx, false},
	0xAF: {absolute, kindRead, (*CPU).lax, false},

	0xB0: {relative, kindOther, (*CPU).bcs, false},
	0xB1: {indirectIndexed, kindRead, (*CPU).lda, false},
	0xB2: {implied, kindOther, nil, true},
	0xB3: {indirectIndexed, kindRead, (*CPU).lax, false},
	0xB4: {zeroPageX, kindRead, (*CPU).ldy, false},
	0xB5: {zeroPageX, kindRead, (*CPU).lda, false},
	0xB6: {zeroPageY, kindRead, (*CPU).ldx, false},
	0xB7: {zeroPageY, kindRead, (*CPU).lax, false},
	0xB8: {implied, kindOther, (*CPU).clv, false},
	0xB9: {absoluteY, kindRead, (*CPU).lda, false},
	0xBA: {implied, kindOther, (*CPU).tsx, false},
	0xBB: {absoluteY, kindRead, (*CPU).las, false},
	0xBC: {absoluteX, kindRead, (*CPU).ldy, false},
	0xBD: {absoluteX, kindRead, (*CPU).lda, false},
	0xBE: {absoluteY, kindRead, (*CPU).ldx, false},
	0xBF: {absoluteY, kindRead, (*CPU).lax, false},

	0xC0: {immediate, kindRead, (*CPU).cpy, false},
	0xC1: {indexedIndirect, kindRead, (*CPU).cmp, false},
	0xC2: {immediate, kindRead, (*CPU).nopRead, false},
	0xC3: {indexedIndirect, kindReadModifyWrite, (*CPU).dcp, false},
	0xC4: {zeroPage, kindRead, (*CPU).cpy, false},
	0xC5: {zeroPage, kindRead, (*CPU).cmp, false},
	0xC6: {zeroPage, kindReadModifyWrite, (*CPU).dec, false},
	0xC7: {zeroPage, kindReadModifyWrite, (*CPU).dcp, false},
	0xC8: {implied, kindOther, (*CPU).iny, false},
	0xC9: {immediate, kindRead, (*CPU).cmp, false},
	0xCA: {implied, kindOther, (*CPU).dex, false},
	0xCB: {immediate, kindRead, (*CPU).axs, false},
	0xCC: {absolute, kindRead, (*CPU).cpy, false},
	0xCD: {absolute, kindRead, (*CPU).cmp, false},
	0xCE: {absolute, kindReadModifyWrite, (*CPU).dec, false},
	0xCF: {absolute, kindReadModifyWrite, (*CPU).dcp, false},

	0xD0: {relative, kindOther, (*CPU).bne, false},
	0xD1: {indirectIndexed, kindRead, (*CPU).cmp, false},
	0xD2: {implied, kindOther, nil, true},
	0xD3: {indirectIndexed, kindReadModifyWrite, (*CPU).dcp, false},
	0xD4: {zeroPageX, kindRead, (*CPU).nopRead, false},
	0xD5: {zeroPageX, kindRead, (*CPU).cmp, false},
	0xD6: {zeroPageX, kindReadModifyWrite, (*CPU).dec, false},
	0xD7: {zeroPageX, kindReadModifyWrite, (*CPU).dcp, false},
	0xD8: {implied, kindOther, (*CPU).cld, false},
	0xD9: {absoluteY, kindRead, (*CPU).cmp, false},
	0xDA: {implied, kindOther, (*CPU).nopImplied, false},
	0xDB: {absoluteY, kindReadModifyWrite, (*CPU).dcp, false},
	0xDC: {absoluteX, kindRead, (*CPU).nopRead, false},
	0xDD: {absoluteX, kindRead, (*CPU).cmp, false},
	0xDE: {absoluteX, kindReadModifyWrite, (*CPU).dec, false},
	0xDF: {absoluteX, kindReadModifyWrite, (*CPU).dcp, false},

	0xE0: {immediate, kindRead, (*CPU).cpx, false},
	0xE1: {indexedIndirect, kindRead, (*CPU).sbc, false},
	0xE2: {immediate, kindRead, (*CPU).nopRead, false},
	0xE3: {indexedIndirect, kindReadModifyWrite, (*CPU).isc, false},
	0xE4: {zeroPage, kindRead, (*CPU).cpx, false},
	0xE5: {zeroPage, kindRead, (*CPU).sbc, false},
	0xE6: {zeroPage, kindReadModifyWrite, (*CPU).inc, false},
	0xE7: {zeroPage, kindReadModifyWrite, (*CPU).isc, false},
	0xE8: {implied, kindOther, (*CPU).inx, false},
	0xE9: {immediate, kindRead, (*CPU).sbc, false},
	0xEA: {implied, kindOther, (*CPU).nopImplied, false},
	0xEB: {immediate, kindRead, (*CPU).sbc, false},
	0xEC: {absolute, kindRead, (*CPU).cpx, false},
	0xED: {absolute, kindRead, (*CPU).sbc, false},
	0xEE: {absolute, kindReadModifyWrite, (*CPU).inc, false},
	0xEF: {absolute, kindReadModifyWrite, (*CPU).isc, false},

	0xF0: {relative, kindOther, (*CPU).beq, false},
	0xF1: {indirectIndexed, kindRead, (*CPU).sbc, false},
	0xF2: {implied, kindOther, nil, true},
	0xF3: {indirectIndexed, kindReadModifyWrite, (*CPU).isc, false},
	0xF4: {zeroPageX, kindRead, (*CPU).nopRead, false},
	0xF5: {zeroPageX, kindRead, (*CPU).sbc, false},
	0xF6: {zeroPageX, kindReadModifyWrite, (*CPU).inc, false},
	0xF7: {zeroPageX, kindReadModifyWrite, (*CPU).isc, false},
	0xF8: {implied, kindOther, (*CPU).sed, false},
	0xF9: {absoluteY, kindRead, (*CPU).sbc, false},
	0xFA: {implied, kindOther, (*CPU).nopImplied, false},
	0xFB: {absoluteY, kindReadModifyWrite, (*CPU).isc, false},
	0xFC: {absoluteX, kindRead, (*CPU).nopRead, false},
	0xFD: {absoluteX, kindRead, (*CPU).sbc, false},
	0xFE: {absoluteX, kindReadModifyWrite, (*CPU).inc, false},
	0xFF: {absoluteX, kindReadModifyWrite, (*CPU).isc, false},
}
