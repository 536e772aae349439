package cpu

// decodeEntry is one row of the opcode decode table: the operation to run,
// the addressing mode that resolves its operand, the base cycle cost, and
// the mnemonic used for LastInstruction traces. length is informational
// only (fetchByte/fetchWord already advance PC as each mode consumes
// operand bytes) but is kept alongside cycles for disassemblers.
type decodeEntry struct {
	name   string
	op     opFunc
	mode   addrMode
	cycles uint8
	length uint8
}

// decodeTable maps all 256 opcode values to their decode entry. Only the
// ~151 documented NMOS opcodes are populated; every other index is left at
// its zero value (op == nil), which Step treats as IllegalOpcodeError.
// Unofficial/undocumented opcodes (SLO, RLA, SRE, SAX, LAX, DCP, ISC, the
// NOP/SBC duplicates, the various JAM/KIL halts, etc.) are deliberately not
// implemented.
var decodeTable = [256]decodeEntry{
	0x00: {"BRK", opBRK, addrImplied, 7, 1},
	0x01: {"ORA", opORA, addrIndirectX, 6, 2},
	0x05: {"ORA", opORA, addrZeroPage, 3, 2},
	0x06: {"ASL", opASL, addrZeroPage, 5, 2},
	0x08: {"PHP", opPHP, addrImplied, 3, 1},
	0x09: {"ORA", opORA, addrImmediate, 2, 2},
	0x0A: {"ASL", opASL, addrAccumulator, 2, 1},
	0x0D: {"ORA", opORA, addrAbsolute, 4, 3},
	0x0E: {"ASL", opASL, addrAbsolute, 6, 3},

	0x10: {"BPL", opBPL, addrRelative, 2, 2},
	0x11: {"ORA", opORA, addrIndirectY, 5, 2},
	0x15: {"ORA", opORA, addrZeroPageX, 4, 2},
	0x16: {"ASL", opASL, addrZeroPageX, 6, 2},
	0x18: {"CLC", opCLC, addrImplied, 2, 1},
	0x19: {"ORA", opORA, addrAbsoluteY, 4, 3},
	0x1D: {"ORA", opORA, addrAbsoluteX, 4, 3},
	0x1E: {"ASL", opASL, addrAbsoluteX, 7, 3},

	0x20: {"JSR", opJSR, addrAbsolute, 6, 3},
	0x21: {"AND", opAND, addrIndirectX, 6, 2},
	0x24: {"BIT", opBIT, addrZeroPage, 3, 2},
	0x25: {"AND", opAND, addrZeroPage, 3, 2},
	0x26: {"ROL", opROL, addrZeroPage, 5, 2},
	0x28: {"PLP", opPLP, addrImplied, 4, 1},
	0x29: {"AND", opAND, addrImmediate, 2, 2},
	0x2A: {"ROL", opROL, addrAccumulator, 2, 1},
	0x2C: {"BIT", opBIT, addrAbsolute, 4, 3},
	0x2D: {"AND", opAND, addrAbsolute, 4, 3},
	0x2E: {"ROL", opROL, addrAbsolute, 6, 3},

	0x30: {"BMI", opBMI, addrRelative, 2, 2},
	0x31: {"AND", opAND, addrIndirectY, 5, 2},
	0x35: {"AND", opAND, addrZeroPageX, 4, 2},
	0x36: {"ROL", opROL, addrZeroPageX, 6, 2},
	0x38: {"SEC", opSEC, addrImplied, 2, 1},
	0x39: {"AND", opAND, addrAbsoluteY, 4, 3},
	0x3D: {"AND", opAND, addrAbsoluteX, 4, 3},
	0x3E: {"ROL", opROL, addrAbsoluteX, 7, 3},

	0x40: {"RTI", opRTI, addrImplied, 6, 1},
	0x41: {"EOR", opEOR, addrIndirectX, 6, 2},
	0x45: {"EOR", opEOR, addrZeroPage, 3, 2},
	0x46: {"LSR", opLSR, addrZeroPage, 5, 2},
	0x48: {"PHA", opPHA, addrImplied, 3, 1},
	0x49: {"EOR", opEOR, addrImmediate, 2, 2},
	0x4A: {"LSR", opLSR, addrAccumulator, 2, 1},
	0x4C: {"JMP", opJMP, addrAbsolute, 3, 3},
	0x4D: {"EOR", opEOR, addrAbsolute, 4, 3},
	0x4E: {"LSR", opLSR, addrAbsolute, 6, 3},

	0x50: {"BVC", opBVC, addrRelative, 2, 2},
	0x51: {"EOR", opEOR, addrIndirectY, 5, 2},
	0x55: {"EOR", opEOR, addrZeroPageX, 4, 2},
	0x56: {"LSR", opLSR, addrZeroPageX, 6, 2},
	0x58: {"CLI", opCLI, addrImplied, 2, 1},
	0x59: {"EOR", opEOR, addrAbsoluteY, 4, 3},
	0x5D: {"EOR", opEOR, addrAbsoluteX, 4, 3},
	0x5E: {"LSR", opLSR, addrAbsoluteX, 7, 3},

	0x60: {"RTS", opRTS, addrImplied, 6, 1},
	0x61: {"ADC", opADC, addrIndirectX, 6, 2},
	0x65: {"ADC", opADC, addrZeroPage, 3, 2},
	0x66: {"ROR", opROR, addrZeroPage, 5, 2},
	0x68: {"PLA", opPLA, addrImplied, 4, 1},
	0x69: {"ADC", opADC, addrImmediate, 2, 2},
	0x6A: {"ROR", opROR, addrAccumulator, 2, 1},
	0x6C: {"JMP", opJMP, addrIndirect, 5, 3},
	0x6D: {"ADC", opADC, addrAbsolute, 4, 3},
	0x6E: {"ROR", opROR, addrAbsolute, 6, 3},

	0x70: {"BVS", opBVS, addrRelative, 2, 2},
	0x71: {"ADC", opADC, addrIndirectY, 5, 2},
	0x75: {"ADC", opADC, addrZeroPageX, 4, 2},
	0x76: {"ROR", opROR, addrZeroPageX, 6, 2},
	0x78: {"SEI", opSEI, addrImplied, 2, 1},
	0x79: {"ADC", opADC, addrAbsoluteY, 4, 3},
	0x7D: {"ADC", opADC, addrAbsoluteX, 4, 3},
	0x7E: {"ROR", opROR, addrAbsoluteX, 7, 3},

	0x81: {"STA", opSTA, addrIndirectX, 6, 2},
	0x84: {"STY", opSTY, addrZeroPage, 3, 2},
	0x85: {"STA", opSTA, addrZeroPage, 3, 2},
	0x86: {"STX", opSTX, addrZeroPage, 3, 2},
	0x88: {"DEY", opDEY, addrImplied, 2, 1},
	0x8A: {"TXA", opTXA, addrImplied, 2, 1},
	0x8C: {"STY", opSTY, addrAbsolute, 4, 3},
	0x8D: {"STA", opSTA, addrAbsolute, 4, 3},
	0x8E: {"STX", opSTX, addrAbsolute, 4, 3},

	0x90: {"BCC", opBCC, addrRelative, 2, 2},
	0x91: {"STA", opSTA, addrIndirectY, 6, 2},
	0x94: {"STY", opSTY, addrZeroPageX, 4, 2},
	0x95: {"STA", opSTA, addrZeroPageX, 4, 2},
	0x96: {"STX", opSTX, addrZeroPageY, 4, 2},
	0x98: {"TYA", opTYA, addrImplied, 2, 1},
	0x99: {"STA", opSTA, addrAbsoluteY, 5, 3},
	0x9A: {"TXS", opTXS, addrImplied, 2, 1},
	0x9D: {"STA", opSTA, addrAbsoluteX, 5, 3},

	0xA0: {"LDY", opLDY, addrImmediate, 2, 2},
	0xA1: {"LDA", opLDA, addrIndirectX, 6, 2},
	0xA2: {"LDX", opLDX, addrImmediate, 2, 2},
	0xA4: {"LDY", opLDY, addrZeroPage, 3, 2},
	0xA5: {"LDA", opLDA, addrZeroPage, 3, 2},
	0xA6: {"LDX", opLDX, addrZeroPage, 3, 2},
	0xA8: {"TAY", opTAY, addrImplied, 2, 1},
	0xA9: {"LDA", opLDA, addrImmediate, 2, 2},
	0xAA: {"TAX", opTAX, addrImplied, 2, 1},
	0xAC: {"LDY", opLDY, addrAbsolute, 4, 3},
	0xAD: {"LDA", opLDA, addrAbsolute, 4, 3},
	0xAE: {"LDX", opLDX, addrAbsolute, 4, 3},

	0xB0: {"BCS", opBCS, addrRelative, 2, 2},
	0xB1: {"LDA", opLDA, addrIndirectY, 5, 2},
	0xB4: {"LDY", opLDY, addrZeroPageX, 4, 2},
	0xB5: {"LDA", opLDA, addrZeroPageX, 4, 2},
	0xB6: {"LDX", opLDX, addrZeroPageY, 4, 2},
	0xB8: {"CLV", opCLV, addrImplied, 2, 1},
	0xB9: {"LDA", opLDA, addrAbsoluteY, 4, 3},
	0xBA: {"TSX", opTSX, addrImplied, 2, 1},
	0xBC: {"LDY", opLDY, addrAbsoluteX, 4, 3},
	0xBD: {"LDA", opLDA, addrAbsoluteX, 4, 3},
	0xBE: {"LDX", opLDX, addrAbsoluteY, 4, 3},

	0xC0: {"CPY", opCPY, addrImmediate, 2, 2},
	0xC1: {"CMP", opCMP, addrIndirectX, 6, 2},
	0xC4: {"CPY", opCPY, addrZeroPage, 3, 2},
	0xC5: {"CMP", opCMP, addrZeroPage, 3, 2},
	0xC6: {"DEC", opDEC, addrZeroPage, 5, 2},
	0xC8: {"INY", opINY, addrImplied, 2, 1},
	0xC9: {"CMP", opCMP, addrImmediate, 2, 2},
	0xCA: {"DEX", opDEX, addrImplied, 2, 1},
	0xCC: {"CPY", opCPY, addrAbsolute, 4, 3},
	0xCD: {"CMP", opCMP, addrAbsolute, 4, 3},
	0xCE: {"DEC", opDEC, addrAbsolute, 6, 3},

	0xD0: {"BNE", opBNE, addrRelative, 2, 2},
	0xD1: {"CMP", opCMP, addrIndirectY, 5, 2},
	0xD5: {"CMP", opCMP, addrZeroPageX, 4, 2},
	0xD6: {"DEC", opDEC, addrZeroPageX, 6, 2},
	0xD8: {"CLD", opCLD, addrImplied, 2, 1},
	0xD9: {"CMP", opCMP, addrAbsoluteY, 4, 3},
	0xDD: {"CMP", opCMP, addrAbsoluteX, 4, 3},
	0xDE: {"DEC", opDEC, addrAbsoluteX, 7, 3},

	0xE0: {"CPX", opCPX, addrImmediate, 2, 2},
	0xE1: {"SBC", opSBC, addrIndirectX, 6, 2},
	0xE4: {"CPX", opCPX, addrZeroPage, 3, 2},
	0xE5: {"SBC", opSBC, addrZeroPage, 3, 2},
	0xE6: {"INC", opINC, addrZeroPage, 5, 2},
	0xE8: {"INX", opINX, addrImplied, 2, 1},
	0xE9: {"SBC", opSBC, addrImmediate, 2, 2},
	0xEA: {"NOP", opNOP, addrImplied, 2, 1},
	0xEC: {"CPX", opCPX, addrAbsolute, 4, 3},
	0xED: {"SBC", opSBC, addrAbsolute, 4, 3},
	0xEE: {"INC", opINC, addrAbsolute, 6, 3},

	0xF0: {"BEQ", opBEQ, addrRelative, 2, 2},
	0xF1: {"SBC", opSBC, addrIndirectY, 5, 2},
	0xF5: {"SBC", opSBC, addrZeroPageX, 4, 2},
	0xF6: {"INC", opINC, addrZeroPageX, 6, 2},
	0xF8: {"SED", opSED, addrImplied, 2, 1},
	0xF9: {"SBC", opSBC, addrAbsoluteY, 4, 3},
	0xFD: {"SBC", opSBC, addrAbsoluteX, 4, 3},
	0xFE: {"INC", opINC, addrAbsoluteX, 7, 3},
}
