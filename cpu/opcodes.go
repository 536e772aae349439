package cpu

// opFunc performs an operation against the effective address (or the
// accumulator, when isAcc is true) that an addrMode already resolved. An
// opFunc never fails: every 6502 operation is total over any address and
// any register state, so there is nothing for it to report beyond what it
// does to the Chip.
type opFunc func(p *Chip, addr uint16, isAcc bool)

// readOperand fetches the byte an RMW/load instruction operates on,
// either the accumulator or a memory cell.
func readOperand(p *Chip, addr uint16, isAcc bool) uint8 {
	if isAcc {
		return p.A
	}
	return p.ram.Read(addr)
}

// writeOperand is readOperand's write-side counterpart.
func writeOperand(p *Chip, addr uint16, isAcc bool, v uint8) {
	if isAcc {
		p.A = v
		return
	}
	p.ram.Write(addr, v)
}

// compare implements the shared logic behind CMP/CPX/CPY: reg - val,
// discarding the result but updating C/Z/N as if it were a subtraction.
func (p *Chip) compare(reg, val uint8) {
	r := reg - val
	p.zeroCheck(r)
	p.negativeCheck(r)
	// Computed as two's-complement addition (reg + ^val + 1) so the carry
	// bit falls out of the same 9-bit arithmetic a real ALU would use.
	p.carryCheck(uint16(reg) + uint16(^val) + 1)
}

// opADC implements ADC, including the BCD adjustment NMOS parts perform
// when the decimal flag is set. N and Z are set from the pre-adjustment
// binary sum rather than the BCD-corrected result, a documented quirk of
// real NMOS hardware.
func opADC(p *Chip, addr uint16, _ bool) {
	v := p.ram.Read(addr)
	c := uint16(p.P & uint8(FlagCarry))
	bin := uint16(p.A) + uint16(v) + c
	if p.GetFlag(FlagDecimal) != 0 && p.cpuType != NMOSRicoh {
		r := bin
		if (p.A&0x0F)+(v&0x0F)+uint8(c) > 9 {
			r += 6
		}
		if r > 0x99 {
			r += 0x60
		}
		p.overflowCheck(p.A, v, uint8(r))
		p.carryCheck(r)
		p.zn(uint8(bin))
		p.A = uint8(r)
		return
	}
	p.overflowCheck(p.A, v, uint8(bin))
	p.carryCheck(bin)
	p.A = uint8(bin)
	p.zn(p.A)
}

// opSBC implements SBC. In binary mode this is ADC against the one's
// complement of the operand, which is exact for the 6502's carry
// convention; decimal mode cannot reuse that identity (BCD subtraction
// isn't symmetric under ones-complement) so it mirrors the nibble
// adjustment directly, subtracting 6/0x60 on underflow instead of adding
// on overflow.
func opSBC(p *Chip, addr uint16, _ bool) {
	v := p.ram.Read(addr)
	c := p.P & uint8(FlagCarry)
	if p.GetFlag(FlagDecimal) != 0 && p.cpuType != NMOSRicoh {
		binR := int32(p.A) - int32(v) - int32(1-c)
		r := binR
		if int32(p.A&0x0F)-int32(v&0x0F)-int32(1-c) < 0 {
			r -= 6
		}
		if binR < 0 {
			r -= 0x60
		}
		p.SetFlag(FlagCarry, binR >= 0)
		p.overflowCheck(p.A, v, uint8(uint32(binR)))
		p.zn(uint8(uint32(binR)))
		p.A = uint8(uint32(r))
		return
	}
	nv := ^v
	bin := uint16(p.A) + uint16(nv) + uint16(c)
	p.overflowCheck(p.A, nv, uint8(bin))
	p.carryCheck(bin)
	p.A = uint8(bin)
	p.zn(p.A)
}

// opASL implements ASL on either A or a memory cell.
func opASL(p *Chip, addr uint16, isAcc bool) {
	v := readOperand(p, addr, isAcc)
	p.SetFlag(FlagCarry, v&0x80 != 0)
	r := v << 1
	writeOperand(p, addr, isAcc, r)
	p.zn(r)
}

// opLSR implements LSR on either A or a memory cell.
func opLSR(p *Chip, addr uint16, isAcc bool) {
	v := readOperand(p, addr, isAcc)
	p.SetFlag(FlagCarry, v&0x01 != 0)
	r := v >> 1
	writeOperand(p, addr, isAcc, r)
	p.zn(r)
}

// opROL implements ROL on either A or a memory cell, feeding the old
// carry into bit 0.
func opROL(p *Chip, addr uint16, isAcc bool) {
	v := readOperand(p, addr, isAcc)
	oldC := p.GetFlag(FlagCarry)
	p.SetFlag(FlagCarry, v&0x80 != 0)
	r := (v << 1) | oldC
	writeOperand(p, addr, isAcc, r)
	p.zn(r)
}

// opROR implements ROR on either A or a memory cell, feeding the old
// carry into bit 7.
func opROR(p *Chip, addr uint16, isAcc bool) {
	v := readOperand(p, addr, isAcc)
	oldC := p.GetFlag(FlagCarry)
	p.SetFlag(FlagCarry, v&0x01 != 0)
	r := (v >> 1) | (oldC << 7)
	writeOperand(p, addr, isAcc, r)
	p.zn(r)
}

func opAND(p *Chip, addr uint16, _ bool) {
	p.A &= p.ram.Read(addr)
	p.zn(p.A)
}

func opORA(p *Chip, addr uint16, _ bool) {
	p.A |= p.ram.Read(addr)
	p.zn(p.A)
}

func opEOR(p *Chip, addr uint16, _ bool) {
	p.A ^= p.ram.Read(addr)
	p.zn(p.A)
}

// opBIT sets Z from A&mem but N and V directly from bits 7 and 6 of the
// memory operand, never touching A.
func opBIT(p *Chip, addr uint16, _ bool) {
	v := p.ram.Read(addr)
	p.zeroCheck(p.A & v)
	p.negativeCheck(v)
	p.SetFlag(FlagOverflow, v&0x40 != 0)
}

func opCMP(p *Chip, addr uint16, _ bool) { p.compare(p.A, p.ram.Read(addr)) }
func opCPX(p *Chip, addr uint16, _ bool) { p.compare(p.X, p.ram.Read(addr)) }
func opCPY(p *Chip, addr uint16, _ bool) { p.compare(p.Y, p.ram.Read(addr)) }

func opLDA(p *Chip, addr uint16, _ bool) {
	p.A = p.ram.Read(addr)
	p.zn(p.A)
}

func opLDX(p *Chip, addr uint16, _ bool) {
	p.X = p.ram.Read(addr)
	p.zn(p.X)
}

func opLDY(p *Chip, addr uint16, _ bool) {
	p.Y = p.ram.Read(addr)
	p.zn(p.Y)
}

func opSTA(p *Chip, addr uint16, _ bool) { p.ram.Write(addr, p.A) }
func opSTX(p *Chip, addr uint16, _ bool) { p.ram.Write(addr, p.X) }
func opSTY(p *Chip, addr uint16, _ bool) { p.ram.Write(addr, p.Y) }

func opINC(p *Chip, addr uint16, _ bool) {
	v := p.ram.Read(addr) + 1
	p.ram.Write(addr, v)
	p.zn(v)
}

func opDEC(p *Chip, addr uint16, _ bool) {
	v := p.ram.Read(addr) - 1
	p.ram.Write(addr, v)
	p.zn(v)
}

func opINX(p *Chip, _ uint16, _ bool) { p.X++; p.zn(p.X) }
func opINY(p *Chip, _ uint16, _ bool) { p.Y++; p.zn(p.Y) }
func opDEX(p *Chip, _ uint16, _ bool) { p.X--; p.zn(p.X) }
func opDEY(p *Chip, _ uint16, _ bool) { p.Y--; p.zn(p.Y) }

func opTAX(p *Chip, _ uint16, _ bool) { p.X = p.A; p.zn(p.X) }
func opTAY(p *Chip, _ uint16, _ bool) { p.Y = p.A; p.zn(p.Y) }
func opTXA(p *Chip, _ uint16, _ bool) { p.A = p.X; p.zn(p.A) }
func opTYA(p *Chip, _ uint16, _ bool) { p.A = p.Y; p.zn(p.A) }
func opTSX(p *Chip, _ uint16, _ bool) { p.X = p.S; p.zn(p.X) }

// opTXS does not touch any flag — the one register transfer that doesn't.
func opTXS(p *Chip, _ uint16, _ bool) { p.S = p.X }

func opCLC(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagCarry, false) }
func opSEC(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagCarry, true) }
func opCLI(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagInterrupt, false) }
func opSEI(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagInterrupt, true) }
func opCLD(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagDecimal, false) }
func opSED(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagDecimal, true) }
func opCLV(p *Chip, _ uint16, _ bool) { p.SetFlag(FlagOverflow, false) }

func opNOP(p *Chip, _ uint16, _ bool) {}

func opPHA(p *Chip, _ uint16, _ bool) { p.push(p.A) }

func opPLA(p *Chip, _ uint16, _ bool) {
	p.A = p.pop()
	p.zn(p.A)
}

// opPHP pushes P with both Break and Unused forced to 1, regardless of
// their live values.
func opPHP(p *Chip, _ uint16, _ bool) {
	p.push(p.P | uint8(FlagBreak) | uint8(FlagUnused))
}

// opPLP restores P from the stack but ignores the pushed Break bit (the
// live B latch doesn't exist) and forces Unused back to 1.
func opPLP(p *Chip, _ uint16, _ bool) {
	v := p.pop()
	p.P = (v &^ uint8(FlagBreak)) | uint8(FlagUnused)
}

// opJMP sets PC directly to the address the addressing mode resolved —
// used for both absolute JMP and, via addrIndirect, JMP (a).
func opJMP(p *Chip, addr uint16, _ bool) { p.PC = addr }

// opJSR pushes the address of the last byte of its own operand (PC-1,
// since addrAbsolute already advanced PC past the full instruction) and
// jumps to the target. RTS compensates by adding 1 back after popping.
func opJSR(p *Chip, addr uint16, _ bool) {
	p.pushAddr(p.PC - 1)
	p.PC = addr
}

// opRTS pops the return address JSR pushed and adds 1 back.
func opRTS(p *Chip, _ uint16, _ bool) {
	p.PC = p.popAddr() + 1
}

// opBRK implements software interrupt entry: pad byte, push PC, push P
// with Break set, vector through IRQVector.
func opBRK(p *Chip, _ uint16, _ bool) {
	p.enterInterrupt(IRQVector, true)
}

// opRTI pops P (clearing Break, forcing Unused) and then PC, with no +1 —
// unlike RTS there's no return-address adjustment to undo.
func opRTI(p *Chip, _ uint16, _ bool) {
	v := p.pop()
	p.P = (v &^ uint8(FlagBreak)) | uint8(FlagUnused)
	p.PC = p.popAddr()
}

func opBCC(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagCarry) == 0 {
		p.PC = addr
	}
}

func opBCS(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagCarry) != 0 {
		p.PC = addr
	}
}

func opBEQ(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagZero) != 0 {
		p.PC = addr
	}
}

func opBNE(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagZero) == 0 {
		p.PC = addr
	}
}

func opBMI(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagNegative) != 0 {
		p.PC = addr
	}
}

func opBPL(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagNegative) == 0 {
		p.PC = addr
	}
}

func opBVC(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagOverflow) == 0 {
		p.PC = addr
	}
}

func opBVS(p *Chip, addr uint16, _ bool) {
	if p.GetFlag(FlagOverflow) != 0 {
		p.PC = addr
	}
}
