package cpu

// addrMode resolves an effective address given the current PC and
// registers, consuming 0-2 operand bytes from the program stream and
// advancing PC past them. The second return value is true only for
// accumulator mode, where there is no memory address and the operation
// must read/write p.A directly instead.
//
// These are pure in the sense that, for a given (PC, A, X, Y) and memory
// contents, they always consume the same number of bytes and compute the
// same address — no mode ever fails or depends on anything else.
type addrMode func(p *Chip) (addr uint16, isAcc bool)

// addrImplied is used by instructions with no operand at all (CLC, NOP,
// stack ops driven entirely by S, etc). It consumes no bytes.
func addrImplied(p *Chip) (uint16, bool) {
	return 0, false
}

// addrAccumulator is implied mode's twin for the ASL/LSR/ROL/ROR variants
// that operate on A instead of a memory cell.
func addrAccumulator(p *Chip) (uint16, bool) {
	return 0, true
}

// addrImmediate returns the address of the operand byte itself — #i reads
// the next byte in the instruction stream rather than redirecting through
// it.
func addrImmediate(p *Chip) (uint16, bool) {
	addr := p.PC
	p.PC++
	return addr, false
}

// addrZeroPage implements d: the fetched byte, zero-extended to 16 bits.
func addrZeroPage(p *Chip) (uint16, bool) {
	return uint16(p.fetchByte()), false
}

// addrZeroPageX implements d,x: (fetched + X) mod 256, staying on the zero page.
func addrZeroPageX(p *Chip) (uint16, bool) {
	return uint16(p.fetchByte() + p.X), false
}

// addrZeroPageY implements d,y: (fetched + Y) mod 256, staying on the zero page.
func addrZeroPageY(p *Chip) (uint16, bool) {
	return uint16(p.fetchByte() + p.Y), false
}

// addrAbsolute implements a: the little-endian 16-bit operand verbatim.
func addrAbsolute(p *Chip) (uint16, bool) {
	return p.fetchWord(), false
}

// addrAbsoluteX implements a,x: absolute + X, wrapping mod 65536.
func addrAbsoluteX(p *Chip) (uint16, bool) {
	return p.fetchWord() + uint16(p.X), false
}

// addrAbsoluteY implements a,y: absolute + Y, wrapping mod 65536.
func addrAbsoluteY(p *Chip) (uint16, bool) {
	return p.fetchWord() + uint16(p.Y), false
}

// addrRelative implements the branch operand: PC (after consuming the
// offset byte) plus the offset sign-extended from 8 to 16 bits.
func addrRelative(p *Chip) (uint16, bool) {
	offset := int8(p.fetchByte())
	return p.PC + uint16(int16(offset)), false
}

// addrIndirectX implements (d,x): a zero-page pointer, indexed by X
// before dereferencing. Both the pointer lookup and the high-byte fetch
// wrap within the zero page.
func addrIndirectX(p *Chip) (uint16, bool) {
	ptr := p.fetchByte() + p.X
	lo := p.ram.Read(uint16(ptr))
	hi := p.ram.Read(uint16(ptr + 1))
	return uint16(hi)<<8 | uint16(lo), false
}

// addrIndirectY implements (d),y: a zero-page pointer dereferenced first,
// then indexed by Y. The pointer's high-byte fetch wraps within the zero
// page; the Y addition does not (it may cross into a different page).
func addrIndirectY(p *Chip) (uint16, bool) {
	zp := p.fetchByte()
	lo := p.ram.Read(uint16(zp))
	hi := p.ram.Read(uint16(zp + 1))
	base := uint16(hi)<<8 | uint16(lo)
	return base + uint16(p.Y), false
}

// addrIndirect implements JMP (a): a 16-bit pointer dereferenced to get
// the target. Deliberately preserves the 6502's page-boundary fetch bug —
// if the pointer's low byte is 0xFF, the high byte of the target is read
// from the start of the same page rather than the next one.
func addrIndirect(p *Chip) (uint16, bool) {
	ptr := p.fetchWord()
	lo := p.ram.Read(ptr)
	hiAddr := (ptr & 0xFF00) | uint16(uint8(ptr)+1)
	hi := p.ram.Read(hiAddr)
	return uint16(hi)<<8 | uint16(lo), false
}
