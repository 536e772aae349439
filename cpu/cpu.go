// Package cpu implements the MOS 6502 instruction set architecture:
// register file, addressing modes, opcode semantics and the interrupt
// entry sequences. It is instruction-stepped rather than cycle-exact —
// a single Step call executes one complete instruction and accounts its
// base cycle cost, but does not model sub-instruction bus timing.
package cpu

import (
	"fmt"

	"github.com/go6502/go6502/irq"
	"github.com/go6502/go6502/memory"
)

// CPUType selects between minor variants of the NMOS 6502 family that
// differ only in whether decimal mode is implemented.
type CPUType int

const (
	// NMOS is the stock NMOS 6502 with BCD mode implemented.
	NMOS CPUType = iota
	// NMOSRicoh is the Ricoh variant (as used in the NES) where the
	// decimal flag exists but ADC/SBC never perform BCD adjustment.
	NMOSRicoh
)

// Flag identifies one bit of the status register P.
type Flag uint8

// Status register bits, high to low: N V U B D I Z C.
const (
	FlagCarry     Flag = 0x01
	FlagZero      Flag = 0x02
	FlagInterrupt Flag = 0x04
	FlagDecimal   Flag = 0x08
	FlagBreak     Flag = 0x10
	FlagUnused    Flag = 0x20
	FlagOverflow  Flag = 0x40
	FlagNegative  Flag = 0x80
)

// Vector addresses for the three hardware entry points.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// InvalidCPUState indicates a programmer error in how the Chip was driven
// (an out-of-range flag selector, a construction error) rather than
// anything a running program could trigger.
type InvalidCPUState struct {
	Reason string
}

// Error implements error.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// IllegalOpcodeError is returned by Step when the opcode at PC has no
// defined operation. The CPU halts at that PC; Step will continue
// returning this same error on every subsequent call.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

// Error implements error.
func (e IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// ChipDef configures a Chip at construction time.
type ChipDef struct {
	// Type selects the NMOS/Ricoh decimal-mode behavior.
	Type CPUType
	// Ram backs all memory reads/writes. Required.
	Ram memory.Bank
	// Irq, if non-nil, is polled by a host's run loop between Step calls
	// to decide whether to invoke IRQ(). The core never reads it itself.
	Irq irq.Sender
	// Nmi is the NMI-line equivalent of Irq.
	Nmi irq.Sender
}

// Chip is a single MOS 6502 core: register file, flags, and the opcode
// decode/execute loop. The zero value is not usable; construct with Init.
type Chip struct {
	A  uint8  // Accumulator
	X  uint8  // Index register X
	Y  uint8  // Index register Y
	S  uint8  // Stack pointer (page-1 offset)
	P  uint8  // Status register
	PC uint16 // Program counter

	cpuType CPUType
	ram     memory.Bank
	irq     irq.Sender
	nmi     irq.Sender

	halted     bool
	haltOpcode uint8
	haltPC     uint16

	cycles       uint64
	instructions uint64
	lastInstr    string
}

// Init constructs a Chip in power-on state (registers at their documented
// reset values, with PC loaded from the reset vector).
func Init(def *ChipDef) (*Chip, error) {
	if def.Ram == nil {
		return nil, InvalidCPUState{"ChipDef.Ram must be non-nil"}
	}
	p := &Chip{
		cpuType: def.Type,
		ram:     def.Ram,
		irq:     def.Irq,
		nmi:     def.Nmi,
	}
	p.Reset()
	return p, nil
}

// Reset loads PC from the reset vector and puts the register file into
// the documented post-reset state: A=X=Y=0, S=0xFF, P=0x34 (I=1, U=1).
func (p *Chip) Reset() {
	p.A = 0
	p.X = 0
	p.Y = 0
	p.S = 0xFF
	p.P = 0x34
	p.halted = false
	p.haltOpcode = 0
	p.haltPC = 0
	lo := p.ram.Read(ResetVector)
	hi := p.ram.Read(ResetVector + 1)
	p.PC = uint16(hi)<<8 | uint16(lo)
}

// LoadMemory copies data into the Chip's memory starting at offset. It
// fails without touching memory if the data would run past 0xFFFF.
func (p *Chip) LoadMemory(data []byte, offset int) error {
	return memory.Load(p.ram, data, offset)
}

// ReadByte reads a single byte from the Chip's memory.
func (p *Chip) ReadByte(addr uint16) uint8 {
	return p.ram.Read(addr)
}

// WriteByte writes a single byte to the Chip's memory.
func (p *Chip) WriteByte(addr uint16, val uint8) {
	p.ram.Write(addr, val)
}

// GetFlag returns 1 if the given flag is set, 0 otherwise. FlagUnused
// always reads back 1 regardless of stored state.
func (p *Chip) GetFlag(f Flag) uint8 {
	if f == FlagUnused {
		return 1
	}
	if p.P&uint8(f) != 0 {
		return 1
	}
	return 0
}

// SetFlag sets or clears the given flag without disturbing any other bit.
// FlagUnused cannot be cleared; attempts to do so are silently ignored
// since bit 5 is wired high on real hardware.
func (p *Chip) SetFlag(f Flag, v bool) {
	if f == FlagUnused {
		p.P |= uint8(FlagUnused)
		return
	}
	if v {
		p.P |= uint8(f)
	} else {
		p.P &^= uint8(f)
	}
}

// Halted reports whether the CPU has hit an illegal opcode and stopped
// advancing.
func (p *Chip) Halted() bool {
	return p.halted
}

// Cycles returns the running count of cycles accounted across all Step
// calls (base cycle cost per instruction; not cycle-exact bus timing).
func (p *Chip) Cycles() uint64 {
	return p.cycles
}

// Instructions returns the number of instructions successfully executed.
func (p *Chip) Instructions() uint64 {
	return p.instructions
}

// LastInstruction returns a short human-readable trace of the most
// recently executed instruction: the address it was fetched from and its
// mnemonic. The operand and the resulting register values are not included.
func (p *Chip) LastInstruction() string {
	return p.lastInstr
}

// Irq returns the IRQ line a host configured via ChipDef, or nil if none
// was supplied. A host free-running the Chip polls this each iteration
// and calls IRQ() when it reports raised; the core itself never reads it.
func (p *Chip) Irq() irq.Sender {
	return p.irq
}

// Nmi is Irq's NMI-line counterpart.
func (p *Chip) Nmi() irq.Sender {
	return p.nmi
}

// Snapshot is a read-only copy of a Chip's visible state: the register
// file plus the running counters and halt status. It lets a caller capture
// or compare state without holding a reference to the live Chip.
type Snapshot struct {
	A, X, Y, S, P uint8
	PC            uint16
	Cycles        uint64
	Instructions  uint64
	Halted        bool
}

// Snapshot captures the Chip's current visible state.
func (p *Chip) Snapshot() Snapshot {
	return Snapshot{
		A:            p.A,
		X:            p.X,
		Y:            p.Y,
		S:            p.S,
		P:            p.P,
		PC:           p.PC,
		Cycles:       p.cycles,
		Instructions: p.instructions,
		Halted:       p.halted,
	}
}

// zeroCheck sets FlagZero from the given result byte.
func (p *Chip) zeroCheck(v uint8) {
	p.SetFlag(FlagZero, v == 0)
}

// negativeCheck sets FlagNegative from bit 7 of the given result byte.
func (p *Chip) negativeCheck(v uint8) {
	p.SetFlag(FlagNegative, v&0x80 != 0)
}

// zn is shorthand for the common case of setting both N and Z from a
// single result byte.
func (p *Chip) zn(v uint8) {
	p.zeroCheck(v)
	p.negativeCheck(v)
}

// carryCheck sets FlagCarry if the 16-bit ALU result indicates a carry
// out of bit 7 (res >= 0x100). The binary sum can reach 0x1FF and
// decimal-mode adjustment can push res as high as 0x265, so this takes the
// full sum rather than masking first.
func (p *Chip) carryCheck(res uint16) {
	p.SetFlag(FlagCarry, res >= 0x100)
}

// overflowCheck sets FlagOverflow when adding arg to reg produced a
// two's-complement sign change that a valid signed result couldn't
// produce. See http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html.
func (p *Chip) overflowCheck(reg, arg, res uint8) {
	p.SetFlag(FlagOverflow, (reg^res)&(arg^res)&0x80 != 0)
}

// push writes a byte to the stack and decrements S, wrapping mod 256.
func (p *Chip) push(v uint8) {
	p.ram.Write(0x0100|uint16(p.S), v)
	p.S--
}

// pop increments S (wrapping mod 256) and returns the byte it now points to.
func (p *Chip) pop() uint8 {
	p.S++
	return p.ram.Read(0x0100 | uint16(p.S))
}

// pushAddr pushes a 16-bit value high byte first, so a matching popAddr
// returns low then high — the convention JSR/RTS and interrupt entry use.
func (p *Chip) pushAddr(addr uint16) {
	p.push(uint8(addr >> 8))
	p.push(uint8(addr))
}

// popAddr is the inverse of pushAddr.
func (p *Chip) popAddr() uint16 {
	lo := p.pop()
	hi := p.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// fetchByte reads the byte at PC and advances PC past it.
func (p *Chip) fetchByte() uint8 {
	v := p.ram.Read(p.PC)
	p.PC++
	return v
}

// fetchWord reads a little-endian 16-bit value starting at PC, advancing
// PC past both bytes.
func (p *Chip) fetchWord() uint16 {
	lo := p.fetchByte()
	hi := p.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction: fetch opcode, resolve its
// addressing mode, run its operation, and account cycles/instruction
// counts. It returns IllegalOpcodeError if the opcode is undefined, and
// does not advance PC past an illegal opcode (every subsequent Step call
// returns the same error until Reset).
func (p *Chip) Step() error {
	if p.halted {
		return IllegalOpcodeError{p.haltOpcode, p.haltPC}
	}
	startPC := p.PC
	op := p.fetchByte()
	entry := &decodeTable[op]
	if entry.op == nil {
		p.halted = true
		p.haltOpcode = op
		p.haltPC = startPC
		return IllegalOpcodeError{op, startPC}
	}
	addr, isAcc := entry.mode(p)
	entry.op(p, addr, isAcc)
	p.cycles += uint64(entry.cycles)
	p.instructions++
	p.lastInstr = fmt.Sprintf("%.4X: %s", startPC, entry.name)
	return nil
}

// IRQ runs the maskable-interrupt entry sequence unless FlagInterrupt is
// set, in which case it is a no-op. The pushed copy of P always has
// FlagBreak cleared and FlagUnused set.
func (p *Chip) IRQ() {
	if p.GetFlag(FlagInterrupt) != 0 {
		return
	}
	p.enterInterrupt(IRQVector, false)
}

// NMI runs the non-maskable-interrupt entry sequence. Unlike IRQ it is
// never gated by FlagInterrupt.
func (p *Chip) NMI() {
	p.enterInterrupt(NMIVector, false)
}

// enterInterrupt implements the shared push/vector-load sequence used by
// IRQ, NMI and BRK. brk distinguishes the BRK opcode (which pushes P with
// FlagBreak set and pre-increments PC past its padding byte) from the two
// hardware lines (which do neither). The two hardware lines also cost 7
// cycles to enter; BRK's cost is already accounted by Step via its
// decode-table entry, so it's not added again here.
func (p *Chip) enterInterrupt(vector uint16, brk bool) {
	if brk {
		p.PC++
	} else {
		p.cycles += 7
	}
	p.pushAddr(p.PC)
	push := p.P | uint8(FlagUnused)
	if brk {
		push |= uint8(FlagBreak)
	} else {
		push &^= uint8(FlagBreak)
	}
	p.push(push)
	p.SetFlag(FlagInterrupt, true)
	lo := p.ram.Read(vector)
	hi := p.ram.Read(vector + 1)
	p.PC = uint16(hi)<<8 | uint16(lo)
}
