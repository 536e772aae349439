package cpu

import "reflect"

// AddrModeKind classifies which of the 13 addressing modes an opcode uses.
// It exists for consumers like the disassembler that need to format
// operands differently per mode without reaching into the unexported
// decode table or comparing addrMode function values directly.
type AddrModeKind int

const (
	ModeImplied AddrModeKind = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeRelative
	ModeIndirectX
	ModeIndirectY
	ModeIndirect
)

func modeFuncPtr(m addrMode) uintptr {
	return reflect.ValueOf(m).Pointer()
}

var modeKinds map[uintptr]AddrModeKind

func init() {
	modeKinds = map[uintptr]AddrModeKind{
		modeFuncPtr(addrImplied):     ModeImplied,
		modeFuncPtr(addrAccumulator): ModeAccumulator,
		modeFuncPtr(addrImmediate):   ModeImmediate,
		modeFuncPtr(addrZeroPage):    ModeZeroPage,
		modeFuncPtr(addrZeroPageX):   ModeZeroPageX,
		modeFuncPtr(addrZeroPageY):   ModeZeroPageY,
		modeFuncPtr(addrAbsolute):    ModeAbsolute,
		modeFuncPtr(addrAbsoluteX):   ModeAbsoluteX,
		modeFuncPtr(addrAbsoluteY):   ModeAbsoluteY,
		modeFuncPtr(addrRelative):    ModeRelative,
		modeFuncPtr(addrIndirectX):   ModeIndirectX,
		modeFuncPtr(addrIndirectY):   ModeIndirectY,
		modeFuncPtr(addrIndirect):    ModeIndirect,
	}
}

// Lookup returns decode information for an opcode: its mnemonic, the
// addressing mode it uses, its length in bytes including the opcode, and
// whether it names a documented instruction at all. Used by the
// disassembler so it doesn't need to duplicate the decode table.
func Lookup(op uint8) (name string, kind AddrModeKind, length uint8, ok bool) {
	e := &decodeTable[op]
	if e.op == nil {
		return "", ModeImplied, 1, false
	}
	return e.name, modeKinds[modeFuncPtr(e.mode)], e.length, true
}
