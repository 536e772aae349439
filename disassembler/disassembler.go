// Package disassembler turns bytes from a memory.Bank back into mnemonic
// text, using the same decode metadata the cpu package's Step uses. It
// does not interpret control flow: a JMP target is printed as an operand
// like any other, never followed.
package disassembler

import (
	"fmt"

	"github.com/go6502/go6502/cpu"
	"github.com/go6502/go6502/memory"
)

// Step disassembles the instruction at pc, returning its text and the
// number of bytes (1-3) it occupies. It always reads two bytes past pc
// regardless of the actual instruction length, so pc+2 must be a valid
// address even near the top of memory.
func Step(pc uint16, bank memory.Bank) (string, int) {
	op := bank.Read(pc)
	b1 := bank.Read(pc + 1)
	b2 := bank.Read(pc + 2)

	name, kind, length, ok := cpu.Lookup(op)
	if !ok {
		return fmt.Sprintf("%.4X %.2X      ???", pc, op), 1
	}

	out := fmt.Sprintf("%.4X %.2X ", pc, op)
	switch kind {
	case cpu.ModeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X", b1, name, b1)
	case cpu.ModeZeroPage:
		out += fmt.Sprintf("%.2X      %s %.2X", b1, name, b1)
	case cpu.ModeZeroPageX:
		out += fmt.Sprintf("%.2X      %s %.2X,X", b1, name, b1)
	case cpu.ModeZeroPageY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y", b1, name, b1)
	case cpu.ModeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)", b1, name, b1)
	case cpu.ModeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y", b1, name, b1)
	case cpu.ModeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X", b1, b2, name, b2, b1)
	case cpu.ModeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X", b1, b2, name, b2, b1)
	case cpu.ModeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y", b1, b2, name, b2, b1)
	case cpu.ModeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)", b1, b2, name, b2, b1)
	case cpu.ModeAccumulator:
		out += fmt.Sprintf("        %s A", name)
	case cpu.ModeRelative:
		target := pc + uint16(int16(int8(b1))) + 2
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X)", b1, name, b1, target)
	default: // ModeImplied
		out += fmt.Sprintf("        %s", name)
	}
	return out, int(length)
}
