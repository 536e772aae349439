package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	deep "github.com/go-test/deep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testRAM is a flat, fully-populated 64KiB implementation of memory.Bank
// used only by this package's own tests, so cpu doesn't need to import
// memory just to exercise itself.
type testRAM [1 << 16]uint8

func (r *testRAM) Read(addr uint16) uint8     { return r[addr] }
func (r *testRAM) Write(addr uint16, v uint8) { r[addr] = v }
func (r *testRAM) PowerOn()                   { *r = testRAM{} }

func newTestChip(t *testing.T) (*Chip, *testRAM) {
	t.Helper()
	ram := &testRAM{}
	c, err := Init(&ChipDef{Ram: ram})
	require.NoError(t, err)
	return c, ram
}

// regs is a small snapshot used with go-test/deep to diff expected vs.
// actual register state in one call instead of one assertion per field.
type regs struct {
	A, X, Y, S, P uint8
	PC            uint16
}

func snapshot(c *Chip) regs {
	return regs{c.A, c.X, c.Y, c.S, c.P, c.PC}
}

func load(t *testing.T, ram *testRAM, pc uint16, bytes ...uint8) {
	t.Helper()
	for i, b := range bytes {
		ram[int(pc)+i] = b
	}
}

func TestResetPowerOnState(t *testing.T) {
	c, ram := newTestChip(t)
	ram[ResetVector] = 0x00
	ram[ResetVector+1] = 0x90
	c.Reset()

	want := regs{A: 0, X: 0, Y: 0, S: 0xFF, P: 0x34, PC: 0x9000}
	if diff := deep.Equal(want, snapshot(c)); diff != nil {
		t.Fatalf("post-reset state mismatch: %v\nstate: %s", diff, spew.Sdump(c))
	}
}

func TestFlagUnusedAlwaysOne(t *testing.T) {
	c, _ := newTestChip(t)
	c.P = 0
	assert.Equal(t, uint8(1), c.GetFlag(FlagUnused))
	c.SetFlag(FlagUnused, false)
	assert.Equal(t, uint8(1), c.GetFlag(FlagUnused))
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	cases := []struct {
		val      uint8
		wantZero uint8
		wantNeg  uint8
	}{
		{0x00, 1, 0},
		{0x7F, 0, 0},
		{0x80, 0, 1},
	}
	for _, tc := range cases {
		c, ram := newTestChip(t)
		load(t, ram, 0x8000, 0xA9, tc.val)
		c.PC = 0x8000
		require.NoError(t, c.Step())
		assert.Equal(t, tc.val, c.A)
		assert.Equal(t, tc.wantZero, c.GetFlag(FlagZero))
		assert.Equal(t, tc.wantNeg, c.GetFlag(FlagNegative))
	}
}

func TestAbsoluteXIndexingCrossesPage(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0xBD, 0xFF, 0x12) // LDA $12FF,X
	ram[0x1300] = 0x55
	c.PC = 0x8000
	c.X = 0x01

	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0x55), c.A)
}

func TestRelativeBranchSignExtension(t *testing.T) {
	c, _ := newTestChip(t)
	c.PC = 0x1000
	c.ram.Write(0x1000, 0x80) // offset -128
	target, _ := addrRelative(c)
	assert.Equal(t, uint16(0x0F81), target)
}

func TestIndirectXWrapsWithinZeroPage(t *testing.T) {
	c, _ := newTestChip(t)
	c.ram.Write(0x00FF, 0x34)
	c.ram.Write(0x0000, 0x12) // wraps from 0xFF+1
	c.PC = 0x2000
	c.ram.Write(0x2000, 0xFF)
	c.X = 0x00
	addr, _ := addrIndirectX(c)
	assert.Equal(t, uint16(0x1234), addr)
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, ram := newTestChip(t)
	ram[0x02FF] = 0x34
	ram[0x0200] = 0x12 // NOT ram[0x0300]; the bug reads high byte from page start
	ram[0x0300] = 0xCD
	load(t, ram, 0x8000, 0x6C, 0xFF, 0x02)
	c.PC = 0x8000

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x1234), c.PC)
}

func TestPHAPLARoundTripSetsFlags(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0x48, 0x68) // PHA; PLA
	c.PC = 0x8000
	c.A = 0x00
	c.S = 0xFF

	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0xFE), c.S)
	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0xFF), c.S)
	assert.Equal(t, uint8(1), c.GetFlag(FlagZero))
}

func TestPHPAlwaysPushesBreakAndUnusedSet(t *testing.T) {
	c, _ := newTestChip(t)
	c.S = 0xFF
	c.P = 0x00
	opPHP(c, 0, false)
	pushed := c.ram.Read(0x01FF)
	assert.Equal(t, uint8(FlagBreak|FlagUnused), pushed)
}

func TestPLPIgnoresPushedBreakAndForcesUnused(t *testing.T) {
	c, _ := newTestChip(t)
	c.S = 0xFE
	c.ram.Write(0x01FF, 0xFF) // all bits set, including Break
	opPLP(c, 0, false)
	assert.Equal(t, uint8(0), c.P&uint8(FlagBreak))
	assert.Equal(t, uint8(1), c.GetFlag(FlagUnused))
}

func TestStackWrapsModulo256(t *testing.T) {
	c, _ := newTestChip(t)
	c.S = 0x00
	c.push(0x42)
	assert.Equal(t, uint8(0xFF), c.S)
	assert.Equal(t, uint8(0x42), c.ram.Read(0x0100))
}

func TestJSRRTSReturnsToInstructionAfterOperand(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0x20, 0x10, 0x80, 0xEA) // JSR $8010; NOP
	ram[0x8010] = 0x60                           // RTS
	c.PC = 0x8000
	c.S = 0xFF

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8010), c.PC)
	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, uint8(0xFF), c.S)
}

func TestADCBinaryOverflow(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0x69, 0x50) // ADC #$50
	c.A = 0x50
	c.PC = 0x8000

	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0xA0), c.A)
	assert.Equal(t, uint8(1), c.GetFlag(FlagOverflow))
	assert.Equal(t, uint8(1), c.GetFlag(FlagNegative))
	assert.Equal(t, uint8(0), c.GetFlag(FlagCarry))
}

// addrOperand stashes a literal byte in zero page and returns its address,
// letting tests drive op funcs directly without going through Step.
func addrOperand(c *Chip, v uint8) uint16 {
	c.ram.Write(0x00F0, v)
	return 0x00F0
}

func TestADCThenSBCIdentityBinaryMode(t *testing.T) {
	c, _ := newTestChip(t)
	c.A = 0x37
	v := uint8(0x19)
	c.SetFlag(FlagCarry, false)
	opADC(c, addrOperand(c, v), false)
	c.SetFlag(FlagCarry, true)
	opSBC(c, addrOperand(c, v), false)
	assert.Equal(t, uint8(0x37), c.A)
}

func TestSBCDecimalModeUnderflow(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0xE9, 0x01) // SBC #$01
	c.A = 0x00
	c.PC = 0x8000
	c.SetFlag(FlagCarry, true)
	c.SetFlag(FlagDecimal, true)

	require.NoError(t, c.Step())
	assert.Equal(t, uint8(0x99), c.A)
	assert.Equal(t, uint8(0), c.GetFlag(FlagCarry))
}

func TestRicohVariantSkipsDecimalAdjustment(t *testing.T) {
	ram := &testRAM{}
	c, err := Init(&ChipDef{Type: NMOSRicoh, Ram: ram})
	require.NoError(t, err)
	load(t, ram, 0x8000, 0x69, 0x50) // ADC #$50
	c.A = 0x50
	c.PC = 0x8000
	c.SetFlag(FlagDecimal, true)

	require.NoError(t, c.Step())
	// Binary-mode result despite D=1, since the Ricoh variant never adjusts.
	assert.Equal(t, uint8(0xA0), c.A)
}

func TestCompareSetsCarryWhenRegGreaterOrEqual(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0xC9, 0x10) // CMP #$10
	c.A = 0x20
	c.PC = 0x8000

	require.NoError(t, c.Step())
	assert.Equal(t, uint8(1), c.GetFlag(FlagCarry))
	assert.Equal(t, uint8(0), c.GetFlag(FlagZero))
}

func TestBITSetsNVFromMemoryNotResult(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0x24, 0x00) // BIT $00
	ram[0x00] = 0xC0                 // N and V bits set, rest clear
	c.A = 0x00
	c.PC = 0x8000

	require.NoError(t, c.Step())
	assert.Equal(t, uint8(1), c.GetFlag(FlagNegative))
	assert.Equal(t, uint8(1), c.GetFlag(FlagOverflow))
	assert.Equal(t, uint8(1), c.GetFlag(FlagZero)) // A & mem == 0
}

func TestINXWrapsAndClearsNegative(t *testing.T) {
	c, _ := newTestChip(t)
	c.X = 0xFF
	opINX(c, 0, false)
	assert.Equal(t, uint8(0x00), c.X)
	assert.Equal(t, uint8(1), c.GetFlag(FlagZero))
	assert.Equal(t, uint8(0), c.GetFlag(FlagNegative))
}

func TestTXSDoesNotAffectFlags(t *testing.T) {
	c, _ := newTestChip(t)
	c.P = 0x00
	c.X = 0x80
	opTXS(c, 0, false)
	assert.Equal(t, uint8(0x80), c.S)
	assert.Equal(t, uint8(0), c.GetFlag(FlagNegative))
	assert.Equal(t, uint8(0), c.GetFlag(FlagZero))
}

func TestFlagSetClearPairs(t *testing.T) {
	c, _ := newTestChip(t)
	opCLC(c, 0, false)
	opSEC(c, 0, false)
	assert.Equal(t, uint8(1), c.GetFlag(FlagCarry))
	opSEC(c, 0, false)
	opCLC(c, 0, false)
	assert.Equal(t, uint8(0), c.GetFlag(FlagCarry))
}

func TestIRQBlockedByInterruptFlag(t *testing.T) {
	c, ram := newTestChip(t)
	ram[IRQVector] = 0x00
	ram[IRQVector+1] = 0x90
	c.PC = 0x8000
	c.SetFlag(FlagInterrupt, true)

	c.IRQ()
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestNMINotBlockedByInterruptFlag(t *testing.T) {
	c, ram := newTestChip(t)
	ram[NMIVector] = 0x00
	ram[NMIVector+1] = 0x90
	c.PC = 0x8000
	c.SetFlag(FlagInterrupt, true)

	c.NMI()
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint8(1), c.GetFlag(FlagInterrupt))
}

func TestBRKPushesPWithBreakSet(t *testing.T) {
	c, ram := newTestChip(t)
	ram[IRQVector] = 0x00
	ram[IRQVector+1] = 0x90
	load(t, ram, 0x8000, 0x00, 0x00) // BRK + padding byte
	c.PC = 0x8000
	c.S = 0xFF
	c.P = 0x20

	require.NoError(t, c.Step())
	assert.Equal(t, uint16(0x9000), c.PC)
	pushedP := c.ram.Read(0x01FD)
	assert.Equal(t, uint8(FlagBreak|FlagUnused), pushedP)
	assert.Equal(t, uint8(1), c.GetFlag(FlagInterrupt))
}

func TestIllegalOpcodeHaltsAndSticks(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0x02) // undefined
	c.PC = 0x8000

	err := c.Step()
	var illegal IllegalOpcodeError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, uint16(0x8000), illegal.PC)
	assert.True(t, c.Halted())

	err2 := c.Step()
	assert.Equal(t, err, err2)
}

func TestLookupReportsDocumentedAndUndocumented(t *testing.T) {
	name, kind, length, ok := Lookup(0xA9) // LDA #
	assert.True(t, ok)
	assert.Equal(t, "LDA", name)
	assert.Equal(t, ModeImmediate, kind)
	assert.Equal(t, uint8(2), length)

	_, _, _, ok = Lookup(0x02) // undefined
	assert.False(t, ok)
}

func TestInstructionsAndCyclesAccumulate(t *testing.T) {
	c, ram := newTestChip(t)
	load(t, ram, 0x8000, 0xEA, 0xEA) // NOP; NOP
	c.PC = 0x8000

	require.NoError(t, c.Step())
	require.NoError(t, c.Step())
	assert.Equal(t, uint64(2), c.Instructions())
	assert.Equal(t, uint64(4), c.Cycles())
	assert.Contains(t, c.LastInstruction(), "NOP")
}
