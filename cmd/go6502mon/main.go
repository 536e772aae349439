// Command go6502mon is an interactive terminal monitor for a go6502 core:
// it loads a binary image, then lets a user single-step the CPU, raise
// IRQ/NMI, and watch registers, flags and a page of memory update live.
// This is the interactive stepper loop the core itself deliberately
// leaves to a host — go6502mon is one such host, built against nothing
// but cpu.Chip's public surface.
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/pflag"

	"github.com/go6502/go6502/cpu"
	"github.com/go6502/go6502/disassembler"
	"github.com/go6502/go6502/memory"
)

var (
	offset  = pflag.Int("offset", 0, "offset into the 64KiB address space to load the image at")
	startPC = pflag.Int("start-pc", -1, "override PC instead of using the reset vector")
)

type model struct {
	chip *cpu.Chip
	ram  *memory.RAM
	err  error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			if err := m.chip.Step(); err != nil {
				m.err = err
			}
		case "i":
			m.chip.IRQ()
		case "n":
			m.chip.NMI()
		case "r":
			m.chip.Reset()
			m.err = nil
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory, highlighting PC.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%.4X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := m.ram.Read(addr)
		if addr == m.chip.PC {
			s += fmt.Sprintf("[%.2X] ", v)
		} else {
			s += fmt.Sprintf(" %.2X  ", v)
		}
	}
	return s
}

func (m model) pageTable() string {
	base := m.chip.PC &^ 0x0F
	rows := []string{"addr | 0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F"}
	for i := -2; i <= 2; i++ {
		rows = append(rows, m.renderPage(base+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	flagBit := func(f cpu.Flag, label string) string {
		if m.chip.GetFlag(f) != 0 {
			return label
		}
		return "."
	}
	flags := strings.Join([]string{
		flagBit(cpu.FlagNegative, "N"),
		flagBit(cpu.FlagOverflow, "V"),
		flagBit(cpu.FlagUnused, "U"),
		flagBit(cpu.FlagBreak, "B"),
		flagBit(cpu.FlagDecimal, "D"),
		flagBit(cpu.FlagInterrupt, "I"),
		flagBit(cpu.FlagZero, "Z"),
		flagBit(cpu.FlagCarry, "C"),
	}, " ")

	errLine := ""
	if m.err != nil {
		errLine = "\n" + m.err.Error()
	}

	return fmt.Sprintf(
		"PC: %.4X\nA:  %.2X\nX:  %.2X\nY:  %.2X\nS:  %.2X\nP:  %s\ncycles: %d  instructions: %d\nlast: %s%s",
		m.chip.PC, m.chip.A, m.chip.X, m.chip.Y, m.chip.S, flags,
		m.chip.Cycles(), m.chip.Instructions(), m.chip.LastInstruction(), errLine,
	)
}

func (m model) View() string {
	next, _ := disassembler.Step(m.chip.PC, m.ram)
	help := "space/j: step   i: IRQ   n: NMI   r: reset   q: quit"
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.pageTable(),
		"",
		m.status(),
		"",
		"next: "+next,
		"",
		help,
	)
}

func main() {
	pflag.Parse()
	if pflag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [--offset N] [--start-pc N] <file>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(pflag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading %s: %v\n", pflag.Arg(0), err)
		os.Exit(1)
	}

	ram := memory.NewRAM()
	ram.PowerOn()
	if err := memory.Load(ram, data, *offset); err != nil {
		fmt.Fprintf(os.Stderr, "loading image: %v\n", err)
		os.Exit(1)
	}

	chip, err := cpu.Init(&cpu.ChipDef{Ram: ram})
	if err != nil {
		fmt.Fprintf(os.Stderr, "initializing core: %v\n", err)
		os.Exit(1)
	}
	if *startPC >= 0 {
		chip.PC = uint16(*startPC)
	}

	if _, err := tea.NewProgram(model{chip: chip, ram: ram}).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
