// Command go6502run loads a raw binary into a go6502 core's memory and
// either single-steps it a fixed number of times or free-runs it until it
// halts on an illegal opcode, optionally dumping memory on exit. It can
// also inject IRQ and NMI on a fixed instruction cadence to exercise a
// program's interrupt handlers.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/go6502/go6502/cpu"
	"github.com/go6502/go6502/disassembler"
	"github.com/go6502/go6502/irq"
	"github.com/go6502/go6502/memory"
)

// periodicSender raises its line once every period Raised calls, simulating
// a host device that pulses an interrupt line on a fixed instruction cadence.
// A period of 0 never raises.
type periodicSender struct {
	period int
	count  int
}

var _ irq.Sender = (*periodicSender)(nil)

// Raised implements irq.Sender.
func (p *periodicSender) Raised() bool {
	if p.period <= 0 {
		return false
	}
	p.count++
	if p.count >= p.period {
		p.count = 0
		return true
	}
	return false
}

func main() {
	var (
		offset    int
		startPC   int
		steps     int
		trace     bool
		dump      string
		ricoh     bool
		irqPeriod int
		nmiPeriod int
	)

	root := &cobra.Command{
		Use:   "go6502run <file>",
		Short: "Load and run a raw 6502 binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			ram := memory.NewRAM()
			ram.PowerOn()
			if err := memory.Load(ram, data, offset); err != nil {
				return fmt.Errorf("loading image: %w", err)
			}

			cpuType := cpu.NMOS
			if ricoh {
				cpuType = cpu.NMOSRicoh
			}
			chip, err := cpu.Init(&cpu.ChipDef{
				Type: cpuType,
				Ram:  ram,
				Irq:  &periodicSender{period: irqPeriod},
				Nmi:  &periodicSender{period: nmiPeriod},
			})
			if err != nil {
				return fmt.Errorf("initializing core: %w", err)
			}
			if cmd.Flags().Changed("start-pc") {
				chip.PC = uint16(startPC)
			}

			run := func() error {
				for i := 0; steps <= 0 || i < steps; i++ {
					if s := chip.Irq(); s != nil && s.Raised() {
						chip.IRQ()
					}
					if s := chip.Nmi(); s != nil && s.Raised() {
						chip.NMI()
					}
					if trace {
						text, _ := disassembler.Step(chip.PC, ram)
						fmt.Println(text)
					}
					if err := chip.Step(); err != nil {
						return err
					}
				}
				return nil
			}

			runErr := run()
			fmt.Printf("halted after %d instructions, %d cycles\n", chip.Instructions(), chip.Cycles())
			fmt.Printf("A=%.2X X=%.2X Y=%.2X S=%.2X P=%.2X PC=%.4X\n",
				chip.A, chip.X, chip.Y, chip.S, chip.P, chip.PC)

			if dump != "" {
				f, err := os.Create(dump)
				if err != nil {
					return fmt.Errorf("creating dump file: %w", err)
				}
				defer f.Close()
				if err := memory.Dump(ram, f); err != nil {
					return fmt.Errorf("writing dump: %w", err)
				}
			}

			if runErr != nil {
				if _, ok := runErr.(cpu.IllegalOpcodeError); ok {
					fmt.Println(runErr)
					return nil
				}
				return runErr
			}
			return nil
		},
	}

	root.Flags().IntVar(&offset, "offset", 0, "offset into the 64KiB address space to load the image at")
	root.Flags().IntVar(&startPC, "start-pc", 0, "override PC instead of using the reset vector")
	root.Flags().IntVar(&steps, "steps", 0, "number of instructions to execute (0 = run until halted)")
	root.Flags().BoolVar(&trace, "trace", false, "disassemble each instruction before executing it")
	root.Flags().StringVar(&dump, "dump", "", "write a full memory dump to this file on exit")
	root.Flags().BoolVar(&ricoh, "ricoh", false, "use the Ricoh (NES) variant: decimal flag exists but ADC/SBC never perform BCD adjustment")
	root.Flags().IntVar(&irqPeriod, "irq-period", 0, "raise IRQ every N instructions (0 = never)")
	root.Flags().IntVar(&nmiPeriod, "nmi-period", 0, "raise NMI every N instructions (0 = never)")

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
