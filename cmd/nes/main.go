// Command nes loads an iNES ROM and runs it instruction by instruction,
// optionally tracing every retired instruction in nestest.log format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/nescore/nescore/cartridge"
	"github.com/nescore/nescore/cpu"
	"github.com/nescore/nescore/ines"
	"github.com/nescore/nescore/internal/trace"
	"github.com/nescore/nescore/nes"
)

func main() {
	tracePath := flag.String("trace", "", "write a nestest.log-format trace to this path, or - for stdout")
	startHex := flag.String("start", "", "override the reset vector with this hex PC (no 0x prefix), e.g. C000")
	limit := flag.Int("limit", 0, "stop after this many instructions (0 means run until ErrJammed)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: nes [-trace path] [-start hexpc] [-limit n] <rom-path>")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *tracePath, *startHex, *limit); err != nil {
		log.Fatal(err)
	}
}

func run(romPath, tracePath, startHex string, limit int) error {
	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	rom, err := ines.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing rom: %w", err)
	}
	log.Printf("loaded %s: %s", romPath, rom.Header.String())

	mapper, err := cartridge.New(rom)
	if err != nil {
		return fmt.Errorf("constructing cartridge: %w", err)
	}

	var startPC *uint16
	if startHex != "" {
		v, err := strconv.ParseUint(startHex, 16, 16)
		if err != nil {
			return fmt.Errorf("parsing -start: %w", err)
		}
		pc := uint16(v)
		startPC = &pc
	}

	emu := nes.New(mapper, startPC)

	var tracer *trace.Writer
	if tracePath != "" {
		out := io.Writer(os.Stdout)
		if tracePath != "-" {
			f, err := os.Create(tracePath)
			if err != nil {
				return fmt.Errorf("creating trace file: %w", err)
			}
			defer f.Close()
			out = f
		}
		tracer = trace.New(out, emu.Bus.Peek)
	}

	for n := 0; limit == 0 || n < limit; n++ {
		if tracer != nil {
			tracer.Line(trace.State{
				PC:            emu.CPU.PC,
				A:             emu.CPU.A,
				X:             emu.CPU.X,
				Y:             emu.CPU.Y,
				S:             emu.CPU.S,
				P:             byte(emu.CPU.P),
				PPUDot:        emu.PPU.Dot,
				PPUScanLine:   emu.PPU.ScanLine,
				CyclesElapsed: emu.CyclesElapsed(),
			})
		}

		if _, err := emu.Step(); err != nil {
			if errors.Is(err, cpu.ErrJammed) {
				log.Printf("jammed at PC=%04X after %d instructions", emu.CPU.PC, n)
				return nil
			}
			return err
		}
	}

	return nil
}
