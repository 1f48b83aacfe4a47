// Package nes wires the cpu, bus, ppu, and cartridge packages into a single
// emulator object: the library surface spec.md §6 describes.
package nes

import (
	"github.com/nescore/nescore/bus"
	"github.com/nescore/nescore/cartridge"
	"github.com/nescore/nescore/cpu"
	"github.com/nescore/nescore/ppu"
)

// Emulator owns the full CPU/bus/PPU/cartridge tree. There is no shared
// state outside this tree and no concurrency inside it: one Step call runs
// exactly one CPU instruction.
type Emulator struct {
	CPU *cpu.CPU
	Bus *bus.Bus
	PPU *ppu.PPU
}

// New constructs an Emulator at the documented power-on state: registers and
// IRAM zeroed (by the zero values of bus.Bus and cpu.CPU), cycle counter 7,
// PPU at scanline 0/dot 21/even parity. startPC overrides the reset vector
// when non-nil, the entry point nestest's automated mode and other
// test harnesses use.
func New(mapper cartridge.Cartridge, startPC *uint16) *Emulator {
	p := ppu.New(mapper)
	b := bus.New(mapper, p)
	b.Cycles = 7
	c := cpu.New(b, startPC)

	return &Emulator{CPU: c, Bus: b, PPU: p}
}

// Step runs one full instruction and returns the cycles it consumed.
// ErrJammed is returned, without further progress possible, if the decoded
// opcode is JAM/KIL.
func (e *Emulator) Step() (uint64, error) {
	return e.CPU.Step()
}

// CyclesElapsed reports the running CPU cycle count.
func (e *Emulator) CyclesElapsed() uint64 { return e.Bus.CyclesElapsed() }
