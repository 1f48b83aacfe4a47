// Package bus implements the CPU-visible address map: 2 KiB internal RAM,
// the PPU's MMIO register window, an APU/IO stub, and the cartridge. Every
// access elapses exactly one CPU cycle and three PPU dots before the routing
// decision is made, matching the real machine's clock-before-memory-effect
// ordering.
package bus

import (
	"github.com/nescore/nescore/cartridge"
	"github.com/nescore/nescore/ppu"
)

// Bus owns internal RAM and the open-bus latch, and borrows the PPU and
// cartridge it routes to.
type Bus struct {
	IRAM      [2048]byte
	Cartridge cartridge.Cartridge
	PPU       *ppu.PPU
	OpenBus   byte
	Cycles    uint64
}

// New wires a bus over the given cartridge and PPU. The cycle counter starts
// at zero; callers that need the documented post-reset value of 7 (as the
// nes package does) set Cycles directly rather than through Load/Store, since
// the reset-vector fetch itself must not be charged against that count.
func New(cart cartridge.Cartridge, p *ppu.PPU) *Bus {
	return &Bus{Cartridge: cart, PPU: p}
}

// CyclesElapsed reports the running CPU cycle count, satisfying cpu.Bus.
func (b *Bus) CyclesElapsed() uint64 { return b.Cycles }

func (b *Bus) elapse() {
	b.Cycles++
	b.PPU.Tick()
	b.PPU.Tick()
	b.PPU.Tick()
}

// Load elapses one CPU cycle, then routes the read per the CPU address map.
func (b *Bus) Load(addr uint16) byte {
	b.elapse()
	return b.route(addr)
}

// Store elapses one CPU cycle, then routes the write per the CPU address map.
func (b *Bus) Store(addr uint16, value byte) {
	b.elapse()
	switch {
	case addr <= 0x1FFF:
		b.IRAM[addr&0x07FF] = value
	case addr >= 0x2000 && addr <= 0x3FFF:
		b.PPU.WriteRegister(addr&7, value)
	case addr >= 0x4000 && addr <= 0x401F:
		// APU/IO and test-mode stub: writes are ignored.
	default:
		b.Cartridge.PRGStore(addr, value)
	}
}

// Peek reads without elapsing a cycle or touching the open-bus latch. Used
// for the reset-vector lookup at power-on, where the documented initial
// cycle count of 7 must not be perturbed by the fetch that determines PC,
// and by the trace and debugger views. PPU and APU/IO addresses return the
// open-bus value.
func (b *Bus) Peek(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return b.IRAM[addr&0x07FF]
	case addr >= 0x4020:
		if v, ok := b.Cartridge.PRGLoad(addr); ok {
			return v
		}
	}
	return b.OpenBus
}

func (b *Bus) route(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		b.OpenBus = b.IRAM[addr&0x07FF]
	case addr >= 0x2000 && addr <= 0x3FFF:
		b.OpenBus = b.PPU.ReadRegister(addr & 7)
	case addr >= 0x4000 && addr <= 0x401F:
		// open bus, unchanged
	default:
		if v, ok := b.Cartridge.PRGLoad(addr); ok {
			b.OpenBus = v
		}
	}
	return b.OpenBus
}
