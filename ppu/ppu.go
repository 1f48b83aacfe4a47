// Package ppu models the Picture Processing Unit's frame/scanline timer and
// its $2000-$2007 MMIO register surface. Pixel rendering (background
// fetch/shift pipeline, sprite evaluation, sprite 0 hit, palette output to a
// frame buffer) is out of scope; only the timekeeping and register side
// effects a CPU-facing core needs are modeled.
package ppu

// Ctrl is PPUCTRL ($2000), write-only from the CPU's point of view.
type Ctrl byte

const (
	CtrlNametableSelect  Ctrl = 0x03
	CtrlAddressIncrement Ctrl = 1 << 2
	CtrlSpriteTable      Ctrl = 1 << 3
	CtrlBackgroundTable  Ctrl = 1 << 4
	CtrlSpriteSize       Ctrl = 1 << 5
	CtrlMasterSlave      Ctrl = 1 << 6
	CtrlGenerateNMI      Ctrl = 1 << 7
)

// Mask is PPUMASK ($2001), write-only from the CPU's point of view.
type Mask byte

const (
	MaskGreyscale          Mask = 1 << 0
	MaskShowLeftBackground Mask = 1 << 1
	MaskShowLeftSprites    Mask = 1 << 2
	MaskShowBackground     Mask = 1 << 3
	MaskShowSprites        Mask = 1 << 4
	MaskEmphasizeRed       Mask = 1 << 5
	MaskEmphasizeGreen     Mask = 1 << 6
	MaskEmphasizeBlue      Mask = 1 << 7
)

// Status is PPUSTATUS ($2002), read-only from the CPU's point of view.
type Status byte

const (
	StatusSpriteOverflow Status = 1 << 5
	StatusSprite0Hit     Status = 1 << 6
	StatusVerticalBlank  Status = 1 << 7
)

// Cartridge is the subset of cartridge.Cartridge the PPU needs to resolve
// CHR and nametable-mirroring accesses. Declared locally (rather than
// importing the cartridge package's interface type) so ppu has no
// compile-time dependency on cartridge; nes wires the concrete type in.
type Cartridge interface {
	VMemLoad(ciram *[2048]byte, addr uint16) byte
	VMemStore(ciram *[2048]byte, addr uint16, value byte)
}

// PPU is the frame/scanline timer plus MMIO register file. CIRAM (nametable
// RAM) and the palette are owned here; the cartridge only decides how
// $2000-$2FFF folds into CIRAM, per the ownership note in the component
// design (the mapper never holds a CIRAM back-reference).
type PPU struct {
	Cartridge Cartridge

	Ctrl   Ctrl
	Mask   Mask
	Status Status

	OAMAddr byte
	OAM     [256]byte

	CIRAM   [2048]byte
	Palette [32]byte

	addr        uint16 // flat $2006 address latch; see Open Questions
	writeToggle bool   // w, shared by $2005 and $2006
	readBuffer  byte   // buffered $2007 read
	dataLatch   byte   // last byte written to any register or read from $2004/$2007; returned by write-only reads

	Dot      int
	ScanLine int
	OddFrame bool
}

// New constructs a PPU at power-on: scanline 0, dot 21, even frame parity.
func New(cart Cartridge) *PPU {
	return &PPU{
		Cartridge: cart,
		Dot:       21,
	}
}

// Tick advances the PPU by one dot, rolling scanline/frame over at
// (340,261) with the standard odd-frame skip: on an odd frame, dot 339 of
// the pre-render scanline (261) jumps straight to (0,0) instead of 340.
// VBlank is set on arriving at (241,1) and cleared, with the sprite flags,
// on arriving at (261,1).
func (p *PPU) Tick() {
	if p.ScanLine == 261 && p.Dot == 339 && p.OddFrame {
		p.Dot = 0
		p.ScanLine = 0
		p.OddFrame = !p.OddFrame
		return
	}

	p.Dot++
	if p.Dot > 340 {
		p.Dot = 0
		p.ScanLine++
		if p.ScanLine > 261 {
			p.ScanLine = 0
			p.OddFrame = !p.OddFrame
		}
	}

	switch {
	case p.ScanLine == 241 && p.Dot == 1:
		p.Status |= StatusVerticalBlank
	case p.ScanLine == 261 && p.Dot == 1:
		p.Status &^= StatusVerticalBlank
		p.Status &^= StatusSprite0Hit
		p.Status &^= StatusSpriteOverflow
	}
}

func (p *PPU) incrementAddr() {
	if p.Ctrl&CtrlAddressIncrement != 0 {
		p.addr += 32
	} else {
		p.addr++
	}
}

// ReadRegister services a CPU read of $2000-$2007 (addr is masked by the
// caller to the low 3 bits, or may be passed unmasked).
func (p *PPU) ReadRegister(addr uint16) byte {
	switch addr & 7 {
	case 2: // PPUSTATUS
		result := byte(p.Status) | p.dataLatch&0x1F
		p.Status &^= StatusVerticalBlank
		p.writeToggle = false
		return result
	case 4: // OAMDATA
		v := p.OAM[p.OAMAddr]
		p.dataLatch = v
		return v
	case 7: // PPUDATA
		var result byte
		if p.addr >= 0x3F00 {
			result = p.readVMem(p.addr)
			p.readBuffer = p.readVMem(p.addr - 0x1000)
		} else {
			result = p.readBuffer
			p.readBuffer = p.readVMem(p.addr)
		}
		p.incrementAddr()
		p.dataLatch = result
		return result
	default: // write-only registers read back the last value latched onto the bus
		return p.dataLatch
	}
}

// WriteRegister services a CPU write of $2000-$2007.
func (p *PPU) WriteRegister(addr uint16, value byte) {
	p.dataLatch = value

	switch addr & 7 {
	case 0: // PPUCTRL
		p.Ctrl = Ctrl(value)
	case 1: // PPUMASK
		p.Mask = Mask(value)
	case 3: // OAMADDR
		p.OAMAddr = value
	case 4: // OAMDATA
		p.OAM[p.OAMAddr] = value
		p.OAMAddr++
	case 5: // PPUSCROLL
		p.writeToggle = !p.writeToggle
	case 6: // PPUADDR
		if !p.writeToggle {
			p.addr = p.addr&0x00FF | uint16(value&0x3F)<<8
		} else {
			p.addr = p.addr&0xFF00 | uint16(value)
		}
		p.writeToggle = !p.writeToggle
	case 7: // PPUDATA
		p.writeVMem(p.addr, value)
		p.incrementAddr()
	}
}

func (p *PPU) readVMem(addr uint16) byte {
	addr %= 0x4000
	if addr >= 0x3F00 {
		return p.Palette[paletteIndex(addr)]
	}
	return p.Cartridge.VMemLoad(&p.CIRAM, addr)
}

func (p *PPU) writeVMem(addr uint16, value byte) {
	addr %= 0x4000
	if addr >= 0x3F00 {
		p.Palette[paletteIndex(addr)] = value
		return
	}
	p.Cartridge.VMemStore(&p.CIRAM, addr, value)
}

func paletteIndex(addr uint16) uint16 {
	idx := addr % 32
	switch idx {
	case 0x10, 0x14, 0x18, 0x1C:
		idx -= 0x10
	}
	return idx
}
