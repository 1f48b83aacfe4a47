// Package cartridge defines the polymorphic mapper capability the bus and
// PPU consult for CPU/PPU addresses beyond internal RAM and PPU MMIO, plus
// the NROM (mapper 0) implementation of it.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/nescore/nescore/ines"
)

// ErrUnsupportedMapper is returned by New for any mapper id this core does
// not implement.
var ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")

// Cartridge is the four-operation contract the bus and PPU use to reach
// PRG and video memory through whatever board logic a ROM declares.
//
// VMemLoad/VMemStore take the PPU's CIRAM by reference rather than holding
// a back-reference to it, since CIRAM is owned by the PPU and the mapper
// only needs it to resolve a nametable mirroring decision.
type Cartridge interface {
	PRGLoad(addr uint16) (value byte, ok bool)
	PRGStore(addr uint16, value byte) (ok bool)
	VMemLoad(ciram *[2048]byte, addr uint16) byte
	VMemStore(ciram *[2048]byte, addr uint16, value byte)
}

// New builds the Cartridge implementation matching rom's declared mapper id.
// Only mapper 0 (NROM) is implemented; any other id is ErrUnsupportedMapper.
func New(rom *ines.ROM) (Cartridge, error) {
	switch rom.Header.MapperID {
	case 0:
		return newNROM(rom), nil
	default:
		return nil, fmt.Errorf("cartridge: mapper %d: %w", rom.Header.MapperID, ErrUnsupportedMapper)
	}
}
