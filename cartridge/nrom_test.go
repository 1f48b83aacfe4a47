package cartridge

import (
	"errors"
	"testing"

	"github.com/nescore/nescore/ines"
)

func nromRom(prgUnits int, mirroring ines.Mirroring, mapper uint16) *ines.ROM {
	return &ines.ROM{
		Header: ines.Header{
			PRGUnits:  uint16(prgUnits),
			CHRUnits:  1,
			Mirroring: mirroring,
			MapperID:  mapper,
		},
		PRG: make([]byte, prgUnits*16*1024),
		CHR: make([]byte, 8*1024),
	}
}

func TestNewRejectsUnsupportedMapper(t *testing.T) {
	_, err := New(nromRom(1, ines.MirrorHorizontal, 4))
	if !errors.Is(err, ErrUnsupportedMapper) {
		t.Fatalf("New: got %v, want ErrUnsupportedMapper", err)
	}
}

func TestNROMMaskHandles16And32KiB(t *testing.T) {
	tests := []struct {
		units int
		want  uint16
	}{
		{1, 0x3FFF}, // 16 KiB mirrors into both $8000-$BFFF and $C000-$FFFF
		{2, 0x7FFF}, // 32 KiB is flat
	}
	for _, tc := range tests {
		c, err := New(nromRom(tc.units, ines.MirrorHorizontal, 0))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		n := c.(*nrom)
		n.prg[0] = 0xAA
		if got, _ := n.PRGLoad(0x8000); got != 0xAA {
			t.Errorf("units=%d PRGLoad($8000) = %#x, want 0xAA", tc.units, got)
		}
		if n.prgMask != tc.want {
			t.Errorf("units=%d mask = %#x, want %#x", tc.units, n.prgMask, tc.want)
		}
	}
}

func TestNROM16KiBMirrorsIntoUpperWindow(t *testing.T) {
	c, _ := New(nromRom(1, ines.MirrorHorizontal, 0))
	n := c.(*nrom)
	n.prg[0] = 0x42
	lo, _ := n.PRGLoad(0x8000)
	hi, _ := n.PRGLoad(0xC000)
	if lo != 0x42 || hi != 0x42 {
		t.Errorf("PRGLoad($8000)=%#x PRGLoad($C000)=%#x, want both 0x42", lo, hi)
	}
}

func TestNROMPRGRAMWindow(t *testing.T) {
	rom := nromRom(1, ines.MirrorHorizontal, 0)
	rom.Header.PRGRAMSize = 8 * 1024
	c, _ := New(rom)
	if ok := c.PRGStore(0x6123, 0x99); !ok {
		t.Fatal("PRGStore($6123): want ok")
	}
	v, ok := c.PRGLoad(0x6123)
	if !ok || v != 0x99 {
		t.Errorf("PRGLoad($6123) = %#x,%v want 0x99,true", v, ok)
	}
}

func TestNROMNoPRGRAMLeavesWindowUnmapped(t *testing.T) {
	c, _ := New(nromRom(1, ines.MirrorHorizontal, 0))
	if ok := c.PRGStore(0x6123, 0x99); ok {
		t.Fatal("PRGStore($6123): want unmapped when header declares no PRG RAM")
	}
	if _, ok := c.PRGLoad(0x6123); ok {
		t.Error("PRGLoad($6123): want unmapped when header declares no PRG RAM")
	}
}

func TestNROMUnmappedPRG(t *testing.T) {
	c, _ := New(nromRom(1, ines.MirrorHorizontal, 0))
	if _, ok := c.PRGLoad(0x4020); ok {
		t.Error("PRGLoad($4020): want unmapped")
	}
	if ok := c.PRGStore(0x8000, 1); ok {
		t.Error("PRGStore($8000) into ROM: want unmapped (dropped)")
	}
}

func TestNROMCHRRAMFallback(t *testing.T) {
	rom := nromRom(1, ines.MirrorHorizontal, 0)
	rom.CHR = nil
	c, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var ciram [2048]byte
	c.VMemStore(&ciram, 0x0010, 0x7E)
	if got := c.VMemLoad(&ciram, 0x0010); got != 0x7E {
		t.Errorf("CHR RAM round trip: got %#x, want 0x7E", got)
	}
}

func TestNROMMirroringVertical(t *testing.T) {
	c, _ := New(nromRom(1, ines.MirrorVertical, 0))
	var ciram [2048]byte
	c.VMemStore(&ciram, 0x2000, 0x11)
	if got := c.VMemLoad(&ciram, 0x2800); got != 0x11 {
		t.Errorf("vertical mirror $2000 -> $2800: got %#x, want 0x11", got)
	}
}

func TestNROMMirroringHorizontal(t *testing.T) {
	c, _ := New(nromRom(1, ines.MirrorHorizontal, 0))
	var ciram [2048]byte
	c.VMemStore(&ciram, 0x2000, 0x22)
	if got := c.VMemLoad(&ciram, 0x2400); got != 0x22 {
		t.Errorf("horizontal mirror $2000 -> $2400: got %#x, want 0x22", got)
	}
}

func TestNROMVMemUnmappedReturnsLowByte(t *testing.T) {
	c, _ := New(nromRom(1, ines.MirrorHorizontal, 0))
	var ciram [2048]byte
	if got := c.VMemLoad(&ciram, 0x3F11); got != 0x11 {
		t.Errorf("VMemLoad($3F11) = %#x, want 0x11 (video open bus)", got)
	}
}
