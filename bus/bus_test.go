package bus

import (
	"testing"

	"github.com/nescore/nescore/ppu"
)

type fakeCartridge struct {
	prg    [0x10000]byte
	loadOK bool
	loads  int
}

func (f *fakeCartridge) PRGLoad(addr uint16) (byte, bool) {
	f.loads++
	return f.prg[addr], f.loadOK
}
func (f *fakeCartridge) PRGStore(addr uint16, v byte) bool {
	if !f.loadOK {
		return false
	}
	f.prg[addr] = v
	return true
}
func (f *fakeCartridge) VMemLoad(ciram *[2048]byte, addr uint16) byte       { return 0 }
func (f *fakeCartridge) VMemStore(ciram *[2048]byte, addr uint16, v byte) {}

func newTestBus() (*Bus, *fakeCartridge) {
	cart := &fakeCartridge{loadOK: true}
	p := ppu.New(cart)
	return New(cart, p), cart
}

func TestLoadElapsesOneCycleAndThreeDots(t *testing.T) {
	b, _ := newTestBus()
	startDot := b.PPU.Dot
	b.Load(0x0000)
	if b.Cycles != 1 {
		t.Errorf("Cycles = %d, want 1", b.Cycles)
	}
	if b.PPU.Dot != startDot+3 {
		t.Errorf("PPU.Dot = %d, want %d", b.PPU.Dot, startDot+3)
	}
}

func TestIRAMMirroring(t *testing.T) {
	b, _ := newTestBus()
	b.Store(0x0000, 0x42)
	for _, mirror := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		if got := b.Load(mirror); got != 0x42 {
			t.Errorf("Load(%#x) = %#x, want 0x42", mirror, got)
		}
	}
}

func TestOpenBusHoldsLastSuccessfulRead(t *testing.T) {
	b, cart := newTestBus()
	b.Store(0x0000, 0x7E)
	b.Load(0x0000) // successful read, latches 0x7E

	cart.loadOK = false // cartridge range now "unmapped"
	got := b.Load(0x5000)
	if got != 0x7E {
		t.Errorf("Load(unmapped) = %#x, want 0x7E (stale open bus)", got)
	}
}

func TestCartridgeUnmappedStoreIsSilentNoOp(t *testing.T) {
	b, cart := newTestBus()
	cart.loadOK = false   // cartridge range now "unmapped"
	b.Store(0x6000, 0x11) // routed to cartridge, never panics
}

func TestAPUIORangeIgnoresWritesAndReturnsOpenBus(t *testing.T) {
	b, _ := newTestBus()
	b.Store(0x0000, 0x33)
	b.Load(0x0000)
	got := b.Load(0x4010)
	if got != 0x33 {
		t.Errorf("Load($4010) = %#x, want stale open bus 0x33", got)
	}
}

func TestPPURegisterIndexByAddrAndSeven(t *testing.T) {
	b, _ := newTestBus()
	b.Store(0x2000, 0x80)
	if b.PPU.Ctrl != 0x80 {
		t.Errorf("PPU.Ctrl = %#x, want 0x80", b.PPU.Ctrl)
	}
	b.Store(0x2008, 0x01) // mirrors $2000
	if b.PPU.Ctrl != 0x01 {
		t.Errorf("mirrored PPU.Ctrl = %#x, want 0x01", b.PPU.Ctrl)
	}
}
