package ppu

import "testing"

type fakeCartridge struct {
	chr [8 * 1024]byte
}

func (f *fakeCartridge) VMemLoad(ciram *[2048]byte, addr uint16) byte {
	if addr < 0x2000 {
		return f.chr[addr]
	}
	return ciram[addr&0x07FF]
}

func (f *fakeCartridge) VMemStore(ciram *[2048]byte, addr uint16, value byte) {
	if addr < 0x2000 {
		f.chr[addr] = value
		return
	}
	ciram[addr&0x07FF] = value
}

func TestNewStartsAtScanline0Dot21(t *testing.T) {
	p := New(&fakeCartridge{})
	if p.ScanLine != 0 || p.Dot != 21 || p.OddFrame {
		t.Errorf("New: scanline=%d dot=%d odd=%v, want 0,21,false", p.ScanLine, p.Dot, p.OddFrame)
	}
}

func TestTickRollsOverDotAndScanline(t *testing.T) {
	p := New(&fakeCartridge{})
	p.Dot = 340
	p.ScanLine = 5
	p.Tick()
	if p.Dot != 0 || p.ScanLine != 6 {
		t.Errorf("Tick: dot=%d scanline=%d, want 0,6", p.Dot, p.ScanLine)
	}
}

func TestTickSkipsDot339OnOddFrame(t *testing.T) {
	p := New(&fakeCartridge{})
	p.ScanLine = 261
	p.Dot = 339
	p.OddFrame = true
	p.Tick()
	if p.Dot != 0 || p.ScanLine != 0 || p.OddFrame {
		t.Errorf("Tick odd-frame skip: dot=%d scanline=%d odd=%v, want 0,0,false", p.Dot, p.ScanLine, p.OddFrame)
	}
}

func TestTickDoesNotSkipOnEvenFrame(t *testing.T) {
	p := New(&fakeCartridge{})
	p.ScanLine = 261
	p.Dot = 339
	p.OddFrame = false
	p.Tick()
	if p.Dot != 340 || p.ScanLine != 261 {
		t.Errorf("Tick even-frame: dot=%d scanline=%d, want 340,261", p.Dot, p.ScanLine)
	}
}

func TestVBlankSetAndClearedByStatusRead(t *testing.T) {
	p := New(&fakeCartridge{})
	p.ScanLine = 241
	p.Dot = 0
	p.Tick() // 241,1
	if p.Status&StatusVerticalBlank == 0 {
		t.Fatal("VBlank not set at (241,1)")
	}
	first := p.ReadRegister(0x2002)
	if first&0x80 == 0 {
		t.Fatal("first $2002 read: want bit 7 set")
	}
	second := p.ReadRegister(0x2002)
	if second&0x80 != 0 {
		t.Fatal("second $2002 read: want bit 7 cleared")
	}
}

func TestRegisterIndexByAddrAndSeven(t *testing.T) {
	p := New(&fakeCartridge{})
	p.WriteRegister(0x2000, 0x80)
	if p.Ctrl != 0x80 {
		t.Errorf("Ctrl = %#x, want 0x80", p.Ctrl)
	}
	// $2008 mirrors $2000 via addr&7
	p.WriteRegister(0x2008, 0x10)
	if p.Ctrl != 0x10 {
		t.Errorf("mirrored write: Ctrl = %#x, want 0x10", p.Ctrl)
	}
}

func TestPPUDataReadIsBufferedExceptPalette(t *testing.T) {
	p := New(&fakeCartridge{})
	p.CIRAM[0] = 0x42
	p.WriteRegister(0x2006, 0x20) // high byte
	p.WriteRegister(0x2006, 0x00) // low byte -> addr=$2000
	first := p.ReadRegister(0x2007)
	if first == 0x42 {
		t.Error("first $2007 read: want stale buffer, not the fresh byte")
	}
	second := p.ReadRegister(0x2007)
	if second != 0x42 {
		t.Errorf("second $2007 read = %#x, want 0x42", second)
	}
}

func TestPPUDataAddrIncrementsByCtrlBit(t *testing.T) {
	p := New(&fakeCartridge{})
	p.WriteRegister(0x2000, 0x00) // increment by 1
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0xAA)
	if p.addr != 1 {
		t.Errorf("addr after +1 increment write = %#x, want 1", p.addr)
	}

	p.WriteRegister(0x2000, 0x04) // increment by 32
	p.WriteRegister(0x2007, 0xBB)
	if p.addr != 33 {
		t.Errorf("addr after +32 increment write = %#x, want 33", p.addr)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := New(&fakeCartridge{})
	p.WriteRegister(0x2006, 0x3F)
	p.WriteRegister(0x2006, 0x10)
	p.WriteRegister(0x2007, 0x55)
	if p.Palette[0] != 0x55 {
		t.Errorf("Palette[0] = %#x, want 0x55 ($3F10 mirrors $3F00)", p.Palette[0])
	}
}
