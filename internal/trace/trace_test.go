package trace_test

import (
	"strings"
	"testing"

	"github.com/nescore/nescore/internal/trace"
)

func TestLineFormatsKnownInstruction(t *testing.T) {
	mem := make([]byte, 65536)
	mem[0xC000] = 0x4C // JMP $C5F5
	mem[0xC001] = 0xF5
	mem[0xC002] = 0xC5
	peek := func(addr uint16) byte { return mem[addr] }

	var out strings.Builder
	w := trace.New(&out, peek)
	err := w.Line(trace.State{
		PC: 0xC000, A: 0x00, X: 0x00, Y: 0x00, S: 0xFD, P: 0x24,
		PPUDot: 21, PPUScanLine: 0, CyclesElapsed: 7,
	})
	if err != nil {
		t.Fatalf("Line: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "C000  4C F5 C5  JMP $C5F5") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, "A:00 X:00 Y:00 P:24 SP:FD PPU: 21,  0 CYC:7") {
		t.Fatalf("unexpected register tail: %q", got)
	}
}

func TestLineMarksIllegalOpcodes(t *testing.T) {
	mem := make([]byte, 65536)
	mem[0x0200] = 0xA7 // LAX zero page (illegal)
	mem[0x0201] = 0x10
	peek := func(addr uint16) byte { return mem[addr] }

	var out strings.Builder
	w := trace.New(&out, peek)
	w.Line(trace.State{PC: 0x0200})

	if !strings.Contains(out.String(), "*LAX $10") {
		t.Fatalf("expected illegal-opcode marker, got %q", out.String())
	}
}
