// Package trace formats per-instruction CPU state into nestest.log-compatible
// lines, for diffing an emulator run against the reference trace or simply
// watching a ROM execute.
package trace

import (
	"fmt"
	"io"
	"strings"

	"github.com/nescore/nescore/cpu"
)

// State is the register/PPU snapshot trace needs for one line, captured
// before the instruction at PC runs.
type State struct {
	PC           uint16
	A, X, Y, S   byte
	P            byte
	PPUDot       int
	PPUScanLine  int
	CyclesElapsed uint64
}

// Writer emits one formatted line per call to Line.
type Writer struct {
	out  io.Writer
	peek func(uint16) byte
}

// New wraps out, using peek (a side-effect-free memory read, typically
// bus.Bus.Peek) to disassemble the instruction at each State's PC.
func New(out io.Writer, peek func(uint16) byte) *Writer {
	return &Writer{out: out, peek: peek}
}

// Line writes one instruction's trace line in the format:
//
//	C000  4C F5 C5  JMP $C5F5    A:00 X:00 Y:00 P:24 SP:FD PPU: 21,  0 CYC:7
//
// The PPU column is dot, then scanline.
func (w *Writer) Line(s State) error {
	d := cpu.Disassemble(w.peek, s.PC)

	var b strings.Builder
	fmt.Fprintf(&b, "%04X  ", d.PC)

	for i := 0; i < 3; i++ {
		if i < len(d.Bytes) {
			fmt.Fprintf(&b, "%02X ", d.Bytes[i])
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteString(" ")
	b.WriteString(d.Text)

	for b.Len() < 48 {
		b.WriteByte(' ')
	}

	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d\n",
		s.A, s.X, s.Y, s.P, s.S, s.PPUDot, s.PPUScanLine, s.CyclesElapsed)

	_, err := io.WriteString(w.out, b.String())
	return err
}
