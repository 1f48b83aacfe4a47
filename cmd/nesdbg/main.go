// Command nesdbg is an interactive single-step debugger for a ROM, built the
// way hejops/gone's bubbletea debugger drives its 6502 core: space/j steps
// one instruction, the view redraws registers, flags, a page of RAM, and the
// next instruction's disassembly after every step.
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/nescore/nescore/cartridge"
	"github.com/nescore/nescore/cpu"
	"github.com/nescore/nescore/ines"
	"github.com/nescore/nescore/nes"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: nesdbg <rom-path>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rom, err := ines.Parse(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mapper, err := cartridge.New(rom)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	emu := nes.New(mapper, nil)

	if _, err := tea.NewProgram(model{emu: emu}).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type model struct {
	emu    *nes.Emulator
	prevPC uint16
	jammed error
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ", "j":
		if m.jammed != nil {
			return m, nil
		}
		m.prevPC = m.emu.CPU.PC
		if _, err := m.emu.Step(); err != nil {
			if errors.Is(err, cpu.ErrJammed) {
				m.jammed = err
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.ramPage(),
		"",
		m.status(),
		"",
		m.disasm(),
		"",
		"space/j: step    q: quit",
	)
}

// ramPage renders the 16-byte page containing PC, with the current byte
// bracketed, reading through Peek so the display never perturbs timing.
func (m model) ramPage() string {
	pc := m.emu.CPU.PC
	start := pc &^ 0x0F
	s := fmt.Sprintf("%04X | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		v := m.emu.Bus.Peek(addr)
		if addr == pc {
			s += fmt.Sprintf("[%02X] ", v)
		} else {
			s += fmt.Sprintf(" %02X  ", v)
		}
	}
	return s
}

func (m model) status() string {
	c := m.emu.CPU
	flags := ""
	for _, bit := range []cpu.Status{cpu.Negative, cpu.Overflow, cpu.Unused, cpu.Break, cpu.Decimal, cpu.InterruptDisable, cpu.Zero, cpu.Carry} {
		if c.P&bit != 0 {
			flags += "1 "
		} else {
			flags += "0 "
		}
	}
	jam := ""
	if m.jammed != nil {
		jam = fmt.Sprintf("\nJAMMED: %v", m.jammed)
	}
	return fmt.Sprintf("PC: %04X (prev %04X)\nA: %02X  X: %02X  Y: %02X  S: %02X\nCYC: %d\nN V U B D I Z C\n%s%s",
		c.PC, m.prevPC, c.A, c.X, c.Y, c.S, m.emu.CyclesElapsed(), flags, jam)
}

func (m model) disasm() string {
	d := cpu.Disassemble(m.emu.Bus.Peek, m.emu.CPU.PC)
	return spew.Sprintf("next: %04X  %s", d.PC, d.Text)
}
