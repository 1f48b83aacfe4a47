package cpu

// Commonly-implemented illegal opcodes, observable in nestest. The
// "combined" ops apply the memory-side operation and the accumulator-side
// operation in the order given by their name (SLO = ASL then ORA, etc.),
// each updating flags independently as it completes.

func (c *CPU) slo(addr uint16) {
	v := c.read(addr)
	c.write(addr, v)
	v = c.doASL(v)
	c.write(addr, v)
	c.A |= v
	c.setZN(c.A)
}

func (c *CPU) rla(addr uint16) {
	v := c.read(addr)
	c.write(addr, v)
	v = c.doROL(v)
	c.write(addr, v)
	c.A &= v
	c.setZN(c.A)
}

func (c *CPU) sre(addr uint16) {
	v := c.read(addr)
	c.write(addr, v)
	v = c.doLSR(v)
	c.write(addr, v)
	c.A ^= v
	c.setZN(c.A)
}

func (c *CPU) rra(addr uint16) {
	v := c.read(addr)
	c.write(addr, v)
	v = c.doROR(v)
	c.write(addr, v)
	c.addWithCarry(v)
}

func (c *CPU) dcp(addr uint16) {
	v := c.read(addr)
	c.write(addr, v)
	v--
	c.write(addr, v)
	c.compare(c.A, v)
}

func (c *CPU) isc(addr uint16) {
	v := c.read(addr)
	c.write(addr, v)
	v++
	c.write(addr, v)
	c.addWithCarry(v ^ 0xFF)
}

// lax loads A and X from memory and sets N,Z from the value — a shortcut for
// LDA then TAX sharing one operand fetch.
func (c *CPU) lax(addr uint16) {
	v := c.read(addr)
	c.A = v
	c.X = v
	c.setZN(v)
}

// sax stores A&X; unlike STA/STX, no flags are affected.
func (c *CPU) sax(addr uint16) {
	c.write(addr, c.A&c.X)
}

// alr is AND #i then LSR A.
func (c *CPU) alr(addr uint16) {
	c.A &= c.read(addr)
	c.A = c.doLSR(c.A)
}

// anc is AND #i, then copies the result's sign bit into Carry.
func (c *CPU) anc(addr uint16) {
	c.A &= c.read(addr)
	c.setZN(c.A)
	if c.P&Negative != 0 {
		c.P |= Carry
	} else {
		c.P &^= Carry
	}
}

// arr is AND #i then ROR A, with C and V derived from bits 6 and 5 of the
// result rather than the usual rotate-carry rule.
func (c *CPU) arr(addr uint16) {
	c.A &= c.read(addr)
	c.A = c.doROR(c.A)
	bit6 := c.A>>6&1 != 0
	bit5 := c.A>>5&1 != 0
	if bit6 {
		c.P |= Carry
	} else {
		c.P &^= Carry
	}
	if bit6 != bit5 {
		c.P |= Overflow
	} else {
		c.P &^= Overflow
	}
}

// axs (SBX) sets X to (A&X) - M without borrow, updating N,Z,C as a compare.
func (c *CPU) axs(addr uint16) {
	m := c.read(addr)
	v := c.A & c.X
	r := v - m
	if v >= m {
		c.P |= Carry
	} else {
		c.P &^= Carry
	}
	c.X = r
	c.setZN(c.X)
}

// xaa (ANE) is highly unstable on real hardware; implemented as the commonly
// documented TXA-then-AND approximation.
func (c *CPU) xaa(addr uint16) {
	c.A = c.X
	c.A &= c.read(addr)
	c.setZN(c.A)
}

// las ANDs the stack pointer with the fetched value and loads the result
// into A, X, and S.
func (c *CPU) las(addr uint16) {
	v := c.read(addr) & c.S
	c.A, c.X, c.S = v, v, v
	c.setZN(v)
}

// ahx (SHA), tas (SHS), shx, shy store a value ANDed with the high byte of
// the target address plus one; their exact hardware behavior is unstable
// across chip revisions, so this core implements the commonly documented
// approximation rather than a bus-conflict-accurate one (out of scope per
// spec's "bus write conflicts" non-goal).
func (c *CPU) ahx(addr uint16) {
	c.write(addr, c.A&c.X&byte(addr>>8+1))
}

func (c *CPU) tas(addr uint16) {
	c.S = c.A & c.X
	c.write(addr, c.S&byte(addr>>8+1))
}

func (c *CPU) shx(addr uint16) {
	c.write(addr, c.X&byte(addr>>8+1))
}

func (c *CPU) shy(addr uint16) {
	c.write(addr, c.Y&byte(addr>>8+1))
}
