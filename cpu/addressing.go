package cpu

// addressingMode names the thirteen 6502 addressing modes. The cycle cost of
// each is entirely a function of how many bus accesses resolveAddress makes
// for it — there is no separate cycle table; every dummy read or write below
// is an explicit elapse(1) via the bus, exactly as many as a real 6502 spends
// deciding where the operand lives.
type addressingMode int

const (
	accumulator addressingMode = iota
	implied
	immediate
	zeroPage
	zeroPageX
	zeroPageY
	absolute
	absoluteX
	absoluteY
	relative
	indirect
	indexedIndirect // (zp,X)
	indirectIndexed // (zp),Y
)

// instructionKind distinguishes how an addressing mode charges its indexed
// forms: read instructions only pay the page-cross penalty when a carry
// actually occurs; write and read-modify-write instructions always pay it,
// because the CPU cannot know the carry didn't happen until after issuing
// the dummy read.
type instructionKind int

const (
	kindRead instructionKind = iota
	kindWrite
	kindReadModifyWrite
	kindOther // branches, stack ops, JMP/JSR/RTS/RTI, implied-operand ops
)

// resolveAddress consumes the operand bytes (and any dummy reads) for inst's
// addressing mode, leaving PC past the instruction and returning the
// effective address. Immediate mode returns the operand's own address so
// callers read it with the normal bus path, keeping every operand fetch a
// real, cycle-charged bus access.
func (c *CPU) resolveAddress(mode addressingMode, kind instructionKind) uint16 {
	switch mode {
	case accumulator, implied:
		c.read(c.PC)
		return 0

	case immediate:
		addr := c.PC
		c.PC++
		return addr

	case zeroPage:
		addr := c.read(c.PC)
		c.PC++
		return uint16(addr)

	case zeroPageX:
		addr := c.read(c.PC)
		c.PC++
		c.read(uint16(addr))
		return uint16(addr + c.X)

	case zeroPageY:
		addr := c.read(c.PC)
		c.PC++
		c.read(uint16(addr))
		return uint16(addr + c.Y)

	case absolute:
		lo := c.read(c.PC)
		c.PC++
		hi := c.read(c.PC)
		c.PC++
		return uint16(hi)<<8 | uint16(lo)

	case absoluteX:
		return c.resolveIndexedAbsolute(c.X, kind)

	case absoluteY:
		return c.resolveIndexedAbsolute(c.Y, kind)

	case relative:
		offset := c.read(c.PC)
		c.PC++
		return c.PC + uint16(int8(offset))

	case indirect:
		loPtr := c.read(c.PC)
		c.PC++
		hiPtr := c.read(c.PC)
		c.PC++
		ptr := uint16(hiPtr)<<8 | uint16(loPtr)
		lo := c.read(ptr)
		// Reproduces the page-wrap bug: the high byte comes from
		// (ptr & $FF00) | ((ptr+1) & $FF), never crossing into the next page.
		hi := c.read(ptr&0xFF00 | (ptr+1)&0x00FF)
		return uint16(hi)<<8 | uint16(lo)

	case indexedIndirect:
		ptr := c.read(c.PC)
		c.PC++
		c.read(uint16(ptr))
		ptr += c.X
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr + 1))
		return uint16(hi)<<8 | uint16(lo)

	case indirectIndexed:
		ptr := c.read(c.PC)
		c.PC++
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr + 1))
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		crossed := lo+c.Y < lo
		if kind == kindRead {
			if crossed {
				c.read(base&0xFF00 | addr&0x00FF)
			}
		} else {
			c.read(base&0xFF00 | addr&0x00FF)
		}
		return addr
	}
	return 0
}

func (c *CPU) resolveIndexedAbsolute(index byte, kind instructionKind) uint16 {
	lo := c.read(c.PC)
	c.PC++
	hi := c.read(c.PC)
	c.PC++
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(index)
	crossed := lo+index < lo
	if kind == kindRead {
		if crossed {
			c.read(base&0xFF00 | addr&0x00FF)
		}
	} else {
		c.read(base&0xFF00 | addr&0x00FF)
	}
	return addr
}
