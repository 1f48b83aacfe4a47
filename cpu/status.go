package cpu

// Status holds the 6502 processor status flags. Bit 4 (Break) is never held
// in the live register: it is set in the byte pushed by PHP/BRK, clear in the
// byte pushed for IRQ/NMI, and cleared again when PLP/RTI pull P. Bit 5
// (Unused) is held set from power-on and forced set on every pull.
type Status byte

const (
	// Carry. After ADC, the carry out of bit 7. After SBC/CMP, set when no
	// borrow occurred (R >= M). After a shift/rotate, the bit shifted out.
	Carry Status = 1 << iota

	// Zero is set when an instruction's result is zero.
	Zero

	// InterruptDisable inhibits IRQ (not NMI) while set.
	InterruptDisable

	// Decimal has no effect on the 2A03; settable but ignored by arithmetic.
	Decimal

	// Break distinguishes a PHP/BRK push (1) from a hardware IRQ/NMI push (0).
	Break

	// Unused always reads 1 in a pushed byte.
	Unused

	// Overflow is set by ADC/SBC when the signed result is invalid, and
	// loaded from bit 6 of the operand by BIT.
	Overflow

	// Negative mirrors bit 7 of the most recent result (or of the operand,
	// for BIT).
	Negative
)
