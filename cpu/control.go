package cpu

// This file holds register/pair decoding helpers, stack and
// control-flow kernels (CALL/RET/RST/PUSH/POP/XTHL/XCHG), and the port
// I/O, interrupt-enable and halt kernels. JMP, PCHL and SPHL are plain
// assignments to PC/SP done inline in execute (dispatch.go).

// getReg8 reads one of the eight 3 bit register codes: 000=B, 001=C,
// 010=D, 011=E, 100=H, 101=L, 110=M (memory at [HL]), 111=A.
func (c *CPU) getReg8(code uint8) uint8 {
	switch code & 0x07 {
	case 0:
		return c.B
	case 1:
		return c.C
	case 2:
		return c.D
	case 3:
		return c.E
	case 4:
		return c.H
	case 5:
		return c.L
	case 6:
		return c.HLMem()
	default:
		return c.A
	}
}

// setReg8 writes one of the eight 3 bit register codes; see getReg8.
func (c *CPU) setReg8(code uint8, v uint8) {
	switch code & 0x07 {
	case 0:
		c.B = v
	case 1:
		c.C = v
	case 2:
		c.D = v
	case 3:
		c.E = v
	case 4:
		c.H = v
	case 5:
		c.L = v
	case 6:
		c.SetHLMem(v)
	default:
		c.A = v
	}
}

// regPtr returns a direct pointer for register codes that name a plain
// register (not M), for use by INR/DCR which mutate in place. Callers
// must special-case code==6 (M) themselves.
func (c *CPU) regPtr(code uint8) *uint8 {
	switch code & 0x07 {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	default:
		return &c.A
	}
}

// getPair reads one of the four 2 bit register-pair codes in the
// LXI/DAD/INX/DCX encoding: 00=BC, 01=DE, 10=HL, 11=SP.
func (c *CPU) getPair(code uint8) uint16 {
	switch code & 0x03 {
	case 0:
		return c.BC()
	case 1:
		return c.DE()
	case 2:
		return c.HL()
	default:
		return c.SP
	}
}

// setPair writes one of the four 2 bit register-pair codes; see getPair.
func (c *CPU) setPair(code uint8, v uint16) {
	switch code & 0x03 {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SP = v
	}
}

// condition evaluates one of the eight 3 bit condition codes used by
// Jcc/Ccc/Rcc: 000=NZ, 001=Z, 010=NC, 011=C, 100=PO, 101=PE, 110=P(lain,
// sign clear), 111=M(inus, sign set).
func (c *CPU) condition(code uint8) bool {
	switch code & 0x07 {
	case 0:
		return c.F&FlagZ == 0
	case 1:
		return c.F&FlagZ != 0
	case 2:
		return c.F&FlagC == 0
	case 3:
		return c.F&FlagC != 0
	case 4:
		return c.F&FlagP == 0
	case 5:
		return c.F&FlagP != 0
	case 6:
		return c.F&FlagS == 0
	default:
		return c.F&FlagS != 0
	}
}

// push stores a 16 bit value below SP, predecrementing first.
func (c *CPU) push(v uint16) {
	c.SP -= 2
	c.write16(c.SP, v)
}

// pop loads a 16 bit value from [SP], postincrementing after.
func (c *CPU) pop() uint16 {
	v := c.read16(c.SP)
	c.SP += 2
	return v
}

// call pushes the return address (current PC, already past the
// instruction) and jumps to addr.
func (c *CPU) call(addr uint16) {
	c.push(c.PC)
	c.PC = addr
}

// ret pops the return address into PC.
func (c *CPU) ret() {
	c.PC = c.pop()
}

// rst is CALL to the fixed address n*8.
func (c *CPU) rst(n uint8) {
	c.call(uint16(n&0x07) * 8)
}

// xchg swaps DE and HL.
func (c *CPU) xchg() {
	de, hl := c.DE(), c.HL()
	c.SetDE(hl)
	c.SetHL(de)
}

// xthl swaps HL with the 16 bit value at [SP].
func (c *CPU) xthl() {
	top := c.SPMem()
	c.SetSPMem(c.HL())
	c.SetHL(top)
}

// inPort reads one byte from the port bus; an unbound reader yields 0.
func (c *CPU) inPort(p uint8) uint8 {
	if c.in == nil {
		return 0
	}
	return c.in.In(p)
}

// outPort writes one byte to the port bus; an unbound writer discards it.
func (c *CPU) outPort(p uint8, v uint8) {
	if c.out == nil {
		return
	}
	c.out.Out(p, v)
}

// di clears the interrupt-master-enable flag.
func (c *CPU) di() {
	c.ime = false
}

// ei sets the interrupt-master-enable flag.
func (c *CPU) ei() {
	c.ime = true
}

// hlt halts the CPU; only a serviced interrupt resumes it.
func (c *CPU) hlt() {
	c.halted = true
}
