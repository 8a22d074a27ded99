package cpu

// execute decodes and runs exactly one instruction byte, including its
// trailing immediate/address bytes and documented undocumented aliases.
// It is a total function over 0x00-0xFF: for the two large regular
// blocks (MOV and the register ALU forms) coverage falls through to a
// final range check rather than 64 literal cases apiece, since both
// blocks decode their operands identically regardless of which
// instruction in the block fired.
func (c *CPU) execute(op uint8) {
	switch op {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		// NOP and its undocumented aliases.

	case 0x07:
		c.rlc()
	case 0x0F:
		c.rrc()
	case 0x17:
		c.ral()
	case 0x1F:
		c.rar()
	case 0x27:
		c.daa()
	case 0x2F:
		c.cma()
	case 0x37:
		c.stc()
	case 0x3F:
		c.cmc()

	case 0x01, 0x11, 0x21, 0x31:
		c.setPair((op>>4)&0x03, c.fetch16())
	case 0x09, 0x19, 0x29, 0x39:
		c.dad(c.getPair((op >> 4) & 0x03))
	case 0x03, 0x13, 0x23, 0x33:
		rp := (op >> 4) & 0x03
		c.setPair(rp, c.getPair(rp)+1)
	case 0x0B, 0x1B, 0x2B, 0x3B:
		rp := (op >> 4) & 0x03
		c.setPair(rp, c.getPair(rp)-1)

	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		c.inrCode((op >> 3) & 0x07)
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		c.dcrCode((op >> 3) & 0x07)
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E:
		c.setReg8((op>>3)&0x07, c.fetch8())

	case 0x02:
		c.write8(c.BC(), c.A)
	case 0x12:
		c.write8(c.DE(), c.A)
	case 0x0A:
		c.A = c.read8(c.BC())
	case 0x1A:
		c.A = c.read8(c.DE())
	case 0x22:
		c.write16(c.fetch16(), c.HL())
	case 0x2A:
		c.SetHL(c.read16(c.fetch16()))
	case 0x32:
		c.write8(c.fetch16(), c.A)
	case 0x3A:
		c.A = c.read8(c.fetch16())

	case 0x76:
		c.hlt()

	case 0xC3, 0xCB:
		c.PC = c.fetch16()
	case 0xC9, 0xD9:
		c.ret()
	case 0xCD, 0xDD, 0xED, 0xFD:
		c.call(c.fetch16())

	case 0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8:
		if c.condition((op >> 3) & 0x07) {
			c.ret()
		}
	case 0xC1, 0xD1, 0xE1, 0xF1:
		c.popCode((op >> 4) & 0x03)
	case 0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA:
		addr := c.fetch16()
		if c.condition((op >> 3) & 0x07) {
			c.PC = addr
		}
	case 0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC:
		addr := c.fetch16()
		if c.condition((op >> 3) & 0x07) {
			c.call(addr)
		}
	case 0xC5, 0xD5, 0xE5, 0xF5:
		c.pushCode((op >> 4) & 0x03)
	case 0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE:
		c.aluImm((op>>3)&0x07, c.fetch8())
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		c.rst((op >> 3) & 0x07)

	case 0xD3:
		c.outPort(c.fetch8(), c.A)
	case 0xDB:
		c.A = c.inPort(c.fetch8())
	case 0xE3:
		c.xthl()
	case 0xEB:
		c.xchg()
	case 0xF3:
		c.di()
	case 0xFB:
		c.ei()
	case 0xE9:
		c.PC = c.HL()
	case 0xF9:
		c.SP = c.HL()

	default:
		switch {
		case op >= 0x40 && op <= 0x7F:
			dst, src := (op>>3)&0x07, op&0x07
			c.setReg8(dst, c.getReg8(src))
		case op >= 0x80 && op <= 0xBF:
			c.aluReg((op>>3)&0x07, c.getReg8(op&0x07))
		default:
			panic(InvalidCPUState{Reason: "unreachable opcode"})
		}
	}
}

// inrCode runs INR against a 3 bit register code, routing M (HL memory)
// through the read-modify-write path since inr needs a *uint8.
func (c *CPU) inrCode(code uint8) {
	if code == 6 {
		v := c.HLMem()
		c.inr(&v)
		c.SetHLMem(v)
		return
	}
	c.inr(c.regPtr(code))
}

// dcrCode is the DCR counterpart of inrCode.
func (c *CPU) dcrCode(code uint8) {
	if code == 6 {
		v := c.HLMem()
		c.dcr(&v)
		c.SetHLMem(v)
		return
	}
	c.dcr(c.regPtr(code))
}

// aluReg dispatches one of the eight register-form ALU ops (ADD, ADC,
// SUB, SBB, ANA, XRA, ORA, CMP) against an already-fetched operand.
func (c *CPU) aluReg(op uint8, v uint8) {
	switch op {
	case 0:
		c.add(v, 0)
	case 1:
		c.add(v, c.F&FlagC)
	case 2:
		c.sub(v, 0)
	case 3:
		c.sub(v, c.F&FlagC)
	case 4:
		c.and(v)
	case 5:
		c.xor(v)
	case 6:
		c.or(v)
	case 7:
		c.cmp(v)
	}
}

// aluImm is the immediate-operand counterpart of aluReg (ADI, ACI, SUI,
// SBI, ANI, XRI, ORI, CPI).
func (c *CPU) aluImm(op uint8, v uint8) {
	c.aluReg(op, v)
}

// popCode pops into one of BC/DE/HL/PSW per the 2 bit PUSH/POP encoding
// (00=BC, 01=DE, 10=HL, 11=PSW).
func (c *CPU) popCode(code uint8) {
	v := c.pop()
	switch code & 0x03 {
	case 0:
		c.SetBC(v)
	case 1:
		c.SetDE(v)
	case 2:
		c.SetHL(v)
	default:
		c.SetPSW(v)
	}
}

// pushCode is the PUSH counterpart of popCode.
func (c *CPU) pushCode(code uint8) {
	var v uint16
	switch code & 0x03 {
	case 0:
		v = c.BC()
	case 1:
		v = c.DE()
	case 2:
		v = c.HL()
	default:
		v = c.PSW()
	}
	c.push(v)
}
