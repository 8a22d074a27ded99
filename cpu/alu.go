package cpu

// This file holds the arithmetic, logic, rotate, and DAA kernels: the
// pure register-transform half of the instruction set, independent of
// how an opcode byte decodes into a call here.

// add implements ADD (cin=0) and ADC (cin=current carry).
func (c *CPU) add(v, cin uint8) {
	carry := carryAdd(c.A, v, cin)
	ac := auxCarryAdd(c.A, v, cin)
	c.A = c.A + v + cin
	c.setArithFlags(carry, ac)
}

// subWithBorrow implements SUB (borrowIn=0) and SBB (borrowIn=current
// carry) via two's complement: A + ^v + (1-borrowIn). It returns the
// computed result along with the carry (borrow-sense) and aux-carry
// bits without touching A, so CMP can reuse it without mutating the
// accumulator.
func (c *CPU) subWithBorrow(v, borrowIn uint8) (result uint8, carry, ac bool) {
	notv := ^v
	compCin := uint8(1) - borrowIn
	ac = auxCarryAdd(c.A, notv, compCin)
	carry = !carryAdd(c.A, notv, compCin)
	result = c.A + notv + compCin
	return result, carry, ac
}

// setArithFlags assembles F from a precomputed carry/aux-carry pair and
// the S/Z/P bits of the (already updated) accumulator.
func (c *CPU) setArithFlags(carry, ac bool) {
	c.F = szpTable[c.A] | fixedOnMask
	if carry {
		c.F |= FlagC
	}
	if ac {
		c.F |= FlagAC
	}
}

// sub performs SUB/SBB: A := A - v - borrowIn, flags set from the result.
func (c *CPU) sub(v, borrowIn uint8) {
	result, carry, ac := c.subWithBorrow(v, borrowIn)
	c.A = result
	c.setArithFlags(carry, ac)
}

// cmp performs CMP: flags as if A-v were computed, A left untouched.
func (c *CPU) cmp(v uint8) {
	result, carry, ac := c.subWithBorrow(v, 0)
	c.F = szpTable[result] | fixedOnMask
	if carry {
		c.F |= FlagC
	}
	if ac {
		c.F |= FlagAC
	}
}

// and performs ANA: A &= v. AC is set from the OR of the original
// operands' bit 3, matching real 8080 behavior (a side effect of the
// way the ALU computes auxiliary carry for logical AND). C is cleared.
func (c *CPU) and(v uint8) {
	orig := c.A
	ac := (orig|v)&0x08 != 0
	c.A = orig & v
	c.F = szpTable[c.A] | fixedOnMask
	if ac {
		c.F |= FlagAC
	}
}

// or performs ORA: A |= v. C and AC are cleared.
func (c *CPU) or(v uint8) {
	c.A |= v
	c.F = szpTable[c.A] | fixedOnMask
}

// xor performs XRA: A ^= v. C and AC are cleared.
func (c *CPU) xor(v uint8) {
	c.A ^= v
	c.F = szpTable[c.A] | fixedOnMask
}

// inr performs INR on the byte *r in place. Only S, Z, P, and AC change;
// C is left untouched.
func (c *CPU) inr(r *uint8) {
	old := *r
	*r = old + 1
	ac := old&0x0F == 0x0F
	c.F = (c.F & FlagC) | szpTable[*r] | fixedOnMask
	if ac {
		c.F |= FlagAC
	}
}

// dcr performs DCR on the byte *r in place. Only S, Z, P, and AC change;
// C is left untouched. AC reflects "no borrow from bit 4" per 8080
// semantics: set whenever the low nibble was nonzero before the
// decrement.
func (c *CPU) dcr(r *uint8) {
	old := *r
	*r = old - 1
	ac := old&0x0F != 0x00
	c.F = (c.F & FlagC) | szpTable[*r] | fixedOnMask
	if ac {
		c.F |= FlagAC
	}
}

// dad adds a 16 bit register pair into HL. Only C changes.
func (c *CPU) dad(v uint16) {
	sum := uint32(c.HL()) + uint32(v)
	c.SetHL(uint16(sum))
	c.F = (c.F &^ FlagC) | fixedOnMask
	if sum > 0xFFFF {
		c.F |= FlagC
	}
}

// rlc rotates A left: new bit0 := old bit7, C := old bit7.
func (c *CPU) rlc() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.F = (c.F &^ FlagC) | fixedOnMask
	if carry {
		c.F |= FlagC
	}
}

// rrc rotates A right: new bit7 := old bit0, C := old bit0.
func (c *CPU) rrc() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.F = (c.F &^ FlagC) | fixedOnMask
	if carry {
		c.F |= FlagC
	}
}

// ral rotates A left through carry: new bit0 := old C, C := old bit7.
func (c *CPU) ral() {
	oldC := c.F & FlagC
	newC := c.A&0x80 != 0
	c.A = c.A<<1 | oldC
	c.F = (c.F &^ FlagC) | fixedOnMask
	if newC {
		c.F |= FlagC
	}
}

// rar rotates A right through carry: new bit7 := old C, C := old bit0.
func (c *CPU) rar() {
	oldC := c.F & FlagC
	newC := c.A&0x01 != 0
	c.A = c.A>>1 | oldC<<7
	c.F = (c.F &^ FlagC) | fixedOnMask
	if newC {
		c.F |= FlagC
	}
}

// cma complements A. No flags affected.
func (c *CPU) cma() {
	c.A = ^c.A
}

// stc sets the carry flag unconditionally.
func (c *CPU) stc() {
	c.F = c.F | FlagC | fixedOnMask
}

// cmc complements the carry flag.
func (c *CPU) cmc() {
	c.F = (c.F ^ FlagC) | fixedOnMask
}

// daa performs decimal adjust on A after a BCD addition: first the low
// nibble is corrected if it exceeds 9 or AC is set, then the high
// nibble is corrected (measured after the low-nibble step) if it
// exceeds 9 or C is set. C, once set by this process, is never cleared.
func (c *CPU) daa() {
	a := c.A
	cy := c.F&FlagC != 0
	ac := c.F&FlagAC != 0

	var add uint8
	newAC := false
	if a&0x0F > 9 || ac {
		add = 0x06
		if a&0x0F+0x06 > 0x0F {
			newAC = true
		}
	}

	afterLow := a + add
	newC := cy
	if afterLow>>4&0x0F > 9 || cy {
		add |= 0x60
	}

	sum := uint16(a) + uint16(add)
	if sum > 0xFF {
		newC = true
	}
	c.A = uint8(sum)

	c.F = szpTable[c.A] | fixedOnMask
	if newC {
		c.F |= FlagC
	}
	if newAC {
		c.F |= FlagAC
	}
}
