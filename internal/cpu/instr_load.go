package cpu

// ld8 implements the LD dst,src family across every Operand combination:
// register-to-register, immediate loads, and all the indirect addressing
// modes. (HL+)/(HL-) mutate HL after the access per spec.md §4.3.
func (c *CPU) ld8(dst, src Operand) {
	c.store8(dst, c.load8(src))
}

func (c *CPU) ld16(dst, src Operand) {
	c.store16(dst, c.load16(src))
}

// ldSPHL implements LD SP,HL: a register-to-register 16-bit move with one
// internal M-cycle beyond the opcode fetch, and no flag effects.
func (c *CPU) ldSPHL() {
	c.SP = c.getHL()
	c.tick()
}

// ldHLSPOffset implements LD HL,SP+r8: flags from add16Signed8 per
// spec.md §4.1, Z=0, N=0, one internal M-cycle beyond the immediate fetch.
func (c *CPU) ldHLSPOffset() {
	off := c.fetch8()
	r, cy, h := add16Signed8(c.SP, off)
	c.setHL(r)
	c.setZNHC(false, false, h, cy)
	c.tick()
}

// addSPOffset implements ADD SP,r8: same flag rule as ldHLSPOffset, but
// costs two internal M-cycles beyond the immediate fetch (spec.md §4.4).
func (c *CPU) addSPOffset() {
	off := c.fetch8()
	r, cy, h := add16Signed8(c.SP, off)
	c.SP = r
	c.setZNHC(false, false, h, cy)
	c.tick()
	c.tick()
}

// ldAddrSP implements LD (a16),SP.
func (c *CPU) ldAddrSP() {
	addr := c.fetch16()
	c.write16(addr, c.SP)
}
