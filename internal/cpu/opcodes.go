package cpu

// execute dispatches one primary-table opcode. Families that repeat across
// a contiguous bit pattern (LD r,r'; INC/DEC r; the ALU A,op block) are
// decoded via reg8FromBits rather than spelled out 56+ times, per spec.md
// §9's preference for "a big pattern match" over an exhaustive literal
// table; opcodes with unique operand shapes are still one case each.
func (c *CPU) execute(op byte) {
	switch {
	case op == 0x76: // HALT sits inside the LD r,r' block's bit pattern
		c.halt()
		return
	case op >= 0x40 && op <= 0x7F: // LD r,r' / LD r,(HL) / LD (HL),r
		dst := reg8FromBits(op >> 3)
		src := reg8FromBits(op)
		c.ld8(dst, src)
		return
	case op >= 0x80 && op <= 0xBF: // ADD/ADC/SUB/SBC/AND/XOR/OR/CP A,op
		src := reg8FromBits(op)
		switch (op >> 3) & 7 {
		case 0:
			c.aluAdd(src)
		case 1:
			c.aluAdc(src)
		case 2:
			c.aluSub(src)
		case 3:
			c.aluSbc(src)
		case 4:
			c.aluAnd(src)
		case 5:
			c.aluXor(src)
		case 6:
			c.aluOr(src)
		case 7:
			c.aluCp(src)
		}
		return
	}

	switch op {
	case 0x00: // NOP
	case 0x10:
		c.stop()
	case 0xCB:
		c.executeCB(c.fetch8())

	// 8-bit immediate loads
	case 0x06:
		c.ld8(OpB, OpImm8)
	case 0x0E:
		c.ld8(OpC, OpImm8)
	case 0x16:
		c.ld8(OpD, OpImm8)
	case 0x1E:
		c.ld8(OpE, OpImm8)
	case 0x26:
		c.ld8(OpH, OpImm8)
	case 0x2E:
		c.ld8(OpL, OpImm8)
	case 0x36:
		c.ld8(OpIndHL, OpImm8)
	case 0x3E:
		c.ld8(OpA, OpImm8)

	// 16-bit immediate loads and LD (a16),SP
	case 0x01:
		c.ld16(OpBC, OpImm16)
	case 0x11:
		c.ld16(OpDE, OpImm16)
	case 0x21:
		c.ld16(OpHL, OpImm16)
	case 0x31:
		c.ld16(OpSP, OpImm16)
	case 0x08:
		c.ldAddrSP()

	// (BC)/(DE)/(HL+)/(HL-) <-> A
	case 0x02:
		c.ld8(OpIndBC, OpA)
	case 0x12:
		c.ld8(OpIndDE, OpA)
	case 0x0A:
		c.ld8(OpA, OpIndBC)
	case 0x1A:
		c.ld8(OpA, OpIndDE)
	case 0x22:
		c.ld8(OpIndHLInc, OpA)
	case 0x2A:
		c.ld8(OpA, OpIndHLInc)
	case 0x32:
		c.ld8(OpIndHLDec, OpA)
	case 0x3A:
		c.ld8(OpA, OpIndHLDec)

	// High-page loads
	case 0xE0:
		c.ld8(OpIndHighN, OpA)
	case 0xF0:
		c.ld8(OpA, OpIndHighN)
	case 0xE2:
		c.ld8(OpIndHighC, OpA)
	case 0xF2:
		c.ld8(OpA, OpIndHighC)
	case 0xEA:
		c.ld8(OpIndImm16, OpA)
	case 0xFA:
		c.ld8(OpA, OpIndImm16)

	// Rotates on A (force Z=0, unlike the CB page)
	case 0x07:
		c.rlc(OpAForced)
	case 0x0F:
		c.rrc(OpAForced)
	case 0x17:
		c.rl(OpAForced)
	case 0x1F:
		c.rr(OpAForced)

	case 0x27:
		c.daa()
	case 0x2F:
		c.cpl()
	case 0x37:
		c.scf()
	case 0x3F:
		c.ccf()

	// INC/DEC r8
	case 0x04:
		c.inc8(OpB)
	case 0x0C:
		c.inc8(OpC)
	case 0x14:
		c.inc8(OpD)
	case 0x1C:
		c.inc8(OpE)
	case 0x24:
		c.inc8(OpH)
	case 0x2C:
		c.inc8(OpL)
	case 0x34:
		c.inc8(OpIndHL)
	case 0x3C:
		c.inc8(OpA)
	case 0x05:
		c.dec8(OpB)
	case 0x0D:
		c.dec8(OpC)
	case 0x15:
		c.dec8(OpD)
	case 0x1D:
		c.dec8(OpE)
	case 0x25:
		c.dec8(OpH)
	case 0x2D:
		c.dec8(OpL)
	case 0x35:
		c.dec8(OpIndHL)
	case 0x3D:
		c.dec8(OpA)

	// 16-bit INC/DEC/ADD HL,rr
	case 0x03:
		c.inc16(OpBC)
	case 0x13:
		c.inc16(OpDE)
	case 0x23:
		c.inc16(OpHL)
	case 0x33:
		c.inc16(OpSP)
	case 0x0B:
		c.dec16(OpBC)
	case 0x1B:
		c.dec16(OpDE)
	case 0x2B:
		c.dec16(OpHL)
	case 0x3B:
		c.dec16(OpSP)
	case 0x09:
		c.addHL(OpBC)
	case 0x19:
		c.addHL(OpDE)
	case 0x29:
		c.addHL(OpHL)
	case 0x39:
		c.addHL(OpSP)

	// ALU A,n8
	case 0xC6:
		c.aluAdd(OpImm8)
	case 0xCE:
		c.aluAdc(OpImm8)
	case 0xD6:
		c.aluSub(OpImm8)
	case 0xDE:
		c.aluSbc(OpImm8)
	case 0xE6:
		c.aluAnd(OpImm8)
	case 0xEE:
		c.aluXor(OpImm8)
	case 0xF6:
		c.aluOr(OpImm8)
	case 0xFE:
		c.aluCp(OpImm8)

	// Jumps/branches
	case 0xC3:
		c.jp(CondAlways)
	case 0xE9:
		c.jpHL()
	case 0x18:
		c.jr(CondAlways)
	case 0x20:
		c.jr(CondNZ)
	case 0x28:
		c.jr(CondZ)
	case 0x30:
		c.jr(CondNC)
	case 0x38:
		c.jr(CondC)
	case 0xC2:
		c.jp(CondNZ)
	case 0xCA:
		c.jp(CondZ)
	case 0xD2:
		c.jp(CondNC)
	case 0xDA:
		c.jp(CondC)

	// CALL/RET/RETI/RST
	case 0xCD:
		c.call(CondAlways)
	case 0xC4:
		c.call(CondNZ)
	case 0xCC:
		c.call(CondZ)
	case 0xD4:
		c.call(CondNC)
	case 0xDC:
		c.call(CondC)
	case 0xC9:
		c.ret(CondAlways)
	case 0xC0:
		c.ret(CondNZ)
	case 0xC8:
		c.ret(CondZ)
	case 0xD0:
		c.ret(CondNC)
	case 0xD8:
		c.ret(CondC)
	case 0xD9:
		c.reti()
	case 0xC7:
		c.rst(0x00)
	case 0xCF:
		c.rst(0x08)
	case 0xD7:
		c.rst(0x10)
	case 0xDF:
		c.rst(0x18)
	case 0xE7:
		c.rst(0x20)
	case 0xEF:
		c.rst(0x28)
	case 0xF7:
		c.rst(0x30)
	case 0xFF:
		c.rst(0x38)

	// Stack / SP
	case 0xF5:
		c.push(OpAF)
	case 0xC5:
		c.push(OpBC)
	case 0xD5:
		c.push(OpDE)
	case 0xE5:
		c.push(OpHL)
	case 0xF1:
		c.pop(OpAF)
	case 0xC1:
		c.pop(OpBC)
	case 0xD1:
		c.pop(OpDE)
	case 0xE1:
		c.pop(OpHL)
	case 0xF9:
		c.ldSPHL()
	case 0xF8:
		c.ldHLSPOffset()
	case 0xE8:
		c.addSPOffset()

	case 0xF3:
		c.di()
	case 0xFB:
		c.ei()

	case 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD:
		panic(DecodeFatal{Opcode: op, PC: c.PC - 1})

	default:
		panic(DecodeFatal{Opcode: op, PC: c.PC - 1})
	}
}
