package cpu

// Operand is the sum type spec.md §4.3/§9 calls for: a single pattern-
// matched type standing in for a register, register pair, immediate, or
// indirect addressing mode, so that instruction bodies (instr_*.go) and the
// dispatch tables (opcodes.go, cb.go) don't have to special-case "this
// opcode reads a register" vs "this opcode reads (HL)" vs "this opcode
// reads an immediate byte".
type Operand int

const (
	OpA Operand = iota
	OpF
	OpB
	OpC
	OpD
	OpE
	OpH
	OpL
	OpAForced // "_A": rotate-A variants (0x07/0x0F/0x17/0x1F) that force Z=0

	OpAF
	OpBC
	OpDE
	OpHL
	OpSP

	OpImm8  // N, fetched from the instruction stream
	OpImm16 // NN, fetched from the instruction stream

	OpIndBC    // (BC)
	OpIndDE    // (DE)
	OpIndHL    // (HL)
	OpIndHLInc // (HL+): HL incremented after the access
	OpIndHLDec // (HL-): HL decremented after the access
	OpIndImm16 // (NN)
	OpIndHighN // (FF00+N)
	OpIndHighC // (FF00+C)
)

// Cond is spec.md §4.3's "thin condition sub-type" for JP/JR/CALL/RET.
type Cond int

const (
	CondAlways Cond = iota
	CondZ
	CondNZ
	CondC
	CondNC
)

func (c *CPU) evalCond(cond Cond) bool {
	switch cond {
	case CondAlways:
		return true
	case CondZ:
		return c.F&flagZ != 0
	case CondNZ:
		return c.F&flagZ == 0
	case CondC:
		return c.F&flagC != 0
	case CondNC:
		return c.F&flagC == 0
	}
	panic(OperandMisuse{})
}

// load8 resolves a read from an 8-bit-capable operand. Passing a 16-bit-
// only or condition operand is OperandMisuse (spec.md §7): a programmer
// error that aborts rather than silently truncating.
func (c *CPU) load8(op Operand) byte {
	switch op {
	case OpA, OpAForced:
		return c.A
	case OpF:
		return c.F
	case OpB:
		return c.B
	case OpC:
		return c.C
	case OpD:
		return c.D
	case OpE:
		return c.E
	case OpH:
		return c.H
	case OpL:
		return c.L
	case OpImm8:
		return c.fetch8()
	case OpIndBC:
		return c.read8(c.getBC())
	case OpIndDE:
		return c.read8(c.getDE())
	case OpIndHL:
		return c.read8(c.getHL())
	case OpIndHLInc:
		hl := c.getHL()
		v := c.read8(hl)
		c.setHL(hl + 1)
		return v
	case OpIndHLDec:
		hl := c.getHL()
		v := c.read8(hl)
		c.setHL(hl - 1)
		return v
	case OpIndImm16:
		return c.read8(c.fetch16())
	case OpIndHighN:
		return c.read8(0xFF00 + uint16(c.fetch8()))
	case OpIndHighC:
		return c.read8(0xFF00 + uint16(c.C))
	}
	panic(OperandMisuse{Op: op})
}

// store8 resolves a write to an 8-bit-capable operand.
func (c *CPU) store8(op Operand, v byte) {
	switch op {
	case OpA, OpAForced:
		c.A = v
	case OpF:
		c.F = v & 0xF0
	case OpB:
		c.B = v
	case OpC:
		c.C = v
	case OpD:
		c.D = v
	case OpE:
		c.E = v
	case OpH:
		c.H = v
	case OpL:
		c.L = v
	case OpIndBC:
		c.write8(c.getBC(), v)
	case OpIndDE:
		c.write8(c.getDE(), v)
	case OpIndHL:
		c.write8(c.getHL(), v)
	case OpIndHLInc:
		hl := c.getHL()
		c.write8(hl, v)
		c.setHL(hl + 1)
	case OpIndHLDec:
		hl := c.getHL()
		c.write8(hl, v)
		c.setHL(hl - 1)
	case OpIndImm16:
		c.write8(c.fetch16(), v)
	case OpIndHighN:
		c.write8(0xFF00+uint16(c.fetch8()), v)
	case OpIndHighC:
		c.write8(0xFF00+uint16(c.C), v)
	default:
		panic(OperandMisuse{Op: op})
	}
}

// load16 resolves a read from a 16-bit-capable operand.
func (c *CPU) load16(op Operand) uint16 {
	switch op {
	case OpAF:
		return c.getAF()
	case OpBC:
		return c.getBC()
	case OpDE:
		return c.getDE()
	case OpHL:
		return c.getHL()
	case OpSP:
		return c.SP
	case OpImm16:
		return c.fetch16()
	}
	panic(OperandMisuse{Op: op})
}

// store16 resolves a write to a 16-bit-capable operand.
func (c *CPU) store16(op Operand, v uint16) {
	switch op {
	case OpAF:
		c.setAF(v)
	case OpBC:
		c.setBC(v)
	case OpDE:
		c.setDE(v)
	case OpHL:
		c.setHL(v)
	case OpSP:
		c.SP = v
	default:
		panic(OperandMisuse{Op: op})
	}
}

// reg8FromBits maps a 3-bit register-select field (as used by LD r,r' and
// the CB page) to an Operand: 0..5 = B,C,D,E,H,L; 6 = (HL); 7 = A.
func reg8FromBits(bits byte) Operand {
	switch bits & 7 {
	case 0:
		return OpB
	case 1:
		return OpC
	case 2:
		return OpD
	case 3:
		return OpE
	case 4:
		return OpH
	case 5:
		return OpL
	case 6:
		return OpIndHL
	default:
		return OpA
	}
}

// reg16FromBitsSP maps a 2-bit pair-select field to BC/DE/HL/SP, as used by
// the 16-bit LD/INC/DEC/ADD HL group.
func reg16FromBitsSP(bits byte) Operand {
	switch bits & 3 {
	case 0:
		return OpBC
	case 1:
		return OpDE
	case 2:
		return OpHL
	default:
		return OpSP
	}
}

// reg16FromBitsAF is reg16FromBitsSP with AF in place of SP, as used by
// PUSH/POP.
func reg16FromBitsAF(bits byte) Operand {
	switch bits & 3 {
	case 0:
		return OpBC
	case 1:
		return OpDE
	case 2:
		return OpHL
	default:
		return OpAF
	}
}

func condFromBits(bits byte) Cond {
	switch bits & 3 {
	case 0:
		return CondNZ
	case 1:
		return CondZ
	case 2:
		return CondNC
	default:
		return CondC
	}
}
