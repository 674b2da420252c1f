package cpu

// jp implements JP nn and JP cc,nn. Unconditional and taken-conditional
// both cost one internal M-cycle beyond the 16-bit immediate fetch; a
// not-taken condition skips it (spec.md §4.4).
func (c *CPU) jp(cond Cond) {
	addr := c.fetch16()
	if c.evalCond(cond) {
		c.PC = addr
		c.tick()
	}
}

// jpHL implements JP (HL): just a register copy, no extra M-cycle.
func (c *CPU) jpHL() { c.PC = c.getHL() }

// jr implements JR r8 and JR cc,r8, same taken/not-taken cycle shape as jp.
func (c *CPU) jr(cond Cond) {
	off := c.fetch8()
	if c.evalCond(cond) {
		c.PC = uint16(int32(c.PC) + int32(int8(off)))
		c.tick()
	}
}

// call implements CALL nn and CALL cc,nn. A taken call pays one internal
// M-cycle before the push (spec.md §4.4: "CALL adds one for the push
// setup"); a not-taken conditional call just discards the fetched address.
func (c *CPU) call(cond Cond) {
	addr := c.fetch16()
	if c.evalCond(cond) {
		c.tick()
		c.push16(c.PC)
		c.PC = addr
	}
}

// ret implements RET and RET cc. A conditional RET always pays one
// internal M-cycle to evaluate the condition; a taken RET (conditional or
// not) pays a further one after the pop (spec.md §4.4: "RET adds one for
// the pop itself plus one for taking").
func (c *CPU) ret(cond Cond) {
	if cond != CondAlways {
		c.tick()
	}
	if c.evalCond(cond) {
		c.PC = c.pop16()
		c.tick()
	}
}

// reti implements RETI: pops PC then sets IME=true (spec.md §4.4).
func (c *CPU) reti() {
	c.PC = c.pop16()
	c.tick()
	c.IME = true
}

// rst implements RST n: push PC, jump to the fixed vector.
func (c *CPU) rst(addr uint16) {
	c.tick()
	c.push16(c.PC)
	c.PC = addr
}

func (c *CPU) push(op Operand) {
	c.tick()
	c.push16(c.load16(op))
}

func (c *CPU) pop(op Operand) {
	c.store16(op, c.pop16())
}

// ei arms the delayed interrupt-enable; di is immediate (spec.md §4.4,
// SPEC_FULL.md open-question (b)).
func (c *CPU) ei() { c.eiPending = true }

func (c *CPU) di() {
	c.IME = false
	c.eiPending = false
}

func (c *CPU) halt() { c.halted = true }

// stop consumes the mandatory 0x00 second byte of the 0x10 0x00 pair and
// is otherwise a no-op (spec.md §4.4, Non-goal: STOP mode behavior). Any
// other second byte is an undefined 0x10-prefixed opcode (spec.md §7).
func (c *CPU) stop() {
	next := c.fetch8()
	if next != 0x00 {
		panic(DecodeFatal{Opcode: next, PC: c.PC - 1, Prefix: "0x10"})
	}
}
