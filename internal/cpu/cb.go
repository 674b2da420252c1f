package cpu

// executeCB dispatches the 256-entry CB-prefixed page: rotate/shift/swap
// (bits 7-6 = 00), BIT (01), RES (10), SET (11), each over all eight
// operand slots selected by the low 3 bits (spec.md §4.4).
func (c *CPU) executeCB(op byte) {
	slot := reg8FromBits(op)
	n := uint((op >> 3) & 7)

	switch (op >> 6) & 3 {
	case 0:
		switch n {
		case 0:
			c.rlc(slot)
		case 1:
			c.rrc(slot)
		case 2:
			c.rl(slot)
		case 3:
			c.rr(slot)
		case 4:
			c.sla(slot)
		case 5:
			c.sra(slot)
		case 6:
			c.swap(slot)
		case 7:
			c.srl(slot)
		}
	case 1:
		c.bit(n, slot)
	case 2:
		c.res(n, slot)
	case 3:
		c.set(n, slot)
	}
}
