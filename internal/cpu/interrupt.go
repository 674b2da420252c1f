package cpu

// interruptVectors gives each interrupt bit's dispatch target, in priority
// order (spec.md §4.6): 0=VBlank, 1=LCD STAT, 2=Timer, 3=Serial, 4=Joypad.
var interruptVectors = [5]uint16{0x40, 0x48, 0x50, 0x58, 0x60}

// dispatchInterrupt services the lowest-index pending, enabled interrupt:
// clear its IF bit, clear IME, clear HALT, push PC, jump to its vector, and
// consume 3 M-cycles (spec.md §4.6 step 2, scenario 5).
func (c *CPU) dispatchInterrupt() {
	pending := c.bus.IE() & c.bus.IF()
	var bit uint
	for bit = 0; bit < 5; bit++ {
		if pending&(1<<bit) != 0 {
			break
		}
	}

	c.bus.ClearIF(bit)
	c.IME = false
	c.halted = false
	c.push16(c.PC)
	c.PC = interruptVectors[bit]
	c.tick() // the 3rd M-cycle: push16 already consumed two via write8 x2
}
