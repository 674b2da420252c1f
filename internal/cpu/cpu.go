// Package cpu implements the SM83 instruction interpreter: fetch/decode/
// execute for the full primary and CB-prefixed opcode maps, flag
// computation, and the step loop that drives the bus's timer/serial/
// interrupt peripherals on CPU cycles.
package cpu

import (
	"github.com/jberkenbilt/gbcore/internal/bus"
	"github.com/jberkenbilt/gbcore/internal/trace"
)

// CPU holds SM83 register and control state. Registers are exposed as
// plain fields (the teacher's style); AF/BC/DE/HL pair access goes through
// getXX/setXX so the F-low-nibble-always-zero invariant (spec.md §3) is
// enforced in one place.
type CPU struct {
	A, F byte
	B, C byte
	D, E byte
	H, L byte

	SP uint16
	PC uint16

	IME       bool
	halted    bool
	eiPending bool // EI takes effect after the instruction following it

	mCycle     int    // M-cycles consumed by the instruction in progress
	sysCounter uint16 // monotonic T-cycle counter, wraps mod 2^16
	exeCounter uint64 // monotonic instruction count, for traces

	bus       *bus.Bus
	traceSink trace.Sink // spec.md §9: the CPU holds the trace capability directly
}

const (
	flagZ byte = 1 << 7
	flagN byte = 1 << 6
	flagH byte = 1 << 5
	flagC byte = 1 << 4
)

// New constructs a CPU wired to the given bus, with PC/SP at their
// post-boot-ROM-handoff defaults (spec.md §3: PC=0x0100, SP=0xFFFE).
func New(b *bus.Bus) *CPU {
	return &CPU{bus: b, PC: 0x0100, SP: 0xFFFE}
}

// Bus exposes the underlying bus, e.g. for tests or a host's trace loop.
func (c *CPU) Bus() *bus.Bus { return c.bus }

// SetPC overrides the program counter, used by tests and ROM-entry-point
// setup.
func (c *CPU) SetPC(pc uint16) { c.PC = pc }

// ExeCounter returns the number of instructions executed so far.
func (c *CPU) ExeCounter() uint64 { return c.exeCounter }

// SysCounter returns the monotonic T-cycle counter.
func (c *CPU) SysCounter() uint16 { return c.sysCounter }

// Halted reports whether the CPU is in the HALT state.
func (c *CPU) Halted() bool { return c.halted }

// SetTraceSink installs the pluggable trace sink of spec.md §9. A nil sink,
// the default, disables tracing entirely.
func (c *CPU) SetTraceSink(s trace.Sink) { c.traceSink = s }

func (c *CPU) setZNHC(z, n, h, cy bool) {
	var f byte
	if z {
		f |= flagZ
	}
	if n {
		f |= flagN
	}
	if h {
		f |= flagH
	}
	if cy {
		f |= flagC
	}
	c.F = f
}

func (c *CPU) getAF() uint16  { return uint16(c.A)<<8 | uint16(c.F&0xF0) }
func (c *CPU) setAF(v uint16) { c.A = byte(v >> 8); c.F = byte(v) & 0xF0 }
func (c *CPU) getBC() uint16  { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) setBC(v uint16) { c.B = byte(v >> 8); c.C = byte(v) }
func (c *CPU) getDE() uint16  { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) setDE(v uint16) { c.D = byte(v >> 8); c.E = byte(v) }
func (c *CPU) getHL() uint16  { return uint16(c.H)<<8 | uint16(c.L) }
func (c *CPU) setHL(v uint16) { c.H = byte(v >> 8); c.L = byte(v) }

// tick accounts one M-cycle: spec.md §4's "each access calls tick() once".
// It advances sys_counter by 4 T-cycles and runs the bus's peripherals
// (serial, timer) once per T-cycle, plus the HALT-clearing half of the
// interrupt controller (spec.md §4.6 step 1); full vector dispatch happens
// once per Step, not per tick, since it needs to push PC/clear IME.
func (c *CPU) tick() {
	c.mCycle++
	for i := 0; i < 4; i++ {
		c.sysCounter++
		c.bus.Tick()
		if c.bus.IE()&c.bus.IF() != 0 {
			c.halted = false
		}
	}
}

func (c *CPU) read8(addr uint16) byte {
	v := c.bus.Read(addr)
	c.tick()
	return v
}

func (c *CPU) write8(addr uint16, v byte) {
	c.bus.Write(addr, v)
	c.tick()
}

func (c *CPU) fetch8() byte {
	v := c.read8(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := uint16(c.fetch8())
	hi := uint16(c.fetch8())
	return lo | hi<<8
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := uint16(c.read8(addr))
	hi := uint16(c.read8(addr + 1))
	return lo | hi<<8
}

func (c *CPU) write16(addr uint16, v uint16) {
	c.write8(addr, byte(v))
	c.write8(addr+1, byte(v>>8))
}

func (c *CPU) push16(v uint16) {
	c.SP--
	c.write8(c.SP, byte(v>>8))
	c.SP--
	c.write8(c.SP, byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.read8(c.SP))
	c.SP++
	hi := uint16(c.read8(c.SP))
	c.SP++
	return lo | hi<<8
}

// Step executes exactly one instruction (or, if HALT is set, one idle
// M-cycle; or, if an interrupt is ready to dispatch, the dispatch itself)
// and returns the number of M-cycles it consumed.
func (c *CPU) Step() int {
	c.mCycle = 0

	if c.halted {
		c.tick()
		return c.mCycle
	}

	if c.IME && c.bus.IE()&c.bus.IF() != 0 {
		c.dispatchInterrupt()
		return c.mCycle
	}

	wasEIPending := c.eiPending
	c.eiPending = false

	op := c.fetch8()
	c.execute(op)
	c.exeCounter++

	if wasEIPending {
		c.IME = true
	}

	trace.WriteEntry(c.traceSink, c.traceEntry())

	return c.mCycle
}

// traceEntry snapshots the fields spec.md §6 requires a trace line to
// include.
func (c *CPU) traceEntry() trace.Entry {
	return trace.Entry{
		Index: c.exeCounter,
		PC:    c.PC,
		SP:    c.SP,
		Z:     c.F&flagZ != 0,
		N:     c.F&flagN != 0,
		H:     c.F&flagH != 0,
		C:     c.F&flagC != 0,
		A:     c.A,
		BC:    c.getBC(),
		DE:    c.getDE(),
		HL:    c.getHL(),
		IME:   c.IME,
		IF:    c.bus.IF(),
		IE:    c.bus.IE(),
		Halt:  c.halted,
	}
}
