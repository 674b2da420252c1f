package cart

// MBC5 is an extension-point stub (spec.md §9's design note calls out
// MBC2/3/5 as polymorphism extension points; spec.md itself only requires
// cartridge types 0x00-0x03/0x08/0x09, which are ROM-only and MBC1). It has
// the wider 9-bit ROM bank register and 4-bit RAM select real MBC5 hardware
// has, banked the same derived-offset way as MBC1. Unlike MBC1/MBC3, MBC5
// does not coerce bank 0 up to 1: real MBC5 hardware maps bank 0 into the
// switchable window exactly like any other bank.
type MBC5 struct {
	rom []byte
	ram []byte

	romBankLo byte // low 8 bits of the 9-bit ROM bank register
	romBankHi byte // bit 8 of the 9-bit ROM bank register, 0 or 1

	ramBank    byte // 4 bits, 0..15
	ramEnabled bool

	romOffset int // (romBankHi<<8 | romBankLo) * 0x4000
	ramOffset int // ramBank * 0x2000
}

func NewMBC5(rom []byte, ramSize int) *MBC5 {
	m := &MBC5{rom: rom}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	m.recomputeOffsets()
	return m
}

func (m *MBC5) recomputeOffsets() {
	bank := int(m.romBankHi)<<8 | int(m.romBankLo)
	m.romOffset = bank * 0x4000
	m.ramOffset = int(m.ramBank) * 0x2000
}

func (m *MBC5) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr < 0x8000:
		off := m.romOffset | int(addr-0x4000)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return 0xFF
		}
		off := m.ramOffset | int(addr-0xA000)
		if off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

func (m *MBC5) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr < 0x3000:
		m.romBankLo = value
		m.recomputeOffsets()
	case addr < 0x4000:
		m.romBankHi = value & 0x01
		m.recomputeOffsets()
	case addr < 0x6000:
		m.ramBank = value & 0x0F
		m.recomputeOffsets()
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return
		}
		off := m.ramOffset | int(addr-0xA000)
		if off < len(m.ram) {
			m.ram[off] = value
		}
	}
}

func (m *MBC5) SaveRAM() []byte {
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *MBC5) LoadRAM(data []byte) {
	copy(m.ram, data)
}
