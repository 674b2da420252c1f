package cart

// MBC3 is an extension-point stub (spec.md §9's design note calls out
// MBC2/3/5 as polymorphism extension points; spec.md itself only requires
// cartridge types 0x00-0x03/0x08/0x09, which are ROM-only and MBC1). It
// shares MBC1's RAM-enable-gate shape but has the wider 7-bit ROM bank
// register and 4-bank RAM select real MBC3 hardware has. The RTC register
// block (selected by writing 0x08-0x0C to 0x4000-0x5FFF) is present but
// inert: no wall-clock advancement, matching spec.md's CGB/real-time
// non-goals. Latching and reading an RTC register returns 0.
type MBC3 struct {
	rom []byte
	ram []byte

	ramEnabled bool
	romBank    byte // 7 bits (1..127)
	ramBank    byte // 0..3, or an RTC register select (0x08..0x0C)
}

func NewMBC3(rom []byte, ramSize int) *MBC3 {
	m := &MBC3{rom: rom, romBank: 1}
	if ramSize > 0 {
		m.ram = make([]byte, ramSize)
	}
	return m
}

func (m *MBC3) Read(addr uint16) byte {
	switch {
	case addr < 0x4000:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr < 0x8000:
		off := int(m.romBank)*0x4000 + int(addr-0x4000)
		if off < len(m.rom) {
			return m.rom[off]
		}
		return 0xFF
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.ramBank >= 0x08 {
			return 0 // RTC register, inert
		}
		off := int(m.ramBank&0x03)*0x2000 + int(addr-0xA000)
		if off < len(m.ram) {
			return m.ram[off]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

func (m *MBC3) Write(addr uint16, value byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = (value & 0x0F) == 0x0A
	case addr < 0x4000:
		v := value & 0x7F
		if v == 0 {
			v = 1
		}
		m.romBank = v
	case addr < 0x6000:
		m.ramBank = value
	case addr < 0x8000:
		// Latch-clock trigger: no-op, no RTC clock is modeled.
	case addr >= 0xA000 && addr <= 0xBFFF:
		if !m.ramEnabled || m.ramBank >= 0x08 {
			return
		}
		off := int(m.ramBank&0x03)*0x2000 + int(addr-0xA000)
		if off < len(m.ram) {
			m.ram[off] = value
		}
	}
}

func (m *MBC3) SaveRAM() []byte {
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *MBC3) LoadRAM(data []byte) {
	copy(m.ram, data)
}
