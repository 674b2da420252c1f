// Package cart implements cartridge ROM-header parsing and the bank-switch
// mappers (MBC1 and friends) that sit behind the bus's 0x0000-0x7FFF and
// 0xA000-0xBFFF windows.
package cart

// Mapper is the minimal interface the bus needs for ROM/RAM banking.
// Implementations are ROM-only or one of the MBC variants. Addresses are
// full 16-bit CPU addresses; a Mapper only ever sees the ranges it owns
// (0x0000-0x7FFF for ROM + control writes, 0xA000-0xBFFF for external RAM).
type Mapper interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// BatteryBacked is implemented by mappers whose external RAM should survive
// a power cycle. SaveRAM returns a copy (nil/empty if the cartridge has no
// RAM); LoadRAM restores a previously saved dump, truncating or zero-padding
// to the cartridge's actual RAM size.
type BatteryBacked interface {
	SaveRAM() []byte
	LoadRAM(data []byte)
}

// NewMapper picks a Mapper implementation based on the ROM header's
// cartridge-type byte (0x147). Header parse failures and unrecognized
// cartridge types both fall back to ROM-only, which is always safe to read
// from (it just won't bank-switch).
func NewMapper(rom []byte) Mapper {
	h, err := ParseHeader(rom)
	if err != nil {
		return NewROMOnly(rom, 0)
	}
	switch h.CartType {
	case 0x00:
		return NewROMOnly(rom, 0)
	case 0x08, 0x09: // ROM+RAM, ROM+RAM+BATTERY
		return NewROMOnly(rom, h.RAMSizeBytes)
	case 0x01, 0x02, 0x03: // MBC1, MBC1+RAM, MBC1+RAM+BATTERY
		return NewMBC1(rom, h.RAMSizeBytes)
	case 0x0F, 0x10, 0x11, 0x12, 0x13: // MBC3 variants (RTC registers inert)
		return NewMBC3(rom, h.RAMSizeBytes)
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E: // MBC5 variants
		return NewMBC5(rom, h.RAMSizeBytes)
	default:
		return NewROMOnly(rom, h.RAMSizeBytes)
	}
}
