package cart

import "testing"

func TestMBC3_ROMBanking(t *testing.T) {
	rom := make([]byte, 256*1024)
	for bank := 0; bank < 16; bank++ {
		rom[bank*0x4000] = byte(bank)
	}
	m := NewMBC3(rom, 0)

	if got := m.Read(0x0000); got != 0x00 {
		t.Fatalf("bank0 read got %02X want 00", got)
	}
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("default bank1 read got %02X want 01", got)
	}

	m.Write(0x2000, 0x0A)
	if got := m.Read(0x4000); got != 0x0A {
		t.Fatalf("bank10 read got %02X want 0A", got)
	}

	m.Write(0x2000, 0x00) // 0 remaps to 1
	if got := m.Read(0x4000); got != 0x01 {
		t.Fatalf("bank0->1 remap failed: got %02X", got)
	}
}

func TestMBC3_RAMBanking(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 4*0x2000)
	m.Write(0x0000, 0x0A) // enable
	m.Write(0x4000, 0x02) // RAM bank 2
	m.Write(0xA000, 0x55)
	if got := m.Read(0xA000); got != 0x55 {
		t.Fatalf("RAM bank2 RW got %02X want 55", got)
	}
}

func TestMBC3_RTCRegisterInert(t *testing.T) {
	rom := make([]byte, 0x8000)
	m := NewMBC3(rom, 0x2000)
	m.Write(0x0000, 0x0A)
	m.Write(0x4000, 0x08) // select RTC seconds register
	if got := m.Read(0xA000); got != 0 {
		t.Fatalf("RTC register read got %02X want 00 (inert)", got)
	}
	m.Write(0xA000, 0x42) // write to RTC register is a no-op
	if got := m.Read(0xA000); got != 0 {
		t.Fatalf("RTC register write should be a no-op, got %02X", got)
	}
}
