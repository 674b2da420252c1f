package bus

import "testing"

func TestBus_ROMAndRAM(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x42
	b := New(rom)

	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM read got %02x, want 42", got)
	}

	b.Write(0xC000, 0x99)
	if got := b.Read(0xC000); got != 0x99 {
		t.Fatalf("RAM read got %02x, want 99", got)
	}

	// Echo RAM mirrors C000-DDFF
	b.Write(0xE000, 0x55)
	if got := b.Read(0xC000); got != 0x55 {
		t.Fatalf("Echo write did not mirror to WRAM: got %02x", got)
	}
	b.Write(0xC100, 0x66)
	if got := b.Read(0xE100); got != 0x66 {
		t.Fatalf("WRAM write did not mirror to Echo: got %02x", got)
	}

	b.Write(0xFF80, 0xAB)
	if got := b.Read(0xFF80); got != 0xAB {
		t.Fatalf("HRAM read got %02x, want AB", got)
	}

	// ROM-only cart should return 0xFF for A000-BFFF (no RAM present)
	if got := b.Read(0xA123); got != 0xFF {
		t.Fatalf("Ext RAM (ROM-only) got %02x, want FF", got)
	}
}

func TestBus_VRAM_OAM_InterruptRegs(t *testing.T) {
	b := New(make([]byte, 0x8000))

	b.Write(0x8000, 0x11)
	if got := b.Read(0x8000); got != 0x11 {
		t.Fatalf("VRAM read got %02x, want 11", got)
	}

	b.Write(0xFE00, 0x22)
	if got := b.Read(0xFE00); got != 0x22 {
		t.Fatalf("OAM read got %02x, want 22", got)
	}

	b.Write(0xFF0F, 0x3F) // upper 3 bits ignored on read
	if got := b.Read(0xFF0F); got != 0xE0|0x1F {
		t.Fatalf("IF read got %02x, want %02x", got, 0xE0|0x1F)
	}

	b.Write(0xFFFF, 0x1B)
	if got := b.Read(0xFFFF); got != 0x1B {
		t.Fatalf("IE read got %02x, want 1B", got)
	}
}

func TestBus_JOYP_And_Timers(t *testing.T) {
	b := New(make([]byte, 0x8000))

	if got := b.Read(0xFF00); got&0x0F != 0x0F {
		t.Fatalf("JOYP default lower bits got %02x want 0x0F", got)
	}

	b.Write(0xFF00, 0x20) // bit5=1, bit4=0 selects D-Pad
	b.SetJoypad(JoypRight | JoypUp)
	got := b.Read(0xFF00)
	if got&0x0F != 0x0A { // 1010b: Right and Up cleared
		t.Fatalf("JOYP D-Pad got %02x want 0x0A", got&0x0F)
	}

	b.Write(0xFF00, 0x10) // bit5=0, bit4=1 selects buttons
	b.SetJoypad(JoypA | JoypStart)
	got = b.Read(0xFF00)
	if got&0x0F != 0x06 { // 0110b: A and Start cleared
		t.Fatalf("JOYP Buttons got %02x want 0x06", got&0x0F)
	}

	b.Write(0xFF04, 0x12) // any DIV write resets it
	if got := b.Read(0xFF04); got != 0x00 {
		t.Fatalf("DIV got %02x want 00", got)
	}
	b.Write(0xFF05, 0x77)
	if got := b.Read(0xFF05); got != 0x77 {
		t.Fatalf("TIMA got %02x want 77", got)
	}
	b.Write(0xFF06, 0x88)
	if got := b.Read(0xFF06); got != 0x88 {
		t.Fatalf("TMA got %02x want 88", got)
	}
	b.Write(0xFF07, 0xFD)
	if got := b.Read(0xFF07); got != (0xF8 | (0xFD & 0x07)) {
		t.Fatalf("TAC got %02x want %02x", got, 0xF8|(0xFD&0x07))
	}
}

func TestBus_JoypadIRQOnFallingEdge(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF00, 0x20) // select D-Pad
	b.SetJoypad(JoypRight)
	if b.Read(0xFF0F)&(1<<4) == 0 {
		t.Fatalf("joypad IRQ not raised on press")
	}
}

func TestBus_Timer_IncrementsAtSelectedPeriod(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF07, 0x05) // enable, clock-select 01 -> every 16 T-cycles
	for i := 0; i < 15; i++ {
		b.Tick()
	}
	if got := b.Read(0xFF05); got != 0x00 {
		t.Fatalf("TIMA incremented early: got %02x", got)
	}
	b.Tick()
	if got := b.Read(0xFF05); got != 0x01 {
		t.Fatalf("TIMA got %02x want 01 after 16 cycles", got)
	}
}

func TestBus_Timer_OverflowReloadsFromTMAAndRequestsIRQ(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF06, 0xAB)
	b.Write(0xFF05, 0xFF)
	b.Write(0xFF07, 0x05) // enable, period 16
	for i := 0; i < 16; i++ {
		b.Tick()
	}
	if got := b.Read(0xFF05); got != 0xAB {
		t.Fatalf("TIMA did not reload from TMA: got %02x want AB", got)
	}
	if b.Read(0xFF0F)&(1<<2) == 0 {
		t.Fatalf("timer IF bit not set on overflow")
	}
}

func TestBus_Timer_DisabledDoesNotIncrement(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF07, 0x01) // clock-select set, enable bit clear
	for i := 0; i < 64; i++ {
		b.Tick()
	}
	if got := b.Read(0xFF05); got != 0x00 {
		t.Fatalf("disabled timer incremented: got %02x", got)
	}
}

func TestBus_Serial_CompletesTransferAndBuffersByte(t *testing.T) {
	b := New(make([]byte, 0x8000))
	b.Write(0xFF01, 0x41) // 'A'
	b.Write(0xFF02, 0x83) // start, clock-select 11 -> 8 T-cycles

	for i := 0; i < 7; i++ {
		b.Tick()
	}
	if got := b.Read(0xFF02); got&0x80 == 0 {
		t.Fatalf("transfer completed too early")
	}
	b.Tick()
	if got := b.Read(0xFF02); got&0x80 != 0 {
		t.Fatalf("transfer control bit7 not cleared after 8 cycles: %02x", got)
	}
	if b.Read(0xFF0F)&(1<<3) == 0 {
		t.Fatalf("serial IF bit not set after transfer")
	}
	buf, pos := b.SerialBuffer()
	if pos != 1 || buf[0] != 0x41 {
		t.Fatalf("serial buffer got %v pos %d, want [0x41 ...] pos 1", buf[:1], pos)
	}
}

func TestBus_DMA_CopiesToOAM(t *testing.T) {
	rom := make([]byte, 0x8000)
	for i := 0; i < 0xA0; i++ {
		rom[0x3000+i] = byte(i)
	}
	b := New(rom)
	b.Write(0xFF46, 0x30) // source page 0x3000
	for i := 0; i < 0xA0; i++ {
		if got := b.Read(0xFE00 + uint16(i)); got != byte(i) {
			t.Fatalf("OAM[%d] got %02x want %02x", i, got, byte(i))
		}
	}
}
