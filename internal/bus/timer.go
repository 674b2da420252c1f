package bus

// timerState implements DIV/TIMA/TMA/TAC (spec.md §4.5). DIV is a free-running
// 16-bit counter whose top 8 bits are exposed at 0xFF04 and reset to 0 on any
// write. TIMA increments once every period T-cycles, where period is selected
// by TAC's clock-select bits (00:1024, 01:16, 10:64, 11:256) and gated by
// TAC's enable bit (bit 2). This is a modulo-period restatement of the
// teacher's bit-edge-detection approach (bus.go's timerInput, selecting bit
// 9/3/5/7 of the same 16-bit divider): both fire every 2x2^bit T-cycles, so
// they are numerically equivalent at steady state.
type timerState struct {
	div      uint16 // free-running 16-bit divider; FF04 exposes div>>8
	tima     byte
	tma      byte
	tac      byte
	reloaded bool // true for the cycle after a TIMA overflow reload, for trace/debug parity
}

var timerPeriods = [4]uint16{1024, 16, 64, 256}

func (t *timerState) readDIV() byte { return byte(t.div >> 8) }

func (t *timerState) writeDIV() { t.div = 0 }

func (t *timerState) writeTIMA(v byte) { t.tima = v }

// tick advances the divider by one T-cycle and increments TIMA on period
// boundaries when the timer is enabled. On TIMA overflow it reloads from TMA
// and requests the Timer interrupt (IF bit 2) in the same tick, matching
// spec.md's simplified model rather than hardware's one-cycle reload delay.
func (t *timerState) tick(b *Bus) {
	t.div++
	t.reloaded = false
	if t.tac&0x04 == 0 {
		return
	}
	period := timerPeriods[t.tac&0x03]
	if t.div%period != 0 {
		return
	}
	if t.tima == 0xFF {
		t.tima = t.tma
		t.reloaded = true
		b.RequestInterrupt(2)
	} else {
		t.tima++
	}
}
