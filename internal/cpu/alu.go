package cpu

// add8 computes a+b mod 256 and the carry/half-carry it produces, per
// spec.md §4.1.
func add8(a, b byte) (result byte, carry, half bool) {
	r := uint16(a) + uint16(b)
	result = byte(r)
	carry = r >= 0x100
	half = ((a ^ b ^ result) & 0x10) != 0
	return
}

// adc8 is add8 with an incoming carry folded in, used by ADC.
func adc8(a, b byte, carryIn bool) (result byte, carry, half bool) {
	ci := byte(0)
	if carryIn {
		ci = 1
	}
	r1, c1, h1 := add8(a, b)
	r2, c2, h2 := add8(r1, ci)
	return r2, c1 || c2, h1 || h2
}

// sub8 computes a-b mod 256 and the borrow/half-borrow it produces.
func sub8(a, b byte) (result byte, carry, half bool) {
	r := int16(a) - int16(b)
	result = byte(r)
	carry = a < b
	half = ((a ^ b ^ result) & 0x10) != 0
	return
}

// sbc8 is sub8 with an incoming borrow folded in, used by SBC.
func sbc8(a, b byte, carryIn bool) (result byte, carry, half bool) {
	ci := byte(0)
	if carryIn {
		ci = 1
	}
	r1, c1, h1 := sub8(a, b)
	r2, c2, h2 := sub8(r1, ci)
	return r2, c1 || c2, h1 || h2
}

// add16 computes a+b mod 65536 and the carry/half-carry from bit 15/11,
// used by ADD HL,rr.
func add16(a, b uint16) (result uint16, carry, half bool) {
	r := uint32(a) + uint32(b)
	result = uint16(r)
	carry = r >= 0x10000
	half = ((a ^ b ^ result) & 0x1000) != 0
	return
}

// add16Signed8 adds a sign-extended 8-bit offset to a 16-bit base, with
// carry/half computed from the low-byte arithmetic alone. This is the
// hardware quirk that distinguishes ADD SP,r8 / LD HL,SP+r8 from a generic
// 16-bit add (spec.md §4.1).
func add16Signed8(base uint16, off byte) (result uint16, carry, half bool) {
	_, carry, half = add8(byte(base), off)
	result = uint16(int32(int16(base)) + int32(int8(off)))
	return
}
