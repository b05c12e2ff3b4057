package cpu

// addBinary adds with carry. Overflow follows the signed sum, carry the
// unsigned one.
func (cpu *Cpu) addBinary(value uint8) {
	carry := cpu.SR & FLAG_CARRY

	sum := uint16(cpu.AC) + uint16(value) + uint16(carry)
	signed := int(int8(cpu.AC)) + int(int8(value)) + int(carry)

	cpu.setFlag(FLAG_CARRY, sum > 0xff)
	cpu.setFlag(FLAG_OVERFLOW, signed < -128 || signed > 127)
	cpu.AC = uint8(sum)
	cpu.setZN(cpu.AC)
}

// fromBCD converts a packed BCD byte to its decimal value.
func fromBCD(value uint8) int {
	return int(value>>4)*10 + int(value&0x0f)
}

// toBCD packs the two low decimal digits of value.
func toBCD(value int) uint8 {
	return uint8((value/10)%10)<<4 | uint8(value%10)
}

func (cpu *Cpu) addDecimal(value uint8) {
	sum := fromBCD(cpu.AC) + fromBCD(value) + int(cpu.SR&FLAG_CARRY)

	cpu.setFlag(FLAG_CARRY, sum > 99)
	cpu.AC = toBCD(sum)
	cpu.setZN(cpu.AC)
}

// subDecimal borrows one when the carry is clear.
func (cpu *Cpu) subDecimal(value uint8) {
	diff := fromBCD(cpu.AC) - fromBCD(value)
	if !cpu.Flag(FLAG_CARRY) {
		diff--
	}

	if diff < 0 {
		diff += 100
		cpu.setFlag(FLAG_CARRY, false)
	} else {
		cpu.setFlag(FLAG_CARRY, true)
	}

	cpu.AC = toBCD(diff)
	cpu.setZN(cpu.AC)
}
