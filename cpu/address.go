package cpu

// resolver computes the operand address of a mode, advancing the PC over
// the operand bytes.
type resolver func(cpu *Cpu) (addr uint16)

var resolve = [modeCount]resolver{
	MODE_IMPLIED:          (*Cpu).modeImplied,
	MODE_ACCUMULATOR:      (*Cpu).modeImplied,
	MODE_IMMEDIATE:        (*Cpu).modeImmediate,
	MODE_ZERO_PAGE:        (*Cpu).modeZeroPage,
	MODE_ZERO_PAGE_X:      (*Cpu).modeZeroPageX,
	MODE_ZERO_PAGE_Y:      (*Cpu).modeZeroPageY,
	MODE_ABSOLUTE:         (*Cpu).modeAbsolute,
	MODE_ABSOLUTE_X:       (*Cpu).modeAbsoluteX,
	MODE_ABSOLUTE_Y:       (*Cpu).modeAbsoluteY,
	MODE_INDIRECT:         (*Cpu).modeIndirect,
	MODE_INDEXED_INDIRECT: (*Cpu).modeIndexedIndirect,
	MODE_INDIRECT_INDEXED: (*Cpu).modeIndirectIndexed,
	MODE_RELATIVE:         (*Cpu).modeImmediate,
}

// fetch the next operand byte.
func (cpu *Cpu) fetch() uint8 {
	cpu.PC++
	return cpu.Bus.Read(cpu.PC)
}

// zeroPageWord reads a pointer from the zero page, wrapping within it.
func (cpu *Cpu) zeroPageWord(zp uint8) uint16 {
	lo := cpu.Bus.Read(uint16(zp))
	hi := cpu.Bus.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// indexed adds an index, charging a cycle when the page changes.
func (cpu *Cpu) indexed(base uint16, index uint8) (addr uint16) {
	addr = base + uint16(index)
	if addr&0xff00 != base&0xff00 {
		cpu.penalty++
	}
	return
}

func (cpu *Cpu) modeImplied() uint16 {
	return 0
}

// modeImmediate returns the address of the operand byte itself.
func (cpu *Cpu) modeImmediate() uint16 {
	cpu.PC++
	return cpu.PC
}

func (cpu *Cpu) modeZeroPage() uint16 {
	return uint16(cpu.fetch())
}

func (cpu *Cpu) modeZeroPageX() uint16 {
	return uint16(cpu.fetch() + cpu.XR)
}

func (cpu *Cpu) modeZeroPageY() uint16 {
	return uint16(cpu.fetch() + cpu.YR)
}

func (cpu *Cpu) modeAbsolute() uint16 {
	lo := cpu.fetch()
	hi := cpu.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (cpu *Cpu) modeAbsoluteX() uint16 {
	return cpu.indexed(cpu.modeAbsolute(), cpu.XR)
}

func (cpu *Cpu) modeAbsoluteY() uint16 {
	return cpu.indexed(cpu.modeAbsolute(), cpu.YR)
}

// modeIndirect never carries into the pointer's high byte, so a pointer
// at $xxFF takes its high byte from $xx00.
func (cpu *Cpu) modeIndirect() uint16 {
	ptr := cpu.modeAbsolute()
	lo := cpu.Bus.Read(ptr)
	hi := cpu.Bus.Read(ptr&0xff00 | (ptr+1)&0x00ff)
	return uint16(hi)<<8 | uint16(lo)
}

func (cpu *Cpu) modeIndexedIndirect() uint16 {
	return cpu.zeroPageWord(cpu.fetch() + cpu.XR)
}

func (cpu *Cpu) modeIndirectIndexed() uint16 {
	return cpu.indexed(cpu.zeroPageWord(cpu.fetch()), cpu.YR)
}
