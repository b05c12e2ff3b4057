package cpu

// Push stores a byte at the top of the stack, then moves the stack down.
// The stack pointer wraps within the stack page.
func (cpu *Cpu) Push(value uint8) {
	cpu.Bus.Write(STACK_BASE|uint16(cpu.SP), value)
	cpu.SP--
}

// Pull moves the stack up, then loads the byte at the top of the stack.
func (cpu *Cpu) Pull() (value uint8) {
	cpu.SP++
	value = cpu.Bus.Read(STACK_BASE | uint16(cpu.SP))
	return
}

func (cpu *Cpu) pushWord(value uint16) {
	cpu.Push(uint8(value >> 8))
	cpu.Push(uint8(value))
}

func (cpu *Cpu) pullWord() (value uint16) {
	lo := cpu.Pull()
	hi := cpu.Pull()
	value = uint16(hi)<<8 | uint16(lo)
	return
}
