package cpu

import (
	"log"
)

// handler executes an instruction on its resolved operand address.
type handler func(cpu *Cpu, mode Mode, addr uint16)

var execute = [opCount]handler{
	OP_ILLEGAL: (*Cpu).opNop,
	OP_ADC:     (*Cpu).opAdc,
	OP_AND:     (*Cpu).opAnd,
	OP_ASL:     (*Cpu).opAsl,
	OP_BCC:     (*Cpu).opBcc,
	OP_BCS:     (*Cpu).opBcs,
	OP_BEQ:     (*Cpu).opBeq,
	OP_BIT:     (*Cpu).opBit,
	OP_BMI:     (*Cpu).opBmi,
	OP_BNE:     (*Cpu).opBne,
	OP_BPL:     (*Cpu).opBpl,
	OP_BRK:     (*Cpu).opBrk,
	OP_BVC:     (*Cpu).opBvc,
	OP_BVS:     (*Cpu).opBvs,
	OP_CLC:     (*Cpu).opClc,
	OP_CLD:     (*Cpu).opCld,
	OP_CLI:     (*Cpu).opCli,
	OP_CLV:     (*Cpu).opClv,
	OP_CMP:     (*Cpu).opCmp,
	OP_CPX:     (*Cpu).opCpx,
	OP_CPY:     (*Cpu).opCpy,
	OP_DEC:     (*Cpu).opDec,
	OP_DEX:     (*Cpu).opDex,
	OP_DEY:     (*Cpu).opDey,
	OP_EOR:     (*Cpu).opEor,
	OP_INC:     (*Cpu).opInc,
	OP_INX:     (*Cpu).opInx,
	OP_INY:     (*Cpu).opIny,
	OP_JMP:     (*Cpu).opJmp,
	OP_JSR:     (*Cpu).opJsr,
	OP_LDA:     (*Cpu).opLda,
	OP_LDX:     (*Cpu).opLdx,
	OP_LDY:     (*Cpu).opLdy,
	OP_LSR:     (*Cpu).opLsr,
	OP_NOP:     (*Cpu).opNop,
	OP_ORA:     (*Cpu).opOra,
	OP_PHA:     (*Cpu).opPha,
	OP_PHP:     (*Cpu).opPhp,
	OP_PLA:     (*Cpu).opPla,
	OP_PLP:     (*Cpu).opPlp,
	OP_ROL:     (*Cpu).opRol,
	OP_ROR:     (*Cpu).opRor,
	OP_RTI:     (*Cpu).opRti,
	OP_RTS:     (*Cpu).opRts,
	OP_SBC:     (*Cpu).opSbc,
	OP_SEC:     (*Cpu).opSec,
	OP_SED:     (*Cpu).opSed,
	OP_SEI:     (*Cpu).opSei,
	OP_STA:     (*Cpu).opSta,
	OP_STX:     (*Cpu).opStx,
	OP_STY:     (*Cpu).opSty,
	OP_TAX:     (*Cpu).opTax,
	OP_TAY:     (*Cpu).opTay,
	OP_TSX:     (*Cpu).opTsx,
	OP_TXA:     (*Cpu).opTxa,
	OP_TXS:     (*Cpu).opTxs,
	OP_TYA:     (*Cpu).opTya,
}

// Step executes the instruction at the PC, and returns the cycles it took.
//
// The PC is left on the last byte of the instruction by the operand fetch,
// and is advanced past it once the instruction completes. Jumps therefore
// load their target minus one.
func (cpu *Cpu) Step() (cycles int) {
	pc := cpu.PC
	entry := table[cpu.Bus.Read(pc)]

	cpu.penalty = 0
	addr := resolve[entry.Mode](cpu)
	if !entry.PageSensitive {
		cpu.penalty = 0
	}

	if cpu.Verbose {
		log.Printf("cpu: $%04x: %v $%04x", pc, entry, addr)
	}

	execute[entry.Op](cpu, entry.Mode, addr)
	cpu.PC++

	cycles = entry.Cycles + cpu.penalty
	cpu.Cycles += cycles
	cpu.Steps++

	return
}

// Interrupt enters the maskable interrupt handler, unless interrupts are
// disabled.  The return address and status are pushed, and the PC is
// loaded from the IRQ vector.
func (cpu *Cpu) Interrupt() (ok bool) {
	if cpu.Flag(FLAG_INTERRUPT) {
		return
	}

	cpu.pushWord(cpu.PC)
	cpu.Push(cpu.SR | FLAG_BREAK | FLAG_UNUSED)
	cpu.SR |= FLAG_INTERRUPT
	cpu.Pending = true
	cpu.PC = cpu.word(VECTOR_IRQ)

	if cpu.Verbose {
		log.Printf("cpu: irq, pc $%04x", cpu.PC)
	}

	ok = true
	return
}

func (cpu *Cpu) load(mode Mode, addr uint16) uint8 {
	if mode == MODE_ACCUMULATOR {
		return cpu.AC
	}
	return cpu.Bus.Read(addr)
}

func (cpu *Cpu) store(mode Mode, addr uint16, value uint8) {
	if mode == MODE_ACCUMULATOR {
		cpu.AC = value
		return
	}
	cpu.Bus.Write(addr, value)
}

func (cpu *Cpu) opNop(mode Mode, addr uint16) {}

func (cpu *Cpu) opLda(mode Mode, addr uint16) {
	cpu.AC = cpu.load(mode, addr)
	cpu.setZN(cpu.AC)
}

func (cpu *Cpu) opLdx(mode Mode, addr uint16) {
	cpu.XR = cpu.load(mode, addr)
	cpu.setZN(cpu.XR)
}

func (cpu *Cpu) opLdy(mode Mode, addr uint16) {
	cpu.YR = cpu.load(mode, addr)
	cpu.setZN(cpu.YR)
}

func (cpu *Cpu) opSta(mode Mode, addr uint16) {
	cpu.store(mode, addr, cpu.AC)
}

func (cpu *Cpu) opStx(mode Mode, addr uint16) {
	cpu.store(mode, addr, cpu.XR)
}

func (cpu *Cpu) opSty(mode Mode, addr uint16) {
	cpu.store(mode, addr, cpu.YR)
}

func (cpu *Cpu) opTax(mode Mode, addr uint16) {
	cpu.XR = cpu.AC
	cpu.setZN(cpu.XR)
}

func (cpu *Cpu) opTay(mode Mode, addr uint16) {
	cpu.YR = cpu.AC
	cpu.setZN(cpu.YR)
}

func (cpu *Cpu) opTsx(mode Mode, addr uint16) {
	cpu.XR = cpu.SP
	cpu.setZN(cpu.XR)
}

func (cpu *Cpu) opTxa(mode Mode, addr uint16) {
	cpu.AC = cpu.XR
	cpu.setZN(cpu.AC)
}

// opTxs is the only transfer that leaves the flags alone.
func (cpu *Cpu) opTxs(mode Mode, addr uint16) {
	cpu.SP = cpu.XR
}

func (cpu *Cpu) opTya(mode Mode, addr uint16) {
	cpu.AC = cpu.YR
	cpu.setZN(cpu.AC)
}

func (cpu *Cpu) opAnd(mode Mode, addr uint16) {
	cpu.AC &= cpu.load(mode, addr)
	cpu.setZN(cpu.AC)
}

func (cpu *Cpu) opOra(mode Mode, addr uint16) {
	cpu.AC |= cpu.load(mode, addr)
	cpu.setZN(cpu.AC)
}

func (cpu *Cpu) opEor(mode Mode, addr uint16) {
	cpu.AC ^= cpu.load(mode, addr)
	cpu.setZN(cpu.AC)
}

// opBit sets Z from the accumulator mask, and N and V from the operand.
func (cpu *Cpu) opBit(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	cpu.setFlag(FLAG_ZERO, cpu.AC&value == 0)
	cpu.setFlag(FLAG_NEGATIVE, value&0x80 != 0)
	cpu.setFlag(FLAG_OVERFLOW, value&0x40 != 0)
}

func (cpu *Cpu) opAsl(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	cpu.setFlag(FLAG_CARRY, value&0x80 != 0)
	value <<= 1
	cpu.store(mode, addr, value)
	cpu.setZN(value)
}

func (cpu *Cpu) opLsr(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	cpu.setFlag(FLAG_CARRY, value&0x01 != 0)
	value >>= 1
	cpu.store(mode, addr, value)
	cpu.setZN(value)
}

func (cpu *Cpu) opRol(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	carry := cpu.SR & FLAG_CARRY
	cpu.setFlag(FLAG_CARRY, value&0x80 != 0)
	value = value<<1 | carry
	cpu.store(mode, addr, value)
	cpu.setZN(value)
}

func (cpu *Cpu) opRor(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	carry := (cpu.SR & FLAG_CARRY) << 7
	cpu.setFlag(FLAG_CARRY, value&0x01 != 0)
	value = value>>1 | carry
	cpu.store(mode, addr, value)
	cpu.setZN(value)
}

func (cpu *Cpu) opInc(mode Mode, addr uint16) {
	value := cpu.load(mode, addr) + 1
	cpu.store(mode, addr, value)
	cpu.setZN(value)
}

func (cpu *Cpu) opDec(mode Mode, addr uint16) {
	value := cpu.load(mode, addr) - 1
	cpu.store(mode, addr, value)
	cpu.setZN(value)
}

func (cpu *Cpu) opInx(mode Mode, addr uint16) {
	cpu.XR++
	cpu.setZN(cpu.XR)
}

func (cpu *Cpu) opIny(mode Mode, addr uint16) {
	cpu.YR++
	cpu.setZN(cpu.YR)
}

func (cpu *Cpu) opDex(mode Mode, addr uint16) {
	cpu.XR--
	cpu.setZN(cpu.XR)
}

func (cpu *Cpu) opDey(mode Mode, addr uint16) {
	cpu.YR--
	cpu.setZN(cpu.YR)
}

func (cpu *Cpu) compare(register uint8, value uint8) {
	cpu.setFlag(FLAG_CARRY, register >= value)
	cpu.setZN(register - value)
}

func (cpu *Cpu) opCmp(mode Mode, addr uint16) {
	cpu.compare(cpu.AC, cpu.load(mode, addr))
}

func (cpu *Cpu) opCpx(mode Mode, addr uint16) {
	cpu.compare(cpu.XR, cpu.load(mode, addr))
}

func (cpu *Cpu) opCpy(mode Mode, addr uint16) {
	cpu.compare(cpu.YR, cpu.load(mode, addr))
}

func (cpu *Cpu) opAdc(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	if cpu.Flag(FLAG_DECIMAL) {
		cpu.addDecimal(value)
	} else {
		cpu.addBinary(value)
	}
}

func (cpu *Cpu) opSbc(mode Mode, addr uint16) {
	value := cpu.load(mode, addr)
	if cpu.Flag(FLAG_DECIMAL) {
		cpu.subDecimal(value)
	} else {
		cpu.addBinary(^value)
	}
}

func (cpu *Cpu) opClc(mode Mode, addr uint16) { cpu.setFlag(FLAG_CARRY, false) }
func (cpu *Cpu) opCld(mode Mode, addr uint16) { cpu.setFlag(FLAG_DECIMAL, false) }
func (cpu *Cpu) opCli(mode Mode, addr uint16) { cpu.setFlag(FLAG_INTERRUPT, false) }
func (cpu *Cpu) opClv(mode Mode, addr uint16) { cpu.setFlag(FLAG_OVERFLOW, false) }
func (cpu *Cpu) opSec(mode Mode, addr uint16) { cpu.setFlag(FLAG_CARRY, true) }
func (cpu *Cpu) opSed(mode Mode, addr uint16) { cpu.setFlag(FLAG_DECIMAL, true) }
func (cpu *Cpu) opSei(mode Mode, addr uint16) { cpu.setFlag(FLAG_INTERRUPT, true) }

// branch to the displacement at addr. A taken branch costs a cycle, and
// another when the target is on a different page than the operand.
func (cpu *Cpu) branch(taken bool, addr uint16) {
	if !taken {
		return
	}

	offset := int8(cpu.Bus.Read(addr))
	target := addr + uint16(offset)

	cpu.penalty++
	if target&0xff00 != addr&0xff00 {
		cpu.penalty++
	}

	cpu.PC = target
}

func (cpu *Cpu) opBcc(mode Mode, addr uint16) { cpu.branch(!cpu.Flag(FLAG_CARRY), addr) }
func (cpu *Cpu) opBcs(mode Mode, addr uint16) { cpu.branch(cpu.Flag(FLAG_CARRY), addr) }
func (cpu *Cpu) opBne(mode Mode, addr uint16) { cpu.branch(!cpu.Flag(FLAG_ZERO), addr) }
func (cpu *Cpu) opBeq(mode Mode, addr uint16) { cpu.branch(cpu.Flag(FLAG_ZERO), addr) }
func (cpu *Cpu) opBpl(mode Mode, addr uint16) { cpu.branch(!cpu.Flag(FLAG_NEGATIVE), addr) }
func (cpu *Cpu) opBmi(mode Mode, addr uint16) { cpu.branch(cpu.Flag(FLAG_NEGATIVE), addr) }
func (cpu *Cpu) opBvc(mode Mode, addr uint16) { cpu.branch(!cpu.Flag(FLAG_OVERFLOW), addr) }
func (cpu *Cpu) opBvs(mode Mode, addr uint16) { cpu.branch(cpu.Flag(FLAG_OVERFLOW), addr) }

func (cpu *Cpu) opJmp(mode Mode, addr uint16) {
	cpu.PC = addr - 1
}

func (cpu *Cpu) opJsr(mode Mode, addr uint16) {
	cpu.pushWord(cpu.PC)
	cpu.PC = addr - 1
}

func (cpu *Cpu) opRts(mode Mode, addr uint16) {
	cpu.PC = cpu.pullWord()
}

func (cpu *Cpu) opRti(mode Mode, addr uint16) {
	cpu.SR = cpu.Pull() | FLAG_UNUSED
	cpu.PC = cpu.pullWord() - 1
	cpu.Pending = false
}

// opBrk raises the non-maskable halt.
func (cpu *Cpu) opBrk(mode Mode, addr uint16) {
	cpu.SR |= FLAG_BREAK
	cpu.Nmi = true

	if cpu.Verbose {
		log.Printf("cpu: break at $%04x", cpu.PC)
	}
}

func (cpu *Cpu) opPha(mode Mode, addr uint16) {
	cpu.Push(cpu.AC)
}

func (cpu *Cpu) opPhp(mode Mode, addr uint16) {
	cpu.Push(cpu.SR | FLAG_BREAK | FLAG_UNUSED)
}

func (cpu *Cpu) opPla(mode Mode, addr uint16) {
	cpu.AC = cpu.Pull()
	cpu.setZN(cpu.AC)
}

func (cpu *Cpu) opPlp(mode Mode, addr uint16) {
	cpu.SR = cpu.Pull() | FLAG_UNUSED
}
