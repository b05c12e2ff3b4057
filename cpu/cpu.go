package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/rand/v2"
)

// Status register flags.
const (
	FLAG_CARRY     = uint8(1 << 0) // C
	FLAG_ZERO      = uint8(1 << 1) // Z
	FLAG_INTERRUPT = uint8(1 << 2) // I
	FLAG_DECIMAL   = uint8(1 << 3) // D
	FLAG_BREAK     = uint8(1 << 4) // B
	FLAG_UNUSED    = uint8(1 << 5) // always 1 when pushed
	FLAG_OVERFLOW  = uint8(1 << 6) // V
	FLAG_NEGATIVE  = uint8(1 << 7) // N
)

// Fixed addresses.
const (
	STACK_BASE   = uint16(0x0100) // Stack page.
	VECTOR_NMI   = uint16(0xfffa) // Non-maskable interrupt vector.
	VECTOR_RESET = uint16(0xfffc) // Reset vector.
	VECTOR_IRQ   = uint16(0xfffe) // Maskable interrupt vector.
	RESET_SP     = uint8(0xfd)    // Stack pointer after reset.
	RESET_SR     = FLAG_UNUSED | FLAG_INTERRUPT
)

const flagNames = "NV-BDIZC"

var _cpu_defines = map[string]string{
	"STACK":        fmt.Sprintf("$%04x", STACK_BASE),
	"NMI_VECTOR":   fmt.Sprintf("$%04x", VECTOR_NMI),
	"RESET_VECTOR": fmt.Sprintf("$%04x", VECTOR_RESET),
	"IRQ_VECTOR":   fmt.Sprintf("$%04x", VECTOR_IRQ),
}

// Bus is the memory the CPU executes from.
type Bus interface {
	Read(addr uint16) (value uint8)
	Write(addr uint16, value uint8)
}

// Cpu is the register state of a 6502 class processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.
	Bus     Bus  // Memory bus.

	AC uint8  // Accumulator.
	XR uint8  // Index X.
	YR uint8  // Index Y.
	SP uint8  // Stack pointer, offset into the stack page.
	SR uint8  // Status flags.
	PC uint16 // Program counter.

	Pending bool // Set while a maskable interrupt is being serviced.
	Nmi     bool // Set when a non-maskable halt has been requested.

	Cycles int // Cycles since reset.
	Steps  int // Instructions since reset.

	penalty int // Extra cycles accrued by the current instruction.
}

// NewCpu creates a new CPU attached to a bus.
func NewCpu(bus Bus) (cpu *Cpu) {
	cpu = &Cpu{
		Bus: bus,
		SP:  RESET_SP,
		SR:  RESET_SR,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the accumulator and index registers.
// - Sets the stack pointer to its power-on value.
// - Sets the status to interrupts disabled.
// - Loads the program counter from the reset vector.
func (cpu *Cpu) Reset() {
	cpu.AC = 0
	cpu.XR = 0
	cpu.YR = 0
	cpu.SP = RESET_SP
	cpu.SR = RESET_SR
	cpu.PC = cpu.word(VECTOR_RESET)

	cpu.Pending = false
	cpu.Nmi = false
	cpu.Cycles = 0
	cpu.Steps = 0

	if cpu.Verbose {
		log.Printf("cpu: reset, pc $%04x", cpu.PC)
	}
}

// ResetRandom sets every register to a pseudo-random value.
func (cpu *Cpu) ResetRandom(rng *rand.Rand) {
	cpu.AC = uint8(rng.Uint32())
	cpu.XR = uint8(rng.Uint32())
	cpu.YR = uint8(rng.Uint32())
	cpu.SP = uint8(rng.Uint32())
	cpu.SR = uint8(rng.Uint32()) | FLAG_UNUSED
	cpu.PC = uint16(rng.Uint32())

	cpu.Pending = false
	cpu.Nmi = false
	cpu.Cycles = 0
	cpu.Steps = 0
}

// Flag returns true if all of the flags are set.
func (cpu *Cpu) Flag(flag uint8) bool {
	return cpu.SR&flag == flag
}

func (cpu *Cpu) setFlag(flag uint8, on bool) {
	if on {
		cpu.SR |= flag
	} else {
		cpu.SR &^= flag
	}
}

func (cpu *Cpu) setZN(value uint8) {
	cpu.setFlag(FLAG_ZERO, value == 0)
	cpu.setFlag(FLAG_NEGATIVE, value&0x80 != 0)
}

// word reads a little endian address.
func (cpu *Cpu) word(addr uint16) uint16 {
	lo := cpu.Bus.Read(addr)
	hi := cpu.Bus.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("   ac: $%02x\n", cpu.AC)
	text += fmt.Sprintf("   xr: $%02x\n", cpu.XR)
	text += fmt.Sprintf("   yr: $%02x\n", cpu.YR)
	text += fmt.Sprintf("   sp: $%02x\n", cpu.SP)

	flags := []byte(flagNames)
	for n := range flags {
		if cpu.SR&(0x80>>n) == 0 {
			flags[n] = '.'
		}
	}
	text += fmt.Sprintf("   sr: $%02x %s\n", cpu.SR, flags)
	text += fmt.Sprintf("   pc: $%04x\n", cpu.PC)
	text += fmt.Sprintf("cycle: %d\n", cpu.Cycles)

	return
}
