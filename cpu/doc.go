// Package cpu implements a 6502 class microprocessor.
//
// The CPU has an accumulator, two index registers, a stack pointer into
// page $01, a status register and a 16-bit program counter. Instructions
// are decoded through a 256 entry instruction table, one canonical entry per
// opcode byte. Bytes that are not documented opcodes decode as a single byte,
// zero cycle "???" no-op.
//
// Each addressing mode and each mnemonic dispatches through a table indexed
// by its enumerated tag. Instructions read and write memory through a Bus.
//
// Interrupts are cooperative: BRK raises a non-maskable halt that the caller
// observes between steps, and Interrupt enters the IRQ vector when the
// interrupt disable flag is clear.
package cpu
