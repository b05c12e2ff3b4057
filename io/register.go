// Package io provides the pseudo-register devices of the m6502 machine.
//
// A pseudo-register is a memory address whose reads are synthesized by a
// device rather than returning stored memory. Writes to those addresses are
// ordinary stores. The machine has three: the last key pressed, a jiffy
// clock, and a random byte source.
package io

// Pseudo-register addresses.
const (
	REG_LAST_KEY    = uint16(0x0d) // Last key code pressed.
	REG_JIFFY_CLOCK = uint16(0x0e) // Elapsed jiffies, modulo 256.
	REG_RANDOM      = uint16(0x0f) // Fresh random byte on every read.
)

// Register is a device mapped onto a pseudo-register address.
type Register interface {
	// Peek returns the value a read of the register yields.
	Peek() (value uint8)
	// Rewind resets the device to its initial state.
	Rewind()
}
