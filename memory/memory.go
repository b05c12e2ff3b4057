// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory implements the 64K memory image of the m6502 machine.
package memory

import (
	"hash/crc32"
	"log"

	"github.com/ezrec/m6502/io"
)

// SIZE of the address space.
const SIZE = 0x10000

// Memory is a flat 64K byte array. Reads of mapped pseudo-register
// addresses are synthesized by their device; writes are always stores.
type Memory struct {
	Verbose bool        // If set, logs register mapping.
	Ram     [SIZE]uint8 // Stored bytes.

	register map[uint16]io.Register
}

// NewMemory creates a new, zeroed memory.
func NewMemory() (mem *Memory) {
	mem = &Memory{
		register: make(map[uint16]io.Register),
	}

	return
}

// Map a pseudo-register device at an address.
func (mem *Memory) Map(addr uint16, reg io.Register) {
	if mem.register == nil {
		mem.register = make(map[uint16]io.Register)
	}

	if mem.Verbose {
		log.Printf("memory: map $%04x to %T", addr, reg)
	}

	mem.register[addr] = reg
}

// Unmap the pseudo-register at an address.
func (mem *Memory) Unmap(addr uint16) {
	delete(mem.register, addr)
}

// Registers returns the mapped pseudo-registers.
func (mem *Memory) Registers() map[uint16]io.Register {
	return mem.register
}

// Read a byte, as the CPU sees it.
func (mem *Memory) Read(addr uint16) (value uint8) {
	reg, ok := mem.register[addr]
	if ok {
		return reg.Peek()
	}

	return mem.Ram[addr]
}

// Write a byte.
func (mem *Memory) Write(addr uint16, value uint8) {
	mem.Ram[addr] = value
}

// Peek reads the stored byte, bypassing any pseudo-register.
func (mem *Memory) Peek(addr uint16) (value uint8) {
	return mem.Ram[addr]
}

// Word reads a little endian word of stored memory.
func (mem *Memory) Word(addr uint16) uint16 {
	return uint16(mem.Ram[addr+1])<<8 | uint16(mem.Ram[addr])
}

// Load stores data starting at an address, wrapping at the top of memory.
func (mem *Memory) Load(addr uint16, data []uint8) {
	for n, value := range data {
		mem.Ram[addr+uint16(n)] = value
	}
}

// Clear zeroes all memory.
func (mem *Memory) Clear() {
	clear(mem.Ram[:])
}

// Snapshot returns a copy of the stored bytes from lo to hi inclusive.
func (mem *Memory) Snapshot(lo, hi uint16) (data []uint8) {
	if hi < lo {
		return
	}

	data = make([]uint8, int(hi)-int(lo)+1)
	copy(data, mem.Ram[lo:int(hi)+1])

	return
}

// Checksum returns the CRC-32 of the stored bytes from lo to hi inclusive.
func (mem *Memory) Checksum(lo, hi uint16) uint32 {
	if hi < lo {
		return 0
	}

	return crc32.ChecksumIEEE(mem.Ram[lo : int(hi)+1])
}
