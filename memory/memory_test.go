// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/io"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Write(0xc000, 0x2a)
	assert.Equal(uint8(0x2a), mem.Read(0xc000))
	assert.Equal(uint8(0x2a), mem.Peek(0xc000))

	mem.Write(0xfffc, 0x00)
	mem.Write(0xfffd, 0x06)
	assert.Equal(uint16(0x0600), mem.Word(0xfffc))

	mem.Load(0xfffe, []uint8{1, 2, 3})
	assert.Equal(uint8(1), mem.Peek(0xfffe))
	assert.Equal(uint8(2), mem.Peek(0xffff))
	assert.Equal(uint8(3), mem.Peek(0x0000))

	mem.Clear()
	assert.Equal(uint8(0), mem.Peek(0xc000))
}

func TestMemoryRegister(t *testing.T) {
	assert := assert.New(t)

	mem := &Memory{}
	kb := &io.Keyboard{}
	mem.Map(io.REG_LAST_KEY, kb)
	assert.Len(mem.Registers(), 1)

	assert.NoError(kb.Press("k"))
	assert.Equal(uint8('k'), mem.Read(io.REG_LAST_KEY))

	// Writes are plain stores, and do not change what reads return.
	mem.Write(io.REG_LAST_KEY, 0x99)
	assert.Equal(uint8('k'), mem.Read(io.REG_LAST_KEY))
	assert.Equal(uint8(0x99), mem.Peek(io.REG_LAST_KEY))

	mem.Unmap(io.REG_LAST_KEY)
	assert.Equal(uint8(0x99), mem.Read(io.REG_LAST_KEY))
}

func TestMemoryRandom(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Map(io.REG_RANDOM, io.NewRandom(1))

	seen := map[uint8]bool{}
	for range 64 {
		seen[mem.Read(io.REG_RANDOM)] = true
	}
	assert.Greater(len(seen), 16)
	assert.Equal(uint8(0), mem.Peek(io.REG_RANDOM))
}

func TestMemorySnapshot(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()
	mem.Load(0x0200, []uint8{1, 2, 3, 4})

	assert.Equal([]uint8{1, 2, 3, 4}, mem.Snapshot(0x0200, 0x0203))
	assert.Nil(mem.Snapshot(0x0203, 0x0200))
	assert.Len(mem.Snapshot(0x0000, 0xffff), SIZE)

	snap := mem.Snapshot(0x0200, 0x0200)
	snap[0] = 9
	assert.Equal(uint8(1), mem.Peek(0x0200))

	sum := mem.Checksum(0x0200, 0x02ff)
	assert.Equal(sum, mem.Checksum(0x0200, 0x02ff))
	mem.Write(0x02ff, 0x55)
	assert.NotEqual(sum, mem.Checksum(0x0200, 0x02ff))
	assert.Equal(uint32(0), mem.Checksum(1, 0))
}
