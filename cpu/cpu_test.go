package cpu

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ram is a flat memory for testing.
type ram [0x10000]uint8

func (r *ram) Read(addr uint16) uint8 { return r[addr] }

func (r *ram) Write(addr uint16, value uint8) { r[addr] = value }

func (r *ram) Peek(addr uint16) uint8 { return r[addr] }

// busMock records writes, and reads from a backing ram.
type busMock struct {
	mock.Mock
	ram
}

func (m *busMock) Write(addr uint16, value uint8) {
	m.Called(addr, value)
	m.ram.Write(addr, value)
}

// newTestCpu creates a cpu with code loaded at org and the PC pointing to it.
func newTestCpu(org uint16, code ...uint8) (cpu *Cpu, mem *ram) {
	mem = &ram{}
	copy(mem[org:], code)
	cpu = NewCpu(mem)
	cpu.PC = org
	return
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(0)
	mem[0xfffc] = 0x00
	mem[0xfffd] = 0xc0

	cpu.AC = 1
	cpu.XR = 2
	cpu.YR = 3
	cpu.Nmi = true
	cpu.Pending = true
	cpu.Reset()

	assert.Equal(uint16(0xc000), cpu.PC)
	assert.Equal(uint8(0), cpu.AC)
	assert.Equal(uint8(0), cpu.XR)
	assert.Equal(uint8(0), cpu.YR)
	assert.Equal(uint8(0xfd), cpu.SP)
	assert.Equal(uint8(0x24), cpu.SR)
	assert.False(cpu.Nmi)
	assert.False(cpu.Pending)
	assert.Equal(0, cpu.Cycles)
}

func TestCpuResetRandom(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(0)
	rng := rand.New(rand.NewPCG(1, 2))
	for range 32 {
		cpu.ResetRandom(rng)
		assert.True(cpu.Flag(FLAG_UNUSED))
	}

	a, _ := newTestCpu(0)
	b, _ := newTestCpu(0)
	a.ResetRandom(rand.New(rand.NewPCG(7, 7)))
	b.ResetRandom(rand.New(rand.NewPCG(7, 7)))
	assert.Equal(a.String(), b.String())
}

func TestCpuStack(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(0)
	assert.Equal(uint8(0xfd), cpu.SP)

	cpu.Push(0x11)
	cpu.Push(0x22)
	cpu.Push(0x33)
	assert.Equal(uint8(0xfa), cpu.SP)
	assert.Equal(uint8(0x11), mem[0x01fd])
	assert.Equal(uint8(0x33), mem[0x01fb])

	assert.Equal(uint8(0x33), cpu.Pull())
	assert.Equal(uint8(0x22), cpu.Pull())
	assert.Equal(uint8(0x11), cpu.Pull())
	assert.Equal(uint8(0xfd), cpu.SP)

	// Wraps within the stack page.
	cpu.SP = 0x00
	cpu.Push(0x44)
	assert.Equal(uint8(0xff), cpu.SP)
	assert.Equal(uint8(0x44), mem[0x0100])
	assert.Equal(uint8(0x44), cpu.Pull())
	assert.Equal(uint8(0x00), cpu.SP)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(0x0600)
	cpu.AC = 0x2a
	cpu.SR = FLAG_NEGATIVE | FLAG_UNUSED | FLAG_CARRY

	text := cpu.String()
	assert.Contains(text, "ac: $2a")
	assert.Contains(text, "sr: $a1 N.-....C")
	assert.Contains(text, "pc: $0600")
}

func TestCpuDefines(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(0)
	defines := map[string]string{}
	for name, value := range cpu.Defines() {
		defines[name] = value
	}

	assert.Equal("$fffc", defines["RESET_VECTOR"])
	assert.Equal("$fffe", defines["IRQ_VECTOR"])
	assert.Equal("$fffa", defines["NMI_VECTOR"])
	assert.Equal("$0100", defines["STACK"])
}

func TestCpuHandlers(t *testing.T) {
	assert := assert.New(t)

	for op := range opCount {
		assert.NotNil(execute[op], Op(op).String())
	}

	for mode := range modeCount {
		assert.NotNil(resolve[mode], Mode(mode).String())
	}
}

func TestCpuLoadStore(t *testing.T) {
	assert := assert.New(t)

	// lda #$2a; sta $c000; ldx $c000; ldy #$00
	cpu, mem := newTestCpu(0x0600, 0xa9, 0x2a, 0x8d, 0x00, 0xc0, 0xae, 0x00, 0xc0, 0xa0, 0x00)

	assert.Equal(2, cpu.Step())
	assert.Equal(uint8(0x2a), cpu.AC)
	assert.Equal(uint16(0x0602), cpu.PC)

	assert.Equal(4, cpu.Step())
	assert.Equal(uint8(0x2a), mem[0xc000])
	assert.Equal(uint16(0x0605), cpu.PC)

	assert.Equal(4, cpu.Step())
	assert.Equal(uint8(0x2a), cpu.XR)
	assert.False(cpu.Flag(FLAG_ZERO))

	assert.Equal(2, cpu.Step())
	assert.Equal(uint8(0), cpu.YR)
	assert.True(cpu.Flag(FLAG_ZERO))
	assert.False(cpu.Flag(FLAG_NEGATIVE))

	assert.Equal(12, cpu.Cycles)
	assert.Equal(4, cpu.Steps)
}

func TestCpuBusWrites(t *testing.T) {
	assert := assert.New(t)

	bus := &busMock{}
	copy(bus.ram[0x0600:], []uint8{0xa9, 0x2a, 0x8d, 0x00, 0xc0, 0x48})
	bus.On("Write", uint16(0xc000), uint8(0x2a)).Once()
	bus.On("Write", uint16(0x01fd), uint8(0x2a)).Once()

	cpu := NewCpu(bus)
	cpu.PC = 0x0600
	cpu.Step()
	cpu.Step()
	cpu.Step()

	bus.AssertExpectations(t)
	assert.Equal(uint8(0xfc), cpu.SP)
}

func TestCpuAddressing(t *testing.T) {
	type test struct {
		name   string
		code   []uint8
		setup  func(cpu *Cpu, mem *ram)
		ac     uint8
		cycles int
	}

	table := []test{
		{name: "zero page", code: []uint8{0xa5, 0x10}, ac: 0x10, cycles: 3},
		{name: "zero page,x wraps", code: []uint8{0xb5, 0xf8},
			setup: func(cpu *Cpu, mem *ram) { cpu.XR = 0x10 }, ac: 0x08, cycles: 4},
		{name: "absolute", code: []uint8{0xad, 0x34, 0x12}, ac: 0x34, cycles: 4},
		{name: "absolute,x", code: []uint8{0xbd, 0x00, 0x12},
			setup: func(cpu *Cpu, mem *ram) { cpu.XR = 0x05 }, ac: 0x05, cycles: 4},
		{name: "absolute,x page cross", code: []uint8{0xbd, 0xff, 0x12},
			setup: func(cpu *Cpu, mem *ram) { cpu.XR = 0x01 }, ac: 0x00, cycles: 5},
		{name: "absolute,y page cross", code: []uint8{0xb9, 0xff, 0x12},
			setup: func(cpu *Cpu, mem *ram) { cpu.YR = 0x02 }, ac: 0x01, cycles: 5},
		{name: "(zp,x)", code: []uint8{0xa1, 0x20},
			setup: func(cpu *Cpu, mem *ram) {
				cpu.XR = 0x04
				mem[0x24] = 0x80
				mem[0x25] = 0x12
			}, ac: 0x80, cycles: 6},
		{name: "(zp,x) pointer wraps", code: []uint8{0xa1, 0xfe},
			setup: func(cpu *Cpu, mem *ram) {
				cpu.XR = 0x01
				mem[0xff] = 0x81
				mem[0x00] = 0x12
			}, ac: 0x81, cycles: 6},
		{name: "(zp),y", code: []uint8{0xb1, 0x20},
			setup: func(cpu *Cpu, mem *ram) {
				cpu.YR = 0x01
				mem[0x20] = 0x80
				mem[0x21] = 0x12
			}, ac: 0x81, cycles: 5},
		{name: "(zp),y page cross", code: []uint8{0xb1, 0x20},
			setup: func(cpu *Cpu, mem *ram) {
				cpu.YR = 0x01
				mem[0x20] = 0xff
				mem[0x21] = 0x12
			}, ac: 0x00, cycles: 6},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			cpu, mem := newTestCpu(0x0600, tt.code...)
			for n := range 0x100 {
				mem[n] = uint8(n)
				mem[0x1200+n] = uint8(n)
				mem[0x1300+n] = uint8(n)
			}
			if tt.setup != nil {
				tt.setup(cpu, mem)
			}

			cycles := cpu.Step()
			assert.Equal(tt.ac, cpu.AC)
			assert.Equal(tt.cycles, cycles)
			assert.Equal(uint16(0x0600+len(tt.code)), cpu.PC)
		})
	}
}

func TestCpuStoreNoPagePenalty(t *testing.T) {
	assert := assert.New(t)

	// sta $10ff,x
	cpu, mem := newTestCpu(0x0600, 0x9d, 0xff, 0x10)
	cpu.AC = 0x99
	cpu.XR = 0x01

	assert.Equal(5, cpu.Step())
	assert.Equal(uint8(0x99), mem[0x1100])
}

func TestCpuIndirectBug(t *testing.T) {
	assert := assert.New(t)

	// jmp ($10ff)
	cpu, mem := newTestCpu(0x0600, 0x6c, 0xff, 0x10)
	mem[0x10ff] = 0x34
	mem[0x1000] = 0x12
	mem[0x1100] = 0x56

	assert.Equal(5, cpu.Step())
	assert.Equal(uint16(0x1234), cpu.PC)
}

func TestCpuBranch(t *testing.T) {
	assert := assert.New(t)

	// Taken, crossing into the next page.
	cpu, _ := newTestCpu(0x10fe, 0xf0, 0x05)
	cpu.SR |= FLAG_ZERO
	assert.Equal(4, cpu.Step())
	assert.Equal(uint16(0x1105), cpu.PC)

	// Taken, same page.
	cpu, _ = newTestCpu(0x1000, 0xf0, 0x10)
	cpu.SR |= FLAG_ZERO
	assert.Equal(3, cpu.Step())
	assert.Equal(uint16(0x1012), cpu.PC)

	// Not taken.
	cpu, _ = newTestCpu(0x1000, 0xf0, 0x10)
	assert.Equal(2, cpu.Step())
	assert.Equal(uint16(0x1002), cpu.PC)

	// Backwards.
	cpu, _ = newTestCpu(0x1010, 0xd0, 0xfc)
	assert.Equal(3, cpu.Step())
	assert.Equal(uint16(0x100e), cpu.PC)

	// Every condition.
	conds := []struct {
		opcode uint8
		flag   uint8
		set    bool
	}{
		{0x90, FLAG_CARRY, false},
		{0xb0, FLAG_CARRY, true},
		{0xd0, FLAG_ZERO, false},
		{0xf0, FLAG_ZERO, true},
		{0x10, FLAG_NEGATIVE, false},
		{0x30, FLAG_NEGATIVE, true},
		{0x50, FLAG_OVERFLOW, false},
		{0x70, FLAG_OVERFLOW, true},
	}
	for _, cond := range conds {
		cpu, _ = newTestCpu(0x1000, cond.opcode, 0x02)
		cpu.setFlag(cond.flag, cond.set)
		cpu.Step()
		assert.Equal(uint16(0x1004), cpu.PC, Lookup(cond.opcode).String())

		cpu, _ = newTestCpu(0x1000, cond.opcode, 0x02)
		cpu.setFlag(cond.flag, !cond.set)
		cpu.Step()
		assert.Equal(uint16(0x1002), cpu.PC, Lookup(cond.opcode).String())
	}
}

func TestCpuSubroutine(t *testing.T) {
	assert := assert.New(t)

	// jsr $0700
	cpu, mem := newTestCpu(0x0600, 0x20, 0x00, 0x07)
	mem[0x0700] = 0x60 // rts

	assert.Equal(6, cpu.Step())
	assert.Equal(uint16(0x0700), cpu.PC)
	assert.Equal(uint8(0xfb), cpu.SP)
	assert.Equal(uint8(0x06), mem[0x01fd])
	assert.Equal(uint8(0x02), mem[0x01fc])

	assert.Equal(6, cpu.Step())
	assert.Equal(uint16(0x0603), cpu.PC)
	assert.Equal(uint8(0xfd), cpu.SP)
}

func TestCpuJump(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(0x0600, 0x4c, 0x34, 0x12)
	assert.Equal(3, cpu.Step())
	assert.Equal(uint16(0x1234), cpu.PC)
}

func TestCpuBreak(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(0x0600, 0x00)
	assert.Equal(7, cpu.Step())
	assert.True(cpu.Nmi)
	assert.True(cpu.Flag(FLAG_BREAK))
	assert.Equal(uint16(0x0601), cpu.PC)
}

func TestCpuInterrupt(t *testing.T) {
	assert := assert.New(t)

	cpu, mem := newTestCpu(0x0600)
	mem[0xfffe] = 0x00
	mem[0xffff] = 0x80
	mem[0x8000] = 0x40 // rti

	// Masked.
	assert.False(cpu.Interrupt())
	assert.False(cpu.Pending)
	assert.Equal(uint16(0x0600), cpu.PC)

	cpu.SR = FLAG_UNUSED | FLAG_CARRY
	assert.True(cpu.Interrupt())
	assert.True(cpu.Pending)
	assert.True(cpu.Flag(FLAG_INTERRUPT))
	assert.Equal(uint16(0x8000), cpu.PC)
	assert.Equal(uint8(0x06), mem[0x01fd])
	assert.Equal(uint8(0x00), mem[0x01fc])
	assert.Equal(FLAG_UNUSED|FLAG_BREAK|FLAG_CARRY, mem[0x01fb])

	assert.Equal(6, cpu.Step())
	assert.False(cpu.Pending)
	assert.Equal(uint16(0x0600), cpu.PC)
	assert.Equal(uint8(0xfd), cpu.SP)
	assert.True(cpu.Flag(FLAG_CARRY))
	assert.False(cpu.Flag(FLAG_INTERRUPT))
}

func TestCpuStatusStack(t *testing.T) {
	assert := assert.New(t)

	// php; pla; lda #$c3; pha; plp
	cpu, _ := newTestCpu(0x0600, 0x08, 0x68, 0xa9, 0xc3, 0x48, 0x28)
	cpu.SR = FLAG_CARRY

	cpu.Step()
	cpu.Step()
	assert.Equal(FLAG_CARRY|FLAG_BREAK|FLAG_UNUSED, cpu.AC)

	cpu.Step()
	cpu.Step()
	cpu.Step()
	assert.Equal(uint8(0xe3), cpu.SR)
	assert.Equal(uint8(0xc3), cpu.AC)
	assert.Equal(uint8(0xfd), cpu.SP)
}

func TestCpuTransfer(t *testing.T) {
	assert := assert.New(t)

	// tax; tay; tsx; txa; ldx #$80; txs; tya
	cpu, _ := newTestCpu(0x0600, 0xaa, 0xa8, 0xba, 0x8a, 0xa2, 0x80, 0x9a, 0x98)
	cpu.AC = 0x42

	cpu.Step()
	assert.Equal(uint8(0x42), cpu.XR)
	cpu.Step()
	assert.Equal(uint8(0x42), cpu.YR)
	cpu.Step()
	assert.Equal(uint8(0xfd), cpu.XR)
	assert.True(cpu.Flag(FLAG_NEGATIVE))
	cpu.Step()
	assert.Equal(uint8(0xfd), cpu.AC)
	cpu.Step()
	cpu.SR &^= FLAG_NEGATIVE
	cpu.Step()
	assert.Equal(uint8(0x80), cpu.SP)
	assert.False(cpu.Flag(FLAG_NEGATIVE))
	cpu.Step()
	assert.Equal(uint8(0x42), cpu.AC)
}

func TestCpuShift(t *testing.T) {
	assert := assert.New(t)

	// asl a; rol a; lsr a; ror a
	cpu, _ := newTestCpu(0x0600, 0x0a, 0x2a, 0x4a, 0x6a)
	cpu.AC = 0x81

	assert.Equal(2, cpu.Step())
	assert.Equal(uint8(0x02), cpu.AC)
	assert.True(cpu.Flag(FLAG_CARRY))

	cpu.Step()
	assert.Equal(uint8(0x05), cpu.AC)
	assert.False(cpu.Flag(FLAG_CARRY))

	cpu.Step()
	assert.Equal(uint8(0x02), cpu.AC)
	assert.True(cpu.Flag(FLAG_CARRY))

	cpu.Step()
	assert.Equal(uint8(0x81), cpu.AC)
	assert.False(cpu.Flag(FLAG_CARRY))
	assert.True(cpu.Flag(FLAG_NEGATIVE))

	// inc $10; dec $11; asl $12
	cpu, mem := newTestCpu(0x0600, 0xe6, 0x10, 0xc6, 0x11, 0x06, 0x12)
	mem[0x10] = 0xff
	mem[0x11] = 0x01
	mem[0x12] = 0x40

	assert.Equal(5, cpu.Step())
	assert.Equal(uint8(0x00), mem[0x10])
	assert.True(cpu.Flag(FLAG_ZERO))
	cpu.Step()
	assert.Equal(uint8(0x00), mem[0x11])
	cpu.Step()
	assert.Equal(uint8(0x80), mem[0x12])
	assert.True(cpu.Flag(FLAG_NEGATIVE))
}

func TestCpuCompare(t *testing.T) {
	table := []struct {
		reg, mem uint8
		c, z, n  bool
	}{
		{0x10, 0x10, true, true, false},
		{0x20, 0x10, true, false, false},
		{0x10, 0x20, false, false, true},
		{0x00, 0xff, false, false, false},
		{0xff, 0x00, true, false, true},
	}

	for _, opcode := range []uint8{0xc9, 0xe0, 0xc0} {
		for _, tt := range table {
			assert := assert.New(t)

			cpu, _ := newTestCpu(0x0600, opcode, tt.mem)
			cpu.AC = tt.reg
			cpu.XR = tt.reg
			cpu.YR = tt.reg
			cpu.Step()

			assert.Equal(tt.c, cpu.Flag(FLAG_CARRY), "%02x %+v", opcode, tt)
			assert.Equal(tt.z, cpu.Flag(FLAG_ZERO), "%02x %+v", opcode, tt)
			assert.Equal(tt.n, cpu.Flag(FLAG_NEGATIVE), "%02x %+v", opcode, tt)
		}
	}
}

func TestCpuBit(t *testing.T) {
	assert := assert.New(t)

	// bit $10
	cpu, mem := newTestCpu(0x0600, 0x24, 0x10)
	mem[0x10] = 0xc0
	cpu.AC = 0x01

	cpu.Step()
	assert.True(cpu.Flag(FLAG_ZERO))
	assert.True(cpu.Flag(FLAG_NEGATIVE))
	assert.True(cpu.Flag(FLAG_OVERFLOW))
	assert.Equal(uint8(0x01), cpu.AC)
}

func TestCpuIllegal(t *testing.T) {
	assert := assert.New(t)

	cpu, _ := newTestCpu(0x0600, 0x02)
	cpu.AC = 0x12
	sr := cpu.SR

	assert.Equal(0, cpu.Step())
	assert.Equal(uint16(0x0601), cpu.PC)
	assert.Equal(uint8(0x12), cpu.AC)
	assert.Equal(sr, cpu.SR)
	assert.False(cpu.Nmi)
}

func doArith(opcode uint8, ac, operand uint8, carry, decimal bool) (cpu *Cpu) {
	cpu, _ = newTestCpu(0x0600, opcode, operand)
	cpu.AC = ac
	cpu.setFlag(FLAG_CARRY, carry)
	cpu.setFlag(FLAG_DECIMAL, decimal)
	cpu.Step()
	return
}

func TestCpuAdc(t *testing.T) {
	assert := assert.New(t)

	cpu := doArith(0x69, 0x50, 0x50, false, false)
	assert.Equal(uint8(0xa0), cpu.AC)
	assert.True(cpu.Flag(FLAG_OVERFLOW))
	assert.False(cpu.Flag(FLAG_CARRY))
	assert.True(cpu.Flag(FLAG_NEGATIVE))

	cpu = doArith(0x69, 0xff, 0x01, false, false)
	assert.Equal(uint8(0x00), cpu.AC)
	assert.True(cpu.Flag(FLAG_CARRY))
	assert.True(cpu.Flag(FLAG_ZERO))
	assert.False(cpu.Flag(FLAG_OVERFLOW))
}

func TestCpuAdcBinary(t *testing.T) {
	assert := assert.New(t)

	mem := &ram{}
	cpu := NewCpu(mem)
	mem[0x0600] = 0x69

	for ac := range 0x100 {
		for operand := range 0x100 {
			for carry := range 2 {
				mem[0x0601] = uint8(operand)
				cpu.PC = 0x0600
				cpu.AC = uint8(ac)
				cpu.SR = FLAG_UNUSED | uint8(carry)
				cpu.Step()

				sum := ac + operand + carry
				overflow := (^(ac^operand))&(ac^sum)&0x80 != 0
				if uint8(sum) != cpu.AC ||
					(sum > 0xff) != cpu.Flag(FLAG_CARRY) ||
					overflow != cpu.Flag(FLAG_OVERFLOW) {
					assert.Fail("adc", "$%02x + $%02x + %d: got %v", ac, operand, carry, cpu)
					return
				}
			}
		}
	}
}

func TestCpuSbcBinary(t *testing.T) {
	assert := assert.New(t)

	mem := &ram{}
	cpu := NewCpu(mem)
	mem[0x0600] = 0xe9

	for ac := range 0x100 {
		for operand := range 0x100 {
			for carry := range 2 {
				mem[0x0601] = uint8(operand)
				cpu.PC = 0x0600
				cpu.AC = uint8(ac)
				cpu.SR = FLAG_UNUSED | uint8(carry)
				cpu.Step()

				diff := ac - operand - (1 - carry)
				overflow := (ac^operand)&(ac^diff)&0x80 != 0
				if uint8(diff) != cpu.AC ||
					(diff >= 0) != cpu.Flag(FLAG_CARRY) ||
					overflow != cpu.Flag(FLAG_OVERFLOW) {
					assert.Fail("sbc", "$%02x - $%02x - %d: got %v", ac, operand, 1-carry, cpu)
					return
				}
			}
		}
	}
}

func TestCpuDecimal(t *testing.T) {
	table := []struct {
		opcode      uint8
		ac, operand uint8
		carry       bool
		result      uint8
		carryOut    bool
		name        string
	}{
		{0x69, 0x09, 0x01, false, 0x10, false, "09+01"},
		{0x69, 0x09, 0x01, true, 0x11, false, "09+01+c"},
		{0x69, 0x99, 0x01, false, 0x00, true, "99+01"},
		{0x69, 0x45, 0x55, true, 0x01, true, "45+55+c"},
		{0xe9, 0x10, 0x01, true, 0x09, true, "10-01"},
		{0xe9, 0x10, 0x01, false, 0x08, true, "10-01-b"},
		{0xe9, 0x00, 0x01, true, 0x99, false, "00-01"},
		{0xe9, 0x50, 0x50, true, 0x00, true, "50-50"},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			cpu := doArith(tt.opcode, tt.ac, tt.operand, tt.carry, true)
			assert.Equal(tt.result, cpu.AC)
			assert.Equal(tt.carryOut, cpu.Flag(FLAG_CARRY))
			assert.Equal(tt.result == 0, cpu.Flag(FLAG_ZERO))
		})
	}
}

func TestCpuFlags(t *testing.T) {
	assert := assert.New(t)

	// sec; sed; sei; clc; cld; cli; clv
	cpu, _ := newTestCpu(0x0600, 0x38, 0xf8, 0x78, 0x18, 0xd8, 0x58, 0xb8)
	cpu.SR = FLAG_UNUSED | FLAG_OVERFLOW

	cpu.Step()
	cpu.Step()
	cpu.Step()
	assert.Equal(FLAG_UNUSED|FLAG_OVERFLOW|FLAG_CARRY|FLAG_DECIMAL|FLAG_INTERRUPT, cpu.SR)

	for range 4 {
		cpu.Step()
	}
	assert.Equal(FLAG_UNUSED, cpu.SR)
}
