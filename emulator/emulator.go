// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	gio "io"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/m6502/asm"
	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/internal"
	"github.com/ezrec/m6502/io"
	"github.com/ezrec/m6502/memory"
)

const (
	TICK_CYCLES     = 10000             // Cycle budget of a single tick.
	IRQ_CYCLE_LIMIT = 100 * TICK_CYCLES // Most cycles an interrupt handler may run.
)

var _emulator_defines = map[string]string{
	"TICK_CYCLES": fmt.Sprintf("%v", TICK_CYCLES),
}

// Emulator state. CPU + memory + pseudo-registers.
type Emulator struct {
	Verbose  bool           // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Memory   *memory.Memory // Memory the CPU executes from.
	Object   *asm.Object    // Reference to the currently loaded object code.

	Keyboard io.Keyboard // Last key pressed register.
	Jiffy    io.Jiffy    // Jiffy clock register.
	Random   io.Random   // Random byte register.

	TickCycles    int // Cycle budget of a tick.
	IrqCycleLimit int // Most cycles an interrupt handler may run in a tick.
	Ticks         int // Ticks since a reset.
}

// NewEmulator creates a new emulator, with its pseudo-registers mapped.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Memory:        memory.NewMemory(),
		Object:        &asm.Object{},
		TickCycles:    TICK_CYCLES,
		IrqCycleLimit: IRQ_CYCLE_LIMIT,
	}

	emu.Cpu = cpu.NewCpu(emu.Memory)
	emu.Random.Rewind()

	emu.Memory.Map(io.REG_LAST_KEY, &emu.Keyboard)
	emu.Memory.Map(io.REG_JIFFY_CLOCK, &emu.Jiffy)
	emu.Memory.Map(io.REG_RANDOM, &emu.Random)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.Concat2(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Keyboard.Defines(),
		emu.Jiffy.Defines(),
		emu.Random.Defines(),
	)
}

// Load object code text into memory.
func (emu *Emulator) Load(input gio.Reader) (err error) {
	obj, err := asm.ParseObject("object", input)
	if err != nil {
		var syntax *asm.ErrSyntax
		if errors.As(err, &syntax) {
			err = &ErrLoad{LineNo: syntax.LineNo, Line: syntax.Line, Err: syntax.Err}
		}
		return
	}

	err = emu.LoadObject(obj)
	return
}

// LoadObject loads object code into memory. Memory is only written
// once every record has been encoded.
func (emu *Emulator) LoadObject(obj *asm.Object) (err error) {
	type patch struct {
		addr uint16
		data []uint8
	}

	var patches []patch
	for _, rec := range obj.Records {
		var data []uint8
		data, err = rec.Bytes()
		if err != nil {
			err = &ErrLoad{LineNo: rec.LineNo, Line: rec.String(), Err: err}
			return
		}
		if len(data) > 0 {
			patches = append(patches, patch{addr: rec.Address, data: data})
		}
	}

	for _, p := range patches {
		emu.Memory.Load(p.addr, p.data)
	}
	emu.Object = obj

	if emu.Verbose {
		log.Printf("emulator: loaded %d records", len(patches))
	}

	return
}

// Reset the CPU from the reset vector, and rewind the pseudo-registers.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.rewind()
}

// ResetRandom starts the CPU with random register contents, drawn from
// the random register seeded with seed.
func (emu *Emulator) ResetRandom(seed uint64) {
	emu.Random.Seed = seed
	emu.rewind()

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.ResetRandom(emu.Random.Rand())
}

func (emu *Emulator) rewind() {
	for _, reg := range emu.Memory.Registers() {
		reg.Rewind()
	}
	emu.Ticks = 0
}

// step executes one instruction, counting at least one cycle.
func (emu *Emulator) step() int {
	return max(emu.Cpu.Step(), 1)
}

// Tick runs the CPU for one tick. The jiffy clock advances, then
// instructions run until the cycle budget is spent or a BRK halts the
// CPU. If interrupts are enabled, the IRQ handler then runs to its RTI.
// done is set once the CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Jiffy.Tick()
	emu.Ticks++

	budget := emu.TickCycles
	if budget <= 0 {
		budget = TICK_CYCLES
	}

	for spent := 0; spent < budget && !emu.Nmi; {
		spent += emu.step()
	}

	if emu.Nmi {
		done = true
		return
	}

	if !emu.Interrupt() {
		return
	}

	limit := emu.IrqCycleLimit
	if limit <= 0 {
		limit = IRQ_CYCLE_LIMIT
	}

	for spent := 0; emu.Pending; {
		if spent >= limit {
			err = &ErrRuntime{Address: emu.PC, LineNo: emu.LineNo(), Err: ErrIrqRunaway}
			return
		}
		spent += emu.step()
		if emu.Nmi {
			done = true
			return
		}
	}

	return
}

// LineNo returns the source line number of the instruction at the PC,
// or 0 if it is not known.
func (emu *Emulator) LineNo() int {
	rec, ok := emu.Object.Debug(emu.PC)
	if !ok {
		return 0
	}

	return rec.LineNo
}

// Press a key by its identifier.
func (emu *Emulator) Press(key string) (err error) {
	return emu.Keyboard.Press(key)
}

// PressRune presses the key of a typed character.
func (emu *Emulator) PressRune(r rune) (err error) {
	return emu.Keyboard.PressRune(r)
}

// Snapshot returns a copy of memory from lo to hi, inclusive.
func (emu *Emulator) Snapshot(lo, hi uint16) []uint8 {
	return emu.Memory.Snapshot(lo, hi)
}

// Checksum returns the checksum of memory from lo to hi, inclusive.
func (emu *Emulator) Checksum(lo, hi uint16) uint32 {
	return emu.Memory.Checksum(lo, hi)
}

// Disassemble count instructions from start.
func (emu *Emulator) Disassemble(start uint16, count int) []cpu.Disassembly {
	return cpu.Disassemble(emu.Memory, start, count)
}
