package cpu

import (
	"fmt"
	"strings"
)

// Peeker reads memory without side effects.
type Peeker interface {
	Peek(addr uint16) (value uint8)
}

// Disassembly is a single disassembled instruction.
type Disassembly struct {
	Address uint16  // Address of the opcode.
	Bytes   []uint8 // Encoded instruction.
	Entry   Entry   // Instruction table entry.
	Operand string  // Operand in assembler syntax.
}

// Mnemonic returns the lower case mnemonic, as the assembler writes it.
func (dis Disassembly) Mnemonic() string {
	return strings.ToLower(dis.Entry.Op.String())
}

// String returns the listing line for the instruction:
//
//	. AAAA  OP B1 B2 MNEM operand
func (dis Disassembly) String() string {
	var hex [3]string
	for n := range hex {
		if n < len(dis.Bytes) {
			hex[n] = fmt.Sprintf("%02X", dis.Bytes[n])
		} else {
			hex[n] = "  "
		}
	}

	text := fmt.Sprintf(". %04X  %s %s", dis.Address, strings.Join(hex[:], " "), dis.Entry.Op)
	if len(dis.Operand) > 0 {
		text += " " + dis.Operand
	}

	return text
}

// DisassembleOne disassembles the instruction at addr.
func DisassembleOne(mem Peeker, addr uint16) (dis Disassembly) {
	entry := Lookup(mem.Peek(addr))

	dis = Disassembly{
		Address: addr,
		Entry:   entry,
	}
	for n := range entry.Bytes {
		dis.Bytes = append(dis.Bytes, mem.Peek(addr+uint16(n)))
	}

	var lo, hi uint8
	if entry.Bytes > 1 {
		lo = dis.Bytes[1]
	}
	if entry.Bytes > 2 {
		hi = dis.Bytes[2]
	}
	word := uint16(hi)<<8 | uint16(lo)

	switch entry.Mode {
	case MODE_IMMEDIATE:
		dis.Operand = fmt.Sprintf("#$%02x", lo)
	case MODE_ZERO_PAGE:
		dis.Operand = fmt.Sprintf("$%02x", lo)
	case MODE_ZERO_PAGE_X:
		dis.Operand = fmt.Sprintf("$%02x,x", lo)
	case MODE_ZERO_PAGE_Y:
		dis.Operand = fmt.Sprintf("$%02x,y", lo)
	case MODE_ABSOLUTE:
		dis.Operand = fmt.Sprintf("$%04x", word)
	case MODE_ABSOLUTE_X:
		dis.Operand = fmt.Sprintf("$%04x,x", word)
	case MODE_ABSOLUTE_Y:
		dis.Operand = fmt.Sprintf("$%04x,y", word)
	case MODE_INDIRECT:
		dis.Operand = fmt.Sprintf("($%04x)", word)
	case MODE_INDEXED_INDIRECT:
		dis.Operand = fmt.Sprintf("($%02x,x)", lo)
	case MODE_INDIRECT_INDEXED:
		dis.Operand = fmt.Sprintf("($%02x),y", lo)
	case MODE_RELATIVE:
		next := addr + uint16(entry.Bytes)
		dis.Operand = fmt.Sprintf("$%04x", next+uint16(int8(lo)))
	}

	return
}

// Disassemble count instructions starting at start. Unknown opcodes are
// listed as single byte "???" instructions.
func Disassemble(mem Peeker, start uint16, count int) (lines []Disassembly) {
	addr := start
	for range count {
		dis := DisassembleOne(mem, addr)
		lines = append(lines, dis)
		addr += uint16(dis.Entry.Bytes)
	}

	return
}
