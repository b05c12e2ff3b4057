package cpu

import (
	"fmt"
	"strings"
)

// Mode is an addressing mode.
type Mode int

//go:generate go tool stringer -linecomment -type=Mode
const (
	MODE_IMPLIED          = Mode(0)  // implied
	MODE_ACCUMULATOR      = Mode(1)  // accumulator
	MODE_IMMEDIATE        = Mode(2)  // immediate
	MODE_ZERO_PAGE        = Mode(3)  // zeroPage
	MODE_ZERO_PAGE_X      = Mode(4)  // zeroPageX
	MODE_ZERO_PAGE_Y      = Mode(5)  // zeroPageY
	MODE_ABSOLUTE         = Mode(6)  // absolute
	MODE_ABSOLUTE_X       = Mode(7)  // absoluteX
	MODE_ABSOLUTE_Y       = Mode(8)  // absoluteY
	MODE_INDIRECT         = Mode(9)  // indirect
	MODE_INDEXED_INDIRECT = Mode(10) // indexedIndirect
	MODE_INDIRECT_INDEXED = Mode(11) // indirectIndexed
	MODE_RELATIVE         = Mode(12) // relative
)

const modeCount = int(MODE_RELATIVE) + 1

// Bytes returns the encoded instruction length for the mode.
func (mode Mode) Bytes() int {
	switch mode {
	case MODE_IMPLIED, MODE_ACCUMULATOR:
		return 1
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y, MODE_INDIRECT:
		return 3
	default:
		return 2
	}
}

// Op is an instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ILLEGAL = Op(iota) // ???
	OP_ADC                // ADC
	OP_AND                // AND
	OP_ASL                // ASL
	OP_BCC                // BCC
	OP_BCS                // BCS
	OP_BEQ                // BEQ
	OP_BIT                // BIT
	OP_BMI                // BMI
	OP_BNE                // BNE
	OP_BPL                // BPL
	OP_BRK                // BRK
	OP_BVC                // BVC
	OP_BVS                // BVS
	OP_CLC                // CLC
	OP_CLD                // CLD
	OP_CLI                // CLI
	OP_CLV                // CLV
	OP_CMP                // CMP
	OP_CPX                // CPX
	OP_CPY                // CPY
	OP_DEC                // DEC
	OP_DEX                // DEX
	OP_DEY                // DEY
	OP_EOR                // EOR
	OP_INC                // INC
	OP_INX                // INX
	OP_INY                // INY
	OP_JMP                // JMP
	OP_JSR                // JSR
	OP_LDA                // LDA
	OP_LDX                // LDX
	OP_LDY                // LDY
	OP_LSR                // LSR
	OP_NOP                // NOP
	OP_ORA                // ORA
	OP_PHA                // PHA
	OP_PHP                // PHP
	OP_PLA                // PLA
	OP_PLP                // PLP
	OP_ROL                // ROL
	OP_ROR                // ROR
	OP_RTI                // RTI
	OP_RTS                // RTS
	OP_SBC                // SBC
	OP_SEC                // SEC
	OP_SED                // SED
	OP_SEI                // SEI
	OP_STA                // STA
	OP_STX                // STX
	OP_STY                // STY
	OP_TAX                // TAX
	OP_TAY                // TAY
	OP_TSX                // TSX
	OP_TXA                // TXA
	OP_TXS                // TXS
	OP_TYA                // TYA
)

const opCount = int(OP_TYA) + 1

// ParseOp returns the Op for a mnemonic, in any letter case.
func ParseOp(name string) (op Op, ok bool) {
	op, ok = opByName[strings.ToUpper(name)]
	return
}

// Entry is a single instruction table entry.
type Entry struct {
	Opcode        uint8 // Opcode byte.
	Op            Op    // Mnemonic.
	Mode          Mode  // Addressing mode.
	Bytes         int   // Encoded length, including the opcode.
	Cycles        int   // Base cycle cost.
	PageSensitive bool  // Indexed reads that cross a page cost one more cycle.
}

// IsBranch returns true for the conditional relative branches.
func (entry Entry) IsBranch() bool {
	return entry.Mode == MODE_RELATIVE
}

// String returns the mnemonic and mode of the entry.
func (entry Entry) String() string {
	return fmt.Sprintf("%v %v", entry.Op, entry.Mode)
}

// Illegal is the entry for every byte that is not a documented opcode.
var Illegal = Entry{Op: OP_ILLEGAL, Mode: MODE_IMPLIED, Bytes: 1, Cycles: 0}

// entries is the documented NMOS instruction set.
var entries = [...]Entry{
	{0x69, OP_ADC, MODE_IMMEDIATE, 2, 2, false},
	{0x65, OP_ADC, MODE_ZERO_PAGE, 2, 3, false},
	{0x75, OP_ADC, MODE_ZERO_PAGE_X, 2, 4, false},
	{0x6D, OP_ADC, MODE_ABSOLUTE, 3, 4, false},
	{0x7D, OP_ADC, MODE_ABSOLUTE_X, 3, 4, true},
	{0x79, OP_ADC, MODE_ABSOLUTE_Y, 3, 4, true},
	{0x61, OP_ADC, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0x71, OP_ADC, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0x29, OP_AND, MODE_IMMEDIATE, 2, 2, false},
	{0x25, OP_AND, MODE_ZERO_PAGE, 2, 3, false},
	{0x35, OP_AND, MODE_ZERO_PAGE_X, 2, 4, false},
	{0x2D, OP_AND, MODE_ABSOLUTE, 3, 4, false},
	{0x3D, OP_AND, MODE_ABSOLUTE_X, 3, 4, true},
	{0x39, OP_AND, MODE_ABSOLUTE_Y, 3, 4, true},
	{0x21, OP_AND, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0x31, OP_AND, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0x0A, OP_ASL, MODE_ACCUMULATOR, 1, 2, false},
	{0x06, OP_ASL, MODE_ZERO_PAGE, 2, 5, false},
	{0x16, OP_ASL, MODE_ZERO_PAGE_X, 2, 6, false},
	{0x0E, OP_ASL, MODE_ABSOLUTE, 3, 6, false},
	{0x1E, OP_ASL, MODE_ABSOLUTE_X, 3, 7, false},

	{0x90, OP_BCC, MODE_RELATIVE, 2, 2, false},

	{0xB0, OP_BCS, MODE_RELATIVE, 2, 2, false},

	{0xF0, OP_BEQ, MODE_RELATIVE, 2, 2, false},

	{0x30, OP_BMI, MODE_RELATIVE, 2, 2, false},

	{0xD0, OP_BNE, MODE_RELATIVE, 2, 2, false},

	{0x10, OP_BPL, MODE_RELATIVE, 2, 2, false},

	{0x50, OP_BVC, MODE_RELATIVE, 2, 2, false},

	{0x70, OP_BVS, MODE_RELATIVE, 2, 2, false},

	{0x24, OP_BIT, MODE_ZERO_PAGE, 2, 3, false},
	{0x2C, OP_BIT, MODE_ABSOLUTE, 3, 4, false},

	{0x00, OP_BRK, MODE_IMPLIED, 1, 7, false},

	{0x18, OP_CLC, MODE_IMPLIED, 1, 2, false},

	{0xD8, OP_CLD, MODE_IMPLIED, 1, 2, false},

	{0x58, OP_CLI, MODE_IMPLIED, 1, 2, false},

	{0xB8, OP_CLV, MODE_IMPLIED, 1, 2, false},

	{0xC9, OP_CMP, MODE_IMMEDIATE, 2, 2, false},
	{0xC5, OP_CMP, MODE_ZERO_PAGE, 2, 3, false},
	{0xD5, OP_CMP, MODE_ZERO_PAGE_X, 2, 4, false},
	{0xCD, OP_CMP, MODE_ABSOLUTE, 3, 4, false},
	{0xDD, OP_CMP, MODE_ABSOLUTE_X, 3, 4, true},
	{0xD9, OP_CMP, MODE_ABSOLUTE_Y, 3, 4, true},
	{0xC1, OP_CMP, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0xD1, OP_CMP, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0xE0, OP_CPX, MODE_IMMEDIATE, 2, 2, false},
	{0xE4, OP_CPX, MODE_ZERO_PAGE, 2, 3, false},
	{0xEC, OP_CPX, MODE_ABSOLUTE, 3, 4, false},

	{0xC0, OP_CPY, MODE_IMMEDIATE, 2, 2, false},
	{0xC4, OP_CPY, MODE_ZERO_PAGE, 2, 3, false},
	{0xCC, OP_CPY, MODE_ABSOLUTE, 3, 4, false},

	{0xC6, OP_DEC, MODE_ZERO_PAGE, 2, 5, false},
	{0xD6, OP_DEC, MODE_ZERO_PAGE_X, 2, 6, false},
	{0xCE, OP_DEC, MODE_ABSOLUTE, 3, 6, false},
	{0xDE, OP_DEC, MODE_ABSOLUTE_X, 3, 7, false},

	{0xCA, OP_DEX, MODE_IMPLIED, 1, 2, false},

	{0x88, OP_DEY, MODE_IMPLIED, 1, 2, false},

	{0x49, OP_EOR, MODE_IMMEDIATE, 2, 2, false},
	{0x45, OP_EOR, MODE_ZERO_PAGE, 2, 3, false},
	{0x55, OP_EOR, MODE_ZERO_PAGE_X, 2, 4, false},
	{0x4D, OP_EOR, MODE_ABSOLUTE, 3, 4, false},
	{0x5D, OP_EOR, MODE_ABSOLUTE_X, 3, 4, true},
	{0x59, OP_EOR, MODE_ABSOLUTE_Y, 3, 4, true},
	{0x41, OP_EOR, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0x51, OP_EOR, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0xE6, OP_INC, MODE_ZERO_PAGE, 2, 5, false},
	{0xF6, OP_INC, MODE_ZERO_PAGE_X, 2, 6, false},
	{0xEE, OP_INC, MODE_ABSOLUTE, 3, 6, false},
	{0xFE, OP_INC, MODE_ABSOLUTE_X, 3, 7, false},

	{0xE8, OP_INX, MODE_IMPLIED, 1, 2, false},

	{0xC8, OP_INY, MODE_IMPLIED, 1, 2, false},

	{0x4C, OP_JMP, MODE_ABSOLUTE, 3, 3, false},
	{0x6C, OP_JMP, MODE_INDIRECT, 3, 5, false},

	{0x20, OP_JSR, MODE_ABSOLUTE, 3, 6, false},

	{0xA9, OP_LDA, MODE_IMMEDIATE, 2, 2, false},
	{0xA5, OP_LDA, MODE_ZERO_PAGE, 2, 3, false},
	{0xB5, OP_LDA, MODE_ZERO_PAGE_X, 2, 4, false},
	{0xAD, OP_LDA, MODE_ABSOLUTE, 3, 4, false},
	{0xBD, OP_LDA, MODE_ABSOLUTE_X, 3, 4, true},
	{0xB9, OP_LDA, MODE_ABSOLUTE_Y, 3, 4, true},
	{0xA1, OP_LDA, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0xB1, OP_LDA, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0xA2, OP_LDX, MODE_IMMEDIATE, 2, 2, false},
	{0xA6, OP_LDX, MODE_ZERO_PAGE, 2, 3, false},
	{0xB6, OP_LDX, MODE_ZERO_PAGE_Y, 2, 4, false},
	{0xAE, OP_LDX, MODE_ABSOLUTE, 3, 4, false},
	{0xBE, OP_LDX, MODE_ABSOLUTE_Y, 3, 4, true},

	{0xA0, OP_LDY, MODE_IMMEDIATE, 2, 2, false},
	{0xA4, OP_LDY, MODE_ZERO_PAGE, 2, 3, false},
	{0xB4, OP_LDY, MODE_ZERO_PAGE_X, 2, 4, false},
	{0xAC, OP_LDY, MODE_ABSOLUTE, 3, 4, false},
	{0xBC, OP_LDY, MODE_ABSOLUTE_X, 3, 4, true},

	{0x4A, OP_LSR, MODE_ACCUMULATOR, 1, 2, false},
	{0x46, OP_LSR, MODE_ZERO_PAGE, 2, 5, false},
	{0x56, OP_LSR, MODE_ZERO_PAGE_X, 2, 6, false},
	{0x4E, OP_LSR, MODE_ABSOLUTE, 3, 6, false},
	{0x5E, OP_LSR, MODE_ABSOLUTE_X, 3, 7, false},

	{0xEA, OP_NOP, MODE_IMPLIED, 1, 2, false},

	{0x09, OP_ORA, MODE_IMMEDIATE, 2, 2, false},
	{0x05, OP_ORA, MODE_ZERO_PAGE, 2, 3, false},
	{0x15, OP_ORA, MODE_ZERO_PAGE_X, 2, 4, false},
	{0x0D, OP_ORA, MODE_ABSOLUTE, 3, 4, false},
	{0x1D, OP_ORA, MODE_ABSOLUTE_X, 3, 4, true},
	{0x19, OP_ORA, MODE_ABSOLUTE_Y, 3, 4, true},
	{0x01, OP_ORA, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0x11, OP_ORA, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0x48, OP_PHA, MODE_IMPLIED, 1, 3, false},

	{0x08, OP_PHP, MODE_IMPLIED, 1, 3, false},

	{0x68, OP_PLA, MODE_IMPLIED, 1, 4, false},

	{0x28, OP_PLP, MODE_IMPLIED, 1, 4, false},

	{0x2A, OP_ROL, MODE_ACCUMULATOR, 1, 2, false},
	{0x26, OP_ROL, MODE_ZERO_PAGE, 2, 5, false},
	{0x36, OP_ROL, MODE_ZERO_PAGE_X, 2, 6, false},
	{0x2E, OP_ROL, MODE_ABSOLUTE, 3, 6, false},
	{0x3E, OP_ROL, MODE_ABSOLUTE_X, 3, 7, false},

	{0x6A, OP_ROR, MODE_ACCUMULATOR, 1, 2, false},
	{0x66, OP_ROR, MODE_ZERO_PAGE, 2, 5, false},
	{0x76, OP_ROR, MODE_ZERO_PAGE_X, 2, 6, false},
	{0x6E, OP_ROR, MODE_ABSOLUTE, 3, 6, false},
	{0x7E, OP_ROR, MODE_ABSOLUTE_X, 3, 7, false},

	{0x40, OP_RTI, MODE_IMPLIED, 1, 6, false},

	{0x60, OP_RTS, MODE_IMPLIED, 1, 6, false},

	{0xE9, OP_SBC, MODE_IMMEDIATE, 2, 2, false},
	{0xE5, OP_SBC, MODE_ZERO_PAGE, 2, 3, false},
	{0xF5, OP_SBC, MODE_ZERO_PAGE_X, 2, 4, false},
	{0xED, OP_SBC, MODE_ABSOLUTE, 3, 4, false},
	{0xFD, OP_SBC, MODE_ABSOLUTE_X, 3, 4, true},
	{0xF9, OP_SBC, MODE_ABSOLUTE_Y, 3, 4, true},
	{0xE1, OP_SBC, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0xF1, OP_SBC, MODE_INDIRECT_INDEXED, 2, 5, true},

	{0x38, OP_SEC, MODE_IMPLIED, 1, 2, false},

	{0xF8, OP_SED, MODE_IMPLIED, 1, 2, false},

	{0x78, OP_SEI, MODE_IMPLIED, 1, 2, false},

	{0x85, OP_STA, MODE_ZERO_PAGE, 2, 3, false},
	{0x95, OP_STA, MODE_ZERO_PAGE_X, 2, 4, false},
	{0x8D, OP_STA, MODE_ABSOLUTE, 3, 4, false},
	{0x9D, OP_STA, MODE_ABSOLUTE_X, 3, 5, false},
	{0x99, OP_STA, MODE_ABSOLUTE_Y, 3, 5, false},
	{0x81, OP_STA, MODE_INDEXED_INDIRECT, 2, 6, false},
	{0x91, OP_STA, MODE_INDIRECT_INDEXED, 2, 6, false},

	{0x86, OP_STX, MODE_ZERO_PAGE, 2, 3, false},
	{0x96, OP_STX, MODE_ZERO_PAGE_Y, 2, 4, false},
	{0x8E, OP_STX, MODE_ABSOLUTE, 3, 4, false},

	{0x84, OP_STY, MODE_ZERO_PAGE, 2, 3, false},
	{0x94, OP_STY, MODE_ZERO_PAGE_X, 2, 4, false},
	{0x8C, OP_STY, MODE_ABSOLUTE, 3, 4, false},

	{0xAA, OP_TAX, MODE_IMPLIED, 1, 2, false},

	{0xA8, OP_TAY, MODE_IMPLIED, 1, 2, false},

	{0xBA, OP_TSX, MODE_IMPLIED, 1, 2, false},

	{0x8A, OP_TXA, MODE_IMPLIED, 1, 2, false},

	{0x9A, OP_TXS, MODE_IMPLIED, 1, 2, false},

	{0x98, OP_TYA, MODE_IMPLIED, 1, 2, false},
}

var (
	table    [256]Entry
	encoding map[Op]map[Mode]uint8
	opByName map[string]Op
)

func init() {
	for n := range table {
		table[n] = Illegal
		table[n].Opcode = uint8(n)
	}

	encoding = make(map[Op]map[Mode]uint8)
	for _, entry := range entries {
		if table[entry.Opcode].Op != OP_ILLEGAL {
			panic(fmt.Sprintf("cpu: opcode 0x%02x defined twice", entry.Opcode))
		}
		table[entry.Opcode] = entry

		modes, ok := encoding[entry.Op]
		if !ok {
			modes = make(map[Mode]uint8)
			encoding[entry.Op] = modes
		}
		modes[entry.Mode] = entry.Opcode
	}

	opByName = make(map[string]Op, opCount)
	for op := OP_ADC; int(op) < opCount; op++ {
		opByName[op.String()] = op
	}
}

// Lookup returns the instruction table entry for an opcode byte.
func Lookup(opcode uint8) Entry {
	return table[opcode]
}

// Find returns the opcode byte encoding an Op in a Mode.
func Find(op Op, mode Mode) (opcode uint8, ok bool) {
	opcode, ok = encoding[op][mode]
	return
}

// Modes returns the addressing modes an Op supports.
func Modes(op Op) (modes []Mode) {
	for mode := range modeCount {
		if _, ok := encoding[op][Mode(mode)]; ok {
			modes = append(modes, Mode(mode))
		}
	}
	return
}
