// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ezrec/m6502/cpu"
)

// operandForm is an operand syntax and the addressing mode it selects.
type operandForm struct {
	re   *regexp.Regexp
	mode cpu.Mode
}

// operandForms are the operand syntaxes with a known length. Absolute
// forms become relative for branches.
var operandForms = []operandForm{
	{regexp.MustCompile(`(?i)^#\$([0-9a-f]{2})$`), cpu.MODE_IMMEDIATE},
	{regexp.MustCompile(`(?i)^\$([0-9a-f]{4})$`), cpu.MODE_ABSOLUTE},
	{regexp.MustCompile(`(?i)^\$([0-9a-f]{4}),x$`), cpu.MODE_ABSOLUTE_X},
	{regexp.MustCompile(`(?i)^\$([0-9a-f]{4}),y$`), cpu.MODE_ABSOLUTE_Y},
	{regexp.MustCompile(`(?i)^\$([0-9a-f]{2})$`), cpu.MODE_ZERO_PAGE},
	{regexp.MustCompile(`(?i)^\$([0-9a-f]{2}),x$`), cpu.MODE_ZERO_PAGE_X},
	{regexp.MustCompile(`(?i)^\$([0-9a-f]{2}),y$`), cpu.MODE_ZERO_PAGE_Y},
	{regexp.MustCompile(`(?i)^\(\$([0-9a-f]{4})\)$`), cpu.MODE_INDIRECT},
	{regexp.MustCompile(`(?i)^\(\$([0-9a-f]{2})\),y$`), cpu.MODE_INDIRECT_INDEXED},
	{regexp.MustCompile(`(?i)^\(\$([0-9a-f]{2}),x\)$`), cpu.MODE_INDEXED_INDIRECT},
}

var (
	reIndexSuffix = regexp.MustCompile(`(?i),[xy]\)?$`)
	reLiteral     = regexp.MustCompile(`\$[0-9a-fA-F]+|%[01_]+`)
	reIdentifier  = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
)

// IsBranch is true for the relative branch mnemonics: a 'b' not followed
// by an 'i'.
func IsBranch(mnemonic string) bool {
	mnemonic = strings.ToLower(mnemonic)
	return len(mnemonic) >= 2 && mnemonic[0] == 'b' && mnemonic[1] != 'i'
}

// operandSyntax matches an operand against the known operand forms.
func operandSyntax(operand string) (mode cpu.Mode, value uint16, ok bool) {
	for _, form := range operandForms {
		match := form.re.FindStringSubmatch(operand)
		if match == nil {
			continue
		}
		v, _ := strconv.ParseUint(match[1], 16, 16)
		return form.mode, uint16(v), true
	}

	return
}

// OperandLength returns the encoded length, in bytes, of an instruction
// from its mnemonic and the syntax of its operand.
func OperandLength(mnemonic string, operand string) int {
	if len(operand) == 0 {
		return 1
	}

	mode, _, ok := operandSyntax(operand)
	switch {
	case ok && mode == cpu.MODE_ABSOLUTE && IsBranch(mnemonic):
		return 2
	case ok:
		return mode.Bytes()
	case strings.ContainsAny(operand, "<>"):
		return 2
	case IsBranch(mnemonic):
		return 2
	}

	return 3
}

// OperandMode returns the addressing mode and value of a fully resolved
// operand.
func OperandMode(mnemonic string, operand string) (mode cpu.Mode, value uint16, err error) {
	if len(operand) == 0 {
		mode = cpu.MODE_IMPLIED
		return
	}

	mode, value, ok := operandSyntax(operand)
	if !ok {
		// Anything that still looks like a name is an unresolved label.
		rest := reIndexSuffix.ReplaceAllString(operand, "")
		rest = reLiteral.ReplaceAllString(rest, "")
		if name := reIdentifier.FindString(rest); len(name) > 0 {
			err = ErrLabelMissing(name)
		} else {
			err = ErrOperandInvalid(operand)
		}
		return
	}

	if mode == cpu.MODE_ABSOLUTE && IsBranch(mnemonic) {
		mode = cpu.MODE_RELATIVE
	}

	return
}

// Encode assembles a single instruction at addr.
func Encode(addr uint16, mnemonic string, operand string) (code []uint8, err error) {
	op, ok := cpu.ParseOp(mnemonic)
	if !ok {
		err = ErrOpcodeInvalid(mnemonic)
		return
	}

	mode, value, err := OperandMode(mnemonic, operand)
	if err != nil {
		return
	}

	if mode == cpu.MODE_IMPLIED {
		for _, mode := range []cpu.Mode{cpu.MODE_IMPLIED, cpu.MODE_ACCUMULATOR} {
			opcode, ok := cpu.Find(op, mode)
			if ok {
				code = []uint8{opcode}
				return
			}
		}
		err = ErrModeInvalid{Op: op, Mode: mode}
		return
	}

	opcode, ok := cpu.Find(op, mode)
	if !ok {
		err = ErrModeInvalid{Op: op, Mode: mode}
		return
	}

	switch mode {
	case cpu.MODE_RELATIVE:
		offset := int16(value - (addr + 2))
		if offset < -128 || offset > 127 {
			err = ErrBranchRange
			return
		}
		code = []uint8{opcode, uint8(int8(offset))}
	default:
		code = []uint8{opcode, uint8(value), uint8(value >> 8)}
		code = code[:mode.Bytes()]
	}

	return
}
