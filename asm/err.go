package asm

import (
	"errors"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	// Linker errors
	ErrIncludeNested = errors.New(f("#INCLUDE in an included file prohibited"))

	// Macro errors
	ErrMacroArgs    = errors.New(f("wrong number of macro arguments"))
	ErrMacroLiteral = errors.New(f("macro argument must be a $hhhh address"))

	// Symbol errors
	ErrSymbolSyntax    = errors.New(f("symbol syntax"))
	ErrSymbolDuplicate = errors.New(f("symbol duplicated"))

	// Parser errors
	ErrLineInvalid      = errors.New(f("line invalid"))
	ErrLabelInvalid     = errors.New(f("label invalid"))
	ErrLabelReserved    = errors.New(f("label is a register name"))
	ErrLabelDuplicate   = errors.New(f("label duplicated"))
	ErrOperandExtra     = errors.New(f("excessive operands"))
	ErrDirectiveSyntax  = errors.New(f("directive syntax"))
	ErrDirectiveUnknown = errors.New(f("directive unknown"))
	ErrOriginSyntax     = errors.New(f("origin syntax"))

	// Object code errors
	ErrRecordSyntax = errors.New(f("object record syntax"))
	ErrBranchRange  = errors.New(f("branch out of range"))
)

// ErrIncludeMissing is returned when an #INCLUDE file can not be read.
type ErrIncludeMissing string

func (err ErrIncludeMissing) Error() string {
	return f("include '%v' missing", string(err))
}

type ErrLabelMissing string

func (err ErrLabelMissing) Error() string {
	return f("label %v missing", string(err))
}

type ErrOpcodeInvalid string

func (err ErrOpcodeInvalid) Error() string {
	return f("opcode '%v' invalid", string(err))
}

type ErrOperandInvalid string

func (err ErrOperandInvalid) Error() string {
	return f("operand '%v' invalid", string(err))
}

// ErrModeInvalid is returned when an opcode has no encoding for an
// addressing mode.
type ErrModeInvalid struct {
	Op   cpu.Op
	Mode cpu.Mode
}

func (err ErrModeInvalid) Error() string {
	return f("%v does not support %v addressing", err.Op, err.Mode)
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembly error in its source.
type ErrSyntax struct {
	File   string
	LineNo int
	Line   string
	Err    error
}

func syntaxError(src Source, err error) error {
	return &ErrSyntax{
		File:   src.File,
		LineNo: src.LineNo,
		Line:   src.Text,
		Err:    err,
	}
}

func (err *ErrSyntax) Error() string {
	return f("%v:%v '%v' %v", err.File, err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrMacro struct {
	Macro string
	Err   error
}

func (err *ErrMacro) Error() string {
	return f("macro %v %v", err.Macro, err.Err.Error())
}

func (err *ErrMacro) Unwrap() error {
	return err.Err
}
