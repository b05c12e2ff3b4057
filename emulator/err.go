package emulator

import (
	"github.com/ezrec/m6502/translate"
)

var f = translate.From

var (
	ErrIrqRunaway = translate.Error("interrupt handler did not return")
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address uint16
	LineNo  int
	Err     error
}

func (err *ErrRuntime) Error() string {
	return f("$%04x line %v %v", err.Address, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrLoad indicates the object code line that could not be loaded.
type ErrLoad struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLoad) Error() string {
	return f("object line %v '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLoad) Unwrap() error {
	return err.Err
}
