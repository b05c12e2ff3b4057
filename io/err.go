package io

import (
	"github.com/ezrec/m6502/translate"
)

var f = translate.From

// ErrKeyUnknown is returned for a key with no code.
type ErrKeyUnknown string

func (err ErrKeyUnknown) Error() string {
	return f("key '%v' unknown", string(err))
}
