package asm

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	reBinary   = regexp.MustCompile(`^#?%([01]{4})_?([01]{4})$`)
	reDecimal  = regexp.MustCompile(`^#([0-9]+)$`)
	reOffset   = regexp.MustCompile(`^(#?[<>]?\(?)\$([0-9a-fA-F]+)\+\$?([0-9a-fA-F]+)(.*)$`)
	reSelector = regexp.MustCompile(`^#([<>])\$([0-9a-fA-F]{1,4})$`)
)

// ToHex normalizes the numeric literals of an operand to the hex forms
// the encoder understands:
//
//	%nnnn_nnnn   #$xx
//	#nnn         #$xx
//	$base+off    $base plus the hex offset, at the width of base
//	#<$hhll      #$ll
//	#>$hhll      #$hh
//
// Operands it does not recognize are returned unchanged.
func ToHex(operand string) string {
	if match := reBinary.FindStringSubmatch(operand); match != nil {
		value, _ := strconv.ParseUint(match[1]+match[2], 2, 8)
		return fmt.Sprintf("#$%02x", value)
	}

	if match := reDecimal.FindStringSubmatch(operand); match != nil {
		value, err := strconv.ParseUint(match[1], 10, 8)
		if err != nil {
			return operand
		}
		return fmt.Sprintf("#$%02x", value)
	}

	if match := reOffset.FindStringSubmatch(operand); match != nil {
		base, _ := strconv.ParseUint(match[2], 16, 16)
		offset, err := strconv.ParseUint(match[3], 16, 16)
		if err != nil {
			return operand
		}
		value := uint16(base + offset)
		if len(match[2]) <= 2 && value <= 0xff {
			operand = fmt.Sprintf("%s$%02x%s", match[1], value, match[4])
		} else {
			operand = fmt.Sprintf("%s$%04x%s", match[1], value, match[4])
		}
	}

	if match := reSelector.FindStringSubmatch(operand); match != nil {
		value, _ := strconv.ParseUint(match[2], 16, 16)
		if match[1] == ">" {
			value >>= 8
		}
		return fmt.Sprintf("#$%02x", value&0xff)
	}

	return operand
}
