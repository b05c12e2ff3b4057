package io

import (
	"fmt"
	"iter"
	"log"
	"maps"
)

// Named key codes.
const (
	KEY_BACKSPACE = uint8(0x08)
	KEY_TAB       = uint8(0x09)
	KEY_ENTER     = uint8(0x0d)
	KEY_DOWN      = uint8(0x11)
	KEY_DELETE    = uint8(0x14)
	KEY_ESCAPE    = uint8(0x1b)
	KEY_RIGHT     = uint8(0x1d)
	KEY_UP        = uint8(0x91)
	KEY_LEFT      = uint8(0x9d)
)

var namedKeys = map[string]uint8{
	"Backspace":  KEY_BACKSPACE,
	"Tab":        KEY_TAB,
	"Enter":      KEY_ENTER,
	"ArrowDown":  KEY_DOWN,
	"Delete":     KEY_DELETE,
	"Escape":     KEY_ESCAPE,
	"ArrowRight": KEY_RIGHT,
	"ArrowUp":    KEY_UP,
	"ArrowLeft":  KEY_LEFT,
}

var _keyboard_defines = map[string]string{
	"LAST_KEY":      fmt.Sprintf("$%02x", REG_LAST_KEY),
	"KEY_BACKSPACE": fmt.Sprintf("$%02x", KEY_BACKSPACE),
	"KEY_TAB":       fmt.Sprintf("$%02x", KEY_TAB),
	"KEY_ENTER":     fmt.Sprintf("$%02x", KEY_ENTER),
	"KEY_DOWN":      fmt.Sprintf("$%02x", KEY_DOWN),
	"KEY_DELETE":    fmt.Sprintf("$%02x", KEY_DELETE),
	"KEY_ESCAPE":    fmt.Sprintf("$%02x", KEY_ESCAPE),
	"KEY_RIGHT":     fmt.Sprintf("$%02x", KEY_RIGHT),
	"KEY_UP":        fmt.Sprintf("$%02x", KEY_UP),
	"KEY_LEFT":      fmt.Sprintf("$%02x", KEY_LEFT),
}

// KeyCode maps a key identifier to its code. A printable character maps
// to its ASCII code; arrows, backspace, enter and the other named keys map
// to fixed codes.
func KeyCode(key string) (code uint8, err error) {
	code, ok := namedKeys[key]
	if ok {
		return
	}

	runes := []rune(key)
	if len(runes) == 1 && runes[0] >= ' ' && runes[0] <= '~' {
		code = uint8(runes[0])
		return
	}

	err = ErrKeyUnknown(key)
	return
}

// Keyboard holds the last key pressed.
type Keyboard struct {
	Verbose bool  // If set, logs each key press.
	Last    uint8 // Code of the last key pressed.
	Presses int   // Key presses since the last rewind.
}

var _ Register = (*Keyboard)(nil)

// Defines returns the keyboard register and key code symbols.
func (kb *Keyboard) Defines() iter.Seq2[string, string] {
	return maps.All(_keyboard_defines)
}

// Press a key by its identifier.
func (kb *Keyboard) Press(key string) (err error) {
	code, err := KeyCode(key)
	if err != nil {
		return
	}

	kb.press(code)
	return
}

// PressRune presses the key for a character typed at a terminal.
// Control characters map to their named keys.
func (kb *Keyboard) PressRune(r rune) (err error) {
	switch r {
	case '\r', '\n':
		kb.press(KEY_ENTER)
	case '\b', 0x7f:
		kb.press(KEY_BACKSPACE)
	case '\t':
		kb.press(KEY_TAB)
	case 0x1b:
		kb.press(KEY_ESCAPE)
	default:
		err = kb.Press(string(r))
	}

	return
}

func (kb *Keyboard) press(code uint8) {
	if kb.Verbose {
		log.Printf("keyboard: key $%02x", code)
	}

	kb.Last = code
	kb.Presses++
}

// Peek returns the last key code.
func (kb *Keyboard) Peek() uint8 {
	return kb.Last
}

// Rewind forgets the last key.
func (kb *Keyboard) Rewind() {
	kb.Last = 0
	kb.Presses = 0
}

// DecodeKeys splits raw terminal input into key identifiers. ANSI cursor
// sequences become arrow keys, and control characters their named keys.
func DecodeKeys(data []byte) (keys []string) {
	for len(data) > 0 {
		if len(data) >= 3 && data[0] == 0x1b && data[1] == '[' {
			name, ok := map[byte]string{
				'A': "ArrowUp",
				'B': "ArrowDown",
				'C': "ArrowRight",
				'D': "ArrowLeft",
				'3': "Delete",
			}[data[2]]
			if ok {
				keys = append(keys, name)
				data = data[3:]
				if name == "Delete" && len(data) > 0 && data[0] == '~' {
					data = data[1:]
				}
				continue
			}
		}

		switch data[0] {
		case '\r', '\n':
			keys = append(keys, "Enter")
		case '\b', 0x7f:
			keys = append(keys, "Backspace")
		case '\t':
			keys = append(keys, "Tab")
		case 0x1b:
			keys = append(keys, "Escape")
		default:
			if data[0] >= ' ' && data[0] <= '~' {
				keys = append(keys, string(rune(data[0])))
			}
		}
		data = data[1:]
	}

	return
}
