// Package asm assembles 6502 source text into object code.
//
// Source is line oriented. The first character of a line selects its kind:
//
//	:name value   symbol definition
//	* = $addr     origin
//	label op arg  labelled instruction
//	 op arg       instruction without a label
//	; text        comment
//	#INCLUDE name include name.src
//
// Directives start with '!': !str and !chr emit the text between
// backticks, !str with a trailing NUL, and !res reserves a hex count of
// zero bytes. Macro invocations start with '@'.
//
// Object code is text: '. AAAA mnemonic operand' for an instruction and
// '> AAAA BB BB ...' for up to eight data bytes.
package asm
