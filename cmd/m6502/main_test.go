package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/m6502/asm"
	"github.com/ezrec/m6502/emulator"
)

func writeFile(t *testing.T, name string, text string) {
	err := os.WriteFile(name, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.src"), "* = $0600\n jsr util\n brk\n @setReset $0600\n#INCLUDE lib\n")
	writeFile(t, filepath.Join(dir, "lib.src"), "util lda :RANDOM\n rts\n")

	emu := emulator.NewEmulator()
	obj, err := assemble(emu, filepath.Join(dir, "main.src"), false)
	assert.NoError(err)
	assert.Equal(". 0600 jsr $0604\n. 0603 brk\n> fffc 00 06 ; RESET vector\n. 0604 lda $0f\n. 0606 rts\n", obj.String())

	out := filepath.Join(dir, "main.obj")
	assert.NoError(writeObject(obj, out))

	inf, err := os.Open(out)
	if !assert.NoError(err) {
		return
	}
	defer inf.Close()

	loaded, err := asm.ParseObject("main.obj", inf)
	assert.NoError(err)
	assert.Equal(obj.String(), loaded.String())

	_, err = assemble(emu, filepath.Join(dir, "missing.src"), false)
	assert.Error(err)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	obj, err := asm.ParseObject("loop.obj", strings.NewReader(". 0600 jmp $0600\n> fffc 00 06\n"))
	if !assert.NoError(err) {
		return
	}

	emu := emulator.NewEmulator()
	assert.NoError(emu.LoadObject(obj))
	emu.Reset()

	assert.NoError(run(context.Background(), emu, 3, 0, false))
	assert.Equal(3, emu.Ticks)

	obj, err = asm.ParseObject("halt.obj", strings.NewReader(". 0600 brk\n> fffc 00 06\n"))
	if !assert.NoError(err) {
		return
	}

	assert.NoError(emu.LoadObject(obj))
	emu.Reset()
	assert.NoError(run(context.Background(), emu, 0, 0, false))
	assert.Equal(1, emu.Ticks)
	assert.True(emu.Nmi)
}

func TestPumpKeys(t *testing.T) {
	assert := assert.New(t)

	input := make(chan []byte, 2)
	keys := make(chan string, 16)

	input <- []byte("a\x1b[A")
	input <- []byte("b\x03c")
	assert.Equal(errStop, pumpKeys(context.Background(), input, keys))

	close(keys)
	var got []string
	for key := range keys {
		got = append(got, key)
	}
	assert.Equal([]string{"a", "ArrowUp", "b"}, got)

	input = make(chan []byte)
	close(input)
	assert.NoError(pumpKeys(context.Background(), input, make(chan string)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(pumpKeys(ctx, make(chan []byte), make(chan string)))
}
