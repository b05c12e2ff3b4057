// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ezrec/m6502/asm"
	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/io"
)

// Ctrl-C, as seen on a raw terminal.
const KEY_INTERRUPT = 0x03

var errStop = errors.New("stopped")

func main() {
	var compile string
	var output string
	var save bool
	var object string
	var disasm string
	var lines int
	var ticks int
	var hz int
	var keyboard bool
	var seed uint64
	var withProfile bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".src file to assemble")
	flag.StringVar(&output, "o", "", "Object code output ('-' for stdout)")
	flag.BoolVar(&save, "s", false, "Save object code, do not execute")
	flag.StringVar(&object, "r", "", ".obj file to run")
	flag.StringVar(&disasm, "d", "", "Disassemble from $addr, do not execute")
	flag.IntVar(&lines, "n", 16, "Disassembly line count")
	flag.IntVar(&ticks, "t", 0, "Maximum ticks (0 runs until BRK)")
	flag.IntVar(&hz, "hz", 60, "Ticks per second (0 is unpaced)")
	flag.BoolVar(&keyboard, "k", false, "Raw keyboard input")
	flag.Uint64Var(&seed, "seed", 0, "Random register seed")
	flag.BoolVar(&withProfile, "profile", false, "Write a CPU profile")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) == 0 && len(object) == 0 {
		log.Fatalf("%v: one of -c or -r is required", os.Args[0])
	}

	if withProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Random.Seed = seed

	var obj *asm.Object
	var err error

	name := compile

	if len(compile) != 0 {
		obj, err = assemble(emu, compile, verbose)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		if save && len(output) == 0 {
			output = strings.TrimSuffix(compile, filepath.Ext(compile)) + ".obj"
		}
	} else {
		name = object
		inf, err := os.Open(object)
		if err != nil {
			log.Fatalf("%v: %v", object, err)
		}
		defer inf.Close()

		obj, err = asm.ParseObject(filepath.Base(object), inf)
		if err != nil {
			log.Fatalf("%v: %v", object, err)
		}
	}

	if len(output) != 0 {
		err = writeObject(obj, output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	if save {
		return
	}

	err = emu.LoadObject(obj)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	emu.Reset()

	if len(disasm) != 0 {
		addr, err := strconv.ParseUint(strings.TrimPrefix(disasm, "$"), 16, 16)
		if err != nil {
			log.Fatalf("-d %v: %v", disasm, err)
		}
		for _, dis := range emu.Disassemble(uint16(addr), lines) {
			fmt.Println(dis)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, emu, ticks, hz, keyboard)
	fmt.Print(emu.Cpu)
	if err != nil {
		log.Fatal(err)
	}
}

// assemble a source file, with the emulator's defines predefined.
func assemble(emu *emulator.Emulator, name string, verbose bool) (obj *asm.Object, err error) {
	inf, err := os.Open(name)
	if err != nil {
		return
	}
	defer inf.Close()

	as := asm.NewAssembler(os.DirFS(filepath.Dir(name)))
	as.Verbose = verbose
	for define, value := range emu.Defines() {
		as.Predefine(define, value)
	}

	obj, err = as.Parse(filepath.Base(name), inf)
	return
}

func writeObject(obj *asm.Object, name string) (err error) {
	if name == "-" {
		_, err = obj.WriteTo(os.Stdout)
		return
	}

	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	_, err = obj.WriteTo(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

// run ticks the emulator until it halts, the tick limit is reached, or the
// context is cancelled. Keys are only pressed between ticks.
func run(ctx context.Context, emu *emulator.Emulator, ticks int, hz int, keyboard bool) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	grp, ctx := errgroup.WithContext(ctx)
	keys := make(chan string, 16)

	if keyboard {
		fd := int(os.Stdin.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		defer term.Restore(fd, state)

		grp.Go(func() error {
			return pumpKeys(ctx, readStdin(), keys)
		})
	}

	grp.Go(func() error {
		defer cancel()

		var pace <-chan time.Time
		if hz > 0 {
			ticker := time.NewTicker(time.Second / time.Duration(hz))
			defer ticker.Stop()
			pace = ticker.C
		}

		for tick := 0; ticks == 0 || tick < ticks; tick++ {
		drain:
			for {
				select {
				case key := <-keys:
					err := emu.Press(key)
					if err != nil && emu.Verbose {
						log.Printf("m6502: %v", err)
					}
				default:
					break drain
				}
			}

			done, err := emu.Tick()
			if err != nil {
				return err
			}
			if done {
				return nil
			}

			if pace == nil {
				if ctx.Err() != nil {
					return nil
				}
				continue
			}

			select {
			case <-ctx.Done():
				return nil
			case <-pace:
			}
		}

		return nil
	})

	err = grp.Wait()
	if errors.Is(err, errStop) {
		err = nil
	}

	return
}

// readStdin forwards raw reads from stdin. The reader is never joined, as
// a blocked terminal read cannot be interrupted.
func readStdin() <-chan []byte {
	input := make(chan []byte)

	go func() {
		defer close(input)
		buf := make([]byte, 64)
		for {
			n, err := os.Stdin.Read(buf)
			if n > 0 {
				input <- append([]byte(nil), buf[:n]...)
			}
			if err != nil {
				return
			}
		}
	}()

	return input
}

// pumpKeys decodes raw terminal input into key identifiers, until Ctrl-C.
func pumpKeys(ctx context.Context, input <-chan []byte, keys chan<- string) error {
	for {
		var data []byte
		var ok bool

		select {
		case <-ctx.Done():
			return nil
		case data, ok = <-input:
			if !ok {
				return nil
			}
		}

		stop := bytes.IndexByte(data, KEY_INTERRUPT)
		if stop >= 0 {
			data = data[:stop]
		}

		for _, key := range io.DecodeKeys(data) {
			select {
			case <-ctx.Done():
				return nil
			case keys <- key:
			}
		}

		if stop >= 0 {
			return errStop
		}
	}
}
